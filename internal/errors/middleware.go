package middleware

import (
	"errors"
	"time"

	v1 "github.com/Ramo-11/lunalock-texting/internal/api/v1"
	"github.com/Ramo-11/lunalock-texting/internal/constants"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is the app-level fallback for errors no handler mapped.
// Router-level errors (404, 405) keep their status; anything else becomes
// a 500 envelope.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(v1.ErrorResponse{
				Error: fiberErr.Message,
			})
		}

		logger.Error("Unhandled error",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()))

		errorCode := constants.ErrCodeInternalError

		return c.Status(constants.GetHTTPStatus(errorCode)).JSON(v1.ErrorResponse{
			Error:     constants.GetErrorMessage(errorCode),
			Code:      errorCode,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
