package v1

import (
	"errors"
	"time"

	"github.com/Ramo-11/lunalock-texting/internal/api/validator"
	"github.com/Ramo-11/lunalock-texting/internal/constants"
	"github.com/Ramo-11/lunalock-texting/internal/service"
	"github.com/Ramo-11/lunalock-texting/pkg/twilio"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	service   service.RelayService
	validator validator.RequestValidator
}

func NewHandler(logger *zap.Logger, service service.RelayService, validator validator.RequestValidator) *Handler {
	return &Handler{logger: logger, service: service, validator: validator}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:    "Emergency SMS service is running",
		Timestamp: timestamp(),
	})
}

func (h *Handler) SendEmergency(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendEmergencyRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:     constants.ErrMsgInvalidRequestBody,
			Timestamp: timestamp(),
		})
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:     constants.ErrMsgEmergencyFields,
			Timestamp: timestamp(),
		})
	}

	cmd := service.SendEmergencyCommand{
		To:          request.To,
		Message:     request.Message,
		ContactName: request.ContactName,
		HasLocation: request.HasLocation,
	}

	result, err := h.service.SendEmergency(ctx, cmd)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(providerErrorResponse(err))
	}

	return c.JSON(SendEmergencyResponse{
		Success:    true,
		MessageSID: result.MessageSID,
		Status:     result.Status,
		To:         result.To,
		Timestamp:  timestamp(),
	})
}

func (h *Handler) SendTest(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendTestRequest
	if err := c.BodyParser(&request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("body", string(c.Body())))
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: constants.ErrMsgInvalidRequestBody,
		})
	}

	if errs := h.validator.Validate(request); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: constants.ErrMsgTestFields,
		})
	}

	result, err := h.service.SendTest(ctx, service.SendTestCommand{To: request.To})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	return c.JSON(SendTestResponse{
		Success:    true,
		MessageSID: result.MessageSID,
		Message:    "Test SMS sent successfully",
	})
}

// providerErrorResponse passes the provider's message and numeric code
// through verbatim; failures without a numeric code (undecodable error
// bodies, transport faults) are reported as UNKNOWN_ERROR.
func providerErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Error:     err.Error(),
		Code:      constants.ErrCodeUnknown,
		Timestamp: timestamp(),
	}

	var provErr *twilio.Error
	if errors.As(err, &provErr) {
		resp.Error = provErr.Message
		if provErr.Code != 0 {
			resp.Code = provErr.Code
		}
	}

	return resp
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
