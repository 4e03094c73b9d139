package api

import (
	"github.com/Ramo-11/lunalock-texting/internal/api/middleware"
	v1 "github.com/Ramo-11/lunalock-texting/internal/api/v1"
	"github.com/Ramo-11/lunalock-texting/internal/metrics"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, m *metrics.Metrics, logger *zap.Logger) {
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(logger))
	app.Use(metrics.HTTPMetricsMiddleware(m))

	app.Get("/", handler.Health)
	app.Post("/send-emergency-sms", handler.SendEmergency)
	app.Post("/test-sms", handler.SendTest)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
