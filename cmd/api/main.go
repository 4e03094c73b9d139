package main

import (
	"context"

	"github.com/Ramo-11/lunalock-texting/internal/api"
	"github.com/Ramo-11/lunalock-texting/internal/api/validator"
	v1 "github.com/Ramo-11/lunalock-texting/internal/api/v1"
	"github.com/Ramo-11/lunalock-texting/internal/config"
	middleware "github.com/Ramo-11/lunalock-texting/internal/errors"
	"github.com/Ramo-11/lunalock-texting/internal/metrics"
	"github.com/Ramo-11/lunalock-texting/internal/service"
	"github.com/Ramo-11/lunalock-texting/pkg/httpclient"
	"github.com/Ramo-11/lunalock-texting/pkg/twilio"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			metrics.NewMetrics,
			validator.NewValidator,
			newFiberApp,
			newHTTPClient,
			newProvider,
			newRelayService,
			v1.NewHandler,
		),
		fx.Invoke(logStartup, startServer),
	).Run()
}

func newFiberApp(logger *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
	})
}

func newHTTPClient(cfg *config.Config) httpclient.HTTPClient {
	return httpclient.NewHTTPClient(cfg.Twilio.Timeout)
}

func newProvider(cfg *config.Config, client httpclient.HTTPClient) twilio.API {
	return twilio.NewClient(cfg.Twilio, client)
}

func newRelayService(provider twilio.API, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) service.RelayService {
	return service.NewRelayService(provider, cfg.Twilio, logger, m)
}

// logStartup reports configuration presence, not values. Missing
// credentials do not stop the process; the provider call will fail and
// the failure is surfaced per request.
func logStartup(cfg *config.Config, logger *zap.Logger) {
	logger.Info("Starting emergency SMS relay",
		zap.String("port", cfg.API.Port),
		zap.Bool("accountSidConfigured", cfg.Twilio.AccountSID != ""),
		zap.Bool("authTokenConfigured", cfg.Twilio.AuthToken != ""),
		zap.Bool("fromNumberConfigured", cfg.Twilio.FromNumber != ""))
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, m, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(":" + cfg.API.Port); err != nil {
					logger.Fatal("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
