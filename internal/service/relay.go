package service

import (
	"context"

	"github.com/Ramo-11/lunalock-texting/internal/constants"
	"github.com/Ramo-11/lunalock-texting/internal/metrics"
	"github.com/Ramo-11/lunalock-texting/internal/phone"
	"github.com/Ramo-11/lunalock-texting/pkg/twilio"
	"go.uber.org/zap"
)

// RelayService forwards validated send requests to the SMS provider.
// Provider failures are returned verbatim; nothing is retried or queued.
type RelayService interface {
	SendEmergency(ctx context.Context, cmd SendEmergencyCommand) (SendEmergencyResult, error)
	SendTest(ctx context.Context, cmd SendTestCommand) (SendTestResult, error)
}

type relay struct {
	provider twilio.API
	cfg      twilio.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

func NewRelayService(provider twilio.API, cfg twilio.Config, logger *zap.Logger, metrics *metrics.Metrics) RelayService {
	return &relay{provider: provider, cfg: cfg, logger: logger, metrics: metrics}
}

func (r *relay) SendEmergency(ctx context.Context, cmd SendEmergencyCommand) (SendEmergencyResult, error) {
	normalized := phone.Normalize(cmd.To)

	r.logger.Info("Sending emergency SMS",
		zap.String("to", normalized),
		zap.String("contactName", cmd.ContactName),
		zap.Bool("hasLocation", cmd.HasLocation),
		zap.Int("messageLength", len(cmd.Message)))

	providerCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	msg, err := r.provider.SendMessage(providerCtx, r.cfg.FromNumber, normalized, cmd.Message)
	if err != nil {
		r.logger.Error("Emergency SMS failed",
			zap.Error(err),
			zap.String("to", normalized))

		if r.metrics != nil {
			r.metrics.RecordSendOutcome(metrics.EndpointEmergency, metrics.OutcomeFailure)
		}

		return SendEmergencyResult{}, err
	}

	r.logger.Info("Emergency SMS sent",
		zap.String("messageSid", msg.SID),
		zap.String("status", msg.Status),
		zap.String("to", normalized))

	if r.metrics != nil {
		r.metrics.RecordSendOutcome(metrics.EndpointEmergency, metrics.OutcomeSuccess)
	}

	return SendEmergencyResult{MessageSID: msg.SID, Status: msg.Status, To: normalized}, nil
}

func (r *relay) SendTest(ctx context.Context, cmd SendTestCommand) (SendTestResult, error) {
	// The test path deliberately skips normalization; the number goes to
	// the provider exactly as received.
	r.logger.Info("Sending test SMS", zap.String("to", cmd.To))

	providerCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	msg, err := r.provider.SendMessage(providerCtx, r.cfg.FromNumber, cmd.To, constants.TestMessageBody)
	if err != nil {
		r.logger.Error("Test SMS failed",
			zap.Error(err),
			zap.String("to", cmd.To))

		if r.metrics != nil {
			r.metrics.RecordSendOutcome(metrics.EndpointTest, metrics.OutcomeFailure)
		}

		return SendTestResult{}, err
	}

	r.logger.Info("Test SMS sent",
		zap.String("messageSid", msg.SID),
		zap.String("to", cmd.To))

	if r.metrics != nil {
		r.metrics.RecordSendOutcome(metrics.EndpointTest, metrics.OutcomeSuccess)
	}

	return SendTestResult{MessageSID: msg.SID}, nil
}
