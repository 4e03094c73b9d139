package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ramo-11/lunalock-texting/internal/constants"
	"github.com/Ramo-11/lunalock-texting/internal/mocks"
	"github.com/Ramo-11/lunalock-texting/internal/service"
	"github.com/Ramo-11/lunalock-texting/pkg/twilio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var testCfg = twilio.Config{
	FromNumber: "+15550006666",
	Timeout:    5 * time.Second,
}

func TestRelay_SendEmergency(t *testing.T) {
	logger := zap.NewNop()

	t.Run("normalizes the destination before sending", func(t *testing.T) {
		mockProvider := &mocks.ProviderAPI{}
		svc := service.NewRelayService(mockProvider, testCfg, logger, nil)

		mockProvider.On("SendMessage", mock.Anything, "+15550006666", "+15551234567", "help").
			Return(twilio.Message{SID: "SM123", Status: "queued"}, nil)

		result, err := svc.SendEmergency(context.Background(), service.SendEmergencyCommand{
			To:          "(555) 123-4567",
			Message:     "help",
			ContactName: "Mom",
			HasLocation: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "SM123", result.MessageSID)
		assert.Equal(t, "queued", result.Status)
		assert.Equal(t, "+15551234567", result.To)
		mockProvider.AssertExpectations(t)
	})

	t.Run("passes provider errors through verbatim", func(t *testing.T) {
		mockProvider := &mocks.ProviderAPI{}
		svc := service.NewRelayService(mockProvider, testCfg, logger, nil)

		provErr := &twilio.Error{Code: 21211, Message: "invalid 'To' number", Status: 400}
		mockProvider.On("SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(twilio.Message{}, provErr)

		_, err := svc.SendEmergency(context.Background(), service.SendEmergencyCommand{
			To:      "bogus",
			Message: "help",
		})

		var apiErr *twilio.Error
		assert.True(t, errors.As(err, &apiErr))
		assert.Equal(t, 21211, apiErr.Code)
		mockProvider.AssertNumberOfCalls(t, "SendMessage", 1)
	})
}

func TestRelay_SendTest(t *testing.T) {
	logger := zap.NewNop()

	t.Run("sends the fixed diagnostic body to the raw number", func(t *testing.T) {
		mockProvider := &mocks.ProviderAPI{}
		svc := service.NewRelayService(mockProvider, testCfg, logger, nil)

		mockProvider.On("SendMessage", mock.Anything, "+15550006666", "555-123-4567", constants.TestMessageBody).
			Return(twilio.Message{SID: "SM456", Status: "queued"}, nil)

		result, err := svc.SendTest(context.Background(), service.SendTestCommand{To: "555-123-4567"})

		assert.NoError(t, err)
		assert.Equal(t, "SM456", result.MessageSID)
		mockProvider.AssertExpectations(t)
	})

	t.Run("returns provider failure without retrying", func(t *testing.T) {
		mockProvider := &mocks.ProviderAPI{}
		svc := service.NewRelayService(mockProvider, testCfg, logger, nil)

		mockProvider.On("SendMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(twilio.Message{}, errors.New("connection refused"))

		_, err := svc.SendTest(context.Background(), service.SendTestCommand{To: "5551234567"})

		assert.Error(t, err)
		mockProvider.AssertNumberOfCalls(t, "SendMessage", 1)
	})
}
