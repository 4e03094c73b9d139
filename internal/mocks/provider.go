package mocks

import (
	"context"

	"github.com/Ramo-11/lunalock-texting/pkg/twilio"
	"github.com/stretchr/testify/mock"
)

type ProviderAPI struct {
	mock.Mock
}

func (p *ProviderAPI) SendMessage(ctx context.Context, from string, to string, body string) (twilio.Message, error) {
	args := p.Called(ctx, from, to, body)
	return args.Get(0).(twilio.Message), args.Error(1)
}
