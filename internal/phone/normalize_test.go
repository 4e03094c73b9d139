package phone_test

import (
	"testing"

	"github.com/Ramo-11/lunalock-texting/internal/phone"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare ten digits", "5551234567", "+15551234567"},
		{"formatted ten digits", "(555) 123-4567", "+15551234567"},
		{"dotted ten digits", "555.123.4567", "+15551234567"},
		{"ten digits with plus prefix", "+5551234567", "+15551234567"},
		{"already international", "+15551234567", "+15551234567"},
		{"international with formatting", "+1 (555) 123-4567", "+15551234567"},
		{"uk number with plus", "+442071838750", "+442071838750"},
		{"eleven digits without plus", "15551234567", "+15551234567"},
		{"country code without plus", "442071838750", "+442071838750"},
		{"short number", "911", "+911"},
		{"empty input", "", "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, phone.Normalize(tt.raw))
		})
	}
}
