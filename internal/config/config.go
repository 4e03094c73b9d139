package config

import (
	"fmt"

	"github.com/Ramo-11/lunalock-texting/pkg/twilio"
	"github.com/spf13/viper"
)

type Config struct {
	API    API           `mapstructure:"api"`
	Twilio twilio.Config `mapstructure:"twilio"`
}

type API struct {
	Port string `mapstructure:"port"`
}

// Load reads configuration from the process environment. Only the port
// and provider timeout have defaults; credential presence is reported at
// startup but not enforced here.
func Load() (cfg *Config, err error) {
	viper.SetDefault("api.port", "3000")
	viper.SetDefault("twilio.base_url", "https://api.twilio.com")
	viper.SetDefault("twilio.timeout", "15s")

	bindings := map[string]string{
		"api.port":           "PORT",
		"twilio.account_sid": "TWILIO_ACCOUNT_SID",
		"twilio.auth_token":  "TWILIO_AUTH_TOKEN",
		"twilio.from_number": "TWILIO_PHONE_NUMBER",
		"twilio.base_url":    "TWILIO_BASE_URL",
		"twilio.timeout":     "PROVIDER_TIMEOUT",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
