package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// Service
	BaseURL string `env:"NANO_BASE_URL"`
	APIKey  string `env:"NANO_API_KEY"`

	// Credential for authenticated calls; an sk- API key works too.
	Token string `env:"NANO_TOKEN"`

	// Optional local sign-in token minting
	SigningSecret string `env:"NANO_SIGNING_SECRET"`

	// Logging
	LogLevel string `env:"NANO_LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Credential returns the string to authenticate calls with, preferring a
// session token over the API key.
func (c *Config) Credential() string {
	if c.Token != "" {
		return c.Token
	}
	return c.APIKey
}
