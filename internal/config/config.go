package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	DatabaseURL  string `env:"DATABASE_URL,required"`
	BaseCurrency string `env:"BASE_CURRENCY" envDefault:"IDR"`

	// Rate provider
	RateProviderURL string        `env:"RATE_PROVIDER_URL,required"`
	RateProviderKey string        `env:"RATE_PROVIDER_API_KEY"`
	RateTTL         time.Duration `env:"RATE_TTL" envDefault:"1h"`
	RateTimeout     time.Duration `env:"RATE_TIMEOUT" envDefault:"10s"`

	// Fallback provider: central-bank published-rates page. Empty disables it.
	BankRatesURL string `env:"BANK_RATES_URL"`

	// Size pricing
	SizeProfileName string `env:"SIZE_PROFILE" envDefault:"menu"`
	VolumeUnit      string `env:"VOLUME_UNIT" envDefault:"ml"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.SizeProfile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SizeProfile resolves the configured multiplier table by name.
func (c *Config) SizeProfile() (SizeProfile, error) {
	switch c.SizeProfileName {
	case ProfileMenu.Name:
		return ProfileMenu, nil
	case ProfileCard.Name:
		return ProfileCard, nil
	}
	return SizeProfile{}, fmt.Errorf("unknown size profile %q", c.SizeProfileName)
}
