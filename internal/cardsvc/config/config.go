package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/avvvet/card-services/internal/cardsvc/render"
)

// Config carries the card service settings, loaded from the environment.
type Config struct {
	Port          string        `env:"CARD_SERVICE_PORT" envDefault:"8080"`
	PublicBaseURL string        `env:"PUBLIC_BASE_URL"`              // when set, authoritative base for public card URLs
	CardFormat    render.Format `env:"CARD_FORMAT" envDefault:"svg"` // svg or pdf
	RateLimit     int           `env:"RATE_LIMIT" envDefault:"120"`  // requests per ip per minute
}

// Load parses and validates the service configuration.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := render.ParseFormat(string(cfg.CardFormat)); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
