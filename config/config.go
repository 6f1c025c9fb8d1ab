package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment at startup.
type Config struct {
	Addr       string        `env:"PARTNER_REVENUE_ADDR"        envDefault:":8080"`
	RedisURL   string        `env:"PARTNER_REVENUE_REDIS_URL"`
	CacheTTL   time.Duration `env:"PARTNER_REVENUE_CACHE_TTL"   envDefault:"10m"`
	RateLimit  int           `env:"PARTNER_REVENUE_RATE_LIMIT"  envDefault:"30"`
	RateWindow time.Duration `env:"PARTNER_REVENUE_RATE_WINDOW" envDefault:"1m"`
	MaxPeriods int           `env:"PARTNER_REVENUE_MAX_PERIODS" envDefault:"600"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.RateLimit <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive, got %d", cfg.RateLimit)
	}
	if cfg.RateWindow <= 0 {
		return Config{}, fmt.Errorf("rate window must be positive, got %s", cfg.RateWindow)
	}
	if cfg.MaxPeriods <= 0 {
		return Config{}, fmt.Errorf("max periods must be positive, got %d", cfg.MaxPeriods)
	}
	return cfg, nil
}
