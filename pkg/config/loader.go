package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from environment variables.
//
// The first call loads the default .env file if one exists; a missing file is
// not an error. Field mapping follows github.com/caarlos0/env struct tags.
//
// Example:
//
//	type RateLimitConfig struct {
//		Max    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`
//		Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
//	}
//
//	var cfg RateLimitConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
