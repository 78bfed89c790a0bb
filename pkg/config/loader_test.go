package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steeplehq/gateway/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		type cfg struct {
			Max    int           `env:"TEST_CFG_MAX" envDefault:"100"`
			Window time.Duration `env:"TEST_CFG_WINDOW" envDefault:"60s"`
		}

		var c cfg
		require.NoError(t, config.Load(&c))
		assert.Equal(t, 100, c.Max)
		assert.Equal(t, time.Minute, c.Window)
	})

	t.Run("reads environment", func(t *testing.T) {
		type cfg struct {
			Domains []string `env:"TEST_CFG_DOMAINS" envSeparator:","`
		}

		t.Setenv("TEST_CFG_DOMAINS", "example.com,example.org")

		var c cfg
		require.NoError(t, config.Load(&c))
		assert.Equal(t, []string{"example.com", "example.org"}, c.Domains)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var c *struct{}
		err := config.Load(c)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("required missing", func(t *testing.T) {
		type cfg struct {
			URL string `env:"TEST_CFG_REQUIRED_URL,required"`
		}

		var c cfg
		err := config.Load(&c)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("must load panics on failure", func(t *testing.T) {
		type cfg struct {
			URL string `env:"TEST_CFG_MUST_URL,required"`
		}

		assert.Panics(t, func() {
			var c cfg
			config.MustLoad(&c)
		})
	})
}
