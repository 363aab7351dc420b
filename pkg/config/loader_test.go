package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangbc5/flare/pkg/config"
)

type testConfig struct {
	Host string `env:"LOADER_TEST_HOST" envDefault:"localhost"`
	Port int    `env:"LOADER_TEST_PORT" envDefault:"4222"`
}

type requiredConfig struct {
	Token string `env:"LOADER_TEST_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 4222, cfg.Port)
	})

	t.Run("reads environment values and caches per type", func(t *testing.T) {
		type envConfig struct {
			Name string `env:"LOADER_TEST_NAME" envDefault:"fallback"`
		}
		t.Setenv("LOADER_TEST_NAME", "from-env")

		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)

		// Later env changes do not reach an already-loaded type.
		t.Setenv("LOADER_TEST_NAME", "changed")
		var again envConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "from-env", again.Name)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer fails", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		type mustConfig struct {
			Token string `env:"LOADER_TEST_MUST_TOKEN,required"`
		}
		assert.Panics(t, func() {
			var cfg mustConfig
			config.MustLoad(&cfg)
		})
	})
}
