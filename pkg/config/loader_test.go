package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/config"
)

type appConfig struct {
	Name    string        `env:"APP_NAME" envDefault:"takaful"`
	Port    int           `env:"APP_PORT" envDefault:"8080"`
	Timeout time.Duration `env:"APP_TIMEOUT" envDefault:"10s"`
}

type requiredConfig struct {
	URL string `env:"APP_URL,required"`
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{})))
		assert.Equal(t, "takaful", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
	})

	t.Run("environment values", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Load(&cfg, config.WithEnvironment(map[string]string{
			"APP_NAME":    "custom",
			"APP_TIMEOUT": "3s",
		})))
		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Load(&cfg,
			config.WithPrefix("TEST_"),
			config.WithEnvironment(map[string]string{"TEST_APP_PORT": "1"}),
		))
		assert.Equal(t, 1, cfg.Port)
	})

	t.Run("env file does not override environment", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		require.NoError(t, config.Load(&cfg,
			config.WithEnvironment(map[string]string{"APP_PORT": "7000"}),
			config.WithEnvFiles("testdata/app.env"),
		))
		assert.Equal(t, "from-file", cfg.Name)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("missing required file", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(nil), config.WithEnvFiles("testdata/missing.env"))
		assert.ErrorIs(t, err, config.ErrReadingEnvFile)
	})

	t.Run("missing optional file", func(t *testing.T) {
		t.Parallel()
		var cfg appConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}), config.WithOptionalEnvFiles("testdata/missing.env"))
		assert.NoError(t, err)
	})

	t.Run("required value", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithEnvironment(map[string]string{}))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()
		assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)
	})

	t.Run("must load panics", func(t *testing.T) {
		t.Parallel()
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg, config.WithEnvironment(map[string]string{})) })
	})
}
