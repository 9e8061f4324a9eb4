package takaful

import (
	"fmt"
	"net/url"
	"time"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/config"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

// Config is the client configuration, read from the environment.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Service  string `env:"APP_NAME" envDefault:"takaful"`
	LogLevel string `env:"LOG_LEVEL"`

	APIURL     string        `env:"TAKAFUL_API_URL,required"`
	APITimeout time.Duration `env:"TAKAFUL_API_TIMEOUT" envDefault:"15s"`

	Language string `env:"TAKAFUL_LANG" envDefault:"ar"`
	// PasswordPolicy selects the sign-up password rules: strict or relaxed.
	PasswordPolicy string `env:"TAKAFUL_PASSWORD_POLICY" envDefault:"strict"`

	CountUpDuration time.Duration `env:"TAKAFUL_COUNTUP_DURATION" envDefault:"1200ms"`
	ToastTTL        time.Duration `env:"TAKAFUL_TOAST_TTL" envDefault:"4s"`
}

// LoadConfig reads Config from the environment and any env files named in
// opts, then validates it.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values env tags cannot express.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: TAKAFUL_API_URL %q", ErrInvalidConfig, c.APIURL)
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("%w: TAKAFUL_API_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if _, err := validator.PasswordPolicyByName(c.PasswordPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.CountUpDuration <= 0 {
		return fmt.Errorf("%w: TAKAFUL_COUNTUP_DURATION must be positive", ErrInvalidConfig)
	}
	return nil
}
