package guard

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls the boundary hardening applied before any pattern
// work. Raw input has no intrinsic size bound, so the byte cap is
// enforced here rather than inside the validators.
type Config struct {
	MaxInputBytes int  `env:"GUARD_MAX_INPUT_BYTES" envDefault:"65536"`
	LogRejections bool `env:"GUARD_LOG_REJECTIONS" envDefault:"true"`
}

var (
	ErrParsingConfig = errors.New("failed to parse guard config")
	ErrInvalidConfig = errors.New("invalid guard config")
)

var dotenvOnce sync.Once

// LoadConfig reads the guard configuration from the environment. A .env
// file, if present, is loaded once per process; a missing file is fine.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if cfg.MaxInputBytes <= 0 {
		return Config{}, errors.Join(ErrInvalidConfig, errors.New("GUARD_MAX_INPUT_BYTES must be positive"))
	}

	return cfg, nil
}
