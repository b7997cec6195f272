package formkit

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config controls the HTTP form validation endpoint.
type Config struct {
	// MaxBodySize caps the accepted request body in bytes.
	MaxBodySize int64 `env:"FORM_MAX_BODY_SIZE" envDefault:"1048576"`
}

var defaultEnvLoaded sync.Once

// LoadConfig reads Config from environment variables. A .env file in the
// working directory is loaded first when present; a missing file is not an
// error.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
