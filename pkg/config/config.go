package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by LoadFile before the environment is parsed.
const DefaultEnvFile = ".env.toolbelt"

type Config struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	RSAModulusBits int    `env:"RSA_MODULUS_BITS" envDefault:"4096"`
	// A negative value keeps short codes instead of drawing again.
	CodeMaxRedraws int `env:"CODE_MAX_REDRAWS" envDefault:"8"`
}

// Load parses the configuration from the process environment.
func Load() (*Config, error) {
	conf := &Config{}
	if err := env.Parse(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadFile sets any variables from the dotenv file that are not already set
// and then parses the environment. A missing file is not an error.
func LoadFile(path string) (*Config, error) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return Load()
}
