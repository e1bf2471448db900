package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PollInterval time.Duration `yaml:"poll-interval" env:"POLL_INTERVAL" env-default:"500ms"`
	Redis        Redis         `yaml:"redis"`
}

// Redis holds the optional store for finished games.
type Redis struct {
	Enabled   bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host      string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port      string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ResultTTL time.Duration `yaml:"result-ttl" env:"REDIS_RESULT_TTL" env-default:"24h"`
}

// MustLoad - load configuration from the yml file if it exists, otherwise from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
