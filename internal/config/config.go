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
	LogLevel      string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile       string    `yaml:"log-file" env:"LOG_FILE" env-default:"mancala-client.log"`
	DebugHTTPPort string    `yaml:"debug-http-port" env:"DEBUG_HTTP_PORT" env-default:""`
	Server        Server    `yaml:"server"`
	Animation     Animation `yaml:"animation"`
	Session       Session   `yaml:"session"`
}

type Server struct {
	URL            string        `yaml:"url" env:"SERVER_URL" env-default:"http://localhost:8080"`
	RequestTimeout time.Duration `yaml:"request-timeout" env:"SERVER_REQUEST_TIMEOUT" env-default:"10s"`
}

type Animation struct {
	StepInterval       time.Duration `yaml:"step-interval" env:"ANIMATION_STEP_INTERVAL" env-default:"600ms"`
	RelocationDuration time.Duration `yaml:"relocation-duration" env:"ANIMATION_RELOCATION_DURATION" env-default:"500ms"`
}

type Session struct {
	QueueCapacity int `yaml:"queue-capacity" env:"SESSION_QUEUE_CAPACITY" env-default:"4"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the config file, falling back to environment variables and defaults
// when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	if config.Animation.RelocationDuration >= config.Animation.StepInterval {
		return nil, fmt.Errorf("relocation duration %s must be shorter than step interval %s",
			config.Animation.RelocationDuration, config.Animation.StepInterval)
	}

	return config, nil
}
