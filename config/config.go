package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
	PrintTree  bool   `env:"PRINT_TREE" env-default:"true"`
	Playouts   int    `env:"PLAYOUTS" env-default:"0"`
	MetricsDir string `env:"METRICS_DIR" env-default:""`
}

// MustLoad - read all configuration from the environment.
func MustLoad() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load configuration: %w", err))
	}

	return config
}
