package config

import (
	"github.com/minishop/minishop/pkg/config"
)

type Config struct {
	Port         int
	LogLevel     string
	DatabaseURL  string
	KafkaBrokers []string
}

func Load() *Config {
	return &Config{
		Port:         config.EnvIntDefault("PORT", 3000),
		LogLevel:     config.EnvDefault("LOG_LEVEL", "info"),
		DatabaseURL:  config.EnvDefault("DATABASE_URL", ""),
		KafkaBrokers: config.CSV("KAFKA_BROKERS"),
	}
}
