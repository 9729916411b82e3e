package config

import (
	"os"

	"github.com/minishop/minishop/pkg/config"
)

type Config struct {
	Port         int
	LogLevel     string
	JWTSecret    []byte
	DatabaseURL  string
	KafkaBrokers []string
}

func Load() *Config {
	return &Config{
		Port:         config.EnvIntDefault("PORT", 3000),
		LogLevel:     config.EnvDefault("LOG_LEVEL", "info"),
		JWTSecret:    []byte(config.MustNonEmpty(os.Getenv("JWT_SECRET"), "JWT_SECRET")),
		DatabaseURL:  config.EnvDefault("DATABASE_URL", ""),
		KafkaBrokers: config.CSV("KAFKA_BROKERS"),
	}
}
