package config

import (
	"github.com/minishop/minishop/pkg/config"
)

type Config struct {
	Port        int
	LogLevel    string
	DatabaseURL string

	// Optional full-text search backend.
	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string
}

func Load() *Config {
	return &Config{
		Port:        config.EnvIntDefault("PORT", 3000),
		LogLevel:    config.EnvDefault("LOG_LEVEL", "info"),
		DatabaseURL: config.EnvDefault("DATABASE_URL", ""),
		ESURL:       config.EnvDefault("ELASTICSEARCH_URL", ""),
		ESUser:      config.EnvDefault("ELASTICSEARCH_USER", ""),
		ESPassword:  config.EnvDefault("ELASTICSEARCH_PASSWORD", ""),
		ESIndex:     config.EnvDefault("ELASTICSEARCH_INDEX", "products"),
	}
}
