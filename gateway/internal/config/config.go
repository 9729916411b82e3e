package config

import (
	"github.com/minishop/minishop/pkg/config"
)

type Config struct {
	Port     int
	LogLevel string

	ProductServiceURL string
	OrderServiceURL   string
}

func Load() *Config {
	return &Config{
		Port:              config.EnvIntDefault("PORT", 3000),
		LogLevel:          config.EnvDefault("LOG_LEVEL", "info"),
		ProductServiceURL: config.EnvDefault("PRODUCT_SERVICE_URL", "http://localhost:3001"),
		OrderServiceURL:   config.EnvDefault("ORDER_SERVICE_URL", "http://localhost:3003"),
	}
}
