// Package config содержит логику чтения конфигурации сервиса витрины.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Адрес внешней страницы оформления заказа (iFood) по умолчанию.
const defaultCheckoutURL = "https://www.ifood.com.br/delivery/vila-velha-es/selva-pizzaria-praia-da-costa/a8ba6e5e-9fec-4c67-89f6-97b18fd6674f?utm_medium=share"

// Config содержит параметры конфигурации сервиса витрины.
type Config struct {
	RunAddress   string `env:"RUN_ADDRESS"`
	DatabaseURI  string `env:"DATABASE_URI"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	CheckoutURL  string `env:"CHECKOUT_URL"`
	TimeZone     string `env:"TIME_ZONE"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envDatabaseURI := cfg.DatabaseURI
	envCheckoutURL := cfg.CheckoutURL
	envTimeZone := cfg.TimeZone

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.CheckoutURL, "c", defaultCheckoutURL, "external checkout page URL")
	flag.StringVar(&cfg.TimeZone, "z", "America/Sao_Paulo", "business time zone")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envDatabaseURI != "" {
		cfg.DatabaseURI = envDatabaseURI
	}
	if envCheckoutURL != "" {
		cfg.CheckoutURL = envCheckoutURL
	}
	if envTimeZone != "" {
		cfg.TimeZone = envTimeZone
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}

	return cfg, nil
}
