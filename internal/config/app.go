package config

import (
	"log"
	"os"
	"strings"
	"sync"
)

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	BaseURL  string
	LogLevel string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = appConfigFromEnv(os.Getenv)
	})
	return appConfig
}

func appConfigFromEnv(getenv func(string) string) *AppConfig {
	env := getenv("APP_ENV")
	if env == "" {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	port := getenv("APP_PORT")
	if port == "" {
		port = ":8080"
	}
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		port = ":" + port
	}
	name := getenv("APP_NAME")
	if name == "" {
		name = "Practice Evaluator"
	}
	return &AppConfig{
		Name:     name,
		Env:      env,
		Port:     port,
		BaseURL:  getenv("APP_URL"),
		LogLevel: strings.ToLower(getenv("LOG_LEVEL")),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
