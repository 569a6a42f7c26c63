package config

import (
	"os"
	"sync"
	"time"
)

const (
	DefaultOpenRouterModel   = "openai/gpt-4o-mini"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultOpenRouterTimeout = 60 * time.Second
)

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = openRouterConfigFromEnv(os.Getenv)
	})
	return openRouterConfig
}

func openRouterConfigFromEnv(getenv func(string) string) *OpenRouterConfig {
	return &OpenRouterConfig{
		APIKey:  getenv("OPENROUTER_API_KEY"),
		Model:   firstNonEmpty(getenv("OPENROUTER_MODEL"), DefaultOpenRouterModel),
		BaseURL: firstNonEmpty(getenv("OPENROUTER_BASE_URL"), DefaultOpenRouterBaseURL),
		Timeout: durationOrDefault(getenv("OPENROUTER_TIMEOUT"), DefaultOpenRouterTimeout),
	}
}
