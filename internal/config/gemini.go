package config

import (
	"os"
	"sync"
	"time"
)

const (
	DefaultGeminiModel   = "gemini-1.5-flash"
	DefaultGeminiTimeout = 60 * time.Second
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = geminiConfigFromEnv(os.Getenv)
	})
	return geminiConfig
}

// API_KEY is accepted for deployments that still use the old variable name.
func geminiConfigFromEnv(getenv func(string) string) *GeminiConfig {
	return &GeminiConfig{
		APIKey:  firstNonEmpty(getenv("GEMINI_API_KEY"), getenv("API_KEY")),
		Model:   firstNonEmpty(getenv("GEMINI_MODEL"), DefaultGeminiModel),
		BaseURL: getenv("GEMINI_BASE_URL"),
		Timeout: durationOrDefault(getenv("GEMINI_TIMEOUT"), DefaultGeminiTimeout),
	}
}
