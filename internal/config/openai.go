package config

import (
	"os"
	"sync"
	"time"
)

const (
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultOpenAITimeout = 60 * time.Second
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = openAIConfigFromEnv(os.Getenv)
	})
	return openAIConfig
}

func openAIConfigFromEnv(getenv func(string) string) *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:  getenv("OPENAI_API_KEY"),
		Model:   firstNonEmpty(getenv("OPENAI_MODEL"), DefaultOpenAIModel),
		BaseURL: getenv("OPENAI_BASE_URL"),
		Timeout: durationOrDefault(getenv("OPENAI_TIMEOUT"), DefaultOpenAITimeout),
	}
}
