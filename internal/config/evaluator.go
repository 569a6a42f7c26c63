package config

import (
	"os"
	"strings"
	"sync"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

type EvaluatorConfig struct {
	Provider string
}

var (
	evaluatorConfig *EvaluatorConfig
	evaluatorOnce   sync.Once
)

func LoadEvaluatorConfig() *EvaluatorConfig {
	evaluatorOnce.Do(func() {
		evaluatorConfig = evaluatorConfigFromEnv(os.Getenv)
	})
	return evaluatorConfig
}

func evaluatorConfigFromEnv(getenv func(string) string) *EvaluatorConfig {
	provider := strings.ToLower(strings.TrimSpace(getenv("EVALUATOR_PROVIDER")))
	if provider == "" {
		provider = ProviderGemini
	}
	return &EvaluatorConfig{Provider: provider}
}
