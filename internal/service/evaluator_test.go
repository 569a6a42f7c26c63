package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/middleware"
	"github.com/fadilmartias/practice-evaluator/internal/model"
)

func TestNewEvaluatorSelectsProvider(t *testing.T) {
	ctx := context.Background()

	evaluator, err := NewEvaluator(ctx, EvaluatorOptions{Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.IsType(t, &GeminiService{}, evaluator)

	evaluator, err = NewEvaluator(ctx, EvaluatorOptions{Provider: config.ProviderOpenRouter, Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.IsType(t, &OpenRouterService{}, evaluator)

	evaluator, err = NewEvaluator(ctx, EvaluatorOptions{Provider: config.ProviderOpenAI, Logger: zerolog.Nop()})
	require.NoError(t, err)
	require.IsType(t, &OpenAIService{}, evaluator)

	_, err = NewEvaluator(ctx, EvaluatorOptions{Provider: "bard"})
	require.Error(t, err)
}

func TestUnconfiguredEvaluatorsReportConfiguration(t *testing.T) {
	for _, provider := range []string{config.ProviderGemini, config.ProviderOpenRouter, config.ProviderOpenAI} {
		t.Run(provider, func(t *testing.T) {
			evaluator, err := NewEvaluator(context.Background(), EvaluatorOptions{Provider: provider, Logger: zerolog.Nop()})
			require.NoError(t, err)

			result, err := evaluator.Evaluate(context.Background(), readAloudRequest(t))
			require.Nil(t, result)
			require.ErrorIs(t, err, model.ErrConfiguration)
		})
	}
}

func TestEvaluationLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	svc := NewOpenRouterService(config.OpenRouterConfig{}, zerolog.New(&buf))
	buf.Reset()

	ctx := middleware.WithRequestID(context.Background(), "req-42")
	_, err := svc.Evaluate(ctx, readAloudRequest(t))
	require.ErrorIs(t, err, model.ErrConfiguration)

	line := strings.TrimSpace(buf.String())
	require.Contains(t, line, `"request_id":"req-42"`)
	require.Contains(t, line, `"message":"practice evaluation finished"`)
}

func TestEvaluationLogWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	svc := NewOpenRouterService(config.OpenRouterConfig{}, zerolog.New(&buf))
	buf.Reset()

	_, err := svc.Evaluate(context.Background(), readAloudRequest(t))
	require.Error(t, err)
	require.NotContains(t, buf.String(), "request_id")
}
