package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/model"
)

const opOpenRouter = "openrouter evaluate"

// OpenRouterService scores responses through OpenRouter's OpenAI-compatible
// chat completion endpoint.
type OpenRouterService struct {
	client *resty.Client
	apiKey string
	model  string
	logger zerolog.Logger
}

func NewOpenRouterService(cfg config.OpenRouterConfig, logger zerolog.Logger) *OpenRouterService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultOpenRouterBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultOpenRouterTimeout
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = config.DefaultOpenRouterModel
	}

	s := &OpenRouterService{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  modelName,
		logger: logger.With().Str("provider", config.ProviderOpenRouter).Logger(),
	}
	if s.apiKey == "" {
		s.logger.Warn().Msg("OPENROUTER_API_KEY not set, evaluations will fail until it is configured")
	}
	return s
}

func (s *OpenRouterService) Evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error) {
	ctx, span := tracer.Start(ctx, "openrouter.evaluate", trace.WithAttributes(
		attribute.String("model", s.model),
		attribute.String("practice_type", req.PracticeType),
	))
	defer span.End()

	start := time.Now()
	result, err := s.evaluate(ctx, req)
	finishEvaluation(requestLogger(ctx, s.logger), span, config.ProviderOpenRouter, req, start, result, err)
	return result, err
}

func (s *OpenRouterService) evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.apiKey == "" {
		return nil, model.NewEvaluationError(model.KindConfiguration, opOpenRouter, errors.New("OPENROUTER_API_KEY not set"))
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.apiKey).
		SetBody(map[string]any{
			"model": s.model,
			"messages": []map[string]string{
				{"role": "system", "content": evaluatorSystemPrompt},
				{"role": "user", "content": buildEvaluationPrompt(req)},
			},
			"response_format": map[string]any{
				"type": "json_schema",
				"json_schema": map[string]any{
					"name":   "evaluation_result",
					"schema": json.RawMessage(evaluationResultSchema),
				},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return nil, model.NewEvaluationError(model.KindTransport, opOpenRouter, err)
	}

	body := resp.String()
	if !resp.IsSuccess() {
		message := gjson.Get(body, "error.message").String()
		if message == "" {
			message = resp.Status()
		}
		return nil, &model.EvaluationError{
			Kind:       model.KindTransport,
			Op:         opOpenRouter,
			StatusCode: resp.StatusCode(),
			Err:        errors.New(message),
		}
	}

	content := gjson.Get(body, "choices.0.message.content")
	if !content.Exists() {
		return nil, model.NewEvaluationError(model.KindSchemaValidation, opOpenRouter, fmt.Errorf("no choices in response"))
	}

	return parseEvaluationPayload(opOpenRouter, content.String(), req.Scale())
}
