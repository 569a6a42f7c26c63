package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/model"
)

const opOpenAI = "openai evaluate"

// OpenAIService implements EvaluatorInterface against the OpenAI chat
// completion API, or any server speaking it when BaseURL is set.
type OpenAIService struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

func NewOpenAIService(cfg config.OpenAIConfig, logger zerolog.Logger) *OpenAIService {
	s := &OpenAIService{
		model:  cfg.Model,
		logger: logger.With().Str("provider", config.ProviderOpenAI).Logger(),
	}
	if s.model == "" {
		s.model = config.DefaultOpenAIModel
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		s.logger.Warn().Msg("OPENAI_API_KEY not set, evaluations will fail until it is configured")
		return s
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultOpenAITimeout
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: timeout}
	s.client = openai.NewClientWithConfig(clientConfig)
	return s
}

func (s *OpenAIService) Evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error) {
	ctx, span := tracer.Start(ctx, "openai.evaluate", trace.WithAttributes(
		attribute.String("model", s.model),
		attribute.String("practice_type", req.PracticeType),
	))
	defer span.End()

	start := time.Now()
	result, err := s.evaluate(ctx, req)
	finishEvaluation(requestLogger(ctx, s.logger), span, config.ProviderOpenAI, req, start, result, err)
	return result, err
}

func (s *OpenAIService) evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.client == nil {
		return nil, model.NewEvaluationError(model.KindConfiguration, opOpenAI, errors.New("OPENAI_API_KEY not set"))
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.1,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: evaluatorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildEvaluationPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "evaluation_result",
				Schema: json.RawMessage(evaluationResultSchema),
			},
		},
	})
	if err != nil {
		return nil, openAITransportError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, model.NewEvaluationError(model.KindSchemaValidation, opOpenAI, errors.New("no choices returned from openai"))
	}

	return parseEvaluationPayload(opOpenAI, resp.Choices[0].Message.Content, req.Scale())
}

func openAITransportError(err error) error {
	evalErr := model.NewEvaluationError(model.KindTransport, opOpenAI, err)

	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		evalErr.StatusCode = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		evalErr.StatusCode = reqErr.HTTPStatusCode
	}
	return evalErr
}
