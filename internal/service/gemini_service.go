package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/model"
)

const opGemini = "gemini evaluate"

type GeminiService struct {
	client         *genai.Client
	model          string
	requestTimeout time.Duration
	logger         zerolog.Logger
}

// NewGeminiService builds a Gemini evaluator. Without an API key the service
// is still returned, and every Evaluate call fails with a configuration error
// before touching the network.
func NewGeminiService(ctx context.Context, cfg config.GeminiConfig, logger zerolog.Logger) (*GeminiService, error) {
	s := &GeminiService{
		model:          cfg.Model,
		requestTimeout: cfg.Timeout,
		logger:         logger.With().Str("provider", config.ProviderGemini).Logger(),
	}
	if s.model == "" {
		s.model = config.DefaultGeminiModel
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = config.DefaultGeminiTimeout
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		s.logger.Warn().Msg("GEMINI_API_KEY not set, evaluations will fail until it is configured")
		return s, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	s.client = client
	return s, nil
}

func (s *GeminiService) Evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error) {
	ctx, span := tracer.Start(ctx, "gemini.evaluate", trace.WithAttributes(
		attribute.String("model", s.model),
		attribute.String("practice_type", req.PracticeType),
	))
	defer span.End()

	start := time.Now()
	result, err := s.evaluate(ctx, req)
	finishEvaluation(requestLogger(ctx, s.logger), span, config.ProviderGemini, req, start, result, err)
	return result, err
}

func (s *GeminiService) evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.client == nil {
		return nil, model.NewEvaluationError(model.KindConfiguration, opGemini, errors.New("GEMINI_API_KEY not set"))
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   geminiResponseSchema(req.Scale()),
	}

	resp, err := s.client.Models.GenerateContent(
		timeoutCtx,
		s.model,
		genai.Text(buildEvaluationPrompt(req)),
		genConfig,
	)
	if err != nil {
		return nil, geminiTransportError(err)
	}

	if err := s.validateGenerateResponse(resp); err != nil {
		return nil, model.NewEvaluationError(model.KindSchemaValidation, opGemini, err)
	}

	return parseEvaluationPayload(opGemini, resp.Text(), req.Scale())
}

func geminiTransportError(err error) error {
	evalErr := model.NewEvaluationError(model.KindTransport, opGemini, err)

	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		evalErr.StatusCode = apiErr.Code
	case errors.As(err, &apiErrPtr) && apiErrPtr != nil:
		evalErr.StatusCode = apiErrPtr.Code
	}
	return evalErr
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}
