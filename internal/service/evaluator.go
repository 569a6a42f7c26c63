package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/middleware"
	"github.com/fadilmartias/practice-evaluator/internal/model"
	"github.com/fadilmartias/practice-evaluator/internal/observability"
)

// EvaluatorInterface scores one practice response with a single call to an
// external model. It returns either a complete result or a
// *model.EvaluationError, never both.
type EvaluatorInterface interface {
	Evaluate(ctx context.Context, req model.EvaluationRequest) (*model.EvaluationResult, error)
}

type EvaluatorOptions struct {
	Provider   string
	Gemini     config.GeminiConfig
	OpenRouter config.OpenRouterConfig
	OpenAI     config.OpenAIConfig
	Logger     zerolog.Logger
}

// NewEvaluator builds the evaluator for the configured provider. A missing
// credential is not an error here; the evaluator reports it on every call.
func NewEvaluator(ctx context.Context, opts EvaluatorOptions) (EvaluatorInterface, error) {
	switch opts.Provider {
	case "", config.ProviderGemini:
		gemini, err := NewGeminiService(ctx, opts.Gemini, opts.Logger)
		if err != nil {
			return nil, err
		}
		return gemini, nil
	case config.ProviderOpenRouter:
		return NewOpenRouterService(opts.OpenRouter, opts.Logger), nil
	case config.ProviderOpenAI:
		return NewOpenAIService(opts.OpenAI, opts.Logger), nil
	default:
		return nil, fmt.Errorf("unknown evaluator provider %q", opts.Provider)
	}
}

var tracer = otel.Tracer("github.com/fadilmartias/practice-evaluator/internal/service")

// requestLogger tags the logger with the request id carried by ctx, if any.
func requestLogger(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		return logger.With().Str("request_id", id).Logger()
	}
	return logger
}

// finishEvaluation records metrics, span status and a log line for one call.
func finishEvaluation(logger zerolog.Logger, span trace.Span, provider string, req model.EvaluationRequest, start time.Time, result *model.EvaluationResult, err error) {
	duration := time.Since(start)
	observability.EvaluationDuration().WithLabelValues(provider).Observe(duration.Seconds())

	var event *zerolog.Event
	if err != nil {
		kind := string(model.KindOf(err))
		observability.EvaluationFailures().WithLabelValues(provider, kind).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		event = logger.Error().Err(err).Str("kind", kind)
	} else {
		span.SetStatus(codes.Ok, "")
		event = logger.Info().Float64("score", result.Score)
	}

	event.
		Str("practice_type", req.PracticeType).
		Str("exam", string(req.Exam)).
		Dur("duration", duration).
		Msg("practice evaluation finished")
}
