package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/practice-evaluator/internal/config"
	"github.com/fadilmartias/practice-evaluator/internal/model"
)

func newTestOpenAIService(fp *fakeProvider, apiKey string) *OpenAIService {
	return NewOpenAIService(config.OpenAIConfig{
		APIKey:  apiKey,
		Model:   "gpt-4o-mini",
		BaseURL: fp.server.URL + "/v1",
		Timeout: time.Second,
	}, zerolog.Nop())
}

func TestOpenAIEvaluate(t *testing.T) {
	var path, auth string
	fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatCompletionReply("```json\n" + validPayload + "\n```"))
	})
	svc := newTestOpenAIService(fp, "openai-key")

	result, err := svc.Evaluate(context.Background(), readAloudRequest(t))
	require.NoError(t, err)
	require.Equal(t, 83.0, result.Score)
	require.Equal(t, "Good fluency.", result.Feedback)
	require.Equal(t, "/v1/chat/completions", path)
	require.Equal(t, "Bearer openai-key", auth)
}

func TestOpenAIEvaluateServerError(t *testing.T) {
	fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
	})
	svc := newTestOpenAIService(fp, "openai-key")

	result, err := svc.Evaluate(context.Background(), readAloudRequest(t))
	require.Nil(t, result)
	require.ErrorIs(t, err, model.ErrTransport)

	var evalErr *model.EvaluationError
	require.ErrorAs(t, err, &evalErr)
	require.Equal(t, http.StatusBadGateway, evalErr.StatusCode)
	require.Equal(t, 1, fp.Hits())
}

func TestOpenAIEvaluateMissingBreakdown(t *testing.T) {
	fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatCompletionReply(`{"score":83}`))
	})
	svc := newTestOpenAIService(fp, "openai-key")

	_, err := svc.Evaluate(context.Background(), readAloudRequest(t))
	require.ErrorIs(t, err, model.ErrSchemaValidation)
}

func TestOpenAIEvaluateWithoutKey(t *testing.T) {
	fp := newFakeProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatCompletionReply(validPayload))
	})
	svc := newTestOpenAIService(fp, "")

	_, err := svc.Evaluate(context.Background(), readAloudRequest(t))
	require.ErrorIs(t, err, model.ErrConfiguration)
	require.Zero(t, fp.Hits())
}
