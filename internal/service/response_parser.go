package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fadilmartias/practice-evaluator/internal/model"
)

type evaluationPayload struct {
	Score      float64 `json:"score"`
	Grammar    float64 `json:"grammar"`
	Vocabulary float64 `json:"vocabulary"`
	Feedback   string  `json:"feedback"`
	Breakdown  struct {
		Content   float64 `json:"content"`
		Grammar   float64 `json:"grammar"`
		Coherence float64 `json:"coherence"`
	} `json:"breakdown"`
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// parseEvaluationPayload turns the scorer's text into a result. Any missing or
// mistyped field fails the whole payload.
func parseEvaluationPayload(op, text string, scale model.Scale) (*model.EvaluationResult, error) {
	schemaErr := func(err error) error {
		return model.NewEvaluationError(model.KindSchemaValidation, op, err)
	}

	cleaned := cleanModelOutput(text)
	if cleaned == "" {
		return nil, schemaErr(errors.New("empty payload"))
	}
	if !gjson.Valid(cleaned) {
		return nil, schemaErr(errors.New("payload is not valid JSON"))
	}

	var document any
	if err := json.Unmarshal([]byte(cleaned), &document); err != nil {
		return nil, schemaErr(fmt.Errorf("decode payload: %w", err))
	}
	if err := compiledResultSchema.Validate(document); err != nil {
		return nil, schemaErr(err)
	}

	var payload evaluationPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, schemaErr(fmt.Errorf("decode payload: %w", err))
	}
	if !scale.Contains(payload.Score) {
		return nil, schemaErr(fmt.Errorf("score %g outside the %s scale %g-%g", payload.Score, scale.Exam, scale.Min, scale.Max))
	}

	return &model.EvaluationResult{
		Score:      payload.Score,
		Grammar:    payload.Grammar,
		Vocabulary: payload.Vocabulary,
		Feedback:   strings.TrimSpace(payload.Feedback),
		Breakdown: model.Breakdown{
			Content:   payload.Breakdown.Content,
			Grammar:   payload.Breakdown.Grammar,
			Coherence: payload.Breakdown.Coherence,
		},
		Scale: scale,
	}, nil
}
