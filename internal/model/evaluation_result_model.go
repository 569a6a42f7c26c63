package model

type Breakdown struct {
	Content   float64 `json:"content"`
	Grammar   float64 `json:"grammar"`
	Coherence float64 `json:"coherence"`
}

// EvaluationResult is a complete score for one practice response. The scale
// comes from the request, never from the scorer's payload.
type EvaluationResult struct {
	Score      float64   `json:"score"`
	Grammar    float64   `json:"grammar"`
	Vocabulary float64   `json:"vocabulary"`
	Feedback   string    `json:"feedback"`
	Breakdown  Breakdown `json:"breakdown"`
	Scale      Scale     `json:"scale"`
}
