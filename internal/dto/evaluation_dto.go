package dto

import "github.com/fadilmartias/practice-evaluator/internal/model"

// EvaluateRequest is the body of POST /practice/evaluate. A blank
// candidate_response is scored as the placeholder answer.
type EvaluateRequest struct {
	PracticeType      string `json:"practice_type" validate:"required,max=120"`
	TargetText        string `json:"target_text" validate:"required,max=8000"`
	CandidateResponse string `json:"candidate_response" validate:"max=8000"`
	Exam              string `json:"exam" validate:"omitempty,max=20"`
}

type EvaluationResponse struct {
	PracticeType string `json:"practice_type"`
	model.EvaluationResult
}
