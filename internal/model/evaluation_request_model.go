package model

import (
	"errors"
	"strings"
)

// PlaceholderResponse stands in for the candidate's answer when nothing was
// captured. The practice screen records no audio, so this is what gets scored.
const PlaceholderResponse = "The development of sustainable cities is a priority. Planners focus on green transit and energy buildings."

type EvaluationRequest struct {
	PracticeType      string
	TargetText        string
	CandidateResponse string
	Exam              ExamType
}

// NewEvaluationRequest trims and checks the caller's inputs. Every text field
// is required; a missing target text cannot be recovered downstream. The exam
// tag is stored in its canonical form, so "pte" scores on the PTE scale.
func NewEvaluationRequest(practiceType, targetText, candidateResponse string, exam ExamType) (EvaluationRequest, error) {
	parsed, err := ParseExam(string(exam))
	if err != nil {
		return EvaluationRequest{}, NewEvaluationError(KindInvalidInput, "build request", err)
	}
	req := EvaluationRequest{
		PracticeType:      strings.TrimSpace(practiceType),
		TargetText:        strings.TrimSpace(targetText),
		CandidateResponse: strings.TrimSpace(candidateResponse),
		Exam:              parsed,
	}
	if err := req.Validate(); err != nil {
		return EvaluationRequest{}, err
	}
	return req, nil
}

func (r EvaluationRequest) Validate() error {
	var problems []string
	if r.PracticeType == "" {
		problems = append(problems, "practice type is required")
	}
	if r.TargetText == "" {
		problems = append(problems, "target text is required")
	}
	if r.CandidateResponse == "" {
		problems = append(problems, "candidate response is required")
	}
	if r.Exam != ExamUnknown {
		if _, err := ParseExam(string(r.Exam)); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if len(problems) > 0 {
		return NewEvaluationError(KindInvalidInput, "build request", errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

func (r EvaluationRequest) Scale() Scale {
	return ScaleFor(r.Exam)
}
