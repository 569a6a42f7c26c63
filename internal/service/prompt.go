package service

import (
	"fmt"

	"github.com/fadilmartias/practice-evaluator/internal/model"
)

const evaluatorSystemPrompt = "You are an examiner for English proficiency tests. Respond only with a JSON object that follows the requested schema."

func buildEvaluationPrompt(req model.EvaluationRequest) string {
	return fmt.Sprintf(`Evaluate the following English proficiency test response.
Question Type: %s
Target Content: %s
User Response: %s

Provide a detailed evaluation following the schema. %s
BE STRICT AND ACCURATE.`, req.PracticeType, req.TargetText, req.CandidateResponse, scaleInstruction(req.Exam))
}

func scaleInstruction(exam model.ExamType) string {
	switch exam {
	case model.ExamPTE:
		return "This is a PTE item: use the 0-90 scale for the overall score."
	case model.ExamIELTS:
		return "This is an IELTS item: use the 0-9.0 band scale for the overall score."
	default:
		return "For PTE use 0-90 scale. For IELTS use 0-9.0 scale."
	}
}
