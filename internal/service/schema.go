package service

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
	"google.golang.org/genai"

	"github.com/fadilmartias/practice-evaluator/internal/model"
)

// evaluationResultSchema is sent to OpenAI-compatible providers as the
// response format and checked against every payload, whichever provider
// produced it.
const evaluationResultSchema = `{
  "type": "object",
  "required": ["score", "grammar", "vocabulary", "feedback", "breakdown"],
  "properties": {
    "score": {"type": "number", "minimum": 0, "description": "Overall score out of 90 for PTE or 9.0 for IELTS"},
    "grammar": {"type": "number", "minimum": 0, "description": "Grammar score"},
    "vocabulary": {"type": "number", "minimum": 0, "description": "Vocabulary score"},
    "feedback": {"type": "string", "description": "Brief constructive feedback"},
    "breakdown": {
      "type": "object",
      "required": ["content", "grammar", "coherence"],
      "properties": {
        "content": {"type": "number", "minimum": 0},
        "grammar": {"type": "number", "minimum": 0},
        "coherence": {"type": "number", "minimum": 0}
      }
    }
  }
}`

var compiledResultSchema = jsonschema.MustCompileString("evaluation_result.json", evaluationResultSchema)

func geminiResponseSchema(scale model.Scale) *genai.Schema {
	scoreDescription := "Overall score out of 90 for PTE or 9.0 for IELTS"
	switch scale.Exam {
	case model.ExamPTE:
		scoreDescription = "Overall score out of 90"
	case model.ExamIELTS:
		scoreDescription = "Overall band score out of 9.0"
	}

	number := func(description string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeNumber, Description: description}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"score":      number(scoreDescription),
			"grammar":    number("Grammar score"),
			"vocabulary": number("Vocabulary score"),
			"feedback":   {Type: genai.TypeString, Description: "Brief constructive feedback"},
			"breakdown": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"content":   {Type: genai.TypeNumber},
					"grammar":   {Type: genai.TypeNumber},
					"coherence": {Type: genai.TypeNumber},
				},
				Required: []string{"content", "grammar", "coherence"},
			},
		},
		Required: []string{"score", "grammar", "vocabulary", "feedback", "breakdown"},
	}
}
