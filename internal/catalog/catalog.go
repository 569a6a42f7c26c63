// Package catalog lists the practice question types offered to candidates.
package catalog

import (
	"strings"

	"github.com/fadilmartias/practice-evaluator/internal/model"
)

type QuestionType struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Category string         `json:"category"`
	Exam     model.ExamType `json:"exam"`
}

var questionTypes = []QuestionType{
	{ID: "ra", Title: "Read Aloud", Category: "Speaking", Exam: model.ExamPTE},
	{ID: "rs", Title: "Repeat Sentence", Category: "Speaking", Exam: model.ExamPTE},
	{ID: "swt", Title: "Summarize Written Text", Category: "Writing", Exam: model.ExamPTE},
	{ID: "we", Title: "Write Essay", Category: "Writing", Exam: model.ExamPTE},
	{ID: "fib", Title: "Reading & Writing: Fill in the Blanks", Category: "Reading", Exam: model.ExamPTE},
	{ID: "ielts-wt1", Title: "Academic Writing Task 1", Category: "Writing", Exam: model.ExamIELTS},
	{ID: "ielts-wt2", Title: "Academic Writing Task 2", Category: "Writing", Exam: model.ExamIELTS},
	{ID: "ielts-sp1", Title: "Speaking Part 1", Category: "Speaking", Exam: model.ExamIELTS},
	{ID: "ielts-sp2", Title: "Speaking Part 2", Category: "Speaking", Exam: model.ExamIELTS},
}

func All() []QuestionType {
	out := make([]QuestionType, len(questionTypes))
	copy(out, questionTypes)
	return out
}

func ByExam(exam model.ExamType) []QuestionType {
	out := []QuestionType{}
	for _, qt := range questionTypes {
		if qt.Exam == exam {
			out = append(out, qt)
		}
	}
	return out
}

// Lookup finds a question type by id or title, ignoring case.
func Lookup(idOrTitle string) (QuestionType, bool) {
	key := strings.TrimSpace(idOrTitle)
	if key == "" {
		return QuestionType{}, false
	}
	for _, qt := range questionTypes {
		if strings.EqualFold(qt.ID, key) || strings.EqualFold(qt.Title, key) {
			return qt, true
		}
	}
	return QuestionType{}, false
}

// Exams returns every exam family together with its scoring scale.
func Exams() []model.Scale {
	exams := model.Exams()
	out := make([]model.Scale, 0, len(exams))
	for _, exam := range exams {
		out = append(out, model.ScaleFor(exam))
	}
	return out
}
