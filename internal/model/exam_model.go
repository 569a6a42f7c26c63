package model

import (
	"fmt"
	"strings"
)

type ExamType string

const (
	ExamUnknown  ExamType = ""
	ExamPTE      ExamType = "PTE"
	ExamIELTS    ExamType = "IELTS"
	ExamCELPIP   ExamType = "CELPIP"
	ExamDuolingo ExamType = "DUOLINGO"
)

var knownExams = []ExamType{ExamPTE, ExamIELTS, ExamCELPIP, ExamDuolingo}

// Scale is the numeric range an overall score is reported on.
// A zero Max means the range is not known.
type Scale struct {
	Exam ExamType `json:"exam"`
	Min  float64  `json:"min"`
	Max  float64  `json:"max"`
}

func (s Scale) Known() bool {
	return s.Max > 0
}

func (s Scale) Contains(score float64) bool {
	if !s.Known() {
		return score >= 0
	}
	return score >= s.Min && score <= s.Max
}

// ScaleFor returns the scoring scale of an exam family. Only PTE and IELTS
// publish a scale the scorer is instructed with.
func ScaleFor(exam ExamType) Scale {
	switch exam {
	case ExamPTE:
		return Scale{Exam: ExamPTE, Min: 0, Max: 90}
	case ExamIELTS:
		return Scale{Exam: ExamIELTS, Min: 0, Max: 9.0}
	default:
		return Scale{Exam: exam}
	}
}

// ParseExam accepts an exam tag in any letter case. An empty tag parses to
// ExamUnknown; anything else unrecognised is an error.
func ParseExam(raw string) (ExamType, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return ExamUnknown, nil
	}
	if value == "DET" {
		return ExamDuolingo, nil
	}
	for _, exam := range knownExams {
		if string(exam) == value {
			return exam, nil
		}
	}
	return ExamUnknown, fmt.Errorf("unknown exam %q", raw)
}

func Exams() []ExamType {
	out := make([]ExamType, len(knownExams))
	copy(out, knownExams)
	return out
}
