package usecase

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/fadilmartias/practice-evaluator/internal/catalog"
	"github.com/fadilmartias/practice-evaluator/internal/dto"
	"github.com/fadilmartias/practice-evaluator/internal/model"
	"github.com/fadilmartias/practice-evaluator/internal/service"
)

type PracticeUsecase struct {
	evaluator service.EvaluatorInterface
	logger    zerolog.Logger
}

func NewPracticeUsecase(evaluator service.EvaluatorInterface, logger zerolog.Logger) *PracticeUsecase {
	return &PracticeUsecase{evaluator: evaluator, logger: logger}
}

// Evaluate scores one practice attempt. The exam comes from the request when
// given, otherwise from the catalog entry matching the practice type.
func (uc *PracticeUsecase) Evaluate(ctx context.Context, in dto.EvaluateRequest) (*dto.EvaluationResponse, error) {
	exam, err := model.ParseExam(in.Exam)
	if err != nil {
		return nil, model.NewEvaluationError(model.KindInvalidInput, "build request", err)
	}

	practiceType := strings.TrimSpace(in.PracticeType)
	if qt, ok := catalog.Lookup(practiceType); ok {
		practiceType = qt.Title
		if exam == model.ExamUnknown {
			exam = qt.Exam
		}
	}

	candidateResponse := in.CandidateResponse
	if strings.TrimSpace(candidateResponse) == "" {
		uc.logger.Debug().Str("practice_type", practiceType).Msg("no candidate response captured, scoring placeholder")
		candidateResponse = model.PlaceholderResponse
	}

	req, err := model.NewEvaluationRequest(practiceType, in.TargetText, candidateResponse, exam)
	if err != nil {
		return nil, err
	}

	result, err := uc.evaluator.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}

	return &dto.EvaluationResponse{
		PracticeType:     req.PracticeType,
		EvaluationResult: *result,
	}, nil
}

// QuestionTypes lists the catalog, optionally narrowed to one exam.
func (uc *PracticeUsecase) QuestionTypes(exam string) ([]catalog.QuestionType, error) {
	if strings.TrimSpace(exam) == "" {
		return catalog.All(), nil
	}
	parsed, err := model.ParseExam(exam)
	if err != nil {
		return nil, model.NewEvaluationError(model.KindInvalidInput, "list question types", err)
	}
	return catalog.ByExam(parsed), nil
}

func (uc *PracticeUsecase) Exams() []model.Scale {
	return catalog.Exams()
}
