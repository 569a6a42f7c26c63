package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/fadilmartias/practice-evaluator/internal/dto"
	"github.com/fadilmartias/practice-evaluator/internal/middleware"
	"github.com/fadilmartias/practice-evaluator/internal/model"
	"github.com/fadilmartias/practice-evaluator/internal/usecase"
	"github.com/fadilmartias/practice-evaluator/internal/util"
)

const evaluationFailedMessage = "evaluation failed, please try again"

type PracticeHandler struct {
	uc       *usecase.PracticeUsecase
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewPracticeHandler(uc *usecase.PracticeUsecase, validate *validator.Validate, logger zerolog.Logger) *PracticeHandler {
	return &PracticeHandler{uc: uc, validate: validate, logger: logger}
}

func (h *PracticeHandler) RegisterRoutes(app *fiber.App) {
	practice := app.Group("/practice")
	practice.Post("/evaluate", h.Evaluate)
	practice.Get("/types", h.QuestionTypes)
	practice.Get("/types/:exam", h.QuestionTypes)
	practice.Get("/exams", h.Exams)
}

func (h *PracticeHandler) Evaluate(c *fiber.Ctx) error {
	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	if err := h.validate.Struct(req); err != nil {
		formErr := util.NewValidationFormError(err)
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: formErr.Message,
			Details: formErr.Errors,
		}, formErr)
	}

	result, err := h.uc.Evaluate(c.UserContext(), req)
	if err != nil {
		status, message := evaluationFailure(err)
		h.logger.Warn().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("kind", string(model.KindOf(err))).
			Int("status", status).
			Msg("practice evaluation request failed")
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    status,
			Message: message,
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success evaluate practice response",
		Data:    result,
	})
}

func (h *PracticeHandler) QuestionTypes(c *fiber.Ctx) error {
	types, err := h.uc.QuestionTypes(c.Params("exam"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "exam not found",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get question types",
		Data:    types,
	})
}

func (h *PracticeHandler) Exams(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get exams",
		Data:    h.uc.Exams(),
	})
}

// evaluationFailure picks the status for a failed evaluation. Every failure
// past input validation shows the same retry message.
func evaluationFailure(err error) (int, string) {
	switch model.KindOf(err) {
	case model.KindInvalidInput:
		return fiber.StatusBadRequest, "invalid evaluation request"
	case model.KindConfiguration:
		return fiber.StatusServiceUnavailable, evaluationFailedMessage
	case model.KindTransport, model.KindSchemaValidation:
		return fiber.StatusBadGateway, evaluationFailedMessage
	default:
		return fiber.StatusInternalServerError, evaluationFailedMessage
	}
}
