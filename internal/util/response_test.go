package util

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/practice-evaluator/internal/config"
)

func TestNewValidationFormError(t *testing.T) {
	type body struct {
		PracticeType string `json:"practice_type" validate:"required"`
		TargetText   string `json:"target_text,omitempty" validate:"max=3"`
		AudioURL     string `json:"audio_url" validate:"required"`
		Notes        string `validate:"required"`
	}
	err := NewValidator().Struct(body{TargetText: "too long"})
	require.Error(t, err)

	formErr := NewValidationFormError(err)
	require.Equal(t, map[string]string{
		"practice_type": "is required",
		"target_text":   "must be at most 3 characters",
		"audio_url":     "is required",
		"Notes":         "is required",
	}, formErr.Errors)
	require.Equal(t, "form error: validation failed", formErr.Error())
}

func TestNewValidationFormErrorIgnoresOtherErrors(t *testing.T) {
	formErr := NewValidationFormError(errors.New("boom"))
	require.Empty(t, formErr.Errors)
}

func TestSuccessResponseDefaultsToOK(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return SuccessResponse(c, SuccessResponseFormat{Message: "ok", Data: fiber.Map{"a": 1}})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload OrderedSuccessResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Success)
	require.Equal(t, "ok", payload.Message)
}

func TestErrorResponseDefaultsTo500(t *testing.T) {
	config.LoadAppConfig()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ErrorResponse(c, ErrorResponseFormat{Message: "nope"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var payload OrderedErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.False(t, payload.Success)
	require.Equal(t, "nope", payload.Message)
}
