package model

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "invalid_input"
	KindConfiguration    ErrorKind = "configuration"
	KindTransport        ErrorKind = "transport"
	KindSchemaValidation ErrorKind = "schema_validation"
)

var (
	ErrInvalidInput     = errors.New("invalid evaluation input")
	ErrConfiguration    = errors.New("evaluator not configured")
	ErrTransport        = errors.New("evaluation transport failed")
	ErrSchemaValidation = errors.New("evaluation payload failed validation")
)

// EvaluationError is the only error type an evaluation returns. Kind selects
// the sentinel it matches with errors.Is; StatusCode is set when the remote
// service answered with a non-success status.
type EvaluationError struct {
	Kind       ErrorKind
	Op         string
	StatusCode int
	Err        error
}

func (e *EvaluationError) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrSchemaValidation:
		return e.Kind == KindSchemaValidation
	}
	return false
}

func NewEvaluationError(kind ErrorKind, op string, err error) *EvaluationError {
	return &EvaluationError{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of an evaluation error, or "" for any other error.
func KindOf(err error) ErrorKind {
	var evalErr *EvaluationError
	if errors.As(err, &evalErr) {
		return evalErr.Kind
	}
	return ""
}
