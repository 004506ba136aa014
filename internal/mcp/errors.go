package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/curriculum/internal/domain/curriculum"
)

var (
	// ErrActivityNotFound indicates no activity has the requested id.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidInput indicates missing or malformed tool arguments.
	ErrInvalidInput = errors.New("invalid input")
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
	cause        error
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

func (e *APIError) Unwrap() error {
	return e.cause
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, curriculum.ErrJourneyNotFound):
		return &APIError{Code: "JOURNEY_NOT_FOUND", Message: "journey not found", RecoveryHint: "Call list_journeys for valid slugs", cause: err}
	case errors.Is(err, ErrActivityNotFound):
		return &APIError{Code: "ACTIVITY_NOT_FOUND", Message: "activity not found", RecoveryHint: "Call get_journey for activity ids", cause: err}
	case errors.Is(err, ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), cause: err}
	case errors.Is(err, curriculum.ErrValidation):
		return &APIError{Code: "INVALID_CONTENT", Message: err.Error(), RecoveryHint: "Reseed from a valid fixture", cause: err}
	default:
		return nil
	}
}

// toolError returns the mapped API error, or err unchanged when it has no
// code.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
