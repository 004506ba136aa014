package curriculum

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates a node or content payload failed validation.
	ErrValidation = errors.New("invalid curriculum content")
	// ErrJourneyNotFound indicates no journey matches the requested key.
	ErrJourneyNotFound = errors.New("journey not found")
)

// ValidationError describes why a node could not be constructed.
type ValidationError struct {
	Kind   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Kind, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
