package curriculum

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report payload fields by their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateContent checks a payload against the required-field table of
// its activity type.
func ValidateContent(t ActivityType, c Content) error {
	if !t.Valid() {
		return &ValidationError{Kind: "activity", Field: "type", Reason: fmt.Sprintf("unknown activity type %q", t)}
	}
	c = deref(c)
	if c == nil {
		return &ValidationError{Kind: "activity", Field: "content", Reason: "missing content"}
	}
	if c.Type() != t {
		return &ValidationError{Kind: "activity", Field: "content", Reason: fmt.Sprintf("%s payload given for %s activity", c.Type(), t)}
	}
	if err := validate.Struct(c); err != nil {
		return formatValidationError(t, err)
	}
	if quiz, ok := c.(QuizContent); ok {
		if quiz.CorrectIndex < 0 || quiz.CorrectIndex >= len(quiz.Options) {
			return &ValidationError{
				Kind:   strings.ToLower(string(t)),
				Field:  "correctIndex",
				Reason: fmt.Sprintf("index %d out of range for %d options", quiz.CorrectIndex, len(quiz.Options)),
			}
		}
	}
	return nil
}

func formatValidationError(t ActivityType, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Kind: strings.ToLower(string(t)), Reason: err.Error()}
	}
	fe := fieldErrs[0]
	return &ValidationError{
		Kind:   strings.ToLower(string(t)),
		Field:  fe.Field(),
		Reason: describeFieldError(fe),
	}
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "url":
		return "must be a valid URL"
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	default:
		return "is invalid"
	}
}

func requireText(kind, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Kind: kind, Field: field, Reason: "is required"}
	}
	return nil
}
