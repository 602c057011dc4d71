package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed validation rule on a field.
type ValidationError struct {
	// Field is the form-facing field name (form tag or lowercased Go name).
	Field string

	// Rule is the validation tag that failed (e.g. "required", "min").
	Rule string

	// Param is the rule parameter, if any (e.g. "8" for "min=8").
	Param string

	// Message is the human-readable error message.
	Message string
}

// ValidationErrors is a collection of validation errors.
// It implements the error interface so it can travel through error returns,
// but handlers are expected to render it, not propagate it.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = fmt.Sprintf("%s: %s", ve.Field, ve.Message)
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any error exists for the given field.
func (e ValidationErrors) Has(field string) bool {
	for _, ve := range e {
		if ve.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages for the given field.
func (e ValidationErrors) Get(field string) []string {
	var msgs []string
	for _, ve := range e {
		if ve.Field == field {
			msgs = append(msgs, ve.Message)
		}
	}
	return msgs
}

// Fields returns the errors grouped by field name.
func (e ValidationErrors) Fields() map[string][]string {
	m := make(map[string][]string, len(e))
	for _, ve := range e {
		m[ve.Field] = append(m[ve.Field], ve.Message)
	}
	return m
}

// IsValidationError reports whether err is (or wraps) ValidationErrors.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// ExtractValidationErrors returns the ValidationErrors wrapped in err,
// or nil if err does not carry any.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
