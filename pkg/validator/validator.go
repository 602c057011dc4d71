package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())

	// Report fields under their form name so error messages line up with
	// the inputs users actually see.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if tag := f.Tag.Get("form"); tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
		return strings.ToLower(f.Name)
	})

	return v
}

// ValidateStruct validates a struct using its `validate` tags.
// Returns ValidationErrors on rule failures, a regular error on misuse.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var perrs playground.ValidationErrors
	if !errors.As(err, &perrs) {
		return fmt.Errorf("validate struct: %w", err)
	}

	verrs := make(ValidationErrors, 0, len(perrs))
	for _, fe := range perrs {
		verrs = append(verrs, ValidationError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: messageFor(fe),
		})
	}
	return verrs
}

// messageFor maps common validation tags to human-readable messages.
// Unknown tags fall back to naming the violated rule.
func messageFor(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "uuid", "uuid4":
		return "Enter a valid UUID."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is at least %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is at most %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Value must be one of: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "alphanum":
		return "Only letters and numbers are allowed."
	default:
		return fmt.Sprintf("Failed validation rule %q.", fe.Tag())
	}
}
