package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

const invalidDateMessage = "must be a valid ISO 8601 date"

// FieldError is a single violated rule, addressed by the input key.
type FieldError struct {
	Field   string
	Message string
}

// FormatValidationErrors converts validator errors for one input key into field errors
func FormatValidationErrors(field string, err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: field, Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{Field: field, Message: formatSingleError(e)})
	}
	return out
}

func formatSingleError(e validator.FieldError) string {
	tag := e.Tag()
	param := e.Param()

	switch tag {
	case "required":
		return "Required"

	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must contain at least %s character(s)", param)
		}
		return fmt.Sprintf("must be greater than or equal to %s", param)

	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must contain at most %s character(s)", param)
		}
		return fmt.Sprintf("must be less than or equal to %s", param)

	case "email":
		return "Invalid email"

	case "url":
		return "Invalid url"

	case "iso_date":
		return invalidDateMessage

	default:
		return fmt.Sprintf("failed %s validation", tag)
	}
}

func typeMismatch(expected string, got any) FieldError {
	return FieldError{Message: fmt.Sprintf("expected %s, received %s", expected, typeName(got))}
}

// typeName names a decoded JSON value the way a client would describe it
func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any, []string:
		return "array"
	case map[string]any:
		return "object"
	}
	if _, ok := asNumber(v); ok {
		return "number"
	}
	return reflect.TypeOf(v).Kind().String()
}
