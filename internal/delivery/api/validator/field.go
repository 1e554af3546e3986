package validator

import (
	"reflect"
	"strings"

	"satoru/internal/errors"

	"github.com/go-playground/validator/v10"
)

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		name, _, _ = strings.Cut(field.Tag.Get("form"), ",")
		if name == "" {
			return field.Name
		}
	}

	return name
}

// FieldErrors flattens validation failures into field -> message pairs.
// It returns nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fields[fe.Field()] = describe(fe)
	}

	return fields
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return "Must be at least " + fe.Param() + " characters."
	case "max":
		return "Must be at most " + fe.Param() + " characters."
	case "gte":
		return "Must be at least " + fe.Param() + "."
	case "lte":
		return "Must be at most " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
