// Package validation contains custom validation functions for the application to use for input validation.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"TaskTrackerService/models"
	"TaskTrackerService/response"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the application rules registered.
// Field names in errors are taken from the json tag.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("taskStatus", StatusValidator)
	return validate
}

// StatusValidator checks that the field holds one of the task status literals.
func StatusValidator(fl validator.FieldLevel) bool {
	_, err := models.ParseStatus(fl.Field().String())
	return err == nil
}

// FieldErrors converts a validation error into per-field details.
// Errors that are not validator.ValidationErrors are reported against the body.
func FieldErrors(err error) []response.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []response.FieldError{BodyError(err)}
	}

	fields := make([]response.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, response.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return fields
}

// BodyError reports a request body that could not be decoded.
func BodyError(err error) response.FieldError {
	return response.FieldError{
		Field:   "body",
		Rule:    "json",
		Message: fmt.Sprintf("invalid request body: %v", err),
	}
}

// IDError reports a path id that is not an integer.
func IDError(raw string) response.FieldError {
	return response.FieldError{
		Field:   "id",
		Rule:    "int",
		Message: fmt.Sprintf("value %q is not a valid integer", raw),
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "taskStatus":
		return fmt.Sprintf("value must be one of %q, %q", models.StatusDoneLabel, models.StatusTodoLabel)
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
