// Package web defines common components for a web application.
package web

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// ErrorWithDetails wraps err and its details into json friendly response.
func ErrorWithDetails(err error, details any) Response {
	return Response{Error: err.Error(), Details: details}
}

// GetErrorMsg returns a human readable suffix for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "currency":
		return " is not a valid ISO 4217 code"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "oneof":
		return " must be one of " + fe.Param()
	case "datetime":
		return " must be a date in " + fe.Param() + " layout"
	}

	return " is invalid"
}

// BindErrorMsg returns the message of the first failed field of a binding error.
// Other binding errors, such as malformed JSON, yield their own text.
func BindErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return err.Error()
}
