// Package web defines common components for a web application.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/go-petr/crypto-wallet/pkg/errorspkg"
)

// APIError is the body of every error response.
type APIError struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Exception string    `json:"exception"`
	Timestamp time.Time `json:"timestamp"`
}

// StatusText returns the status line form of code, e.g. "404 NOT_FOUND".
func StatusText(code int) string {
	text := strings.ToUpper(strings.ReplaceAll(http.StatusText(code), " ", "_"))
	return fmt.Sprintf("%d %s", code, text)
}

// NewAPIError builds an error body for the status code.
func NewAPIError(code int, exception, message string) APIError {
	return APIError{
		Status:    StatusText(code),
		Message:   message,
		Exception: exception,
		Timestamp: time.Now().UTC(),
	}
}

// StatusCode returns the http status code for the error kind.
func StatusCode(kind errorspkg.Kind) int {
	switch kind {
	case errorspkg.NotFound:
		return http.StatusNotFound
	case errorspkg.OperationNotAllowed, errorspkg.InvalidRequest:
		return http.StatusUnprocessableEntity
	case errorspkg.RateUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FromError maps err to its http status code and error body.
//
// Internal errors never leak their message.
func FromError(err error) (int, APIError) {
	kind := errorspkg.KindOf(err)
	code := StatusCode(kind)

	switch kind {
	case errorspkg.Internal:
		return code, NewAPIError(code, kind.String(), errorspkg.ErrInternal.Error())
	case errorspkg.RateUnavailable:
		return code, NewAPIError(code, kind.String(), "rate unavailable")
	default:
		return code, NewAPIError(code, kind.String(), err.Error())
	}
}

// BindingError builds the 400 error body for request binding failures.
func BindingError(err error) APIError {
	msg := err.Error()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		field := ve[0]
		msg = field.Field() + GetErrorMsg(field)
	}

	return NewAPIError(http.StatusBadRequest, "BadRequest", msg)
}

// GetErrorMsg returns a readable message suffix for a validation error.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must be at most " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	}

	return " is invalid"
}
