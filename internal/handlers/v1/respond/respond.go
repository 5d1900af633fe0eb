// Package respond maps service errors onto the API's response envelope.
// Every failure renders as {success:false, message} with the status implied
// by the error kind.
package respond

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fintrackhq/fintrack-server/internal/service"
)

// StatusError is the wire shape of every API failure.
type StatusError struct {
	Code    int    `json:"-"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *StatusError) GetStatus() int {
	return e.Code
}

func (e *StatusError) Error() string {
	return e.Message
}

func init() {
	// Replace huma's default error model so framework-generated failures
	// (auth middleware, malformed bodies) use the same envelope as ours.
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		return &StatusError{Code: status, Success: false, Message: message}
	}
}

// Error converts a service error into a StatusError. Persistence failures
// surface the fallback message only; internals stay in the server log.
func Error(err error, fallback string) error {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var businessErr *service.BusinessRuleError

	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return huma.NewError(http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &businessErr):
		return huma.NewError(http.StatusBadRequest, businessErr.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, fallback)
	}
}
