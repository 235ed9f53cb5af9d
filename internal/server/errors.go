// Package server provides the HTTP front end for the Gator.Life page and its placeholder API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrActivation indicates the page's fetch action failed upstream
type ErrActivation struct {
	Action string
	Cause  error
}

func (e *ErrActivation) Error() string {
	return fmt.Sprintf("activation %s failed: %v", e.Action, e.Cause)
}

func (e *ErrActivation) Unwrap() error {
	return e.Cause
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var activationErr *ErrActivation
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &activationErr):
		if errors.Is(err, context.Canceled) {
			return http.StatusServiceUnavailable
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
