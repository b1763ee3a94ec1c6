// Package server provides the HTTP REST API for the interview assistant.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/interview-assistant/internal/agent"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Stage errors are inspected through their wrapping, so a not-found raised
// deep inside a pipeline stage still maps to 404.
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		badCreds      *ErrInvalidCredentials
		userNotFound  *ErrUserNotFound
		badPassword   *ErrPasswordMismatch
		validationErr *agent.ValidationError
		notFoundErr   *agent.NotFoundError
		externalErr   *agent.ExternalServiceError
	)

	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &badCreds), errors.As(err, &badPassword):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound), errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &externalErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
