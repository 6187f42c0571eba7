package handler

import (
	"errors"

	"github.com/openhire/jobboard-api/internal/model"
	"github.com/openhire/jobboard-api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")

	// ===== Client Errors → 400 =====
	case errors.Is(err, service.ErrUsernameTaken):
		return model.NewBadRequestError(err.Error())
	case errors.Is(err, service.ErrInvalidJobID):
		return model.NewBadRequestError(err.Error())
	case errors.Is(err, service.ErrNoFields):
		return model.NewBadRequestError(err.Error())

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrUsernameRequired):
		return model.NewValidationError([]model.FieldError{{Field: "username", Message: err.Error()}})
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
