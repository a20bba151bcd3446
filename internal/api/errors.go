package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-tracker/internal/api/shared"
	"github.com/phrazzld/task-tracker/internal/domain"
	"github.com/phrazzld/task-tracker/internal/redact"
	"github.com/phrazzld/task-tracker/internal/store"
)

// Client-facing messages.
const (
	msgTitleRequired       = "Title is required"
	msgInvalidRequest      = "Invalid request format"
	msgTaskNotFound        = "Task not found"
	msgTaskCreated         = "Task created successfully"
	msgTaskUpdated         = "Task updated successfully"
	msgTaskDeleted         = "Task deleted successfully"
	msgUnexpectedError     = "An unexpected error occurred"
	msgServiceNotAvailable = "Service unavailable"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Only not-found and validation conditions are distinguished; everything
// else is a storage failure.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, shared.ErrMalformedBody),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
// Storage failures report the driver message with credentials and
// file-system paths redacted.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpectedError
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return msgTaskNotFound

	case errors.Is(err, domain.ErrEmptyTaskTitle):
		return msgTitleRequired

	case errors.As(err, &validationErrs):
		for _, fe := range validationErrs {
			if fe.Field() == "Title" {
				return msgTitleRequired
			}
		}
		return msgInvalidRequest

	case errors.Is(err, shared.ErrMalformedBody),
		errors.Is(err, domain.ErrValidation):
		return msgInvalidRequest

	default:
		return redact.Error(rootCause(err))
	}
}

// rootCause strips the context added by the service and store layers,
// stopping at the error that wraps a store sentinel so its classification
// stays visible.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil || next == store.ErrDuplicate || next == store.ErrInvalidEntity {
			return err
		}
		err = next
	}
}

// HandleAPIError writes the error response for err, logging it at a level
// that matches the status code.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
