package handlers

import (
	"errors"
	"net/http"

	"engenharia_os/internal/adapter/http/dto/request"
	"engenharia_os/internal/usecase"
	"engenharia_os/internal/usecase/interfaces"
	"engenharia_os/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapLifecycleError converts use case errors into the HTTP envelope. The
// message is the same text the operator receives as a notification.
func mapLifecycleError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var stageErr *usecase.StageTransitionError
	var persistenceErr *usecase.PersistenceError

	msg := usecase.UserMessage(err)

	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainError("VALIDATION_FAILED", msg, err, http.StatusUnprocessableEntity).WithDetails(validationErr.Reasons...)
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid date, use yyyy-mm-dd", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOSID), errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrSessionNotFound):
		return pkg.NewDomainError("SESSION_NOT_FOUND", "Edit session not found", err, http.StatusNotFound)
	case errors.As(err, &stageErr):
		return pkg.NewDomainError("STAGE_TRANSITION_FAILED", msg, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleServiceOrder), errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainError("SERVICE_ORDER_CHANGED", msg, err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrServiceOrderNotFound):
		return pkg.NewDomainError("SERVICE_ORDER_NOT_FOUND", msg, err, http.StatusNotFound)
	case errors.As(err, &persistenceErr):
		return pkg.NewDomainError("PERSISTENCE_ERROR", msg, err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrNotEligible):
		return pkg.NewDomainError("NOT_ELIGIBLE", msg, err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNoActiveEdit), errors.Is(err, usecase.ErrEditTargetMismatch):
		return pkg.NewDomainError("NO_ACTIVE_EDIT", msg, err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
