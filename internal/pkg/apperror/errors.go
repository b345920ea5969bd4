package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/zapgo-backend/internal/domain"
	"github.com/marcos-nsantos/zapgo-backend/internal/pkg/dispatch"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Conflict(code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain maps the domain sentinels to their HTTP form. Anything else is
// internal.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	mapped := func(code string, status int) *AppError {
		return &AppError{Code: code, Message: err.Error(), StatusCode: status, Err: err}
	}

	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		return mapped("PERMISSION_DENIED", http.StatusForbidden)
	case errors.Is(err, domain.ErrInvalidRegion):
		return mapped("INVALID_REGION", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCoordinate):
		return mapped("INVALID_COORDINATE", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidBoundingBox):
		return mapped("INVALID_BBOX", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidReading):
		return mapped("INVALID_READING", http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnknownScreen):
		return mapped("UNKNOWN_SCREEN", http.StatusBadRequest)
	case errors.Is(err, domain.ErrStationNotFound):
		return NotFound("charging station")
	case errors.Is(err, domain.ErrNotSubscribed):
		return mapped("NOT_SUBSCRIBED", http.StatusConflict)
	case errors.Is(err, domain.ErrLocationUnavailable):
		return mapped("LOCATION_UNAVAILABLE", http.StatusConflict)
	case errors.Is(err, dispatch.ErrClosed):
		return mapped("SHUTTING_DOWN", http.StatusServiceUnavailable)
	default:
		return Internal(err)
	}
}

func StatusCode(err error) int {
	return FromDomain(err).StatusCode
}
