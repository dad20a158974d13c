package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried by DomainError.
const (
	CodeValidation     = "VALIDATION_FAILED"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeRemoteFailure  = "REMOTE_FAILURE"
	CodeRemoteOffline  = "REMOTE_UNREACHABLE"
	CodeInternal       = "INTERNAL_ERROR"
	connectionFailedUI = "Could not reach the server"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidation, message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError(CodeForbidden, message, http.StatusForbidden, nil)
}

// NewRemoteFailure wraps a non-2xx answer from the storefront API. message is the
// backend's own explanation and may be empty.
func NewRemoteFailure(status int, message string, err error) error {
	return &DomainError{
		Code:       CodeRemoteFailure,
		Message:    message,
		HTTPStatus: status,
		Err:        err,
	}
}

// NewRemoteUnreachable wraps a transport failure talking to the storefront API.
func NewRemoteUnreachable(err error) error {
	return &DomainError{
		Code:       CodeRemoteOffline,
		Message:    connectionFailedUI,
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// UserMessage picks the page-local text shown for a failed action: the backend's
// message when it sent one, a connection notice for transport failures,
// otherwise fallback.
func UserMessage(err error, fallback string) string {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return fallback
	}
	switch domainErr.Code {
	case CodeRemoteOffline:
		return connectionFailedUI
	case CodeInternal:
		return fallback
	}
	if domainErr.Message == "" {
		return fallback
	}
	return domainErr.Message
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, status int) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.HTTPStatus == status
}
