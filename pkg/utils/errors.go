package utils

import (
	"fmt"
	"net/http"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// NewInputError rejects empty or oversized input synchronously, with no
// partial result.
func NewInputError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Invalid input",
		Detail:  detail,
	}
}

// NewTimeoutError signals that analysis exceeded the caller-supplied bound.
// The caller may retry or fall back to the previous cached analysis.
func NewTimeoutError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusRequestTimeout,
		Message: "Analysis timed out",
		Detail:  detail,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

func NewAnalysisError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Analysis failed",
		Detail:  detail,
	}
}

// NewRateLimitError signals that a session exceeded its edit rate
func NewRateLimitError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusTooManyRequests,
		Message: "Rate limit exceeded",
		Detail:  detail,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

// IsTimeout reports whether err is a timeout CustomError
func IsTimeout(err error) bool {
	if ce, ok := err.(*CustomError); ok {
		return ce.Code == http.StatusRequestTimeout
	}
	return false
}
