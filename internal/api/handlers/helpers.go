package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

var validate = validator.New()

// errorResponse writes the standard error envelope
func errorResponse(c echo.Context, status int, code, message, requestID string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

// engineError maps a CustomError to its HTTP status, defaulting to 500 for
// unknown error types.
func engineError(c echo.Context, err error, requestID string) error {
	code := "analysis_failed"
	status := http.StatusInternalServerError
	if ce, ok := err.(*utils.CustomError); ok {
		status = ce.Code
		switch status {
		case http.StatusBadRequest:
			code = "invalid_input"
		case http.StatusRequestTimeout:
			code = "analysis_timeout"
		case http.StatusTooManyRequests:
			code = "rate_limited"
		case http.StatusUnprocessableEntity:
			code = "analysis_failed"
		}
	}
	return errorResponse(c, status, code, err.Error(), requestID)
}
