package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

// RequestValidation assigns every request an ID and rejects bodies over the
// configured input ceiling before they are read.
func RequestValidation(maxBodyBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > maxBodyBytes {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body exceeds the input size limit",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}

// RequestID returns the ID assigned by RequestValidation, minting one if the
// middleware did not run.
func RequestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
