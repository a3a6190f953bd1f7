package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resume-engine/internal/api/middleware"
	"resume-engine/internal/config"
	"resume-engine/internal/logging"
	"resume-engine/internal/realtime"
	"resume-engine/pkg/models"
)

// EditHandler processes one editing event and returns the suggestion delta
func EditHandler(cfg *config.Config, manager *realtime.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.EditRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		key, state, delta, err := manager.ProcessEdit(c.Request().Context(), &req)
		if err != nil {
			logger.Warn("Edit rejected", map[string]interface{}{
				"request_id":  requestID,
				"session_key": key,
				"error":       err.Error(),
			})
			return engineError(c, err, requestID)
		}

		return c.JSON(http.StatusOK, models.EditResponse{
			Success:        true,
			SessionKey:     key,
			State:          state,
			Delta:          delta,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// DeleteSessionHandler drops an editing session by key. Unknown keys return
// 404 so clients can tell a stale key from a successful cleanup.
func DeleteSessionHandler(manager *realtime.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		key := c.Param("key")

		if _, _, _, _, ok := realtime.KeyParts(key); !ok {
			return errorResponse(c, http.StatusBadRequest, "invalid_session_key",
				"Session keys have the form resumeID:jobID:section:field", requestID)
		}

		if !manager.DeleteSession(key) {
			return errorResponse(c, http.StatusNotFound, "session_not_found",
				"No session exists for the given key", requestID)
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":     true,
			"session_key": key,
			"request_id":  requestID,
		})
	}
}
