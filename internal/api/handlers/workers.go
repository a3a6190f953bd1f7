package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resume-engine/internal/api/middleware"
	"resume-engine/internal/realtime"
	"resume-engine/internal/workers"
)

// WorkerStatsHandler exposes the pool counters and live session count
func WorkerStatsHandler(pool *workers.Pool, manager *realtime.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":          true,
			"pool":             pool.Stats(),
			"editing_sessions": manager.SessionCount(),
			"request_id":       requestID,
		})
	}
}
