package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"resume-engine/internal/analyzer"
	"resume-engine/internal/workers"
	"resume-engine/pkg/models"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	})
}

// ReadinessHandler reports whether the service can take analysis traffic.
// Redis being down is reported but not fatal; the cache degrades in-process.
func ReadinessHandler(pool *workers.Pool, cache *analyzer.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := "ready"
		httpStatus := http.StatusOK

		if pool.IsRunning() {
			checks["workers"] = "ok"
		} else {
			checks["workers"] = "not_running"
			status = "not_ready"
			httpStatus = http.StatusServiceUnavailable
		}

		if cache.Healthy(c.Request().Context()) {
			checks["cache"] = "ok"
		} else {
			checks["cache"] = "degraded"
		}

		return c.JSON(httpStatus, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(pool *workers.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{
			"api":     "operational",
			"workers": "operational",
		}
		if !pool.IsRunning() {
			checks["workers"] = "stopped"
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}
