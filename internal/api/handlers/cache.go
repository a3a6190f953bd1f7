package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resume-engine/internal/analyzer"
	"resume-engine/internal/api/middleware"
	"resume-engine/internal/logging"
)

// CacheStatsHandler exposes the analysis cache state
func CacheStatsHandler(cache *analyzer.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"cache":      cache.Stats(c.Request().Context()),
			"request_id": requestID,
		})
	}
}

// CacheClearHandler drops all cached analyses
func CacheClearHandler(cache *analyzer.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := middleware.RequestID(c)
		logger := logging.GetGlobalLogger()

		cleared := cache.Clear(c.Request().Context())
		logger.Info("Analysis cache cleared", map[string]interface{}{
			"request_id": requestID,
			"cleared":    cleared,
		})

		return c.JSON(http.StatusOK, map[string]interface{}{
			"success":    true,
			"cleared":    cleared,
			"request_id": requestID,
		})
	}
}
