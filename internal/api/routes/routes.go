package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resume-engine/internal/analyzer"
	"resume-engine/internal/api/handlers"
	"resume-engine/internal/api/middleware"
	"resume-engine/internal/ats"
	"resume-engine/internal/config"
	"resume-engine/internal/extractor"
	"resume-engine/internal/parser"
	"resume-engine/internal/realtime"
	"resume-engine/internal/workers"
)

// Services bundles the engine components the routes depend on
type Services struct {
	Parser    *parser.Parser
	Extractor *extractor.Extractor
	Analyzer  *analyzer.Analyzer
	Scorer    *ats.Scorer
	Cache     *analyzer.ResultCache
	Realtime  *realtime.Manager
	Pool      *workers.Pool
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, svc *Services) {
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Engine.MaxInputBytes))
	e.Use(middleware.TimeoutConfig(cfg.Server.ReadTimeout))

	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(svc.Pool, svc.Cache))
		health.GET("/live", handlers.LivenessHandler)
	}

	e.GET("/status", handlers.StatusHandler(svc.Pool))

	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/parse", handlers.ParseResumeHandler(cfg, svc.Pool, svc.Parser))
		}

		job := v1.Group("/job")
		{
			job.POST("/requirements", handlers.ExtractRequirementsHandler(cfg, svc.Pool, svc.Extractor))
		}

		analysis := v1.Group("/analysis")
		{
			analysis.POST("/gap", handlers.GapAnalysisHandler(cfg, svc.Pool, svc.Analyzer, svc.Scorer, svc.Cache))
			analysis.POST("/ats", handlers.ATSScoreHandler(cfg, svc.Pool, svc.Scorer))
			analysis.POST("/insights", handlers.InsightsHandler(cfg, svc.Pool, svc.Analyzer))
		}

		rt := v1.Group("/realtime")
		{
			rt.POST("/edit", handlers.EditHandler(cfg, svc.Realtime))
			rt.DELETE("/sessions/:key", handlers.DeleteSessionHandler(svc.Realtime))
		}

		workerRoutes := v1.Group("/workers")
		{
			workerRoutes.GET("/stats", handlers.WorkerStatsHandler(svc.Pool, svc.Realtime))
		}

		cache := v1.Group("/cache")
		{
			cache.GET("/stats", handlers.CacheStatsHandler(svc.Cache))
			cache.DELETE("", handlers.CacheClearHandler(svc.Cache))
		}
	}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resume Gap Analysis Engine",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
