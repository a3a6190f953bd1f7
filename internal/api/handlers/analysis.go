package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"resume-engine/internal/analyzer"
	"resume-engine/internal/api/middleware"
	"resume-engine/internal/ats"
	"resume-engine/internal/config"
	"resume-engine/internal/extractor"
	"resume-engine/internal/logging"
	"resume-engine/internal/parser"
	"resume-engine/internal/workers"
	"resume-engine/pkg/models"
)

// ParseResumeHandler parses decoded resume text into structured data
func ParseResumeHandler(cfg *config.Config, pool *workers.Pool, p *parser.Parser) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.ParseResumeRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		value, err := pool.Submit(c.Request().Context(), "parse", func(ctx context.Context) (interface{}, error) {
			return p.Parse(req.Text)
		})
		if err != nil {
			logger.Error("Resume parse failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return engineError(c, err, requestID)
		}

		resume := value.(*models.ParsedResumeData)
		logger.Info("Resume parsed", map[string]interface{}{
			"request_id":      requestID,
			"confidence":      resume.Confidence,
			"skills":          len(resume.Skills),
			"experience":      len(resume.Experience),
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.ParseResumeResponse{
			Success:        true,
			Resume:         resume,
			LowConfidence:  resume.Confidence < cfg.Engine.LowConfidenceThreshold,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// ExtractRequirementsHandler extracts structured requirements from
// job-posting text
func ExtractRequirementsHandler(cfg *config.Config, pool *workers.Pool, ex *extractor.Extractor) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.ExtractRequirementsRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		value, err := pool.Submit(c.Request().Context(), "extract", func(ctx context.Context) (interface{}, error) {
			return ex.Extract(req.Text)
		})
		if err != nil {
			logger.Error("Requirement extraction failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return engineError(c, err, requestID)
		}

		requirements := value.(*models.JobRequirements)
		logger.Info("Requirements extracted", map[string]interface{}{
			"request_id":       requestID,
			"required_skills":  len(requirements.RequiredSkills),
			"preferred_skills": len(requirements.PreferredSkills),
			"empty":            requirements.IsEmpty(),
			"processing_time":  time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.ExtractRequirementsResponse{
			Success:        true,
			Requirements:   requirements,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// gapWithATS bundles the two results a gap request produces
type gapWithATS struct {
	Analysis *models.GapAnalysisResult
	ATS      *models.ATSScoreData
}

// GapAnalysisHandler compares a resume against job requirements, serving
// repeat analyses of identical inputs from cache.
func GapAnalysisHandler(cfg *config.Config, pool *workers.Pool, an *analyzer.Analyzer, scorer *ats.Scorer, cache *analyzer.ResultCache) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)
		logger := logging.GetGlobalLogger()

		var req models.GapAnalysisRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		ctx := c.Request().Context()
		key := cache.Key(&req.Resume, &req.Requirements)

		if cached := cache.Get(ctx, key); cached != nil {
			logger.Info("Gap analysis served from cache", map[string]interface{}{
				"request_id": requestID,
				"cache_key":  key,
			})
			return c.JSON(http.StatusOK, models.GapAnalysisResponse{
				Success:        true,
				Analysis:       cached,
				ATS:            scorer.Score(&req.Resume, ""),
				Cached:         true,
				ProcessingTime: time.Since(startTime),
				RequestID:      requestID,
			})
		}

		value, err := pool.Submit(ctx, "gap", func(taskCtx context.Context) (interface{}, error) {
			result := &gapWithATS{}
			g, _ := errgroup.WithContext(taskCtx)
			g.Go(func() error {
				result.Analysis = an.AnalyzeGap(&req.Resume, &req.Requirements)
				return nil
			})
			g.Go(func() error {
				result.ATS = scorer.Score(&req.Resume, "")
				return nil
			})
			if err := g.Wait(); err != nil {
				return nil, err
			}
			return result, nil
		})
		if err != nil {
			logger.Error("Gap analysis failed", map[string]interface{}{
				"request_id": requestID,
				"error":      err.Error(),
			})
			return engineError(c, err, requestID)
		}

		result := value.(*gapWithATS)
		cache.Put(ctx, key, result.Analysis)

		logger.Info("Gap analysis completed", map[string]interface{}{
			"request_id":      requestID,
			"overall_score":   result.Analysis.OverallScore,
			"skills_score":    result.Analysis.Skills.Score,
			"processing_time": time.Since(startTime).String(),
		})

		return c.JSON(http.StatusOK, models.GapAnalysisResponse{
			Success:        true,
			Analysis:       result.Analysis,
			ATS:            result.ATS,
			Cached:         false,
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// ATSScoreHandler runs the ATS check battery on its own
func ATSScoreHandler(cfg *config.Config, pool *workers.Pool, scorer *ats.Scorer) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)

		var req models.ATSScoreRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		value, err := pool.Submit(c.Request().Context(), "ats", func(ctx context.Context) (interface{}, error) {
			return scorer.Score(&req.Resume, req.RawText), nil
		})
		if err != nil {
			return engineError(c, err, requestID)
		}

		return c.JSON(http.StatusOK, models.ATSScoreResponse{
			Success:        true,
			ATS:            value.(*models.ATSScoreData),
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}

// InsightsHandler returns the derived optimization rollup
func InsightsHandler(cfg *config.Config, pool *workers.Pool, an *analyzer.Analyzer) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := middleware.RequestID(c)

		var req models.InsightsRequest
		if err := c.Bind(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "invalid_request", "Invalid request format", requestID)
		}
		if err := validate.Struct(&req); err != nil {
			return errorResponse(c, http.StatusBadRequest, "validation_failed", err.Error(), requestID)
		}

		value, err := pool.Submit(c.Request().Context(), "insights", func(ctx context.Context) (interface{}, error) {
			gap := an.AnalyzeGap(&req.Resume, &req.Requirements)
			return an.BuildInsights(&req.Resume, &req.Requirements, gap), nil
		})
		if err != nil {
			return engineError(c, err, requestID)
		}

		return c.JSON(http.StatusOK, models.InsightsResponse{
			Success:        true,
			Insights:       value.(*models.OptimizationInsights),
			ProcessingTime: time.Since(startTime),
			RequestID:      requestID,
		})
	}
}
