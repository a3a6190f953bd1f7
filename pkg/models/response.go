package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ParseResumeResponse wraps a parse result. LowConfidence flags parses whose
// confidence fell below the configured threshold; the caller decides whether
// to surface a warning.
type ParseResumeResponse struct {
	Success        bool              `json:"success"`
	Resume         *ParsedResumeData `json:"resume,omitempty"`
	LowConfidence  bool              `json:"low_confidence,omitempty"`
	ProcessingTime time.Duration     `json:"processing_time"`
	RequestID      string            `json:"request_id"`
}

// ExtractRequirementsResponse wraps an extraction result
type ExtractRequirementsResponse struct {
	Success        bool             `json:"success"`
	Requirements   *JobRequirements `json:"requirements,omitempty"`
	ProcessingTime time.Duration    `json:"processing_time"`
	RequestID      string           `json:"request_id"`
}

// GapAnalysisResponse wraps a gap analysis result
type GapAnalysisResponse struct {
	Success        bool               `json:"success"`
	Analysis       *GapAnalysisResult `json:"analysis,omitempty"`
	ATS            *ATSScoreData      `json:"ats,omitempty"`
	Cached         bool               `json:"cached"`
	ProcessingTime time.Duration      `json:"processing_time"`
	RequestID      string             `json:"request_id"`
}

// ATSScoreResponse wraps an ATS score result
type ATSScoreResponse struct {
	Success        bool          `json:"success"`
	ATS            *ATSScoreData `json:"ats,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	RequestID      string        `json:"request_id"`
}

// InsightsResponse wraps the derived optimization rollup
type InsightsResponse struct {
	Success        bool                  `json:"success"`
	Insights       *OptimizationInsights `json:"insights,omitempty"`
	ProcessingTime time.Duration         `json:"processing_time"`
	RequestID      string                `json:"request_id"`
}

// EditResponse wraps the suggestion delta for an edit event
type EditResponse struct {
	Success        bool             `json:"success"`
	SessionKey     string           `json:"session_key"`
	State          string           `json:"state"`
	Delta          *SuggestionDelta `json:"delta,omitempty"`
	ProcessingTime time.Duration    `json:"processing_time"`
	RequestID      string           `json:"request_id"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
