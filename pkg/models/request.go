package models

import "time"

// ParseResumeRequest is the payload for parsing already-decoded resume text.
// Format decoding (PDF/DOCX) happens upstream of this service.
type ParseResumeRequest struct {
	Text string `json:"text" validate:"required"`
}

// ExtractRequirementsRequest is the payload for job-posting extraction.
// The text may contain pasted HTML; it is sanitized before normalization.
type ExtractRequirementsRequest struct {
	Text string `json:"text" validate:"required"`
}

// GapAnalysisRequest carries both structured inputs by value. The engine is
// stateless; persistence of these records lives with the caller.
type GapAnalysisRequest struct {
	Resume       ParsedResumeData `json:"resume" validate:"required"`
	Requirements JobRequirements  `json:"requirements" validate:"required"`
}

// ATSScoreRequest carries the parsed resume plus the raw text so the scorer
// can inspect formatting signals the parsed struct does not capture.
type ATSScoreRequest struct {
	Resume  ParsedResumeData `json:"resume" validate:"required"`
	RawText string           `json:"raw_text,omitempty"`
}

// InsightsRequest asks for the derived optimization rollup
type InsightsRequest struct {
	Resume       ParsedResumeData `json:"resume" validate:"required"`
	Requirements JobRequirements  `json:"requirements" validate:"required"`
}

// EditRequest is a single content-change event in an editing session.
// Only the most recent edit per (resume, job, section, field) key is
// authoritative.
type EditRequest struct {
	ResumeID       string `json:"resume_id" validate:"required"`
	JobID          string `json:"job_id" validate:"required"`
	Section        string `json:"section" validate:"required"`
	Field          string `json:"field" validate:"required"`
	OldValue       string `json:"old_value"`
	NewValue       string `json:"new_value"`
	CursorPosition int    `json:"cursor_position" validate:"gte=0"`

	// Requirements for the session; cached server-side after the first edit
	Requirements *JobRequirements `json:"requirements,omitempty"`
}

// EngineOptions tunes a single analysis call
type EngineOptions struct {
	Timeout time.Duration `json:"timeout,omitempty"`
}
