package models

// ATS check severities
const (
	SeverityCritical   = "critical"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
)

// ATS check categories
const (
	ATSCategoryFormatting = "formatting"
	ATSCategoryContent    = "content"
	ATSCategoryStructure  = "structure"
	ATSCategoryKeywords   = "keywords"
)

// ATSIssue describes a single failed compatibility check
type ATSIssue struct {
	Check    string `json:"check"`
	Category string `json:"category"` // formatting, content, structure, keywords
	Severity string `json:"severity"` // critical, warning, suggestion
	Message  string `json:"message"`
	Fix      string `json:"fix"`
}

// ATSCategoryScores holds the four independently computed category scores.
// Each is derived only from its own check subset, never from the overall
// score, so categories stay independently explainable.
type ATSCategoryScores struct {
	Formatting float64 `json:"formatting"`
	Content    float64 `json:"content"`
	Structure  float64 `json:"structure"`
	Keywords   float64 `json:"keywords"`
}

// ATSScoreData is the output of the ATS compatibility scorer
type ATSScoreData struct {
	OverallScore float64           `json:"overall_score"`
	Categories   ATSCategoryScores `json:"categories"`
	Issues       []ATSIssue        `json:"issues"`
	PassedChecks []string          `json:"passed_checks"`
}
