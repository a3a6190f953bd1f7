package models

// Recommendation categories
const (
	RecommendationSkill      = "skill"
	RecommendationProject    = "project"
	RecommendationExperience = "experience"
	RecommendationEducation  = "education"
	RecommendationKeyword    = "keyword"
)

// Priority and effort tiers shared by recommendations and suggestions
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillsAnalysis carries the skills sub-score and its supporting sets.
// MatchingSkills and MissingRequiredSkills are always disjoint.
type SkillsAnalysis struct {
	Score                 float64  `json:"score"`
	MatchingSkills        []string `json:"matching_skills"`
	MissingRequiredSkills []string `json:"missing_required_skills"`
	MissingPreferredSkill []string `json:"missing_preferred_skills"`
	ExtraSkills           []string `json:"extra_skills"`
}

// ExperienceAnalysis carries the experience sub-score
type ExperienceAnalysis struct {
	Score         float64 `json:"score"`
	ResumeYears   float64 `json:"resume_years"`
	RequiredYears int     `json:"required_years"`
	GapYears      float64 `json:"gap_years"` // years short; 0 when meeting or exceeding
	LevelMatch    bool    `json:"level_match"`
}

// EducationAnalysis carries the education sub-score
type EducationAnalysis struct {
	Score           float64  `json:"score"`
	MatchingDegrees []string `json:"matching_degrees"`
	MissingDegrees  []string `json:"missing_degrees"`
}

// KeywordAnalysis carries the keyword sub-score plus density metrics
type KeywordAnalysis struct {
	Score           float64        `json:"score"`
	MatchedKeywords []string       `json:"matched_keywords"`
	MissingKeywords []string       `json:"missing_keywords"`
	Density         float64        `json:"density"` // matched occurrences / resume word count
	Occurrences     map[string]int `json:"occurrences,omitempty"`
}

// GapRecommendation is a single actionable item produced by the gap rules
type GapRecommendation struct {
	Category string `json:"category"` // skill, project, experience, education, keyword
	Priority string `json:"priority"` // high, medium, low
	Effort   string `json:"effort"`   // low, medium, high
	Message  string `json:"message"`
}

// GapAnalysisResult is the deterministic output of comparing a parsed resume
// against extracted job requirements. OverallScore is always the fixed
// weighted sum of the four sub-scores.
type GapAnalysisResult struct {
	OverallScore    float64             `json:"overall_match_score"`
	Skills          SkillsAnalysis      `json:"skills_analysis"`
	Experience      ExperienceAnalysis  `json:"experience_analysis"`
	Education       EducationAnalysis   `json:"education_analysis"`
	Keywords        KeywordAnalysis     `json:"keyword_analysis"`
	ATSScore        float64             `json:"ats_compatibility_score"`
	Recommendations []GapRecommendation `json:"recommendations"`
}

// SectionScore is a per-section entry in the insights breakdown
type SectionScore struct {
	Section string  `json:"section"`
	Score   float64 `json:"score"`
}

// OptimizationInsights is a derived rollup over the current gap analysis and
// section text. It is recomputed on demand, never independently mutated.
type OptimizationInsights struct {
	OverallScore       float64             `json:"overall_score"`
	ATSScore           float64             `json:"ats_score"`
	KeywordDensity     float64             `json:"keyword_density"`
	SectionBreakdown   []SectionScore      `json:"section_breakdown"`
	TopRecommendations []GapRecommendation `json:"top_recommendations"`
	MatchedKeywords    []string            `json:"matched_keywords"`
	MissingKeywords    []string            `json:"missing_keywords"`
	OverusedKeywords   []string            `json:"overused_keywords"`
	SuggestedKeywords  []string            `json:"suggested_keywords"`
	IndustryFit        float64             `json:"industry_fit"`
}
