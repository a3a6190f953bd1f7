package models

// Suggestion types
const (
	SuggestionKeyword   = "keyword"
	SuggestionImpact    = "impact"
	SuggestionStructure = "structure"
	SuggestionContent   = "content"
	SuggestionGrammar   = "grammar"
)

// Position is a half-open [Start, End) character-offset range into the
// current text of a field. End never exceeds the field length.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// OptimizationSuggestion is a positioned, re-evaluable editing suggestion.
// ID is stable across re-evaluation of the same underlying text span: it is
// derived from (field, type, normalized original-text hash), so re-issuing an
// unchanged suggestion after a no-op edit preserves its identity.
type OptimizationSuggestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"` // keyword, impact, structure, content, grammar
	Section       string   `json:"section"`
	Field         string   `json:"field"`
	OriginalText  string   `json:"original_text"`
	SuggestedText string   `json:"suggested_text"`
	Reasoning     string   `json:"reasoning"`
	Impact        string   `json:"impact"` // high, medium, low
	Confidence    float64  `json:"confidence"`
	Keywords      []string `json:"keywords,omitempty"`
	Position      Position `json:"position"`
}

// SuggestionDelta is the incremental result of an edit event. A suggestion
// whose anchor was edited away appears in Removed; it is never silently
// reattached to a different offset.
type SuggestionDelta struct {
	Added   []OptimizationSuggestion `json:"added"`
	Removed []string                 `json:"removed"` // suggestion ids
	Updated []OptimizationSuggestion `json:"updated"`
}

// Empty reports whether the delta carries no changes. Submitting an edit
// identical to the current value yields an empty delta.
func (d *SuggestionDelta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Updated) == 0
}
