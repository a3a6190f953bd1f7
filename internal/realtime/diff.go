package realtime

import "resume-engine/pkg/models"

// changedSpan returns the minimal [start, end) span of old that an edit
// replaced, by trimming the common prefix and suffix. Identical strings
// return an empty span at 0.
func changedSpan(oldText, newText string) models.Position {
	if oldText == newText {
		return models.Position{}
	}

	prefix := 0
	for prefix < len(oldText) && prefix < len(newText) && oldText[prefix] == newText[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(oldText)-prefix && suffix < len(newText)-prefix &&
		oldText[len(oldText)-1-suffix] == newText[len(newText)-1-suffix] {
		suffix++
	}

	return models.Position{Start: prefix, End: len(oldText) - suffix}
}

// diffSuggestions expresses the transition between two suggestion sets as a
// delta keyed on suggestion IDs. A suggestion present in both sets but with a
// moved anchor lands in Updated; IDs are stable across re-evaluation, so an
// unchanged suggestion appears in no bucket.
func diffSuggestions(previous, current []models.OptimizationSuggestion) *models.SuggestionDelta {
	delta := &models.SuggestionDelta{}

	prevByID := make(map[string]models.OptimizationSuggestion, len(previous))
	for _, s := range previous {
		prevByID[s.ID] = s
	}

	currentIDs := make(map[string]bool, len(current))
	for _, s := range current {
		currentIDs[s.ID] = true
		prev, existed := prevByID[s.ID]
		switch {
		case !existed:
			delta.Added = append(delta.Added, s)
		case prev.Position != s.Position || prev.Reasoning != s.Reasoning:
			delta.Updated = append(delta.Updated, s)
		}
	}

	for _, s := range previous {
		if !currentIDs[s.ID] {
			delta.Removed = append(delta.Removed, s.ID)
		}
	}

	return delta
}
