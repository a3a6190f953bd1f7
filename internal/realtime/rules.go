// Package realtime evaluates editing suggestions against the most recent
// content of each resume field. Evaluation is synchronous and pure; session
// state only tracks which suggestions the client has already seen so that
// responses can be expressed as deltas.
package realtime

import (
	"fmt"
	"regexp"
	"strings"

	"resume-engine/internal/lexicon"
	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

const (
	summaryMinWords = 30
	summaryMaxWords = 100
	maxBullets      = 8
	maxSkillTokens  = 15
)

var (
	bulletRe     = regexp.MustCompile(`(?m)^[\s]*[•·▪◦*\-–]+\s*(.+)$`)
	digitRe      = regexp.MustCompile(`\d`)
	weakOpenerRe = regexp.MustCompile(`(?i)^\s*(responsible\s+for|worked\s+on|helped\s+with|assisted\s+with|involved\s+in)`)
	wordRe       = regexp.MustCompile(`[A-Za-z']+`)
)

// ruleEngine turns one field's text into its current suggestion set
type ruleEngine struct {
	lex *lexicon.Lexicon
}

// evaluate runs every rule that applies to the field. The returned order is
// the fixed rule order, so identical input always yields an identical set.
func (e *ruleEngine) evaluate(section, field, text string, req *models.JobRequirements) []models.OptimizationSuggestion {
	var out []models.OptimizationSuggestion

	if isSummaryField(section, field) {
		out = append(out, e.summaryLength(field, text)...)
	}
	out = append(out, e.missingKeywords(section, field, text, req)...)
	if isDescriptionField(section, field) {
		out = append(out, e.quantifyAchievements(field, text)...)
		out = append(out, e.actionVerbOpeners(field, text)...)
		out = append(out, e.bulletStructure(field, text)...)
	}
	if isSkillsField(section, field) {
		out = append(out, e.skillsOrganization(field, text)...)
	}
	if isSummaryField(section, field) || isDescriptionField(section, field) {
		out = append(out, e.repeatedWords(section, field, text)...)
	}

	return out
}

func (e *ruleEngine) summaryLength(field, text string) []models.OptimizationSuggestion {
	words := len(strings.Fields(text))
	if words == 0 {
		return nil
	}

	switch {
	case words < summaryMinWords:
		return []models.OptimizationSuggestion{newSuggestion(
			models.SuggestionContent, "summary", field, text,
			"",
			fmt.Sprintf("The summary is %d words; aim for %d to %d so it reads as a complete pitch", words, summaryMinWords, summaryMaxWords),
			models.PriorityMedium, 0.8, nil,
			models.Position{Start: 0, End: len(text)},
		)}
	case words > summaryMaxWords:
		return []models.OptimizationSuggestion{newSuggestion(
			models.SuggestionContent, "summary", field, text,
			"",
			fmt.Sprintf("The summary is %d words; trimming below %d keeps recruiters reading", words, summaryMaxWords),
			models.PriorityLow, 0.7, nil,
			models.Position{Start: 0, End: len(text)},
		)}
	}
	return nil
}

// missingKeywords flags required skills absent from the field. Anchored to
// the end of the text since there is no specific span to point at.
func (e *ruleEngine) missingKeywords(section, field, text string, req *models.JobRequirements) []models.OptimizationSuggestion {
	if req == nil || len(req.RequiredSkills) == 0 || strings.TrimSpace(text) == "" {
		return nil
	}
	if !isSummaryField(section, field) && !isDescriptionField(section, field) && !isSkillsField(section, field) {
		return nil
	}

	var missing []string
	for _, skill := range req.RequiredSkills {
		if !e.mentions(text, skill) {
			missing = append(missing, skill)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if len(missing) > 3 {
		missing = missing[:3]
	}

	return []models.OptimizationSuggestion{newSuggestion(
		models.SuggestionKeyword, section, field, text,
		"",
		fmt.Sprintf("Required skills not mentioned here: %s. Add the ones that genuinely apply", strings.Join(missing, ", ")),
		models.PriorityHigh, 0.9, missing,
		models.Position{Start: len(text), End: len(text)},
	)}
}

// quantifyAchievements anchors to the first bullet that carries no number
func (e *ruleEngine) quantifyAchievements(field, text string) []models.OptimizationSuggestion {
	for _, loc := range bulletRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		line := text[start:end]
		if !digitRe.MatchString(line) {
			return []models.OptimizationSuggestion{newSuggestion(
				models.SuggestionImpact, "experience", field, line,
				"",
				"Add a measurable result to this bullet, such as a percentage, count or dollar amount",
				models.PriorityMedium, 0.75, nil,
				models.Position{Start: start, End: end},
			)}
		}
	}
	return nil
}

// actionVerbOpeners anchors to the first bullet with a weak opener or a
// non-verb first word
func (e *ruleEngine) actionVerbOpeners(field, text string) []models.OptimizationSuggestion {
	for _, loc := range bulletRe.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[2], loc[3]
		line := text[start:end]

		if !weakOpenerRe.MatchString(line) {
			continue
		}
		verb := suggestVerb(e.lex, line)
		return []models.OptimizationSuggestion{newSuggestion(
			models.SuggestionGrammar, "experience", field, line,
			"",
			fmt.Sprintf("Open with a strong action verb instead of a passive phrase, for example %q", verb),
			models.PriorityMedium, 0.8, nil,
			models.Position{Start: start, End: end},
		)}
	}
	return nil
}

// suggestVerb picks a deterministic replacement verb for a weak opener. The
// choice keys off the line hash so the same line always gets the same verb.
func suggestVerb(lex *lexicon.Lexicon, line string) string {
	if len(lex.ActionVerbs) == 0 {
		return "built"
	}
	sum := 0
	for _, b := range utils.TextHash(line) {
		sum += int(b)
	}
	return lex.ActionVerbs[sum%len(lex.ActionVerbs)]
}

// bulletStructure flags walls of text and overlong bullet lists
func (e *ruleEngine) bulletStructure(field, text string) []models.OptimizationSuggestion {
	bullets := bulletRe.FindAllString(text, -1)
	words := len(strings.Fields(text))

	switch {
	case len(bullets) == 0 && words > 60:
		return []models.OptimizationSuggestion{newSuggestion(
			models.SuggestionStructure, "experience", field, text,
			"",
			"Break this description into bullet points; dense paragraphs get skimmed past",
			models.PriorityMedium, 0.8, nil,
			models.Position{Start: 0, End: len(text)},
		)}
	case len(bullets) > maxBullets:
		return []models.OptimizationSuggestion{newSuggestion(
			models.SuggestionStructure, "experience", field, text,
			"",
			fmt.Sprintf("This entry has %d bullets; keeping the strongest %d makes each one land harder", len(bullets), maxBullets),
			models.PriorityLow, 0.7, nil,
			models.Position{Start: 0, End: len(text)},
		)}
	}
	return nil
}

// skillsOrganization flags unstructured skill dumps
func (e *ruleEngine) skillsOrganization(field, text string) []models.OptimizationSuggestion {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == '•' || r == '|' || r == '\n'
	})
	count := 0
	for _, t := range tokens {
		if strings.TrimSpace(t) != "" {
			count++
		}
	}
	if count <= maxSkillTokens {
		return nil
	}

	return []models.OptimizationSuggestion{newSuggestion(
		models.SuggestionStructure, "skills", field, text,
		"",
		fmt.Sprintf("%d skills in one list is hard to scan; group them under headings like Languages, Frameworks and Tools", count),
		models.PriorityLow, 0.7, nil,
		models.Position{Start: 0, End: len(text)},
	)}
}

// repeatedWords anchors to the first immediately duplicated word. RE2 has no
// backreferences, so this walks the tokens directly.
func (e *ruleEngine) repeatedWords(section, field, text string) []models.OptimizationSuggestion {
	tokens := wordRe.FindAllStringIndex(text, -1)
	for i := 1; i < len(tokens); i++ {
		prev := strings.ToLower(text[tokens[i-1][0]:tokens[i-1][1]])
		curr := strings.ToLower(text[tokens[i][0]:tokens[i][1]])
		if prev != curr || len(curr) < 2 {
			continue
		}
		// Words on separate lines are separate thoughts, not a typo
		if strings.ContainsAny(text[tokens[i-1][1]:tokens[i][0]], "\n") {
			continue
		}

		span := text[tokens[i-1][0]:tokens[i][1]]
		return []models.OptimizationSuggestion{newSuggestion(
			models.SuggestionGrammar, section, field, span,
			text[tokens[i-1][0]:tokens[i-1][1]],
			fmt.Sprintf("The word %q appears twice in a row", curr),
			models.PriorityLow, 0.9, nil,
			models.Position{Start: tokens[i-1][0], End: tokens[i][1]},
		)}
	}
	return nil
}

func (e *ruleEngine) mentions(text, skill string) bool {
	terms := []string{skill}
	if aliases, ok := e.lex.Synonyms[lexicon.Normalize(skill)]; ok {
		terms = append(terms, aliases...)
	}
	for _, term := range terms {
		pattern := `(?i)(^|[^\w])` + regexp.QuoteMeta(strings.TrimSpace(term)) + `($|[^\w\+\#])`
		if re, err := regexp.Compile(pattern); err == nil && re.MatchString(text) {
			return true
		}
	}
	return false
}

// newSuggestion builds a suggestion with its stable identity: the ID hashes
// (field, type, anchored text), so re-evaluating unchanged text re-issues the
// same ID.
func newSuggestion(sType, section, field, originalText, suggestedText, reasoning, impact string, confidence float64, keywords []string, pos models.Position) models.OptimizationSuggestion {
	return models.OptimizationSuggestion{
		ID:            fmt.Sprintf("%s-%s-%s", field, sType, utils.TextHash(originalText)),
		Type:          sType,
		Section:       section,
		Field:         field,
		OriginalText:  originalText,
		SuggestedText: suggestedText,
		Reasoning:     reasoning,
		Impact:        impact,
		Confidence:    confidence,
		Keywords:      keywords,
		Position:      pos,
	}
}

func isSummaryField(section, field string) bool {
	return section == "summary" || field == "summary"
}

func isDescriptionField(section, field string) bool {
	return section == "experience" || section == "projects" ||
		strings.Contains(field, "description")
}

func isSkillsField(section, field string) bool {
	return section == "skills" || field == "skills"
}
