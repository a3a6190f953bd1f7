// Package analyzer computes the deterministic gap analysis between a parsed
// resume and extracted job requirements, plus the derived optimization
// insights rollup. Scoring is pure arithmetic over lexicon matches; the same
// inputs always produce the same result.
package analyzer

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"resume-engine/internal/ats"
	"resume-engine/internal/lexicon"
	"resume-engine/internal/parser"
	"resume-engine/pkg/models"
)

// Fixed sub-score weights. OverallScore is always this weighted sum; changing
// a weight is a scoring-version change.
const (
	weightSkills     = 0.40
	weightKeywords   = 0.25
	weightExperience = 0.25
	weightEducation  = 0.10

	// Inside the skills sub-score, required matches dominate preferred ones
	weightRequired  = 0.70
	weightPreferred = 0.30
)

// Minimum years implied by each experience level
var levelYears = map[string]int{
	"entry":     0,
	"mid":       3,
	"senior":    5,
	"lead":      8,
	"executive": 10,
}

// Education ranks, low to high. Meeting the required rank scores 100, one
// rank below scores 60, anything lower scores 30.
var degreeRanks = []struct {
	rank int
	re   *regexp.Regexp
}{
	{5, regexp.MustCompile(`(?i)\b(doctor|ph\.?d|doctorate)\b`)},
	{4, regexp.MustCompile(`(?i)\b(master|m\.?s\.?c?|m\.?b\.?a|m\.?eng|m\.?a\b)`)},
	{3, regexp.MustCompile(`(?i)\b(bachelor|b\.?s\.?c?|b\.?a\b|b\.?e\b|b\.?eng)`)},
	{2, regexp.MustCompile(`(?i)\b(associate|a\.?a\.?s?)\b`)},
	{1, regexp.MustCompile(`(?i)\b(high\s+school|ged|diploma)\b`)},
}

// Analyzer computes gap analyses
type Analyzer struct {
	lex *lexicon.Lexicon
	ats *ats.Scorer
	now func() time.Time
}

// New creates an analyzer backed by the given lexicon
func New(lex *lexicon.Lexicon) *Analyzer {
	return &Analyzer{
		lex: lex,
		ats: ats.New(lex),
		now: time.Now,
	}
}

// AnalyzeGap compares a parsed resume against job requirements. Empty
// requirements are valid and score as having no gap on the empty dimensions.
func (a *Analyzer) AnalyzeGap(resume *models.ParsedResumeData, req *models.JobRequirements) *models.GapAnalysisResult {
	result := &models.GapAnalysisResult{
		Skills:     a.analyzeSkills(resume, req),
		Experience: a.analyzeExperience(resume, req),
		Education:  a.analyzeEducation(resume, req),
		Keywords:   a.analyzeKeywords(resume, req),
	}

	result.OverallScore = round1(
		weightSkills*result.Skills.Score +
			weightKeywords*result.Keywords.Score +
			weightExperience*result.Experience.Score +
			weightEducation*result.Education.Score)

	result.ATSScore = a.ats.Score(resume, "").OverallScore
	result.Recommendations = a.recommend(result, req)

	return result
}

// analyzeSkills scores required and preferred skill coverage. Matching runs
// through the synonym table, so "js" on the resume satisfies "JavaScript".
func (a *Analyzer) analyzeSkills(resume *models.ParsedResumeData, req *models.JobRequirements) models.SkillsAnalysis {
	out := models.SkillsAnalysis{}

	resumeSkills := resume.Skills
	allText := resume.AllText()

	has := func(skill string) bool {
		for _, rs := range resumeSkills {
			if a.lex.Match(rs, skill) {
				return true
			}
		}
		// Skills also count when demonstrated in experience or project text
		return a.hasInText(allText, skill)
	}

	requiredMatched := 0
	for _, skill := range req.RequiredSkills {
		if has(skill) {
			out.MatchingSkills = append(out.MatchingSkills, skill)
			requiredMatched++
		} else {
			out.MissingRequiredSkills = append(out.MissingRequiredSkills, skill)
		}
	}

	preferredMatched := 0
	for _, skill := range req.PreferredSkills {
		if has(skill) {
			out.MatchingSkills = append(out.MatchingSkills, skill)
			preferredMatched++
		} else {
			out.MissingPreferredSkill = append(out.MissingPreferredSkill, skill)
		}
	}

	wanted := map[string]bool{}
	for _, skill := range append(append([]string{}, req.RequiredSkills...), req.PreferredSkills...) {
		wanted[a.lex.Canonical(skill)] = true
	}
	for _, skill := range resumeSkills {
		if !wanted[a.lex.Canonical(skill)] {
			out.ExtraSkills = append(out.ExtraSkills, skill)
		}
	}

	switch {
	case len(req.RequiredSkills) == 0 && len(req.PreferredSkills) == 0:
		out.Score = 100
	case len(req.PreferredSkills) == 0:
		out.Score = math.Round(ratio(requiredMatched, len(req.RequiredSkills)) * 100)
	case len(req.RequiredSkills) == 0:
		out.Score = math.Round(ratio(preferredMatched, len(req.PreferredSkills)) * 100)
	default:
		out.Score = math.Round(
			weightRequired*ratio(requiredMatched, len(req.RequiredSkills))*100 +
				weightPreferred*ratio(preferredMatched, len(req.PreferredSkills))*100)
	}

	return out
}

// analyzeExperience compares total resume years against the requirement. The
// requirement is the larger of the explicit years and the level minimum.
func (a *Analyzer) analyzeExperience(resume *models.ParsedResumeData, req *models.JobRequirements) models.ExperienceAnalysis {
	durations := make([]string, 0, len(resume.Experience))
	for _, exp := range resume.Experience {
		durations = append(durations, exp.Duration)
	}

	out := models.ExperienceAnalysis{
		ResumeYears:   round1(parser.TotalExperienceYears(durations, a.now())),
		RequiredYears: req.ExperienceYears,
	}
	if min, ok := levelYears[req.ExperienceLevel]; ok && min > out.RequiredYears {
		out.RequiredYears = min
	}
	out.LevelMatch = out.ResumeYears >= float64(levelYears[req.ExperienceLevel])

	if out.RequiredYears == 0 {
		out.Score = 100
		return out
	}

	if out.ResumeYears >= float64(out.RequiredYears) {
		out.Score = 100
		return out
	}

	out.GapYears = round1(float64(out.RequiredYears) - out.ResumeYears)
	out.Score = math.Round(out.ResumeYears / float64(out.RequiredYears) * 100)
	return out
}

// analyzeEducation ranks the resume's highest degree against the posting's
// requirement. Meeting the rank scores 100, one below 60, lower 30. Postings
// with no education requirement score 100.
func (a *Analyzer) analyzeEducation(resume *models.ParsedResumeData, req *models.JobRequirements) models.EducationAnalysis {
	out := models.EducationAnalysis{}

	requiredRank := 0
	var requiredLine string
	for _, line := range req.EducationRequirements {
		if r := degreeRank(line); r > requiredRank {
			requiredRank = r
			requiredLine = line
		}
	}

	if requiredRank == 0 {
		out.Score = 100
		return out
	}

	resumeRank := 0
	for _, edu := range resume.Education {
		if r := degreeRank(edu.Degree); r > resumeRank {
			resumeRank = r
		}
	}

	switch {
	case resumeRank >= requiredRank:
		out.Score = 100
		for _, edu := range resume.Education {
			if degreeRank(edu.Degree) >= requiredRank {
				out.MatchingDegrees = append(out.MatchingDegrees, edu.Degree)
			}
		}
	case resumeRank == requiredRank-1:
		out.Score = 60
		out.MissingDegrees = append(out.MissingDegrees, requiredLine)
	default:
		out.Score = 30
		out.MissingDegrees = append(out.MissingDegrees, requiredLine)
	}

	return out
}

// analyzeKeywords measures how much of the posting's keyword surface appears
// in the resume text, and at what density.
func (a *Analyzer) analyzeKeywords(resume *models.ParsedResumeData, req *models.JobRequirements) models.KeywordAnalysis {
	out := models.KeywordAnalysis{Occurrences: map[string]int{}}

	vocabulary := keywordVocabulary(req, a.lex)
	if len(vocabulary) == 0 {
		out.Score = 100
		return out
	}

	allText := resume.AllText()
	words := len(strings.Fields(allText))

	totalOccurrences := 0
	for _, kw := range vocabulary {
		count := a.countWithAliases(allText, kw)
		if count > 0 {
			out.MatchedKeywords = append(out.MatchedKeywords, kw)
			out.Occurrences[kw] = count
			totalOccurrences += count
		} else {
			out.MissingKeywords = append(out.MissingKeywords, kw)
		}
	}

	out.Score = math.Round(ratio(len(out.MatchedKeywords), len(vocabulary)) * 100)
	if words > 0 {
		out.Density = round1(float64(totalOccurrences) / float64(words) * 100)
	}

	return out
}

// recommend derives the actionable item list from the sub-analyses. Ordering
// is stable: high priority first, then category order.
func (a *Analyzer) recommend(result *models.GapAnalysisResult, req *models.JobRequirements) []models.GapRecommendation {
	var recs []models.GapRecommendation

	if n := len(result.Skills.MissingRequiredSkills); n > 0 {
		recs = append(recs, models.GapRecommendation{
			Category: models.RecommendationSkill,
			Priority: models.PriorityHigh,
			Effort:   "medium",
			Message: fmt.Sprintf("Add the required skills you have experience with: %s",
				strings.Join(result.Skills.MissingRequiredSkills, ", ")),
		})
		recs = append(recs, models.GapRecommendation{
			Category: models.RecommendationProject,
			Priority: models.PriorityMedium,
			Effort:   "high",
			Message: fmt.Sprintf("Build or surface a project using %s to close the biggest skill gap",
				result.Skills.MissingRequiredSkills[0]),
		})
	}

	if len(result.Skills.MissingPreferredSkill) > 0 {
		recs = append(recs, models.GapRecommendation{
			Category: models.RecommendationSkill,
			Priority: models.PriorityLow,
			Effort:   "medium",
			Message: fmt.Sprintf("Preferred skills worth adding if you have them: %s",
				strings.Join(result.Skills.MissingPreferredSkill, ", ")),
		})
	}

	if result.Experience.GapYears > 0 {
		priority := models.PriorityMedium
		if result.Experience.GapYears >= 2 {
			priority = models.PriorityHigh
		}
		recs = append(recs, models.GapRecommendation{
			Category: models.RecommendationExperience,
			Priority: priority,
			Effort:   "high",
			Message: fmt.Sprintf("The posting asks for %d years of experience; your resume shows %.1f. Make earlier or adjacent experience visible if it applies",
				result.Experience.RequiredYears, result.Experience.ResumeYears),
		})
	}

	if len(result.Education.MissingDegrees) > 0 {
		recs = append(recs, models.GapRecommendation{
			Category: models.RecommendationEducation,
			Priority: models.PriorityMedium,
			Effort:   "high",
			Message: fmt.Sprintf("The posting asks for: %s. List equivalent coursework or certifications if a matching degree is missing",
				strings.Join(result.Education.MissingDegrees, "; ")),
		})
	}

	if n := len(result.Keywords.MissingKeywords); n > 0 {
		limit := n
		if limit > 5 {
			limit = 5
		}
		recs = append(recs, models.GapRecommendation{
			Category: models.RecommendationKeyword,
			Priority: models.PriorityMedium,
			Effort:   "low",
			Message: fmt.Sprintf("Work these posting keywords into your summary and experience where true: %s",
				strings.Join(result.Keywords.MissingKeywords[:limit], ", ")),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return priorityRank(recs[i].Priority) < priorityRank(recs[j].Priority)
	})

	return recs
}

func priorityRank(p string) int {
	switch p {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	default:
		return 2
	}
}

// keywordVocabulary is the deduplicated union of the posting's skills,
// technologies and industry keywords, in first-seen order.
func keywordVocabulary(req *models.JobRequirements, lex *lexicon.Lexicon) []string {
	seen := map[string]bool{}
	var out []string
	for _, group := range [][]string{
		req.RequiredSkills, req.PreferredSkills, req.Technologies, req.IndustryKeywords,
	} {
		for _, kw := range group {
			key := lex.Canonical(kw)
			if !seen[key] {
				seen[key] = true
				out = append(out, kw)
			}
		}
	}
	return out
}

func (a *Analyzer) hasInText(text, skill string) bool {
	terms := []string{skill}
	if aliases, ok := a.lex.Synonyms[lexicon.Normalize(skill)]; ok {
		terms = append(terms, aliases...)
	}
	for _, term := range terms {
		if containsToken(text, term) {
			return true
		}
	}
	return false
}

func (a *Analyzer) countWithAliases(text, term string) int {
	total := countToken(text, term)
	if aliases, ok := a.lex.Synonyms[lexicon.Normalize(term)]; ok {
		for _, alias := range aliases {
			total += countToken(text, alias)
		}
	}
	return total
}

func containsToken(text, term string) bool {
	return countToken(text, term) > 0
}

func countToken(text, term string) int {
	pattern := `(?i)(^|[^\w])` + regexp.QuoteMeta(strings.TrimSpace(term)) + `($|[^\w\+\#])`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0
	}
	return len(re.FindAllString(text, -1))
}

func degreeRank(text string) int {
	for _, d := range degreeRanks {
		if d.re.MatchString(text) {
			return d.rank
		}
	}
	return 0
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 1
	}
	return float64(n) / float64(d)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
