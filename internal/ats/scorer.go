// Package ats scores a parsed resume against a fixed battery of applicant
// tracking system compatibility checks. The battery is deterministic: the same
// resume always produces the same issues and the same scores.
package ats

import (
	"fmt"
	"regexp"
	"strings"

	"resume-engine/internal/lexicon"
	"resume-engine/pkg/models"
)

// Scorer runs the ATS check battery
type Scorer struct {
	lex *lexicon.Lexicon
}

// New creates a scorer backed by the given lexicon
func New(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Per-severity deductions applied inside the failing check's category
const (
	deductCritical   = 30.0
	deductWarning    = 15.0
	deductSuggestion = 5.0
)

var (
	numberRe      = regexp.MustCompile(`\d`)
	specialCharRe = regexp.MustCompile(`[^\x00-\x7F\s]`)
	tableCharRe   = regexp.MustCompile(`[│┃║╬╦╩]|(\|.*\|.*\|)`)
	bulletLineRe  = regexp.MustCompile(`(?m)^[\s]*[•·▪◦*\-–]`)
)

type check struct {
	name     string
	category string
	severity string
	message  string
	fix      string
	pass     func(*input) bool
}

type input struct {
	resume  *models.ParsedResumeData
	raw     string // original text when available, AllText otherwise
	allText string
	lex     *lexicon.Lexicon
}

// Score runs every check and folds failures into per-category scores. rawText
// is the pre-parse text when the caller has it; formatting checks read it for
// artifacts that parsing strips.
func (s *Scorer) Score(resume *models.ParsedResumeData, rawText string) *models.ATSScoreData {
	in := &input{
		resume:  resume,
		allText: resume.AllText(),
		lex:     s.lex,
	}
	in.raw = rawText
	if in.raw == "" {
		in.raw = in.allText
	}

	result := &models.ATSScoreData{
		Categories: models.ATSCategoryScores{
			Formatting: 100,
			Content:    100,
			Structure:  100,
			Keywords:   100,
		},
	}

	for _, c := range battery {
		if c.pass(in) {
			result.PassedChecks = append(result.PassedChecks, c.name)
			continue
		}
		result.Issues = append(result.Issues, models.ATSIssue{
			Check:    c.name,
			Category: c.category,
			Severity: c.severity,
			Message:  c.message,
			Fix:      c.fix,
		})
		deduct(&result.Categories, c.category, c.severity)
	}

	result.OverallScore = round1((result.Categories.Formatting +
		result.Categories.Content +
		result.Categories.Structure +
		result.Categories.Keywords) / 4)

	return result
}

// battery is the fixed, ordered check list. Adding a check changes scores for
// every resume, so entries are append-only within a lexicon version.
var battery = []check{
	{
		name:     "skills_section_present",
		category: models.ATSCategoryFormatting,
		severity: models.SeverityCritical,
		message:  "No skills section was found",
		fix:      "Add a clearly labeled Skills section listing your technical skills",
		pass:     func(in *input) bool { return len(in.resume.Skills) > 0 },
	},
	{
		name:     "no_table_formatting",
		category: models.ATSCategoryFormatting,
		severity: models.SeverityWarning,
		message:  "Table or column formatting detected",
		fix:      "Replace tables and multi-column layouts with plain single-column text",
		pass:     func(in *input) bool { return !tableCharRe.MatchString(in.raw) },
	},
	{
		name:     "limited_special_characters",
		category: models.ATSCategoryFormatting,
		severity: models.SeverityWarning,
		message:  "Heavy use of non-ASCII symbols or decorative characters",
		fix:      "Keep decorative symbols and emoji out of the resume body",
		pass: func(in *input) bool {
			if len(in.raw) == 0 {
				return true
			}
			ratio := float64(len(specialCharRe.FindAllString(in.raw, -1))) / float64(len(in.raw))
			return ratio < 0.02
		},
	},
	{
		name:     "standard_bullets",
		category: models.ATSCategoryFormatting,
		severity: models.SeveritySuggestion,
		message:  "Experience entries have no bullet points",
		fix:      "Format accomplishments as bullet points for easier scanning",
		pass: func(in *input) bool {
			if len(in.resume.Experience) == 0 {
				return true
			}
			return bulletLineRe.MatchString(in.raw)
		},
	},

	{
		name:     "contact_info_present",
		category: models.ATSCategoryContent,
		severity: models.SeverityCritical,
		message:  "No email address or phone number was found",
		fix:      "Put an email address and phone number near the top of the resume",
		pass: func(in *input) bool {
			return in.resume.PersonalInfo.Email != "" || in.resume.PersonalInfo.Phone != ""
		},
	},
	{
		name:     "summary_present",
		category: models.ATSCategoryContent,
		severity: models.SeveritySuggestion,
		message:  "No professional summary was found",
		fix:      "Open with a two to four sentence summary of your experience and focus",
		pass:     func(in *input) bool { return strings.TrimSpace(in.resume.Summary) != "" },
	},
	{
		name:     "quantified_achievements",
		category: models.ATSCategoryContent,
		severity: models.SeverityWarning,
		message:  "Experience descriptions contain few measurable results",
		fix:      "Add numbers to your accomplishments, such as percentages, counts or dollar amounts",
		pass: func(in *input) bool {
			if len(in.resume.Experience) == 0 {
				return true
			}
			quantified := 0
			for _, exp := range in.resume.Experience {
				if numberRe.MatchString(exp.Description) {
					quantified++
				}
			}
			return quantified*2 >= len(in.resume.Experience)
		},
	},
	{
		name:     "action_verbs_used",
		category: models.ATSCategoryContent,
		severity: models.SeveritySuggestion,
		message:  "Experience descriptions rarely start with action verbs",
		fix:      "Start bullets with verbs like built, led, reduced or shipped",
		pass: func(in *input) bool {
			if len(in.resume.Experience) == 0 {
				return true
			}
			var text strings.Builder
			for _, exp := range in.resume.Experience {
				text.WriteString(exp.Description)
				text.WriteString("\n")
			}
			return len(in.lex.FindAll(text.String(), in.lex.ActionVerbs)) >= 2
		},
	},

	{
		name:     "experience_section_present",
		category: models.ATSCategoryStructure,
		severity: models.SeverityCritical,
		message:  "No work experience section was found",
		fix:      "Add an Experience section with your roles in reverse chronological order",
		pass:     func(in *input) bool { return len(in.resume.Experience) > 0 },
	},
	{
		name:     "education_section_present",
		category: models.ATSCategoryStructure,
		severity: models.SeverityWarning,
		message:  "No education section was found",
		fix:      "Add an Education section with your degree and school",
		pass:     func(in *input) bool { return len(in.resume.Education) > 0 },
	},
	{
		name:     "experience_dates_present",
		category: models.ATSCategoryStructure,
		severity: models.SeverityWarning,
		message:  "Work experience entries are missing date ranges",
		fix:      "Give every role a date range such as Jan 2021 - Mar 2023",
		pass: func(in *input) bool {
			if len(in.resume.Experience) == 0 {
				return true
			}
			dated := 0
			for _, exp := range in.resume.Experience {
				if exp.Duration != "" {
					dated++
				}
			}
			return dated*2 >= len(in.resume.Experience)
		},
	},
	{
		name:     "parse_confidence",
		category: models.ATSCategoryStructure,
		severity: models.SeverityWarning,
		message:  "The resume structure was hard to parse reliably",
		fix:      "Use standard section headers such as Experience, Education and Skills",
		pass:     func(in *input) bool { return in.resume.Confidence >= 0.5 },
	},

	{
		name:     "skills_count",
		category: models.ATSCategoryKeywords,
		severity: models.SeverityWarning,
		message:  "Fewer than five skills are listed",
		fix:      "List the tools and technologies you work with, aim for eight to fifteen",
		pass:     func(in *input) bool { return len(in.resume.Skills) >= 5 },
	},
	{
		name:     "recognized_technologies",
		category: models.ATSCategoryKeywords,
		severity: models.SeveritySuggestion,
		message:  "Few recognizable technology names appear in the resume",
		fix:      "Name specific technologies instead of generic phrases like 'various tools'",
		pass: func(in *input) bool {
			return len(in.lex.FindAll(in.allText, in.lex.Technologies)) >= 3
		},
	},
	{
		name:     "no_keyword_stuffing",
		category: models.ATSCategoryKeywords,
		severity: models.SeverityWarning,
		message:  "A single keyword is repeated unusually often",
		fix:      "Vary your wording; repeating one keyword reads as stuffing",
		pass: func(in *input) bool {
			words := len(strings.Fields(in.allText))
			if words < 50 {
				return true
			}
			for _, tech := range in.lex.FindAll(in.allText, in.lex.Technologies) {
				count := countOccurrences(in.allText, tech)
				if float64(count)/float64(words)*100 > 3.0 {
					return false
				}
			}
			return true
		},
	},
}

func deduct(scores *models.ATSCategoryScores, category, severity string) {
	amount := deductSuggestion
	switch severity {
	case models.SeverityCritical:
		amount = deductCritical
	case models.SeverityWarning:
		amount = deductWarning
	}

	apply := func(score float64) float64 {
		score -= amount
		if score < 0 {
			return 0
		}
		return score
	}

	switch category {
	case models.ATSCategoryFormatting:
		scores.Formatting = apply(scores.Formatting)
	case models.ATSCategoryContent:
		scores.Content = apply(scores.Content)
	case models.ATSCategoryStructure:
		scores.Structure = apply(scores.Structure)
	case models.ATSCategoryKeywords:
		scores.Keywords = apply(scores.Keywords)
	}
}

// countOccurrences counts boundary-aware, case-insensitive occurrences of a
// term.
func countOccurrences(text, term string) int {
	pattern := fmt.Sprintf(`(?i)(^|[^\w])%s($|[^\w\+\#])`, regexp.QuoteMeta(term))
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0
	}
	return len(re.FindAllString(text, -1))
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
