package parser

import (
	"regexp"
	"strings"

	"resume-engine/pkg/models"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	// City, ST or City, Country on its own short line
	locationRe = regexp.MustCompile(`^([A-Z][a-zA-Z.\s]+),\s*([A-Z]{2}|[A-Z][a-zA-Z\s]+)$`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[-.]\d{3}[-.]\d{4}\b`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{2,4}[-.\s]?\d{3,4}[-.\s]?\d{3,4}`),
	}

	nameLineRe = regexp.MustCompile(`^[A-Za-z][A-Za-z.'\-]*(\s+[A-Za-z][A-Za-z.'\-]*){1,3}$`)
)

// extractPersonalInfo pulls contact fields from the resume text. The name is
// taken from the first plausible line near the top; everything else is
// pattern-based over the full text.
func extractPersonalInfo(text string) models.PersonalInfo {
	info := models.PersonalInfo{}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	for _, re := range phoneRes {
		if m := re.FindString(text); m != "" {
			info.Phone = m
			break
		}
	}
	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedIn = strings.ToLower(m)
	}

	lines := nonEmptyLines(text)
	limit := len(lines)
	if limit > 6 {
		limit = 6
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if strings.ContainsAny(line, "@|/") || strings.Contains(lower, "resume") ||
			strings.Contains(lower, "curriculum") || containsDigit(line) {
			if info.Location == "" {
				if m := locationRe.FindStringSubmatch(line); m != nil && !containsDigit(line) {
					info.Location = line
				}
			}
			continue
		}
		if info.Name == "" && nameLineRe.MatchString(line) && len(line) <= 50 {
			info.Name = line
			continue
		}
		if info.Location == "" && locationRe.MatchString(line) {
			info.Location = line
		}
	}

	return info
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
