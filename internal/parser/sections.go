package parser

import (
	"regexp"
	"strings"

	"resume-engine/pkg/models"
)

var (
	degreeRe = regexp.MustCompile(
		`(?i)\b(bachelor|master|doctor|ph\.?d|associate|b\.?[as]c?\.?|m\.?[as]c?\.?|m\.?b\.?a|b\.?e\.?|m\.?eng|diploma)\b`)
	yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	gpaRe  = regexp.MustCompile(`(?i)\bGPA[:\s]*([0-4](?:\.\d{1,2})?)\b`)

	bulletPrefixRe   = regexp.MustCompile(`^[\s]*[•·▪◦*\-–]+\s*`)
	categoryPrefixRe = regexp.MustCompile(`^[A-Za-z][A-Za-z\s/&]{1,30}:\s*`)
	techSuffixRe     = regexp.MustCompile(`(?i)^(?:technologies|tech(?:\s+stack)?|stack|built\s+with|tools)[:\s]+(.+)$`)
	parenTechRe      = regexp.MustCompile(`\(([^)]+)\)\s*$`)
)

// parseExperience splits an experience section into ordered entries. An entry
// starts at a non-bullet line that carries a date range itself or is followed
// by one; bullet and body lines attach to the current entry.
func parseExperience(text string) []models.ExperienceEntry {
	lines := nonEmptyLines(text)
	var entries []models.ExperienceEntry
	var current *models.ExperienceEntry
	var description []string

	flush := func() {
		if current != nil {
			current.Description = strings.Join(description, "\n")
			entries = append(entries, *current)
		}
		current = nil
		description = nil
	}

	for i, line := range lines {
		isBullet := bulletPrefixRe.MatchString(line)
		hasDate := dateRangeRe.MatchString(line)
		nextHasDate := i+1 < len(lines) &&
			dateRangeRe.MatchString(lines[i+1]) &&
			!bulletPrefixRe.MatchString(lines[i+1])

		// A date line right after an entry header is that entry's duration,
		// not a new entry.
		if hasDate && !isBullet && current != nil && current.Duration == "" {
			rest := strings.Trim(strings.TrimSpace(dateRangeRe.ReplaceAllString(line, "")), " ,|-–")
			if len(strings.Fields(rest)) <= 4 {
				current.Duration = strings.TrimSpace(dateRangeRe.FindString(line))
				if rest != "" && current.Company == "" {
					current.Company = rest
				}
				continue
			}
		}

		startsEntry := !isBullet && (hasDate || (nextHasDate && current != nil) ||
			(current == nil && len(strings.Fields(line)) <= 8))

		if startsEntry && !isBullet {
			if hasDate || nextHasDate || current == nil {
				flush()
				entry := models.ExperienceEntry{}
				header := line
				if m := dateRangeRe.FindString(line); m != "" {
					entry.Duration = strings.TrimSpace(m)
					header = strings.TrimSpace(dateRangeRe.ReplaceAllString(line, ""))
				}
				entry.Title, entry.Company = splitTitleCompany(header)
				current = &entry
				continue
			}
		}

		if current == nil {
			// Section starts with body text; open an untitled entry so
			// nothing is dropped.
			current = &models.ExperienceEntry{}
		}
		description = append(description, bulletPrefixRe.ReplaceAllString(line, ""))
	}
	flush()

	return entries
}

// splitTitleCompany breaks an entry header into title and company on the
// first separator found. "Engineer at Acme", "Engineer | Acme",
// "Engineer, Acme" and "Engineer - Acme" all split.
func splitTitleCompany(header string) (string, string) {
	header = strings.Trim(header, " ,|-–")
	for _, sep := range []string{" | ", " at ", " @ ", " — ", " - ", ", "} {
		if idx := strings.Index(header, sep); idx > 0 {
			return strings.TrimSpace(header[:idx]), strings.TrimSpace(header[idx+len(sep):])
		}
	}
	return header, ""
}

// parseEducation splits an education section into ordered entries keyed on
// degree-bearing lines.
func parseEducation(text string) []models.EducationEntry {
	lines := nonEmptyLines(text)
	var entries []models.EducationEntry
	var current *models.EducationEntry

	for _, line := range lines {
		clean := bulletPrefixRe.ReplaceAllString(line, "")
		if degreeRe.MatchString(clean) {
			if current != nil {
				entries = append(entries, *current)
			}
			entry := models.EducationEntry{}
			body := clean
			if m := yearRe.FindString(body); m != "" {
				entry.Year = m
			}
			if m := gpaRe.FindStringSubmatch(body); m != nil {
				entry.GPA = m[1]
			}
			if idx := strings.IndexAny(body, ",|"); idx > 0 {
				entry.Degree = strings.TrimSpace(body[:idx])
				entry.School = cleanSchool(body[idx+1:])
			} else {
				entry.Degree = strings.TrimSpace(yearRe.ReplaceAllString(body, ""))
			}
			current = &entry
			continue
		}

		if current == nil {
			continue
		}
		if current.Year == "" {
			if m := yearRe.FindString(clean); m != "" {
				current.Year = m
			}
		}
		if current.GPA == "" {
			if m := gpaRe.FindStringSubmatch(clean); m != nil {
				current.GPA = m[1]
			}
		}
		if current.School == "" && !gpaRe.MatchString(clean) {
			current.School = cleanSchool(clean)
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}

	return entries
}

func cleanSchool(s string) string {
	s = yearRe.ReplaceAllString(s, "")
	s = gpaRe.ReplaceAllString(s, "")
	return strings.Trim(s, " ,|-–")
}

// parseSkills flattens a skills section into individual skill tokens.
// Category prefixes like "Languages:" are stripped; separators cover commas,
// semicolons, bullets and pipes.
func parseSkills(text string) []string {
	var skills []string
	for _, line := range nonEmptyLines(text) {
		line = bulletPrefixRe.ReplaceAllString(line, "")
		line = categoryPrefixRe.ReplaceAllString(line, "")
		for _, token := range splitSkillLine(line) {
			token = strings.TrimSpace(token)
			if token != "" && len(token) <= 40 {
				skills = append(skills, token)
			}
		}
	}
	return skills
}

func splitSkillLine(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		switch r {
		case ',', ';', '•', '·', '|', '\t':
			return true
		}
		return false
	})
}

// parseProjects splits a projects section into entries. A non-bullet short
// line opens a new project; its technology list comes from an explicit
// "Technologies:" line, a trailing parenthesized list, or lexicon matches
// over the project body.
func (p *Parser) parseProjects(text string) []models.Project {
	lines := nonEmptyLines(text)
	var projects []models.Project
	var current *models.Project
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(body, "\n")
		if len(current.Technologies) == 0 {
			current.Technologies = p.lex.FindAll(current.Title+"\n"+current.Description, p.lex.Technologies)
		}
		projects = append(projects, *current)
		current = nil
		body = nil
	}

	for _, line := range lines {
		isBullet := bulletPrefixRe.MatchString(line)
		clean := bulletPrefixRe.ReplaceAllString(line, "")

		if m := techSuffixRe.FindStringSubmatch(clean); m != nil && current != nil {
			for _, token := range splitSkillLine(m[1]) {
				if t := strings.TrimSpace(token); t != "" {
					current.Technologies = append(current.Technologies, t)
				}
			}
			continue
		}

		if !isBullet && len(strings.Fields(clean)) <= 8 && !dateRangeRe.MatchString(clean) {
			flush()
			entry := models.Project{Title: clean}
			if m := parenTechRe.FindStringSubmatch(clean); m != nil {
				entry.Title = strings.TrimSpace(parenTechRe.ReplaceAllString(clean, ""))
				for _, token := range splitSkillLine(m[1]) {
					if t := strings.TrimSpace(token); t != "" {
						entry.Technologies = append(entry.Technologies, t)
					}
				}
			}
			current = &entry
			continue
		}

		if current == nil {
			current = &models.Project{}
		}
		body = append(body, clean)
	}
	flush()

	return projects
}
