// Package extractor turns normalized job-posting text into JobRequirements.
// Everything is lexicon-driven and deterministic; an extraction with zero
// matches returns a valid empty result, never an error.
package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"resume-engine/internal/lexicon"
	"resume-engine/internal/normalizer"
	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

// Extractor extracts structured requirements from job-posting text
type Extractor struct {
	lex *lexicon.Lexicon
}

// New creates an extractor backed by the given lexicon
func New(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

var (
	requiredCueRe  = regexp.MustCompile(`(?i)\b(must\s+have|required|require[sd]?|essential|mandatory|minimum)\b`)
	preferredCueRe = regexp.MustCompile(`(?i)\b(nice\s+to\s+have|preferred|bonus|a\s+plus|ideally|desirable|would\s+be\s+great)\b`)

	levelCues = []struct {
		level string
		re    *regexp.Regexp
	}{
		{"executive", regexp.MustCompile(`(?i)\b(vp|vice\s+president|director|head\s+of|executive|cto|chief)\b`)},
		{"lead", regexp.MustCompile(`(?i)\b(lead|principal|staff)\b`)},
		{"senior", regexp.MustCompile(`(?i)\b(senior|sr\.?)\b`)},
		{"mid", regexp.MustCompile(`(?i)\b(mid[-\s]?level|intermediate)\b`)},
		{"entry", regexp.MustCompile(`(?i)\b(entry[-\s]?level|junior|jr\.?|new\s+grad|recent\s+graduate|intern)\b`)},
	}

	yearsRequiredRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*\+?\s*years?\b`)

	educationLineRe = regexp.MustCompile(`(?i)\b(bachelor|master|doctor|ph\.?d|associate|degree|b\.?s|m\.?s|m\.?b\.?a)\b`)

	salaryRe = regexp.MustCompile(`(?i)[$€£]\s*(\d{2,3})[,.]?(\d{3}|k)?\s*(?:[-–—to]+)\s*[$€£]?\s*(\d{2,3})[,.]?(\d{3}|k)?`)

	bulletRe = regexp.MustCompile(`^[\s]*[•·▪◦*\-–]+\s*`)
)

// Extract parses job-posting text into JobRequirements. Pasted HTML is
// sanitized first. The only hard failure is empty input.
func (e *Extractor) Extract(text string) (*models.JobRequirements, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewInputError("job posting text is empty")
	}

	text = normalizer.SanitizeHTML(text)
	segments := normalizer.Normalize(text, normalizer.DocumentJob)

	req := &models.JobRequirements{
		ExperienceLevel: "entry",
	}

	requiredSet := map[string]bool{}
	preferredSet := map[string]bool{}

	for _, seg := range segments {
		e.bucketSkills(seg, requiredSet, preferredSet)

		switch seg.Label {
		case "responsibilities":
			req.Responsibilities = append(req.Responsibilities, bulletLines(seg.Text)...)
		case "benefits":
			req.Benefits = append(req.Benefits, bulletLines(seg.Text)...)
		}
	}

	// Required wins when a skill was cued both ways; the sets stay disjoint.
	for skill := range requiredSet {
		delete(preferredSet, skill)
	}
	req.RequiredSkills = sortedKeys(requiredSet)
	req.PreferredSkills = sortedKeys(preferredSet)

	req.Technologies = e.lex.FindAll(text, e.lex.Technologies)
	req.Certifications = e.lex.FindAll(text, e.lex.Certifications)
	req.SoftSkills = e.lex.FindAll(text, e.lex.SoftSkills)
	req.IndustryKeywords = e.lex.FindAll(text, e.lex.Keywords)

	req.ExperienceLevel = detectLevel(text)
	req.ExperienceYears = detectYears(text)
	req.JobLevel = detectJobLevel(segments)
	req.EducationRequirements = educationRequirements(text)
	req.Salary = detectSalary(text)

	return req, nil
}

// bucketSkills assigns each technology mention in the segment to the required
// or preferred set. Proximity to qualifying language on the same line wins;
// unqualified mentions default to required inside a requirements section and
// preferred elsewhere.
func (e *Extractor) bucketSkills(seg normalizer.Segment, required, preferred map[string]bool) {
	inRequirements := seg.Label == "requirements"
	inPreferred := seg.Label == "preferred"

	for _, line := range strings.Split(seg.Text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		skills := e.lex.FindAll(line, e.lex.Technologies)
		if len(skills) == 0 {
			continue
		}

		target := preferred
		switch {
		case preferredCueRe.MatchString(line):
			target = preferred
		case requiredCueRe.MatchString(line):
			target = required
		case inPreferred:
			target = preferred
		case inRequirements:
			target = required
		}

		for _, skill := range skills {
			target[skill] = true
		}
	}
}

func detectLevel(text string) string {
	for _, cue := range levelCues {
		if cue.re.MatchString(text) {
			return cue.level
		}
	}
	// Years alone imply a band when no explicit cue exists
	if years := detectYears(text); years >= 5 {
		return "senior"
	} else if years >= 3 {
		return "mid"
	}
	return "entry"
}

func detectYears(text string) int {
	best := 0
	for _, m := range yearsRequiredRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > best && n <= 30 {
			best = n
		}
	}
	return best
}

// detectJobLevel reads the seniority cue from the title area: the first
// unlabeled segment, which is where the posting's title lands.
func detectJobLevel(segments []normalizer.Segment) string {
	for _, seg := range segments {
		if seg.Label != normalizer.UnlabeledSection {
			continue
		}
		head := seg.Text
		if len(head) > 200 {
			head = head[:200]
		}
		for _, cue := range levelCues {
			if cue.re.MatchString(head) {
				return cue.level
			}
		}
		break
	}
	return ""
}

func educationRequirements(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if clean == "" || len(clean) > 160 {
			continue
		}
		if educationLineRe.MatchString(clean) {
			out = append(out, clean)
		}
	}
	return utils.Dedupe(out)
}

func detectSalary(text string) *models.SalaryRange {
	m := salaryRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	parse := func(major, minor string) int {
		n, _ := strconv.Atoi(major)
		switch {
		case strings.EqualFold(minor, "k"):
			return n * 1000
		case minor != "":
			frac, _ := strconv.Atoi(minor)
			return n*1000 + frac
		default:
			return n * 1000 // "120 - 150" in a salary context means thousands
		}
	}

	min := parse(m[1], m[2])
	max := parse(m[3], m[4])
	if min > max {
		min, max = max, min
	}
	return &models.SalaryRange{Min: min, Max: max, Currency: "USD", Period: "yearly"}
}

func bulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if !bulletRe.MatchString(line) {
			continue
		}
		clean := strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
