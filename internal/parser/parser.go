// Package parser turns normalized resume text into ParsedResumeData. It
// fails softly: text that fits no recognized section is retained under the
// summary instead of being dropped, and every result carries a confidence
// score so callers can flag degraded parses instead of trusting them
// silently.
package parser

import (
	"strings"

	"resume-engine/internal/lexicon"
	"resume-engine/internal/normalizer"
	"resume-engine/pkg/models"
	"resume-engine/pkg/utils"
)

// Parser extracts structured resume data from raw text
type Parser struct {
	lex *lexicon.Lexicon
}

// New creates a parser backed by the given lexicon
func New(lex *lexicon.Lexicon) *Parser {
	return &Parser{lex: lex}
}

// Parse converts already-decoded resume text into ParsedResumeData. The only
// hard failure is empty input; everything else degrades to lower confidence.
func (p *Parser) Parse(text string) (*models.ParsedResumeData, error) {
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewInputError("resume text is empty")
	}

	segments := normalizer.Normalize(text, normalizer.DocumentResume)

	result := &models.ParsedResumeData{
		PersonalInfo: extractPersonalInfo(text),
	}

	var summaryParts []string
	recognized := 0

	for _, seg := range segments {
		label := seg.Label
		if label == normalizer.UnlabeledSection {
			// Headerless resumes still often have a skills block or a
			// dated work history; reclassify by content shape.
			label = classifyByContent(seg.Text)
		}

		switch label {
		case "summary":
			summaryParts = append(summaryParts, seg.Clean())
			recognized++
		case "experience":
			result.Experience = append(result.Experience, parseExperience(seg.Text)...)
			recognized++
		case "education":
			result.Education = append(result.Education, parseEducation(seg.Text)...)
			recognized++
		case "skills":
			result.Skills = append(result.Skills, parseSkills(seg.Text)...)
			recognized++
		case "projects":
			result.Projects = append(result.Projects, p.parseProjects(seg.Text)...)
			recognized++
		case "certifications":
			// The data model has no certification field; keep the text
			// reachable for keyword scoring via the summary.
			summaryParts = append(summaryParts, seg.Clean())
		default:
			// Soft failure: unparseable content lands in the summary
			summaryParts = append(summaryParts, seg.Clean())
		}
	}

	result.Skills = utils.Dedupe(result.Skills)
	result.Summary = strings.TrimSpace(strings.Join(summaryParts, "\n"))
	result.Confidence = confidence(result, len(segments), recognized)

	return result, nil
}

// classifyByContent is the fallback heuristic for unlabeled segments: date
// ranges mark experience, degree tokens mark education, and short
// comma-separated token runs mark skills.
func classifyByContent(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return normalizer.UnlabeledSection
	}

	dated := 0
	for _, line := range lines {
		if dateRangeRe.MatchString(line) {
			dated++
		}
	}
	if dated > 0 && dated*4 >= len(lines) {
		return "experience"
	}

	if degreeRe.MatchString(text) {
		return "education"
	}

	if looksLikeSkillList(lines) {
		return "skills"
	}

	return normalizer.UnlabeledSection
}

// looksLikeSkillList detects comma- or bullet-separated short token runs
func looksLikeSkillList(lines []string) bool {
	if len(lines) > 6 {
		return false
	}
	tokens := 0
	for _, line := range lines {
		parts := splitSkillLine(line)
		if len(parts) < 2 {
			return false
		}
		for _, part := range parts {
			if len(strings.Fields(part)) > 4 {
				return false
			}
			tokens++
		}
	}
	return tokens >= 3
}

// confidence scores parse reliability in [0,1]: how much of the document fit
// a recognized section, plus credit for contact info and structured entries.
func confidence(r *models.ParsedResumeData, totalSegments, recognized int) float64 {
	if totalSegments == 0 {
		return 0
	}

	score := 0.0

	coverage := float64(recognized) / float64(totalSegments)
	score += 0.4 * coverage

	if r.PersonalInfo.Email != "" || r.PersonalInfo.Phone != "" {
		score += 0.15
	}
	if r.PersonalInfo.Name != "" {
		score += 0.05
	}
	if len(r.Experience) > 0 {
		score += 0.2
	}
	if len(r.Skills) > 0 {
		score += 0.1
	}
	if len(r.Education) > 0 {
		score += 0.1
	}

	if score > 1 {
		score = 1
	}
	return score
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
