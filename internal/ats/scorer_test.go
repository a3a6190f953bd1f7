package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/lexicon"
	"resume-engine/pkg/models"
)

func strongResume() *models.ParsedResumeData {
	return &models.ParsedResumeData{
		PersonalInfo: models.PersonalInfo{
			Name:  "Jane Doe",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Summary: "Backend engineer with six years of experience.",
		Experience: []models.ExperienceEntry{
			{Title: "Senior Engineer", Company: "Acme", Duration: "Jan 2020 - Present",
				Description: "- Built payment services handling 2M transactions\n- Reduced latency by 40%"},
			{Title: "Engineer", Company: "Initech", Duration: "2017 - 2019",
				Description: "- Developed tooling that saved 120 hours per quarter"},
		},
		Education: []models.EducationEntry{{Degree: "BS Computer Science", School: "State University"}},
		Skills:    []string{"Go", "Python", "PostgreSQL", "Docker", "Kubernetes", "Terraform"},
		Confidence: 0.9,
	}
}

func TestScoreStrongResume(t *testing.T) {
	s := New(lexicon.Default())
	raw := "EXPERIENCE\n- Built payment services\n- Reduced latency by 40%\nSKILLS\nGo, Python"

	result := s.Score(strongResume(), raw)

	assert.GreaterOrEqual(t, result.OverallScore, 85.0)
	assert.Contains(t, result.PassedChecks, "skills_section_present")
	assert.Contains(t, result.PassedChecks, "contact_info_present")
	assert.Contains(t, result.PassedChecks, "experience_section_present")
	assert.Empty(t, criticalIssues(result))
}

func TestMissingSkillsSectionIsCriticalFormatting(t *testing.T) {
	s := New(lexicon.Default())
	resume := strongResume()
	resume.Skills = nil

	result := s.Score(resume, "")

	issue := findIssue(result, "skills_section_present")
	require.NotNil(t, issue, "missing skills section must be reported")
	assert.Equal(t, models.SeverityCritical, issue.Severity)
	assert.Equal(t, models.ATSCategoryFormatting, issue.Category)
	assert.Less(t, result.Categories.Formatting, 100.0)
}

func TestMissingContactInfoIsCritical(t *testing.T) {
	s := New(lexicon.Default())
	resume := strongResume()
	resume.PersonalInfo = models.PersonalInfo{Name: "Jane Doe"}

	result := s.Score(resume, "")

	issue := findIssue(result, "contact_info_present")
	require.NotNil(t, issue)
	assert.Equal(t, models.SeverityCritical, issue.Severity)
}

func TestCategoryScoresAreIndependent(t *testing.T) {
	s := New(lexicon.Default())
	resume := strongResume()
	resume.Skills = nil // formatting critical plus keyword warnings

	result := s.Score(resume, "")

	// A formatting failure must not touch the structure score
	assert.Equal(t, 100.0, result.Categories.Structure)
	assert.Less(t, result.Categories.Formatting, 100.0)
}

func TestScoresStayInRange(t *testing.T) {
	s := New(lexicon.Default())

	// Empty resume fails nearly everything; scores still floor at zero
	result := s.Score(&models.ParsedResumeData{}, "")

	for name, score := range map[string]float64{
		"overall":    result.OverallScore,
		"formatting": result.Categories.Formatting,
		"content":    result.Categories.Content,
		"structure":  result.Categories.Structure,
		"keywords":   result.Categories.Keywords,
	} {
		assert.GreaterOrEqual(t, score, 0.0, name)
		assert.LessOrEqual(t, score, 100.0, name)
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := New(lexicon.Default())
	first := s.Score(strongResume(), "")
	second := s.Score(strongResume(), "")
	assert.Equal(t, first, second)
}

func findIssue(result *models.ATSScoreData, check string) *models.ATSIssue {
	for i := range result.Issues {
		if result.Issues[i].Check == check {
			return &result.Issues[i]
		}
	}
	return nil
}

func criticalIssues(result *models.ATSScoreData) []models.ATSIssue {
	var out []models.ATSIssue
	for _, issue := range result.Issues {
		if issue.Severity == models.SeverityCritical {
			out = append(out, issue)
		}
	}
	return out
}
