package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/pkg/models"
)

func TestBuildInsights(t *testing.T) {
	a := newTestAnalyzer(t)

	resume := &models.ParsedResumeData{
		Summary: "Backend engineer with eight years of experience building Go services " +
			"for payment platforms, focused on reliability, latency and developer experience " +
			"across several high growth fintech teams.",
		Skills: []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "Terraform"},
		Experience: []models.ExperienceEntry{
			{Title: "Senior Engineer", Company: "Acme", Duration: "Jan 2018 - Jan 2024",
				Description: "- Built payment APIs serving 10M requests daily\n- Reduced costs by 30%"},
		},
		Education: []models.EducationEntry{{Degree: "BS Computer Science"}},
		Projects:  []models.Project{{Title: "Sidecar", Technologies: []string{"Go"}}},
	}
	req := &models.JobRequirements{
		RequiredSkills:   []string{"Go", "AWS"},
		ExperienceLevel:  "senior",
		IndustryKeywords: []string{"fintech", "compliance"},
	}

	gap := a.AnalyzeGap(resume, req)
	insights := a.BuildInsights(resume, req, gap)

	t.Run("mirrors gap scores", func(t *testing.T) {
		assert.Equal(t, gap.OverallScore, insights.OverallScore)
		assert.Equal(t, gap.ATSScore, insights.ATSScore)
		assert.Equal(t, gap.Keywords.Density, insights.KeywordDensity)
	})

	t.Run("section breakdown covers every section", func(t *testing.T) {
		sections := map[string]bool{}
		for _, s := range insights.SectionBreakdown {
			sections[s.Section] = true
			assert.GreaterOrEqual(t, s.Score, 0.0)
			assert.LessOrEqual(t, s.Score, 100.0)
		}
		for _, name := range []string{"summary", "experience", "skills", "education", "projects"} {
			assert.True(t, sections[name], "missing section %s", name)
		}
	})

	t.Run("top recommendations are capped at three", func(t *testing.T) {
		assert.LessOrEqual(t, len(insights.TopRecommendations), 3)
	})

	t.Run("suggested keywords lead with missing required skills", func(t *testing.T) {
		require.NotEmpty(t, insights.SuggestedKeywords)
		assert.Equal(t, "AWS", insights.SuggestedKeywords[0])
	})

	t.Run("industry fit reflects keyword coverage", func(t *testing.T) {
		// fintech appears in the summary, compliance does not
		assert.Equal(t, 50.0, insights.IndustryFit)
	})

	t.Run("pure projection", func(t *testing.T) {
		again := a.BuildInsights(resume, req, gap)
		assert.Equal(t, insights, again)
	})
}

func TestBuildInsightsOverusedKeywords(t *testing.T) {
	a := newTestAnalyzer(t)

	// Short text where one keyword dominates
	resume := &models.ParsedResumeData{
		Summary: "Go Go Go Go developer writing Go and more Go code in Go",
		Skills:  []string{"Go"},
	}
	req := &models.JobRequirements{RequiredSkills: []string{"Go"}}

	gap := a.AnalyzeGap(resume, req)
	insights := a.BuildInsights(resume, req, gap)
	assert.Contains(t, insights.OverusedKeywords, "Go")
}
