package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/lexicon"
	"resume-engine/pkg/models"
)

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a := New(lexicon.Default())
	a.now = func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return a
}

func TestSkillsScoreWeighting(t *testing.T) {
	a := newTestAnalyzer(t)

	// One of three required skills matched, the single preferred skill
	// matched: 0.7*(100/3) + 0.3*100 rounds to 53.
	resume := &models.ParsedResumeData{Skills: []string{"React", "Node.js"}}
	req := &models.JobRequirements{
		RequiredSkills:  []string{"React", "TypeScript", "AWS"},
		PreferredSkills: []string{"Node.js"},
	}

	skills := a.analyzeSkills(resume, req)
	assert.Equal(t, 53.0, skills.Score)
	assert.ElementsMatch(t, []string{"React", "Node.js"}, skills.MatchingSkills)
	assert.ElementsMatch(t, []string{"TypeScript", "AWS"}, skills.MissingRequiredSkills)
	assert.Empty(t, skills.MissingPreferredSkill)
}

func TestSkillsMatchThroughSynonyms(t *testing.T) {
	a := newTestAnalyzer(t)

	resume := &models.ParsedResumeData{Skills: []string{"JS", "k8s"}}
	req := &models.JobRequirements{
		RequiredSkills: []string{"JavaScript", "Kubernetes"},
	}

	skills := a.analyzeSkills(resume, req)
	assert.Equal(t, 100.0, skills.Score)
	assert.Empty(t, skills.MissingRequiredSkills)
}

func TestSkillsNoRequirementsScoresFull(t *testing.T) {
	a := newTestAnalyzer(t)

	skills := a.analyzeSkills(&models.ParsedResumeData{Skills: []string{"Go"}}, &models.JobRequirements{})
	assert.Equal(t, 100.0, skills.Score)
	assert.Contains(t, skills.ExtraSkills, "Go")
}

func TestExperienceScore(t *testing.T) {
	a := newTestAnalyzer(t)

	t.Run("meets requirement", func(t *testing.T) {
		resume := &models.ParsedResumeData{Experience: []models.ExperienceEntry{
			{Duration: "Jan 2018 - Jan 2024"},
		}}
		exp := a.analyzeExperience(resume, &models.JobRequirements{ExperienceYears: 5, ExperienceLevel: "senior"})
		assert.Equal(t, 100.0, exp.Score)
		assert.Equal(t, 0.0, exp.GapYears)
		assert.True(t, exp.LevelMatch)
	})

	t.Run("falls short proportionally", func(t *testing.T) {
		resume := &models.ParsedResumeData{Experience: []models.ExperienceEntry{
			{Duration: "Jan 2022 - Jan 2024"},
		}}
		exp := a.analyzeExperience(resume, &models.JobRequirements{ExperienceYears: 4, ExperienceLevel: "mid"})
		assert.Equal(t, 50.0, exp.Score)
		assert.Equal(t, 2.0, exp.GapYears)
	})

	t.Run("level minimum backstops missing explicit years", func(t *testing.T) {
		resume := &models.ParsedResumeData{}
		exp := a.analyzeExperience(resume, &models.JobRequirements{ExperienceLevel: "senior"})
		assert.Equal(t, 5, exp.RequiredYears)
		assert.Equal(t, 0.0, exp.Score)
	})

	t.Run("no requirement scores full", func(t *testing.T) {
		exp := a.analyzeExperience(&models.ParsedResumeData{}, &models.JobRequirements{ExperienceLevel: "entry"})
		assert.Equal(t, 100.0, exp.Score)
	})
}

func TestEducationScore(t *testing.T) {
	a := newTestAnalyzer(t)

	req := &models.JobRequirements{
		EducationRequirements: []string{"Bachelor's degree in Computer Science"},
	}

	t.Run("meeting the rank scores 100", func(t *testing.T) {
		resume := &models.ParsedResumeData{Education: []models.EducationEntry{
			{Degree: "Bachelor of Science in Computer Science"},
		}}
		edu := a.analyzeEducation(resume, req)
		assert.Equal(t, 100.0, edu.Score)
		assert.NotEmpty(t, edu.MatchingDegrees)
	})

	t.Run("exceeding the rank scores 100", func(t *testing.T) {
		resume := &models.ParsedResumeData{Education: []models.EducationEntry{
			{Degree: "Master of Science"},
		}}
		edu := a.analyzeEducation(resume, req)
		assert.Equal(t, 100.0, edu.Score)
	})

	t.Run("one rank below scores 60", func(t *testing.T) {
		resume := &models.ParsedResumeData{Education: []models.EducationEntry{
			{Degree: "Associate of Applied Science"},
		}}
		edu := a.analyzeEducation(resume, req)
		assert.Equal(t, 60.0, edu.Score)
		assert.NotEmpty(t, edu.MissingDegrees)
	})

	t.Run("far below scores 30", func(t *testing.T) {
		resume := &models.ParsedResumeData{}
		edu := a.analyzeEducation(resume, req)
		assert.Equal(t, 30.0, edu.Score)
	})

	t.Run("no requirement scores 100", func(t *testing.T) {
		edu := a.analyzeEducation(&models.ParsedResumeData{}, &models.JobRequirements{})
		assert.Equal(t, 100.0, edu.Score)
	})
}

func TestAnalyzeGapDeterministic(t *testing.T) {
	a := newTestAnalyzer(t)

	resume := &models.ParsedResumeData{
		Summary: "Backend engineer shipping Go services on Kubernetes.",
		Skills:  []string{"Go", "PostgreSQL", "Docker"},
		Experience: []models.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Duration: "Jan 2019 - Jan 2024",
				Description: "Built APIs serving 10M requests"},
		},
		Education: []models.EducationEntry{{Degree: "BS Computer Science"}},
	}
	req := &models.JobRequirements{
		RequiredSkills:  []string{"Go", "Kubernetes", "AWS"},
		PreferredSkills: []string{"Terraform"},
		ExperienceLevel: "senior",
		ExperienceYears: 5,
	}

	first := a.AnalyzeGap(resume, req)
	second := a.AnalyzeGap(resume, req)
	assert.Equal(t, first, second, "identical inputs must produce identical results")
}

func TestAnalyzeGapOverallIsWeightedSum(t *testing.T) {
	a := newTestAnalyzer(t)

	resume := &models.ParsedResumeData{
		Skills: []string{"Go"},
		Experience: []models.ExperienceEntry{
			{Duration: "Jan 2019 - Jan 2024", Description: "Shipped services"},
		},
	}
	req := &models.JobRequirements{
		RequiredSkills:  []string{"Go", "Rust"},
		ExperienceLevel: "mid",
	}

	result := a.AnalyzeGap(resume, req)

	want := weightSkills*result.Skills.Score +
		weightKeywords*result.Keywords.Score +
		weightExperience*result.Experience.Score +
		weightEducation*result.Education.Score
	assert.InDelta(t, want, result.OverallScore, 0.05)

	assert.GreaterOrEqual(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestAnalyzeGapRecommendations(t *testing.T) {
	a := newTestAnalyzer(t)

	resume := &models.ParsedResumeData{Skills: []string{"Python"}}
	req := &models.JobRequirements{
		RequiredSkills:  []string{"Go", "Kubernetes"},
		ExperienceLevel: "senior",
	}

	result := a.AnalyzeGap(resume, req)
	require.NotEmpty(t, result.Recommendations)

	// High priority items sort first
	assert.Equal(t, models.PriorityHigh, result.Recommendations[0].Priority)

	categories := map[string]bool{}
	for _, rec := range result.Recommendations {
		categories[rec.Category] = true
	}
	assert.True(t, categories[models.RecommendationSkill])
	assert.True(t, categories[models.RecommendationExperience])
}

func TestKeywordAnalysis(t *testing.T) {
	a := newTestAnalyzer(t)

	resume := &models.ParsedResumeData{
		Summary: "Go engineer working with PostgreSQL and Docker every day.",
		Skills:  []string{"Go", "PostgreSQL", "Docker"},
	}
	req := &models.JobRequirements{
		RequiredSkills:   []string{"Go", "PostgreSQL"},
		IndustryKeywords: []string{"fintech"},
	}

	kw := a.analyzeKeywords(resume, req)
	assert.ElementsMatch(t, []string{"Go", "PostgreSQL"}, kw.MatchedKeywords)
	assert.Contains(t, kw.MissingKeywords, "fintech")
	assert.Greater(t, kw.Density, 0.0)
	assert.InDelta(t, 66.0, kw.Score, 1.0)
}
