package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/lexicon"
)

const samplePosting = `Senior Backend Engineer

About us
We build payment infrastructure for fintech companies.

Requirements:
- 5+ years of experience building backend services
- Strong Go and PostgreSQL skills
- Bachelor's degree in Computer Science or equivalent
- Experience with Docker is required

Nice to have:
- Kubernetes experience is a plus
- Terraform

Responsibilities:
- Design and ship APIs
- Review code and mentor engineers

Benefits:
- Health insurance
- $150k - $190k annual salary
`

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(lexicon.Default())
}

func TestExtractEmptyInput(t *testing.T) {
	ex := newTestExtractor(t)
	_, err := ex.Extract("  \n ")
	assert.Error(t, err)
}

func TestExtractFullPosting(t *testing.T) {
	ex := newTestExtractor(t)
	req, err := ex.Extract(samplePosting)
	require.NoError(t, err)

	t.Run("required skills from requirements section", func(t *testing.T) {
		assert.Contains(t, req.RequiredSkills, "Go")
		assert.Contains(t, req.RequiredSkills, "PostgreSQL")
		assert.Contains(t, req.RequiredSkills, "Docker")
	})

	t.Run("preferred skills from preferred cues", func(t *testing.T) {
		assert.Contains(t, req.PreferredSkills, "Kubernetes")
		assert.Contains(t, req.PreferredSkills, "Terraform")
	})

	t.Run("required and preferred stay disjoint", func(t *testing.T) {
		seen := map[string]bool{}
		for _, s := range req.RequiredSkills {
			seen[s] = true
		}
		for _, s := range req.PreferredSkills {
			assert.False(t, seen[s], "%s appears in both buckets", s)
		}
	})

	t.Run("experience", func(t *testing.T) {
		assert.Equal(t, 5, req.ExperienceYears)
		assert.Equal(t, "senior", req.ExperienceLevel)
		assert.Equal(t, "senior", req.JobLevel)
	})

	t.Run("education", func(t *testing.T) {
		require.NotEmpty(t, req.EducationRequirements)
		assert.Contains(t, req.EducationRequirements[0], "Bachelor")
	})

	t.Run("responsibilities and benefits", func(t *testing.T) {
		assert.Len(t, req.Responsibilities, 2)
		assert.Contains(t, req.Benefits, "Health insurance")
	})

	t.Run("salary", func(t *testing.T) {
		require.NotNil(t, req.Salary)
		assert.Equal(t, 150000, req.Salary.Min)
		assert.Equal(t, 190000, req.Salary.Max)
	})

	t.Run("industry keywords", func(t *testing.T) {
		assert.Contains(t, req.IndustryKeywords, "fintech")
	})
}

func TestExtractEmptyResultIsValid(t *testing.T) {
	ex := newTestExtractor(t)
	req, err := ex.Extract("We are a great place to work with a positive culture.")
	require.NoError(t, err)
	assert.True(t, req.IsEmpty(), "no matches is a valid extraction, not an error")
}

func TestExtractRequiredWinsOverPreferred(t *testing.T) {
	ex := newTestExtractor(t)
	req, err := ex.Extract("Requirements:\n- Go is required\n- Go experience is a plus\n")
	require.NoError(t, err)
	assert.Contains(t, req.RequiredSkills, "Go")
	assert.NotContains(t, req.PreferredSkills, "Go")
}

func TestExtractHTMLPosting(t *testing.T) {
	ex := newTestExtractor(t)
	html := `<html><body><h2>Requirements:</h2><ul><li>Python required</li><li>Django required</li></ul></body></html>`
	req, err := ex.Extract(html)
	require.NoError(t, err)
	assert.Contains(t, req.RequiredSkills, "Python")
	assert.Contains(t, req.RequiredSkills, "Django")
}
