package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/lexicon"
)

const fullResume = `Jane Doe
jane.doe@example.com
(555) 123-4567
San Francisco, CA
linkedin.com/in/janedoe

SUMMARY
Backend engineer with six years of experience building payment systems.

EXPERIENCE
Senior Engineer | Acme Corp
Jan 2020 - Present
- Built payment services handling 2M transactions daily
- Reduced p99 latency by 40%

Software Engineer | Initech
Jun 2017 - Dec 2019
- Developed internal tooling in Python

EDUCATION
Bachelor of Science in Computer Science, State University
2017, GPA: 3.8

SKILLS
Go, Python, PostgreSQL, Docker, Kubernetes

PROJECTS
Ledger Explorer (Go, PostgreSQL)
- Open source double-entry bookkeeping viewer
`

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return New(lexicon.Default())
}

func TestParseEmptyInput(t *testing.T) {
	p := newTestParser(t)
	_, err := p.Parse("   \n ")
	assert.Error(t, err)
}

func TestParseFullResume(t *testing.T) {
	p := newTestParser(t)
	resume, err := p.Parse(fullResume)
	require.NoError(t, err)

	t.Run("personal info", func(t *testing.T) {
		assert.Equal(t, "Jane Doe", resume.PersonalInfo.Name)
		assert.Equal(t, "jane.doe@example.com", resume.PersonalInfo.Email)
		assert.Equal(t, "(555) 123-4567", resume.PersonalInfo.Phone)
		assert.Equal(t, "linkedin.com/in/janedoe", resume.PersonalInfo.LinkedIn)
		assert.Equal(t, "San Francisco, CA", resume.PersonalInfo.Location)
	})

	t.Run("summary", func(t *testing.T) {
		assert.Contains(t, resume.Summary, "Backend engineer")
	})

	t.Run("experience in document order", func(t *testing.T) {
		require.Len(t, resume.Experience, 2)
		assert.Equal(t, "Senior Engineer", resume.Experience[0].Title)
		assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
		assert.Equal(t, "Jan 2020 - Present", resume.Experience[0].Duration)
		assert.Contains(t, resume.Experience[0].Description, "payment services")

		assert.Equal(t, "Software Engineer", resume.Experience[1].Title)
		assert.Equal(t, "Initech", resume.Experience[1].Company)
	})

	t.Run("education", func(t *testing.T) {
		require.Len(t, resume.Education, 1)
		assert.Contains(t, resume.Education[0].Degree, "Bachelor of Science")
		assert.Equal(t, "2017", resume.Education[0].Year)
		assert.Equal(t, "3.8", resume.Education[0].GPA)
	})

	t.Run("skills", func(t *testing.T) {
		assert.Contains(t, resume.Skills, "Go")
		assert.Contains(t, resume.Skills, "PostgreSQL")
		assert.Contains(t, resume.Skills, "Kubernetes")
	})

	t.Run("projects", func(t *testing.T) {
		require.Len(t, resume.Projects, 1)
		assert.Equal(t, "Ledger Explorer", resume.Projects[0].Title)
		assert.Contains(t, resume.Projects[0].Technologies, "Go")
		assert.Contains(t, resume.Projects[0].Technologies, "PostgreSQL")
	})

	t.Run("confidence is high for a well-formed resume", func(t *testing.T) {
		assert.GreaterOrEqual(t, resume.Confidence, 0.7)
		assert.LessOrEqual(t, resume.Confidence, 1.0)
	})
}

func TestParseSoftFailure(t *testing.T) {
	p := newTestParser(t)

	// Unstructured text must not error; it lands in the summary with low
	// confidence instead.
	resume, err := p.Parse("I have done many things in my career and hope to do more of them.")
	require.NoError(t, err)
	assert.NotEmpty(t, resume.Summary)
	assert.Less(t, resume.Confidence, 0.5)
}

func TestParseHeaderlessSkillsBlock(t *testing.T) {
	p := newTestParser(t)

	resume, err := p.Parse("Go, Python, Docker, Kubernetes, Terraform\nPostgreSQL, Redis, Kafka")
	require.NoError(t, err)
	assert.NotEmpty(t, resume.Skills, "comma-separated token runs should classify as skills")
}

func TestParseDedupesSkills(t *testing.T) {
	p := newTestParser(t)

	resume, err := p.Parse("SKILLS\nGo, go, Python, python, Go")
	require.NoError(t, err)

	count := 0
	for _, s := range resume.Skills {
		if s == "Go" || s == "go" {
			count++
		}
	}
	assert.Equal(t, 1, count, "case-insensitive duplicates collapse to the first form")
}
