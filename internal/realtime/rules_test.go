package realtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-engine/internal/lexicon"
	"resume-engine/pkg/models"
)

func newTestEngine(t *testing.T) *ruleEngine {
	t.Helper()
	return &ruleEngine{lex: lexicon.Default()}
}

// filler builds n distinct words so length-based rules can be exercised
// without tripping the repetition rule
func filler(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "item" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26))
	}
	return strings.Join(words, " ")
}

func TestSummaryLengthRule(t *testing.T) {
	e := newTestEngine(t)

	t.Run("too short", func(t *testing.T) {
		text := "Engineer with Go experience."
		out := e.evaluate("summary", "summary", text, nil)
		require.Len(t, out, 1)
		assert.Equal(t, models.SuggestionContent, out[0].Type)
		assert.Equal(t, models.PriorityMedium, out[0].Impact)
		assert.Equal(t, models.Position{Start: 0, End: len(text)}, out[0].Position)
	})

	t.Run("in band", func(t *testing.T) {
		text := filler(50)
		out := e.evaluate("summary", "summary", text, nil)
		assert.Empty(t, out)
	})

	t.Run("too long", func(t *testing.T) {
		text := filler(120)
		out := e.evaluate("summary", "summary", text, nil)
		require.Len(t, out, 1)
		assert.Equal(t, models.PriorityLow, out[0].Impact)
	})

	t.Run("empty text stays quiet", func(t *testing.T) {
		assert.Empty(t, e.evaluate("summary", "summary", "", nil))
	})
}

func TestMissingKeywordsRule(t *testing.T) {
	e := newTestEngine(t)
	text := filler(40)
	req := &models.JobRequirements{
		RequiredSkills: []string{"Go", "Rust", "AWS", "Terraform"},
	}

	out := e.evaluate("summary", "summary", text, req)
	require.Len(t, out, 1)
	assert.Equal(t, models.SuggestionKeyword, out[0].Type)
	assert.Equal(t, models.PriorityHigh, out[0].Impact)

	// At most three missing skills are surfaced per pass
	assert.Equal(t, []string{"Go", "Rust", "AWS"}, out[0].Keywords)

	// Anchored at the end of the text since there is no span to point at
	assert.Equal(t, models.Position{Start: len(text), End: len(text)}, out[0].Position)
}

func TestMissingKeywordsRuleHonorsSynonyms(t *testing.T) {
	e := newTestEngine(t)
	text := filler(40) + " running k8s clusters"
	req := &models.JobRequirements{RequiredSkills: []string{"Kubernetes"}}

	out := e.evaluate("summary", "summary", text, req)
	assert.Empty(t, out, "an alias mention satisfies the canonical skill")
}

func TestQuantifyAchievementsRule(t *testing.T) {
	e := newTestEngine(t)
	text := "- Improved throughput by 40%\n- Migrated the billing pipeline\n- Cut costs by 20%"

	out := e.evaluate("experience", "description", text, nil)
	require.Len(t, out, 1)
	assert.Equal(t, models.SuggestionImpact, out[0].Type)
	assert.Equal(t, "Migrated the billing pipeline", out[0].OriginalText)

	// Position slices exactly the flagged line
	assert.Equal(t, out[0].OriginalText, text[out[0].Position.Start:out[0].Position.End])
}

func TestActionVerbOpenersRule(t *testing.T) {
	e := newTestEngine(t)
	text := "- Responsible for maintaining 3 services\n- Shipped 2 launches"

	out := e.evaluate("experience", "description", text, nil)
	require.Len(t, out, 1)
	assert.Equal(t, models.SuggestionGrammar, out[0].Type)
	assert.Contains(t, out[0].Reasoning, "action verb")

	// The replacement verb is deterministic for a given line
	again := e.evaluate("experience", "description", text, nil)
	assert.Equal(t, out[0].Reasoning, again[0].Reasoning)
}

func TestBulletStructureRule(t *testing.T) {
	e := newTestEngine(t)

	t.Run("wall of text", func(t *testing.T) {
		text := strings.TrimSpace(strings.Repeat("worked across many 1 systems ", 20))
		out := e.evaluate("experience", "description", text, nil)
		require.Len(t, out, 1)
		assert.Equal(t, models.SuggestionStructure, out[0].Type)
		assert.Contains(t, out[0].Reasoning, "bullet")
	})

	t.Run("too many bullets", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 10; i++ {
			b.WriteString("- Shipped release 1\n")
		}
		out := e.evaluate("experience", "description", b.String(), nil)
		require.Len(t, out, 1)
		assert.Equal(t, models.SuggestionStructure, out[0].Type)
		assert.Equal(t, models.PriorityLow, out[0].Impact)
	})

	t.Run("reasonable bullets stay quiet", func(t *testing.T) {
		text := "- Shipped release 1\n- Cut latency by 30%"
		assert.Empty(t, e.evaluate("experience", "description", text, nil))
	})
}

func TestSkillsOrganizationRule(t *testing.T) {
	e := newTestEngine(t)

	t.Run("long flat list", func(t *testing.T) {
		skills := make([]string, 18)
		for i := range skills {
			skills[i] = "skill" + strings.Repeat("x", i+1)
		}
		out := e.evaluate("skills", "skills", strings.Join(skills, ", "), nil)
		require.Len(t, out, 1)
		assert.Equal(t, models.SuggestionStructure, out[0].Type)
	})

	t.Run("short list stays quiet", func(t *testing.T) {
		out := e.evaluate("skills", "skills", "Go, Python, PostgreSQL, Docker", nil)
		assert.Empty(t, out)
	})
}

func TestRepeatedWordsRule(t *testing.T) {
	e := newTestEngine(t)

	t.Run("flags the first immediate duplicate", func(t *testing.T) {
		text := "- Led the the migration of 4 services"
		out := e.evaluate("experience", "description", text, nil)
		require.Len(t, out, 1)
		assert.Equal(t, models.SuggestionGrammar, out[0].Type)
		assert.Equal(t, "the the", out[0].OriginalText)
		assert.Equal(t, out[0].OriginalText, text[out[0].Position.Start:out[0].Position.End])
		assert.Equal(t, "the", out[0].SuggestedText)
	})

	t.Run("duplicates across lines are fine", func(t *testing.T) {
		text := "- Grew adoption 4x across regions\n- Regions 2 and 3 expanded"
		assert.Empty(t, e.evaluate("experience", "description", text, nil))
	})

	t.Run("single letters are ignored", func(t *testing.T) {
		text := "Plan a a b testing rollout for 4 teams with measured adoption across " + filler(25)
		out := e.evaluate("experience", "description", text, nil)
		assert.Empty(t, out)
	})
}

func TestSuggestionIDIsStable(t *testing.T) {
	e := newTestEngine(t)
	text := "- Responsible for release coordination across 4 teams"

	first := e.evaluate("experience", "description", text, nil)
	second := e.evaluate("experience", "description", text, nil)
	require.Len(t, first, 1)
	require.Equal(t, len(first), len(second))
	assert.Equal(t, first[0].ID, second[0].ID)

	// Case and spacing differences in the anchored line do not change identity
	reworded := e.evaluate("experience", "description",
		"-  responsible for Release   coordination across 4 teams", nil)
	require.Len(t, reworded, 1)
	assert.Equal(t, first[0].ID, reworded[0].ID)
}
