package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-engine/pkg/models"
)

func TestChangedSpan(t *testing.T) {
	cases := []struct {
		name    string
		oldText string
		newText string
		want    models.Position
	}{
		{"identical", "hello", "hello", models.Position{Start: 0, End: 0}},
		{"insertion", "hello world", "hello brave world", models.Position{Start: 6, End: 6}},
		{"full replacement", "cat", "dog", models.Position{Start: 0, End: 3}},
		{"deletion", "abcdef", "abef", models.Position{Start: 2, End: 4}},
		{"append", "abc", "abcdef", models.Position{Start: 3, End: 3}},
		{"prepend", "world", "hello world", models.Position{Start: 0, End: 0}},
		{"from empty", "", "abc", models.Position{Start: 0, End: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, changedSpan(tc.oldText, tc.newText))
		})
	}
}

func TestDiffSuggestions(t *testing.T) {
	a := models.OptimizationSuggestion{ID: "a", Position: models.Position{Start: 0, End: 5}}
	b := models.OptimizationSuggestion{ID: "b", Position: models.Position{Start: 10, End: 20}}
	bMoved := models.OptimizationSuggestion{ID: "b", Position: models.Position{Start: 15, End: 25}}
	c := models.OptimizationSuggestion{ID: "c"}

	t.Run("added", func(t *testing.T) {
		delta := diffSuggestions(nil, []models.OptimizationSuggestion{a})
		assert.Len(t, delta.Added, 1)
		assert.Empty(t, delta.Removed)
		assert.Empty(t, delta.Updated)
	})

	t.Run("removed reports ids only", func(t *testing.T) {
		delta := diffSuggestions([]models.OptimizationSuggestion{a, b}, []models.OptimizationSuggestion{a})
		assert.Equal(t, []string{"b"}, delta.Removed)
	})

	t.Run("moved anchor lands in updated", func(t *testing.T) {
		delta := diffSuggestions([]models.OptimizationSuggestion{b}, []models.OptimizationSuggestion{bMoved})
		assert.Empty(t, delta.Added)
		assert.Empty(t, delta.Removed)
		assert.Len(t, delta.Updated, 1)
		assert.Equal(t, "b", delta.Updated[0].ID)
	})

	t.Run("unchanged suggestion appears in no bucket", func(t *testing.T) {
		delta := diffSuggestions([]models.OptimizationSuggestion{a, b}, []models.OptimizationSuggestion{a, b})
		assert.True(t, delta.Empty())
	})

	t.Run("mixed", func(t *testing.T) {
		delta := diffSuggestions(
			[]models.OptimizationSuggestion{a, b},
			[]models.OptimizationSuggestion{bMoved, c},
		)
		assert.Len(t, delta.Added, 1)
		assert.Equal(t, "c", delta.Added[0].ID)
		assert.Equal(t, []string{"a"}, delta.Removed)
		assert.Len(t, delta.Updated, 1)
	})

	t.Run("both empty", func(t *testing.T) {
		assert.True(t, diffSuggestions(nil, nil).Empty())
	})
}
