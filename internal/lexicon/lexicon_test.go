package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  JavaScript  ": "javascript",
		"C++":            "c++",
		"C#":             "c#",
		"Node.js":        "node.js",
		"CI/CD":          "ci/cd",
		"Skill (5 yrs)":  "skill 5 yrs",
		"multi   space":  "multi space",
	}
	for input, want := range cases {
		assert.Equal(t, want, Normalize(input), "Normalize(%q)", input)
	}
}

func TestCanonicalAndMatch(t *testing.T) {
	lex := Default()

	assert.Equal(t, "javascript", lex.Canonical("JS"))
	assert.Equal(t, "kubernetes", lex.Canonical("k8s"))
	assert.Equal(t, "postgresql", lex.Canonical("Postgres"))

	assert.True(t, lex.Match("JS", "JavaScript"))
	assert.True(t, lex.Match("node", "Node.js"))
	assert.False(t, lex.Match("Java", "JavaScript"))

	// Unknown terms fall back to their normalized form
	assert.Equal(t, "cobol", lex.Canonical("COBOL"))
	assert.True(t, lex.Match("COBOL", "cobol"))
}

func TestFindAllWordBoundaries(t *testing.T) {
	lex := Default()

	t.Run("no substring matches", func(t *testing.T) {
		found := lex.FindAll("Worked at Google on search ranking", []string{"Go"})
		assert.Empty(t, found, "Go must not match inside Google")
	})

	t.Run("boundary match", func(t *testing.T) {
		found := lex.FindAll("Services written in Go and Python.", []string{"Go", "Python", "Rust"})
		assert.Equal(t, []string{"Go", "Python"}, found)
	})

	t.Run("alias counts for canonical entry", func(t *testing.T) {
		found := lex.FindAll("Deployed with k8s on three clusters", []string{"Kubernetes"})
		assert.Equal(t, []string{"Kubernetes"}, found)
	})

	t.Run("case insensitive", func(t *testing.T) {
		found := lex.FindAll("REACT and TYPESCRIPT experience", []string{"React", "TypeScript"})
		assert.Len(t, found, 2)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "lexicon.yaml")
		content := []byte("version: \"test.1\"\nsynonyms:\n  react: [\"reactjs\"]\ntechnologies:\n  - React\n")
		require.NoError(t, os.WriteFile(path, content, 0o644))

		lex, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "test.1", lex.Version)
		assert.Equal(t, "react", lex.Canonical("reactjs"))
	})

	t.Run("missing version rejected", func(t *testing.T) {
		path := filepath.Join(dir, "noversion.yaml")
		require.NoError(t, os.WriteFile(path, []byte("technologies:\n  - React\n"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})

	t.Run("empty path loads default", func(t *testing.T) {
		lex, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().Version, lex.Version)
	})
}
