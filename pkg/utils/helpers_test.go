package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContentHashStable(t *testing.T) {
	type payload struct {
		Name   string
		Skills []string
	}

	a := payload{Name: "Jane", Skills: []string{"Go", "Docker"}}
	b := payload{Name: "Jane", Skills: []string{"Go", "Docker"}}
	c := payload{Name: "Jane", Skills: []string{"Docker", "Go"}}

	assert.Equal(t, ContentHash(a), ContentHash(b))
	assert.NotEqual(t, ContentHash(a), ContentHash(c))
	assert.Len(t, ContentHash(a), 64)
}

func TestTextHashNormalizes(t *testing.T) {
	base := TextHash("Led the platform team")

	assert.Equal(t, base, TextHash("led  the   platform team"))
	assert.Equal(t, base, TextHash("  LED THE PLATFORM TEAM  "))
	assert.NotEqual(t, base, TextHash("Led the platform teams"))
	assert.Len(t, base, 16)
}

func TestDedupe(t *testing.T) {
	in := []string{"Go", "go", "Python", "GO", "Docker", "python"}
	assert.Equal(t, []string{"Go", "Python", "Docker"}, Dedupe(in))

	assert.Empty(t, Dedupe(nil))
}

func TestContains(t *testing.T) {
	slice := []string{"Go", "Python"}
	assert.True(t, Contains(slice, "Go"))
	assert.False(t, Contains(slice, "go"))
	assert.True(t, ContainsFold(slice, "go"))
	assert.False(t, ContainsFold(slice, "Rust"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500ms", FormatDuration(500*time.Millisecond))
	assert.Equal(t, "2.50s", FormatDuration(2500*time.Millisecond))
	assert.Equal(t, "1.5m", FormatDuration(90*time.Second))
}

func TestGenerateRequestIDUnique(t *testing.T) {
	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}
