package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestDurationYears(t *testing.T) {
	cases := []struct {
		name     string
		duration string
		want     float64
	}{
		{"month-year range", "Jan 2020 - Jan 2023", 3.0},
		{"month-year open ended", "Jun 2022 - Present", 2.0},
		{"year range", "2019 - 2022", 3.0},
		{"year range open ended", "2020 - Present", 4.0},
		{"numeric range", "06/2019 - 06/2021", 2.0},
		{"explicit years", "3 years", 3.0},
		{"explicit years with plus", "5+ years", 5.0},
		{"unrecognizable", "a while", 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, DurationYears(tc.duration, fixedNow), 0.01)
		})
	}
}

func TestDurationYearsClamped(t *testing.T) {
	// Reversed ranges clamp to zero instead of going negative
	assert.Equal(t, 0.0, DurationYears("2023 - 2020", fixedNow))

	// Implausibly long ranges clamp to the ceiling
	assert.Equal(t, 50.0, DurationYears("1900 - 2024", fixedNow))
}

func TestTotalExperienceYears(t *testing.T) {
	durations := []string{
		"Jan 2020 - Jan 2023", // 3
		"Jun 2017 - Dec 2019", // 2.5
		"",                    // 0
	}
	total := TotalExperienceYears(durations, fixedNow)
	assert.InDelta(t, 5.5, total, 0.01)
}
