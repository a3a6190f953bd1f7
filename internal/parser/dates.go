package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date-range heuristics shared by experience parsing and the experience
// sub-score. All patterns capture a start and an end; "Present" and friends
// mean "still running".

var (
	monthNames = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)[a-z]*`

	// "Jan 2020 - Mar 2023", "January 2020 – Present"
	monthYearRangeRe = regexp.MustCompile(
		`(?i)(` + monthNames + `)\.?\s+(\d{4})\s*[-–—to]+\s*(?:(` + monthNames + `)\.?\s+(\d{4})|(present|current|now))`)

	// "2019 - 2022", "2019 - Present"
	yearRangeRe = regexp.MustCompile(`(?i)\b(\d{4})\s*[-–—]\s*(?:(\d{4})|(present|current|now))\b`)

	// "06/2019 - 08/2021"
	numericRangeRe = regexp.MustCompile(`(?i)\b(\d{1,2})/(\d{4})\s*[-–—]\s*(?:(\d{1,2})/(\d{4})|(present|current|now))\b`)

	// "3 years", "5+ years"
	explicitYearsRe = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*(?:years?|yrs?)\b`)

	// Any of the above, used for entry-boundary and fallback detection
	dateRangeRe = regexp.MustCompile(
		`(?i)(?:` + monthNames + `\.?\s+\d{4}|\b\d{1,2}/\d{4}|\b\d{4}\b)\s*[-–—to]+\s*(?:` + monthNames + `\.?\s+\d{4}|\b\d{1,2}/\d{4}|\b\d{4}\b|present|current|now)`)
)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func monthNumber(name string) int {
	key := strings.ToLower(name)
	if len(key) > 3 {
		key = key[:3]
	}
	if n, ok := monthIndex[key]; ok {
		return n
	}
	return 1
}

// DurationYears estimates the length of one duration string in years. Zero
// means no recognizable range. Open-ended ranges run to now.
func DurationYears(duration string, now time.Time) float64 {
	if m := monthYearRangeRe.FindStringSubmatch(duration); m != nil {
		startYear, _ := strconv.Atoi(m[2])
		start := float64(startYear) + float64(monthNumber(m[1])-1)/12
		var end float64
		if m[5] != "" {
			end = float64(now.Year()) + float64(int(now.Month())-1)/12
		} else {
			endYear, _ := strconv.Atoi(m[4])
			end = float64(endYear) + float64(monthNumber(m[3])-1)/12
		}
		return clampYears(end - start)
	}

	if m := numericRangeRe.FindStringSubmatch(duration); m != nil {
		startMonth, _ := strconv.Atoi(m[1])
		startYear, _ := strconv.Atoi(m[2])
		start := float64(startYear) + float64(startMonth-1)/12
		var end float64
		if m[5] != "" {
			end = float64(now.Year()) + float64(int(now.Month())-1)/12
		} else {
			endMonth, _ := strconv.Atoi(m[3])
			endYear, _ := strconv.Atoi(m[4])
			end = float64(endYear) + float64(endMonth-1)/12
		}
		return clampYears(end - start)
	}

	if m := yearRangeRe.FindStringSubmatch(duration); m != nil {
		startYear, _ := strconv.Atoi(m[1])
		var endYear int
		if m[3] != "" {
			endYear = now.Year()
		} else {
			endYear, _ = strconv.Atoi(m[2])
		}
		return clampYears(float64(endYear - startYear))
	}

	if m := explicitYearsRe.FindStringSubmatch(duration); m != nil {
		years, _ := strconv.Atoi(m[1])
		return clampYears(float64(years))
	}

	return 0
}

// TotalExperienceYears sums the duration of every experience entry. Overlaps
// are not deduplicated; concurrent roles are rare enough that the simple sum
// is the better trade against misparsing.
func TotalExperienceYears(durations []string, now time.Time) float64 {
	total := 0.0
	for _, d := range durations {
		total += DurationYears(d, now)
	}
	return total
}

func clampYears(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > 50 {
		return 50
	}
	return y
}
