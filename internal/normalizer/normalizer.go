// Package normalizer segments raw resume or job-posting text into labeled,
// offset-addressable spans. Offsets always index the original input, so
// downstream suggestion anchors map back exactly; no characters are inserted
// or removed.
package normalizer

import (
	"regexp"
	"strings"
)

// DocumentType tags the input so header patterns match per document kind
type DocumentType string

const (
	DocumentResume DocumentType = "resume"
	DocumentJob    DocumentType = "job"
)

// UnlabeledSection is the catch-all label for content under headers the
// normalizer does not recognize, and for leading content before any header.
const UnlabeledSection = "unlabeled"

// Segment is one (section-label, text-span, offset-range) triple. Text is the
// verbatim slice input[Start:End]; use Clean for a whitespace-collapsed view.
type Segment struct {
	Label string
	Text  string
	Start int
	End   int
}

// Clean returns the segment text with whitespace runs collapsed to single
// spaces. Offsets stay untouched; this is a read-side view only.
func (s Segment) Clean() string {
	return strings.Join(strings.Fields(s.Text), " ")
}

var resumeHeaders = map[string]*regexp.Regexp{
	"summary":        regexp.MustCompile(`(?i)^(professional\s+)?(summary|objective|profile|about\s+me)\b`),
	"experience":     regexp.MustCompile(`(?i)^(work\s+|professional\s+|relevant\s+)?(experience|employment|work\s+history)\b`),
	"education":      regexp.MustCompile(`(?i)^(education|academic(\s+background)?|qualifications)\b`),
	"skills":         regexp.MustCompile(`(?i)^(technical\s+)?(skills|technologies|core\s+competencies|tech\s+stack)\b`),
	"projects":       regexp.MustCompile(`(?i)^((personal|side|selected)\s+)?projects\b`),
	"certifications": regexp.MustCompile(`(?i)^(certifications?|certificates|licenses)\b`),
}

var jobHeaders = map[string]*regexp.Regexp{
	"requirements":     regexp.MustCompile(`(?i)^((minimum|basic|required)\s+)?(requirements|qualifications)\b`),
	"preferred":        regexp.MustCompile(`(?i)^(preferred(\s+qualifications)?|nice\s+to\s+have|bonus(\s+points)?)\b`),
	"responsibilities": regexp.MustCompile(`(?i)^(responsibilities|duties|what\s+you('|’)?ll\s+do|the\s+role)\b`),
	"benefits":         regexp.MustCompile(`(?i)^(benefits|perks|what\s+we\s+offer|compensation)\b`),
	"about":            regexp.MustCompile(`(?i)^(about(\s+(us|the\s+(company|team)))?|who\s+we\s+are)\b`),
}

// Normalize segments text into labeled spans. Empty input yields an empty
// sequence; there is no other failure mode.
func Normalize(text string, docType DocumentType) []Segment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	patterns := resumeHeaders
	if docType == DocumentJob {
		patterns = jobHeaders
	}

	type boundary struct {
		label      string
		lineStart  int
		contentEnd int // end of the header line; section content starts after
	}

	var boundaries []boundary
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			if label, ok := classifyHeader(trimmed, patterns); ok {
				boundaries = append(boundaries, boundary{
					label:      label,
					lineStart:  offset,
					contentEnd: offset + len(line),
				})
			}
		}
		offset += len(line)
	}

	var segments []Segment

	appendSegment := func(label string, start, end int) {
		start, end = trimSpan(text, start, end)
		if start >= end {
			return
		}
		segments = append(segments, Segment{
			Label: label,
			Text:  text[start:end],
			Start: start,
			End:   end,
		})
	}

	if len(boundaries) == 0 {
		appendSegment(UnlabeledSection, 0, len(text))
		return segments
	}

	// Leading content before the first header
	appendSegment(UnlabeledSection, 0, boundaries[0].lineStart)

	for i, b := range boundaries {
		end := len(text)
		if i+1 < len(boundaries) {
			end = boundaries[i+1].lineStart
		}
		appendSegment(b.label, b.contentEnd, end)
	}

	return segments
}

// classifyHeader decides whether a line is a section header and returns its
// canonical label. Lines matching a known pattern get that label. Lines that
// match nothing become "unlabeled" section boundaries only when they are
// unmistakably styled as headers; plain Title Case is not enough, or names
// and job-title lines would split their own sections apart.
func classifyHeader(line string, patterns map[string]*regexp.Regexp) (string, bool) {
	if !looksLikeHeader(line) {
		return "", false
	}
	for label, re := range patterns {
		if re.MatchString(line) {
			return label, true
		}
	}
	if isStrongHeader(line) {
		return UnlabeledSection, true
	}
	return "", false
}

var (
	sentencePunct = regexp.MustCompile(`[.,;!?]$`)
	digitOrSep    = regexp.MustCompile(`[\d|•@]`)
)

// looksLikeHeader applies the structural heuristic: short, few words, no
// sentence punctuation, no dates or separators.
func looksLikeHeader(line string) bool {
	if len(line) > 48 {
		return false
	}
	words := strings.Fields(strings.TrimSuffix(line, ":"))
	if len(words) == 0 || len(words) > 5 {
		return false
	}
	if digitOrSep.MatchString(line) {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	return !sentencePunct.MatchString(line)
}

// isStrongHeader accepts only unambiguous header styling: all caps or a
// trailing colon.
func isStrongHeader(line string) bool {
	if strings.HasSuffix(line, ":") {
		return true
	}
	return line == strings.ToUpper(line) && line != strings.ToLower(line)
}

// trimSpan shrinks [start, end) to exclude leading and trailing whitespace
// while keeping offsets anchored in the original text.
func trimSpan(text string, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return start, end
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
