// Package lexicon holds the versioned matching tables the extractor and gap
// engine run against: canonical skill names with synonyms, technology,
// certification and soft-skill vocabularies, and action verbs. Tables load
// from a YAML file so they can evolve without engine changes; a built-in
// default ships with the binary.
package lexicon

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon is a versioned set of matching tables
type Lexicon struct {
	Version        string              `yaml:"version"`
	Synonyms       map[string][]string `yaml:"synonyms"` // canonical -> aliases
	Technologies   []string            `yaml:"technologies"`
	Certifications []string            `yaml:"certifications"`
	SoftSkills     []string            `yaml:"soft_skills"`
	Keywords       []string            `yaml:"keywords"` // industry and methodology terms
	ActionVerbs    []string            `yaml:"action_verbs"`

	// canonical lookup built once at load time: alias -> canonical
	aliasIndex map[string]string
}

// LoadFile reads a lexicon from a YAML file
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	lex := &Lexicon{}
	if err := yaml.Unmarshal(data, lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file: %w", err)
	}
	if lex.Version == "" {
		return nil, fmt.Errorf("lexicon file %s has no version", path)
	}

	lex.buildIndex()
	return lex, nil
}

// Load returns the lexicon at path, or the built-in default when path is
// empty.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Normalize lowercases a term and strips punctuation that does not carry
// meaning in skill names. "+", "#" and "." are kept so "C++", "C#" and
// "Node.js" survive.
func Normalize(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	term = regexp.MustCompile(`[^\w\s\+\#\.\/]`).ReplaceAllString(term, "")
	term = regexp.MustCompile(`\s+`).ReplaceAllString(term, " ")
	return term
}

// Canonical resolves a term to its canonical skill name through the synonym
// table. Unknown terms map to their normalized form.
func (l *Lexicon) Canonical(term string) string {
	normalized := Normalize(term)
	if canonical, ok := l.aliasIndex[normalized]; ok {
		return canonical
	}
	return normalized
}

// Match reports whether two terms name the same skill: equal after
// canonicalization.
func (l *Lexicon) Match(a, b string) bool {
	return l.Canonical(a) == l.Canonical(b)
}

// FindAll returns the vocabulary entries present in text, matched
// case-insensitively on word boundaries so "R" never matches inside "Art".
// Aliases count as matches for their canonical entry. Results keep vocabulary
// order and are deduplicated.
func (l *Lexicon) FindAll(text string, vocabulary []string) []string {
	if text == "" || len(vocabulary) == 0 {
		return nil
	}

	var found []string
	for _, entry := range vocabulary {
		terms := []string{entry}
		if aliases, ok := l.Synonyms[Normalize(entry)]; ok {
			terms = append(terms, aliases...)
		}
		for _, term := range terms {
			if containsToken(text, term) {
				found = append(found, entry)
				break
			}
		}
	}
	return found
}

// containsToken does a case-insensitive, boundary-aware search for term in
// text. Word characters in the term must not be flanked by word characters in
// the text.
func containsToken(text, term string) bool {
	pattern := `(?i)(^|[^\w])` + regexp.QuoteMeta(strings.TrimSpace(term)) + `($|[^\w\+\#])`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

func (l *Lexicon) buildIndex() {
	l.aliasIndex = make(map[string]string)
	for canonical, aliases := range l.Synonyms {
		key := Normalize(canonical)
		l.aliasIndex[key] = key
		for _, alias := range aliases {
			l.aliasIndex[Normalize(alias)] = key
		}
	}
}
