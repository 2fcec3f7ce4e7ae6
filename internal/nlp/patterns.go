// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// NamePattern represents a compiled regex pattern with metadata
type NamePattern struct {
	Pattern     *regexp.Regexp
	Name        string
	Description string
	Priority    int
}

// PatternRecognizer finds person names with capitalization patterns. It is
// the recognizer used when the statistical model is disabled.
type PatternRecognizer struct {
	patterns  []NamePattern
	stopWords map[string]bool
}

// NewPatternRecognizer creates a recognizer with the standard patterns.
func NewPatternRecognizer() *PatternRecognizer {
	r := &PatternRecognizer{
		stopWords: map[string]bool{
			"lien": true, "statement": true, "notice": true, "county": true, "clerk": true,
			"owner": true, "owners": true, "claimant": true, "contractor": true, "customer": true,
			"street": true, "avenue": true, "road": true, "drive": true, "city": true, "state": true,
			"oklahoma": true, "exhibit": true, "book": true, "page": true, "the": true, "and": true,
			"mechanic": true, "materialman": true, "property": true, "legal": true, "description": true,
		},
	}
	r.compilePatterns()
	return r
}

func (r *PatternRecognizer) compilePatterns() {
	word := `[A-Z][a-z]{1,29}`
	definitions := []struct {
		name        string
		pattern     string
		description string
		priority    int
	}{
		{
			name:        "last_comma_first",
			pattern:     `\b` + word + `,\s+` + word + `(?:\s+[A-Z]\.)?`,
			description: "Last, First format as written in grantee indexes",
			priority:    9,
		},
		{
			name:        "name_with_middle_initial",
			pattern:     `\b` + word + `\s+[A-Z]\.\s+` + word + `\b`,
			description: "Name with middle initial: First M. Last",
			priority:    8,
		},
		{
			name:        "name_with_suffix",
			pattern:     `\b` + word + `\s+` + word + `\s+(?:Jr\.?|Sr\.?|III|II|IV)`,
			description: "Name with generational suffix: First Last Jr.",
			priority:    8,
		},
		{
			name:        "three_part_name",
			pattern:     `\b` + word + `\s+` + word + `\s+` + word + `\b`,
			description: "Three-part name: First Middle Last",
			priority:    6,
		},
		{
			name:        "hyphenated_last_name",
			pattern:     `\b` + word + `\s+` + word + `-` + word + `\b`,
			description: "Hyphenated last name: First Last-Name",
			priority:    7,
		},
		{
			name:        "basic_western_name",
			pattern:     `\b` + word + `\s+` + word + `\b`,
			description: "Basic Western name format: First Last",
			priority:    5,
		},
		{
			name:        "upper_case_name",
			pattern:     `\b[A-Z]{2,20}(?:\s+[A-Z]\.?)?\s+[A-Z]{2,20}\b`,
			description: "All-caps name as printed on recorded forms: JOHN SMITH",
			priority:    3,
		},
	}

	r.patterns = make([]NamePattern, len(definitions))
	for i, def := range definitions {
		r.patterns[i] = NamePattern{
			Pattern:     regexp.MustCompile(def.pattern),
			Name:        def.name,
			Description: def.description,
			Priority:    def.priority,
		}
	}
	sort.SliceStable(r.patterns, func(i, j int) bool {
		return r.patterns[i].Priority > r.patterns[j].Priority
	})
}

// GetPatterns returns all compiled patterns
func (r *PatternRecognizer) GetPatterns() []NamePattern {
	return r.patterns
}

// PersonNames returns the matches of every pattern, highest priority first,
// skipping matches made of form vocabulary.
func (r *PatternRecognizer) PersonNames(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, p := range r.patterns {
		for _, m := range p.Pattern.FindAllString(text, -1) {
			m = strings.TrimSpace(m)
			if seen[m] || r.containsStopWord(m) {
				continue
			}
			seen[m] = true
			names = append(names, m)
		}
	}
	return names
}

func (r *PatternRecognizer) containsStopWord(match string) bool {
	for _, w := range strings.FieldsFunc(match, func(c rune) bool { return c == ' ' || c == ',' || c == '-' }) {
		if r.stopWords[strings.ToLower(strings.TrimSuffix(w, "."))] {
			return true
		}
	}
	return false
}
