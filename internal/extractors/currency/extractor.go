// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package currency finds the claimed dollar amount in a lien document.
package currency

import (
	"regexp"
	"strconv"
	"strings"

	"lien-scan/internal/document"
	"lien-scan/internal/record"
	"lien-scan/internal/textnorm"
)

const amountExpr = `(\d[\d,]*(?:\.\d+)*)`

// amountPattern is a contextual phrase that marks the claimed amount.
type amountPattern struct {
	name  string
	regex *regexp.Regexp
}

// Extractor finds the claimed amount, preferring amounts that appear in a
// claiming phrase over the largest figure in the document.
type Extractor struct {
	patterns   []amountPattern
	label      *regexp.Regexp
	labelValue *regexp.Regexp
	candidate  *regexp.Regexp
	// lookahead is how many blocks after the label are inspected.
	lookahead  int
	normalizer textnorm.Normalizer
}

// NewExtractor creates an extractor with the standard phrase list.
func NewExtractor() *Extractor {
	return &Extractor{
		patterns: []amountPattern{
			{name: "of", regex: regexp.MustCompile(`(?i)\bof\s*\$\s?` + amountExpr)},
			{name: "is", regex: regexp.MustCompile(`(?i)\bis\s*\$\s?` + amountExpr)},
			{name: "total", regex: regexp.MustCompile(`(?i)\btotals?\s*:?\s*\$\s?` + amountExpr)},
			{name: "due", regex: regexp.MustCompile(`(?i)\$\s?` + amountExpr + `\s*(?:is\s+)?(?:now\s+)?(?:past\s+)?due\b`)},
			{name: "parenthesized", regex: regexp.MustCompile(`\(\s*\$\s?` + amountExpr + `\s*\)`)},
		},
		label:      regexp.MustCompile(`(?i)principal\s+amount\s+of\s+claim\s*:`),
		labelValue: regexp.MustCompile(`\$\s?` + amountExpr + `|(\d[\d,]*(?:\.\d+)*\.\d{2})\b`),
		candidate:  regexp.MustCompile(`\$\s?(\d[\d,]*(?:\.\d+)*\.\d{2})\b`),
		lookahead:  2,
	}
}

// WithNormalizer replaces the text normalizer applied to every block.
func (e *Extractor) WithNormalizer(n textnorm.Normalizer) *Extractor {
	e.normalizer = n
	return e
}

// Rules returns the rule names in the order they are tried.
func (e *Extractor) Rules() []string {
	names := make([]string, 0, len(e.patterns)+2)
	for _, p := range e.patterns {
		names = append(names, p.name)
	}
	return append(names, "principal_label", "largest")
}

var defaultExtractor = NewExtractor()

// ExtractDollarAmount returns the claimed amount using the default extractor.
func ExtractDollarAmount(blocks document.Layout) string {
	return defaultExtractor.ExtractDollarAmount(blocks)
}

// ExtractDollarAmount returns the claimed amount as a decimal string with
// two fraction digits, or "0" when the document has none.
func (e *Extractor) ExtractDollarAmount(blocks document.Layout) string {
	amount, _, ok := e.Extract(blocks)
	if !ok {
		return record.ZeroAmount
	}
	return amount
}

// Extract returns the amount and the name of the rule that produced it.
func (e *Extractor) Extract(blocks document.Layout) (amount string, rule string, ok bool) {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = e.normalizer.Normalize(b.Text)
	}

	var (
		best  float64
		found bool
	)
	for i, text := range texts {
		if text == "" {
			continue
		}

		for _, p := range e.patterns {
			m := p.regex.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if v, ok := ParseAmount(m[1]); ok {
				return FormatAmount(v), p.name, true
			}
		}

		if loc := e.label.FindStringIndex(text); loc != nil {
			if v, ok := e.labelAmount(text[loc[1]:], texts[i+1:]); ok {
				return FormatAmount(v), "principal_label", true
			}
		}

		for _, m := range e.candidate.FindAllStringSubmatch(text, -1) {
			v, ok := ParseAmount(m[1])
			if !ok {
				continue
			}
			if !found || v > best {
				best = v
				found = true
			}
		}
	}

	if !found {
		return "", "", false
	}
	return FormatAmount(best), "largest", true
}

// labelAmount looks for a value after the principal label, first in the rest
// of the label block and then in the following blocks.
func (e *Extractor) labelAmount(rest string, following []string) (float64, bool) {
	if v, ok := e.matchLabelValue(rest); ok {
		return v, true
	}
	for i := 0; i < e.lookahead && i < len(following); i++ {
		if v, ok := e.matchLabelValue(following[i]); ok {
			return v, true
		}
	}
	return 0, false
}

func (e *Extractor) matchLabelValue(text string) (float64, bool) {
	m := e.labelValue.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	raw := m[1]
	if raw == "" {
		raw = m[2]
	}
	return ParseAmount(raw)
}

// ParseAmount converts a currency token to a number. Thousands separators are
// dropped and a token with more than one decimal point is repaired by
// treating all but the last group as the integer part ("22.692.92" is 22692.92).
func ParseAmount(raw string) (float64, bool) {
	s := strings.ReplaceAll(raw, ",", "")
	s = strings.Trim(s, ".")
	if s == "" {
		return 0, false
	}
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders an amount with two fraction digits.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
