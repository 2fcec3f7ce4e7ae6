// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phone finds the claimant's contact number in a lien document.
package phone

import (
	"regexp"

	"lien-scan/internal/cascade"
	"lien-scan/internal/textnorm"
)

// phonePattern is a named fixed phone number pattern
type phonePattern struct {
	name  string
	regex *regexp.Regexp
}

// Extractor tries a metadata-backed matcher first, then fixed US patterns,
// then any long run of digits.
type Extractor struct {
	matcher    NumberMatcher
	patterns   []phonePattern
	digitRun   *regexp.Regexp
	normalizer textnorm.Normalizer
	chain      *cascade.Chain[string]
}

// NewExtractor creates an extractor. A nil matcher skips the grammar stage.
func NewExtractor(matcher NumberMatcher) *Extractor {
	e := &Extractor{
		matcher: matcher,
		patterns: []phonePattern{
			{
				name:  "US_Parenthesized",
				regex: regexp.MustCompile(`\(\d{3}\)\s?\d{3}-\d{4}\b`),
			},
			{
				name:  "US_Dashed",
				regex: regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`),
			},
		},
		digitRun: regexp.MustCompile(`\d{10,}`),
	}

	e.chain = cascade.New[string]()
	if matcher != nil {
		e.chain.Then("grammar", matcher.Match)
	}
	e.chain.Then("pattern", e.matchPattern).
		Then("digit_run", e.matchDigitRun)
	return e
}

// WithNormalizer replaces the text normalizer.
func (e *Extractor) WithNormalizer(n textnorm.Normalizer) *Extractor {
	e.normalizer = n
	return e
}

// Stages returns the stage names in the order they are tried.
func (e *Extractor) Stages() []string {
	return e.chain.Names()
}

var defaultExtractor = NewExtractor(NewGrammarMatcher("US"))

// ExtractPhoneNumber finds a phone number with the default extractor.
func ExtractPhoneNumber(text string) (string, bool) {
	return defaultExtractor.ExtractPhoneNumber(text)
}

// ExtractPhoneNumber returns the first phone number found, or false.
func (e *Extractor) ExtractPhoneNumber(text string) (string, bool) {
	number, _, ok := e.Extract(text)
	return number, ok
}

// Extract returns the number and the stage that found it.
func (e *Extractor) Extract(text string) (number string, stage string, ok bool) {
	text = e.normalizer.Normalize(text)
	if text == "" {
		return "", "", false
	}
	res := e.chain.Run(text)
	if !res.Found {
		return "", "", false
	}
	return res.Value, res.Contributors[0], true
}

func (e *Extractor) matchPattern(text string) (string, bool) {
	for _, p := range e.patterns {
		if m := p.regex.FindString(text); m != "" {
			return m, true
		}
	}
	return "", false
}

// matchDigitRun formats the first ten digits of the longest digit run.
func (e *Extractor) matchDigitRun(text string) (string, bool) {
	longest := ""
	for _, run := range e.digitRun.FindAllString(text, -1) {
		if len(run) > len(longest) {
			longest = run
		}
	}
	if longest == "" {
		return "", false
	}
	return "(" + longest[0:3] + ") " + longest[3:6] + "-" + longest[6:10], true
}
