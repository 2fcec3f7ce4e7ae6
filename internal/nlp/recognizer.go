// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nlp provides named-entity recognition for person names.
package nlp

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Recognizer returns the person-name spans found in a text.
type Recognizer interface {
	PersonNames(text string) []string
}

// ProseRecognizer uses the averaged-perceptron entity model bundled with prose.
// Build it once and share it; it holds no per-document state.
type ProseRecognizer struct{}

// NewProseRecognizer creates the default recognizer.
func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

// PersonNames returns PERSON entity spans in document order. Tokenizer or
// model failures yield no names.
func (r *ProseRecognizer) PersonNames(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var names []string
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			names = append(names, ent.Text)
		}
	}
	return names
}

// Nop recognizes nothing. It is used when entity recognition is disabled.
type Nop struct{}

// PersonNames always returns nil.
func (Nop) PersonNames(string) []string { return nil }

// Longest returns the longest name, preferring the earliest on ties.
func Longest(names []string) (string, bool) {
	best := ""
	for _, n := range names {
		n = strings.TrimSpace(n)
		if len(n) > len(best) {
			best = n
		}
	}
	return best, best != ""
}
