// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textnorm cleans OCR text before it is handed to the extractors.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonASCIIRun   = regexp.MustCompile(`[^\x00-\x7F]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)

	// "owned byAcme" is a common OCR artifact where the anchor and the name are glued together.
	ownedByGlued = regexp.MustCompile(`(\b(?i:owned\s*by))([A-Z])`)
)

// Normalizer strips OCR noise from text. The zero value is ready to use.
type Normalizer struct {
	// FoldAccents maps Latin letters with diacritics to their ASCII base
	// letter before non-ASCII runs are removed.
	FoldAccents bool
}

// Normalize replaces every run of non-ASCII characters with a single space,
// collapses whitespace and trims the result. It is idempotent.
func Normalize(text string) string {
	return Normalizer{}.Normalize(text)
}

// Normalize applies the normalizer to text.
func (n Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	if n.FoldAccents {
		text = foldAccents(text)
	}
	text = nonASCIIRun.ReplaceAllString(text, " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitAnchorWords separates an "owned by" anchor from a capitalized word
// that follows it without a space.
func SplitAnchorWords(text string) string {
	return ownedByGlued.ReplaceAllString(text, "${1} ${2}")
}

func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
