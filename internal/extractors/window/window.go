// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package window cuts bounded word windows around anchor phrases.
package window

import (
	"strings"
)

// DefaultWords is the default window width in words.
const DefaultWords = 49

// abbreviations end in a period without ending a sentence.
var abbreviations = map[string]bool{
	"INC": true, "CO": true, "CORP": true, "LTD": true, "LLC": true, "LP": true,
	"MR": true, "MRS": true, "MS": true, "DR": true, "JR": true, "SR": true,
	"ST": true, "AVE": true, "BLVD": true, "RD": true, "LN": true, "CT": true,
	"NO": true, "VS": true, "ETC": true, "DBA": true, "PO": true,
}

// Following returns up to n words of text starting at byte offset from.
func Following(text string, from, n int) string {
	if from < 0 || from >= len(text) || n <= 0 {
		return ""
	}
	words := strings.Fields(text[from:])
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// Preceding returns up to n words of text ending at byte offset to.
func Preceding(text string, to, n int) string {
	if to <= 0 || n <= 0 {
		return ""
	}
	if to > len(text) {
		to = len(text)
	}
	words := strings.Fields(text[:to])
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}

// ClauseBefore returns the words before offset to, back to the previous
// clause boundary and at most n words.
func ClauseBefore(text string, to, n int) string {
	words := strings.Fields(Preceding(text, to, n))
	start := len(words)
	for start > 0 && !IsClauseEnd(words[start-1]) {
		start--
	}
	return strings.Join(words[start:], " ")
}

// ClauseAfter returns the words after offset from, up to and including the
// word that ends the clause, and at most n words.
func ClauseAfter(text string, from, n int) string {
	words := strings.Fields(Following(text, from, n))
	end := 0
	for end < len(words) {
		end++
		if IsClauseEnd(words[end-1]) {
			break
		}
	}
	return strings.Join(words[:end], " ")
}

// IsClauseEnd reports whether word closes a clause: it ends with a semicolon,
// or with sentence punctuation that is not part of an abbreviation.
func IsClauseEnd(word string) bool {
	switch {
	case strings.HasSuffix(word, ";"):
		return true
	case strings.HasSuffix(word, "."), strings.HasSuffix(word, "!"), strings.HasSuffix(word, "?"):
		return !IsAbbreviation(word)
	}
	return false
}

// IsAbbreviation reports whether a period-terminated word is an abbreviation
// such as "Inc.", "J." or "L.L.C.".
func IsAbbreviation(word string) bool {
	core := strings.TrimRight(strings.Trim(word, `"'()`), ".!?")
	if core == "" {
		return false
	}
	if strings.Contains(core, ".") {
		return true
	}
	if len(core) == 1 && core[0] >= 'A' && core[0] <= 'Z' {
		return true
	}
	return abbreviations[strings.ToUpper(core)]
}
