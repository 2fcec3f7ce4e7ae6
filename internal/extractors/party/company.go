// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package party

import (
	"regexp"
	"sort"
	"strings"

	"lien-scan/internal/extractors/window"
)

// DefaultCompanySuffixes are the legal-entity designators that end a company name.
var DefaultCompanySuffixes = []string{
	"INC", "LLC", "CORP", "CORPORATION", "GROUP", "ENTERPRISES", "HOLDINGS",
	"DBA", "CO", "LIMITED", "PARTNERSHIP", "ASSOCIATION", "COMPANY",
	"LTD", "PLLC", "LLP", "LP",
}

const dba = "DBA"

var (
	// houseNumberRun rejects candidates that swallowed the start of a street address.
	houseNumberRun = regexp.MustCompile(`\b\d{1,5}\s\w+`)
	capitalized    = regexp.MustCompile(`^[A-Z][A-Za-z0-9'&.-]*$`)
)

// connectors may appear inside a name but never start or end one.
var connectors = map[string]bool{
	"of": true, "and": true, "the": true, "de": true, "la": true, "del": true, "&": true, "-": true,
}

// stopWords are capitalized form words that are never part of a party name.
var stopWords = map[string]bool{
	"CLAIMANT": true, "CONTRACTOR": true, "CUSTOMER": true, "OWNER": true, "OWNERS": true,
	"LIEN": true, "STATEMENT": true, "NOTICE": true, "AFFIDAVIT": true, "CLAIMS": true,
	"AGAINST": true, "UPON": true, "BY": true, "TO": true, "FROM": true, "FOR": true,
	"WITH": true, "AT": true, "IN": true, "ON": true, "SAID": true, "THAT": true,
	"THIS": true, "PROPERTY": true, "LOCATED": true, "BETWEEN": true, "MECHANIC'S": true,
	"MATERIALMAN'S": true, "MECHANICS": true, "NAME": true, "ADDRESS": true,
}

// CompanyRecognizer finds business names in a short window of text.
type CompanyRecognizer struct {
	suffixes     map[string]bool
	maxNameWords int
	broad        *regexp.Regexp
}

// NewCompanyRecognizer creates a recognizer for the given suffix set. A nil
// or empty set uses DefaultCompanySuffixes.
func NewCompanyRecognizer(suffixes []string) *CompanyRecognizer {
	if len(suffixes) == 0 {
		suffixes = DefaultCompanySuffixes
	}
	r := &CompanyRecognizer{
		suffixes:     make(map[string]bool, len(suffixes)),
		maxNameWords: 6,
	}
	var alts []string
	for _, s := range suffixes {
		key := suffixKey(s)
		if key == "" {
			continue
		}
		r.suffixes[key] = true
		if key != dba {
			alts = append(alts, regexp.QuoteMeta(strings.ToLower(key)))
		}
	}
	sort.Slice(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	r.broad = regexp.MustCompile(`(?i)([a-z0-9][a-z0-9&'. -]{0,80}?,\s*(?:` + strings.Join(alts, "|") + `)\b\.?)`)
	return r
}

// IsSuffix reports whether word is a legal-entity designator.
func (r *CompanyRecognizer) IsSuffix(word string) bool {
	return r.suffixes[suffixKey(word)]
}

// Structural returns every capitalized run ending in a suffix, plus
// "X DBA Y" trade-name spans, in text order.
func (r *CompanyRecognizer) Structural(window string) []string {
	toks := strings.Fields(window)
	var out []string
	for i, tk := range toks {
		key := suffixKey(tk)
		if !r.suffixes[key] {
			continue
		}
		if key == dba {
			start := r.walkBack(toks, i)
			end := r.walkForward(toks, i+1, 3)
			if start < i && end > i+1 {
				out = append(out, joinName(toks[start:end]))
			}
			continue
		}
		if start := r.walkBack(toks, i); start < i {
			out = append(out, joinName(toks[start:i+1]))
		}
	}
	return r.filter(out)
}

// Broad returns comma-joined clauses ending in a suffix, regardless of case,
// trimmed to the last few words before the comma.
func (r *CompanyRecognizer) Broad(window string) []string {
	var out []string
	for _, m := range r.broad.FindAllString(window, -1) {
		comma := strings.LastIndex(m, ",")
		head := strings.Fields(m[:comma])
		if len(head) > r.maxNameWords-1 {
			head = head[len(head)-(r.maxNameWords-1):]
		}
		for len(head) > 0 && (connectors[strings.ToLower(head[0])] || stopWords[strings.ToUpper(head[0])]) {
			head = head[1:]
		}
		if len(head) == 0 {
			continue
		}
		out = append(out, strings.Join(head, " ")+","+m[comma+1:])
	}
	return r.filter(out)
}

// Best returns the longest structural candidate, then the longest broad one.
func (r *CompanyRecognizer) Best(window string) (string, bool) {
	if name, ok := longest(r.Structural(window)); ok {
		return name, true
	}
	return longest(r.Broad(window))
}

// walkBack returns the index of the first token of the name that ends just
// before toks[i].
func (r *CompanyRecognizer) walkBack(toks []string, i int) int {
	start := i
	for j := i - 1; j >= 0 && i-j < r.maxNameWords; j-- {
		tk := toks[j]
		if strings.HasSuffix(tk, ":") || strings.HasSuffix(tk, ";") {
			break
		}
		if strings.HasSuffix(tk, ",") && j != i-1 {
			break
		}
		if strings.HasSuffix(tk, ".") && !window.IsAbbreviation(tk) {
			break
		}
		if !r.isNameToken(tk) {
			break
		}
		start = j
	}
	for start < i && connectors[strings.ToLower(trimToken(toks[start]))] {
		start++
	}
	return start
}

// walkForward returns the exclusive end of up to max name tokens starting at from.
func (r *CompanyRecognizer) walkForward(toks []string, from, max int) int {
	end := from
	for j := from; j < len(toks) && j-from < max; j++ {
		tk := toks[j]
		if !r.isNameToken(tk) || connectors[strings.ToLower(trimToken(tk))] {
			break
		}
		end = j + 1
		if strings.ContainsAny(tk[len(tk)-1:], ",;:.") {
			break
		}
	}
	return end
}

func (r *CompanyRecognizer) isNameToken(tk string) bool {
	core := trimToken(tk)
	if core == "" {
		return false
	}
	if connectors[strings.ToLower(core)] {
		return true
	}
	if stopWords[strings.ToUpper(core)] {
		return false
	}
	return capitalized.MatchString(core)
}

func (r *CompanyRecognizer) filter(cands []string) []string {
	out := cands[:0]
	for _, c := range cands {
		if c == "" || houseNumberRun.MatchString(c) {
			continue
		}
		if len(strings.Fields(c)) < 2 {
			continue
		}
		out = append(out, c)
	}
	return out
}

func suffixKey(word string) string {
	core := strings.Trim(word, `.,;:()"'`)
	return strings.ToUpper(strings.ReplaceAll(core, ".", ""))
}

func trimToken(tk string) string {
	return strings.Trim(tk, `,;:()"'`)
}

// joinName joins tokens and drops trailing separators, keeping the period
// of an abbreviated suffix such as "Inc.".
func joinName(toks []string) string {
	name := strings.Join(toks, " ")
	name = strings.Trim(name, `"'() `)
	return strings.TrimRight(name, ",;:")
}

// longest returns the longest candidate, earliest on ties.
func longest(cands []string) (string, bool) {
	best := ""
	for _, c := range cands {
		if len(c) > len(best) {
			best = c
		}
	}
	return best, best != ""
}
