// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package party extracts the claimant, contractor and owner names from a
// lien statement.
//
// Each role has a list of anchors. The words around the first anchor that
// yields a name form a window, and the window is searched for company names
// first and person names second.
package party

import (
	"regexp"
	"strings"

	"lien-scan/internal/cascade"
	"lien-scan/internal/extractors/address"
	"lien-scan/internal/extractors/window"
	"lien-scan/internal/nlp"
	"lien-scan/internal/record"
	"lien-scan/internal/textnorm"
)

// Role is a party to a lien.
type Role string

const (
	Claimant   Role = "claimant"
	Contractor Role = "contractor"
	Owner      Role = "owner"
)

// Roles lists every role in output order.
var Roles = []Role{Claimant, Contractor, Owner}

type windowKind int

const (
	labelWindow windowKind = iota
	clauseBefore
	clauseAfter
)

// anchor marks where a role's name is written.
type anchor struct {
	name string
	re   *regexp.Regexp
	kind windowKind
}

var (
	claimsClause = regexp.MustCompile(`(?i)\b(?:claims|against|upon)\b`)

	// nextLabel ends a label window at the next role label.
	nextLabel = regexp.MustCompile(`(?i)\b(?:claimant|contractor|customer|owners?|owned\s+by)\s*:?`)

	roleAnchors = map[Role][]anchor{
		Claimant: {
			{name: "claimant_label", re: regexp.MustCompile(`(?i)\bclaimant\s*:`), kind: labelWindow},
			{name: "claims_clause", re: claimsClause, kind: clauseBefore},
		},
		Contractor: {
			{name: "contractor_label", re: regexp.MustCompile(`(?i)\bcontractor\s*:`), kind: labelWindow},
			{name: "customer_label", re: regexp.MustCompile(`(?i)\bcustomer\s*:`), kind: labelWindow},
			{name: "claims_clause", re: claimsClause, kind: clauseAfter},
		},
		Owner: {
			{name: "owner_label", re: regexp.MustCompile(`(?i)\bowners?\s*:`), kind: labelWindow},
			{name: "owned_by", re: regexp.MustCompile(`(?i)\bowned\s+by\b`), kind: labelWindow},
		},
	}
)

// Extractor finds party names. It holds no per-document state.
type Extractor struct {
	companies   *CompanyRecognizer
	people      nlp.Recognizer
	words       int
	clauseWords int
	normalizer  textnorm.Normalizer
	chains      map[Role]*cascade.Chain[string]
}

// NewExtractor creates an extractor. A nil company recognizer uses the
// default suffix set; a nil person recognizer disables the NER fallback.
func NewExtractor(companies *CompanyRecognizer, people nlp.Recognizer) *Extractor {
	if companies == nil {
		companies = NewCompanyRecognizer(nil)
	}
	if people == nil {
		people = nlp.Nop{}
	}
	e := &Extractor{
		companies:   companies,
		people:      people,
		words:       window.DefaultWords,
		clauseWords: window.DefaultWords,
		chains:      make(map[Role]*cascade.Chain[string], len(Roles)),
	}
	for _, role := range Roles {
		chain := cascade.New[string]()
		for _, a := range roleAnchors[role] {
			chain.Then(a.name, func(text string) (string, bool) {
				return e.fromAnchor(text, a, e.excluded(role, a, text))
			})
		}
		e.chains[role] = chain
	}
	return e
}

// WithWindow sets the window width in words. Values below one are ignored.
func (e *Extractor) WithWindow(words int) *Extractor {
	if words > 0 {
		e.words = words
	}
	return e
}

// WithClauseWindow sets the width of the claims-clause windows. Values
// below one are ignored.
func (e *Extractor) WithClauseWindow(words int) *Extractor {
	if words > 0 {
		e.clauseWords = words
	}
	return e
}

// WithNormalizer replaces the text normalizer.
func (e *Extractor) WithNormalizer(n textnorm.Normalizer) *Extractor {
	e.normalizer = n
	return e
}

// Anchors returns the anchor names tried for role, in priority order.
func (e *Extractor) Anchors(role Role) []string {
	if chain, ok := e.chains[role]; ok {
		return chain.Names()
	}
	return nil
}

// ExtractClaimant returns the lien claimant.
func (e *Extractor) ExtractClaimant(text string) (string, bool) {
	name, _, ok := e.Extract(Claimant, text)
	return name, ok
}

// ExtractContractor returns the party that contracted for the work.
func (e *Extractor) ExtractContractor(text string) (string, bool) {
	name, _, ok := e.Extract(Contractor, text)
	return name, ok
}

// ExtractOwner returns the owner of the liened property.
func (e *Extractor) ExtractOwner(text string) (string, bool) {
	name, _, ok := e.Extract(Owner, text)
	return name, ok
}

// Extract returns the name for role and the anchor that produced it.
func (e *Extractor) Extract(role Role, text string) (name, anchorName string, ok bool) {
	chain, known := e.chains[role]
	if !known {
		return "", "", false
	}
	text = e.normalizer.Normalize(textnorm.SplitAnchorWords(text))
	if text == "" {
		return "", "", false
	}
	res := chain.Run(text)
	if !res.Found {
		return "", "", false
	}
	return res.Value, res.Contributors[0], true
}

// ExtractOwnerAddress runs addresses over the owner window, then over the
// window that follows it, and returns the first address with a street.
func (e *Extractor) ExtractOwnerAddress(text string, addresses *address.Extractor) record.AddressRecord {
	if addresses == nil {
		return record.AddressRecord{}
	}
	text = e.normalizer.Normalize(textnorm.SplitAnchorWords(text))
	for _, a := range roleAnchors[Owner] {
		loc := a.re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		first, next := e.adjacentWindows(text, loc[1])
		for _, w := range []string{first, next} {
			if addr := addresses.ExtractAddress(w); addr.Found() {
				return addr
			}
		}
	}
	return record.AddressRecord{}
}

// fromAnchor tries every occurrence of an anchor and returns the first name
// found in its window that is not exclude.
func (e *Extractor) fromAnchor(text string, a anchor, exclude string) (string, bool) {
	for _, loc := range a.re.FindAllStringIndex(text, -1) {
		name, ok := e.recognize(e.windowAt(text, loc, a.kind))
		if ok && (exclude == "" || !strings.EqualFold(name, exclude)) {
			return name, true
		}
	}
	return "", false
}

// excluded returns the claimant when a contractor clause could name it, as
// in "upon oath Sunstate Roofing LLC; ...".
func (e *Extractor) excluded(role Role, a anchor, text string) string {
	if role != Contractor || a.kind != clauseAfter {
		return ""
	}
	res := e.chains[Claimant].Run(text)
	if !res.Found {
		return ""
	}
	return res.Value
}

func (e *Extractor) windowAt(text string, loc []int, kind windowKind) string {
	switch kind {
	case clauseBefore:
		return window.ClauseBefore(text, loc[0], e.clauseWords)
	case clauseAfter:
		return window.ClauseAfter(text, loc[1], e.clauseWords)
	default:
		return window.Following(cutAtLabel(text, loc[1]), loc[1], e.words)
	}
}

// adjacentWindows returns the label window at from and the one after it.
func (e *Extractor) adjacentWindows(text string, from int) (string, string) {
	first := window.Following(text, from, e.words)
	skip := len(text)
	if words := wordOffsets(text[from:]); len(words) > e.words {
		skip = from + words[e.words]
	}
	return first, window.Following(text, skip, e.words)
}

func (e *Extractor) recognize(w string) (string, bool) {
	if w == "" {
		return "", false
	}
	if name, ok := e.companies.Best(w); ok {
		return name, true
	}
	return nlp.Longest(e.people.PersonNames(w))
}

// cutAtLabel truncates text at the first role label after from.
func cutAtLabel(text string, from int) string {
	if loc := nextLabel.FindStringIndex(text[from:]); loc != nil {
		return text[:from+loc[0]]
	}
	return text
}

// wordOffsets returns the byte offset of each word in s.
func wordOffsets(s string) []int {
	var offs []int
	inWord := false
	for i, c := range s {
		space := c == ' ' || c == '\t' || c == '\n' || c == '\r'
		if !space && !inWord {
			offs = append(offs, i)
		}
		inWord = !space
	}
	return offs
}
