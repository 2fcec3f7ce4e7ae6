// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package address extracts a US postal address from OCR text.
//
// Extraction runs a component tagger first and falls back to a list of
// regular expressions, then repairs city and state from "City of X" and
// "X County, STATE" phrases when they are still missing.
package address

import (
	"regexp"

	"lien-scan/internal/cascade"
	"lien-scan/internal/record"
	"lien-scan/internal/textnorm"
)

// Extractor finds the first usable address in a text.
type Extractor struct {
	states     *StateTable
	tagger     *Tagger
	patterns   []addressPattern
	cityOf     *regexp.Regexp
	county     *regexp.Regexp
	normalizer textnorm.Normalizer
	chain      *cascade.Chain[record.AddressRecord]
}

// NewExtractor creates an extractor. A nil table uses the 50 states plus DC.
func NewExtractor(states *StateTable) *Extractor {
	if states == nil {
		states = NewStateTable(nil)
	}
	e := &Extractor{
		states:   states,
		tagger:   NewTagger(states),
		patterns: buildPatterns(states),
		cityOf:   regexp.MustCompile(`\bCity of ([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)?)`),
		county:   regexp.MustCompile(`\b[A-Z][A-Za-z]+\s+County\s*,\s*(?:State\s+of\s+)?\b(` + states.pattern() + `)\b`),
	}

	e.chain = cascade.New[record.AddressRecord]().
		Then("tagger", e.fromTagger).
		Then("pattern", e.fromPatterns).
		Then("city_of", e.fromCityOf).
		Then("county_state", e.fromCounty)
	e.chain.Merge = mergeAddress
	e.chain.Done = record.AddressRecord.Complete
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

var defaultExtractor = NewExtractor(nil)

// ExtractAddress finds an address with the default extractor.
func ExtractAddress(text string) record.AddressRecord {
	return defaultExtractor.ExtractAddress(text)
}

// ExtractAddress returns the address found in text. Fields that could not be
// found are empty; an empty input gives the zero record.
func (e *Extractor) ExtractAddress(text string) record.AddressRecord {
	addr, _ := e.Extract(text)
	return addr
}

// Extract returns the address and the names of the stages that contributed.
func (e *Extractor) Extract(text string) (record.AddressRecord, []string) {
	text = e.normalizer.Normalize(textnorm.SplitAnchorWords(text))
	if text == "" {
		return record.AddressRecord{}, nil
	}

	res := e.chain.Run(text)
	addr := res.Value
	addr.State = e.states.Normalize(addr.State)

	// A state or zip without a street is not an address; the city goes with it.
	if addr.Street == "" && (addr.State != "" || addr.Zip != "") {
		addr.City = ""
	}
	return addr, res.Contributors
}

func (e *Extractor) fromTagger(text string) (record.AddressRecord, bool) {
	comps, err := e.tagger.Tag(text)
	if err != nil {
		return record.AddressRecord{}, false
	}
	var addr record.AddressRecord
	addr.Street, addr.City, addr.State, addr.Zip = Assemble(comps)
	return addr, !addr.IsZero()
}

func (e *Extractor) fromPatterns(text string) (record.AddressRecord, bool) {
	for _, p := range e.patterns {
		if addr, ok := p.match(text); ok {
			return addr, true
		}
	}
	return record.AddressRecord{}, false
}

func (e *Extractor) fromCityOf(text string) (record.AddressRecord, bool) {
	m := e.cityOf.FindStringSubmatch(text)
	if m == nil {
		return record.AddressRecord{}, false
	}
	return record.AddressRecord{City: m[1]}, true
}

func (e *Extractor) fromCounty(text string) (record.AddressRecord, bool) {
	m := e.county.FindStringSubmatch(text)
	if m == nil {
		return record.AddressRecord{}, false
	}
	return record.AddressRecord{State: m[1]}, true
}

// mergeAddress fills gaps in acc from next. A next result that has a street
// and more fields replaces acc entirely, so parts of two different addresses
// are never combined.
func mergeAddress(acc, next record.AddressRecord) record.AddressRecord {
	if next.Street != "" && next.FieldCount() > acc.FieldCount() {
		return next
	}
	if acc.Street == "" {
		acc.Street = next.Street
	}
	if acc.City == "" {
		acc.City = next.City
	}
	if acc.State == "" {
		acc.State = next.State
	}
	if acc.Zip == "" {
		acc.Zip = next.Zip
	}
	return acc
}
