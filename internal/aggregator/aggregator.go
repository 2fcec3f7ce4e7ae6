// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package aggregator assembles one LienRecord from a document and the values
// already scraped from the records table.
package aggregator

import (
	"regexp"
	"strings"

	"lien-scan/internal/document"
	"lien-scan/internal/extractors/address"
	"lien-scan/internal/extractors/currency"
	"lien-scan/internal/extractors/party"
	"lien-scan/internal/extractors/phone"
	"lien-scan/internal/extractors/window"
	"lien-scan/internal/observability"
	"lien-scan/internal/record"
	"lien-scan/internal/textnorm"
)

// Field names a value the aggregator can extract.
type Field string

const (
	FieldClaimant        Field = "CLAIMANT"
	FieldContractor      Field = "CONTRACTOR"
	FieldOwner           Field = "OWNER"
	FieldPropertyAddress Field = "PROPERTY_ADDRESS"
	FieldDollarAmount    Field = "DOLLAR_AMOUNT"
	FieldPhoneNumber     Field = "PHONE_NUMBER"
)

// AllFields lists every extractable field in output order.
var AllFields = []Field{
	FieldClaimant, FieldContractor, FieldOwner,
	FieldPropertyAddress, FieldDollarAmount, FieldPhoneNumber,
}

var propertyAnchor = regexp.MustCompile(`(?i)\b(?:subject\s+property|property\s+address|property)\s*:|\b(?:located|situated|improvements)\s+at\b`)

// Options configures an Aggregator. Nil extractors get their defaults.
type Options struct {
	Parties    *party.Extractor
	Addresses  *address.Extractor
	Amounts    *currency.Extractor
	Phones     *phone.Extractor
	Normalizer textnorm.Normalizer
	// Fields selects the fields to extract. Nil enables all of them;
	// disabled fields keep the table value or their sentinel.
	Fields map[Field]bool
	// Window is the property-anchor window width in words.
	Window int
	Timer  observability.Timer
}

// Aggregator runs every extractor once per document. It holds no
// per-document state and may be shared.
type Aggregator struct {
	parties    *party.Extractor
	addresses  *address.Extractor
	amounts    *currency.Extractor
	phones     *phone.Extractor
	normalizer textnorm.Normalizer
	fields     map[Field]bool
	window     int
	timer      observability.Timer
}

// New creates an aggregator.
func New(opts Options) *Aggregator {
	a := &Aggregator{
		parties:    opts.Parties,
		addresses:  opts.Addresses,
		amounts:    opts.Amounts,
		phones:     opts.Phones,
		normalizer: opts.Normalizer,
		fields:     opts.Fields,
		window:     opts.Window,
		timer:      opts.Timer,
	}
	if a.parties == nil {
		a.parties = party.NewExtractor(nil, nil)
	}
	if a.addresses == nil {
		a.addresses = address.NewExtractor(nil)
	}
	if a.amounts == nil {
		a.amounts = currency.NewExtractor()
	}
	if a.phones == nil {
		a.phones = phone.NewExtractor(phone.NewGrammarMatcher(""))
	}
	if a.fields == nil {
		a.fields = make(map[Field]bool, len(AllFields))
		for _, f := range AllFields {
			a.fields[f] = true
		}
	}
	if a.window <= 0 {
		a.window = window.DefaultWords
	}
	if a.timer == nil {
		a.timer = observability.Nop{}
	}
	return a
}

// Enabled reports whether field is extracted.
func (a *Aggregator) Enabled(f Field) bool {
	return a.fields[f]
}

// Aggregate builds the record for one document. An empty text is taken from
// the merged blocks, and a text without blocks is treated as a single block. Table values that are not placeholders win over the
// extracted claimant, contractor and owner.
func (a *Aggregator) Aggregate(text string, blocks document.Layout, existing record.RowFields) record.LienRecord {
	finish := a.timer.StartTiming("aggregator", "aggregate", existing.File)

	if text == "" {
		text = blocks.MergedText()
	}
	if len(blocks) == 0 {
		blocks = document.NewLayout(text)
	}
	text = a.normalizer.Normalize(textnorm.SplitAnchorWords(text))

	rec := record.Default(existing)
	sources := make(map[string]interface{})

	rec.Claimant = a.party(party.Claimant, FieldClaimant, text, existing.Claimant, sources)
	rec.Contractor = a.party(party.Contractor, FieldContractor, text, existing.Contractor, sources)
	rec.Owner = a.party(party.Owner, FieldOwner, text, existing.Owner, sources)

	if a.Enabled(FieldPropertyAddress) {
		addr, source := a.propertyAddress(text)
		rec.PropertyAddress = addr
		if addr.Found() {
			sources[string(FieldPropertyAddress)] = source
		}
	}
	if a.Enabled(FieldDollarAmount) {
		if amount, rule, ok := a.amounts.Extract(blocks); ok {
			rec.DollarAmount = amount
			sources[string(FieldDollarAmount)] = rule
		}
	}
	if a.Enabled(FieldPhoneNumber) {
		if number, stage, ok := a.phones.Extract(text); ok {
			rec.PhoneNumber = number
			sources[string(FieldPhoneNumber)] = stage
		}
	}

	rec.Status = record.StatusExtracted
	finish(true, sources)
	return rec
}

// party keeps a meaningful table value and extracts the role otherwise.
func (a *Aggregator) party(role party.Role, f Field, text, existing string, sources map[string]interface{}) string {
	if !record.IsPlaceholder(existing) {
		sources[string(f)] = "table"
		return strings.TrimSpace(existing)
	}
	if !a.Enabled(f) {
		return record.NotFound
	}
	name, anchor, ok := a.parties.Extract(role, text)
	if !ok {
		return record.NotFound
	}
	sources[string(f)] = anchor
	return name
}

// PropertyAddress locates the liened property: the first property-anchor
// window with a street, then the owner's address, then the whole text.
func (a *Aggregator) PropertyAddress(text string) record.AddressRecord {
	addr, _ := a.propertyAddress(text)
	return addr
}

func (a *Aggregator) propertyAddress(text string) (record.AddressRecord, string) {
	for _, loc := range propertyAnchor.FindAllStringIndex(text, -1) {
		if addr := a.addresses.ExtractAddress(window.Following(text, loc[1], a.window)); addr.Found() {
			return addr, "property_anchor"
		}
	}
	if addr := a.parties.ExtractOwnerAddress(text, a.addresses); addr.Found() {
		return addr, "owner_address"
	}
	return a.addresses.ExtractAddress(text), "full_text"
}
