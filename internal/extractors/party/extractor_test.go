// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lien-scan/internal/extractors/address"
	"lien-scan/internal/record"
)

// fixedRecognizer returns the same names for every text.
type fixedRecognizer struct {
	names []string
	calls int
}

func (f *fixedRecognizer) PersonNames(string) []string {
	f.calls++
	return f.names
}

func TestExtractOwner(t *testing.T) {
	e := NewExtractor(nil, nil)

	tests := []struct {
		name   string
		text   string
		want   string
		anchor string
	}{
		{"label with suffix", "Owner: Acme Construction LLC, located at 123 Main St, Edmond, OK", "Acme Construction LLC", "owner_label"},
		{"plural label", "Owners: Red Dirt Holdings, LLC 100 N Broadway", "Red Dirt Holdings, LLC", "owner_label"},
		{"owned by", "the real property owned by Prairie Land Company in Tulsa County", "Prairie Land Company", "owned_by"},
		{"glued anchor", "the property owned byAcme Roofing LLC situated at", "Acme Roofing LLC", "owned_by"},
		{"lowercase broad", "Owner: acme construction, llc located at the lot", "acme construction, llc", "owner_label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, anchor, ok := e.Extract(Owner, tt.text)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.anchor, anchor)
		})
	}
}

func TestExtractOwner_NotFound(t *testing.T) {
	e := NewExtractor(nil, nil)

	_, ok := e.ExtractOwner("")
	assert.False(t, ok)

	_, ok = e.ExtractOwner("Statement of account for materials delivered")
	assert.False(t, ok)

	_, ok = e.ExtractOwner("Owner: see attached exhibit")
	assert.False(t, ok)
}

func TestExtractClaimant(t *testing.T) {
	e := NewExtractor(nil, nil)

	name, ok := e.ExtractClaimant("Claimant: HERITAGE LUMBER CO DBA DAVIS SUPPLY, 100 Main St, Tulsa, OK")
	assert.True(t, ok)
	assert.Equal(t, "HERITAGE LUMBER CO DBA DAVIS SUPPLY", name)

	text := "the sum is due and unpaid; and Van Eaton Ready Mix, Inc. claims a lien against Smith Builders LLC; the work was completed."
	name, anchor, ok := e.Extract(Claimant, text)
	assert.True(t, ok)
	assert.Equal(t, "Van Eaton Ready Mix, Inc.", name)
	assert.Equal(t, "claims_clause", anchor)
}

func TestExtractClaimant_StopsAtNextLabel(t *testing.T) {
	e := NewExtractor(nil, nil)

	name, ok := e.ExtractClaimant("Claimant: Sooner Electric LLC Contractor: Smith Builders LLC")
	assert.True(t, ok)
	assert.Equal(t, "Sooner Electric LLC", name)
}

func TestExtractContractor(t *testing.T) {
	e := NewExtractor(nil, nil)

	text := "Van Eaton Ready Mix, Inc. claims a lien against Smith Builders LLC; the work was completed."
	name, anchor, ok := e.Extract(Contractor, text)
	assert.True(t, ok)
	assert.Equal(t, "Smith Builders LLC", name)
	assert.Equal(t, "claims_clause", anchor)

	name, ok = e.ExtractContractor("Customer: Blue Line Plumbing Corp, Oklahoma City")
	assert.True(t, ok)
	assert.Equal(t, "Blue Line Plumbing Corp", name)
}

func TestExtractContractor_SkipsClaimant(t *testing.T) {
	e := NewExtractor(nil, nil)

	text := "Upon oath Sunstate Roofing LLC; Sunstate Roofing LLC claims a lien against Metro Builders Inc; for roofing work."
	claimant, ok := e.ExtractClaimant(text)
	require.True(t, ok)
	assert.Equal(t, "Sunstate Roofing LLC", claimant)

	name, anchor, ok := e.Extract(Contractor, text)
	assert.True(t, ok)
	assert.Equal(t, "Metro Builders Inc", name)
	assert.Equal(t, "claims_clause", anchor)
}

func TestExtract_RejectsHouseNumbers(t *testing.T) {
	e := NewExtractor(nil, nil)

	_, ok := e.ExtractOwner("Owner: 1200 acme, llc")
	assert.False(t, ok)
}

func TestExtract_PersonFallback(t *testing.T) {
	people := &fixedRecognizer{names: []string{"Bob", "Michael White"}}
	e := NewExtractor(nil, people)

	name, ok := e.ExtractOwner("Owner: Michael White, 123 Main St, Edmond, OK 73012")
	assert.True(t, ok)
	assert.Equal(t, "Michael White", name)
	assert.Equal(t, 1, people.calls)
}

func TestExtract_CompanyBeatsPerson(t *testing.T) {
	people := &fixedRecognizer{names: []string{"Michael White"}}
	e := NewExtractor(nil, people)

	name, ok := e.ExtractOwner("Owner: Michael White Homes LLC")
	assert.True(t, ok)
	assert.Equal(t, "Michael White Homes LLC", name)
	assert.Zero(t, people.calls)
}

func TestWithWindow(t *testing.T) {
	e := NewExtractor(nil, nil).WithWindow(2)
	_, ok := e.ExtractOwner("Owner: Big Sky Ranch Holdings LLC")
	assert.False(t, ok)

	e.WithWindow(0)
	name, ok := e.ExtractOwner("Owner: Big Sky Ranch Holdings LLC")
	assert.False(t, ok, "a non-positive width keeps the previous width")
	assert.Empty(t, name)

	e.WithWindow(10)
	name, ok = e.ExtractOwner("Owner: Big Sky Ranch Holdings LLC")
	assert.True(t, ok)
	assert.Equal(t, "Big Sky Ranch Holdings LLC", name)
}

func TestAnchors(t *testing.T) {
	e := NewExtractor(nil, nil)
	assert.Equal(t, []string{"owner_label", "owned_by"}, e.Anchors(Owner))
	assert.Equal(t, []string{"claimant_label", "claims_clause"}, e.Anchors(Claimant))
	assert.Nil(t, e.Anchors(Role("surety")))
}

func TestExtractOwnerAddress(t *testing.T) {
	e := NewExtractor(nil, nil)
	addresses := address.NewExtractor(nil)

	addr := e.ExtractOwnerAddress("Owner: Acme Construction LLC, 123 Main St, Edmond, OK 73012", addresses)
	assert.Equal(t, record.AddressRecord{Street: "123 Main St", City: "Edmond", State: "OK", Zip: "73012"}, addr)

	assert.True(t, e.ExtractOwnerAddress("no owner mentioned at 123 Main St, Edmond, OK 73012", addresses).IsZero())
	assert.True(t, e.ExtractOwnerAddress("Owner: Acme LLC", nil).IsZero())
}

func TestExtractOwnerAddress_NextWindow(t *testing.T) {
	e := NewExtractor(nil, nil).WithWindow(5)
	addresses := address.NewExtractor(nil)

	addr := e.ExtractOwnerAddress("Owner: Acme Construction LLC of Tulsa County 500 W Main St, Norman, OK 73069", addresses)
	assert.Equal(t, "500 W Main St", addr.Street)
}

func TestWithClauseWindow(t *testing.T) {
	text := "Heritage Lumber Co of Tulsa County Oklahoma claims a lien"

	name, ok := NewExtractor(nil, nil).ExtractClaimant(text)
	assert.True(t, ok)
	assert.Equal(t, "Heritage Lumber Co", name)

	_, ok = NewExtractor(nil, nil).WithClauseWindow(3).ExtractClaimant(text)
	assert.False(t, ok)
}
