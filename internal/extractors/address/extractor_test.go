// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lien-scan/internal/record"
)

func TestExtractAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  record.AddressRecord
	}{
		{
			name:  "simple complete address",
			input: "123 Main St, Edmond, OK 73012",
			want:  record.AddressRecord{Street: "123 Main St", City: "Edmond", State: "OK", Zip: "73012"},
		},
		{
			name:  "empty input",
			input: "",
			want:  record.AddressRecord{},
		},
		{
			name:  "whitespace only",
			input: "   \n\t ",
			want:  record.AddressRecord{},
		},
		{
			name:  "embedded in sentence without comma before city",
			input: "Property located at 509 WESTLAND Dr EDMOND, OK 73013 and more",
			want:  record.AddressRecord{Street: "509 WESTLAND Dr", City: "EDMOND", State: "OK", Zip: "73013"},
		},
		{
			name:  "full state name normalized",
			input: "123 Main St, Tulsa, Oklahoma 74103",
			want:  record.AddressRecord{Street: "123 Main St", City: "Tulsa", State: "OK", Zip: "74103"},
		},
		{
			name:  "po box",
			input: "Mail to PO Box 1058, Edmond, OK 73083",
			want:  record.AddressRecord{Street: "PO Box 1058", City: "Edmond", State: "OK", Zip: "73083"},
		},
		{
			name:  "directional and ordinal without street type",
			input: "2200 NE 63rd Oklahoma City, OK 73111",
			want:  record.AddressRecord{Street: "2200 NE 63rd", City: "Oklahoma City", State: "OK", Zip: "73111"},
		},
		{
			name:  "suite",
			input: "100 N Broadway Ave Suite 200, Oklahoma City, OK 73102",
			want:  record.AddressRecord{Street: "100 N Broadway Ave Suite 200", City: "Oklahoma City", State: "OK", Zip: "73102"},
		},
		{
			name:  "suite after comma",
			input: "4801 Gaillardia Parkway, Suite 170, Oklahoma City, OK 73142",
			want:  record.AddressRecord{Street: "4801 Gaillardia Parkway Suite 170", City: "Oklahoma City", State: "OK", Zip: "73142"},
		},
		{
			name:  "abbreviated suite after comma with state name",
			input: "1101 Enterprise Ave, Ste 1, Oklahoma City, Oklahoma 73128",
			want:  record.AddressRecord{Street: "1101 Enterprise Ave Ste 1", City: "Oklahoma City", State: "OK", Zip: "73128"},
		},
		{
			name:  "numbered road after directional",
			input: "348928 E 910 Road Chandler, OK 74834",
			want:  record.AddressRecord{Street: "348928 E 910 Road", City: "Chandler", State: "OK", Zip: "74834"},
		},
		{
			name:  "box after street name",
			input: "12101 N. MacArthur Box 158, Oklahoma City, OK 73162",
			want:  record.AddressRecord{Street: "12101 N MacArthur Box 158", City: "Oklahoma City", State: "OK", Zip: "73162"},
		},
		{
			name:  "lowercase prose after street is not a city",
			input: "1125 SW 78th Terrace, situated in Oklahoma County, Oklahoma",
			want:  record.AddressRecord{Street: "1125 SW 78th Terrace", State: "OK"},
		},
		{
			name:  "glued owned by anchor",
			input: "a house owned byAcme Homes at 77 Oak Ln, Norman, OK 73069",
			want:  record.AddressRecord{Street: "77 Oak Ln", City: "Norman", State: "OK", Zip: "73069"},
		},
		{
			name:  "two addresses fall back to first full pattern",
			input: "Claimant: Acme LLC, 509 Westland Dr, Edmond, OK 73013. Owner: Bob Smith, 123 Main St, Tulsa, OK 74103",
			want:  record.AddressRecord{Street: "509 Westland Dr", City: "Edmond", State: "OK", Zip: "73013"},
		},
		{
			name:  "city of and county state repairs",
			input: "Lien on property at 45 Elm Road in the City of Tulsa, Tulsa County, Oklahoma",
			want:  record.AddressRecord{Street: "45 Elm Road", City: "Tulsa", State: "OK"},
		},
		{
			name:  "street and city only",
			input: "Job site: 4410 Willow Creek Dr, Moore; see Exhibit A",
			want:  record.AddressRecord{Street: "4410 Willow Creek Dr", City: "Moore"},
		},
		{
			name:  "state and zip without street drops city",
			input: "Tulsa, OK 74103",
			want:  record.AddressRecord{State: "OK", Zip: "74103"},
		},
		{
			name:  "no address",
			input: "This statement is made under oath.",
			want:  record.AddressRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAddress(tt.input))
		})
	}
}

func TestExtract_Contributors(t *testing.T) {
	e := NewExtractor(nil)

	_, stages := e.Extract("123 Main St, Edmond, OK 73012")
	assert.Equal(t, []string{"tagger"}, stages)

	_, stages = e.Extract("Lien on property at 45 Elm Road in the City of Tulsa, Tulsa County, Oklahoma")
	assert.Equal(t, []string{"tagger", "city_of", "county_state"}, stages)
}

func TestTagger_Tag(t *testing.T) {
	tagger := NewTagger(nil)

	comps, err := tagger.Tag("Owner: Jane Roe 300 W Main Street, Norman, OK 73069-1234")
	require.NoError(t, err)

	labels := make([]Label, len(comps))
	for i, c := range comps {
		labels[i] = c.Label
	}
	assert.Equal(t, []Label{
		AddressNumber, StreetNamePreDirectional, StreetName, StreetNamePostType,
		PlaceName, StateName, ZipCode,
	}, labels)

	street, city, state, zip := Assemble(comps)
	assert.Equal(t, "300 W Main Street", street)
	assert.Equal(t, "Norman", city)
	assert.Equal(t, "OK", state)
	assert.Equal(t, "73069-1234", zip)
}

func TestTagger_RepeatedLabel(t *testing.T) {
	tagger := NewTagger(nil)

	_, err := tagger.Tag("509 Westland Dr, Edmond, OK 73013 and 123 Main St, Tulsa, OK 74103")
	assert.ErrorIs(t, err, ErrRepeatedLabel)
}

func TestTagger_IgnoresNonAddressNumbers(t *testing.T) {
	tagger := NewTagger(nil)

	comps, err := tagger.Tag("Recorded in Book 1234 Page 567 within 90 days after the last work")
	require.NoError(t, err)
	assert.Empty(t, comps)
}

func TestStateTable(t *testing.T) {
	table := NewStateTable(map[string]string{"Okla": "ok"})

	code, ok := table.Code("oklahoma")
	assert.True(t, ok)
	assert.Equal(t, "OK", code)

	code, ok = table.Code("Okla.")
	assert.True(t, ok)
	assert.Equal(t, "OK", code)

	code, ok = table.Code("new  york")
	assert.True(t, ok)
	assert.Equal(t, "NY", code)

	assert.Equal(t, "TX", table.Normalize("tx"))
	assert.Equal(t, "Atlantis", table.Normalize("Atlantis"))
	assert.True(t, table.IsCode("dc"))
}

func TestExtractor_ConfiguredStateName(t *testing.T) {
	e := NewExtractor(NewStateTable(map[string]string{"Okla": "OK"}))
	addr := e.ExtractAddress("123 Main St, Tulsa, Okla 74103")
	assert.Equal(t, record.AddressRecord{Street: "123 Main St", City: "Tulsa", State: "OK", Zip: "74103"}, addr)
}

func TestStages(t *testing.T) {
	assert.Equal(t, []string{"tagger", "pattern", "city_of", "county_state"}, NewExtractor(nil).Stages())
}

func TestPatterns_SuiteAfterComma(t *testing.T) {
	patterns := buildPatterns(NewStateTable(nil))

	addr, ok := patterns[0].match("4801 Gaillardia Parkway, Suite 170, Oklahoma City, OK 73142")
	require.True(t, ok)
	assert.Equal(t, record.AddressRecord{Street: "4801 Gaillardia Parkway Suite 170", City: "Oklahoma City", State: "OK", Zip: "73142"}, addr)

	addr, ok = patterns[0].match("1101 Enterprise Ave, #12, Tulsa, OK 74103")
	require.True(t, ok)
	assert.Equal(t, "1101 Enterprise Ave #12", addr.Street)
	assert.Equal(t, "Tulsa", addr.City)
}

func TestPatterns_CityMustBeCapitalized(t *testing.T) {
	for _, p := range buildPatterns(NewStateTable(nil)) {
		if p.name != "street_city" {
			continue
		}
		_, ok := p.match("1125 SW 78th Terrace, situated in Oklahoma County, Oklahoma")
		assert.False(t, ok)

		addr, ok := p.match("4410 Willow Creek Dr, Moore; see Exhibit A")
		require.True(t, ok)
		assert.Equal(t, "Moore", addr.City)
	}
}
