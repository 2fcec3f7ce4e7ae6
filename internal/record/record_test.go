// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressRecord_String(t *testing.T) {
	tests := []struct {
		name string
		addr AddressRecord
		want string
	}{
		{"complete", AddressRecord{"123 Main St", "Edmond", "OK", "73012"}, "123 Main St, Edmond, OK 73012"},
		{"no zip", AddressRecord{Street: "9 Elm Ave", City: "Tulsa", State: "OK"}, "9 Elm Ave, Tulsa, OK"},
		{"state and zip only", AddressRecord{State: "OK", Zip: "73111"}, "OK 73111"},
		{"empty", AddressRecord{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.addr.String())
		})
	}
}

func TestAddressRecord_Predicates(t *testing.T) {
	full := AddressRecord{"123 Main St", "Edmond", "OK", "73012"}
	assert.True(t, full.Found())
	assert.True(t, full.Complete())
	assert.Equal(t, 4, full.FieldCount())

	noStreet := AddressRecord{City: "Edmond", State: "OK", Zip: "73012"}
	assert.False(t, noStreet.Found())
	assert.False(t, noStreet.Complete())
	assert.Equal(t, NoAddressFound, noStreet.Display())

	assert.True(t, AddressRecord{}.IsZero())
	assert.False(t, noStreet.IsZero())
}

func TestIsPlaceholder(t *testing.T) {
	for _, v := range []string{"", "N/A", "n/a", " Not Found ", "None", "-"} {
		assert.True(t, IsPlaceholder(v), "value %q", v)
	}
	for _, v := range []string{"Acme Real", "NA Builders", "0"} {
		assert.False(t, IsPlaceholder(v), "value %q", v)
	}
}

func TestDefault(t *testing.T) {
	rec := Default(RowFields{File: "2024-001", InstrumentNumber: "2024-001", Claimant: "Acme Real", Owner: "N/A"})

	assert.Equal(t, "2024-001", rec.File)
	assert.Equal(t, "Acme Real", rec.Claimant)
	assert.Equal(t, NotFound, rec.Contractor)
	assert.Equal(t, NotFound, rec.Owner)
	assert.Equal(t, ZeroAmount, rec.DollarAmount)
	assert.Equal(t, NotFound, rec.PhoneNumber)
	assert.Equal(t, StatusFailed, rec.Status)
	assert.Equal(t, NoAddressFound, rec.PropertyAddress.Display())
}

func TestValuesMatchHeader(t *testing.T) {
	assert.Len(t, LienRecord{}.Values(), len(Header))
}
