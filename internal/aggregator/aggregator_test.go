// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package aggregator

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lien-scan/internal/document"
	"lien-scan/internal/observability"
	"lien-scan/internal/record"
)

var lienBlocks = document.NewLayout(
	"STATEMENT OF MECHANIC'S AND MATERIALMAN'S LIEN",
	"Claimant: Acme Inc, 9 Industrial Blvd, Tulsa, OK 74107",
	"Contractor: Smith Builders LLC",
	"Owner: Red River Homes LLC",
	"Property Address: 2200 NE 63rd St, Oklahoma City, OK 73111",
	"Principal amount of claim:",
	"$11,985.68",
	"Questions? Call (405) 606-4448 today.",
)

func TestAggregate_ExtractsEveryField(t *testing.T) {
	a := New(Options{})

	rec := a.Aggregate("", lienBlocks, record.RowFields{File: "2024-000123", Book: "1540", Page: "22"})

	assert.Equal(t, "2024-000123", rec.File)
	assert.Equal(t, "1540", rec.Book)
	assert.Equal(t, "Acme Inc", rec.Claimant)
	assert.Equal(t, "Smith Builders LLC", rec.Contractor)
	assert.Equal(t, "Red River Homes LLC", rec.Owner)
	assert.Equal(t, record.AddressRecord{Street: "2200 NE 63rd St", City: "Oklahoma City", State: "OK", Zip: "73111"}, rec.PropertyAddress)
	assert.Equal(t, "11985.68", rec.DollarAmount)
	assert.Equal(t, "+1 405-606-4448", rec.PhoneNumber)
	assert.Equal(t, record.StatusExtracted, rec.Status)
	assert.Empty(t, rec.Error)
}

func TestAggregate_RowValuesWin(t *testing.T) {
	a := New(Options{})

	rec := a.Aggregate("", lienBlocks, record.RowFields{Claimant: "N/A", Owner: "Acme Real", Contractor: " "})

	assert.Equal(t, "Acme Inc", rec.Claimant)
	assert.Equal(t, "Acme Real", rec.Owner)
	assert.Equal(t, "Smith Builders LLC", rec.Contractor)
}

func TestAggregate_Sentinels(t *testing.T) {
	a := New(Options{})

	rec := a.Aggregate("nothing useful here", nil, record.RowFields{File: "blank"})

	assert.Equal(t, record.NotFound, rec.Claimant)
	assert.Equal(t, record.NotFound, rec.Contractor)
	assert.Equal(t, record.NotFound, rec.Owner)
	assert.False(t, rec.PropertyAddress.Found())
	assert.Equal(t, record.NoAddressFound, rec.PropertyAddress.Display())
	assert.Equal(t, record.ZeroAmount, rec.DollarAmount)
	assert.Equal(t, record.NotFound, rec.PhoneNumber)
	assert.Equal(t, record.StatusExtracted, rec.Status)
}

func TestAggregate_TextWithoutBlocks(t *testing.T) {
	a := New(Options{})

	rec := a.Aggregate("the total amount due of $2,500.00 remains unpaid", nil, record.RowFields{})
	assert.Equal(t, "2500.00", rec.DollarAmount)
}

func TestAggregate_DisabledFields(t *testing.T) {
	a := New(Options{Fields: map[Field]bool{FieldDollarAmount: true}})

	rec := a.Aggregate("", lienBlocks, record.RowFields{Owner: "Jane Roe"})

	assert.Equal(t, record.NotFound, rec.Claimant)
	assert.Equal(t, "Jane Roe", rec.Owner)
	assert.False(t, rec.PropertyAddress.Found())
	assert.Equal(t, record.NotFound, rec.PhoneNumber)
	assert.Equal(t, "11985.68", rec.DollarAmount)
	assert.True(t, a.Enabled(FieldDollarAmount))
	assert.False(t, a.Enabled(FieldClaimant))
}

func TestPropertyAddress_Precedence(t *testing.T) {
	a := New(Options{})

	text := "Claimant: Acme Inc, 9 Industrial Blvd, Tulsa, OK 74107. " +
		"Owner: Red River Homes LLC, 50 W Main St, Norman, OK 73069. " +
		"The improvements at 2200 NE 63rd St, Oklahoma City, OK 73111."
	assert.Equal(t, "2200 NE 63rd St", a.PropertyAddress(text).Street)

	text = "Claimant: Acme Inc, 9 Industrial Blvd, Tulsa, OK 74107. " +
		"Owner: Red River Homes LLC, 50 W Main St, Norman, OK 73069."
	assert.Equal(t, "50 W Main St", a.PropertyAddress(text).Street)

	text = "Material delivered to 9 Industrial Blvd, Tulsa, OK 74107."
	assert.Equal(t, "9 Industrial Blvd", a.PropertyAddress(text).Street)
}

func TestAggregate_LogsSources(t *testing.T) {
	var buf bytes.Buffer
	observer := observability.NewStandardObserver(observability.ObservabilityDebug, &buf)
	a := New(Options{Timer: observer})

	a.Aggregate("", lienBlocks, record.RowFields{File: "doc-1", Owner: "Acme Real"})

	var data observability.StandardObservabilityData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "aggregator", data.Component)
	assert.Equal(t, "doc-1", data.FilePath)
	assert.Equal(t, "table", data.Metadata["OWNER"])
	assert.Equal(t, "claimant_label", data.Metadata["CLAIMANT"])
	assert.Equal(t, "property_anchor", data.Metadata["PROPERTY_ADDRESS"])
	assert.Equal(t, "principal_label", data.Metadata["DOLLAR_AMOUNT"])
}
