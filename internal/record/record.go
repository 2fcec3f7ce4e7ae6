// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package record defines the output row produced for every lien document.
package record

import (
	"strings"
)

// Sentinel values written for fields the pipeline could not resolve.
const (
	NotFound       = "Not Found"
	NoAddressFound = "No valid address found"
	ZeroAmount     = "0"
)

// Row status values.
const (
	StatusExtracted = "extracted"
	StatusFailed    = "failed"
)

// AddressRecord is a US postal address. An empty field means the component
// was not found; partial addresses are valid.
type AddressRecord struct {
	Street string `json:"street,omitempty" yaml:"street,omitempty"`
	City   string `json:"city,omitempty" yaml:"city,omitempty"`
	State  string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip    string `json:"zip,omitempty" yaml:"zip,omitempty"`
}

// Found reports whether the address has a street. City, state or zip on
// their own are not a usable address.
func (a AddressRecord) Found() bool {
	return a.Street != ""
}

// Complete reports whether all four components are present.
func (a AddressRecord) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.Zip != ""
}

// IsZero reports whether no component is present.
func (a AddressRecord) IsZero() bool {
	return a == AddressRecord{}
}

// FieldCount returns the number of components present.
func (a AddressRecord) FieldCount() int {
	n := 0
	for _, v := range []string{a.Street, a.City, a.State, a.Zip} {
		if v != "" {
			n++
		}
	}
	return n
}

// String renders the address as "street, city, state zip", skipping absent parts.
func (a AddressRecord) String() string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	tail := strings.TrimSpace(a.State + " " + a.Zip)
	if tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

// Display returns the rendered address, or the sentinel when no street was found.
func (a AddressRecord) Display() string {
	if !a.Found() {
		return NoAddressFound
	}
	return a.String()
}

// RowFields are the values scraped from the land-records search table.
// Claimant, Contractor and Owner may hold a placeholder.
type RowFields struct {
	File             string `json:"file" yaml:"file"`
	InstrumentNumber string `json:"instrument_number" yaml:"instrument_number"`
	Type             string `json:"type" yaml:"type"`
	DateRecorded     string `json:"date_recorded" yaml:"date_recorded"`
	Book             string `json:"book" yaml:"book"`
	Page             string `json:"page" yaml:"page"`
	Claimant         string `json:"claimant" yaml:"claimant"`
	Contractor       string `json:"contractor" yaml:"contractor"`
	Owner            string `json:"owner" yaml:"owner"`
}

// LienRecord is one output row.
type LienRecord struct {
	File             string        `json:"file" yaml:"file"`
	InstrumentNumber string        `json:"instrument_number" yaml:"instrument_number"`
	Type             string        `json:"type" yaml:"type"`
	DateRecorded     string        `json:"date_recorded" yaml:"date_recorded"`
	Book             string        `json:"book" yaml:"book"`
	Page             string        `json:"page" yaml:"page"`
	Claimant         string        `json:"claimant" yaml:"claimant"`
	Contractor       string        `json:"contractor" yaml:"contractor"`
	Owner            string        `json:"owner" yaml:"owner"`
	PropertyAddress  AddressRecord `json:"property_address" yaml:"property_address"`
	DollarAmount     string        `json:"dollar_amount" yaml:"dollar_amount"`
	PhoneNumber      string        `json:"phone_number" yaml:"phone_number"`
	Status           string        `json:"status" yaml:"status"`
	Error            string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// placeholders are table values that mean "unknown".
var placeholders = map[string]bool{
	"":          true,
	"n/a":       true,
	"na":        true,
	"none":      true,
	"-":         true,
	"not found": true,
}

// IsPlaceholder reports whether a table value carries no information.
func IsPlaceholder(value string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(value))]
}

// Default returns the record for a document whose fields could not be
// extracted: the table values where they are meaningful, sentinels elsewhere.
func Default(row RowFields) LienRecord {
	return LienRecord{
		File:             row.File,
		InstrumentNumber: row.InstrumentNumber,
		Type:             row.Type,
		DateRecorded:     row.DateRecorded,
		Book:             row.Book,
		Page:             row.Page,
		Claimant:         orNotFound(row.Claimant),
		Contractor:       orNotFound(row.Contractor),
		Owner:            orNotFound(row.Owner),
		DollarAmount:     ZeroAmount,
		PhoneNumber:      NotFound,
		Status:           StatusFailed,
	}
}

func orNotFound(value string) string {
	if IsPlaceholder(value) {
		return NotFound
	}
	return strings.TrimSpace(value)
}

// Header is the column order used by the tabular writers.
var Header = []string{
	"File",
	"Instrument Number",
	"Type",
	"Date Recorded",
	"Book",
	"Page",
	"Claimant",
	"Contractor",
	"Owner",
	"Property Address",
	"Street",
	"City",
	"State",
	"Zip",
	"Dollar Amount",
	"Phone Number",
	"Status",
	"Error",
}

// Values returns the record as a row matching Header.
func (r LienRecord) Values() []string {
	return []string{
		r.File,
		r.InstrumentNumber,
		r.Type,
		r.DateRecorded,
		r.Book,
		r.Page,
		r.Claimant,
		r.Contractor,
		r.Owner,
		r.PropertyAddress.Display(),
		r.PropertyAddress.Street,
		r.PropertyAddress.City,
		r.PropertyAddress.State,
		r.PropertyAddress.Zip,
		r.DollarAmount,
		r.PhoneNumber,
		r.Status,
		r.Error,
	}
}
