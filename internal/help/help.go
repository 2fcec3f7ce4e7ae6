// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"lien-scan/internal/aggregator"
	"lien-scan/internal/extractors/address"
	"lien-scan/internal/extractors/currency"
	"lien-scan/internal/extractors/party"
	"lien-scan/internal/extractors/phone"
	"lien-scan/internal/formatters"
	"lien-scan/internal/record"
)

// FieldInfo describes how one output field is extracted.
type FieldInfo struct {
	Name             aggregator.Field
	ShortDescription string
	// Strategies are tried in order; the first that yields a value wins.
	Strategies []string
	Sentinel   string
	Examples   []string
}

// Catalogue lists every extractable field with the strategy names the
// extractors report in debug output.
func Catalogue(parties *party.Extractor, addresses *address.Extractor, amounts *currency.Extractor, phones *phone.Extractor) []FieldInfo {
	withTable := func(names []string) []string {
		return append([]string{"table"}, names...)
	}
	return []FieldInfo{
		{
			Name:             aggregator.FieldClaimant,
			ShortDescription: "Party claiming the lien",
			Strategies:       withTable(parties.Anchors(party.Claimant)),
			Sentinel:         record.NotFound,
			Examples:         []string{"Claimant: Sooner Electric LLC", "Van Eaton Ready Mix, Inc. claims a lien against ..."},
		},
		{
			Name:             aggregator.FieldContractor,
			ShortDescription: "Party that ordered the work or materials",
			Strategies:       withTable(parties.Anchors(party.Contractor)),
			Sentinel:         record.NotFound,
			Examples:         []string{"Customer: Blue Line Plumbing Corp", "... claims a lien against Smith Builders LLC;"},
		},
		{
			Name:             aggregator.FieldOwner,
			ShortDescription: "Owner of the liened property",
			Strategies:       withTable(parties.Anchors(party.Owner)),
			Sentinel:         record.NotFound,
			Examples:         []string{"Owner: Acme Construction LLC", "the real property owned by Prairie Land Company"},
		},
		{
			Name:             aggregator.FieldPropertyAddress,
			ShortDescription: "Street, city, state and zip of the property",
			Strategies:       append([]string{"property_anchor", "owner_address", "full_text"}, addresses.Stages()...),
			Sentinel:         record.NoAddressFound,
			Examples:         []string{"Property Address: 2200 NE 63rd St, Oklahoma City, OK 73111"},
		},
		{
			Name:             aggregator.FieldDollarAmount,
			ShortDescription: "Amount claimed, two fraction digits",
			Strategies:       amounts.Rules(),
			Sentinel:         record.ZeroAmount,
			Examples:         []string{"the sum of $11,985.68", "Principal amount of claim: $2,500.00"},
		},
		{
			Name:             aggregator.FieldPhoneNumber,
			ShortDescription: "First phone number in the document",
			Strategies:       phones.Stages(),
			Sentinel:         record.NotFound,
			Examples:         []string{"Call (405) 606-4448 today"},
		},
	}
}

// System prints help content for the application
type System struct {
	out    io.Writer
	colors map[string]*color.Color
}

// NewSystem creates a new help system writing to out
func NewSystem(out io.Writer, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":    color.New(color.FgWhite, color.Bold),
		"header":   color.New(color.FgBlue, color.Bold),
		"item":     color.New(color.FgCyan),
		"emphasis": color.New(color.FgWhite, color.Bold),
		"warning":  color.New(color.FgYellow),
		"example":  color.New(color.FgMagenta),
	}
	for _, c := range colors {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return &System{out: out, colors: colors}
}

// ShowFieldsHelp lists the fields with their strategies in priority order.
func (h *System) ShowFieldsHelp(fields []FieldInfo) {
	h.colors["title"].Fprintln(h.out, "Extracted Fields")
	fmt.Fprintln(h.out, "================")
	fmt.Fprintln(h.out)

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FIELD\tDESCRIPTION\tWHEN NOT FOUND")
	fmt.Fprintln(w, "  -----\t-----------\t--------------")
	for _, f := range fields {
		fmt.Fprintf(w, "  %s\t%s\t%q\n", f.Name, f.ShortDescription, f.Sentinel)
	}
	w.Flush()

	for _, f := range fields {
		fmt.Fprintln(h.out)
		h.colors["header"].Fprintf(h.out, "%s\n", f.Name)
		fmt.Fprint(h.out, "  strategies: ")
		h.colors["item"].Fprintln(h.out, strings.Join(f.Strategies, " -> "))
		for _, ex := range f.Examples {
			fmt.Fprint(h.out, "  example:    ")
			h.colors["example"].Fprintln(h.out, ex)
		}
	}
}

// ShowFormatsHelp lists the registered output formats.
func (h *System) ShowFormatsHelp(formats []formatters.FormatInfo) {
	fmt.Fprintln(h.out)
	h.colors["title"].Fprintln(h.out, "Output Formats")
	fmt.Fprintln(h.out, "==============")

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	for _, f := range formats {
		mode := "buffered"
		switch {
		case f.Appendable:
			mode = "appendable"
		case f.Streaming:
			mode = "streaming, appendable"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, f.Description, mode)
	}
	w.Flush()
}
