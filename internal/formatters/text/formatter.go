// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"lien-scan/internal/formatters"
	"lien-scan/internal/record"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"blue":   color.New(color.FgBlue),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors and tables"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

const (
	fileWidth   = 16
	partyWidth  = 26
	amountWidth = 12
)

// Format renders one line per record, or a block per record in verbose mode.
func (f *Formatter) Format(records []record.LienRecord, options formatters.FormatterOptions) (string, error) {
	if len(records) == 0 {
		return "No documents processed.\n", nil
	}

	var builder strings.Builder
	if options.Verbose {
		for i, rec := range records {
			if i > 0 {
				builder.WriteString("\n")
			}
			f.appendDetailedRecord(&builder, rec, options)
		}
	} else {
		f.appendHeaders(&builder, options)
		for _, rec := range records {
			f.appendSummaryLine(&builder, rec, options)
		}
	}

	s := formatters.Summarize(records)
	builder.WriteString("\n")
	builder.WriteString(f.paint("white", options, fmt.Sprintf("%d documents: %d extracted, %d failed\n", s.Total, s.Extracted, s.Failed)))
	return builder.String(), nil
}

// appendHeaders adds column headers to the string builder
func (f *Formatter) appendHeaders(builder *strings.Builder, options formatters.FormatterOptions) {
	header := fmt.Sprintf("%-10s %-*s %-*s %-*s %*s  %s\n",
		"STATUS", fileWidth, "FILE", partyWidth, "CLAIMANT", partyWidth, "OWNER", amountWidth, "AMOUNT", "PROPERTY")
	builder.WriteString(f.paint("white", options, header))

	width := 10 + 1 + fileWidth + 1 + partyWidth + 1 + partyWidth + 1 + amountWidth + 2 + 30
	builder.WriteString(f.paint("white", options, strings.Repeat("-", width)+"\n"))
}

// appendSummaryLine adds a single line summary to the string builder
func (f *Formatter) appendSummaryLine(builder *strings.Builder, rec record.LienRecord, options formatters.FormatterOptions) {
	builder.WriteString(f.status(rec, options, "%-10s"))
	builder.WriteString(" ")
	builder.WriteString(f.paint("cyan", options, fmt.Sprintf("%-*s", fileWidth, truncate(rec.File, fileWidth))))
	builder.WriteString(" ")
	builder.WriteString(f.value(rec.Claimant, options, fmt.Sprintf("%-*s", partyWidth, truncate(rec.Claimant, partyWidth))))
	builder.WriteString(" ")
	builder.WriteString(f.value(rec.Owner, options, fmt.Sprintf("%-*s", partyWidth, truncate(rec.Owner, partyWidth))))
	builder.WriteString(" ")
	builder.WriteString(f.paint("blue", options, fmt.Sprintf("%*s", amountWidth, rec.DollarAmount)))
	builder.WriteString("  ")
	builder.WriteString(f.value(rec.PropertyAddress.Display(), options, rec.PropertyAddress.Display()))
	builder.WriteString("\n")
}

// appendDetailedRecord writes every field of a record on its own line.
func (f *Formatter) appendDetailedRecord(builder *strings.Builder, rec record.LienRecord, options formatters.FormatterOptions) {
	builder.WriteString(f.paint("white", options, rec.File))
	builder.WriteString(" ")
	builder.WriteString(f.status(rec, options, "[%s]"))
	builder.WriteString("\n")

	values := rec.Values()
	for i, name := range record.Header {
		if name == "File" || name == "Status" {
			continue
		}
		v := values[i]
		if name == "Error" && v == "" {
			continue
		}
		fmt.Fprintf(builder, "  %-18s %s\n", name+":", f.value(v, options, v))
	}
}

func (f *Formatter) status(rec record.LienRecord, options formatters.FormatterOptions, format string) string {
	label := strings.ToUpper(rec.Status)
	c := "green"
	if rec.Status == record.StatusFailed {
		c = "red"
	}
	return f.paint(c, options, fmt.Sprintf(format, label))
}

// value dims sentinels so gaps in the extraction stand out.
func (f *Formatter) value(raw string, options formatters.FormatterOptions, rendered string) string {
	switch raw {
	case record.NotFound, record.NoAddressFound, record.ZeroAmount:
		return f.paint("yellow", options, rendered)
	}
	return rendered
}

func (f *Formatter) paint(name string, options formatters.FormatterOptions, s string) string {
	if options.NoColor {
		return s
	}
	return f.colors[name].Sprint(s)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
