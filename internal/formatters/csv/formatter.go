// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"io"
	"strings"

	"lien-scan/internal/formatters"
	"lien-scan/internal/record"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import, appendable"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

// Format renders records with a header row unless options.OmitHeader is set.
func (f *Formatter) Format(records []record.LienRecord, options formatters.FormatterOptions) (string, error) {
	var b strings.Builder
	stream := f.NewStream(&b, options)
	for _, rec := range records {
		if err := stream.WriteRecord(rec); err != nil {
			return "", err
		}
	}
	if err := stream.Flush(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// NewStream implements formatters.Streamer. The header is written before
// the first record, or on Flush when no record was written.
func (f *Formatter) NewStream(w io.Writer, options formatters.FormatterOptions) formatters.RecordStream {
	return &stream{w: csv.NewWriter(w), options: options, headerDone: options.OmitHeader}
}

type stream struct {
	w          *csv.Writer
	options    formatters.FormatterOptions
	headerDone bool
}

func (s *stream) WriteRecord(rec record.LienRecord) error {
	if err := s.header(); err != nil {
		return err
	}
	values := rec.Values()
	for i, v := range values {
		values[i] = sanitizeFormulaInjection(v)
	}
	return s.w.Write(values)
}

func (s *stream) Flush() error {
	if err := s.header(); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}

func (s *stream) header() error {
	if s.headerDone {
		return nil
	}
	s.headerDone = true
	return s.w.Write(record.Header)
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters.
// Signed numbers and phone numbers such as "+1 405-606-4448" are left alone.
func sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	switch field[0] {
	case '=', '@', '\t', '\r':
		return "'" + field
	case '+', '-':
		if !numeric(field[1:]) {
			return "'" + field
		}
	}
	return field
}

func numeric(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == ' ', c == '-', c == '.', c == '(', c == ')', c == ',':
		default:
			return false
		}
	}
	return true
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
