// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rows reads the table scraped from the land-records search portal.
package rows

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"lien-scan/internal/record"
)

// ErrNoFileColumn is returned when the header has no File column.
var ErrNoFileColumn = errors.New("table has no File column")

// columns maps normalized header names to row fields.
var columns = map[string]func(*record.RowFields) *string{
	"file":              func(r *record.RowFields) *string { return &r.File },
	"file name":         func(r *record.RowFields) *string { return &r.File },
	"instrument":        func(r *record.RowFields) *string { return &r.InstrumentNumber },
	"instrument number": func(r *record.RowFields) *string { return &r.InstrumentNumber },
	"instrument #":      func(r *record.RowFields) *string { return &r.InstrumentNumber },
	"type":              func(r *record.RowFields) *string { return &r.Type },
	"document type":     func(r *record.RowFields) *string { return &r.Type },
	"date recorded":     func(r *record.RowFields) *string { return &r.DateRecorded },
	"recorded date":     func(r *record.RowFields) *string { return &r.DateRecorded },
	"recorded":          func(r *record.RowFields) *string { return &r.DateRecorded },
	"book":              func(r *record.RowFields) *string { return &r.Book },
	"page":              func(r *record.RowFields) *string { return &r.Page },
	"claimant":          func(r *record.RowFields) *string { return &r.Claimant },
	"grantor":           func(r *record.RowFields) *string { return &r.Claimant },
	"contractor":        func(r *record.RowFields) *string { return &r.Contractor },
	"owner":             func(r *record.RowFields) *string { return &r.Owner },
	"grantee":           func(r *record.RowFields) *string { return &r.Owner },
}

// Table is the parsed search table, keyed by document ID.
type Table struct {
	Rows  []record.RowFields
	index map[string]int
}

// Lookup returns the row for a document ID.
func (t *Table) Lookup(id string) (record.RowFields, bool) {
	if t == nil {
		return record.RowFields{}, false
	}
	i, ok := t.index[normalizeID(id)]
	if !ok {
		return record.RowFields{}, false
	}
	return t.Rows[i], true
}

// Load reads a .csv or .xlsx table. Spreadsheets are read from their first sheet.
func Load(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return loadWorkbook(path)
	default:
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("cannot open table: %w", err)
		}
		defer f.Close()
		return Parse(f)
	}
}

// Parse reads a CSV table with a header row. Header names are matched
// case-insensitively; unknown columns are ignored.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse table: %w", err)
	}
	return build(records)
}

func loadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{index: map[string]int{}}, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return build(records)
}

func build(records [][]string) (*Table, error) {
	t := &Table{index: make(map[string]int)}
	if len(records) == 0 {
		return t, nil
	}

	setters := make([]func(*record.RowFields) *string, len(records[0]))
	hasFile := false
	for i, name := range records[0] {
		key := strings.ToLower(strings.Join(strings.Fields(strings.TrimPrefix(name, "\ufeff")), " "))
		setters[i] = columns[key]
		if setters[i] != nil && isFileColumn(key) {
			hasFile = true
		}
	}
	if !hasFile {
		return nil, ErrNoFileColumn
	}

	for _, values := range records[1:] {
		var row record.RowFields
		blank := true
		for i, v := range values {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			v = strings.TrimSpace(v)
			if v != "" {
				blank = false
			}
			*setters[i](&row) = v
		}
		if blank {
			continue
		}
		row.File = normalizeID(row.File)
		if _, dup := t.index[row.File]; !dup {
			t.index[row.File] = len(t.Rows)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func isFileColumn(key string) bool {
	return key == "file" || key == "file name"
}

// documentExts are stripped from File values so "docs/123.pdf" and "123" match.
var documentExts = map[string]bool{".pdf": true, ".json": true, ".txt": true, ".text": true}

func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	base := filepath.Base(id)
	if ext := strings.ToLower(filepath.Ext(base)); documentExts[ext] {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return base
}
