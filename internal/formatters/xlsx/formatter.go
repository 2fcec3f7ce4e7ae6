// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"lien-scan/internal/formatters"
	"lien-scan/internal/record"
)

// SheetName is the worksheet the records are written to.
const SheetName = "Liens"

// Formatter writes records to an Excel workbook.
type Formatter struct{}

// NewFormatter creates a new xlsx formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "xlsx"
}

func (f *Formatter) Description() string {
	return "Excel workbook with one row per document, appendable"
}

func (f *Formatter) FileExtension() string {
	return ".xlsx"
}

// Format returns the bytes of a new workbook holding records.
func (f *Formatter) Format(records []record.LienRecord, options formatters.FormatterOptions) (string, error) {
	book, err := newWorkbook()
	if err != nil {
		return "", err
	}
	defer book.Close()

	row := 1
	if !options.OmitHeader {
		if err := writeRow(book, row, record.Header); err != nil {
			return "", err
		}
		row++
	}
	if err := writeRecords(book, row, records); err != nil {
		return "", err
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("xlsx write: %w", err)
	}
	return buf.String(), nil
}

// Append implements formatters.Appender. Records go below the last used row
// of the sheet; a missing file is created with a header.
func (f *Formatter) Append(path string, records []record.LienRecord, options formatters.FormatterOptions) error {
	path = filepath.Clean(path)
	book, err := excelize.OpenFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		out, err := f.Format(records, options)
		if err != nil {
			return err
		}
		return os.WriteFile(path, []byte(out), 0o644)
	case err != nil:
		return fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer book.Close()

	if idx, _ := book.GetSheetIndex(SheetName); idx == -1 {
		if _, err := book.NewSheet(SheetName); err != nil {
			return fmt.Errorf("failed to add sheet: %w", err)
		}
	}
	rows, err := book.GetRows(SheetName)
	if err != nil {
		return fmt.Errorf("failed to read sheet: %w", err)
	}

	next := len(rows) + 1
	if len(rows) == 0 && !options.OmitHeader {
		if err := writeRow(book, next, record.Header); err != nil {
			return err
		}
		next++
	}
	if err := writeRecords(book, next, records); err != nil {
		return err
	}
	if err := book.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func newWorkbook() (*excelize.File, error) {
	book := excelize.NewFile()
	if err := book.SetSheetName("Sheet1", SheetName); err != nil {
		book.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	_ = book.SetColWidth(SheetName, "A", "A", 18)
	_ = book.SetColWidth(SheetName, "G", "J", 32)
	return book, nil
}

func writeRecords(book *excelize.File, row int, records []record.LienRecord) error {
	for _, rec := range records {
		if err := writeRow(book, row, rec.Values()); err != nil {
			return err
		}
		row++
	}
	return nil
}

func writeRow(book *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := book.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
