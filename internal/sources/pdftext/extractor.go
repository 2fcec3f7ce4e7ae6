// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdftext turns the text rows of a PDF into a document layout.
package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"lien-scan/internal/document"
)

// DefaultMaxPages bounds how many pages are read from one PDF.
const DefaultMaxPages = 50

// Extractor reads PDFs with ledongthuc/pdf.
type Extractor struct {
	MaxPages int
}

// NewExtractor creates an extractor that reads up to maxPages pages. Values
// below one use DefaultMaxPages.
func NewExtractor(maxPages int) *Extractor {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Extractor{MaxPages: maxPages}
}

// Load returns one text block per row of text, top to bottom, page by page.
func (e *Extractor) Load(path string) (document.Layout, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, document.NewLoadError(path, document.ErrorKindFileAccess, "cannot open PDF", err)
	}
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, document.NewLoadError(path, document.ErrorKindInvalidFormat, "error opening PDF", err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > e.MaxPages {
		pages = e.MaxPages
	}

	var texts []string
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows, err := pageRows(p)
		if err != nil {
			continue
		}
		texts = append(texts, rows...)
	}

	layout := document.NewLayout(texts...)
	if len(layout) == 0 {
		return nil, document.NewLoadError(path, document.ErrorKindEmpty, "PDF has no extractable text", document.ErrEmptyLayout)
	}
	return layout, nil
}

// pageRows returns the page's rows in reading order. Pages whose rows cannot
// be read fall back to plain text split into lines.
func pageRows(p pdf.Page) ([]string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		plain, perr := p.GetPlainText(nil)
		if perr != nil {
			return nil, fmt.Errorf("failed to read page text: %w", perr)
		}
		return strings.Split(plain, "\n"), nil
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}
	// PDF y grows upward, so the top row has the largest y.
	sort.SliceStable(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) > averageY(sorted[j].Content)
	})

	out := make([]string, 0, len(sorted))
	for _, row := range sorted {
		out = append(out, rowText(row.Content))
	}
	return out, nil
}

func averageY(texts []pdf.Text) float64 {
	if len(texts) == 0 {
		return 0
	}
	var total float64
	for _, t := range texts {
		total += t.Y
	}
	return total / float64(len(texts))
}

// rowText joins a row's glyph runs left to right, inserting a space where
// the gap to the next run exceeds a fifth of the font size.
func rowText(texts []pdf.Text) string {
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var buf bytes.Buffer
	for i, t := range sorted {
		buf.WriteString(t.S)
		if i == len(sorted)-1 {
			break
		}
		fontSize := t.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if sorted[i+1].X-(t.X+t.W) > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}
	return strings.TrimSpace(buf.String())
}
