// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sources

import (
	"bufio"
	"os"
	"path/filepath"
	"unicode/utf8"

	"lien-scan/internal/document"
	"lien-scan/internal/sources/pdfcheck"
	"lien-scan/internal/sources/pdftext"
)

// LayoutLoader reads the structured-data JSON written by the text
// extraction service.
type LayoutLoader struct{}

func (LayoutLoader) GetName() string                  { return "Layout JSON Loader" }
func (LayoutLoader) GetSupportedExtensions() []string { return []string{".json"} }

// Load implements Loader.
func (LayoutLoader) Load(path string) (document.Layout, error) {
	return document.LoadLayoutFile(path)
}

// PlainTextLoader reads OCR text files, one block per non-blank line.
type PlainTextLoader struct{}

func (PlainTextLoader) GetName() string                  { return "Plain Text Loader" }
func (PlainTextLoader) GetSupportedExtensions() []string { return []string{".txt", ".text"} }

// Load implements Loader.
func (PlainTextLoader) Load(path string) (document.Layout, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, document.NewLoadError(path, document.ErrorKindFileAccess, "cannot open text file", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !utf8.ValidString(line) {
			return nil, document.NewLoadError(path, document.ErrorKindInvalidFormat, "file is not valid UTF-8 text", nil)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, document.NewLoadError(path, document.ErrorKindFileAccess, "error reading text file", err)
	}

	layout := document.NewLayout(lines...)
	if len(layout) == 0 {
		return nil, document.NewLoadError(path, document.ErrorKindEmpty, "text file is empty", document.ErrEmptyLayout)
	}
	return layout, nil
}

// PDFLoader validates a PDF and reads its text rows.
type PDFLoader struct {
	validator *pdfcheck.Validator
	text      *pdftext.Extractor
}

// NewPDFLoader creates a PDF loader. When validate is false the structural
// check is skipped and only the text extractor's own parsing applies.
func NewPDFLoader(validate bool, maxPages int) *PDFLoader {
	l := &PDFLoader{text: pdftext.NewExtractor(maxPages)}
	if validate {
		l.validator = pdfcheck.NewValidator(0)
	}
	return l
}

func (l *PDFLoader) GetName() string                  { return "PDF Text Loader" }
func (l *PDFLoader) GetSupportedExtensions() []string { return []string{".pdf"} }

// Load implements Loader.
func (l *PDFLoader) Load(path string) (document.Layout, error) {
	if l.validator != nil {
		if _, err := l.validator.Check(path); err != nil {
			return nil, err
		}
	}
	return l.text.Load(path)
}
