// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdfcheck validates PDF structure before text extraction.
package pdfcheck

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"lien-scan/internal/document"
)

// Validator checks PDFs with pdfcpu.
type Validator struct {
	config   *model.Configuration
	maxPages int
}

// NewValidator creates a validator. Documents with more than maxPages pages
// are rejected; zero disables the limit.
func NewValidator(maxPages int) *Validator {
	return &Validator{
		config:   model.NewDefaultConfiguration(),
		maxPages: maxPages,
	}
}

// Check validates path and returns its page count.
func (v *Validator) Check(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, document.NewLoadError(path, document.ErrorKindFileAccess, "file does not exist", err)
	}
	if err := api.ValidateFile(path, v.config); err != nil {
		return 0, document.NewLoadError(path, document.ErrorKindInvalidFormat, "invalid PDF file", err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, document.NewLoadError(path, document.ErrorKindInvalidFormat, "cannot count pages", err)
	}
	if pages == 0 {
		return 0, document.NewLoadError(path, document.ErrorKindEmpty, "PDF has no pages", document.ErrEmptyLayout)
	}
	if v.maxPages > 0 && pages > v.maxPages {
		return pages, document.NewLoadError(path, document.ErrorKindUnsupported,
			fmt.Sprintf("%d pages exceeds the limit of %d", pages, v.maxPages), nil)
	}
	return pages, nil
}
