// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"lien-scan/internal/formatters"
	"lien-scan/internal/record"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// Format renders a summary and the records as indented JSON.
func (f *Formatter) Format(records []record.LienRecord, options formatters.FormatterOptions) (string, error) {
	data, err := json.MarshalIndent(formatters.NewReport(records), "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}
	return string(data) + "\n", nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
