// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"
	"strings"

	"lien-scan/internal/formatters"
	"lien-scan/internal/record"

	"gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, same structure as JSON"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

// Format renders the report as a YAML document with two-space indentation.
func (f *Formatter) Format(records []record.LienRecord, options formatters.FormatterOptions) (string, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(formatters.NewReport(records)); err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
