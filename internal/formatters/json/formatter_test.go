// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lien-scan/internal/formatters"
	"lien-scan/internal/record"
)

func TestFormat(t *testing.T) {
	ok := record.Default(record.RowFields{File: "a"})
	ok.Status = record.StatusExtracted
	ok.PropertyAddress = record.AddressRecord{Street: "123 Main St", City: "Edmond"}
	failed := record.Default(record.RowFields{File: "b"})
	failed.Error = "load failed"

	out, err := NewFormatter().Format([]record.LienRecord{ok, failed}, formatters.FormatterOptions{})
	require.NoError(t, err)

	var report formatters.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, formatters.Summary{Total: 2, Extracted: 1, Failed: 1}, report.Summary)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "Edmond", report.Records[0].PropertyAddress.City)
	assert.Equal(t, "load failed", report.Records[1].Error)
}

func TestFormat_Empty(t *testing.T) {
	out, err := formatters.Export("json", nil, formatters.FormatterOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, `"records": []`)
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := formatters.Export("pdf", nil, formatters.FormatterOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json")
}
