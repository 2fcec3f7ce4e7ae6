// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lien-scan/internal/aggregator"
	"lien-scan/internal/config"
	"lien-scan/internal/formatters"
	_ "lien-scan/internal/formatters/csv"
	"lien-scan/internal/nlp"
	"lien-scan/internal/observability"
	"lien-scan/internal/record"
)

func TestParseFieldsToRun_All(t *testing.T) {
	cases := []struct {
		name  string
		input []string
	}{
		{"empty slice enables all", []string{}},
		{"explicit all enables all", []string{"all"}},
		{"case-insensitive all", []string{"ALL"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ParseFieldsToRun(tc.input)
			assert.Len(t, result, len(aggregator.AllFields))
			for k, v := range result {
				assert.True(t, v, "field %s", k)
			}
		})
	}
}

func TestParseFieldsToRun_Specific(t *testing.T) {
	result := ParseFieldsToRun([]string{" claimant ", "OWNER", "SURETY"})
	assert.True(t, result[aggregator.FieldClaimant])
	assert.True(t, result[aggregator.FieldOwner])
	assert.False(t, result[aggregator.FieldDollarAmount])
	_, exists := result["SURETY"]
	assert.False(t, exists)

	assert.Equal(t, []string{"SURETY"}, UnknownFields([]string{"owner", "surety", "all", ""}))
}

func TestBuildAggregator_Settings(t *testing.T) {
	ex := config.Default().Extraction
	ex.Fields = "DOLLAR_AMOUNT"
	ex.StateCodes = map[string]string{"Cherokee Nation": "OK"}

	agg := BuildAggregator(ex, nlp.Nop{}, nil)
	assert.True(t, agg.Enabled(aggregator.FieldDollarAmount))
	assert.False(t, agg.Enabled(aggregator.FieldOwner))

	rec := agg.Aggregate("Owner: Acme Holdings LLC. The amount due is $900.00", nil, record.RowFields{File: "x"})
	assert.Equal(t, "900.00", rec.DollarAmount)
	assert.Equal(t, record.NotFound, rec.Owner)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	writeFile(t, filepath.Join(docs, "2024-001.json"), `{"elements":[
		{"Text":"STATEMENT OF LIEN"},
		{"Text":"Claimant: Sooner Electric LLC"},
		{"Text":"Property Address: 2200 NE 63rd St, Oklahoma City, OK 73111"},
		{"Text":"the sum of $4,100.25 is due"}]}`)
	writeFile(t, filepath.Join(docs, "2024-002.json"), `{"elements":[`)
	writeFile(t, filepath.Join(docs, "2024-003.txt"), "Owner: Red Dirt Holdings, LLC\nCall (405) 606-4448\n")
	rowsPath := filepath.Join(dir, "rows.csv")
	writeFile(t, rowsPath, "File,Book,Claimant\n2024-002,10,Acme Real\n2024-001,11,N/A\n2024-009,12,Gone LLC\n")

	out := filepath.Join(dir, "out.csv")
	w, err := formatters.NewRecordWriter(formatters.WriterConfig{Format: "csv", Path: out})
	require.NoError(t, err)

	var debug bytes.Buffer
	observer := observability.NewObserver(true, &debug)
	result, err := Scan(ScanConfig{
		InputPath: docs,
		RowsPath:  rowsPath,
		Settings:  config.Settings{Extraction: config.Default().Extraction, Input: config.Input{}},
		People:    nlp.Nop{},
		Observer:  observer,
	}, w, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, 3, result.Documents)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 4, result.Stats.Total)
	assert.Equal(t, 2, result.Stats.Failed)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	lines, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 5)

	values := func(i int) map[string]string {
		m := make(map[string]string)
		for j, h := range lines[0] {
			m[h] = lines[i][j]
		}
		return m
	}

	first := values(1)
	assert.Equal(t, "2024-001", first["File"])
	assert.Equal(t, "11", first["Book"])
	assert.Equal(t, "Sooner Electric LLC", first["Claimant"])
	assert.Equal(t, "2200 NE 63rd St", first["Street"])
	assert.Equal(t, "4100.25", first["Dollar Amount"])

	broken := values(2)
	assert.Equal(t, "Acme Real", broken["Claimant"])
	assert.Equal(t, record.StatusFailed, broken["Status"])

	text := values(3)
	assert.Equal(t, "2024-003", text["File"])
	assert.Equal(t, "Red Dirt Holdings, LLC", text["Owner"])
	assert.Equal(t, "+1 405-606-4448", text["Phone Number"])

	orphan := values(4)
	assert.Equal(t, "2024-009", orphan["File"])
	assert.Equal(t, "document not found", orphan["Error"])

	assert.Equal(t, 2, observer.Count("batch_processor.document_processing.failed"))
	assert.Contains(t, debug.String(), "scanner: extracted = 2")
	assert.Contains(t, debug.String(), "scanner: failed = 2")
}

func TestScan_MissingInput(t *testing.T) {
	_, err := Scan(ScanConfig{InputPath: filepath.Join(t.TempDir(), "nope")}, nil, nil)
	assert.Error(t, err)
}
