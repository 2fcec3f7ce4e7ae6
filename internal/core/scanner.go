// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"strings"

	"lien-scan/internal/aggregator"
	"lien-scan/internal/batch"
	"lien-scan/internal/config"
	"lien-scan/internal/formatters"
	"lien-scan/internal/nlp"
	"lien-scan/internal/observability"
	"lien-scan/internal/sources"
	"lien-scan/internal/sources/rows"
)

// ScanConfig holds configuration for scanning operations.
type ScanConfig struct {
	InputPath string
	// RowsPath is the optional records table (.csv or .xlsx).
	RowsPath string
	Settings config.Settings
	// People overrides the person-name recognizer built from Settings.
	People   nlp.Recognizer
	Observer *observability.StandardObserver
}

// ScanResult holds the results of a scanning operation.
type ScanResult struct {
	Documents int
	Rows      int
	Stats     *batch.Stats
}

// Scan discovers the documents under cfg.InputPath, joins them to the
// records table and writes one record per job to out.
func Scan(cfg ScanConfig, out formatters.RecordWriter, progress batch.ProgressCallback) (*ScanResult, error) {
	observer := cfg.Observer
	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}
	step := func(string, string) func(bool, string) { return func(bool, string) {} }
	if observer.DebugObserver != nil {
		step = func(name, path string) func(bool, string) {
			return observer.DebugObserver.StartStep("scanner", name, path)
		}
	}

	router := sources.NewDefaultRouter(sources.Options{
		ValidatePDF: cfg.Settings.Input.ValidatePDF,
		MaxPages:    cfg.Settings.Input.MaxPages,
	}, observer)

	done := step("discover", cfg.InputPath)
	paths, err := router.Discover(cfg.InputPath)
	if err != nil {
		done(false, err.Error())
		return nil, err
	}
	done(true, fmt.Sprintf("%d documents", len(paths)))

	var table *rows.Table
	if cfg.RowsPath != "" {
		done = step("load_rows", cfg.RowsPath)
		table, err = rows.Load(cfg.RowsPath)
		if err != nil {
			done(false, err.Error())
			return nil, fmt.Errorf("failed to load records table: %w", err)
		}
		done(true, fmt.Sprintf("%d rows", len(table.Rows)))
	}

	agg := BuildAggregator(cfg.Settings.Extraction, cfg.People, observer)
	processor := batch.NewProcessor(router, agg, observer)

	jobs := batch.Plan(paths, table)
	stats, err := processor.Process(jobs, out, progress)
	if observer.DebugObserver != nil && stats != nil {
		observer.DebugObserver.LogMetric("scanner", "extracted", stats.Extracted)
		observer.DebugObserver.LogMetric("scanner", "failed", stats.Failed)
		observer.DebugObserver.LogMetric("scanner", "duration", stats.TotalDuration)
	}
	result := &ScanResult{Documents: len(paths), Stats: stats}
	if table != nil {
		result.Rows = len(table.Rows)
	}
	if err != nil {
		return result, fmt.Errorf("batch processing failed: %w", err)
	}
	return result, nil
}

// ParseFieldsToRun converts a slice of field names into an enabled-fields map.
// An empty slice or ["all"] enables every field; unknown names are ignored.
func ParseFieldsToRun(fields []string) map[aggregator.Field]bool {
	result := make(map[aggregator.Field]bool, len(aggregator.AllFields))
	for _, f := range aggregator.AllFields {
		result[f] = false
	}

	if len(fields) == 0 || (len(fields) == 1 && strings.EqualFold(fields[0], "all")) {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, field := range fields {
		key := aggregator.Field(strings.ToUpper(strings.TrimSpace(field)))
		if _, exists := result[key]; exists {
			result[key] = true
		}
	}
	return result
}

// UnknownFields returns the names in fields that are not extractable fields.
func UnknownFields(fields []string) []string {
	known := ParseFieldsToRun(nil)
	var unknown []string
	for _, field := range fields {
		name := strings.ToUpper(strings.TrimSpace(field))
		if name == "" || name == "ALL" {
			continue
		}
		if !known[aggregator.Field(name)] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
