// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package batch runs the aggregator over a list of documents, one at a time,
// and hands each record to the output writer.
package batch

import (
	"errors"
	"fmt"
	"time"

	"lien-scan/internal/aggregator"
	"lien-scan/internal/document"
	"lien-scan/internal/formatters"
	"lien-scan/internal/observability"
	"lien-scan/internal/record"
	"lien-scan/internal/sources"
	"lien-scan/internal/sources/rows"
)

// ErrDocumentNotFound is recorded for table rows that have no document.
var ErrDocumentNotFound = errors.New("document not found")

// Source loads the layout of one document. *sources.Router implements it.
type Source interface {
	Load(path string) (document.Layout, error)
}

// Job is one output row: a document path, the table values for it, or both.
type Job struct {
	Path string
	Row  record.RowFields
}

// Stats tracks batch processing statistics
type Stats struct {
	Total         int           `json:"total"`
	Extracted     int           `json:"extracted"`
	Failed        int           `json:"failed"`
	TotalDuration time.Duration `json:"total_duration_ms"`
}

// ProgressCallback is called when a document is completed
type ProgressCallback func(completed, total int, current string)

// Processor processes jobs sequentially: a document is loaded, aggregated and
// written before the next one is loaded.
type Processor struct {
	source     Source
	aggregator *aggregator.Aggregator
	observer   *observability.StandardObserver
}

// NewProcessor creates a processor. observer may be nil.
func NewProcessor(source Source, agg *aggregator.Aggregator, observer *observability.StandardObserver) *Processor {
	if agg == nil {
		agg = aggregator.New(aggregator.Options{})
	}
	return &Processor{source: source, aggregator: agg, observer: observer}
}

// Plan joins discovered documents to table rows by document ID. Documents
// keep their order; rows without a document follow in table order.
func Plan(paths []string, table *rows.Table) []Job {
	jobs := make([]Job, 0, len(paths))
	matched := make(map[string]bool)

	for _, path := range paths {
		id := sources.DocumentID(path)
		row, ok := table.Lookup(id)
		if ok {
			matched[row.File] = true
		} else {
			row = record.RowFields{File: id}
		}
		jobs = append(jobs, Job{Path: path, Row: row})
	}

	if table != nil {
		for _, row := range table.Rows {
			if !matched[row.File] {
				jobs = append(jobs, Job{Row: row})
			}
		}
	}
	return jobs
}

// Process runs every job and writes its record to out. A document that
// fails to load or aggregate still produces a record; only writer errors
// stop the run.
func (p *Processor) Process(jobs []Job, out formatters.RecordWriter, progress ProgressCallback) (*Stats, error) {
	start := time.Now()
	finishTiming := p.observer.StartTiming("batch_processor", "process_jobs", "batch")

	stats := &Stats{Total: len(jobs)}
	for i, job := range jobs {
		rec := p.ProcessOne(job)
		if rec.Status == record.StatusFailed {
			stats.Failed++
		} else {
			stats.Extracted++
		}

		if err := out.WriteRecord(rec); err != nil {
			stats.TotalDuration = time.Since(start)
			finishTiming(false, map[string]interface{}{"written": i, "error": err.Error()})
			return stats, fmt.Errorf("failed to write record for %s: %w", rec.File, err)
		}
		if progress != nil {
			progress(i+1, len(jobs), rec.File)
		}
	}

	stats.TotalDuration = time.Since(start)
	finishTiming(true, map[string]interface{}{
		"total":     stats.Total,
		"extracted": stats.Extracted,
		"failed":    stats.Failed,
	})
	return stats, nil
}

// ProcessOne builds the record for a single job.
func (p *Processor) ProcessOne(job Job) (rec record.LienRecord) {
	if job.Path == "" {
		return p.failed(job, ErrDocumentNotFound)
	}

	defer func() {
		if r := recover(); r != nil {
			rec = p.failed(job, fmt.Errorf("panic during extraction: %v", r))
		}
	}()

	blocks, err := p.source.Load(job.Path)
	if err != nil {
		return p.failed(job, err)
	}
	return p.aggregator.Aggregate("", blocks, job.Row)
}

func (p *Processor) failed(job Job, err error) record.LienRecord {
	p.observer.LogOperation(observability.StandardObservabilityData{
		Component: "batch_processor",
		Operation: "document_processing",
		FilePath:  job.Path,
		Success:   false,
		Error:     err.Error(),
		Metadata:  map[string]interface{}{"file": job.Row.File, "kind": string(document.KindOf(err))},
	})

	rec := record.Default(job.Row)
	rec.Error = err.Error()
	return rec
}
