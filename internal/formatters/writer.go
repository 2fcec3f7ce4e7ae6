// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lien-scan/internal/record"
)

// ErrAppendUnsupported is returned when appending to a format that cannot be extended.
var ErrAppendUnsupported = errors.New("format does not support appending")

// RecordWriter receives the records of a run in order. Close writes any
// buffered output and must be called once.
type RecordWriter interface {
	WriteRecord(rec record.LienRecord) error
	Close() error
}

// WriterConfig selects where and how records are written.
type WriterConfig struct {
	Format string
	// Path is the output file; empty writes to Stdout.
	Path    string
	Append  bool
	Stdout  io.Writer
	Options FormatterOptions
}

// NewRecordWriter opens a writer for cfg. Streaming formats write each
// record as it arrives; the rest render everything on Close.
func NewRecordWriter(cfg WriterConfig) (RecordWriter, error) {
	formatter, err := lookup(cfg.Format)
	if err != nil {
		return nil, err
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	if cfg.Append {
		if cfg.Path == "" {
			return nil, fmt.Errorf("append requires an output file")
		}
		if appender, ok := formatter.(Appender); ok {
			return &appendWriter{appender: appender, path: cfg.Path, options: cfg.Options}, nil
		}
		streamer, ok := formatter.(Streamer)
		if !ok {
			return nil, fmt.Errorf("%s: %w", cfg.Format, ErrAppendUnsupported)
		}
		return openStream(streamer, cfg, true)
	}

	if streamer, ok := formatter.(Streamer); ok {
		return openStream(streamer, cfg, false)
	}
	return &bufferedWriter{formatter: formatter, cfg: cfg}, nil
}

// streamWriter flushes after every record.
type streamWriter struct {
	stream RecordStream
	closer io.Closer
}

func openStream(streamer Streamer, cfg WriterConfig, appending bool) (RecordWriter, error) {
	if cfg.Path == "" {
		return &streamWriter{stream: streamer.NewStream(cfg.Stdout, cfg.Options)}, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appending {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(filepath.Clean(cfg.Path), flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}

	opts := cfg.Options
	if appending {
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to stat output file: %w", err)
		}
		opts.OmitHeader = opts.OmitHeader || info.Size() > 0
	}
	return &streamWriter{stream: streamer.NewStream(f, opts), closer: f}, nil
}

func (w *streamWriter) WriteRecord(rec record.LienRecord) error {
	if err := w.stream.WriteRecord(rec); err != nil {
		return err
	}
	return w.stream.Flush()
}

func (w *streamWriter) Close() error {
	err := w.stream.Flush()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// bufferedWriter renders all records on Close.
type bufferedWriter struct {
	formatter Formatter
	cfg       WriterConfig
	records   []record.LienRecord
}

func (w *bufferedWriter) WriteRecord(rec record.LienRecord) error {
	w.records = append(w.records, rec)
	return nil
}

func (w *bufferedWriter) Close() error {
	out, err := w.formatter.Format(w.records, w.cfg.Options)
	if err != nil {
		return fmt.Errorf("failed to format records: %w", err)
	}
	if w.cfg.Path == "" {
		_, err = io.WriteString(w.cfg.Stdout, out)
		return err
	}
	if err := os.WriteFile(filepath.Clean(w.cfg.Path), []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// appendWriter hands all records to the formatter's Appender on Close.
type appendWriter struct {
	appender Appender
	path     string
	options  FormatterOptions
	records  []record.LienRecord
}

func (w *appendWriter) WriteRecord(rec record.LienRecord) error {
	w.records = append(w.records, rec)
	return nil
}

func (w *appendWriter) Close() error {
	return w.appender.Append(w.path, w.records, w.options)
}
