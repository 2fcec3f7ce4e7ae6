// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"lien-scan/internal/record"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	Verbose bool // Whether to display the error column and extraction status
	NoColor bool // Whether to disable colored output
	// OmitHeader suppresses the header row, for appends to existing output.
	OmitHeader bool
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders every record in the formatter's output format
	Format(records []record.LienRecord, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format (e.g., ".json", ".txt", ".csv")
	FileExtension() string
}

// RecordStream writes records one at a time as they are produced.
type RecordStream interface {
	WriteRecord(rec record.LienRecord) error
	Flush() error
}

// Streamer is implemented by formatters whose output can be written row by row.
type Streamer interface {
	NewStream(w io.Writer, options FormatterOptions) RecordStream
}

// Appender is implemented by formatters that can add records to an existing
// output file without rewriting its header.
type Appender interface {
	Append(path string, records []record.LienRecord, options FormatterOptions) error
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatInfo provides metadata about a formatter
type FormatInfo struct {
	Name        string
	Description string
	Extension   string
	MimeType    string
	Streaming   bool
	Appendable  bool
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders records with the named formatter from the default registry.
func Export(format string, records []record.LienRecord, options FormatterOptions) (string, error) {
	formatter, err := lookup(format)
	if err != nil {
		return "", err
	}
	return formatter.Format(records, options)
}

func lookup(format string) (Formatter, error) {
	formatter, exists := Get(format)
	if !exists {
		return nil, fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter, nil
}

// GetFormatInfo returns metadata about a specific formatter
func GetFormatInfo(name string) FormatInfo {
	formatter, exists := Get(name)
	if !exists {
		return FormatInfo{}
	}

	info := FormatInfo{
		Name:        formatter.Name(),
		Description: formatter.Description(),
		Extension:   formatter.FileExtension(),
	}
	_, info.Streaming = formatter.(Streamer)
	_, info.Appendable = formatter.(Appender)

	switch name {
	case "json":
		info.MimeType = "application/json"
	case "csv":
		info.MimeType = "text/csv"
	case "yaml":
		info.MimeType = "application/x-yaml"
	case "text":
		info.MimeType = "text/plain"
	case "xlsx":
		info.MimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		info.MimeType = "application/octet-stream"
	}

	return info
}

// GetSupportedFormats returns information about all available formatters
func GetSupportedFormats() []FormatInfo {
	var formats []FormatInfo
	for _, name := range List() {
		formats = append(formats, GetFormatInfo(name))
	}
	return formats
}

// Summary counts the records of one run.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Extracted int `json:"extracted" yaml:"extracted"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Summarize counts records by status.
func Summarize(records []record.LienRecord) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		if r.Status == record.StatusFailed {
			s.Failed++
		} else {
			s.Extracted++
		}
	}
	return s
}

// Report is the document shape shared by the JSON and YAML formatters.
type Report struct {
	Summary Summary             `json:"summary" yaml:"summary"`
	Records []record.LienRecord `json:"records" yaml:"records"`
}

// NewReport builds a report. A nil slice becomes empty so it renders as [].
func NewReport(records []record.LienRecord) Report {
	if records == nil {
		records = []record.LienRecord{}
	}
	return Report{Summary: Summarize(records), Records: records}
}
