// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver prints each document and extraction stage as it runs.
type DebugObserver struct {
	*StandardObserver
	indent int
}

// NewDebugObserver creates a debug observer with step-by-step logging
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
}

// StartStep begins a processing step with indentation
func (d *DebugObserver) StartStep(component, step, filePath string) func(success bool, details string) {
	start := time.Now()
	fmt.Fprintf(d.writer, "%s🔄 %s: %s (%s)\n", d.prefix(), component, step, filePath)
	d.indent++

	return func(success bool, details string) {
		d.indent--
		elapsed := time.Since(start).Milliseconds()
		if success {
			fmt.Fprintf(d.writer, "%s✅ %s: %s completed (%dms) %s\n", d.prefix(), component, step, elapsed, details)
			return
		}
		fmt.Fprintf(d.writer, "%s❌ %s: %s failed (%dms) %s\n", d.prefix(), component, step, elapsed, details)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	fmt.Fprintf(d.writer, "%s   → %s: %s\n", d.prefix(), component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	fmt.Fprintf(d.writer, "%s   📊 %s: %s = %v\n", d.prefix(), component, metric, value)
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.indent)
}
