// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StandardObserver records timed operations for every pipeline component.
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	runID         string
	mu            sync.Mutex
	counts        map[string]int
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates an observer with a fresh run ID.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	if writer == nil {
		writer = io.Discard
	}
	return &StandardObserver{
		level:  level,
		writer: writer,
		runID:  uuid.NewString(),
		counts: make(map[string]int),
	}
}

// NewObserver returns a debug observer when debug is set and a metrics
// observer otherwise.
func NewObserver(debug bool, writer io.Writer) *StandardObserver {
	if !debug {
		return NewStandardObserver(ObservabilityMetrics, writer)
	}
	debugObs := NewDebugObserver(writer)
	observer := debugObs.StandardObserver
	observer.DebugObserver = debugObs
	return observer
}

// RunID identifies every operation logged by this observer.
func (o *StandardObserver) RunID() string {
	return o.runID
}

// Level returns the observer level.
func (o *StandardObserver) Level() ObservabilityLevel {
	return o.level
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			FilePath:   filePath,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}

		o.LogOperation(data)
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	key := data.Component + "." + data.Operation
	if !data.Success {
		key += ".failed"
	}
	o.counts[key]++

	data.RequestID = o.runID

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// Count returns how many times component.operation was logged. Failed
// operations are counted under component.operation.failed.
func (o *StandardObserver) Count(key string) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.counts[key]
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component     string                 `json:"component"`
	Operation     string                 `json:"operation"`
	RequestID     string                 `json:"request_id"`
	FilePath      string                 `json:"file_path,omitempty"`
	DurationMs    int64                  `json:"duration_ms,omitempty"`
	Success       bool                   `json:"success"`
	Error         string                 `json:"error,omitempty"`
	ContentLength int                    `json:"content_length,omitempty"`
	MatchCount    int                    `json:"match_count,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}
