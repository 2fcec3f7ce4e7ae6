// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardObserver_RunID(t *testing.T) {
	a := NewStandardObserver(ObservabilityMetrics, nil)
	b := NewStandardObserver(ObservabilityMetrics, nil)

	_, err := uuid.Parse(a.RunID())
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID(), b.RunID())
}

func TestLogOperation_DebugWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)

	done := o.StartTiming("aggregator", "aggregate", "lien.json")
	done(true, map[string]interface{}{"fields": 3})

	var data StandardObservabilityData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "aggregator", data.Component)
	assert.Equal(t, "aggregate", data.Operation)
	assert.Equal(t, "lien.json", data.FilePath)
	assert.Equal(t, o.RunID(), data.RequestID)
	assert.True(t, data.Success)
	assert.Equal(t, 1, o.Count("aggregator.aggregate"))
}

func TestLogOperation_MetricsCountsSilently(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityMetrics, &buf)

	o.LogOperation(StandardObservabilityData{Component: "batch", Operation: "load", Success: false})
	o.LogOperation(StandardObservabilityData{Component: "batch", Operation: "load", Success: true})

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, o.Count("batch.load"))
	assert.Equal(t, 1, o.Count("batch.load.failed"))
}

func TestLogOperation_Off(t *testing.T) {
	o := NewStandardObserver(ObservabilityOff, nil)
	o.LogOperation(StandardObservabilityData{Component: "batch", Operation: "load", Success: true})
	assert.Zero(t, o.Count("batch.load"))
}

func TestNewObserver(t *testing.T) {
	assert.Nil(t, NewObserver(false, nil).DebugObserver)

	var buf bytes.Buffer
	o := NewObserver(true, &buf)
	require.NotNil(t, o.DebugObserver)
	assert.Equal(t, ObservabilityDebug, o.Level())

	finish := o.DebugObserver.StartStep("batch", "process", "a.pdf")
	o.DebugObserver.LogDetail("address", "tagger, pattern")
	finish(false, "empty layout")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "batch: process (a.pdf)")
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.Contains(t, lines[2], "failed")
}

func TestNop(t *testing.T) {
	var timer Timer = Nop{}
	assert.NotPanics(t, func() { timer.StartTiming("a", "b", "c")(true, nil) })
}
