// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability logs timing and outcome data for pipeline stages.
package observability

// Observable interface for all components that need observability
type Observable interface {
	// GetComponentName returns the component identifier
	GetComponentName() string
}

// Timer starts a timed operation. *StandardObserver implements it.
type Timer interface {
	StartTiming(component, operation, filePath string) func(success bool, metadata map[string]interface{})
}

// Nop discards every operation.
type Nop struct{}

// StartTiming returns a completion function that does nothing.
func (Nop) StartTiming(string, string, string) func(bool, map[string]interface{}) {
	return func(bool, map[string]interface{}) {}
}
