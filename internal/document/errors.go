// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies why a document could not be loaded.
type ErrorKind string

const (
	ErrorKindFileAccess    ErrorKind = "file_access"
	ErrorKindInvalidFormat ErrorKind = "invalid_format"
	ErrorKindUnsupported   ErrorKind = "unsupported_format"
	ErrorKindEmpty         ErrorKind = "empty"
)

// ErrEmptyLayout is returned when a layout parses but holds no text.
var ErrEmptyLayout = errors.New("layout contains no text")

// LoadError describes a document that could not be turned into a layout.
type LoadError struct {
	Path    string
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	parts := []string{fmt.Sprintf("load failed for %s", e.Path), fmt.Sprintf("error=%s", e.Kind)}
	if e.Message != "" {
		parts = append(parts, fmt.Sprintf("message=%s", e.Message))
	}
	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}
	return strings.Join(parts, " ")
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a load error.
func NewLoadError(path string, kind ErrorKind, message string, cause error) *LoadError {
	return &LoadError{Path: path, Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of a load error anywhere in err's chain, or "".
func KindOf(err error) ErrorKind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return ""
}
