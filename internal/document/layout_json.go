// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// structuredData is the subset of the text-extraction service output we read.
// Elements carry bounds, fonts and paths too; only Text matters here.
type structuredData struct {
	Elements []struct {
		Text *string `json:"Text"`
	} `json:"elements"`
}

// LoadLayout parses a structured-data JSON document into a layout.
func LoadLayout(r io.Reader) (Layout, error) {
	var data structuredData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	if data.Elements == nil {
		return nil, fmt.Errorf("decode layout: missing elements array")
	}

	texts := make([]string, 0, len(data.Elements))
	for _, el := range data.Elements {
		if el.Text == nil {
			continue
		}
		texts = append(texts, *el.Text)
	}

	layout := NewLayout(texts...)
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}
	return layout, nil
}

// LoadLayoutFile reads a structured-data JSON file.
func LoadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, NewLoadError(path, ErrorKindFileAccess, "cannot open layout", err)
	}
	defer f.Close()

	layout, err := LoadLayout(f)
	if err != nil {
		kind := ErrorKindInvalidFormat
		if errors.Is(err, ErrEmptyLayout) {
			kind = ErrorKindEmpty
		}
		return nil, NewLoadError(path, kind, "cannot parse layout", err)
	}
	return layout, nil
}
