// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package document holds the positioned text of one lien document.
package document

import (
	"strings"
)

// TextBlock is one positioned run of text from the layout, in recording order.
type TextBlock struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// Layout is the ordered block list of a document.
type Layout []TextBlock

// Document is the unit of work handed to the aggregator.
type Document struct {
	// Path is the file the layout was read from.
	Path   string
	Layout Layout
}

// NewLayout builds a layout from raw block texts, skipping blank ones.
func NewLayout(texts ...string) Layout {
	layout := make(Layout, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		layout = append(layout, TextBlock{Index: len(layout), Text: t})
	}
	return layout
}

// MergedText joins every block's text with single spaces.
func (l Layout) MergedText() string {
	parts := make([]string, 0, len(l))
	for _, b := range l {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, " ")
}

// Texts returns the block texts in order.
func (l Layout) Texts() []string {
	texts := make([]string, len(l))
	for i, b := range l {
		texts[i] = b.Text
	}
	return texts
}

// Text returns the full document text.
func (d Document) Text() string {
	return d.Layout.MergedText()
}
