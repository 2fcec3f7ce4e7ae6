// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package sources discovers lien documents and routes each one to the
// loader for its file type.
package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"lien-scan/internal/document"
	"lien-scan/internal/observability"
)

// Loader turns one document file into a layout.
type Loader interface {
	// GetName returns the loader name
	GetName() string
	// GetSupportedExtensions returns the lower-case extensions, with dot
	GetSupportedExtensions() []string
	Load(path string) (document.Layout, error)
}

// Router dispatches documents to loaders by extension.
type Router struct {
	loaders  map[string]Loader
	order    []Loader
	observer observability.Timer
}

// NewRouter creates an empty router.
func NewRouter(observer observability.Timer) *Router {
	if observer == nil {
		observer = observability.Nop{}
	}
	return &Router{loaders: make(map[string]Loader), observer: observer}
}

// Options configures the default loaders.
type Options struct {
	// ValidatePDF runs structural validation before text extraction.
	ValidatePDF bool
	// MaxPages bounds the pages read from one PDF.
	MaxPages int
}

// NewDefaultRouter registers the layout JSON, plain text and PDF loaders.
func NewDefaultRouter(opts Options, observer observability.Timer) *Router {
	r := NewRouter(observer)
	r.Register(LayoutLoader{})
	r.Register(PlainTextLoader{})
	r.Register(NewPDFLoader(opts.ValidatePDF, opts.MaxPages))
	return r
}

// Register adds a loader. A later loader wins an extension it shares.
func (r *Router) Register(l Loader) {
	r.order = append(r.order, l)
	for _, ext := range l.GetSupportedExtensions() {
		r.loaders[strings.ToLower(ext)] = l
	}
}

// Loaders returns the registered loaders in registration order.
func (r *Router) Loaders() []Loader {
	return r.order
}

// CanProcess reports whether a loader handles path.
func (r *Router) CanProcess(path string) bool {
	_, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Load reads path with the loader registered for its extension.
func (r *Router) Load(path string) (document.Layout, error) {
	l, ok := r.loaders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, document.NewLoadError(path, document.ErrorKindUnsupported,
			fmt.Sprintf("no loader for %q files", filepath.Ext(path)), nil)
	}

	finish := r.observer.StartTiming("router", "load", path)
	layout, err := l.Load(path)
	meta := map[string]interface{}{"loader": l.GetName(), "blocks": len(layout)}
	if err != nil {
		meta["error"] = err.Error()
	}
	finish(err == nil, meta)
	return layout, err
}

// Discover returns the documents under input in sorted order. A file is
// returned as is; a directory is searched recursively for supported files.
func (r *Router) Discover(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("cannot access input: %w", err)
	}
	if !info.IsDir() {
		return []string{input}, nil
	}

	var paths []string
	err = filepath.WalkDir(input, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != input && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if r.CanProcess(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk input directory: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// DocumentID returns the basename of path without its extension. Table rows
// are joined to documents on this value.
func DocumentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
