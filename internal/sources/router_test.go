// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package sources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lien-scan/internal/document"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"), `{"elements":[{"Text":"b"}]}`)
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "notes.docx"), "skip")
	writeFile(t, filepath.Join(dir, "nested", "c.pdf"), "%PDF-")
	writeFile(t, filepath.Join(dir, ".cache", "d.json"), "{}")

	r := NewDefaultRouter(Options{}, nil)
	paths, err := r.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "nested", "c.pdf"),
	}, paths)

	single, err := r.Discover(filepath.Join(dir, "b.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "b.json")}, single)

	_, err = r.Discover(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestLoad_Routing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lien.json"), `{"elements":[{"Text":"Claimant: Acme Inc"},{"Path":"//Document"}]}`)
	writeFile(t, filepath.Join(dir, "lien.txt"), "Owner: Jane Roe\n\nTotal $100.00\n")
	writeFile(t, filepath.Join(dir, "empty.txt"), "\n \n")

	r := NewDefaultRouter(Options{}, nil)

	layout, err := r.Load(filepath.Join(dir, "lien.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Claimant: Acme Inc"}, layout.Texts())

	layout, err = r.Load(filepath.Join(dir, "lien.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Owner: Jane Roe", "Total $100.00"}, layout.Texts())

	_, err = r.Load(filepath.Join(dir, "empty.txt"))
	assert.Equal(t, document.ErrorKindEmpty, document.KindOf(err))

	_, err = r.Load(filepath.Join(dir, "lien.docx"))
	assert.Equal(t, document.ErrorKindUnsupported, document.KindOf(err))

	_, err = r.Load(filepath.Join(dir, "missing.pdf"))
	assert.Equal(t, document.ErrorKindFileAccess, document.KindOf(err))
}

func TestRegister_LaterLoaderWins(t *testing.T) {
	r := NewRouter(nil)
	r.Register(LayoutLoader{})
	r.Register(PlainTextLoader{})
	assert.True(t, r.CanProcess("x.JSON"))
	assert.False(t, r.CanProcess("x.pdf"))
	assert.Len(t, r.Loaders(), 2)
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "2024-000123", DocumentID("/data/liens/2024-000123.pdf"))
	assert.Equal(t, "lien", DocumentID("lien"))
}
