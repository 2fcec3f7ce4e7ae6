// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textnorm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already clean", "Balance Due $11,985.68", "Balance Due $11,985.68"},
		{"collapses whitespace", "  Owner:\t\tAcme \n LLC  ", "Owner: Acme LLC"},
		{"replaces non-ascii run", "Claimant  Acme", "Claimant Acme"},
		{"drops accented letter", "Café Supply", "Caf Supply"},
		{"bullets and dashes", "Amount • — $50.00", "Amount $50.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  ¿Qué?  multiple   spaces here ",
		"HERITAGE LANDSCAPE SUPPLY GROUP INC DBA DAVIS SUPPLY\n509 WESTLAND Dr",
		"‘quoted’ “words”",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)

		folded := Normalizer{FoldAccents: true}.Normalize(in)
		assert.Equal(t, folded, Normalizer{FoldAccents: true}.Normalize(folded), "input %q", in)
	}
}

func TestNormalize_ASCIIOnly(t *testing.T) {
	out := Normalize("Ñandú été 中文 done")
	for _, r := range out {
		assert.Less(t, r, rune(0x80))
	}
	assert.NotContains(t, out, "  ")
	assert.Equal(t, strings.TrimSpace(out), out)
}

func TestNormalizer_FoldAccents(t *testing.T) {
	n := Normalizer{FoldAccents: true}
	assert.Equal(t, "Cafe Supply", n.Normalize("Café Supply"))
	assert.Equal(t, "Pena Construccion", n.Normalize("Peña Construcción"))
}

func TestSplitAnchorWords(t *testing.T) {
	assert.Equal(t, "property owned by Acme Homes", SplitAnchorWords("property owned byAcme Homes"))
	assert.Equal(t, "Owned by Smith", SplitAnchorWords("Owned bySmith"))
	assert.Equal(t, "owned by acme", SplitAnchorWords("owned by acme"))
	assert.Equal(t, "owned by Acme", SplitAnchorWords("owned by Acme"))
}
