// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"regexp"
	"sort"
	"strings"
)

var defaultStateCodes = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"district of columbia": "DC",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
}

// StateTable maps full state names to two-letter postal codes.
type StateTable struct {
	names    map[string]string
	codes    map[string]bool
	maxWords int
}

// NewStateTable returns the 50 states plus DC, with extra name-to-code
// entries layered on top (e.g. {"okla": "OK"}).
func NewStateTable(extra map[string]string) *StateTable {
	t := &StateTable{
		names: make(map[string]string, len(defaultStateCodes)+len(extra)),
		codes: make(map[string]bool),
	}
	for name, code := range defaultStateCodes {
		t.Add(name, code)
	}
	for name, code := range extra {
		t.Add(name, code)
	}
	return t
}

// Add registers a state name and its code.
func (t *StateTable) Add(name, code string) {
	name = strings.ToLower(strings.Join(strings.Fields(name), " "))
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" || len(code) != 2 {
		return
	}
	t.names[name] = code
	t.codes[code] = true
	if n := len(strings.Fields(name)); n > t.maxWords {
		t.maxWords = n
	}
}

// Code returns the postal code for a full name or a code.
func (t *StateTable) Code(s string) (string, bool) {
	s = strings.Trim(strings.TrimSpace(s), ".")
	if s == "" {
		return "", false
	}
	if up := strings.ToUpper(s); len(up) == 2 && t.codes[up] {
		return up, true
	}
	code, ok := t.names[strings.ToLower(strings.Join(strings.Fields(s), " "))]
	return code, ok
}

// IsCode reports whether s is a known two-letter code.
func (t *StateTable) IsCode(s string) bool {
	return len(s) == 2 && t.codes[strings.ToUpper(s)]
}

// IsName reports whether s is a full state name.
func (t *StateTable) IsName(s string) bool {
	_, ok := t.names[strings.ToLower(s)]
	return ok
}

// Normalize returns the two-letter code for s, or s unchanged when unknown.
func (t *StateTable) Normalize(s string) string {
	if code, ok := t.Code(s); ok {
		return code
	}
	return s
}

// pattern returns a regex alternation matching any code or full name,
// longest names first.
func (t *StateTable) pattern() string {
	alts := make([]string, 0, len(t.names)+len(t.codes))
	for name := range t.names {
		alts = append(alts, strings.ReplaceAll(regexp.QuoteMeta(name), " ", `\s+`))
	}
	sort.Slice(alts, func(i, j int) bool {
		if len(alts[i]) != len(alts[j]) {
			return len(alts[i]) > len(alts[j])
		}
		return alts[i] < alts[j]
	})
	codes := make([]string, 0, len(t.codes))
	for code := range t.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return `(?i:` + strings.Join(alts, "|") + `)|` + strings.Join(codes, "|")
}
