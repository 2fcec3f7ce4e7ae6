// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"regexp"
	"strings"

	"lien-scan/internal/record"
)

// addressPattern is a regex fallback with named street/city/state/zip groups.
type addressPattern struct {
	name  string
	regex *regexp.Regexp
}

func (p addressPattern) match(text string) (record.AddressRecord, bool) {
	m := p.regex.FindStringSubmatch(text)
	if m == nil {
		return record.AddressRecord{}, false
	}
	group := func(name string) string {
		if i := p.regex.SubexpIndex(name); i >= 0 {
			return strings.Trim(strings.TrimSpace(m[i]), ",")
		}
		return ""
	}
	addr := record.AddressRecord{
		Street: collapseSpaces(strings.ReplaceAll(group("street"), ",", " ")),
		City:   collapseSpaces(group("city")),
		State:  collapseSpaces(group("state")),
		Zip:    group("zip"),
	}
	return addr, !addr.IsZero()
}

func buildPatterns(states *StateTable) []addressPattern {
	word := `(?:[A-Za-z][A-Za-z0-9'#&.-]*|\d+(?i:st|nd|rd|th))`
	street := `(?P<street>\d{1,6}[A-Za-z]?\s+(?:(?i:N|S|E|W|NE|NW|SE|SW)\.?\s+)?(?:` + word + `\s+){0,4}?(?i:` + suffixPattern() + `)\b\.?` +
		`(?:\s+(?:N|S|E|W|NE|NW|SE|SW)\b\.?)?` +
		`(?:\s*,?\s*(?i:Suite|Ste|Apt|Unit)\b\.?\s*[\w-]+|\s*,?\s*#\s*[\w-]+)?` +
		`|(?i:P\.?\s?O\.?\s+Box|Post\s+Office\s+Box)\s+\d+)`
	city := `(?P<city>[A-Z][A-Za-z.'-]*(?:\s+[A-Z][A-Za-z.'-]*){0,2})`
	state := `\b(?P<state>` + states.pattern() + `)\b\.?`
	zip := `(?P<zip>\d{5}(?:-\d{4})?)\b`

	return []addressPattern{
		{name: "full", regex: regexp.MustCompile(street + `\s*,?\s*` + city + `\s*,?\s*` + state + `\s*,?\s*` + zip)},
		{name: "no_state", regex: regexp.MustCompile(street + `\s*,?\s*` + city + `\s*,?\s*` + zip)},
		{name: "street_city", regex: regexp.MustCompile(street + `\s*,\s*` + city + `\s*(?:[,;.]|$)`)},
		{name: "city_state_zip", regex: regexp.MustCompile(`\b(?P<city>[A-Z][A-Za-z.'-]+(?:\s+[A-Z][A-Za-z.'-]+){0,2})\s*,\s*` + state + `\s+` + zip)},
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
