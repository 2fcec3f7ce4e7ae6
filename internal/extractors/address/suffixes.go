// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"sort"
	"strings"
)

// streetSuffixes are the common USPS street types and their abbreviations.
var streetSuffixes = []string{
	"Alley", "Aly",
	"Avenue", "Ave", "Av",
	"Boulevard", "Blvd",
	"Circle", "Cir",
	"Court", "Ct",
	"Cove", "Cv",
	"Crossing", "Xing",
	"Drive", "Dr",
	"Expressway", "Expy",
	"Freeway", "Fwy",
	"Highway", "Hwy",
	"Lane", "Ln",
	"Loop",
	"Parkway", "Pkwy",
	"Place", "Pl",
	"Plaza", "Plz",
	"Point", "Pt",
	"Road", "Rd",
	"Row",
	"Run",
	"Square", "Sq",
	"Street", "St",
	"Terrace", "Ter",
	"Trail", "Trl",
	"Turnpike", "Tpke",
	"Way",
}

var suffixSet = func() map[string]bool {
	m := make(map[string]bool, len(streetSuffixes))
	for _, s := range streetSuffixes {
		m[strings.ToUpper(s)] = true
	}
	return m
}()

func isStreetSuffix(w string) bool {
	return suffixSet[strings.ToUpper(strings.TrimSuffix(w, "."))]
}

// suffixPattern returns an alternation of street suffixes, longest first.
func suffixPattern() string {
	alts := append([]string(nil), streetSuffixes...)
	sort.Slice(alts, func(i, j int) bool {
		if len(alts[i]) != len(alts[j]) {
			return len(alts[i]) > len(alts[j])
		}
		return alts[i] < alts[j]
	})
	return strings.Join(alts, "|")
}
