// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

// NumberMatcher finds a valid phone number in free text and returns it in a
// canonical format.
type NumberMatcher interface {
	Match(text string) (string, bool)
}

// candidatePattern is deliberately loose; validity is decided by the metadata.
var candidatePattern = regexp.MustCompile(`(?:^|[^\d+])((?:\+?1[\s.-]?)?(?:\(\d{3}\)|\d{3})[\s.-]?\d{3}[\s.-]?\d{4})(?:$|\D)`)

// GrammarMatcher validates candidates against libphonenumber metadata for a region.
type GrammarMatcher struct {
	region string
}

// NewGrammarMatcher creates a matcher for a default region such as "US".
func NewGrammarMatcher(region string) *GrammarMatcher {
	if region == "" {
		region = "US"
	}
	return &GrammarMatcher{region: region}
}

// Match returns the first valid number formatted in international notation,
// e.g. "+1 405-606-4448".
func (g *GrammarMatcher) Match(text string) (string, bool) {
	for _, m := range candidatePattern.FindAllStringSubmatch(text, -1) {
		num, err := phonenumbers.Parse(m[1], g.region)
		if err != nil {
			continue
		}
		if !phonenumbers.IsValidNumber(num) {
			continue
		}
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), true
	}
	return "", false
}
