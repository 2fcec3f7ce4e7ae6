// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"lien-scan/internal/aggregator"
	"lien-scan/internal/config"
	"lien-scan/internal/extractors/address"
	"lien-scan/internal/extractors/currency"
	"lien-scan/internal/extractors/party"
	"lien-scan/internal/extractors/phone"
	"lien-scan/internal/nlp"
	"lien-scan/internal/observability"
	"lien-scan/internal/textnorm"
)

// BuildRecognizer returns the person-name recognizer for the party
// extractor: the prose entity model when NER is enabled, the pattern
// recognizer otherwise.
func BuildRecognizer(enableNER bool) nlp.Recognizer {
	if enableNER {
		return nlp.NewProseRecognizer()
	}
	return nlp.NewPatternRecognizer()
}

// BuildAggregator constructs the extractors from the extraction settings and
// wires them into an aggregator. Pass nil for people to build the default
// recognizer for ex.EnableNER.
func BuildAggregator(ex config.Extraction, people nlp.Recognizer, timer observability.Timer) *aggregator.Aggregator {
	normalizer := textnorm.Normalizer{FoldAccents: ex.FoldAccents}
	if people == nil {
		people = BuildRecognizer(ex.EnableNER)
	}

	var suffixes []string
	if len(ex.CompanySuffixes) > 0 {
		suffixes = ex.CompanySuffixes
	}
	var states *address.StateTable
	if len(ex.StateCodes) > 0 {
		states = address.NewStateTable(ex.StateCodes)
	}

	parties := party.NewExtractor(party.NewCompanyRecognizer(suffixes), people).
		WithWindow(ex.WindowWords).
		WithClauseWindow(ex.ClauseWords).
		WithNormalizer(normalizer)

	return aggregator.New(aggregator.Options{
		Parties:    parties,
		Addresses:  address.NewExtractor(states).WithNormalizer(normalizer),
		Amounts:    currency.NewExtractor().WithNormalizer(normalizer),
		Phones:     phone.NewExtractor(phone.NewGrammarMatcher(ex.PhoneRegion)).WithNormalizer(normalizer),
		Normalizer: normalizer,
		Fields:     ParseFieldsToRun(splitList(ex.Fields)),
		Window:     ex.WindowWords,
		Timer:      timer,
	})
}
