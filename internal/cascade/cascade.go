// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cascade runs ordered fallback strategies over a single input.
//
// Every extractor in lien-scan is a prioritized list of heuristics: a
// precise matcher first, broader patterns after it. A Chain captures that
// shape so each extractor only has to declare its strategies.
package cascade

// Strategy is one named heuristic. Run reports false when it found nothing.
type Strategy[T any] struct {
	Name string
	Run  func(input string) (T, bool)
}

// Chain applies strategies in order, merging partial results until Done
// reports the accumulated value is complete.
type Chain[T any] struct {
	strategies []Strategy[T]

	// Merge folds a new partial result into the accumulator. When nil the
	// first successful strategy wins outright.
	Merge func(acc, next T) T

	// Done reports whether the accumulated value needs no further
	// strategies. When nil the chain stops at the first success.
	Done func(acc T) bool
}

// Result is the outcome of a chain run.
type Result[T any] struct {
	Value T
	Found bool
	// Contributors lists the strategies that produced a value, in order.
	Contributors []string
}

// New builds a chain from strategies in priority order.
func New[T any](strategies ...Strategy[T]) *Chain[T] {
	return &Chain[T]{strategies: strategies}
}

// Then appends a lower-priority strategy.
func (c *Chain[T]) Then(name string, run func(string) (T, bool)) *Chain[T] {
	c.strategies = append(c.strategies, Strategy[T]{Name: name, Run: run})
	return c
}

// Names returns the strategy names in priority order.
func (c *Chain[T]) Names() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name
	}
	return names
}

// Run executes the chain against input.
func (c *Chain[T]) Run(input string) Result[T] {
	var res Result[T]
	for _, s := range c.strategies {
		value, ok := s.Run(input)
		if !ok {
			continue
		}
		res.Contributors = append(res.Contributors, s.Name)
		if !res.Found || c.Merge == nil {
			res.Value = value
		} else {
			res.Value = c.Merge(res.Value, value)
		}
		res.Found = true

		if c.Merge == nil && c.Done == nil {
			return res
		}
		if c.Done != nil && c.Done(res.Value) {
			return res
		}
	}
	return res
}

// FirstOf returns the result of the first strategy that succeeds.
func FirstOf[T any](input string, strategies ...Strategy[T]) (T, bool) {
	res := New(strategies...).Run(input)
	return res.Value, res.Found
}
