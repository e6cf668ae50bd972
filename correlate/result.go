// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package correlate

// Result bundles everything one correlation run produced: the cleaned
// inputs, the committed matches, and the parameters used. It is the
// unit the review server holds in memory.
type Result struct {
	A          []Reading `json:"a"`
	B          []Reading `json:"b"`
	Matches    []Match   `json:"matches"`
	ThresholdM float64   `json:"threshold_meters"`
	Strategy   string    `json:"strategy"`
}

// Run correlates two cleaned reading sets with the given strategy and
// records the outcome.
func Run(strategy Strategy, a, b []Reading, thresholdMeters float64) *Result {
	return &Result{
		A:          a,
		B:          b,
		Matches:    strategy.Match(a, b, thresholdMeters),
		ThresholdM: thresholdMeters,
		Strategy:   strategy.Name(),
	}
}

// UnmatchedA returns the cleaned stream-A readings that produced no match.
func (r *Result) UnmatchedA() []Reading {
	return unmatched(r.A, r.Matches, func(m Match) int { return m.ID1 })
}

// UnmatchedB returns the cleaned stream-B readings that were never claimed.
func (r *Result) UnmatchedB() []Reading {
	return unmatched(r.B, r.Matches, func(m Match) int { return m.ID2 })
}

func unmatched(readings []Reading, matches []Match, id func(Match) int) []Reading {
	taken := make(map[int]bool, len(matches))
	for _, m := range matches {
		taken[id(m)] = true
	}

	out := make([]Reading, 0, len(readings))

	for _, r := range readings {
		if !taken[r.ID] {
			out = append(out, r)
		}
	}

	return out
}
