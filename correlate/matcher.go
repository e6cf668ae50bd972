// Copyright 2025 The GeoPair Authors
// SPDX-License-Identifier: Apache-2.0

package correlate

import (
	"fmt"
	"sort"
	"strings"
)

// Match is a committed one-to-one correspondence between a stream-A
// and a stream-B reading, with the great-circle distance between them.
type Match struct {
	ID1            int     `json:"id1"`
	ID2            int     `json:"id2"`
	DistanceMeters float64 `json:"distance_meters"`
}

// Strategy assigns stream-A readings to stream-B readings. Every
// implementation must be one-to-one on both sides, only emit matches
// within the threshold, and return the result sorted by ID1 ascending.
type Strategy interface {
	// Name identifies the strategy for CLI selection and reporting.
	Name() string
	Match(a, b []Reading, thresholdMeters float64) []Match
}

// GreedyNearestNeighbor is the first-come nearest-neighbor strategy:
// stream A is walked in input order, and each reading irrevocably
// claims the closest still-unclaimed B reading within the threshold.
//
// When two A readings compete for the same B reading, the one earlier
// in A wins, even if the later one is geometrically closer. This is a
// deliberate, order-dependent approximation, not a minimum-weight
// bipartite assignment; downstream output depends on it staying that
// way. Ties at equal distance resolve to the B reading seen first.
type GreedyNearestNeighbor struct {
	// Progress, when set, is invoked after each stream-A reading has
	// been processed. Used by the CLI to drive a progress bar.
	Progress func(done, total int)
}

func (g *GreedyNearestNeighbor) Name() string { return "greedy" }

func (g *GreedyNearestNeighbor) Match(a, b []Reading, thresholdMeters float64) []Match {
	matches := make([]Match, 0, min(len(a), len(b)))

	if thresholdMeters <= 0 {
		return matches
	}

	used := make([]bool, len(b))

	for i := range a {
		bestIdx := -1
		bestDist := 0.0

		for j := range b {
			if used[j] {
				continue
			}

			d := a[i].Point.HaversineDistance(&b[j].Point)
			if d > thresholdMeters {
				continue
			}

			if bestIdx == -1 || d < bestDist {
				bestIdx = j
				bestDist = d
			}
		}

		if bestIdx >= 0 {
			used[bestIdx] = true
			matches = append(matches, Match{
				ID1:            a[i].ID,
				ID2:            b[bestIdx].ID,
				DistanceMeters: bestDist,
			})
		}

		if g.Progress != nil {
			g.Progress(i+1, len(a))
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].ID1 < matches[j].ID1
	})

	return matches
}

// MatchOneToOneClosest runs the greedy first-come nearest-neighbor
// strategy. This is the default correlation entry point.
func MatchOneToOneClosest(a, b []Reading, thresholdMeters float64) []Match {
	return (&GreedyNearestNeighbor{}).Match(a, b, thresholdMeters)
}

// StrategyByName resolves a strategy by its CLI name. Alternate
// strategies (e.g. an optimal assignment) must be registered here so
// that a behaviour change is always an explicit, named choice.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case "greedy":
		return &GreedyNearestNeighbor{}, nil
	default:
		return nil, fmt.Errorf("unknown matching strategy %q (valid: %s)",
			name, strings.Join(StrategyNames(), ", "))
	}
}

// StrategyNames lists the registered strategy names.
func StrategyNames() []string {
	return []string{"greedy"}
}
