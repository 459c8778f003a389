package wire

import (
	"fmt"
	"slices"
)

// Crossovers finds every point where w and other cross when both are laid
// out from the origin: all-pairs strict-interior intersection over the two
// corner-segment sequences. Cost is O(Sw×So) segment pairs, far below a
// pairwise comparison of every visited unit position.
//
// The origin can never appear in the result: it is an endpoint of both
// wires' first segments, and Intersection excludes endpoints.
func (w *Wire) Crossovers(other *Wire) []Coord {
	ws := w.Segments(Origin)
	os := other.Segments(Origin)
	var found []Coord
	for _, sa := range ws {
		for _, sb := range os {
			if p, ok := sa.Intersection(sb); ok {
				found = append(found, p)
			}
		}
	}
	return found
}

// StepsTo counts the unit steps w takes from the origin until it reaches
// p, the first step away from the origin counting as 1. p must be a
// genuine crossover between w and other: membership is re-checked against
// Crossovers and anything else fails with ErrNotCrossover rather than
// being silently corrected.
//
// The membership check costs O(Sw×So) per call; callers reducing over the
// whole crossover set should use FewestSteps instead of looping here.
func (w *Wire) StepsTo(other *Wire, p Coord) (int64, error) {
	if !slices.Contains(w.Crossovers(other), p) {
		return 0, fmt.Errorf("point %s: %w", p, ErrNotCrossover)
	}
	var steps int64
	for q := range w.Trace(Origin) {
		steps++
		if q == p {
			return steps, nil
		}
	}
	// A validated crossover lies strictly inside one of w's segments, so
	// the trace must pass through it.
	panic(fmt.Sprintf("wire: crossover %s never reached on trace", p))
}
