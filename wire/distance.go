package wire

import "fmt"

// NearestCrossover returns the smallest Manhattan distance from the
// origin to any crossover of a and b.
// Returns ErrNoCrossover when the wires never cross.
func NearestCrossover(a, b *Wire) (int64, error) {
	cross := a.Crossovers(b)
	if len(cross) == 0 {
		return 0, ErrNoCrossover
	}
	best := cross[0].Manhattan()
	for _, p := range cross[1:] {
		if d := p.Manhattan(); d < best {
			best = d
		}
	}
	return best, nil
}

// FewestSteps returns the minimum, over all crossovers of a and b, of the
// two wires' summed step counts to reach the crossover.
// Returns ErrNoCrossover when the wires never cross.
//
// The crossover set is computed once and each wire's trace is walked
// once, recording the first arrival at every crossover, so no per-point
// membership re-validation is paid.
func FewestSteps(a, b *Wire) (int64, error) {
	cross := a.Crossovers(b)
	if len(cross) == 0 {
		return 0, ErrNoCrossover
	}
	want := make(map[Coord]struct{}, len(cross))
	for _, p := range cross {
		want[p] = struct{}{}
	}
	stepsA := firstArrivals(a, want)
	stepsB := firstArrivals(b, want)

	best := int64(-1)
	for p := range want {
		sa, okA := stepsA[p]
		sb, okB := stepsB[p]
		if !okA || !okB {
			panic(fmt.Sprintf("wire: crossover %s never reached on trace", p))
		}
		if total := sa + sb; best < 0 || total < best {
			best = total
		}
	}
	return best, nil
}

// firstArrivals walks w's trace from the origin once and records the step
// count of the first visit to each wanted point, stopping early once all
// wanted points have been seen.
func firstArrivals(w *Wire, want map[Coord]struct{}) map[Coord]int64 {
	got := make(map[Coord]int64, len(want))
	var steps int64
	for p := range w.Trace(Origin) {
		steps++
		if _, wanted := want[p]; !wanted {
			continue
		}
		if _, seen := got[p]; seen {
			continue
		}
		got[p] = steps
		if len(got) == len(want) {
			break
		}
	}
	return got
}
