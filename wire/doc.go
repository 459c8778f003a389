// Package wire reconstructs axis-aligned wire paths on an integer grid
// and answers crossover queries between two wires sharing an origin.
//
// What:
//
//   - ParseCommand / ParseWire turn path text ("R8,U5,L5,D3") into
//     immutable Command lists.
//   - Wire.Trace yields every unit position a wire visits; Wire.Segments
//     yields the compressed corner form used for intersection testing.
//   - Segment exposes orientation plus strict-interior intersection and
//     closed-interval containment tests.
//   - Wire.Crossovers collects every point where two wires cross;
//     NearestCrossover and FewestSteps reduce that set to the two
//     canonical answers.
//   - Panel bundles two wires for a single query.
//
// Why:
//
//   - Circuit panels: locate where two routed wires collide.
//   - Grid puzzles: closest-intersection and fewest-steps metrics.
//
// Complexity:
//
//   - Crossovers:       O(Sa×Sb) segment pairs (S = command count),
//     independent of total path length.
//   - NearestCrossover: O(Sa×Sb).
//   - FewestSteps:      O(Sa×Sb + La + Lb) (L = path length in unit steps).
//   - StepsTo:          O(Sa×Sb + L) per point; it re-validates membership,
//     so prefer FewestSteps when reducing over the whole set.
//
// Errors:
//
//   - ErrBadDirection: path token does not start with U, D, L or R.
//   - ErrBadDistance: token distance is not a non-negative decimal.
//   - ErrNotCrossover: step query on a point the wires never cross at.
//   - ErrNoCrossover: the two wires never cross.
//
// Everything is immutable after construction and recomputed on demand, so
// independent queries over the same wires may run concurrently without
// synchronization.
package wire
