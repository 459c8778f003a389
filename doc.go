// Package frontpanel solves a small family of grid puzzles, with the
// wire-crossing geometry engine at its heart.
//
// What's inside:
//
//	wire/    — the geometry core: path parsing, unit-step and corner
//	           tracing, strict-interior segment intersection, and the
//	           nearest-crossover / fewest-steps queries
//	render/  — diagnostic character-grid rendering plus an interactive
//	           terminal viewer for wire panels
//	ingest/  — puzzle input files into trimmed, non-empty lines
//	fuel/    — launch fuel mass sums
//	intcode/ — the two-opcode arithmetic machine
//	passwd/  — numeric password range validation
//	cmd/     — the frontpanel CLI tying the solvers together
//
// Every library package is pure and immutable after construction:
// derived data (traces, segments, crossovers) is recomputed on demand,
// so independent queries over the same values need no synchronization.
package frontpanel
