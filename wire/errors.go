package wire

import "errors"

// Sentinel errors for wire parsing and crossover queries.
var (
	// ErrBadDirection indicates a path token that does not begin with U, D, L or R.
	ErrBadDirection = errors.New("wire: unknown direction letter")
	// ErrBadDistance indicates a path token whose distance is not a non-negative decimal.
	ErrBadDistance = errors.New("wire: malformed distance")
	// ErrNotCrossover indicates a step query for a point the two wires never cross at.
	ErrNotCrossover = errors.New("wire: point is not a crossover")
	// ErrNoCrossover indicates the two wires never cross.
	ErrNoCrossover = errors.New("wire: wires never cross")
)
