// Package fuel computes launch fuel requirements from module masses:
// mass/3 - 2 per module, optionally compounded for the fuel's own mass.
//
// Errors:
//
//   - ErrBadMass: an input line is not a non-negative decimal integer.
package fuel

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrBadMass indicates a mass line that is not a non-negative decimal.
var ErrBadMass = errors.New("fuel: malformed mass")

// Required returns the fuel for a single module: mass/3 - 2, floored
// at zero for very light modules.
func Required(mass int64) int64 {
	f := mass/3 - 2
	if f < 0 {
		return 0
	}
	return f
}

// TotalRequired compounds Required over the fuel's own mass until the
// added fuel reaches zero.
func TotalRequired(mass int64) int64 {
	var total int64
	for f := Required(mass); f > 0; f = Required(f) {
		total += f
	}
	return total
}

// SumRequired parses each line as a module mass and sums Required.
// The first malformed line fails the whole sum with ErrBadMass.
func SumRequired(lines []string) (int64, error) {
	return sum(lines, Required)
}

// SumTotal parses each line as a module mass and sums TotalRequired.
func SumTotal(lines []string) (int64, error) {
	return sum(lines, TotalRequired)
}

func sum(lines []string, per func(int64) int64) (int64, error) {
	var total int64
	for _, line := range lines {
		mass, err := strconv.ParseUint(line, 10, 63)
		if err != nil {
			return 0, fmt.Errorf("line %q: %w", line, ErrBadMass)
		}
		total += per(int64(mass))
	}
	return total, nil
}
