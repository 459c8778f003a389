package wire

import (
	"fmt"
	"iter"
	"strconv"
)

// Command is one parsed move: a direction plus a non-negative distance.
// Commands are immutable values once parsed.
type Command struct {
	Dir  Direction
	Dist int64
}

// ParseCommand parses a single path token such as "R8": one direction
// letter immediately followed by a decimal non-negative integer.
// Parsing is all-or-nothing; a bad letter fails with ErrBadDirection and
// a bad distance with ErrBadDistance, both wrapped with the token.
func ParseCommand(token string) (Command, error) {
	if token == "" {
		return Command{}, fmt.Errorf("empty token: %w", ErrBadDirection)
	}
	dir, err := ParseDirection(token[0])
	if err != nil {
		return Command{}, fmt.Errorf("token %q: %w", token, err)
	}
	dist, err := strconv.ParseUint(token[1:], 10, 63)
	if err != nil {
		return Command{}, fmt.Errorf("token %q: %w", token, ErrBadDistance)
	}
	return Command{Dir: dir, Dist: int64(dist)}, nil
}

// String renders the command back into token form, e.g. "U32".
func (c Command) String() string {
	return fmt.Sprintf("%s%d", c.Dir, c.Dist)
}

// End returns the position reached after carrying out the whole command
// from start, in O(1), without enumerating intermediate points.
func (c Command) End(start Coord) Coord {
	d := c.Dir.Delta()
	return Coord{X: start.X + d.X*c.Dist, Y: start.Y + d.Y*c.Dist}
}

// Coords yields every unit position visited while carrying out the
// command from start, in traversal order: start excluded, end included.
// The sequence is finite and recomputed from scratch on every range-over;
// no cursor state survives between invocations, so a Command may be
// ranged repeatedly and from multiple goroutines.
func (c Command) Coords(start Coord) iter.Seq[Coord] {
	d := c.Dir.Delta()
	return func(yield func(Coord) bool) {
		cur := start
		for i := int64(0); i < c.Dist; i++ {
			cur = cur.Add(d)
			if !yield(cur) {
				return
			}
		}
	}
}
