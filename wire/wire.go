package wire

import (
	"iter"
	"slices"
	"strings"
)

// Wire is an ordered command sequence describing one routed wire.
// A Wire is immutable after construction; every derived structure
// (traces, segments, crossovers) is recomputed on demand.
type Wire struct {
	cmds []Command
}

// NewWire builds a Wire from an explicit command list.
// The slice is copied, so later mutation of cmds cannot leak in.
func NewWire(cmds []Command) *Wire {
	return &Wire{cmds: slices.Clone(cmds)}
}

// ParseWire parses a comma-separated list of path tokens,
// e.g. "R8,U5,L5,D3". Parsing is all-or-nothing: the first malformed
// token fails the whole wire and no partial Wire is ever produced.
func ParseWire(line string) (*Wire, error) {
	parts := strings.Split(line, ",")
	cmds := make([]Command, 0, len(parts))
	for _, tok := range parts {
		cmd, err := ParseCommand(strings.TrimSpace(tok))
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return &Wire{cmds: cmds}, nil
}

// Commands returns a copy of the wire's command list.
func (w *Wire) Commands() []Command {
	return slices.Clone(w.cmds)
}

// String renders the wire back into comma-separated token form.
func (w *Wire) String() string {
	tokens := make([]string, len(w.cmds))
	for i, cmd := range w.cmds {
		tokens[i] = cmd.String()
	}
	return strings.Join(tokens, ",")
}

// Trace yields every unit position the wire visits when laid out from
// start: the per-command sequences concatenated in order, start excluded.
// Like Command.Coords, the sequence is lazy, finite and recomputed per
// range-over with no retained cursor state.
func (w *Wire) Trace(start Coord) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		cur := start
		for _, cmd := range w.cmds {
			for p := range cmd.Coords(cur) {
				if !yield(p) {
					return
				}
			}
			cur = cmd.End(cur)
		}
	}
}

// Segments returns the wire's compressed corner form: one Segment per
// command, each computed in O(1) from the running cursor. Consecutive
// segments chain, segs[i].B == segs[i+1].A. Intersection testing
// operates on this form rather than on unit positions.
func (w *Wire) Segments(start Coord) []Segment {
	segs := make([]Segment, 0, len(w.cmds))
	cur := start
	for _, cmd := range w.cmds {
		end := cmd.End(cur)
		segs = append(segs, Segment{A: cur, B: end})
		cur = end
	}
	return segs
}
