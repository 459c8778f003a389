package render

import (
	"errors"
	"fmt"
	"strings"

	"frontpanel/wire"
)

// ErrGridTooLarge indicates the panel's bounding box holds more cells
// than Options.MaxCells allows.
var ErrGridTooLarge = errors.New("render: panel bounding box exceeds cell limit")

// Options selects the marker runes and framing of a rendered grid.
type Options struct {
	// Horizontal and Vertical mark cells on a run of that orientation.
	Horizontal rune
	Vertical   rune
	// Corner marks segment endpoints, Cross marks crossovers,
	// OriginMark marks (0,0) and Empty fills untouched cells.
	Corner     rune
	Cross      rune
	OriginMark rune
	Empty      rune
	// Axes frames the grid with a bounds line, column digits and row labels.
	Axes bool
	// MaxCells caps width×height of the bounding box; 0 means no cap.
	MaxCells int64
}

// DefaultOptions returns the marker set used by the CLI: '=', '|', '+',
// 'X', 'O', '.', axes on, capped at 250000 cells.
func DefaultOptions() Options {
	return Options{
		Horizontal: '=',
		Vertical:   '|',
		Corner:     '+',
		Cross:      'X',
		OriginMark: 'O',
		Empty:      '.',
		Axes:       true,
		MaxCells:   250_000,
	}
}

// Grid renders the panel into a character grid over its bounding box,
// rows top (highest Y) first. Marker precedence at a cell: origin,
// crossover, corner, wire run, empty.
// Returns ErrGridTooLarge when the box exceeds opts.MaxCells.
func Grid(p wire.Panel, opts Options) (string, error) {
	lo, hi := p.Bounds()
	width := hi.X - lo.X + 1
	height := hi.Y - lo.Y + 1
	if opts.MaxCells > 0 && width*height > opts.MaxCells {
		return "", fmt.Errorf("%dx%d cells: %w", width, height, ErrGridTooLarge)
	}

	segs := p.A.Segments(wire.Origin)
	segs = append(segs, p.B.Segments(wire.Origin)...)

	cross := make(map[wire.Coord]struct{})
	for _, c := range p.Crossovers() {
		cross[c] = struct{}{}
	}
	corners := make(map[wire.Coord]struct{}, 2*len(segs))
	for _, s := range segs {
		corners[s.A] = struct{}{}
		corners[s.B] = struct{}{}
	}

	var b strings.Builder
	if opts.Axes {
		fmt.Fprintf(&b, "%s -> %s\n", lo, hi)
		writeColumnRuler(&b, lo.X, hi.X)
	}
	for y := hi.Y; y >= lo.Y; y-- {
		if opts.Axes {
			fmt.Fprintf(&b, "%5d ", y)
		}
		for x := lo.X; x <= hi.X; x++ {
			b.WriteRune(cellRune(wire.Coord{X: x, Y: y}, segs, cross, corners, opts))
		}
		b.WriteByte('\n')
	}
	if opts.Axes {
		writeColumnRuler(&b, lo.X, hi.X)
	}
	return b.String(), nil
}

// cellRune picks the marker for one grid cell.
func cellRune(c wire.Coord, segs []wire.Segment, cross, corners map[wire.Coord]struct{}, opts Options) rune {
	if c == wire.Origin {
		return opts.OriginMark
	}
	if _, ok := cross[c]; ok {
		return opts.Cross
	}
	if _, ok := corners[c]; ok {
		return opts.Corner
	}
	for _, s := range segs {
		if !s.OnInterval(c) {
			continue
		}
		if s.Orientation() == wire.Vertical {
			return opts.Vertical
		}
		return opts.Horizontal
	}
	return opts.Empty
}

// writeColumnRuler emits the column-digit header row: six leading blanks
// to clear the row labels, then each column's coordinate modulo ten.
func writeColumnRuler(b *strings.Builder, loX, hiX int64) {
	b.WriteString(strings.Repeat(" ", 6))
	for x := loX; x <= hiX; x++ {
		digit := ((x % 10) + 10) % 10
		fmt.Fprintf(b, "%d", digit)
	}
	b.WriteByte('\n')
}
