package wire

// Panel pairs the two wires of a single query. Panels are cheap throwaway
// values: build one per request rather than persisting it.
type Panel struct {
	A, B *Wire
}

// NewPanel pairs two already-built wires.
func NewPanel(a, b *Wire) Panel {
	return Panel{A: a, B: b}
}

// ParsePanel builds a panel from the two raw path lines.
// Either line failing to parse fails the whole panel.
func ParsePanel(first, second string) (Panel, error) {
	a, err := ParseWire(first)
	if err != nil {
		return Panel{}, err
	}
	b, err := ParseWire(second)
	if err != nil {
		return Panel{}, err
	}
	return Panel{A: a, B: b}, nil
}

// Crossovers returns every point where the panel's wires cross.
func (p Panel) Crossovers() []Coord {
	return p.A.Crossovers(p.B)
}

// NearestCrossover returns the smallest Manhattan distance from the
// origin to any crossover; ErrNoCrossover when the wires never cross.
func (p Panel) NearestCrossover() (int64, error) {
	return NearestCrossover(p.A, p.B)
}

// FewestSteps returns the minimum combined step count to any crossover;
// ErrNoCrossover when the wires never cross.
func (p Panel) FewestSteps() (int64, error) {
	return FewestSteps(p.A, p.B)
}

// Bounds returns the bounding box over every corner of both wires and
// the origin, as inclusive min and max corners.
func (p Panel) Bounds() (lo, hi Coord) {
	for _, w := range []*Wire{p.A, p.B} {
		for _, s := range w.Segments(Origin) {
			lo.X = min(lo.X, s.A.X, s.B.X)
			lo.Y = min(lo.Y, s.A.Y, s.B.Y)
			hi.X = max(hi.X, s.A.X, s.B.X)
			hi.Y = max(hi.Y, s.A.Y, s.B.Y)
		}
	}
	return lo, hi
}
