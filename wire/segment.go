package wire

import "fmt"

// Segment is one uninterrupted straight run of a wire, bounded by the two
// corner coordinates A and B.
type Segment struct {
	A, B Coord
}

// String formats the segment as "[(x1, y1),(x2, y2)]".
func (s Segment) String() string {
	return fmt.Sprintf("[%s,%s]", s.A, s.B)
}

// Orientation reports whether the run is Vertical (shared X, checked
// first so zero-length runs resolve Vertical) or Horizontal (shared Y).
// Segments built from axis-aligned commands always satisfy one of the
// two; anything else is a contract violation and panics.
func (s Segment) Orientation() Orientation {
	switch {
	case s.A.X == s.B.X:
		return Vertical
	case s.A.Y == s.B.Y:
		return Horizontal
	}
	panic(fmt.Sprintf("wire: segment %s is not axis-aligned", s))
}

// Intersection returns the point where s and o cross, if any. Only a
// Horizontal and a Vertical run can cross, and the candidate point
// (vertical's X, horizontal's Y) counts only when it lies strictly inside
// the open interval of both runs. Endpoints are excluded, so runs that
// merely touch at a corner report nothing, as do parallel or collinear
// overlapping runs. The result is identical regardless of call order.
func (s Segment) Intersection(o Segment) (Coord, bool) {
	so, oo := s.Orientation(), o.Orientation()
	if so == oo {
		return Coord{}, false
	}
	h, v := s, o
	if so == Vertical {
		h, v = o, s
	}
	p := Coord{X: v.A.X, Y: h.A.Y}
	if !inOpen(h.A.X, h.B.X, p.X) || !inOpen(v.A.Y, v.B.Y, p.Y) {
		return Coord{}, false
	}
	return p, true
}

// OnInterval reports whether p lies on the run, endpoints included.
// This closed-interval test serves the grid renderer only; crossover
// detection goes through Intersection.
func (s Segment) OnInterval(p Coord) bool {
	if s.Orientation() == Vertical {
		return s.A.X == p.X && inClosed(s.A.Y, s.B.Y, p.Y)
	}
	return s.A.Y == p.Y && inClosed(s.A.X, s.B.X, p.X)
}

// inOpen reports a < v < b after normalizing endpoint order.
func inOpen(a, b, v int64) bool {
	if a > b {
		a, b = b, a
	}
	return v > a && v < b
}

// inClosed reports a <= v <= b after normalizing endpoint order.
func inClosed(a, b, v int64) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
