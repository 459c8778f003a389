// File: wire/example_test.go
package wire_test

import (
	"fmt"

	"frontpanel/wire"
)

// ExamplePanel demonstrates the two canonical crossover queries over a
// small panel: nearest crossover by Manhattan distance, and the fewest
// combined steps for both wires to reach a common crossover.
func ExamplePanel() {
	p, err := wire.ParsePanel("R8,U5,L5,D3", "U7,R6,D4,L4")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	dist, _ := p.NearestCrossover()
	steps, _ := p.FewestSteps()
	fmt.Println("nearest:", dist)
	fmt.Println("fewest steps:", steps)

	// Output:
	// nearest: 6
	// fewest steps: 30
}

// ExampleWire_Segments shows the compressed corner form of a wire: one
// segment per command, each starting where the previous one ended.
func ExampleWire_Segments() {
	w, err := wire.ParseWire("R8,U5,L5,D3")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	for _, s := range w.Segments(wire.Origin) {
		fmt.Printf("%s %s\n", s.Orientation(), s)
	}

	// Output:
	// Horizontal [(0, 0),(8, 0)]
	// Vertical [(8, 0),(8, 5)]
	// Horizontal [(8, 5),(3, 5)]
	// Vertical [(3, 5),(3, 2)]
}

// ExampleSegment_Intersection shows the strict-interior rule: the two
// runs cross inside both open intervals, so the crossing is reported.
func ExampleSegment_Intersection() {
	h := wire.Segment{A: wire.Coord{X: 0, Y: 3}, B: wire.Coord{X: 6, Y: 3}}
	v := wire.Segment{A: wire.Coord{X: 3, Y: 0}, B: wire.Coord{X: 3, Y: 7}}

	if p, ok := h.Intersection(v); ok {
		fmt.Println("cross at", p)
	}

	// Output:
	// cross at (3, 3)
}
