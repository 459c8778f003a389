package wire_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"frontpanel/wire"
)

// The three documented scenario pairs with their expected answers.
var panelScenarios = []struct {
	name        string
	first       string
	second      string
	nearest     int64
	fewestSteps int64
}{
	{
		"Small",
		"R8,U5,L5,D3",
		"U7,R6,D4,L4",
		6,
		30,
	},
	{
		"Medium",
		"R75,D30,R83,U83,L12,D49,R71,U7,L72",
		"U62,R66,U55,R34,D71,R55,D58,R83",
		159,
		610,
	},
	{
		"Large",
		"R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
		"U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
		135,
		410,
	},
}

func TestNearestCrossover(t *testing.T) {
	for _, tc := range panelScenarios {
		t.Run(tc.name, func(t *testing.T) {
			p, err := wire.ParsePanel(tc.first, tc.second)
			require.NoError(t, err)

			got, err := p.NearestCrossover()
			require.NoError(t, err)
			require.Equal(t, tc.nearest, got)
		})
	}
}

func TestFewestSteps(t *testing.T) {
	for _, tc := range panelScenarios {
		t.Run(tc.name, func(t *testing.T) {
			p, err := wire.ParsePanel(tc.first, tc.second)
			require.NoError(t, err)

			got, err := p.FewestSteps()
			require.NoError(t, err)
			require.Equal(t, tc.fewestSteps, got)
		})
	}
}

// TestFewestSteps_MatchesStepsTo cross-checks the single-walk reducer
// against the per-point StepsTo API: the reducer must return the true
// minimum over every crossover, never a non-minimal sum.
func TestFewestSteps_MatchesStepsTo(t *testing.T) {
	p, err := wire.ParsePanel(panelScenarios[0].first, panelScenarios[0].second)
	require.NoError(t, err)

	cross := p.Crossovers()
	require.NotEmpty(t, cross)

	best := int64(-1)
	for _, c := range cross {
		sa, err := p.A.StepsTo(p.B, c)
		require.NoError(t, err)
		sb, err := p.B.StepsTo(p.A, c)
		require.NoError(t, err)
		if total := sa + sb; best < 0 || total < best {
			best = total
		}
	}

	got, err := p.FewestSteps()
	require.NoError(t, err)
	require.Equal(t, best, got)
}

// TestNoCrossover verifies the explicit-absence contract on a pair of
// wires that never cross.
func TestNoCrossover(t *testing.T) {
	p, err := wire.ParsePanel("U5,R5", "D5,L5")
	require.NoError(t, err)

	require.Empty(t, p.Crossovers())

	_, err = p.NearestCrossover()
	require.ErrorIs(t, err, wire.ErrNoCrossover)

	_, err = p.FewestSteps()
	require.ErrorIs(t, err, wire.ErrNoCrossover)
}

func TestPanelBounds(t *testing.T) {
	p, err := wire.ParsePanel("R8,U5,L5,D3", "U7,R6,D4,L4")
	require.NoError(t, err)

	lo, hi := p.Bounds()
	require.Equal(t, wire.Origin, lo)
	require.Equal(t, wire.Coord{X: 8, Y: 7}, hi)
}

// TestPanelBounds_IncludesOrigin keeps the origin inside the box even
// when both wires run into a single quadrant away from it.
func TestPanelBounds_IncludesOrigin(t *testing.T) {
	p, err := wire.ParsePanel("R3,U3", "U2,R4")
	require.NoError(t, err)

	lo, hi := p.Bounds()
	require.Equal(t, wire.Origin, lo)
	require.Equal(t, wire.Coord{X: 4, Y: 3}, hi)
}
