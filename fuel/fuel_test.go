package fuel_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"frontpanel/fuel"
)

func TestRequired(t *testing.T) {
	cases := []struct {
		mass int64
		want int64
	}{
		{12, 2},
		{14, 2},
		{1969, 654},
		{100756, 33583},
		{2, 0},
		{0, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, fuel.Required(tc.mass), "mass %d", tc.mass)
	}
}

func TestTotalRequired(t *testing.T) {
	cases := []struct {
		mass int64
		want int64
	}{
		{14, 2},
		{1969, 966},
		{100756, 50346},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, fuel.TotalRequired(tc.mass), "mass %d", tc.mass)
	}
}

func TestSumRequired(t *testing.T) {
	got, err := fuel.SumRequired([]string{"12", "14", "1969"})
	require.NoError(t, err)
	require.Equal(t, int64(658), got)
}

func TestSumRequired_BadLine(t *testing.T) {
	_, err := fuel.SumRequired([]string{"12", "heavy", "14"})
	require.ErrorIs(t, err, fuel.ErrBadMass)
}

func TestSumTotal(t *testing.T) {
	got, err := fuel.SumTotal([]string{"14", "1969"})
	require.NoError(t, err)
	require.Equal(t, int64(968), got)
}
