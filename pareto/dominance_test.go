package pareto_test

import (
	"testing"

	"github.com/katalvlaran/rmnkhv/pareto"
	"github.com/stretchr/testify/require"
)

func TestCompare_Dominates(t *testing.T) {
	require.Equal(t, pareto.Dominates, pareto.Compare([]float64{3, 3}, []float64{2, 3}))
	require.Equal(t, pareto.Dominated, pareto.Compare([]float64{2, 3}, []float64{3, 3}))
}

func TestCompare_Equal(t *testing.T) {
	require.Equal(t, pareto.Equal, pareto.Compare([]float64{1, 2}, []float64{1, 2}))
}

func TestCompare_Incomparable(t *testing.T) {
	require.Equal(t, pareto.Incomparable, pareto.Compare([]float64{1, 2}, []float64{2, 1}))
}

// TestCompare_Symmetry checks the invariant from spec §8: dominance(a,b) =
// Dominates ⇔ dominance(b,a) = Dominated.
func TestCompare_Symmetry(t *testing.T) {
	cases := [][2][]float64{
		{{3, 1}, {2, 2}},
		{{1, 3}, {2, 2}},
		{{5, 5}, {5, 5}},
		{{1, 1}, {1, 1}},
	}
	for _, c := range cases {
		a, b := c[0], c[1]
		d := pareto.Compare(a, b)
		rev := pareto.Compare(b, a)
		switch d {
		case pareto.Dominates:
			require.Equal(t, pareto.Dominated, rev)
		case pareto.Dominated:
			require.Equal(t, pareto.Dominates, rev)
		case pareto.Equal:
			require.Equal(t, pareto.Equal, rev)
		case pareto.Incomparable:
			require.Equal(t, pareto.Incomparable, rev)
		}
	}
}

func TestWeaklyDominates(t *testing.T) {
	require.True(t, pareto.WeaklyDominates([]float64{3, 3}, []float64{3, 3}))
	require.True(t, pareto.WeaklyDominates([]float64{4, 3}, []float64{3, 3}))
	require.False(t, pareto.WeaklyDominates([]float64{2, 3}, []float64{3, 3}))
}

func TestClamp(t *testing.T) {
	require.Equal(t, []float64{2, 1}, pareto.Clamp([]float64{4, 1}, []float64{2, 5}))
}

func TestCompare_PanicsOnMismatch(t *testing.T) {
	require.Panics(t, func() { pareto.Compare([]float64{1}, []float64{1, 2}) })
}
