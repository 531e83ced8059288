package hypervolume_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rmnkhv/hypervolume"
)

// TestEngine_Scenario4 is the literal worked example from spec §8
// scenario 4: with the scenario-3 set and r = (0,0), contribution((4,4))
// = hv({(4,4)}) - hv(limit(S,(4,4))) = 16 - 6 = 10.
func TestEngine_Scenario4(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	for _, p := range [][]float64{{3, 1}, {2, 2}, {1, 3}} {
		e.Insert(p)
	}
	require.Equal(t, 6.0, e.Value())
	require.Equal(t, 10.0, e.Contribution([]float64{4, 4}))
}

func TestEngine_InsertAccumulatesValue(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	c1 := e.Insert([]float64{3, 1})
	require.Equal(t, 3.0, c1)
	require.Equal(t, 3.0, e.Value())

	c2 := e.Insert([]float64{2, 2})
	require.Greater(t, c2, 0.0)
	require.Equal(t, c1+c2, e.Value())

	c3 := e.Insert([]float64{1, 3})
	require.Equal(t, c1+c2+c3, e.Value())
	require.Equal(t, 6.0, e.Value())
}

func TestEngine_InsertWeaklyDominatedContributesNothing(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	e.Insert([]float64{3, 3})
	before := e.Value()

	c := e.Insert([]float64{1, 1})
	require.Equal(t, 0.0, c)
	require.Equal(t, before, e.Value())
	require.Equal(t, 1, e.Len())
}

func TestEngine_InsertRemovesDominatedMembers(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	e.Insert([]float64{3, 1})
	e.Insert([]float64{2, 2})
	e.Insert([]float64{1, 3})
	require.Equal(t, 3, e.Len())

	e.Insert([]float64{3, 3})
	require.Equal(t, 1, e.Len())
	require.Equal(t, 9.0, e.Value())
}

func TestEngine_RemoveRestoresPriorValue(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	e.Insert([]float64{3, 1})
	afterFirst := e.Value()
	e.Insert([]float64{2, 2})
	e.Insert([]float64{1, 3})

	c := e.Remove([]float64{1, 3})
	require.Greater(t, c, 0.0)
	e.Remove([]float64{2, 2})
	require.Equal(t, afterFirst, e.Value())
}

func TestEngine_RemoveAbsentReturnsSentinel(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	e.Insert([]float64{3, 1})
	require.Equal(t, hypervolume.Absent, e.Remove([]float64{9, 9}))
	require.Equal(t, 1, e.Len())
}

func TestEngine_RemoveThenReinsertIsIdempotentOnValue(t *testing.T) {
	e := hypervolume.NewEngine([]float64{0, 0})
	e.Insert([]float64{3, 1})
	e.Insert([]float64{2, 2})
	e.Insert([]float64{1, 3})
	v := e.Value()

	c := e.Remove([]float64{2, 2})
	e.Insert([]float64{2, 2})
	require.InDelta(t, v, e.Value(), 1e-9)
	_ = c
}
