package pareto_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rmnkhv/pareto"
	"github.com/stretchr/testify/require"
)

func TestBitstring_SetGetFlip(t *testing.T) {
	b := pareto.NewBitstring(70) // spans two 64-bit words
	require.False(t, b.Get(3))
	b.Set(3, true)
	require.True(t, b.Get(3))
	b.Flip(3)
	require.False(t, b.Get(3))
	b.Set(65, true)
	require.True(t, b.Get(65))
}

func TestBitstring_CloneIsIndependent(t *testing.T) {
	b := pareto.NewBitstring(8)
	b.Set(0, true)
	c := b.Clone()
	c.Set(1, true)
	require.False(t, b.Get(1))
	require.True(t, c.Get(0))
}

func TestBitstring_Equal(t *testing.T) {
	a := pareto.NewBitstring(4)
	b := pareto.NewBitstring(4)
	require.True(t, a.Equal(b))
	a.Set(2, true)
	require.False(t, a.Equal(b))
	b.Set(2, true)
	require.True(t, a.Equal(b))
}

func TestBitstring_Bits(t *testing.T) {
	b := pareto.NewBitstring(3)
	b.Set(0, true)
	b.Set(2, true)
	require.Equal(t, []bool{true, false, true}, b.Bits())
}

func TestBitstring_AllZeroVsAllOne(t *testing.T) {
	zero := pareto.NewBitstring(5)
	one := pareto.NewBitstring(5)
	for i := 0; i < 5; i++ {
		one.Set(i, true)
	}
	require.False(t, zero.Equal(one))
}

func TestBitstring_FlipBernoulli_ZeroProbabilityIsIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b := pareto.Random(16, r)
	c := b.FlipBernoulli(0, r)
	require.True(t, b.Equal(c))
}

func TestBitstring_FlipBernoulli_OneFlipsEverything(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	b := pareto.NewBitstring(10)
	c := b.FlipBernoulli(1, r)
	for i := 0; i < 10; i++ {
		require.True(t, c.Get(i))
	}
}

func TestSolution_DecisionEqualAndClone(t *testing.T) {
	s1 := pareto.Solution{Decision: pareto.NewBitstring(4), Objective: []float64{1, 2}}
	s2 := s1.Clone()
	require.True(t, s1.DecisionEqual(s2))
	s2.Decision.Set(0, true)
	require.False(t, s1.DecisionEqual(s2))
	s2.Objective[0] = 99
	require.Equal(t, 1.0, s1.Objective[0])
}
