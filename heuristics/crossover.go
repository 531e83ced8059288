package heuristics

import (
	"math/rand"

	"github.com/katalvlaran/rmnkhv/pareto"
)

// CrossoverKind selects IBEA's recombination operator.
type CrossoverKind int

const (
	// UniformCrossover swaps each bit between parents independently with
	// probability 0.5.
	UniformCrossover CrossoverKind = iota
	// NPointCrossover swaps the bits between a fixed number of randomly
	// chosen cut points.
	NPointCrossover
)

// crossover produces two children from parents a and b. pc gates whether
// recombination fires at all for this pair (spec §9's Open Question 2
// resolution): with probability 1-pc the parents pass through unchanged.
// nPoints is only consulted for NPointCrossover.
func crossover(kind CrossoverKind, a, b pareto.Bitstring, pc float64, nPoints int, rng *rand.Rand) (pareto.Bitstring, pareto.Bitstring) {
	if rng.Float64() >= pc {
		return a.Clone(), b.Clone()
	}
	switch kind {
	case NPointCrossover:
		return nPointCrossover(a, b, nPoints, rng)
	default:
		return uniformCrossover(a, b, rng)
	}
}

func uniformCrossover(a, b pareto.Bitstring, rng *rand.Rand) (pareto.Bitstring, pareto.Bitstring) {
	n := a.Len()
	childA := pareto.NewBitstring(n)
	childB := pareto.NewBitstring(n)
	for i := 0; i < n; i++ {
		if rng.Float64() < 0.5 {
			childA.Set(i, a.Get(i))
			childB.Set(i, b.Get(i))
		} else {
			childA.Set(i, b.Get(i))
			childB.Set(i, a.Get(i))
		}
	}
	return childA, childB
}

// nPointCrossover draws k cut points sequentially per spec §4.6: the
// first point is uniform in [0, n-1], and each subsequent point is
// uniform in [previous point, n-1]. This admits repeats (a cut point
// drawn equal to the last one is a zero-width segment, so that
// crossing has no effect), unlike a conventional distinct-sorted-points
// scheme. Segments alternate which parent childA copies from, starting
// with a; childB always takes the complementary parent.
func nPointCrossover(a, b pareto.Bitstring, k int, rng *rand.Rand) (pareto.Bitstring, pareto.Bitstring) {
	n := a.Len()
	childA := pareto.NewBitstring(n)
	childB := pareto.NewBitstring(n)

	if k <= 0 || n < 2 {
		for i := 0; i < n; i++ {
			childA.Set(i, a.Get(i))
			childB.Set(i, b.Get(i))
		}
		return childA, childB
	}

	points := make([]int, k)
	prev := 0
	for i := 0; i < k; i++ {
		points[i] = prev + rng.Intn(n-prev)
		prev = points[i]
	}

	fromA := true
	pIdx := 0
	for i := 0; i < n; i++ {
		for pIdx < len(points) && points[pIdx] == i {
			fromA = !fromA
			pIdx++
		}
		if fromA {
			childA.Set(i, a.Get(i))
			childB.Set(i, b.Get(i))
		} else {
			childA.Set(i, b.Get(i))
			childB.Set(i, a.Get(i))
		}
	}
	return childA, childB
}
