package heuristics

import (
	"math"

	"github.com/katalvlaran/rmnkhv/hypervolume"
	"github.com/katalvlaran/rmnkhv/pareto"
)

// IndicatorKind selects IBEA's binary quality indicator (spec §4.6).
type IndicatorKind int

const (
	// EpsIndicator is the additive epsilon indicator.
	EpsIndicator IndicatorKind = iota
	// IHDIndicator is the hypervolume-difference indicator.
	IHDIndicator
)

// epsIndicator is the additive epsilon indicator for maximization: the
// smallest eps such that a, shifted up by eps in every objective,
// weakly dominates b, i.e. max over m of b[m] - a[m]. Smaller (more
// negative) means a is better relative to b.
func epsIndicator(a, b []float64) float64 {
	best := math.Inf(-1)
	for i := 0; i < len(a); i++ {
		if d := b[i] - a[i]; d > best {
			best = d
		}
	}
	return best
}

// ihdIndicator is the hypervolume-difference indicator w.r.t. reference
// r (spec §4.6): when a weakly dominates b, it is the hypervolume b
// would lose by standing alone, hv({b}) - hv({a}); otherwise it is the
// hypervolume a alone is missing relative to the pair, hv({a,b}) -
// hv({a}). Smaller (more negative) means a is better relative to b.
func ihdIndicator(a, b, r []float64) float64 {
	hvA := hypervolume.SetHypervolume([][]float64{a}, r)
	if pareto.WeaklyDominates(a, b) {
		hvB := hypervolume.SetHypervolume([][]float64{b}, r)
		return hvB - hvA
	}
	hvAB := hypervolume.SetHypervolume([][]float64{a, b}, r)
	return hvAB - hvA
}

// indicatorValue dispatches to the configured indicator.
func indicatorValue(kind IndicatorKind, a, b, r []float64) float64 {
	if kind == IHDIndicator {
		return ihdIndicator(a, b, r)
	}
	return epsIndicator(a, b)
}
