package hypervolume

import "github.com/katalvlaran/rmnkhv/pareto"

// Contribution returns the exclusive hypervolume p would add if inserted
// into the engine's current set: hv({p}) - hv(limit(S, p)), per spec
// §4.3. It does not mutate the engine. Every clamped point lies inside
// p's box, so this value is always >= 0, and is exactly 0 when p is
// weakly dominated by an existing member.
func (e *Engine) Contribution(p []float64) float64 {
	return e.contributionAgainst(p, e.points)
}

// contributionAgainst computes hv({p}) - hv(limit(set, p)) against an
// explicit candidate set, letting Remove evaluate p's marginal
// contribution against the set with p excluded.
func (e *Engine) contributionAgainst(p []float64, set [][]float64) float64 {
	boxVolume := 1.0
	for i := range p {
		boxVolume *= p[i] - e.r[i]
	}
	limited := make([][]float64, len(set))
	for i, q := range set {
		limited[i] = pareto.Clamp(q, p)
	}
	return boxVolume - SetHypervolume(limited, e.r)
}

// Insert adds p to the engine's set if it contributes any hypervolume,
// removing any existing members weakly dominated by p, and returns the
// contribution added to Value(). A p that adds nothing (because it is
// weakly dominated by an existing member) leaves the engine unchanged
// and returns 0.
func (e *Engine) Insert(p []float64) float64 {
	c := e.contributionAgainst(p, e.points)
	if c != 0 {
		e.points = insertWeaklyNondominated(e.points, p)
		e.value += c
	}
	return c
}

// Remove deletes p from the engine's set and subtracts its marginal
// contribution from Value(), returning that contribution. If p is not
// present (compared by exact coordinate equality, per spec §4.3's
// numerics note that no tolerance is defined), Remove leaves the engine
// unchanged and returns Absent.
func (e *Engine) Remove(p []float64) float64 {
	idx := -1
	for i, q := range e.points {
		if exactEqual(q, p) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Absent
	}

	rest := make([][]float64, 0, len(e.points)-1)
	rest = append(rest, e.points[:idx]...)
	rest = append(rest, e.points[idx+1:]...)

	c := e.contributionAgainst(p, rest)
	e.points = rest
	e.value -= c
	return c
}

// insertWeaklyNondominated drops members of points weakly dominated by p
// and appends a copy of p.
func insertWeaklyNondominated(points [][]float64, p []float64) [][]float64 {
	kept := make([][]float64, 0, len(points)+1)
	for _, q := range points {
		if !pareto.WeaklyDominates(p, q) {
			kept = append(kept, q)
		}
	}
	return append(kept, append([]float64(nil), p...))
}

func exactEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
