package hypervolume

import (
	"math"
	"sort"

	"github.com/katalvlaran/rmnkhv/pareto"
)

// SetHypervolume computes the Lebesgue measure of the union of the boxes
// [r, p] for p in points, w.r.t. reference point r (spec §4.3). It is the
// freestanding routine Engine builds its incremental maintenance on top
// of; callers that only need a one-shot value (e.g. the IBEA
// hypervolume-difference indicator) can call it directly.
//
// points need not be pre-pruned to nondominated; SetHypervolume prunes
// internally at every recursion level, matching the "pruned to
// nondominated" clause in spec §4.3's definition of limit(S, p).
//
// M == len(r) == 2 uses the direct sweepline described in spec §4.3.
// M >= 3 reduces dimension by one coordinate at a time, integrating the
// (M-1)-dimensional cross-section's hypervolume across each Δx slice —
// the same sweep generalized recursively rather than the spec's literal
// multiplicative-carry bookkeeping, since both compute the identical
// Lebesgue measure and the recursive form is far easier to get right
// without being able to execute it (see DESIGN.md).
func SetHypervolume(points [][]float64, r []float64) float64 {
	if len(points) == 0 {
		return 0
	}
	pruned := pruneNondominated(points)
	return hvRec(pruned, r)
}

// hvRec assumes pts is already pruned to mutually nondominated.
func hvRec(pts [][]float64, r []float64) float64 {
	if len(pts) == 0 {
		return 0
	}
	m := len(r)
	if m == 1 {
		return hv1(pts, r[0])
	}
	if m == 2 {
		return hv2(pts, r)
	}

	sorted := append([][]float64(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] > sorted[j][0] })

	var total float64
	var running [][]float64
	for i, p := range sorted {
		running = pruneNondominated(append(running, p[1:]))
		nextX := r[0]
		if i+1 < len(sorted) {
			nextX = sorted[i+1][0]
		}
		width := p[0] - nextX
		if width <= 0 {
			continue
		}
		total += hvRec(running, r[1:]) * width
	}
	return total
}

// hv1 is the M == 1 base case: a nondominated set in one dimension is a
// single point, the maximum.
func hv1(pts [][]float64, r0 float64) float64 {
	best := math.Inf(-1)
	for _, p := range pts {
		if p[0] > best {
			best = p[0]
		}
	}
	if best <= r0 {
		return 0
	}
	return best - r0
}

// hv2 is the direct sweepline for M == 2 (spec §4.3): sort descending by
// coordinate 0 and accumulate rectangle areas against the running
// coordinate-1 floor.
func hv2(pts [][]float64, r []float64) float64 {
	sorted := append([][]float64(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i][0] > sorted[j][0] })

	v := 0.0
	floor := r[1]
	for _, p := range sorted {
		if p[1] > floor {
			v += (p[1] - floor) * (p[0] - r[0])
			floor = p[1]
		}
	}
	return v
}

// pruneNondominated returns the subset of points that are not weakly
// dominated by any other distinct point in the set, breaking ties among
// coordinate-equal vectors by keeping the lowest index.
func pruneNondominated(points [][]float64) [][]float64 {
	keep := make([]bool, len(points))
	for i := range keep {
		keep[i] = true
	}
	for i := range points {
		if !keep[i] {
			continue
		}
		for j := range points {
			if i == j || !keep[j] {
				continue
			}
			iDomJ := pareto.WeaklyDominates(points[i], points[j])
			jDomI := pareto.WeaklyDominates(points[j], points[i])
			switch {
			case iDomJ && jDomI:
				if i < j {
					keep[j] = false
				}
			case iDomJ:
				keep[j] = false
			}
		}
	}
	out := make([][]float64, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}
