package heuristics

import "math/rand"

// tournamentSelect runs a K-way tournament over indices [0, len(fitness))
// and returns the index of the fittest contestant (highest fitness wins;
// IBEA's fitness is constructed so larger is always better, spec §4.6).
func tournamentSelect(fitness []float64, k int, rng *rand.Rand) int {
	best := rng.Intn(len(fitness))
	for i := 1; i < k; i++ {
		cand := rng.Intn(len(fitness))
		if fitness[cand] > fitness[best] {
			best = cand
		}
	}
	return best
}
