package instance

// Sigma packs the K+1 bits of x named by links into an integer, with the
// j-th linked bit occupying bit j (spec §3, §4.1):
//
//	σ = Σⱼ x[links[j]] · 2^j
//
// Sigma is exported as a standalone helper so the packing rule itself is
// unit-testable in isolation from table lookups (spec §8 scenario 1).
//
// Complexity: O(len(links)).
func Sigma(links []int, x []bool) int {
	sigma := 0
	for j, bit := range links {
		if x[bit] {
			sigma |= 1 << uint(j)
		}
	}
	return sigma
}

// Evaluate returns the M-vector objective value of the bitstring x:
//
//	y[m] = (1/N) Σᵢ tables[m][i][σ(m,x,i)]
//
// Evaluate is pure and safe for concurrent use across goroutines sharing
// the same *Instance (spec §4.1). Callers must pass x of length N; no
// bounds check is performed beyond what Sigma's indexing implies, since
// every public driver in this module constructs x from the Instance's own
// N via pareto.Bitstring.
//
// Complexity: O(M·N).
func (inst *Instance) Evaluate(x []bool) []float64 {
	y := make([]float64, inst.m)
	invN := 1.0 / float64(inst.n)
	for mm := 0; mm < inst.m; mm++ {
		var sum float64
		for i := 0; i < inst.n; i++ {
			sigma := Sigma(inst.links[mm][i], x)
			sum += inst.tables[mm][i][sigma]
		}
		y[mm] = sum * invN
	}
	return y
}
