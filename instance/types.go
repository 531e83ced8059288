package instance

// Instance is an immutable, loaded ρMNK-landscape: M correlated NK fitness
// landscapes over N-bit decision vectors (spec §3). It is safe for
// concurrent reads from multiple goroutines — nothing in this package
// mutates an Instance after Load returns it, so no locking is required
// (the concurrency-safety requirement of spec §4.1 is satisfied by
// immutability rather than by guarding mutable state, the way
// github.com/katalvlaran/lvlath's core.Graph guards its maps with
// sync.RWMutex; here there is nothing left to guard).
type Instance struct {
	rho float64
	m   int
	n   int
	k   int

	// links[m][i] holds the K+1 distinct bit indices in [0,N) that
	// contribute to position i of objective m, in the order read from
	// the file (order matters: the j-th linked bit occupies bit j of the
	// packed index used to look up tables[m][i]).
	links [][][]int

	// tables[m][i] holds the 2^(K+1) raw contributions for position i of
	// objective m, indexed by the packed value of the linked bits. Values
	// are stored exactly as read, with no normalization (spec §3).
	tables [][][]float64
}

// Rho returns the inter-objective correlation parameter ρ.
func (inst *Instance) Rho() float64 { return inst.rho }

// M returns the number of objectives.
func (inst *Instance) M() int { return inst.m }

// N returns the number of decision bits.
func (inst *Instance) N() int { return inst.n }

// K returns the epistasis degree (K+1 bits contribute to each position).
func (inst *Instance) K() int { return inst.k }
