package heuristics

import (
	"math/rand"

	"github.com/katalvlaran/rmnkhv/pareto"
)

// mutateBitFlip returns a mutated copy of bits where each bit is flipped
// independently with probability pm (spec §4.4's "bit-flip mutation"; GSEMO
// always uses the standard 1/n rate, IBEA's rate is configurable).
func mutateBitFlip(bits pareto.Bitstring, pm float64, rng *rand.Rand) pareto.Bitstring {
	return bits.FlipBernoulli(pm, rng)
}
