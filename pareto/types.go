// Package pareto defines the Solution value object, the packed Bitstring
// decision representation, and the dominance relations over objective
// vectors shared by archive, hypervolume and heuristics.
//
// Design goals:
//   - Compact decisions: Bitstring stores bits packed into 64-bit words
//     (spec §9: "a compact bitset representation ... is expected"), so
//     archives and frontiers can copy decisions cheaply.
//   - Deterministic dominance: Compare/WeaklyDominates use fixed-order,
//     allocation-free componentwise loops (no sorting, no maps).
//   - Maximization only: every relation in this package assumes larger
//     objective components are better, per spec §3.
package pareto

import "errors"

// ErrDimensionMismatch indicates two objective vectors (or an objective
// vector and a reference point) have different lengths.
var ErrDimensionMismatch = errors.New("pareto: dimension mismatch")

// Dominance classifies the relation between two maximization objective
// vectors a and b.
type Dominance int

const (
	// Incomparable means neither vector weakly dominates the other.
	Incomparable Dominance = iota
	// Dominates means a ≥ b componentwise and a ≠ b.
	Dominates
	// Dominated means b dominates a.
	Dominated
	// Equal means a = b componentwise.
	Equal
)

// String renders d for diagnostics and test failure messages.
func (d Dominance) String() string {
	switch d {
	case Dominates:
		return "Dominates"
	case Dominated:
		return "Dominated"
	case Equal:
		return "Equal"
	default:
		return "Incomparable"
	}
}

// Solution bundles a decision bitstring with its evaluated objective
// vector. Objective is derived from Decision via an instance evaluator
// and is never mutated independently of it (spec §3).
type Solution struct {
	Decision  Bitstring
	Objective []float64
}

// DecisionEqual reports whether s and other carry identical decision
// bitstrings. This is the stronger predicate (spec §3) used to deduplicate
// within the archive, distinct from objective-space Equal dominance.
func (s Solution) DecisionEqual(other Solution) bool {
	return s.Decision.Equal(other.Decision)
}

// Clone returns a deep copy of s: an independent Bitstring and a fresh
// Objective slice. Archives and frontiers hold independent copies of
// their members (spec §5), so every accepted insertion clones first.
func (s Solution) Clone() Solution {
	obj := make([]float64, len(s.Objective))
	copy(obj, s.Objective)
	return Solution{Decision: s.Decision.Clone(), Objective: obj}
}
