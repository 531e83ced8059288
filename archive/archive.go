// Package archive maintains a streaming nondominated set of pareto.Solution
// values: an unordered collection that is mutually nondominated in
// objective space, with no two members sharing an identical decision
// vector (spec §3, §4.2).
package archive

import "github.com/katalvlaran/rmnkhv/pareto"

// Archive owns its solutions for the lifetime of the driver that created
// it (spec §5). The zero value is an empty, ready-to-use Archive.
type Archive struct {
	solutions []pareto.Solution
}

// New returns an empty Archive with room for n solutions preallocated.
// n is a hint, not a bound; the archive grows as needed.
func New(n int) *Archive {
	return &Archive{solutions: make([]pareto.Solution, 0, n)}
}

// Len returns the number of solutions currently in the archive.
func (a *Archive) Len() int { return len(a.solutions) }

// Solutions returns a snapshot copy of the archive's members. Mutating the
// returned slice or its elements' backing arrays never affects the
// archive (solutions are cloned on copy, matching the value-semantics
// contract of pareto.Solution.Clone).
//
// Complexity: O(|S|).
func (a *Archive) Solutions() []pareto.Solution {
	out := make([]pareto.Solution, len(a.solutions))
	for i, s := range a.solutions {
		out[i] = s.Clone()
	}
	return out
}

// InsertIfNondominated attempts to insert s into the archive, implementing
// spec §4.2 exactly:
//
//  1. Walk the archive. For each member, classify dominance(s, member).
//  2. Equal: if decisions match, reject. Otherwise keep scanning for a
//     decision-equal match anywhere in the archive; if none exists, the
//     solutions are distinct points sharing an objective vector — insert.
//  3. Dominates: remove the member (swap-with-last, pop) and continue
//     without advancing past the swapped-in element.
//  4. Dominated: reject immediately.
//  5. Incomparable: advance.
//
// It returns true iff s was inserted, leaving the archive mutually
// nondominated with no duplicate decision vectors either way. Order of
// the archive's members is unspecified and may change across calls.
//
// Complexity: O(|S|).
func (a *Archive) InsertIfNondominated(s pareto.Solution) bool {
	inserted, _ := a.InsertTracking(s)
	return inserted
}

// InsertTracking behaves exactly like InsertIfNondominated, additionally
// reporting every member evicted because s dominated it. Callers that
// keep a hypervolume.Engine in sync with the archive need this list:
// each evicted member must be removed from the engine, and s itself
// inserted, so the engine's value always matches the archive's
// contents (spec §2's "every successful archive insertion triggers a
// hypervolume update").
//
// Complexity: O(|S|).
func (a *Archive) InsertTracking(s pareto.Solution) (bool, []pareto.Solution) {
	// Note: since objectives are a pure, deterministic function of the
	// decision vector, two solutions can only share a decision vector when
	// their objectives compare Equal. A single forward walk therefore
	// suffices to implement "scan the rest for a decision-equal match":
	// every member is visited exactly once (removals swap an unchecked
	// element into the current slot and recheck it), so a later Equal
	// member with a matching decision is still caught before insertion.
	var removed []pareto.Solution
	i := 0
	for i < len(a.solutions) {
		d := pareto.Compare(s.Objective, a.solutions[i].Objective)
		switch d {
		case pareto.Equal:
			if s.DecisionEqual(a.solutions[i]) {
				return false, nil
			}
			i++
		case pareto.Dominates:
			removed = append(removed, a.solutions[i])
			last := len(a.solutions) - 1
			a.solutions[i] = a.solutions[last]
			a.solutions = a.solutions[:last]
			// do not advance i: the swapped-in element still needs checking
		case pareto.Dominated:
			return false, nil
		default: // Incomparable
			i++
		}
	}

	a.solutions = append(a.solutions, s.Clone())
	return true, removed
}
