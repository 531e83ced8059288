package heuristics

import (
	"github.com/katalvlaran/rmnkhv/anytime"
	"github.com/katalvlaran/rmnkhv/archive"
	"github.com/katalvlaran/rmnkhv/instance"
	"github.com/katalvlaran/rmnkhv/pareto"
	"github.com/katalvlaran/rmnkhv/rng"
)

// RunPLS runs Pareto Local Search (spec §4.5): it maintains an archive of
// nondominated solutions together with a frontier of archive members
// still unexplored, and repeatedly expands the 1-bit-flip neighborhood
// of a uniformly random frontier member, folding accepted neighbors
// back into the archive and the frontier. It stops when the frontier
// empties or cfg.MaxEvaluations neighbor evaluations have been spent,
// whichever comes first.
//
// ExploreBoth runs as a two-pass restart: the first pass scans each
// expansion with FirstImprovement semantics until the frontier empties
// or the budget runs out; if budget remains once the frontier empties,
// the frontier is re-seeded from the current archive and a second pass
// runs to completion with BestImprovement semantics.
//
// An anytime row is appended for the initial solution and again on
// every neighbor that is successfully inserted into the archive.
func RunPLS(inst *instance.Instance, cfg PLSConfig, rec anytime.Recorder) (*archive.Archive, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := rng.FromSeed(cfg.Seed)
	n := inst.N()

	arc := archive.New(1)
	engine := newEngine(cfg.Reference)

	seed := evaluate(inst, randomBitstring(inst, r))
	evalCount := 0
	inserted, removed := arc.InsertTracking(seed)
	applyInsertion(engine, inserted, removed, seed)
	logHV(rec, evalCount, -1, engine)

	frontier := []pareto.Solution{seed}

	mode := cfg.Exploration
	restarted := cfg.Exploration != ExploreBoth
	if cfg.Exploration == ExploreBoth {
		mode = FirstImprovement
	}

	for len(frontier) > 0 && evalCount < cfg.MaxEvaluations {
		idx := r.Intn(len(frontier))
		current := frontier[idx]
		last := len(frontier) - 1
		frontier[idx] = frontier[last]
		frontier = frontier[:last]

		var stashed []pareto.Solution
		dominatingAccepted := false

	neighborScan:
		for bit := 0; bit < n && evalCount < cfg.MaxEvaluations; bit++ {
			neighbor := current.Decision.Clone()
			neighbor.Flip(bit)
			candidate := evaluate(inst, neighbor)
			evalCount++

			switch classifyNeighbor(cfg.Acceptance, current, candidate) {
			case outcomeAcceptDirect:
				if cfg.Acceptance == Both {
					dominatingAccepted = true
				}
				if inserted, removed := arc.InsertTracking(candidate); inserted {
					applyInsertion(engine, true, removed, candidate)
					frontier = append(frontier, candidate)
					logHV(rec, evalCount, -1, engine)
				}
				if mode == FirstImprovement {
					break neighborScan
				}
			case outcomeStash:
				stashed = append(stashed, candidate)
			}
		}

		// spec §4.5's Both acceptance is a two-phase rule: only the first
		// pass above (direct Dominates accepts) can run while the
		// neighborhood is being scanned. If nothing dominating was found,
		// the stashed nondominating neighbors are replayed and accepted
		// after the fact, as if NonDominating had been the policy all
		// along for this expansion.
		if cfg.Acceptance == Both && !dominatingAccepted {
			for _, candidate := range stashed {
				if inserted, removed := arc.InsertTracking(candidate); inserted {
					applyInsertion(engine, true, removed, candidate)
					frontier = append(frontier, candidate)
					logHV(rec, evalCount, -1, engine)
				}
				if mode == FirstImprovement {
					break
				}
			}
		}

		if len(frontier) == 0 && !restarted && evalCount < cfg.MaxEvaluations {
			frontier = arc.Solutions()
			mode = BestImprovement
			restarted = true
		}
	}

	return arc, nil
}

// neighborOutcome classifies a PLS neighbor against the configured
// Acceptance policy.
type neighborOutcome int

const (
	outcomeReject neighborOutcome = iota
	// outcomeAcceptDirect means the neighbor is accepted immediately.
	outcomeAcceptDirect
	// outcomeStash means the neighbor is nondominating but not dominating;
	// only the Both policy stashes rather than rejecting outright.
	outcomeStash
)

// classifyNeighbor decides whether candidate should be explored further
// relative to its parent, per the configured Acceptance policy (spec
// §4.5).
func classifyNeighbor(policy Acceptance, parent, candidate pareto.Solution) neighborOutcome {
	d := pareto.Compare(candidate.Objective, parent.Objective)
	switch policy {
	case Dominating:
		if d == pareto.Dominates {
			return outcomeAcceptDirect
		}
		return outcomeReject
	case Both:
		if d == pareto.Dominates {
			return outcomeAcceptDirect
		}
		if d != pareto.Dominated {
			return outcomeStash
		}
		return outcomeReject
	default: // NonDominating
		if d != pareto.Dominated {
			return outcomeAcceptDirect
		}
		return outcomeReject
	}
}
