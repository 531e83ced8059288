package heuristics

import (
	"github.com/katalvlaran/rmnkhv/anytime"
	"github.com/katalvlaran/rmnkhv/archive"
	"github.com/katalvlaran/rmnkhv/instance"
	"github.com/katalvlaran/rmnkhv/rng"
)

// RunGSEMO runs the Global Simple Evolutionary Multi-objective Optimizer
// (spec §4.4): starting from a single random solution, it repeatedly
// picks a parent uniformly from the archive, applies standard bit-flip
// mutation (each bit flips independently with probability 1/N), and
// offers the result to the archive. It stops after cfg.MaxEvaluations
// offspring evaluations.
//
// An anytime row is appended for the initial solution (evaluation 0)
// and again every time an offspring is successfully inserted into the
// archive, each row reporting the hypervolume engine's running value
// rather than a value recomputed from scratch.
func RunGSEMO(inst *instance.Instance, cfg GSEMOConfig, rec anytime.Recorder) (*archive.Archive, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := rng.FromSeed(cfg.Seed)
	n := inst.N()
	pm := 1.0 / float64(n)

	arc := archive.New(1)
	engine := newEngine(cfg.Reference)

	seed := evaluate(inst, randomBitstring(inst, r))
	inserted, removed := arc.InsertTracking(seed)
	applyInsertion(engine, inserted, removed, seed)
	logHV(rec, 0, -1, engine)

	members := arc.Solutions()
	for evalCount := 1; evalCount <= cfg.MaxEvaluations; evalCount++ {
		parent := members[r.Intn(len(members))]
		child := mutateBitFlip(parent.Decision, pm, r)
		candidate := evaluate(inst, child)

		inserted, removed := arc.InsertTracking(candidate)
		applyInsertion(engine, inserted, removed, candidate)
		if inserted {
			logHV(rec, evalCount, -1, engine)
			members = arc.Solutions()
		}
	}

	return arc, nil
}
