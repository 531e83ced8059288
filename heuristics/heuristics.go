// Package heuristics implements the three search drivers of spec §4.4-4.6
// (GSEMO, PLS, and IBEA) over a ρMNK instance, all sharing the pareto,
// archive, and hypervolume packages for their objective-space bookkeeping.
//
// Each driver follows the same shape the teacher's tsp package uses for
// its solvers (tsp.Options / tsp.DefaultOptions, tsp.SolveWithMatrix):
// a plain config struct with a DefaultXConfig constructor, validated up
// front, then a Run function that loops until a budget is exhausted and
// reports progress through an anytime.Recorder.
package heuristics

import (
	"math/rand"

	"github.com/katalvlaran/rmnkhv/anytime"
	"github.com/katalvlaran/rmnkhv/hypervolume"
	"github.com/katalvlaran/rmnkhv/instance"
	"github.com/katalvlaran/rmnkhv/pareto"
)

// evaluate builds a pareto.Solution by evaluating a decision vector
// against inst. The returned Solution owns a clone of bits, never bits
// itself, so callers may keep mutating bits afterward.
func evaluate(inst *instance.Instance, bits pareto.Bitstring) pareto.Solution {
	return pareto.Solution{
		Decision:  bits.Clone(),
		Objective: inst.Evaluate(bits.Bits()),
	}
}

// newEngine returns a hypervolume.Engine tracking the run's archive
// w.r.t. reference, or nil when reference is nil (the caller opted out
// of anytime hypervolume logging). Every driver threads the result
// through applyInsertion/logHV so the mandated incremental Engine —
// not a from-scratch SetHypervolume sweep — is what actually tracks
// the archive across a run (spec §9: "the freestanding routine is an
// implementation aid").
func newEngine(reference []float64) *hypervolume.Engine {
	if reference == nil {
		return nil
	}
	return hypervolume.NewEngine(reference)
}

// applyInsertion keeps engine in sync with the outcome of an
// archive.InsertTracking call: every member the archive evicted is
// removed from the engine first, then the candidate is inserted if the
// archive accepted it. It is a no-op when engine is nil.
func applyInsertion(engine *hypervolume.Engine, inserted bool, removed []pareto.Solution, candidate pareto.Solution) {
	if engine == nil {
		return
	}
	for _, r := range removed {
		engine.Remove(r.Objective)
	}
	if inserted {
		engine.Insert(candidate.Objective)
	}
}

// logHV appends an anytime row reporting engine's current value (0
// when engine is nil, meaning hypervolume logging is disabled for this
// run). Callers invoke this once per successful archive insertion, per
// spec §2's data flow, rather than on a fixed evaluation cadence.
func logHV(rec anytime.Recorder, evalCount, genIndex int, engine *hypervolume.Engine) {
	if rec == nil {
		return
	}
	hv := 0.0
	if engine != nil {
		hv = engine.Value()
	}
	rec.Record(anytime.Row{EvaluationCount: evalCount, GenerationIndex: genIndex, Hypervolume: hv})
}

// randomBitstring returns a uniformly random decision vector of inst's
// bit length.
func randomBitstring(inst *instance.Instance, rng *rand.Rand) pareto.Bitstring {
	return pareto.Random(inst.N(), rng)
}
