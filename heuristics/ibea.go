package heuristics

import (
	"math"

	"github.com/katalvlaran/rmnkhv/anytime"
	"github.com/katalvlaran/rmnkhv/archive"
	"github.com/katalvlaran/rmnkhv/instance"
	"github.com/katalvlaran/rmnkhv/pareto"
	"github.com/katalvlaran/rmnkhv/rng"
)

// RunIBEA runs the Indicator-Based Evolutionary Algorithm (spec §4.6): a
// generational loop over a fixed-size population, using a binary quality
// indicator (additive epsilon or hypervolume-difference) to derive
// fitness, K-way tournament selection, configurable crossover/mutation,
// and indicator-based environmental truncation back to PopSize. It runs
// for cfg.MaxGenerations generations.
//
// Environmental selection truncates the *population* every generation
// and may discard a solution that is still nondominated overall, so the
// population itself is not a monotone record of the run. A separate,
// grow-only archive is threaded alongside it: every solution IBEA ever
// creates (initial population and offspring alike) is offered to that
// archive the moment it is evaluated, the hypervolume engine is updated
// on every acceptance, and an anytime row is appended then — never from
// the transient population. RunIBEA returns this archive, not the final
// population.
func RunIBEA(inst *instance.Instance, cfg IBEAConfig, rec anytime.Recorder) (*archive.Archive, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r := rng.FromSeed(cfg.Seed)
	n := inst.N()
	pm := cfg.PM
	if pm <= 0 {
		pm = 1.0 / float64(n)
	}

	arc := archive.New(cfg.PopSize)
	engine := newEngine(cfg.Reference)

	offer := func(evalCount, gen int, s pareto.Solution) {
		inserted, removed := arc.InsertTracking(s)
		applyInsertion(engine, inserted, removed, s)
		if inserted {
			logHV(rec, evalCount, gen, engine)
		}
	}

	pop := make([]pareto.Solution, cfg.PopSize)
	evalCount := 0
	for i := range pop {
		pop[i] = evaluate(inst, randomBitstring(inst, r))
		evalCount++
		offer(evalCount, -1, pop[i])
	}

	for gen := 0; gen < cfg.MaxGenerations; gen++ {
		// Open Question 1: c is derived from the pre-generation population,
		// pinned for both mating selection and environmental truncation this
		// generation.
		c := scalingConstant(cfg, pop)
		fitness := computeFitness(cfg, pop, c)

		offspring := make([]pareto.Solution, 0, cfg.PopSize)
		for len(offspring) < cfg.PopSize {
			i := tournamentSelect(fitness, cfg.TournamentK, r)
			j := tournamentSelect(fitness, cfg.TournamentK, r)
			childA, childB := crossover(cfg.Crossover, pop[i].Decision, pop[j].Decision, cfg.PC, cfg.NPoints, r)
			childA = mutateBitFlip(childA, pm, r)
			childB = mutateBitFlip(childB, pm, r)

			solA := evaluate(inst, childA)
			evalCount++
			offspring = append(offspring, solA)
			offer(evalCount, gen, solA)

			if len(offspring) < cfg.PopSize {
				solB := evaluate(inst, childB)
				evalCount++
				offspring = append(offspring, solB)
				offer(evalCount, gen, solB)
			}
		}

		pool := append(append([]pareto.Solution(nil), pop...), offspring...)
		pop = environmentalSelection(cfg, pool, c, cfg.PopSize)
	}

	return arc, nil
}

// scalingConstant computes IBEA's c scaling factor from population, per
// cfg.Scaling: BasicScaling is always 1; AdaptiveScaling is the maximum
// absolute indicator value over all ordered pairs.
func scalingConstant(cfg IBEAConfig, population []pareto.Solution) float64 {
	if cfg.Scaling == BasicScaling {
		return 1
	}
	c := 0.0
	for i := range population {
		for j := range population {
			if i == j {
				continue
			}
			v := math.Abs(indicatorValue(cfg.Indicator, population[i].Objective, population[j].Objective, cfg.Reference))
			if v > c {
				c = v
			}
		}
	}
	if c == 0 {
		c = 1
	}
	return c
}

// computeFitness assigns IBEA fitness to every member of population:
// F(x1) = sum over x2 != x1 of -exp(-I(x2,x1) / (kappa*c)).
func computeFitness(cfg IBEAConfig, population []pareto.Solution, c float64) []float64 {
	fitness := make([]float64, len(population))
	for i := range population {
		var f float64
		for j := range population {
			if i == j {
				continue
			}
			ind := indicatorValue(cfg.Indicator, population[j].Objective, population[i].Objective, cfg.Reference)
			f -= math.Exp(-ind / (cfg.Kappa * c))
		}
		fitness[i] = f
	}
	return fitness
}

// environmentalSelection truncates pool down to target members by
// repeatedly discarding the individual with the lowest fitness and
// restoring the other members' fitness contributions from the discard,
// the standard IBEA steady-state update: removing x removes its
// -exp(-I(x,y)/(kappa*c)) term from every surviving y's fitness.
func environmentalSelection(cfg IBEAConfig, pool []pareto.Solution, c float64, target int) []pareto.Solution {
	fitness := computeFitness(cfg, pool, c)
	alive := make([]bool, len(pool))
	for i := range alive {
		alive[i] = true
	}
	remaining := len(pool)

	for remaining > target {
		worst := -1
		for i := range pool {
			if !alive[i] {
				continue
			}
			if worst < 0 || fitness[i] < fitness[worst] {
				worst = i
			}
		}
		alive[worst] = false
		remaining--

		for y := range pool {
			if !alive[y] {
				continue
			}
			ind := indicatorValue(cfg.Indicator, pool[worst].Objective, pool[y].Objective, cfg.Reference)
			fitness[y] += math.Exp(-ind / (cfg.Kappa * c))
		}
	}

	out := make([]pareto.Solution, 0, target)
	for i := range pool {
		if alive[i] {
			out = append(out, pool[i])
		}
	}
	return out
}
