package heuristics

import "errors"

// Validation sentinels, mirroring the teacher's "strict sentinels, no
// fmt.Errorf where a sentinel suffices" discipline.
var (
	ErrInvalidPopSize       = errors.New("heuristics: population size must be >= 2")
	ErrInvalidBudget        = errors.New("heuristics: evaluation/generation budget must be > 0")
	ErrInvalidProbability   = errors.New("heuristics: probability must be in [0,1]")
	ErrInvalidTournamentK   = errors.New("heuristics: tournament size must be in [1, PopSize]")
	ErrInvalidNPoints       = errors.New("heuristics: NPoints must be >= 1 for n-point crossover")
	ErrMissingReference     = errors.New("heuristics: IHDIndicator requires a non-nil Reference")
)

// Acceptance selects which neighbors PLS is willing to fold into the
// archive during local search (spec §4.5).
type Acceptance int

const (
	// NonDominating accepts any neighbor not dominated by its parent.
	NonDominating Acceptance = iota
	// Dominating accepts only neighbors that strictly dominate their parent.
	Dominating
	// Both tries Dominating first and falls back to NonDominating.
	Both
)

// Exploration selects how much of a solution's neighborhood PLS scans
// before moving on (spec §4.5).
type Exploration int

const (
	// BestImprovement scans every neighbor before moving on.
	BestImprovement Exploration = iota
	// FirstImprovement stops at the first accepted neighbor.
	FirstImprovement
	// ExploreBoth runs FirstImprovement until the frontier empties; if
	// budget remains, the frontier is re-seeded from the archive once and
	// the run continues with BestImprovement.
	ExploreBoth
)

// Scaling selects how IBEA turns raw indicator values into fitness
// (spec §4.6).
type Scaling int

const (
	// BasicScaling uses a fixed scaling constant (c = 1).
	BasicScaling Scaling = iota
	// AdaptiveScaling derives c from the maximum absolute indicator value
	// over the pre-generation population (spec §9 Open Question 1).
	AdaptiveScaling
)

// GSEMOConfig configures RunGSEMO.
type GSEMOConfig struct {
	MaxEvaluations int
	Seed           int64
	Reference      []float64 // nil disables hypervolume logging
}

// DefaultGSEMOConfig returns conservative defaults: a moderate evaluation
// budget and a deterministic seed. A row is logged on every successful
// archive insertion regardless of configuration.
func DefaultGSEMOConfig() GSEMOConfig {
	return GSEMOConfig{
		MaxEvaluations: 10_000,
		Seed:           0,
	}
}

func (c GSEMOConfig) validate() error {
	if c.MaxEvaluations <= 0 {
		return ErrInvalidBudget
	}
	return nil
}

// PLSConfig configures RunPLS.
type PLSConfig struct {
	MaxEvaluations int
	Seed           int64
	Reference      []float64
	Acceptance     Acceptance
	Exploration    Exploration
}

// DefaultPLSConfig returns the canonical PLS variant: nondominating
// acceptance and best-improvement exploration.
func DefaultPLSConfig() PLSConfig {
	return PLSConfig{
		MaxEvaluations: 10_000,
		Seed:           0,
		Acceptance:     NonDominating,
		Exploration:    BestImprovement,
	}
}

func (c PLSConfig) validate() error {
	if c.MaxEvaluations <= 0 {
		return ErrInvalidBudget
	}
	return nil
}

// IBEAConfig configures RunIBEA.
type IBEAConfig struct {
	PopSize        int
	MaxGenerations int
	Seed           int64
	Reference      []float64 // required with IHDIndicator; otherwise nil disables hypervolume logging (rows report 0)

	Indicator IndicatorKind
	Kappa     float64
	Scaling   Scaling

	Crossover CrossoverKind
	NPoints   int
	PC        float64

	PM float64 // per-bit mutation probability; 0 means 1/N at run time

	TournamentK int
}

// DefaultIBEAConfig returns the textbook IBEA configuration: additive
// epsilon indicator, adaptive scaling with kappa=0.05, uniform crossover
// at pc=1.0, per-bit mutation at the standard 1/N rate, and binary
// tournament selection.
func DefaultIBEAConfig() IBEAConfig {
	return IBEAConfig{
		PopSize:        50,
		MaxGenerations: 200,
		Seed:           0,
		Indicator:      EpsIndicator,
		Kappa:          0.05,
		Scaling:        AdaptiveScaling,
		Crossover:      UniformCrossover,
		NPoints:        2,
		PC:             1.0,
		PM:             0,
		TournamentK:    2,
	}
}

func (c IBEAConfig) validate() error {
	if c.PopSize < 2 {
		return ErrInvalidPopSize
	}
	if c.MaxGenerations <= 0 {
		return ErrInvalidBudget
	}
	if c.PC < 0 || c.PC > 1 {
		return ErrInvalidProbability
	}
	if c.PM < 0 || c.PM > 1 {
		return ErrInvalidProbability
	}
	if c.TournamentK < 1 || c.TournamentK > c.PopSize {
		return ErrInvalidTournamentK
	}
	if c.Crossover == NPointCrossover && c.NPoints < 1 {
		return ErrInvalidNPoints
	}
	if c.Indicator == IHDIndicator && c.Reference == nil {
		return ErrMissingReference
	}
	return nil
}
