// Package rmnkconfig loads and validates the YAML configuration that
// drives a ρMNK benchmarking run: which instance file to load, which
// heuristic to run, and that heuristic's knobs (spec §5.7).
//
// The shape mirrors the teacher's builder.BuilderOption/builderConfig
// pair in spirit (validate-then-construct, safe defaults, sentinel
// errors) but is expressed as a plain YAML-decodable struct rather than
// functional options, since a driver config is meant to be authored as
// a file on disk, not assembled by Go call sites.
package rmnkconfig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rmnkhv/heuristics"
)

// Sentinel validation errors (spec §7's "InvalidConfiguration" family).
var (
	ErrMissingInstancePath  = errors.New("rmnkconfig: instance path is required")
	ErrUnknownDriver        = errors.New("rmnkconfig: driver must be one of gsemo, pls, ibea")
	ErrInvalidConfiguration = errors.New("rmnkconfig: invalid driver configuration")
)

// DriverName selects which heuristic a DriverConfig runs.
type DriverName string

const (
	DriverGSEMO DriverName = "gsemo"
	DriverPLS   DriverName = "pls"
	DriverIBEA  DriverName = "ibea"
)

// DriverConfig is the top-level YAML document: which instance to load,
// which driver to run, a shared reference point for hypervolume
// logging, and the per-driver knob block for whichever driver is
// selected (the other blocks are ignored).
type DriverConfig struct {
	InstancePath string     `yaml:"instance_path"`
	Driver       DriverName `yaml:"driver"`
	Reference    []float64  `yaml:"reference"`

	GSEMO GSEMOSection `yaml:"gsemo"`
	PLS   PLSSection   `yaml:"pls"`
	IBEA  IBEASection  `yaml:"ibea"`
}

// GSEMOSection is the gsemo: block of a DriverConfig document.
type GSEMOSection struct {
	MaxEvaluations int   `yaml:"max_evaluations"`
	Seed           int64 `yaml:"seed"`
}

// PLSSection is the pls: block of a DriverConfig document.
type PLSSection struct {
	MaxEvaluations int    `yaml:"max_evaluations"`
	Seed           int64  `yaml:"seed"`
	Acceptance     string `yaml:"acceptance"`  // "non_dominating" | "dominating" | "both"
	Exploration    string `yaml:"exploration"` // "best" | "first" | "both"
}

// IBEASection is the ibea: block of a DriverConfig document.
type IBEASection struct {
	PopSize        int     `yaml:"pop_size"`
	MaxGenerations int     `yaml:"max_generations"`
	Seed           int64   `yaml:"seed"`
	Indicator      string  `yaml:"indicator"` // "eps" | "ihd"
	Kappa          float64 `yaml:"kappa"`
	Scaling        string  `yaml:"scaling"` // "basic" | "adaptive"
	Crossover      string  `yaml:"crossover"` // "uniform" | "n_point"
	NPoints        int     `yaml:"n_points"`
	PC             float64 `yaml:"pc"`
	PM             float64 `yaml:"pm"`
	TournamentK    int     `yaml:"tournament_k"`
}

// LoadYAML reads and parses a DriverConfig document from path, then
// validates it. It does not load the referenced instance file; callers
// that need the instance call instance.Load(cfg.InstancePath) themselves.
func LoadYAML(path string) (*DriverConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg DriverConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("rmnkconfig: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the document's shape and returns a wrapped sentinel
// error naming the offending field when it is malformed.
func (c *DriverConfig) Validate() error {
	if c.InstancePath == "" {
		return ErrMissingInstancePath
	}
	switch c.Driver {
	case DriverGSEMO, DriverPLS, DriverIBEA:
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownDriver, c.Driver)
	}
	return nil
}

// GSEMOConfig converts the gsemo: section into a heuristics.GSEMOConfig,
// falling back to heuristics.DefaultGSEMOConfig for any zero field.
func (c *DriverConfig) GSEMOConfig() heuristics.GSEMOConfig {
	cfg := heuristics.DefaultGSEMOConfig()
	if c.GSEMO.MaxEvaluations > 0 {
		cfg.MaxEvaluations = c.GSEMO.MaxEvaluations
	}
	cfg.Seed = c.GSEMO.Seed
	cfg.Reference = c.Reference
	return cfg
}

// PLSConfig converts the pls: section into a heuristics.PLSConfig.
func (c *DriverConfig) PLSConfig() (heuristics.PLSConfig, error) {
	cfg := heuristics.DefaultPLSConfig()
	if c.PLS.MaxEvaluations > 0 {
		cfg.MaxEvaluations = c.PLS.MaxEvaluations
	}
	cfg.Seed = c.PLS.Seed
	cfg.Reference = c.Reference

	switch c.PLS.Acceptance {
	case "", "non_dominating":
		cfg.Acceptance = heuristics.NonDominating
	case "dominating":
		cfg.Acceptance = heuristics.Dominating
	case "both":
		cfg.Acceptance = heuristics.Both
	default:
		return cfg, fmt.Errorf("%w: pls.acceptance %q", ErrInvalidConfiguration, c.PLS.Acceptance)
	}

	switch c.PLS.Exploration {
	case "", "best":
		cfg.Exploration = heuristics.BestImprovement
	case "first":
		cfg.Exploration = heuristics.FirstImprovement
	case "both":
		cfg.Exploration = heuristics.ExploreBoth
	default:
		return cfg, fmt.Errorf("%w: pls.exploration %q", ErrInvalidConfiguration, c.PLS.Exploration)
	}

	return cfg, nil
}

// IBEAConfig converts the ibea: section into a heuristics.IBEAConfig.
func (c *DriverConfig) IBEAConfig() (heuristics.IBEAConfig, error) {
	cfg := heuristics.DefaultIBEAConfig()
	if c.IBEA.PopSize > 0 {
		cfg.PopSize = c.IBEA.PopSize
	}
	if c.IBEA.MaxGenerations > 0 {
		cfg.MaxGenerations = c.IBEA.MaxGenerations
	}
	cfg.Seed = c.IBEA.Seed
	cfg.Reference = c.Reference
	if c.IBEA.Kappa > 0 {
		cfg.Kappa = c.IBEA.Kappa
	}
	if c.IBEA.NPoints > 0 {
		cfg.NPoints = c.IBEA.NPoints
	}
	if c.IBEA.PC > 0 {
		cfg.PC = c.IBEA.PC
	}
	cfg.PM = c.IBEA.PM
	if c.IBEA.TournamentK > 0 {
		cfg.TournamentK = c.IBEA.TournamentK
	}

	switch c.IBEA.Indicator {
	case "", "eps":
		cfg.Indicator = heuristics.EpsIndicator
	case "ihd":
		cfg.Indicator = heuristics.IHDIndicator
	default:
		return cfg, fmt.Errorf("%w: ibea.indicator %q", ErrInvalidConfiguration, c.IBEA.Indicator)
	}

	switch c.IBEA.Scaling {
	case "", "adaptive":
		cfg.Scaling = heuristics.AdaptiveScaling
	case "basic":
		cfg.Scaling = heuristics.BasicScaling
	default:
		return cfg, fmt.Errorf("%w: ibea.scaling %q", ErrInvalidConfiguration, c.IBEA.Scaling)
	}

	switch c.IBEA.Crossover {
	case "", "uniform":
		cfg.Crossover = heuristics.UniformCrossover
	case "n_point":
		cfg.Crossover = heuristics.NPointCrossover
	default:
		return cfg, fmt.Errorf("%w: ibea.crossover %q", ErrInvalidConfiguration, c.IBEA.Crossover)
	}

	return cfg, nil
}
