// SPDX-License-Identifier: MIT

// Package config loads hexroute settings from YAML. File values are merged
// over Default(): a key absent from the file keeps its default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexroute/calibrate"
	"github.com/katalvlaran/hexroute/route"
	"github.com/katalvlaran/hexroute/yield"
)

// ErrInvalid wraps the first invalid setting.
var ErrInvalid = errors.New("config: invalid")

// MaxBoardRadius bounds generated boards. Radius 2 and above hold enough
// simple paths that full enumeration usually needs search.max_expansions
// raised or search.max_depth set.
const MaxBoardRadius = 4

// Config is the root document.
type Config struct {
	Seed        uint64      `yaml:"seed"`
	Board       Board       `yaml:"board"`
	Scoring     Scoring     `yaml:"scoring"`
	Search      Search      `yaml:"search"`
	Simulation  Simulation  `yaml:"simulation"`
	Calibration Calibration `yaml:"calibration"`
	Journal     Journal     `yaml:"journal"`
}

// Board selects the generated board.
type Board struct {
	Radius   int    `yaml:"radius"`
	RollSeed uint64 `yaml:"roll_seed"`
}

// Scoring mirrors yield.Scoring.
type Scoring struct {
	Coefficient       float64 `yaml:"coefficient"`
	Exponent          float64 `yaml:"exponent"`
	DiversityExponent float64 `yaml:"diversity_exponent"`
}

// Search holds enumeration caps and the recommendation cost cap.
type Search struct {
	MaxRoutes     int   `yaml:"max_routes"`
	MaxDepth      int   `yaml:"max_depth"`
	MaxExpansions int   `yaml:"max_expansions"`
	Parallel      int   `yaml:"parallel"`
	MaxCost       int64 `yaml:"max_cost"`
}

// Simulation holds dice simulation settings.
type Simulation struct {
	Trials  int `yaml:"trials"`
	Workers int `yaml:"workers"`
}

// Calibration mirrors calibrate.Config.
type Calibration struct {
	BatchSize            int     `yaml:"batch_size"`
	InitialCoefficient   float64 `yaml:"initial_coefficient"`
	ConvergenceThreshold float64 `yaml:"convergence_threshold"`
	Step                 float64 `yaml:"step"`
	StepThreshold        float64 `yaml:"step_threshold"`
	TrialsPerScore       int     `yaml:"trials_per_score"`
	MaxBatches           int     `yaml:"max_batches"`
	MaxAttemptsFactor    int     `yaml:"max_attempts_factor"`
}

// Journal locates the SQLite journal. An empty path disables it.
type Journal struct {
	Path string `yaml:"path"`
}

// Default returns the documented defaults.
func Default() Config {
	sc := yield.DefaultScoring()
	cc := calibrate.DefaultConfig()

	return Config{
		Seed:  1,
		Board: Board{Radius: 1, RollSeed: 1},
		Scoring: Scoring{
			Coefficient:       sc.Coefficient,
			Exponent:          sc.Exponent,
			DiversityExponent: sc.DiversityExponent,
		},
		Search:     Search{MaxExpansions: cc.MaxExpansions, Parallel: 1},
		Simulation: Simulation{Trials: cc.TrialsPerScore, Workers: 1},
		Calibration: Calibration{
			BatchSize:            cc.BatchSize,
			InitialCoefficient:   cc.InitialCoefficient,
			ConvergenceThreshold: cc.ConvergenceThreshold,
			Step:                 cc.Step,
			StepThreshold:        cc.StepThreshold,
			TrialsPerScore:       cc.TrialsPerScore,
			MaxBatches:           cc.MaxBatches,
			MaxAttemptsFactor:    cc.MaxAttemptsFactor,
		},
	}
}

// Load reads path and merges it over Default. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section and wraps the first failure in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Board.Radius < 0 || c.Board.Radius > MaxBoardRadius:
		return fmt.Errorf("%w: board.radius = %d (0..%d)", ErrInvalid, c.Board.Radius, MaxBoardRadius)
	case c.Search.MaxRoutes < 0:
		return fmt.Errorf("%w: search.max_routes = %d", ErrInvalid, c.Search.MaxRoutes)
	case c.Search.MaxDepth < 0:
		return fmt.Errorf("%w: search.max_depth = %d", ErrInvalid, c.Search.MaxDepth)
	case c.Search.MaxExpansions < 0:
		return fmt.Errorf("%w: search.max_expansions = %d", ErrInvalid, c.Search.MaxExpansions)
	case c.Search.Parallel < 0:
		return fmt.Errorf("%w: search.parallel = %d", ErrInvalid, c.Search.Parallel)
	case c.Search.MaxCost < 0:
		return fmt.Errorf("%w: search.max_cost = %d", ErrInvalid, c.Search.MaxCost)
	case c.Simulation.Trials < 1:
		return fmt.Errorf("%w: simulation.trials = %d", ErrInvalid, c.Simulation.Trials)
	case c.Simulation.Workers < 0:
		return fmt.Errorf("%w: simulation.workers = %d", ErrInvalid, c.Simulation.Workers)
	}
	if err := c.YieldScoring().Validate(); err != nil {
		return fmt.Errorf("%w: scoring: %v", ErrInvalid, err)
	}
	if err := c.CalibrateConfig().Validate(); err != nil {
		return fmt.Errorf("%w: calibration: %v", ErrInvalid, err)
	}
	return nil
}

// YieldScoring converts the scoring section.
func (c Config) YieldScoring() yield.Scoring {
	return yield.Scoring{
		Coefficient:       c.Scoring.Coefficient,
		Exponent:          c.Scoring.Exponent,
		DiversityExponent: c.Scoring.DiversityExponent,
	}
}

// SearchOptions converts the search section into route options.
func (c Config) SearchOptions() []route.Option {
	return []route.Option{
		route.WithMaxRoutes(c.Search.MaxRoutes),
		route.WithMaxDepth(c.Search.MaxDepth),
		route.WithMaxExpansions(c.Search.MaxExpansions),
		route.WithParallel(c.Search.Parallel),
		route.WithMaxCost(c.Search.MaxCost),
	}
}

// CalibrateConfig converts the calibration section. Simulation workers and
// the whole search section carry over.
func (c Config) CalibrateConfig() calibrate.Config {
	return calibrate.Config{
		BatchSize:            c.Calibration.BatchSize,
		InitialCoefficient:   c.Calibration.InitialCoefficient,
		ConvergenceThreshold: c.Calibration.ConvergenceThreshold,
		Step:                 c.Calibration.Step,
		StepThreshold:        c.Calibration.StepThreshold,
		TrialsPerScore:       c.Calibration.TrialsPerScore,
		MaxBatches:           c.Calibration.MaxBatches,
		MaxAttemptsFactor:    c.Calibration.MaxAttemptsFactor,
		Workers:              c.Simulation.Workers,
		MaxRoutes:            c.Search.MaxRoutes,
		MaxDepth:             c.Search.MaxDepth,
		MaxExpansions:        c.Search.MaxExpansions,
		Parallel:             c.Search.Parallel,
		MaxCost:              c.Search.MaxCost,
	}
}
