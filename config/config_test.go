// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexroute/calibrate"
	"github.com/katalvlaran/hexroute/config"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	cc := cfg.CalibrateConfig()
	assert.Equal(t, 20, cc.BatchSize)
	assert.Equal(t, 1.0, cc.InitialCoefficient)
	assert.Equal(t, 0.05, cc.ConvergenceThreshold)
	assert.Equal(t, 0.5, cc.Step)
	assert.Equal(t, 10000, cc.TrialsPerScore)
	assert.Equal(t, 2.0, cfg.YieldScoring().Exponent)
	assert.Len(t, cfg.SearchOptions(), 5)
	assert.Equal(t, 1, cfg.Board.Radius)
}

func TestParse_MergesOverDefaults(t *testing.T) {
	doc := `
seed: 42
board:
  radius: 2
scoring:
  coefficient: 0.75
calibration:
  batch_size: 8
  step: 0.25
journal:
  path: runs.db
`
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 2, cfg.Board.Radius)
	assert.Equal(t, uint64(1), cfg.Board.RollSeed)
	assert.Equal(t, 0.75, cfg.Scoring.Coefficient)
	assert.Equal(t, 2.0, cfg.Scoring.Exponent)
	assert.Equal(t, 8, cfg.Calibration.BatchSize)
	assert.Equal(t, 0.25, cfg.Calibration.Step)
	assert.Equal(t, 50, cfg.Calibration.MaxBatches)
	assert.Equal(t, "runs.db", cfg.Journal.Path)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "bogus: 1\n",
		"bad type":       "seed: many\n",
		"radius":         "board:\n  radius: 9\n",
		"trials":         "simulation:\n  trials: 0\n",
		"negative cap":   "search:\n  max_routes: -3\n",
		"negative cost":  "search:\n  max_cost: -1\n",
		"scoring":        "scoring:\n  exponent: -1\n",
		"calibration":    "calibration:\n  step: 1.5\n",
		"attempt factor": "calibration:\n  max_attempts_factor: 0\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := config.Parse(strings.NewReader("calibration:\n  step: 1.5\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), calibrate.ErrBadConfig.Error())
}

func TestCalibrateConfig_CarriesSearch(t *testing.T) {
	doc := `
search:
  max_routes: 40
  max_depth: 9
  max_expansions: 5000
  parallel: 3
  max_cost: 12000
simulation:
  workers: 2
`
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	cc := cfg.CalibrateConfig()
	assert.Equal(t, 40, cc.MaxRoutes)
	assert.Equal(t, 9, cc.MaxDepth)
	assert.Equal(t, 5000, cc.MaxExpansions)
	assert.Equal(t, 3, cc.Parallel)
	assert.Equal(t, int64(12000), cc.MaxCost)
	assert.Equal(t, 2, cc.Workers)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexroute.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  workers: 4\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Simulation.Workers)
	assert.Equal(t, 4, cfg.CalibrateConfig().Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
