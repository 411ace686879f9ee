// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexroute/calibrate"
	"github.com/katalvlaran/hexroute/config"
)

func testApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Simulation.Trials = 500
	cfg.Calibration.BatchSize = 3
	cfg.Calibration.MaxBatches = 2
	cfg.Calibration.TrialsPerScore = 200
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	return &app{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    &out,
	}, &out
}

func TestRun_Usage(t *testing.T) {
	a, _ := testApp(t)
	ctx := context.Background()

	assert.ErrorIs(t, a.run(ctx, nil), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"bogus"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"route", "-from", "v00"}), errUsage)
	assert.ErrorIs(t, a.run(ctx, []string{"runs"}), errUsage)
}

func TestRun_Board(t *testing.T) {
	a, out := testApp(t)
	require.NoError(t, a.run(context.Background(), []string{"board"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+7)
	assert.Equal(t, "radius 1: 7 tiles, 24 vertices, 30 edges", lines[0])
	assert.Contains(t, out.String(), "desert")
}

func TestRun_RouteAndVerify(t *testing.T) {
	a, out := testApp(t)
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"route", "-from", "v00", "-to", "v05"}))
	assert.Contains(t, out.String(), "route       v00 ")
	assert.Contains(t, out.String(), "settlements ")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"verify", "-from", "v00", "-to", "v05"}))
	assert.Contains(t, out.String(), "chosen  v00 ")
	assert.Contains(t, out.String(), "disagreement")
}

func TestRun_CalibrateJournal(t *testing.T) {
	a, out := testApp(t)
	a.cfg.Journal.Path = filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	require.NoError(t, a.run(ctx, []string{"calibrate", "-label", "smoke"}))
	assert.Contains(t, out.String(), "coefficient ")

	out.Reset()
	require.NoError(t, a.run(ctx, []string{"runs"}))
	assert.Contains(t, out.String(), "smoke")
}

// The default board and search caps must leave every batch with samples.
func TestDefaultBoard_CalibrationSamples(t *testing.T) {
	a, _ := testApp(t)
	g, err := a.buildBoard()
	require.NoError(t, err)

	cfg := a.cfg.CalibrateConfig()
	def := config.Default()
	assert.Equal(t, def.Search.MaxExpansions, cfg.MaxExpansions)
	assert.Equal(t, def.Board.Radius, a.cfg.Board.Radius)

	res, err := calibrate.Calibrate(context.Background(), g, cfg, a.rng())
	require.NoError(t, err)
	require.NotEmpty(t, res.Batches)
	for _, b := range res.Batches {
		assert.GreaterOrEqual(t, b.Samples, 1, "batch %d", b.Index)
	}
}
