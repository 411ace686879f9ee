// SPDX-License-Identifier: MIT

// Command hexroute recommends settlement routes on a generated Catan board,
// verifies them by dice simulation and calibrates the resource coefficient.
//
// Usage:
//
//	hexroute [-config file.yaml] [-v] <command> [flags]
//
// Commands:
//
//	board      print the stamped tiles of the configured board
//	route      recommend a route: -from v00 -to v23 [-coef 1.0]
//	verify     compare the recommendation with simulated alternatives
//	calibrate  tune the coefficient over random samples
//	runs       list journaled calibration runs [-run id]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/hexroute/builder"
	"github.com/katalvlaran/hexroute/config"
	"github.com/katalvlaran/hexroute/core"
)

// errUsage marks command-line mistakes; main exits with status 2.
var errUsage = errors.New("usage")

// app carries what every command needs.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
}

func main() {
	global := flag.NewFlagSet("hexroute", flag.ExitOnError)
	cfgPath := global.String("config", "", "YAML config file (defaults apply when empty)")
	verbose := global.Bool("v", false, "debug logging")
	global.Usage = usage(global)
	_ = global.Parse(os.Args[1:])

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		slog.Debug("config loaded", "path", *cfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: cfg, logger: logger, out: os.Stdout}
	if err := a.run(ctx, global.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			global.Usage()
			os.Exit(2)
		}
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(fs.Output(), "usage: hexroute [-config file] [-v] board|route|verify|calibrate|runs [flags]")
		fs.PrintDefaults()
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "board":
		return a.board(rest)
	case "route":
		return a.route(ctx, rest)
	case "verify":
		return a.verify(ctx, rest)
	case "calibrate":
		return a.calibrate(ctx, rest)
	case "runs":
		return a.runs(ctx, rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// boardOptions selects IDs and stamping for the configured board.
func (a *app) boardOptions() []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithPaddedIDs("v", 2),
		builder.WithSeed(a.cfg.Board.RollSeed),
	}
}

// buildBoard stamps the configured Catan board.
func (a *app) buildBoard() (*core.Graph, error) {
	g, err := builder.BuildGraph(a.boardOptions(), builder.CatanBoard(a.cfg.Board.Radius))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("board built",
		"radius", a.cfg.Board.Radius,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)
	return g, nil
}

// rng returns the run RNG seeded from the config.
func (a *app) rng() *rand.Rand {
	return rand.New(rand.NewPCG(a.cfg.Seed, 0))
}
