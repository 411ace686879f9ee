// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/hexroute/builder"
	"github.com/katalvlaran/hexroute/calibrate"
	"github.com/katalvlaran/hexroute/journal"
	"github.com/katalvlaran/hexroute/route"
	"github.com/katalvlaran/hexroute/verify"
)

// endpoints parses the shared -from/-to/-coef flags.
type endpoints struct {
	from, to string
	coef     float64
}

func (a *app) endpointFlags(name string, args []string) (endpoints, error) {
	var e endpoints
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&e.from, "from", "", "start vertex")
	fs.StringVar(&e.to, "to", "", "end vertex")
	fs.Float64Var(&e.coef, "coef", a.cfg.Calibration.InitialCoefficient, "resource coefficient")
	if err := fs.Parse(args); err != nil {
		return e, fmt.Errorf("%w: %v", errUsage, err)
	}
	if e.from == "" || e.to == "" {
		return e, fmt.Errorf("%w: %s needs -from and -to", errUsage, name)
	}
	return e, nil
}

func (a *app) board(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: board takes no arguments", errUsage)
	}
	tiles, err := builder.StampTiles(a.cfg.Board.Radius, a.boardOptions()...)
	if err != nil {
		return err
	}
	g, err := a.buildBoard()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "radius %d: %d tiles, %d vertices, %d edges\n",
		a.cfg.Board.Radius, len(tiles), g.VertexCount(), g.EdgeCount())
	for _, t := range tiles {
		if t.Desert() {
			fmt.Fprintf(a.out, "  (%2d,%2d) desert\n", t.Q, t.R)
			continue
		}
		fmt.Fprintf(a.out, "  (%2d,%2d) %-5s %2d\n", t.Q, t.R, t.Resource, t.Number)
	}
	return nil
}

func (a *app) route(ctx context.Context, args []string) error {
	e, err := a.endpointFlags("route", args)
	if err != nil {
		return err
	}
	g, err := a.buildBoard()
	if err != nil {
		return err
	}
	res, err := route.FindRoute(g, e.from, e.to,
		route.WithContext(ctx),
		route.WithCost(route.ResourceCost(e.coef)),
	)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "route       %s\n", strings.Join(res.Route, " "))
	fmt.Fprintf(a.out, "settlements %s\n", strings.Join(res.Settlements, " "))
	fmt.Fprintf(a.out, "weight %d, cost %s\n", res.Weight, humanize.Comma(res.Cost))
	return nil
}

func (a *app) verify(ctx context.Context, args []string) error {
	e, err := a.endpointFlags("verify", args)
	if err != nil {
		return err
	}
	g, err := a.buildBoard()
	if err != nil {
		return err
	}
	rep, err := verify.Verify(ctx, g, e.from, e.to, a.rng(),
		verify.WithCoefficient(e.coef),
		verify.WithScoring(a.cfg.YieldScoring()),
		verify.WithTrials(a.cfg.Simulation.Trials),
		verify.WithWorkers(a.cfg.Simulation.Workers),
		verify.WithSearch(a.cfg.SearchOptions()...),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "chosen  %s  settlements %s\n",
		strings.Join(rep.Chosen.Route, " "), strings.Join(rep.Chosen.Settlements, " "))
	best, bestSettlements := rep.BestRoute()
	fmt.Fprintf(a.out, "best    %s  settlements %s\n",
		strings.Join(best, " "), strings.Join(bestSettlements, " "))
	fmt.Fprintf(a.out, "%s alternatives with k=%d, %s rolls each, disagreement %s\n",
		humanize.Comma(int64(len(rep.Alternatives))), rep.K(),
		humanize.Comma(int64(a.cfg.Simulation.Trials)), humanize.Ftoa(rep.Ratio))
	if rep.ChosenIndex >= 0 {
		fmt.Fprintf(a.out, "chosen score %s, best score %s\n",
			humanize.FtoaWithDigits(rep.Scores[rep.ChosenIndex], 4),
			humanize.FtoaWithDigits(rep.Scores[rep.Best], 4))
	}
	return nil
}

func (a *app) calibrate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("calibrate", flag.ContinueOnError)
	label := fs.String("label", "", "journal label for this run")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	g, err := a.buildBoard()
	if err != nil {
		return err
	}

	opts := []calibrate.Option{calibrate.WithLogger(a.logger)}
	if path := a.cfg.Journal.Path; path != "" {
		store, err := journal.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()
		run, err := store.NewRun(ctx, *label, a.cfg.Seed)
		if err != nil {
			return err
		}
		a.logger.Info("journal run opened", "path", path, "run", run.ID)
		opts = append(opts, calibrate.WithRecorder(run))
	}

	res, err := calibrate.Calibrate(ctx, g, a.cfg.CalibrateConfig(), a.rng(), opts...)
	if err != nil {
		return err
	}
	for _, b := range res.Batches {
		fmt.Fprintf(a.out, "batch %2d  coef %-10s disagreement %-8s samples %d  %s\n",
			b.Index, humanize.FtoaWithDigits(b.Coefficient, 6),
			humanize.FtoaWithDigits(b.Disagreement, 4), b.Samples, b.Direction)
	}
	fmt.Fprintf(a.out, "coefficient %s (converged %t, cycle %t)\n",
		humanize.FtoaWithDigits(res.Coefficient, 6), res.Converged, res.CycleDetected)
	return nil
}

func (a *app) runs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	id := fs.String("run", "", "show the batches of one run")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if a.cfg.Journal.Path == "" {
		return fmt.Errorf("%w: runs needs journal.path in the config", errUsage)
	}
	store, err := journal.Open(a.cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if *id != "" {
		if _, err := store.Run(ctx, *id); err != nil {
			return err
		}
		batches, err := store.Batches(ctx, *id)
		if err != nil {
			return err
		}
		for _, b := range batches {
			fmt.Fprintf(a.out, "batch %2d  coef %-10s disagreement %-8s %s\n",
				b.Index, humanize.FtoaWithDigits(b.Coefficient, 6),
				humanize.FtoaWithDigits(b.Disagreement, 4), b.Direction)
		}
		return nil
	}

	runs, err := store.Runs(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		when := r.StartedAt
		if t, err := r.Started(); err == nil {
			when = humanize.Time(t)
		}
		outcome := "unfinished"
		if r.Finished() {
			outcome = fmt.Sprintf("coef %s converged=%t", humanize.FtoaWithDigits(r.Coefficient.Float64, 6), r.Converged)
		}
		fmt.Fprintf(a.out, "%s  %-12s %-16s %s\n", r.ID, r.Label, when, outcome)
	}
	return nil
}
