// SPDX-License-Identifier: MIT

package calibrate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/hexroute/core"
	"github.com/katalvlaran/hexroute/route"
	"github.com/katalvlaran/hexroute/verify"
	"github.com/katalvlaran/hexroute/yield"
)

// runner bundles the inputs shared by every batch.
type runner struct {
	board  core.Board
	ids    []string
	cfg    Config
	rng    *rand.Rand
	log    *slog.Logger
	search []route.Option
}

// Calibrate tunes the MAGIC coefficient on b. See the package doc for the
// loop. Per-sample failures are skipped; configuration, context, recorder
// and empty-batch failures abort the run.
func Calibrate(ctx context.Context, b core.Board, cfg Config, rng *rand.Rand, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := b.Vertices()
	if len(ids) < 2 {
		return nil, fmt.Errorf("%w: board has %d vertices", ErrNoSamples, len(ids))
	}
	r := &runner{board: b, ids: ids, cfg: cfg, rng: rng, log: o.logger}
	if cfg.MaxRoutes > 0 {
		r.search = append(r.search, route.WithMaxRoutes(cfg.MaxRoutes))
	}
	if cfg.MaxDepth > 0 {
		r.search = append(r.search, route.WithMaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxExpansions > 0 {
		r.search = append(r.search, route.WithMaxExpansions(cfg.MaxExpansions))
	}
	if cfg.Parallel > 1 {
		r.search = append(r.search, route.WithParallel(cfg.Parallel))
	}
	if cfg.MaxCost > 0 {
		r.search = append(r.search, route.WithMaxCost(cfg.MaxCost))
	}

	if o.recorder != nil {
		if err := o.recorder.RecordStart(ctx, cfg); err != nil {
			return nil, fmt.Errorf("calibrate: record start: %w", err)
		}
	}

	st := newState(cfg.InitialCoefficient)
	res := &Result{}
	for i := 1; i <= cfg.MaxBatches; i++ {
		batch, err := r.batch(ctx, i, st.coef)
		if err != nil {
			return nil, err
		}

		switch {
		case batch.Disagreement <= cfg.ConvergenceThreshold:
			res.Converged = true
			batch.Direction = st.dir
		default:
			next, cycle := st.advance(i, batch.Disagreement, cfg.Step, cfg.StepThreshold)
			batch.Direction = st.dir
			if cycle {
				res.CycleDetected = true
				r.log.Info("coefficient recurred", "batch", i, "coefficient", next)
			} else {
				batch.Next = next
			}
		}

		res.Batches = append(res.Batches, batch)
		r.log.Info("calibration batch",
			"batch", i,
			"coefficient", batch.Coefficient,
			"disagreement", batch.Disagreement,
			"samples", batch.Samples,
			"skipped", batch.Skipped,
			"direction", batch.Direction.String(),
		)
		if o.recorder != nil {
			if err = o.recorder.RecordBatch(ctx, batch); err != nil {
				return nil, fmt.Errorf("calibrate: record batch %d: %w", i, err)
			}
		}
		if res.Converged || res.CycleDetected {
			break
		}
	}

	res.Coefficient = pick(res)
	if o.recorder != nil {
		if err := o.recorder.RecordFinish(ctx, res); err != nil {
			return nil, fmt.Errorf("calibrate: record finish: %w", err)
		}
	}

	return res, nil
}

// batch draws samples until BatchSize succeed or the attempt cap is hit.
func (r *runner) batch(ctx context.Context, index int, coef float64) (Batch, error) {
	scoring := yield.DefaultScoring()
	scoring.Coefficient = coef
	vopts := []verify.Option{
		verify.WithCoefficient(coef),
		verify.WithScoring(scoring),
		verify.WithTrials(r.cfg.TrialsPerScore),
		verify.WithWorkers(r.cfg.Workers),
		verify.WithSearch(r.search...),
	}

	out := Batch{Index: index, Coefficient: coef}
	sum := 0.0
	attempts := r.cfg.BatchSize * r.cfg.MaxAttemptsFactor
	for a := 0; a < attempts && out.Samples < r.cfg.BatchSize; a++ {
		if err := ctx.Err(); err != nil {
			return Batch{}, err
		}
		start, end := r.draw()
		rep, err := verify.Verify(ctx, r.board, start, end, r.rng, vopts...)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return Batch{}, err
			}
			out.Skipped++
			r.log.Debug("sample skipped", "batch", index, "start", start, "end", end, "err", err)
			continue
		}
		sum += rep.Ratio
		out.Samples++
	}
	if out.Samples == 0 {
		return Batch{}, fmt.Errorf("%w: batch %d after %d attempts", ErrNoSamples, index, attempts)
	}
	out.Disagreement = sum / float64(out.Samples)

	return out, nil
}

// draw picks a uniform (start, end) pair with start != end.
func (r *runner) draw() (string, string) {
	n := len(r.ids)
	start := r.ids[r.rng.IntN(n)]
	end := start
	for end == start {
		end = r.ids[r.rng.IntN(n)]
	}
	return start, end
}

// pick returns the converged coefficient or the lowest-disagreement one,
// earliest on ties.
func pick(res *Result) float64 {
	if len(res.Batches) == 0 {
		return 0
	}
	if res.Converged {
		return res.Batches[len(res.Batches)-1].Coefficient
	}
	best := res.Batches[0]
	for _, b := range res.Batches[1:] {
		if b.Disagreement < best.Disagreement {
			best = b
		}
	}
	return best.Coefficient
}
