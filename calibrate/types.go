// SPDX-License-Identifier: MIT

package calibrate

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/hexroute/settle"
	"github.com/katalvlaran/hexroute/yield"
)

var (
	// ErrBadConfig wraps the first invalid Config field.
	ErrBadConfig = errors.New("calibrate: invalid config")

	// ErrNoSamples is returned when a batch collects no usable sample.
	ErrNoSamples = errors.New("calibrate: batch collected no samples")

	// ErrNilRand is returned when no random source is supplied.
	ErrNilRand = yield.ErrNilRand

	// ErrNilBoard is returned for a nil board.
	ErrNilBoard = errors.New("calibrate: board is nil")
)

// Direction is the sign of the next coefficient step.
type Direction int8

const (
	// Down shrinks the coefficient by (1 - Step).
	Down Direction = -1
	// Up grows the coefficient by (1 + Step).
	Up Direction = 1
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Batch summarizes one calibration batch.
type Batch struct {
	Index        int       // 1-based
	Coefficient  float64   // value the batch ran with
	Disagreement float64   // mean symmetric-difference ratio
	Samples      int       // usable samples
	Skipped      int       // failed draws
	Direction    Direction // direction of the step taken after the batch
	Next         float64   // coefficient proposed for the next batch; 0 once stopped
}

// Result is the outcome of Calibrate.
type Result struct {
	// Coefficient is the converged value, or the value of the batch with the
	// lowest disagreement when the loop stopped for another reason.
	Coefficient   float64
	Converged     bool
	CycleDetected bool
	Batches       []Batch
}

// Recorder receives calibration progress. journal.Run implements it.
type Recorder interface {
	RecordStart(ctx context.Context, cfg Config) error
	RecordBatch(ctx context.Context, b Batch) error
	RecordFinish(ctx context.Context, r *Result) error
}

// Option configures Calibrate.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	recorder Recorder
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder streams progress to r.
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func defaultOptions() options {
	return options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// SymmetricDifferenceRatio returns |A Δ B| / |A|; see settle.SymmetricDifferenceRatio.
func SymmetricDifferenceRatio(a, b []string) float64 {
	return settle.SymmetricDifferenceRatio(a, b)
}
