// SPDX-License-Identifier: MIT

// Package journal stores calibration runs and their batches in SQLite.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/hexroute/calibrate"
)

// ErrRunNotFound is returned when a run ID has no row.
var ErrRunNotFound = errors.New("journal: run not found")

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps a SQLite connection holding the calibration journal.
type Store struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open opens or creates a journal database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn, now: func() time.Time { return time.Now().UTC() }}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL,
		seed INTEGER NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		batch_size INTEGER,
		initial_coefficient REAL,
		convergence_threshold REAL,
		step REAL,
		step_threshold REAL,
		trials_per_score INTEGER,
		max_batches INTEGER,
		max_attempts_factor INTEGER,
		workers INTEGER,
		max_routes INTEGER,
		max_depth INTEGER,
		max_expansions INTEGER,
		parallel INTEGER,
		max_cost INTEGER,
		coefficient REAL,
		converged INTEGER NOT NULL DEFAULT 0,
		cycle_detected INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS batches (
		run_id TEXT NOT NULL REFERENCES runs(id),
		idx INTEGER NOT NULL,
		coefficient REAL NOT NULL,
		disagreement REAL NOT NULL,
		samples INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		direction TEXT NOT NULL,
		next REAL NOT NULL,
		PRIMARY KEY (run_id, idx)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RunRecord is one row of the runs table.
type RunRecord struct {
	ID                   string          `db:"id"`
	Label                string          `db:"label"`
	Seed                 int64           `db:"seed"`
	StartedAt            string          `db:"started_at"`
	FinishedAt           sql.NullString  `db:"finished_at"`
	BatchSize            sql.NullInt64   `db:"batch_size"`
	InitialCoefficient   sql.NullFloat64 `db:"initial_coefficient"`
	ConvergenceThreshold sql.NullFloat64 `db:"convergence_threshold"`
	Step                 sql.NullFloat64 `db:"step"`
	StepThreshold        sql.NullFloat64 `db:"step_threshold"`
	TrialsPerScore       sql.NullInt64   `db:"trials_per_score"`
	MaxBatches           sql.NullInt64   `db:"max_batches"`
	MaxAttemptsFactor    sql.NullInt64   `db:"max_attempts_factor"`
	Workers              sql.NullInt64   `db:"workers"`
	MaxRoutes            sql.NullInt64   `db:"max_routes"`
	MaxDepth             sql.NullInt64   `db:"max_depth"`
	MaxExpansions        sql.NullInt64   `db:"max_expansions"`
	Parallel             sql.NullInt64   `db:"parallel"`
	MaxCost              sql.NullInt64   `db:"max_cost"`
	Coefficient          sql.NullFloat64 `db:"coefficient"`
	Converged            bool            `db:"converged"`
	CycleDetected        bool            `db:"cycle_detected"`
}

// Started parses StartedAt.
func (r RunRecord) Started() (time.Time, error) {
	return time.Parse(timeLayout, r.StartedAt)
}

// Finished reports whether the run recorded an outcome.
func (r RunRecord) Finished() bool { return r.FinishedAt.Valid }

// BatchRecord is one row of the batches table.
type BatchRecord struct {
	RunID        string  `db:"run_id"`
	Index        int     `db:"idx"`
	Coefficient  float64 `db:"coefficient"`
	Disagreement float64 `db:"disagreement"`
	Samples      int     `db:"samples"`
	Skipped      int     `db:"skipped"`
	Direction    string  `db:"direction"`
	Next         float64 `db:"next"`
}

// NewRun inserts a run row and returns its recorder. The seed is stored
// as its two's-complement int64.
func (s *Store) NewRun(ctx context.Context, label string, seed uint64) (*Run, error) {
	id := uuid.New()
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO runs (id, label, seed, started_at) VALUES (?, ?, ?, ?)",
		id.String(), label, int64(seed), s.now().Format(timeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: new run: %w", err)
	}
	return &Run{ID: id, store: s}, nil
}

// Runs lists runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]RunRecord, error) {
	var out []RunRecord
	err := s.conn.SelectContext(ctx, &out, "SELECT * FROM runs ORDER BY started_at, rowid")
	return out, err
}

// Run returns one run by ID.
func (s *Store) Run(ctx context.Context, id string) (RunRecord, error) {
	var r RunRecord
	err := s.conn.GetContext(ctx, &r, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return r, err
}

// Batches lists the batches of one run in order.
func (s *Store) Batches(ctx context.Context, runID string) ([]BatchRecord, error) {
	var out []BatchRecord
	err := s.conn.SelectContext(ctx, &out,
		"SELECT * FROM batches WHERE run_id = ? ORDER BY idx", runID)
	return out, err
}

// Run records one calibration into the journal. It implements
// calibrate.Recorder.
type Run struct {
	ID    uuid.UUID
	store *Store
}

var _ calibrate.Recorder = (*Run)(nil)

// RecordStart stores the configuration of the run, search caps included.
func (r *Run) RecordStart(ctx context.Context, cfg calibrate.Config) error {
	_, err := r.store.conn.ExecContext(ctx, `UPDATE runs SET
		batch_size = ?, initial_coefficient = ?, convergence_threshold = ?,
		step = ?, step_threshold = ?, trials_per_score = ?, max_batches = ?,
		max_attempts_factor = ?, workers = ?, max_routes = ?, max_depth = ?,
		max_expansions = ?, parallel = ?, max_cost = ?
		WHERE id = ?`,
		cfg.BatchSize, cfg.InitialCoefficient, cfg.ConvergenceThreshold,
		cfg.Step, cfg.StepThreshold, cfg.TrialsPerScore, cfg.MaxBatches,
		cfg.MaxAttemptsFactor, cfg.Workers, cfg.MaxRoutes, cfg.MaxDepth,
		cfg.MaxExpansions, cfg.Parallel, cfg.MaxCost,
		r.ID.String(),
	)
	return err
}

// RecordBatch appends one batch.
func (r *Run) RecordBatch(ctx context.Context, b calibrate.Batch) error {
	_, err := r.store.conn.ExecContext(ctx, `INSERT INTO batches
		(run_id, idx, coefficient, disagreement, samples, skipped, direction, next)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), b.Index, b.Coefficient, b.Disagreement,
		b.Samples, b.Skipped, b.Direction.String(), b.Next,
	)
	return err
}

// RecordFinish stores the outcome and marks the run finished.
func (r *Run) RecordFinish(ctx context.Context, res *calibrate.Result) error {
	_, err := r.store.conn.ExecContext(ctx, `UPDATE runs SET
		finished_at = ?, coefficient = ?, converged = ?, cycle_detected = ?
		WHERE id = ?`,
		r.store.now().Format(timeLayout), res.Coefficient,
		res.Converged, res.CycleDetected, r.ID.String(),
	)
	return err
}
