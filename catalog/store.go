package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/socodes/code"
	"github.com/katalvlaran/socodes/enumerate"
	"github.com/katalvlaran/socodes/gf2"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	n           INTEGER NOT NULL,
	k           INTEGER NOT NULL,
	b           INTEGER NOT NULL,
	exact       INTEGER NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER,
	count       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS codes (
	run_id        TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq           INTEGER NOT NULL,
	length        INTEGER NOT NULL,
	dimension     INTEGER NOT NULL,
	canon_key     TEXT NOT NULL,
	generator     TEXT NOT NULL,
	min_distance  INTEGER NOT NULL,
	weight_dist   TEXT NOT NULL,
	PRIMARY KEY (run_id, seq),
	UNIQUE (run_id, canon_key)
);
CREATE INDEX IF NOT EXISTS idx_codes_shape ON codes(run_id, length, dimension);
`

// Store is a SQLite-backed catalog of runs and codes.
type Store struct {
	db     *sql.DB
	path   string
	opts   Options
	mu     sync.RWMutex
	closed bool
}

// Open opens or creates the catalog at path and applies the schema.
// Parent directories are created as needed unless WithMustExist is set.
// MemoryPath opens an in-memory database that lives as long as the Store.
func Open(path string, opts ...Option) (*Store, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if path != MemoryPath && o.MustExist {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("catalog: open %s: %w", path, ErrNotFound)
			}
			return nil, fmt.Errorf("catalog: open %s: %w", path, err)
		}
	} else if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("catalog: create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	// One connection keeps an in-memory database alive and serialises writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path, opts: o}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	o.Logger.Debug("catalog opened", zap.String("path", path))

	return s, nil
}

func (s *Store) initSchema() error {
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("catalog: enable foreign keys: %w", err)
	}
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("catalog: apply schema: %w", err)
	}

	return nil
}

// Path returns the database path.
func (s *Store) Path() string { return s.path }

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true

	return s.db.Close()
}

// BeginRun records a new run and returns it with a fresh identifier.
func (s *Store) BeginRun(ctx context.Context, p Params) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Run{}, ErrClosed
	}

	run := Run{
		ID:        uuid.NewString(),
		Params:    p,
		StartedAt: s.opts.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, n, k, b, exact, started_at) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, p.N, p.K, p.B, boolInt(p.Exact), run.StartedAt.UnixNano())
	if err != nil {
		return Run{}, fmt.Errorf("catalog: begin run: %w", err)
	}
	s.opts.Logger.Debug("run started",
		zap.String("run", run.ID),
		zap.Int("n", p.N),
		zap.Int("k", p.K),
		zap.Int("b", p.B),
		zap.Bool("exact", p.Exact),
	)

	return run, nil
}

// Put stores c in run runID.
// Returns ErrRunNotFound for an unknown run and ErrDuplicate when an
// equivalent code is already stored in the run.
func (s *Store) Put(ctx context.Context, runID string, c *code.LinearCode) error {
	if c == nil {
		return fmt.Errorf("catalog: put: %w", code.ErrNilGenerator)
	}
	g := c.GeneratorMatrix()
	key, err := s.opts.Classifier.Key(g)
	if err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}
	dist, err := c.WeightDistribution()
	if err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}
	dmin := code.MinimumWeight(dist)
	distJSON, err := json.Marshal(dist)
	if err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := runExists(ctx, tx, runID); err != nil {
		return err
	}
	var dup int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM codes WHERE run_id = ? AND canon_key = ?`, runID, key).Scan(&dup); err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}
	if dup > 0 {
		return fmt.Errorf("catalog: put %v: %w", c, ErrDuplicate)
	}
	var seq int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM codes WHERE run_id = ?`, runID).Scan(&seq); err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO codes (run_id, seq, length, dimension, canon_key, generator, min_distance, weight_dist)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, seq, c.Length(), c.Dimension(), key, encodeRows(g), dmin, string(distJSON))
	if err != nil {
		return fmt.Errorf("catalog: put: %w", err)
	}

	return tx.Commit()
}

// FinishRun marks run runID finished with count codes.
func (s *Store) FinishRun(ctx context.Context, runID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, count = ? WHERE id = ?`,
		s.opts.Now().UTC().UnixNano(), count, runID)
	if err != nil {
		return fmt.Errorf("catalog: finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("catalog: finish run: %w", err)
	} else if n == 0 {
		return fmt.Errorf("catalog: finish run %q: %w", runID, ErrRunNotFound)
	}
	s.opts.Logger.Debug("run finished", zap.String("run", runID), zap.Int("count", count))

	return nil
}

// Runs lists every run, oldest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, n, k, b, exact, started_at, finished_at, count FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("catalog: runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r        Run
			exact    int
			started  int64
			finished sql.NullInt64
		)
		if err := rows.Scan(&r.ID, &r.Params.N, &r.Params.K, &r.Params.B, &exact, &started, &finished, &r.Count); err != nil {
			return nil, fmt.Errorf("catalog: runs: %w", err)
		}
		r.Params.Exact = exact != 0
		r.StartedAt = time.Unix(0, started).UTC()
		if finished.Valid {
			r.Finished = true
			r.FinishedAt = time.Unix(0, finished.Int64).UTC()
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Run returns the run with the given identifier or ErrRunNotFound.
func (s *Store) Run(ctx context.Context, runID string) (Run, error) {
	runs, err := s.Runs(ctx)
	if err != nil {
		return Run{}, err
	}
	for _, r := range runs {
		if r.ID == runID {
			return r, nil
		}
	}

	return Run{}, fmt.Errorf("catalog: run %q: %w", runID, ErrRunNotFound)
}

// Entries returns the stored codes of run runID in insertion order.
// A zero Length or Dimension in filter matches any value.
func (s *Store) Entries(ctx context.Context, runID string, filter enumerate.Shape) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	if err := runExists(ctx, s.db, runID); err != nil {
		return nil, err
	}

	query := `SELECT seq, canon_key, generator, min_distance, weight_dist FROM codes WHERE run_id = ?`
	args := []any{runID}
	if filter.Length > 0 {
		query += ` AND length = ?`
		args = append(args, filter.Length)
	}
	if filter.Dimension > 0 {
		query += ` AND dimension = ?`
		args = append(args, filter.Dimension)
	}
	query += ` ORDER BY seq`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e       Entry
			gen, wd string
		)
		if err := rows.Scan(&e.Seq, &e.Key, &gen, &e.MinimumDistance, &wd); err != nil {
			return nil, fmt.Errorf("catalog: entries: %w", err)
		}
		if err := json.Unmarshal([]byte(wd), &e.WeightDistribution); err != nil {
			return nil, fmt.Errorf("catalog: entry %d weight distribution: %v: %w", e.Seq, err, ErrCorrupt)
		}
		g, err := decodeRows(gen)
		if err != nil {
			return nil, fmt.Errorf("catalog: entry %d generator: %v: %w", e.Seq, err, ErrCorrupt)
		}
		if e.Code, err = code.New(g); err != nil {
			return nil, fmt.Errorf("catalog: entry %d: %w", e.Seq, err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Codes returns the stored codes of run runID matching filter.
func (s *Store) Codes(ctx context.Context, runID string, filter enumerate.Shape) ([]*code.LinearCode, error) {
	entries, err := s.Entries(ctx, runID, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*code.LinearCode, len(entries))
	for i, e := range entries {
		out[i] = e.Code
	}

	return out, nil
}

// queryer is the part of *sql.DB and *sql.Tx used by runExists.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func runExists(ctx context.Context, q queryer, runID string) error {
	var one int
	err := q.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("catalog: run %q: %w", runID, ErrRunNotFound)
	case err != nil:
		return fmt.Errorf("catalog: run %q: %w", runID, err)
	}

	return nil
}

// encodeRows renders g as newline-separated "0101" rows.
func encodeRows(g *gf2.Matrix) string {
	var sb strings.Builder
	for i, row := range g.RowVectors() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, b := range row.Bits() {
			sb.WriteByte('0' + b)
		}
	}

	return sb.String()
}

func decodeRows(s string) (*gf2.Matrix, error) {
	lines := strings.Split(s, "\n")
	data := make([][]uint8, len(lines))
	for i, line := range lines {
		data[i] = make([]uint8, len(line))
		for j := 0; j < len(line); j++ {
			data[i][j] = line[j] - '0'
		}
	}

	return gf2.FromRows(data)
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
