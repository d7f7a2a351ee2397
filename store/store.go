package store

import (
	"database/sql"
	"errors"
	"fmt"

	// Pure driver registration; all access goes through database/sql.
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/heursearch/alife"
	"github.com/katalvlaran/heursearch/genetic"
)

// Sentinel errors for save operations.
var (
	// ErrNilResult indicates a nil result passed to a save method.
	ErrNilResult = errors.New("store: result is nil")
)

// schema creates the three result tables when absent.
const schema = `
CREATE TABLE IF NOT EXISTS heuristic_results (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	run                INTEGER NOT NULL,
	heuristic          TEXT    NOT NULL,
	expansions         TEXT    NOT NULL,
	traversals         TEXT    NOT NULL,
	solution_path_lens TEXT    NOT NULL,
	creation           INTEGER NOT NULL,
	score              REAL    NOT NULL,
	is_best            INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS ga_generations (
	run        INTEGER NOT NULL,
	generation INTEGER NOT NULL,
	position   INTEGER NOT NULL,
	heuristic  TEXT    NOT NULL,
	fitness    REAL    NOT NULL,
	elapsed_ms INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS ga_best (
	run       INTEGER NOT NULL,
	rank      INTEGER NOT NULL,
	heuristic TEXT    NOT NULL,
	fitness   REAL    NOT NULL
);
`

// Store wraps one SQLite database holding run results.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path — ":memory:" works for
// ephemeral stores — and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSimulation writes every organism of an alife run under the given
// run id, flagging the best one. The write is transactional.
func (s *Store) SaveSimulation(run int64, res *alife.SimulationResult) error {
	if res == nil {
		return ErrNilResult
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO heuristic_results
		(run, heuristic, expansions, traversals, solution_path_lens, creation, score, is_best)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	for i := range res.Heuristics {
		hr := &res.Heuristics[i]
		isBest := 0
		if hr.Heuristic == res.Best.Heuristic && hr.Score == res.Best.Score {
			isBest = 1
		}
		if _, err = stmt.Exec(run, hr.Heuristic, hr.Expansions, hr.Traversals,
			hr.SolutionPathLens, int64(hr.Creation), hr.Score, isBest); err != nil {
			_ = tx.Rollback()

			return fmt.Errorf("store: insert organism: %w", err)
		}
	}

	return tx.Commit()
}

// SaveGenetic writes a GA run's archive and full history under the
// given run id. The write is transactional.
func (s *Store) SaveGenetic(run int64, res *genetic.Result) error {
	if res == nil {
		return ErrNilResult
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}

	for rank, expr := range res.BestHeuristics {
		if _, err = tx.Exec(`INSERT INTO ga_best (run, rank, heuristic, fitness) VALUES (?, ?, ?, ?)`,
			run, rank, expr, res.BestFitnesses[rank]); err != nil {
			_ = tx.Rollback()

			return fmt.Errorf("store: insert archive row: %w", err)
		}
	}

	stmt, err := tx.Prepare(`INSERT INTO ga_generations
		(run, generation, position, heuristic, fitness, elapsed_ms) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()

		return fmt.Errorf("store: prepare: %w", err)
	}
	defer stmt.Close()

	for g, snapshot := range res.History {
		for i, entry := range snapshot {
			if _, err = stmt.Exec(run, g, i, entry.Heuristic, entry.Fitness,
				int64(entry.ElapsedMillis)); err != nil {
				_ = tx.Rollback()

				return fmt.Errorf("store: insert history row: %w", err)
			}
		}
	}

	return tx.Commit()
}

// BestSimulated returns the lowest-scoring organisms of a run, score
// ascending, capped at limit.
func (s *Store) BestSimulated(run int64, limit int) ([]alife.HeuristicResult, error) {
	rows, err := s.db.Query(`SELECT heuristic, expansions, traversals, solution_path_lens, creation, score
		FROM heuristic_results WHERE run = ? ORDER BY score ASC, id ASC LIMIT ?`, run, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	var out []alife.HeuristicResult
	for rows.Next() {
		var hr alife.HeuristicResult
		var creation int64
		if err = rows.Scan(&hr.Heuristic, &hr.Expansions, &hr.Traversals,
			&hr.SolutionPathLens, &creation, &hr.Score); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		hr.Creation = uint64(creation)
		out = append(out, hr)
	}

	return out, rows.Err()
}
