// Package archive provides SQLite-backed persistence of the draw records
// loaded by each run. The archive is purely additive observability: the
// analysis pipeline never reads from it, and archive failures are reported
// as warnings rather than aborting a run.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lottoscope/lottoscope/internal/models"
)

// Archive manages the run archive database.
type Archive struct {
	db   *sql.DB
	path string
}

// Open opens or creates the archive database at path, creating parent
// directories as needed. ":memory:" opens a transient in-memory archive.
func Open(path string) (*Archive, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create archive directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open archive db: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent across the
	// pool; the run archive has no concurrent writers anyway.
	db.SetMaxOpenConns(1)

	a := &Archive{db: db, path: path}
	if err := a.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Path returns the database file path.
func (a *Archive) Path() string {
	return a.path
}

func (a *Archive) initSchema() error {
	_, err := a.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			origin     TEXT NOT NULL,
			created_at TEXT NOT NULL,
			draw_count INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS draws (
			run_id    TEXT NOT NULL REFERENCES runs(id),
			draw_id   INTEGER NOT NULL,
			numbers   TEXT NOT NULL,
			bonus     TEXT NOT NULL,
			draw_time TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_draws_run ON draws(run_id);
	`)
	return err
}

// RecordRun inserts one run and its loaded draw records in a single
// transaction.
func (a *Archive) RecordRun(runID string, origin models.Origin, at time.Time, records []models.DrawRecord) error {
	tx, err := a.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO runs (id, origin, created_at, draw_count) VALUES (?, ?, ?, ?)`,
		runID, string(origin), at.UTC().Format(time.RFC3339), len(records),
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO draws (run_id, draw_id, numbers, bonus, draw_time) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		numbers, err := json.Marshal(record.Numbers)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal numbers: %w", err)
		}
		bonus, err := json.Marshal(record.Bonus)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("marshal bonus: %w", err)
		}
		if _, err := stmt.Exec(runID, record.DrawID, string(numbers), string(bonus),
			record.DrawTime.UTC().Format(time.RFC3339)); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert draw %d: %w", record.DrawID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCount returns the number of archived runs.
func (a *Archive) RunCount() (int, error) {
	var count int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

// DrawCount returns the number of draw rows archived for one run.
func (a *Archive) DrawCount(runID string) (int, error) {
	var count int
	if err := a.db.QueryRow(`SELECT COUNT(*) FROM draws WHERE run_id = ?`, runID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count draws: %w", err)
	}
	return count, nil
}
