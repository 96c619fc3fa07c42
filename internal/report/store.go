// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report persists crawl results and renders them as CSV,
// tables, and machine-readable exports.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/polycheck/pkg/types"
)

const dbFile = "polycheck.db"

// TimestampLayout is the wall-clock format written to the Last Updated
// column.
const TimestampLayout = "2006-01-02 15:04:05 UTC"

// StoredRow is a result row together with the timestamp of the run that
// wrote it.
type StoredRow struct {
	types.Row   `yaml:",inline"`
	LastUpdated string `json:"last_updated" yaml:"last_updated"`
}

// Store manages the results SQLite database under the data directory.
type Store struct {
	db      *sql.DB
	dataDir string
}

// NewStore opens or creates the results database at dataDir/polycheck.db,
// creating the schema if it does not exist.
func NewStore(cfg types.ReportConfig) (*Store, error) {
	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: dataDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS results (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		market_title TEXT NOT NULL,
		person_name TEXT NOT NULL,
		birth_date TEXT,
		birth_date_raw TEXT,
		wikipedia_url TEXT,
		probability REAL,
		market_volume REAL,
		market_end_date TEXT,
		status TEXT NOT NULL,
		last_updated TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Append inserts rows stamped with updatedAt, keeping existing rows.
func (s *Store) Append(ctx context.Context, rows []types.Row, updatedAt time.Time) error {
	return s.insert(ctx, rows, updatedAt, false)
}

// Replace clears existing rows and inserts the given ones in a single
// transaction, so readers never observe a half-written run.
func (s *Store) Replace(ctx context.Context, rows []types.Row, updatedAt time.Time) error {
	return s.insert(ctx, rows, updatedAt, true)
}

func (s *Store) insert(ctx context.Context, rows []types.Row, updatedAt time.Time, clearFirst bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if clearFirst {
		if _, err := tx.ExecContext(ctx, `DELETE FROM results`); err != nil {
			return fmt.Errorf("clearing old results: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (market_title, person_name, birth_date, birth_date_raw,
			wikipedia_url, probability, market_volume, market_end_date, status, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	stamp := updatedAt.UTC().Format(TimestampLayout)
	for _, r := range rows {
		_, err := stmt.ExecContext(ctx,
			r.MarketTitle, r.PersonName, r.BirthDate, r.BirthDateRaw,
			r.WikipediaURL, r.Probability, r.MarketVolume, r.MarketEndDate,
			r.Status, stamp,
		)
		if err != nil {
			return fmt.Errorf("inserting row for %s: %w", r.PersonName, err)
		}
	}

	return tx.Commit()
}

// Clear removes all rows. The table and its schema stay in place.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("clearing results: %w", err)
	}
	return nil
}

// Rows returns all stored rows in insertion order.
func (s *Store) Rows(ctx context.Context) ([]StoredRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT market_title, person_name, birth_date, birth_date_raw,
			wikipedia_url, probability, market_volume, market_end_date,
			status, last_updated
		 FROM results ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var out []StoredRow
	for rows.Next() {
		var r StoredRow
		if err := rows.Scan(
			&r.MarketTitle, &r.PersonName, &r.BirthDate, &r.BirthDateRaw,
			&r.WikipediaURL, &r.Probability, &r.MarketVolume, &r.MarketEndDate,
			&r.Status, &r.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting results: %w", err)
	}
	return n, nil
}
