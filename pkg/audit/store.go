// Package audit persists an append-only trail of evaluations performed
// by the serving layer. The pure evaluators never depend on it.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one evaluation as seen by the HTTP surface. Input and
// Output hold the request and response JSON verbatim.
type Record struct {
	RequestID   string    `json:"request_id"`
	Tool        string    `json:"tool"`
	State       string    `json:"state"`
	Verdict     string    `json:"verdict,omitempty"`
	CatalogHash string    `json:"catalog_hash"`
	Input       string    `json:"input"`
	Output      string    `json:"output"`
	Timestamp   time.Time `json:"timestamp"`
}

type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) a sqlite audit database at the given DSN and
// runs migrations. Use ":memory:" in tests.
func Open(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore wraps an existing handle, running migrations.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
    CREATE TABLE IF NOT EXISTS evaluations (
        request_id TEXT PRIMARY KEY,
        tool TEXT NOT NULL,
        state TEXT NOT NULL,
        verdict TEXT NOT NULL DEFAULT '',
        catalog_hash TEXT NOT NULL,
        input JSON,
        output JSON,
        timestamp DATETIME
    );`
	_, err := s.db.ExecContext(context.Background(), query)
	return err
}

// Append inserts one evaluation record. Records are never updated or
// deleted.
func (s *SQLiteStore) Append(ctx context.Context, r *Record) error {
	query := `INSERT INTO evaluations (
		request_id, tool, state, verdict, catalog_hash, input, output, timestamp
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	timestamp := r.Timestamp.UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx, query,
		r.RequestID, r.Tool, r.State, r.Verdict, r.CatalogHash, r.Input, r.Output, timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation: %w", err)
	}
	return nil
}

// Get returns the record for one request ID.
func (s *SQLiteStore) Get(ctx context.Context, requestID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `
        SELECT request_id, tool, state, verdict, catalog_hash, input, output, timestamp
        FROM evaluations
        WHERE request_id = ?
    `, requestID)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("evaluation %s not found", requestID)
	}
	return r, err
}

// List returns the most recent records, newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT request_id, tool, state, verdict, catalog_hash, input, output, timestamp
        FROM evaluations
        ORDER BY timestamp DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var (
		r         Record
		input     sql.NullString
		output    sql.NullString
		timestamp string
	)
	if err := row.Scan(&r.RequestID, &r.Tool, &r.State, &r.Verdict, &r.CatalogHash, &input, &output, &timestamp); err != nil {
		return nil, err
	}
	r.Input = input.String
	r.Output = output.String
	r.Timestamp = parseTime(timestamp)
	return &r, nil
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Time{}
}
