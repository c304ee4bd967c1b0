package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/corezen-health/screening-server/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	dbPath  string
	idWidth int
}

// NewSQLiteStore creates a SQLite registry store. The database file and
// schema are created if they don't exist.
func NewSQLiteStore(dbPath string, idWidth int) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSQLiteSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:      db,
		dbPath:  dbPath,
		idWidth: idWidth,
	}, nil
}

func createSQLiteSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS client_counter (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value INTEGER NOT NULL DEFAULT 0
	);

	INSERT OR IGNORE INTO client_counter (id, value) VALUES (1, 0);

	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		client_id TEXT NOT NULL UNIQUE,
		record TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// NextClientID increments the counter and returns the new identifier.
func (s *SQLiteStore) NextClientID(ctx context.Context) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE client_counter SET value = value + 1 WHERE id = 1"); err != nil {
		return "", fmt.Errorf("failed to increment counter: %w", err)
	}

	var value int64
	if err := tx.QueryRowContext(ctx, "SELECT value FROM client_counter WHERE id = 1").Scan(&value); err != nil {
		return "", fmt.Errorf("failed to read counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}
	return formatClientID(value, s.idWidth), nil
}

// SaveSnapshot stores or updates the snapshot for a client.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	payload, err := json.Marshal(snap.Record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	now := time.Now()
	snap.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, `
		UPDATE snapshots SET record = ?, updated_at = ? WHERE client_id = ?
	`, string(payload), now, snap.ClientID)
	if err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update: %w", err)
	}
	if affected > 0 {
		return nil
	}

	snap.CreatedAt = now
	insert, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (client_id, record, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, snap.ClientID, string(payload), now, now)
	if err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}

	id, err := insert.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert ID: %w", err)
	}
	snap.ID = id
	return nil
}

// GetSnapshot returns the snapshot for a client, or nil when none exists.
func (s *SQLiteStore) GetSnapshot(ctx context.Context, clientID string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_id, record, created_at, updated_at
		FROM snapshots
		WHERE client_id = ?
		LIMIT 1
	`, clientID)

	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	return snap, nil
}

// ListSnapshots returns stored snapshots newest first.
func (s *SQLiteStore) ListSnapshots(ctx context.Context, limit, offset int) ([]*Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_id, record, created_at, updated_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var result []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, snap)
	}
	return result, rows.Err()
}

// Count returns the number of stored snapshots.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&count)
	return count, err
}

// DeleteSnapshot removes the snapshot for a client.
func (s *SQLiteStore) DeleteSnapshot(ctx context.Context, clientID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE client_id = ?", clientID)
	return err
}

// Close closes the store and releases resources.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// scanner is an interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(s scanner) (*Snapshot, error) {
	snap := &Snapshot{}
	var payload string

	err := s.Scan(&snap.ID, &snap.ClientID, &payload, &snap.CreatedAt, &snap.UpdatedAt)
	if err != nil {
		return nil, err
	}

	record := &domain.AssessmentRecord{}
	if err := json.Unmarshal([]byte(payload), record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	snap.Record = record
	return snap, nil
}
