package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresStore implements Store using PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	idWidth int
}

// NewPostgresStore creates a PostgreSQL registry store on an existing
// connection. The schema is created if it doesn't exist.
func NewPostgresStore(db *sql.DB, idWidth int) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createPostgresSchema(db); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{db: db, idWidth: idWidth}, nil
}

// NewPostgresStoreFromURL creates a PostgreSQL registry store from a
// connection URL.
func NewPostgresStoreFromURL(databaseURL string, idWidth int) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	store, err := NewPostgresStore(db, idWidth)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func createPostgresSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS client_counter (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value BIGINT NOT NULL DEFAULT 0
	);

	INSERT INTO client_counter (id, value) VALUES (1, 0) ON CONFLICT (id) DO NOTHING;

	CREATE TABLE IF NOT EXISTS snapshots (
		id BIGSERIAL PRIMARY KEY,
		client_id TEXT NOT NULL UNIQUE,
		record JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at);
	`

	_, err := db.Exec(schema)
	return err
}

// NextClientID increments the counter and returns the new identifier.
func (s *PostgresStore) NextClientID(ctx context.Context) (string, error) {
	var value int64
	err := s.db.QueryRowContext(ctx,
		"UPDATE client_counter SET value = value + 1 WHERE id = 1 RETURNING value",
	).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("failed to increment counter: %w", err)
	}
	return formatClientID(value, s.idWidth), nil
}

// SaveSnapshot stores or updates the snapshot for a client.
func (s *PostgresStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	payload, err := json.Marshal(snap.Record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO snapshots (client_id, record, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id) DO UPDATE SET
			record = EXCLUDED.record,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		snap.ClientID, string(payload), now, now,
	).Scan(&snap.ID, &snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}
	snap.UpdatedAt = now
	return nil
}

// GetSnapshot returns the snapshot for a client, or nil when none exists.
func (s *PostgresStore) GetSnapshot(ctx context.Context, clientID string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_id, record, created_at, updated_at
		FROM snapshots
		WHERE client_id = $1
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
func (s *PostgresStore) ListSnapshots(ctx context.Context, limit, offset int) ([]*Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_id, record, created_at, updated_at
		FROM snapshots
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
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
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshots").Scan(&count)
	return count, err
}

// DeleteSnapshot removes the snapshot for a client.
func (s *PostgresStore) DeleteSnapshot(ctx context.Context, clientID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE client_id = $1", clientID)
	return err
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
