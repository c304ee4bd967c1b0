package registry

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS client_counter").
		WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewPostgresStore(db, 4)
	require.NoError(t, err)
	return store, mock
}

func TestPostgresNextClientID(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery("UPDATE client_counter SET value = value \\+ 1 WHERE id = 1 RETURNING value").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(7))

	id, err := store.NextClientID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0007", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetSnapshotMissing(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT id, client_id, record, created_at, updated_at").
		WithArgs("0001").
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "record", "created_at", "updated_at"}))

	got, err := store.GetSnapshot(context.Background(), "0001")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeleteSnapshot(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec("DELETE FROM snapshots WHERE client_id").
		WithArgs("0001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.DeleteSnapshot(context.Background(), "0001")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
