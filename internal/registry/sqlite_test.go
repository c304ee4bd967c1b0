package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corezen-health/screening-server/internal/domain"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "registry.db"), 4)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteNextClientID(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	first, err := store.NextClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0001", first)

	second, err := store.NextClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0002", second)
}

func TestSQLiteNextClientIDSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path, 4)
	require.NoError(t, err)
	id, err := store.NextClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0001", id)
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path, 4)
	require.NoError(t, err)
	defer reopened.Close()

	id, err = reopened.NextClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0002", id, "counter should persist across reopen")
}

func TestSQLiteSnapshotRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	snap := &Snapshot{
		ClientID: "0001",
		Record: &domain.AssessmentRecord{
			ClientID:    "0001",
			ClientName:  "Test Client",
			BPSystolic:  "128",
			BPDiastolic: "82",
		},
	}

	require.NoError(t, store.SaveSnapshot(ctx, snap))
	assert.NotZero(t, snap.ID)

	got, err := store.GetSnapshot(ctx, "0001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "128", got.Record.BPSystolic)
	assert.Equal(t, "Test Client", got.Record.ClientName)
}

func TestSQLiteSnapshotUpdate(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	snap := &Snapshot{
		ClientID: "0001",
		Record:   &domain.AssessmentRecord{ClientID: "0001", Weight: "80"},
	}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	snap.Record.Weight = "79"
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	got, err := store.GetSnapshot(ctx, "0001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "79", got.Record.Weight)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "update should not create a second row")
}

func TestSQLiteGetSnapshotMissing(t *testing.T) {
	store := newTestSQLiteStore(t)

	got, err := store.GetSnapshot(context.Background(), "9999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteDeleteSnapshot(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	snap := &Snapshot{ClientID: "0001", Record: &domain.AssessmentRecord{}}
	require.NoError(t, store.SaveSnapshot(ctx, snap))
	require.NoError(t, store.DeleteSnapshot(ctx, "0001"))

	got, err := store.GetSnapshot(ctx, "0001")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestFormatClientID(t *testing.T) {
	assert.Equal(t, "0001", formatClientID(1, 4))
	assert.Equal(t, "0042", formatClientID(42, 4))
	assert.Equal(t, "10000", formatClientID(10000, 4))
	assert.Equal(t, "000007", formatClientID(7, 6))
	assert.Equal(t, "0003", formatClientID(3, 0), "zero width falls back to default")
}
