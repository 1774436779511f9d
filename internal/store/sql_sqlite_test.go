package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-custody/internal/config"
	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
)

// TestSQLite_RoundTrip runs both repositories against a migrated SQLite file.
func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "custody.db")

	db, err := NewConnect(ctx, config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	assert.Equal(t, DialectSQLite, db.Dialect())
	require.NoError(t, db.Migrate())

	storages := NewStorages(db, logger.Nop())

	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.JournalEntry{
		{ID: "a", Operation: models.OperationWithdraw, Resource: "resource_x", Amount: 200, Counter: 1, CreatedAt: base},
		{ID: "b", Operation: models.OperationIncrease, Counter: 2, CreatedAt: base.Add(time.Minute)},
		{ID: "c", Operation: models.OperationWithdraw, Resource: "resource_x", Amount: 5, Counter: 3, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, storages.JournalRepository.Append(ctx, e))
	}
	assert.ErrorIs(t, storages.JournalRepository.Append(ctx, entries[0]), ErrDuplicateJournalEntry)

	all, err := storages.JournalRepository.List(ctx, models.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].ID)
	assert.True(t, all[0].CreatedAt.Equal(base))

	withdrawals, err := storages.JournalRepository.List(ctx, models.JournalFilter{Operation: models.OperationWithdraw, Limit: 1})
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, models.Amount(200), withdrawals[0].Amount)

	_, err = storages.SnapshotRepository.Load(ctx, "component")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	require.NoError(t, storages.SnapshotRepository.Save(ctx, "component", []byte(`{"counter":1}`)))
	require.NoError(t, storages.SnapshotRepository.Save(ctx, "component", []byte(`{"counter":2}`)))

	state, err := storages.SnapshotRepository.Load(ctx, "component")
	require.NoError(t, err)
	assert.JSONEq(t, `{"counter":2}`, string(state))
}
