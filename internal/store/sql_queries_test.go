package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-custody/models"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildAppendJournalQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := models.JournalEntry{
		ID:        "id-1",
		Operation: models.OperationWithdraw,
		Resource:  "resource_1",
		Amount:    200,
		Counter:   1,
		TraceID:   "trace",
		CreatedAt: at,
	}

	query, args, err := buildAppendJournalQuery(pgBuilder, entry)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO journal (id,operation,resource,amount,detail,counter,trace_id,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)", query)
	assert.Equal(t, []any{"id-1", "withdraw", "resource_1", int64(200), "", int64(1), "trace", at}, args)
}

func TestBuildListJournalQuery(t *testing.T) {
	since := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		filter    models.JournalFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:     "no filter",
			builder:  pgBuilder,
			wantArgs: nil,
		},
		{
			name:      "operation and since, postgres",
			builder:   pgBuilder,
			filter:    models.JournalFilter{Operation: models.OperationIncrease, Since: since},
			wantWhere: "WHERE operation = $1 AND created_at >= $2",
			wantArgs:  []any{"increase", since},
		},
		{
			name:      "operation, sqlite",
			builder:   sqliteBuilder,
			filter:    models.JournalFilter{Operation: models.OperationMintFungible},
			wantWhere: "WHERE operation = ?",
			wantArgs:  []any{"mint_fungible"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListJournalQuery(tt.builder, tt.filter)
			require.NoError(t, err)
			assert.Contains(t, query, "FROM journal")
			assert.Contains(t, query, "ORDER BY created_at ASC, id ASC")
			if tt.wantWhere != "" {
				assert.Contains(t, query, tt.wantWhere)
			} else {
				assert.NotContains(t, query, "WHERE")
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildListJournalQuery_Limit(t *testing.T) {
	query, _, err := buildListJournalQuery(pgBuilder, models.JournalFilter{Limit: 5})
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 5")
}

func TestBuildSaveSnapshotQuery(t *testing.T) {
	at := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildSaveSnapshotQuery(sqliteBuilder, "component", []byte(`{}`), at)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO snapshots (name,state,updated_at) VALUES (?,?,?) ON CONFLICT (name) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at", query)
	assert.Equal(t, []any{"component", "{}", at}, args)
}

func TestBuildLoadSnapshotQuery(t *testing.T) {
	query, args, err := buildLoadSnapshotQuery(pgBuilder, "registry")
	require.NoError(t, err)
	assert.Equal(t, "SELECT state FROM snapshots WHERE name = $1", query)
	assert.Equal(t, []any{"registry"}, args)
}
