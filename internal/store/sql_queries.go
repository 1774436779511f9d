package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-custody/models"
)

const (
	journalTable   = "journal"
	snapshotsTable = "snapshots"
)

var journalColumns = []string{"id", "operation", "resource", "amount", "detail", "counter", "trace_id", "created_at"}

func buildAppendJournalQuery(b sq.StatementBuilderType, e models.JournalEntry) (string, []any, error) {
	return b.Insert(journalTable).
		Columns(journalColumns...).
		Values(e.ID, string(e.Operation), string(e.Resource), int64(e.Amount), e.Detail, int64(e.Counter), e.TraceID, e.CreatedAt.UTC()).
		ToSql()
}

// buildListJournalQuery returns entries oldest first. Zero-valued filter
// fields are ignored.
func buildListJournalQuery(b sq.StatementBuilderType, f models.JournalFilter) (string, []any, error) {
	q := b.Select(journalColumns...).
		From(journalTable).
		OrderBy("created_at ASC", "id ASC")

	if f.Operation != "" {
		q = q.Where(sq.Eq{"operation": string(f.Operation)})
	}
	if !f.Since.IsZero() {
		q = q.Where(sq.GtOrEq{"created_at": f.Since.UTC()})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	return q.ToSql()
}

func buildSaveSnapshotQuery(b sq.StatementBuilderType, name string, state []byte, at any) (string, []any, error) {
	return b.Insert(snapshotsTable).
		Columns("name", "state", "updated_at").
		Values(name, string(state), at).
		Suffix("ON CONFLICT (name) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at").
		ToSql()
}

func buildLoadSnapshotQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select("state").
		From(snapshotsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
