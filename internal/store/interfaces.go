package store

import (
	"context"

	"github.com/MKhiriev/go-custody/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JournalRepository is the append-only audit trail of committed custody
// operations.
type JournalRepository interface {
	Append(ctx context.Context, entry models.JournalEntry) error
	List(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error)
}

// SnapshotRepository stores named JSON snapshots of component and registry
// state. Save overwrites any previous snapshot with the same name.
type SnapshotRepository interface {
	Save(ctx context.Context, name string, state []byte) error
	Load(ctx context.Context, name string) ([]byte, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
