package store

import "github.com/MKhiriev/go-custody/internal/logger"

// Storages bundles the repositories the service layer depends on.
type Storages struct {
	JournalRepository  JournalRepository
	SnapshotRepository SnapshotRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		JournalRepository:  NewJournalRepository(db, logger),
		SnapshotRepository: NewSnapshotRepository(db, logger),
	}
}
