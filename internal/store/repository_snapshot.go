package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-custody/internal/logger"
)

// snapshotRepository is the SQL-backed implementation of [SnapshotRepository].
type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Save upserts the snapshot stored under name.
func (r *snapshotRepository) Save(ctx context.Context, name string, state []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSnapshotQuery(r.db.builder(), name, state, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Str("name", name).Msg("failed to save snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Load returns the snapshot stored under name or [ErrSnapshotNotFound].
func (r *snapshotRepository) Load(ctx context.Context, name string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSnapshotQuery(r.db.builder(), name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&state); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		log.Err(err).Str("func", "*snapshotRepository.Load").Str("name", name).Msg("failed to load snapshot")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return []byte(state), nil
}
