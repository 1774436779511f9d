package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-custody/internal/logger"
	"github.com/MKhiriev/go-custody/models"
	"github.com/jackc/pgerrcode"
)

const (
	appendAttempts   = 3
	appendRetryDelay = 50 * time.Millisecond
)

// journalRepository is the SQL-backed implementation of [JournalRepository].
type journalRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		db:     db,
		logger: logger,
	}
}

// Append inserts entry. Errors the dialect's classifier marks as transient
// are retried up to appendAttempts times.
//
// Error handling:
//   - unique violation on id → [ErrDuplicateJournalEntry].
//   - zero rows affected → [ErrJournalEntryNotSaved].
//   - anything else → wrapped [ErrExecutingStatement].
func (r *journalRepository) Append(ctx context.Context, entry models.JournalEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAppendJournalQuery(r.db.builder(), entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var execErr error
	for attempt := 1; attempt <= appendAttempts; attempt++ {
		var res sql.Result
		res, execErr = r.db.ExecContext(ctx, query, args...)
		if execErr == nil {
			affected, err := res.RowsAffected()
			if err == nil && affected == 0 {
				return ErrJournalEntryNotSaved
			}
			return nil
		}

		if postgresError(execErr) == pgerrcode.UniqueViolation || isSQLiteConstraint(execErr) {
			return ErrDuplicateJournalEntry
		}
		if !r.db.retryable(execErr) || attempt == appendAttempts {
			break
		}

		log.Warn().Err(execErr).
			Str("func", "*journalRepository.Append").
			Int("attempt", attempt).
			Msg("retrying journal append")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(appendRetryDelay * time.Duration(attempt)):
		}
	}

	log.Err(execErr).
		Str("func", "*journalRepository.Append").
		Str("id", entry.ID).
		Msg("failed to append journal entry")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
}

// List returns entries matching filter, oldest first.
func (r *journalRepository) List(ctx context.Context, filter models.JournalFilter) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListJournalQuery(r.db.builder(), filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*journalRepository.List").Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var (
			e         models.JournalEntry
			operation string
			resource  string
			amount    int64
			counter   int64
		)
		if err := rows.Scan(&e.ID, &operation, &resource, &amount, &e.Detail, &counter, &e.TraceID, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*journalRepository.List").Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.Operation = models.Operation(operation)
		e.Resource = models.ResourceAddress(resource)
		e.Amount = models.Amount(amount)
		e.Counter = uint32(counter)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
