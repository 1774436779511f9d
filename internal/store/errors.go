package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned by Load when no snapshot with the
	// requested name has been saved yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrJournalEntryNotSaved is returned when an INSERT into the journal
	// affects no rows.
	ErrJournalEntryNotSaved = errors.New("journal entry was not saved")

	// ErrDuplicateJournalEntry is returned when an entry with the same id
	// already exists.
	ErrDuplicateJournalEntry = errors.New("journal entry already exists")

	// ErrUnsupportedDSN is returned when a DSN names neither PostgreSQL nor
	// a SQLite file.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
