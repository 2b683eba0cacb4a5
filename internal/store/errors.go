package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrApply is matched by every [*ApplyError]: a page of dataset items
	// could not be written and its transaction was rolled back.
	ErrApply = errors.New("error applying dataset page")

	// ErrVersionOutOfRange is returned when a checkpoint version does not fit
	// the signed BIGINT column it is stored in.
	ErrVersionOutOfRange = errors.New("sync version out of range")

	// ErrNoSchemaVersion is returned by the schema repository when the
	// migration version table holds no applied migration.
	ErrNoSchemaVersion = errors.New("schema version is not recorded")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSON-valued column cannot be encoded.
	ErrEncodingJSON = errors.New("failed to encode json column")
)

// ApplyError reports a failed page transaction of one dataset.
type ApplyError struct {
	// Dataset is the dataset ID whose page failed.
	Dataset string
	// Err is the underlying failure.
	Err error
	// Retryable tells whether the driver classified the failure as transient.
	Retryable bool
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply %s: %v", e.Dataset, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrApply) true for every ApplyError.
func (e *ApplyError) Is(target error) bool {
	return target == ErrApply
}
