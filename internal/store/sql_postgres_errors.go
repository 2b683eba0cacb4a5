package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result of [ErrorClassificator.Classify]. It
// tells whether a failed page transaction could succeed on a later run.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors and for data, integrity
	// and schema failures: the same page would fail again.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient conditions such as lost connections,
	// serialization failures or deadlock rollbacks.
	Retryable
)

func (c ErrorClassification) String() string {
	if c == Retryable {
		return "retryable"
	}
	return "non-retryable"
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx
// driver. The result is reported on [ApplyError.Retryable]; nothing retries
// automatically.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not a
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification]
// by its class (https://www.postgresql.org/docs/current/errcodes-appendix.html):
//
//   - 08 connection exception, 40 transaction rollback, 53 insufficient
//     resources and 57 operator intervention are [Retryable];
//   - 55P03 lock not available is [Retryable];
//   - every other code is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code),
		code == pgerrcode.LockNotAvailable:
		return Retryable
	default:
		return NonRetryable
	}
}
