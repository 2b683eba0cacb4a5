package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "too many connections", err: &pgconn.PgError{Code: pgerrcode.TooManyConnections}, want: Retryable},
		{name: "admin shutdown", err: &pgconn.PgError{Code: pgerrcode.AdminShutdown}, want: Retryable},
		{name: "lock not available", err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
		{name: "wrapped", err: fmt.Errorf("apply: %w", &pgconn.PgError{Code: pgerrcode.SerializationFailure}), want: Retryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("boom")))
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}
