package store

import (
	"context"
	"database/sql"
	"fmt"
)

// WithTx begins a transaction, runs fn with it, and then commits on success
// or rolls back on error or panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
		}
	}()

	err = fn(ctx, tx)
	return err
}
