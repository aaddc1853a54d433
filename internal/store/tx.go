// Package store runs ent transactions and maps driver contention errors
// to defs.ErrConflict.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// WithTx runs fn inside a transaction. The transaction is rolled back
// when fn returns an error or panics, and committed otherwise.
//
// Contention errors from either driver come back wrapping defs.ErrConflict.
func WithTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) (err error) {
	tx, err := client.Tx(ctx)
	if err != nil {
		return Classify(fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = multierror.Append(err, fmt.Errorf("rollback: %w", rerr))
		}

		return Classify(err)
	}

	if err := tx.Commit(); err != nil {
		return Classify(fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}

// postgres SQLSTATEs that mean "retry me"
var pgContentionCodes = map[string]struct{}{
	"40001": {}, // serialization_failure
	"40P01": {}, // deadlock_detected
	"55P03": {}, // lock_not_available
}

// IsBusy reports whether err is a lock or serialization failure from the
// underlying database.
func IsBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		_, ok := pgContentionCodes[pgErr.Code]
		return ok
	}

	return false
}

// Classify wraps contention errors with defs.ErrConflict and returns
// everything else unchanged.
func Classify(err error) error {
	if err == nil || errors.Is(err, defs.ErrConflict) {
		return err
	}

	if IsBusy(err) {
		return fmt.Errorf("%w: %w", defs.ErrConflict, err)
	}

	return err
}
