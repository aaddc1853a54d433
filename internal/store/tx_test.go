package store_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/store"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_Commit(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	ctx := context.Background()

	err := store.WithTx(ctx, client, func(tx *ent.Tx) error {
		_, err := tx.Subject.Create().SetName("Math").SetCode("MATH").Save(ctx)
		return err
	})
	require.NoError(t, err)

	count, err := client.Subject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWithTx_Rollback(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := store.WithTx(ctx, client, func(tx *ent.Tx) error {
		if _, err := tx.Subject.Create().SetName("Math").SetCode("MATH").Save(ctx); err != nil {
			return err
		}
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	count, err := client.Subject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "nothing should be written after a rollback")
}

func TestWithTx_Panic(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = store.WithTx(ctx, client, func(tx *ent.Tx) error {
			if _, err := tx.Subject.Create().SetName("Math").SetCode("MATH").Save(ctx); err != nil {
				return err
			}
			panic("boom")
		})
	})

	count, err := client.Subject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		conflict bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("boom")},
		{name: "sqlite busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, conflict: true},
		{name: "sqlite locked", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), conflict: true},
		{name: "sqlite constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}},
		{name: "postgres serialization", err: &pgconn.PgError{Code: "40001"}, conflict: true},
		{name: "postgres deadlock", err: fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40P01"}), conflict: true},
		{name: "postgres unique violation", err: &pgconn.PgError{Code: "23505"}},
		{name: "already conflict", err: defs.ErrConflict, conflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := store.Classify(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}

			assert.Equal(t, tt.conflict, errors.Is(got, defs.ErrConflict))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
