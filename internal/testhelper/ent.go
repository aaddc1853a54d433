package testhelper

import (
	"database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/enttest"
	"github.com/homework-evaluation/backend/internal/workers"

	_ "github.com/mattn/go-sqlite3"
)

// NewEntSqliteClient creates a new in-memory Ent SQLite client for testing.
//
// The pool is capped at one connection: every connection to a private
// in-memory database would otherwise see its own empty database.
func NewEntSqliteClient(t *testing.T) *ent.Client {
	t.Helper()

	db, err := sql.Open("sqlite3", "file:ent?mode=memory&cache=private&_fk=1")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := enttest.NewClient(t, enttest.WithOptions(ent.Driver(drv)))

	t.Cleanup(func() {
		// must wait the workers to finish
		workers.Global.Wait()

		if err := client.Close(); err != nil {
			t.Fatalf("Failed to close client: %v", err)
		}
	})

	return client
}
