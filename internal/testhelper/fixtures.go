package testhelper

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/stretchr/testify/require"
)

// CreateSubject inserts a subject directly, bypassing the catalog.
func CreateSubject(t *testing.T, client *ent.Client, name, code string) *ent.Subject {
	t.Helper()

	s, err := client.Subject.Create().
		SetName(name).
		SetCode(code).
		Save(context.Background())
	require.NoError(t, err)

	return s
}

// CreateAccount inserts an account enrolled in subjects, bypassing the
// directory. The secret is "pw-" + username.
func CreateAccount(t *testing.T, client *ent.Client, role account.Role, username string, subjects ...*ent.Subject) *ent.Account {
	t.Helper()

	a, err := client.Account.Create().
		SetUsername(username).
		SetSecret("pw-" + username).
		SetRole(role).
		SetDisplayName(username).
		AddSubjects(subjects...).
		Save(context.Background())
	require.NoError(t, err)

	return a
}
