package cli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/homework-evaluation/backend/cli"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/subject"
	"github.com/homework-evaluation/backend/internal/config"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *cli.Context {
	t.Helper()

	entClient := testhelper.NewEntSqliteClient(t)
	return cli.NewContext(entClient, events.NewEventService())
}

func TestSetup(t *testing.T) {
	cliCtx := newTestContext(t)
	ctx := context.Background()

	result, err := cliCtx.Setup(ctx, config.AdminConfig{Username: "root", Password: "pw", DisplayName: "Root"})
	require.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, result.Admin.Role)

	require.NoError(t, cliCtx.Migrate(ctx))
}

func TestCreateAndDeleteAccount(t *testing.T) {
	cliCtx := newTestContext(t)
	ctx := context.Background()

	_, err := cliCtx.CreateSubject(ctx, "Math", "MTH1")
	require.NoError(t, err)

	created, err := cliCtx.CreateAccount(ctx, directory.CreateAccountRequest{
		Role:        account.RoleStudent,
		Username:    "alice",
		Secret:      "pw",
		DisplayName: "Alice",
		Subjects:    []enrollment.SubjectRef{enrollment.ByCode("MTH1")},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)

	require.NoError(t, cliCtx.DeleteAccount(ctx, "alice"))

	err = cliCtx.DeleteAccount(ctx, "alice")
	assert.True(t, errors.Is(err, defs.ErrNotFound))
}

const seedJSON = `{
  "subjects": [
    {"name": "Math", "code": "MTH1"},
    {"name": "Art", "code": "ART1"}
  ],
  "accounts": [
    {"role": "teacher", "username": "t1", "password": "pw", "display_name": "Teacher One", "subjects": ["MTH1"]},
    {"role": "student", "username": "s1", "password": "pw", "display_name": "Student One", "subjects": ["MTH1", "ART1"]},
    {"role": "student", "username": "s2", "password": "pw", "display_name": "Student Two", "subjects": ["NOPE"]}
  ]
}`

func TestParseSeedFile(t *testing.T) {
	file, err := cli.ParseSeedFile([]byte(seedJSON))
	require.NoError(t, err)
	assert.Len(t, file.Subjects, 2)
	assert.Len(t, file.Accounts, 3)

	tests := map[string]string{
		"malformed":       `{`,
		"subject no code": `{"subjects": [{"name": "Math"}]}`,
		"admin account":   `{"accounts": [{"role": "admin", "username": "a", "password": "pw", "display_name": "A"}]}`,
		"no password":     `{"accounts": [{"role": "student", "username": "a", "display_name": "A"}]}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := cli.ParseSeedFile([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestSeed(t *testing.T) {
	entClient := testhelper.NewEntSqliteClient(t)
	cliCtx := cli.NewContext(entClient, events.NewEventService())
	ctx := context.Background()

	file, err := cli.ParseSeedFile([]byte(seedJSON))
	require.NoError(t, err)

	summary := cliCtx.Seed(ctx, file)
	assert.Equal(t, 4, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.True(t, errors.Is(summary.Errors[0], defs.ErrUnknownSubject))

	s1Subjects, err := entClient.Account.Query().
		Where(account.UsernameEQ("s1")).
		QuerySubjects().
		Order(subject.ByCode()).
		Select(subject.FieldCode).
		Strings(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ART1", "MTH1"}, s1Subjects)

	// seeding again skips what exists
	summary = cliCtx.Seed(ctx, file)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 4, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
}
