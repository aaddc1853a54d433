package directory_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) (*ent.Client, *directory.Context) {
	t.Helper()

	client := testhelper.NewEntSqliteClient(t)
	return client, directory.NewContext(client, events.NewEventService())
}

func TestCreateAccount(t *testing.T) {
	tests := []struct {
		name        string
		req         directory.CreateAccountRequest
		expectError error
	}{
		{
			name: "student with subjects by code and id",
			req: directory.CreateAccountRequest{
				Role: account.RoleStudent, Username: "alice", Secret: "pw", DisplayName: "Alice",
				Subjects: []enrollment.SubjectRef{enrollment.ByCode("MATH"), enrollment.ByCode("ART")},
			},
		},
		{
			name: "teacher without subjects",
			req:  directory.CreateAccountRequest{Role: account.RoleTeacher, Username: "tom", Secret: "pw", DisplayName: "Tom"},
		},
		{
			name: "unknown subject",
			req: directory.CreateAccountRequest{
				Role: account.RoleStudent, Username: "alice", Secret: "pw", DisplayName: "Alice",
				Subjects: []enrollment.SubjectRef{enrollment.ByCode("MATH"), enrollment.ByCode("CHEM")},
			},
			expectError: defs.ErrUnknownSubject,
		},
		{
			name:        "duplicate username across roles",
			req:         directory.CreateAccountRequest{Role: account.RoleTeacher, Username: "taken", Secret: "pw", DisplayName: "Other"},
			expectError: defs.ErrDuplicateUsername,
		},
		{
			name:        "admin cannot be created",
			req:         directory.CreateAccountRequest{Role: account.RoleAdmin, Username: "root", Secret: "pw", DisplayName: "Root"},
			expectError: defs.ErrInvalidInput,
		},
		{
			name:        "empty username",
			req:         directory.CreateAccountRequest{Role: account.RoleStudent, Secret: "pw", DisplayName: "Nobody"},
			expectError: defs.ErrInvalidInput,
		},
		{
			name:        "empty secret",
			req:         directory.CreateAccountRequest{Role: account.RoleStudent, Username: "nobody", DisplayName: "Nobody"},
			expectError: defs.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, ctx := setupTestDatabase(t)
			context := context.Background()

			testhelper.CreateSubject(t, client, "Math", "MATH")
			testhelper.CreateSubject(t, client, "Art", "ART")
			testhelper.CreateAccount(t, client, account.RoleStudent, "taken")

			before, err := client.Account.Query().Count(context)
			require.NoError(t, err)

			created, err := ctx.CreateAccount(context, tt.req)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, created)

				// nothing may be written on failure
				after, err := client.Account.Query().Count(context)
				require.NoError(t, err)
				assert.Equal(t, before, after)

				eventCount, err := client.Event.Query().Count(context)
				require.NoError(t, err)
				assert.Zero(t, eventCount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Username, created.Username)
			assert.Equal(t, tt.req.Role, created.Role)

			subjects, err := created.QuerySubjects().All(context)
			require.NoError(t, err)
			assert.Len(t, subjects, len(tt.req.Subjects))

			ev, err := client.Event.Query().Only(context)
			require.NoError(t, err)
			assert.Equal(t, string(events.EventTypeAccountCreated), ev.Type)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	client, ctx := setupTestDatabase(t)
	context := context.Background()

	// secret is "pw-alice"
	alice := testhelper.CreateAccount(t, client, account.RoleStudent, "alice")

	tests := []struct {
		name     string
		username string
		secret   string
		role     account.Role
		ok       bool
	}{
		{name: "exact match", username: "alice", secret: "pw-alice", role: account.RoleStudent, ok: true},
		{name: "wrong role", username: "alice", secret: "pw-alice", role: account.RoleTeacher},
		{name: "wrong secret", username: "alice", secret: "pw-bob", role: account.RoleStudent},
		{name: "secret differs in case", username: "alice", secret: "PW-alice", role: account.RoleStudent},
		{name: "username differs in case", username: "Alice", secret: "pw-alice", role: account.RoleStudent},
		{name: "trailing whitespace", username: "alice ", secret: "pw-alice", role: account.RoleStudent},
		{name: "unknown user", username: "bob", secret: "pw-bob", role: account.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ctx.Authenticate(context, tt.username, tt.secret, tt.role)
			if !tt.ok {
				require.ErrorIs(t, err, defs.ErrInvalidCredentials)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, alice.ID, got.ID)
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Run("student loses enrollments and submissions", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		math := testhelper.CreateSubject(t, client, "Math", "MATH")
		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math)
		other := testhelper.CreateAccount(t, client, account.RoleStudent, "other", math)

		a, err := client.Assignment.Create().SetSubjectID(math.ID).SetQuestionNumber(1).SetQuestionText("2+2?").Save(context)
		require.NoError(t, err)
		for _, s := range []*ent.Account{student, other} {
			_, err := client.Submission.Create().SetAssignmentID(a.ID).SetStudentID(s.ID).Save(context)
			require.NoError(t, err)
		}

		require.NoError(t, ctx.DeleteAccount(context, student.ID))

		_, err = ctx.GetAccount(context, student.ID)
		require.ErrorIs(t, err, defs.ErrNotFound)

		remaining, err := client.Submission.Query().All(context)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, other.ID, remaining[0].StudentID)

		members, err := math.QueryAccounts().Count(context)
		require.NoError(t, err)
		assert.Equal(t, 1, members)
	})

	t.Run("teacher's assignments stay without author", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		math := testhelper.CreateSubject(t, client, "Math", "MATH")
		teacher := testhelper.CreateAccount(t, client, account.RoleTeacher, "teacher", math)
		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math)

		a, err := client.Assignment.Create().
			SetSubjectID(math.ID).
			SetAuthorID(teacher.ID).
			SetQuestionNumber(1).
			SetQuestionText("2+2?").
			Save(context)
		require.NoError(t, err)
		_, err = client.Submission.Create().SetAssignmentID(a.ID).SetStudentID(student.ID).Save(context)
		require.NoError(t, err)

		require.NoError(t, ctx.DeleteAccount(context, teacher.ID))

		kept, err := client.Assignment.Get(context, a.ID)
		require.NoError(t, err)
		assert.Nil(t, kept.AuthorID)

		count, err := client.Submission.Query().Where(submission.StudentID(student.ID)).Count(context)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, ctx := setupTestDatabase(t)

		err := ctx.DeleteAccount(context.Background(), 999)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})

	t.Run("username can be reused", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		old := testhelper.CreateAccount(t, client, account.RoleStudent, "reuse")
		require.NoError(t, ctx.DeleteAccount(context, old.ID))

		_, err := ctx.CreateAccount(context, directory.CreateAccountRequest{
			Role: account.RoleTeacher, Username: "reuse", Secret: "pw", DisplayName: "Reuse",
		})
		require.NoError(t, err)
	})
}

func TestListAccounts(t *testing.T) {
	client, ctx := setupTestDatabase(t)
	context := context.Background()

	zed := testhelper.CreateAccount(t, client, account.RoleStudent, "zed")
	amy := testhelper.CreateAccount(t, client, account.RoleStudent, "amy")
	teacher := testhelper.CreateAccount(t, client, account.RoleTeacher, "teacher")

	students, err := ctx.ListAccounts(context, account.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, amy.ID, students[0].ID)
	assert.Equal(t, zed.ID, students[1].ID)

	all, err := ctx.ListAccounts(context, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Contains(t, []int{all[0].ID, all[1].ID, all[2].ID}, teacher.ID)

	_, err = ctx.ListAccounts(context, account.Role("janitor"))
	require.ErrorIs(t, err, defs.ErrInvalidInput)
}

func TestEnsureAdmin(t *testing.T) {
	client, ctx := setupTestDatabase(t)
	context := context.Background()

	first, err := ctx.EnsureAdmin(context, "admin", "secret", "Administrator")
	require.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, first.Role)

	second, err := ctx.EnsureAdmin(context, "admin", "secret", "Administrator")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Account.Query().Count(context)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	testhelper.CreateAccount(t, client, account.RoleStudent, "student")
	_, err = ctx.EnsureAdmin(context, "student", "secret", "Student")
	require.ErrorIs(t, err, defs.ErrDuplicateUsername)
}
