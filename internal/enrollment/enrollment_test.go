package enrollment_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) (*ent.Client, *enrollment.Context) {
	t.Helper()

	client := testhelper.NewEntSqliteClient(t)
	return client, enrollment.NewContext(client, events.NewEventService())
}

func subjectIDs(subjects []*ent.Subject) []int {
	ids := make([]int, 0, len(subjects))
	for _, s := range subjects {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestResolveSubjects(t *testing.T) {
	client, _ := setupTestDatabase(t)
	math := testhelper.CreateSubject(t, client, "Math", "MATH")
	phys := testhelper.CreateSubject(t, client, "Physics", "PHYS")

	tests := []struct {
		name        string
		refs        []enrollment.SubjectRef
		want        []int
		expectError error
	}{
		{name: "empty", refs: nil, want: []int{}},
		{name: "by id", refs: []enrollment.SubjectRef{enrollment.ByID(phys.ID)}, want: []int{phys.ID}},
		{name: "by code", refs: []enrollment.SubjectRef{enrollment.ByCode("MATH")}, want: []int{math.ID}},
		{
			name: "mixed and deduplicated",
			refs: []enrollment.SubjectRef{enrollment.ByCode("PHYS"), enrollment.ByID(math.ID), enrollment.ByID(phys.ID)},
			want: []int{phys.ID, math.ID},
		},
		{name: "unknown code", refs: []enrollment.SubjectRef{enrollment.ByCode("MATH"), enrollment.ByCode("CHEM")}, expectError: defs.ErrUnknownSubject},
		{name: "unknown id", refs: []enrollment.SubjectRef{enrollment.ByID(999)}, expectError: defs.ErrUnknownSubject},
		{name: "codes are case sensitive", refs: []enrollment.SubjectRef{enrollment.ByCode("math")}, expectError: defs.ErrUnknownSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enrollment.ResolveSubjects(context.Background(), client, tt.refs)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueries(t *testing.T) {
	client, ctx := setupTestDatabase(t)
	context := context.Background()

	math := testhelper.CreateSubject(t, client, "Math", "MATH")
	art := testhelper.CreateSubject(t, client, "Art", "ART")
	empty := testhelper.CreateSubject(t, client, "Empty", "EMPTY")

	teacher := testhelper.CreateAccount(t, client, account.RoleTeacher, "teacher", math)
	bob := testhelper.CreateAccount(t, client, account.RoleStudent, "bob", math, art)
	alice := testhelper.CreateAccount(t, client, account.RoleStudent, "alice", math)

	t.Run("subjects for account are ordered by name", func(t *testing.T) {
		subjects, err := ctx.SubjectsFor(context, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{art.ID, math.ID}, subjectIDs(subjects))
	})

	t.Run("subjects for unknown account", func(t *testing.T) {
		_, err := ctx.SubjectsFor(context, 999)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})

	t.Run("students enrolled are ordered by display name", func(t *testing.T) {
		students, err := ctx.StudentsEnrolled(context, math.ID)
		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, alice.ID, students[0].ID)
		assert.Equal(t, bob.ID, students[1].ID)
	})

	t.Run("teachers enrolled", func(t *testing.T) {
		teachers, err := ctx.TeachersEnrolled(context, math.ID)
		require.NoError(t, err)
		require.Len(t, teachers, 1)
		assert.Equal(t, teacher.ID, teachers[0].ID)
	})

	t.Run("subject without members", func(t *testing.T) {
		students, err := ctx.StudentsEnrolled(context, empty.ID)
		require.NoError(t, err)
		assert.Empty(t, students)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := ctx.StudentsEnrolled(context, 999)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})

	t.Run("is enrolled", func(t *testing.T) {
		enrolled, err := ctx.IsEnrolled(context, bob.ID, art.ID)
		require.NoError(t, err)
		assert.True(t, enrolled)

		enrolled, err = ctx.IsEnrolled(context, alice.ID, art.ID)
		require.NoError(t, err)
		assert.False(t, enrolled)
	})
}

func TestReplaceSubjects(t *testing.T) {
	t.Run("replaces the whole set", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		math := testhelper.CreateSubject(t, client, "Math", "MATH")
		art := testhelper.CreateSubject(t, client, "Art", "ART")
		phys := testhelper.CreateSubject(t, client, "Physics", "PHYS")
		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math, art)

		err := ctx.ReplaceSubjects(context, student.ID, []enrollment.SubjectRef{
			enrollment.ByCode("PHYS"),
			enrollment.ByID(math.ID),
		})
		require.NoError(t, err)

		subjects, err := ctx.SubjectsFor(context, student.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{math.ID, phys.ID}, subjectIDs(subjects))
	})

	t.Run("unknown subject leaves enrollment untouched", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		math := testhelper.CreateSubject(t, client, "Math", "MATH")
		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math)

		err := ctx.ReplaceSubjects(context, student.ID, []enrollment.SubjectRef{enrollment.ByCode("NOPE")})
		require.ErrorIs(t, err, defs.ErrUnknownSubject)

		subjects, err := ctx.SubjectsFor(context, student.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{math.ID}, subjectIDs(subjects))
	})

	t.Run("unknown account", func(t *testing.T) {
		_, ctx := setupTestDatabase(t)

		err := ctx.ReplaceSubjects(context.Background(), 999, nil)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})

	t.Run("leaving a subject drops its submissions", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		math := testhelper.CreateSubject(t, client, "Math", "MATH")
		art := testhelper.CreateSubject(t, client, "Art", "ART")
		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math, art)

		mathQ, err := client.Assignment.Create().SetSubjectID(math.ID).SetQuestionNumber(1).SetQuestionText("2+2?").Save(context)
		require.NoError(t, err)
		artQ, err := client.Assignment.Create().SetSubjectID(art.ID).SetQuestionNumber(1).SetQuestionText("Draw").Save(context)
		require.NoError(t, err)
		for _, a := range []*ent.Assignment{mathQ, artQ} {
			_, err := client.Submission.Create().SetAssignmentID(a.ID).SetStudentID(student.ID).Save(context)
			require.NoError(t, err)
		}

		err = ctx.ReplaceSubjects(context, student.ID, []enrollment.SubjectRef{enrollment.ByID(math.ID)})
		require.NoError(t, err)

		remaining, err := client.Submission.Query().Where(submission.StudentID(student.ID)).All(context)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, mathQ.ID, remaining[0].AssignmentID)
	})

	t.Run("records an event", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student")

		require.NoError(t, ctx.ReplaceSubjects(context, student.ID, nil))

		ev, err := client.Event.Query().Only(context)
		require.NoError(t, err)
		assert.Equal(t, string(events.EventTypeSubjectsReplaced), ev.Type)
		assert.Equal(t, student.ID, ev.AccountID)
	})
}
