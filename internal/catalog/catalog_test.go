package catalog_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/catalog"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) (*ent.Client, *catalog.Context) {
	t.Helper()

	client := testhelper.NewEntSqliteClient(t)
	return client, catalog.NewContext(client, events.NewEventService())
}

func TestCreateSubject(t *testing.T) {
	tests := []struct {
		name        string
		subjectName string
		code        string
		expectError error
	}{
		{name: "new subject", subjectName: "Physics", code: "PHYS"},
		{name: "duplicate name", subjectName: "Math", code: "MATH2", expectError: defs.ErrDuplicateSubject},
		{name: "duplicate code", subjectName: "Maths", code: "MATH", expectError: defs.ErrDuplicateSubject},
		{name: "empty name", subjectName: "", code: "X", expectError: defs.ErrInvalidInput},
		{name: "empty code", subjectName: "X", code: "", expectError: defs.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, ctx := setupTestDatabase(t)
			context := context.Background()

			testhelper.CreateSubject(t, client, "Math", "MATH")

			created, err := ctx.CreateSubject(context, tt.subjectName, tt.code)
			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)

				count, err := client.Subject.Query().Count(context)
				require.NoError(t, err)
				assert.Equal(t, 1, count)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.subjectName, created.Name)
			assert.Equal(t, tt.code, created.Code)
		})
	}
}

func TestListSubjects(t *testing.T) {
	client, ctx := setupTestDatabase(t)
	context := context.Background()

	phys := testhelper.CreateSubject(t, client, "Physics", "PHYS")
	art := testhelper.CreateSubject(t, client, "Art", "ART")

	subjects, err := ctx.ListSubjects(context)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, art.ID, subjects[0].ID)
	assert.Equal(t, phys.ID, subjects[1].ID)

	_, err = ctx.GetSubject(context, 999)
	require.ErrorIs(t, err, defs.ErrNotFound)
}

func TestDeleteSubject(t *testing.T) {
	t.Run("cascades to assignments, submissions and enrollments", func(t *testing.T) {
		client, ctx := setupTestDatabase(t)
		context := context.Background()

		math := testhelper.CreateSubject(t, client, "Math", "MATH")
		art := testhelper.CreateSubject(t, client, "Art", "ART")
		teacher := testhelper.CreateAccount(t, client, account.RoleTeacher, "teacher", math, art)
		student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math, art)

		for _, subj := range []*ent.Subject{math, art} {
			_, err := ctx.PublishAssignment(context, catalog.PublishRequest{
				SubjectID: subj.ID, TeacherID: teacher.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.AllEnrolled,
			})
			require.NoError(t, err)
		}

		require.NoError(t, ctx.DeleteSubject(context, math.ID))

		_, err := ctx.GetSubject(context, math.ID)
		require.ErrorIs(t, err, defs.ErrNotFound)

		assignments, err := client.Assignment.Query().All(context)
		require.NoError(t, err)
		require.Len(t, assignments, 1)
		assert.Equal(t, art.ID, assignments[0].SubjectID)

		submissions, err := client.Submission.Query().Where(submission.StudentID(student.ID)).Count(context)
		require.NoError(t, err)
		assert.Equal(t, 1, submissions)

		subjects, err := student.QuerySubjects().IDs(context)
		require.NoError(t, err)
		assert.Equal(t, []int{art.ID}, subjects)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, ctx := setupTestDatabase(t)

		err := ctx.DeleteSubject(context.Background(), 999)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})
}

type publishFixture struct {
	client  *ent.Client
	ctx     *catalog.Context
	math    *ent.Subject
	art     *ent.Subject
	teacher *ent.Account
	alice   *ent.Account
	bob     *ent.Account
	outside *ent.Account
}

func setupPublishFixture(t *testing.T) publishFixture {
	t.Helper()

	client, ctx := setupTestDatabase(t)
	f := publishFixture{client: client, ctx: ctx}

	f.math = testhelper.CreateSubject(t, client, "Math", "MATH")
	f.art = testhelper.CreateSubject(t, client, "Art", "ART")
	f.teacher = testhelper.CreateAccount(t, client, account.RoleTeacher, "teacher", f.math)
	testhelper.CreateAccount(t, client, account.RoleTeacher, "coteacher", f.math)
	f.alice = testhelper.CreateAccount(t, client, account.RoleStudent, "alice", f.math)
	f.bob = testhelper.CreateAccount(t, client, account.RoleStudent, "bob", f.math, f.art)
	f.outside = testhelper.CreateAccount(t, client, account.RoleStudent, "outside", f.art)

	return f
}

func TestPublishAssignment(t *testing.T) {
	t.Run("fan-out to every enrolled student", func(t *testing.T) {
		f := setupPublishFixture(t)
		context := context.Background()

		result, err := f.ctx.PublishAssignment(context, catalog.PublishRequest{
			SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "2+2?", Target: catalog.AllEnrolled,
		})
		require.NoError(t, err)
		require.NotNil(t, result.Assignment.AuthorID)
		assert.Equal(t, f.teacher.ID, *result.Assignment.AuthorID)

		// one pending submission per enrolled student, none for teachers
		students := make([]int, 0, len(result.Submissions))
		for _, s := range result.Submissions {
			assert.Nil(t, s.Answer)
			assert.Nil(t, s.Grade)
			assert.Equal(t, result.Assignment.ID, s.AssignmentID)
			students = append(students, s.StudentID)
		}
		assert.ElementsMatch(t, []int{f.alice.ID, f.bob.ID}, students)

		stored, err := f.client.Submission.Query().Count(context)
		require.NoError(t, err)
		assert.Equal(t, 2, stored)
	})

	t.Run("single enrolled student", func(t *testing.T) {
		f := setupPublishFixture(t)

		result, err := f.ctx.PublishAssignment(context.Background(), catalog.PublishRequest{
			SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 2, QuestionText: "3+3?", Target: catalog.Student(f.bob.ID),
		})
		require.NoError(t, err)
		require.Len(t, result.Submissions, 1)
		assert.Equal(t, f.bob.ID, result.Submissions[0].StudentID)
	})

	t.Run("subject without students", func(t *testing.T) {
		f := setupPublishFixture(t)
		context := context.Background()

		empty := testhelper.CreateSubject(t, f.client, "Empty", "EMPTY")
		require.NoError(t, f.teacher.Update().AddSubjects(empty).Exec(context))

		result, err := f.ctx.PublishAssignment(context, catalog.PublishRequest{
			SubjectID: empty.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.AllEnrolled,
		})
		require.NoError(t, err)
		assert.Empty(t, result.Submissions)
	})

	t.Run("question numbers may repeat", func(t *testing.T) {
		f := setupPublishFixture(t)
		context := context.Background()

		for range 2 {
			_, err := f.ctx.PublishAssignment(context, catalog.PublishRequest{
				SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.AllEnrolled,
			})
			require.NoError(t, err)
		}

		assignments, err := f.ctx.ListAssignments(context, f.math.ID)
		require.NoError(t, err)
		assert.Len(t, assignments, 2)
	})

	t.Run("students enrolled later get nothing", func(t *testing.T) {
		f := setupPublishFixture(t)
		context := context.Background()

		result, err := f.ctx.PublishAssignment(context, catalog.PublishRequest{
			SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.AllEnrolled,
		})
		require.NoError(t, err)

		require.NoError(t, f.outside.Update().AddSubjects(f.math).Exec(context))

		count, err := f.client.Submission.Query().
			Where(submission.AssignmentID(result.Assignment.ID), submission.StudentID(f.outside.ID)).
			Count(context)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	failures := []struct {
		name        string
		req         func(f publishFixture) catalog.PublishRequest
		expectError error
	}{
		{
			name: "teacher not enrolled",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: f.art.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q"}
			},
			expectError: defs.ErrNotEnrolled,
		},
		{
			name: "student cannot publish",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: f.math.ID, TeacherID: f.alice.ID, QuestionNumber: 1, QuestionText: "Q"}
			},
			expectError: defs.ErrNotEnrolled,
		},
		{
			name: "target student not enrolled",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.Student(f.outside.ID)}
			},
			expectError: defs.ErrNotEnrolled,
		},
		{
			name: "target is a teacher",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.Student(f.teacher.ID)}
			},
			expectError: defs.ErrNotEnrolled,
		},
		{
			name: "question number zero",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 0, QuestionText: "Q"}
			},
			expectError: defs.ErrInvalidInput,
		},
		{
			name: "blank question",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: f.math.ID, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "  "}
			},
			expectError: defs.ErrInvalidInput,
		},
		{
			name: "unknown subject",
			req: func(f publishFixture) catalog.PublishRequest {
				return catalog.PublishRequest{SubjectID: 999, TeacherID: f.teacher.ID, QuestionNumber: 1, QuestionText: "Q"}
			},
			expectError: defs.ErrNotFound,
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			f := setupPublishFixture(t)
			context := context.Background()

			_, err := f.ctx.PublishAssignment(context, tt.req(f))
			require.ErrorIs(t, err, tt.expectError)

			assignments, err := f.client.Assignment.Query().Count(context)
			require.NoError(t, err)
			assert.Zero(t, assignments)

			submissions, err := f.client.Submission.Query().Count(context)
			require.NoError(t, err)
			assert.Zero(t, submissions)
		})
	}
}
