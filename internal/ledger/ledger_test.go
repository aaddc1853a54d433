package ledger_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/ent/assignment"
	"github.com/homework-evaluation/backend/ent/event"
	"github.com/homework-evaluation/backend/ent/submission"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/ledger"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client *ent.Client
	ctx    *ledger.Context
	math   *ent.Subject
	art    *ent.Subject
	alice  *ent.Account
	bob    *ent.Account
	q1     *ent.Assignment
	q2     *ent.Assignment
	artQ   *ent.Assignment
}

// setupFixture publishes math Q2 and Q1 (in that order) to alice and bob,
// and one art question to bob.
func setupFixture(t *testing.T) fixture {
	t.Helper()

	client := testhelper.NewEntSqliteClient(t)
	context := context.Background()

	f := fixture{client: client, ctx: ledger.NewContext(client, events.NewEventService())}
	f.math = testhelper.CreateSubject(t, client, "Math", "MATH")
	f.art = testhelper.CreateSubject(t, client, "Art", "ART")
	f.alice = testhelper.CreateAccount(t, client, account.RoleStudent, "alice", f.math)
	f.bob = testhelper.CreateAccount(t, client, account.RoleStudent, "bob", f.math, f.art)

	publish := func(subj *ent.Subject, number int, students ...*ent.Account) *ent.Assignment {
		a, err := client.Assignment.Create().
			SetSubjectID(subj.ID).
			SetQuestionNumber(number).
			SetQuestionText("question").
			Save(context)
		require.NoError(t, err)

		for _, s := range students {
			_, err := client.Submission.Create().SetAssignmentID(a.ID).SetStudentID(s.ID).Save(context)
			require.NoError(t, err)
		}
		return a
	}

	f.q2 = publish(f.math, 2, f.alice, f.bob)
	f.q1 = publish(f.math, 1, f.alice, f.bob)
	f.artQ = publish(f.art, 1, f.bob)

	return f
}

func (f fixture) submission(t *testing.T, a *ent.Assignment, student *ent.Account) *ent.Submission {
	t.Helper()

	s, err := f.client.Submission.Query().
		Where(submission.AssignmentID(a.ID), submission.StudentID(student.ID)).
		Only(context.Background())
	require.NoError(t, err)
	return s
}

func ptr[T any](v T) *T {
	return &v
}

func TestStateOf(t *testing.T) {
	tests := []struct {
		name string
		sub  *ent.Submission
		want ledger.State
	}{
		{name: "pending", sub: &ent.Submission{}, want: ledger.StatePending},
		{name: "answered", sub: &ent.Submission{Answer: ptr("4")}, want: ledger.StateAnswered},
		{name: "empty answer still counts", sub: &ent.Submission{Answer: ptr("")}, want: ledger.StateAnswered},
		{name: "graded", sub: &ent.Submission{Answer: ptr("4"), Grade: ptr(2)}, want: ledger.StateGraded},
		{name: "graded without answer", sub: &ent.Submission{Grade: ptr(0)}, want: ledger.StateGraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.StateOf(tt.sub))
		})
	}
}

func TestLifecycle(t *testing.T) {
	f := setupFixture(t)
	context := context.Background()

	sub := f.submission(t, f.q1, f.alice)
	assert.Equal(t, ledger.StatePending, ledger.StateOf(sub))

	answered, err := f.ctx.SubmitAnswer(context, f.q1.ID, f.alice.ID, "4")
	require.NoError(t, err)
	assert.Equal(t, ledger.StateAnswered, ledger.StateOf(answered))
	assert.Equal(t, "4", *answered.Answer)
	assert.NotNil(t, answered.AnsweredAt)

	graded, err := f.ctx.GradeSubmission(context, sub.ID, 2, ptr("good"))
	require.NoError(t, err)
	assert.Equal(t, ledger.StateGraded, ledger.StateOf(graded))
	assert.Equal(t, 2, *graded.Grade)
	assert.Equal(t, "good", *graded.Feedback)
	assert.NotNil(t, graded.GradedAt)

	// re-answering after grading keeps the grade
	reanswered, err := f.ctx.SubmitAnswer(context, f.q1.ID, f.alice.ID, "four")
	require.NoError(t, err)
	assert.Equal(t, "four", *reanswered.Answer)
	assert.Equal(t, ledger.StateGraded, ledger.StateOf(reanswered))

	types, err := f.client.Event.Query().Order(event.ByID()).Select(event.FieldType).Strings(context)
	require.NoError(t, err)
	assert.Equal(t, []string{
		string(events.EventTypeAnswerSubmitted),
		string(events.EventTypeSubmissionGraded),
		string(events.EventTypeAnswerSubmitted),
	}, types)
}

func TestSubmitAnswer(t *testing.T) {
	t.Run("overwrites the previous answer", func(t *testing.T) {
		f := setupFixture(t)
		context := context.Background()

		_, err := f.ctx.SubmitAnswer(context, f.q1.ID, f.alice.ID, "first")
		require.NoError(t, err)
		second, err := f.ctx.SubmitAnswer(context, f.q1.ID, f.alice.ID, "second")
		require.NoError(t, err)
		assert.Equal(t, "second", *second.Answer)
	})

	t.Run("empty answer is stored", func(t *testing.T) {
		f := setupFixture(t)

		sub, err := f.ctx.SubmitAnswer(context.Background(), f.q1.ID, f.alice.ID, "")
		require.NoError(t, err)
		require.NotNil(t, sub.Answer)
		assert.Equal(t, ledger.StateAnswered, ledger.StateOf(sub))
	})

	t.Run("no submission for the pair", func(t *testing.T) {
		f := setupFixture(t)

		_, err := f.ctx.SubmitAnswer(context.Background(), f.artQ.ID, f.alice.ID, "x")
		require.ErrorIs(t, err, defs.ErrNotFound)
	})
}

func TestGradeSubmission(t *testing.T) {
	invalid := []int{-1, 3, 100}
	for _, grade := range invalid {
		t.Run("invalid grade leaves submission unchanged", func(t *testing.T) {
			f := setupFixture(t)
			context := context.Background()

			sub := f.submission(t, f.q1, f.alice)
			_, err := f.ctx.GradeSubmission(context, sub.ID, grade, ptr("x"))
			require.ErrorIs(t, err, defs.ErrInvalidGrade)

			after := f.submission(t, f.q1, f.alice)
			assert.Nil(t, after.Grade)
			assert.Nil(t, after.Feedback)

			count, err := f.client.Event.Query().Count(context)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}

	t.Run("every valid grade", func(t *testing.T) {
		f := setupFixture(t)
		sub := f.submission(t, f.q1, f.alice)

		for grade := 0; grade <= 2; grade++ {
			graded, err := f.ctx.GradeSubmission(context.Background(), sub.ID, grade, nil)
			require.NoError(t, err)
			assert.Equal(t, grade, *graded.Grade)
		}
	})

	t.Run("empty feedback is stored as none", func(t *testing.T) {
		f := setupFixture(t)
		context := context.Background()
		sub := f.submission(t, f.q1, f.alice)

		_, err := f.ctx.GradeSubmission(context, sub.ID, 1, ptr("first"))
		require.NoError(t, err)

		regraded, err := f.ctx.GradeSubmission(context, sub.ID, 1, ptr(""))
		require.NoError(t, err)
		assert.Nil(t, regraded.Feedback)
	})

	t.Run("unanswered submission can be graded", func(t *testing.T) {
		f := setupFixture(t)
		sub := f.submission(t, f.q1, f.alice)

		graded, err := f.ctx.GradeSubmission(context.Background(), sub.ID, 0, nil)
		require.NoError(t, err)
		assert.Nil(t, graded.Answer)
		assert.Equal(t, ledger.StateGraded, ledger.StateOf(graded))
	})

	t.Run("unknown submission", func(t *testing.T) {
		f := setupFixture(t)

		_, err := f.ctx.GradeSubmission(context.Background(), 999, 1, nil)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})
}

func questionNumbers(submissions []*ent.Submission) []int {
	numbers := make([]int, 0, len(submissions))
	for _, s := range submissions {
		numbers = append(numbers, s.Edges.Assignment.QuestionNumber)
	}
	return numbers
}

func TestQueries(t *testing.T) {
	f := setupFixture(t)
	context := context.Background()

	// alice answers Q1, bob's Q2 gets graded without an answer
	_, err := f.ctx.SubmitAnswer(context, f.q1.ID, f.alice.ID, "4")
	require.NoError(t, err)
	_, err = f.ctx.GradeSubmission(context, f.submission(t, f.q2, f.bob).ID, 0, nil)
	require.NoError(t, err)

	t.Run("pending for grading includes answered and unanswered", func(t *testing.T) {
		subs, err := f.ctx.PendingForGrading(context, f.math.ID)
		require.NoError(t, err)
		require.Len(t, subs, 3)
		assert.Equal(t, []int{1, 1, 2}, questionNumbers(subs))
		for _, s := range subs {
			assert.Nil(t, s.Grade)
			assert.NotNil(t, s.Edges.Student)
		}
	})

	t.Run("pending for student", func(t *testing.T) {
		subs, err := f.ctx.PendingForStudent(context, f.math.ID, f.alice.ID)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, f.q2.ID, subs[0].AssignmentID)

		// bob's graded Q2 has no answer, so it is still pending for him
		subs, err = f.ctx.PendingForStudent(context, f.math.ID, f.bob.ID)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, questionNumbers(subs))
	})

	t.Run("graded for student", func(t *testing.T) {
		subs, err := f.ctx.GradedForStudent(context, f.math.ID, f.bob.ID)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, 0, *subs[0].Grade)

		subs, err = f.ctx.GradedForStudent(context, f.math.ID, f.alice.ID)
		require.NoError(t, err)
		assert.Empty(t, subs)
	})

	t.Run("queries are scoped to the subject", func(t *testing.T) {
		subs, err := f.ctx.PendingForStudent(context, f.art.ID, f.bob.ID)
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, f.artQ.ID, subs[0].AssignmentID)
	})

	t.Run("get submission", func(t *testing.T) {
		sub, err := f.ctx.GetSubmission(context, f.submission(t, f.q1, f.alice).ID)
		require.NoError(t, err)
		assert.Equal(t, f.q1.ID, sub.Edges.Assignment.ID)

		_, err = f.ctx.GetSubmission(context, 999)
		require.ErrorIs(t, err, defs.ErrNotFound)
	})
}

func TestGradeThenAnswer(t *testing.T) {
	f := setupFixture(t)
	context := context.Background()
	sub := f.submission(t, f.q1, f.bob)

	_, err := f.ctx.GradeSubmission(context, sub.ID, 1, ptr("early"))
	require.NoError(t, err)
	answered, err := f.ctx.SubmitAnswer(context, f.q1.ID, f.bob.ID, "late")
	require.NoError(t, err)

	require.NotNil(t, answered.Answer)
	require.NotNil(t, answered.Grade)
	assert.Equal(t, 1, *answered.Grade)
	assert.Equal(t, "late", *answered.Answer)
}

func TestPendingAndGradedPartition(t *testing.T) {
	f := setupFixture(t)
	context := context.Background()

	_, err := f.ctx.GradeSubmission(context, f.submission(t, f.q1, f.alice).ID, 2, nil)
	require.NoError(t, err)
	_, err = f.ctx.SubmitAnswer(context, f.q2.ID, f.bob.ID, "x")
	require.NoError(t, err)

	pending, err := f.ctx.PendingForGrading(context, f.math.ID)
	require.NoError(t, err)

	var graded []*ent.Submission
	for _, student := range []*ent.Account{f.alice, f.bob} {
		subs, err := f.ctx.GradedForStudent(context, f.math.ID, student.ID)
		require.NoError(t, err)
		graded = append(graded, subs...)
	}

	ids := make(map[int]bool)
	for _, s := range pending {
		assert.Nil(t, s.Grade)
		ids[s.ID] = true
	}
	for _, s := range graded {
		assert.NotNil(t, s.Grade)
		assert.False(t, ids[s.ID], "a submission cannot be both pending and graded")
		ids[s.ID] = true
	}

	total, err := f.client.Submission.Query().Where(submission.HasAssignmentWith(assignment.SubjectID(f.math.ID))).Count(context)
	require.NoError(t, err)
	assert.Len(t, ids, total)
}
