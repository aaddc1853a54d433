package gate_test

import (
	"context"
	"testing"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/catalog"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/gate"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestGate(t *testing.T) (*ent.Client, *gate.Gate, gate.Caller) {
	t.Helper()

	client := testhelper.NewEntSqliteClient(t)
	g := gate.NewFromClient(client, events.NewEventService())

	admin := testhelper.CreateAccount(t, client, account.RoleAdmin, "admin")
	return client, g, gate.Caller{AccountID: admin.ID, Role: account.RoleAdmin}
}

func callerOf(a *ent.Account) gate.Caller {
	return gate.Caller{AccountID: a.ID, Role: a.Role}
}

func TestEndToEnd(t *testing.T) {
	_, g, admin := setupTestGate(t)
	context := context.Background()

	math, err := g.CreateSubject(context, admin, "Math", "MTH1")
	require.NoError(t, err)

	teacherAccount, err := g.CreateAccount(context, admin, directory.CreateAccountRequest{
		Role: account.RoleTeacher, Username: "T", Secret: "tpw", DisplayName: "Teacher T",
		Subjects: []enrollment.SubjectRef{enrollment.ByCode("MTH1")},
	})
	require.NoError(t, err)
	studentAccount, err := g.CreateAccount(context, admin, directory.CreateAccountRequest{
		Role: account.RoleStudent, Username: "S", Secret: "spw", DisplayName: "Student S",
		Subjects: []enrollment.SubjectRef{enrollment.ByID(math.ID)},
	})
	require.NoError(t, err)

	// both sign in with their own role
	loggedTeacher, err := g.Login(context, "T", "tpw", account.RoleTeacher)
	require.NoError(t, err)
	loggedStudent, err := g.Login(context, "S", "spw", account.RoleStudent)
	require.NoError(t, err)
	teacher, student := callerOf(loggedTeacher), callerOf(loggedStudent)
	assert.Equal(t, teacherAccount.ID, teacher.AccountID)
	assert.Equal(t, studentAccount.ID, student.AccountID)

	published, err := g.PublishAssignment(context, teacher, gate.PublishRequest{
		SubjectID: math.ID, QuestionNumber: 1, QuestionText: "2+2=?", Target: catalog.AllEnrolled,
	})
	require.NoError(t, err)
	require.Len(t, published.Submissions, 1)
	assert.Equal(t, student.AccountID, published.Submissions[0].StudentID)
	assert.Nil(t, published.Submissions[0].Answer)

	pending, err := g.PendingForStudent(context, student, math.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	answered, err := g.SubmitAnswer(context, student, published.Assignment.ID, "4")
	require.NoError(t, err)
	assert.Equal(t, "4", *answered.Answer)
	assert.Nil(t, answered.Grade)

	toGrade, err := g.PendingForGrading(context, teacher, math.ID)
	require.NoError(t, err)
	require.Len(t, toGrade, 1)
	assert.Equal(t, answered.ID, toGrade[0].ID)

	feedback := "Correct"
	graded, err := g.GradeSubmission(context, teacher, answered.ID, 2, &feedback)
	require.NoError(t, err)
	assert.Equal(t, 2, *graded.Grade)
	assert.Equal(t, "Correct", *graded.Feedback)

	results, err := g.GradedForStudent(context, student, math.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, answered.ID, results[0].ID)

	toGrade, err = g.PendingForGrading(context, teacher, math.ID)
	require.NoError(t, err)
	assert.Empty(t, toGrade)

	pending, err = g.PendingForStudent(context, student, math.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMutationResultsOutliveTransaction(t *testing.T) {
	_, g, admin := setupTestGate(t)
	ctx := context.Background()

	math, err := g.CreateSubject(ctx, admin, "Math", "MTH1")
	require.NoError(t, err)

	teacherAccount, err := g.CreateAccount(ctx, admin, directory.CreateAccountRequest{
		Role: account.RoleTeacher, Username: "t1", Secret: "pw", DisplayName: "T1",
		Subjects: []enrollment.SubjectRef{enrollment.ByID(math.ID)},
	})
	require.NoError(t, err)
	studentAccount, err := g.CreateAccount(ctx, admin, directory.CreateAccountRequest{
		Role: account.RoleStudent, Username: "s1", Secret: "pw", DisplayName: "S1",
		Subjects: []enrollment.SubjectRef{enrollment.ByCode("MTH1")},
	})
	require.NoError(t, err)

	t.Run("CreateAccount", func(t *testing.T) {
		subjects, err := studentAccount.QuerySubjects().IDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{math.ID}, subjects)
	})

	t.Run("CreateSubject", func(t *testing.T) {
		members, err := math.QueryAccounts().IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{teacherAccount.ID, studentAccount.ID}, members)
	})

	published, err := g.PublishAssignment(ctx, callerOf(teacherAccount), gate.PublishRequest{
		SubjectID: math.ID, QuestionNumber: 1, QuestionText: "2+2=?", Target: catalog.AllEnrolled,
	})
	require.NoError(t, err)
	require.Len(t, published.Submissions, 1)

	t.Run("PublishAssignment", func(t *testing.T) {
		submissions, err := published.Assignment.QuerySubmissions().IDs(ctx)
		require.NoError(t, err)
		assert.Equal(t, []int{published.Submissions[0].ID}, submissions)

		owner, err := published.Submissions[0].QueryStudent().OnlyID(ctx)
		require.NoError(t, err)
		assert.Equal(t, studentAccount.ID, owner)
	})

	answered, err := g.SubmitAnswer(ctx, callerOf(studentAccount), published.Assignment.ID, "4")
	require.NoError(t, err)

	t.Run("SubmitAnswer", func(t *testing.T) {
		assignmentID, err := answered.QueryAssignment().OnlyID(ctx)
		require.NoError(t, err)
		assert.Equal(t, published.Assignment.ID, assignmentID)
	})

	graded, err := g.GradeSubmission(ctx, callerOf(teacherAccount), answered.ID, 1, nil)
	require.NoError(t, err)

	t.Run("GradeSubmission", func(t *testing.T) {
		updated, err := graded.Update().SetFeedback("show your work").Save(ctx)
		require.NoError(t, err)
		require.NotNil(t, updated.Feedback)
		assert.Equal(t, "show your work", *updated.Feedback)
	})
}

func TestLogin(t *testing.T) {
	client, g, _ := setupTestGate(t)
	context := context.Background()

	testhelper.CreateAccount(t, client, account.RoleTeacher, "tom")

	_, err := g.Login(context, "tom", "pw-tom", account.RoleTeacher)
	require.NoError(t, err)

	_, err = g.Login(context, "tom", "pw-tom", account.RoleStudent)
	require.ErrorIs(t, err, defs.ErrInvalidCredentials)
}

// Every operation is called by every role; only the granted ones may pass
// the scope check.
func TestRoleMatrix(t *testing.T) {
	client, g, admin := setupTestGate(t)
	context := context.Background()

	math := testhelper.CreateSubject(t, client, "Math", "MATH")
	teacherAccount := testhelper.CreateAccount(t, client, account.RoleTeacher, "teacher", math)
	studentAccount := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math)
	teacher, student := callerOf(teacherAccount), callerOf(studentAccount)

	published, err := g.PublishAssignment(context, teacher, gate.PublishRequest{
		SubjectID: math.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.AllEnrolled,
	})
	require.NoError(t, err)
	submissionID := published.Submissions[0].ID

	operations := []struct {
		name    string
		allowed []account.Role
		call    func(caller gate.Caller) error
	}{
		{
			name:    "ListAccounts",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				_, err := g.ListAccounts(context, caller, "")
				return err
			},
		},
		{
			name:    "ListSubjects",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				_, err := g.ListSubjects(context, caller)
				return err
			},
		},
		{
			name:    "CreateAccount",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				// invalid request: passes the gate, fails validation
				_, err := g.CreateAccount(context, caller, directory.CreateAccountRequest{})
				return err
			},
		},
		{
			name:    "DeleteAccount",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				return g.DeleteAccount(context, caller, 999)
			},
		},
		{
			name:    "ReplaceSubjects",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				return g.ReplaceSubjects(context, caller, 999, nil)
			},
		},
		{
			name:    "CreateSubject",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				_, err := g.CreateSubject(context, caller, "", "")
				return err
			},
		},
		{
			name:    "DeleteSubject",
			allowed: []account.Role{account.RoleAdmin},
			call: func(caller gate.Caller) error {
				return g.DeleteSubject(context, caller, 999)
			},
		},
		{
			name:    "SubjectsFor",
			allowed: []account.Role{account.RoleAdmin, account.RoleTeacher, account.RoleStudent},
			call: func(caller gate.Caller) error {
				_, err := g.SubjectsFor(context, caller, caller.AccountID)
				return err
			},
		},
		{
			name:    "StudentsEnrolled",
			allowed: []account.Role{account.RoleAdmin, account.RoleTeacher},
			call: func(caller gate.Caller) error {
				_, err := g.StudentsEnrolled(context, caller, math.ID)
				return err
			},
		},
		{
			name:    "PublishAssignment",
			allowed: []account.Role{account.RoleTeacher},
			call: func(caller gate.Caller) error {
				_, err := g.PublishAssignment(context, caller, gate.PublishRequest{SubjectID: math.ID})
				return err
			},
		},
		{
			name:    "ListAssignments",
			allowed: []account.Role{account.RoleTeacher},
			call: func(caller gate.Caller) error {
				_, err := g.ListAssignments(context, caller, math.ID)
				return err
			},
		},
		{
			name:    "PendingForGrading",
			allowed: []account.Role{account.RoleTeacher},
			call: func(caller gate.Caller) error {
				_, err := g.PendingForGrading(context, caller, math.ID)
				return err
			},
		},
		{
			name:    "GradeSubmission",
			allowed: []account.Role{account.RoleTeacher},
			call: func(caller gate.Caller) error {
				_, err := g.GradeSubmission(context, caller, submissionID, 9, nil)
				return err
			},
		},
		{
			name:    "PendingForStudent",
			allowed: []account.Role{account.RoleStudent},
			call: func(caller gate.Caller) error {
				_, err := g.PendingForStudent(context, caller, math.ID)
				return err
			},
		},
		{
			name:    "GradedForStudent",
			allowed: []account.Role{account.RoleStudent},
			call: func(caller gate.Caller) error {
				_, err := g.GradedForStudent(context, caller, math.ID)
				return err
			},
		},
		{
			name:    "SubmitAnswer",
			allowed: []account.Role{account.RoleStudent},
			call: func(caller gate.Caller) error {
				_, err := g.SubmitAnswer(context, caller, 999, "x")
				return err
			},
		},
	}

	callers := []gate.Caller{admin, teacher, student}

	for _, op := range operations {
		for _, caller := range callers {
			t.Run(op.name+"/"+string(caller.Role), func(t *testing.T) {
				err := op.call(caller)

				if containsRole(op.allowed, caller.Role) {
					assert.NotErrorIs(t, err, defs.ErrForbidden)
					assert.NotErrorIs(t, err, defs.ErrUnauthorized)
				} else {
					assert.ErrorIs(t, err, defs.ErrForbidden)
				}
			})
		}
	}
}

func containsRole(roles []account.Role, role account.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func TestEnrollmentChecks(t *testing.T) {
	client, g, _ := setupTestGate(t)
	context := context.Background()

	math := testhelper.CreateSubject(t, client, "Math", "MATH")
	art := testhelper.CreateSubject(t, client, "Art", "ART")
	mathTeacher := callerOf(testhelper.CreateAccount(t, client, account.RoleTeacher, "math-teacher", math))
	artTeacher := callerOf(testhelper.CreateAccount(t, client, account.RoleTeacher, "art-teacher", art))
	alice := callerOf(testhelper.CreateAccount(t, client, account.RoleStudent, "alice", math))
	bob := callerOf(testhelper.CreateAccount(t, client, account.RoleStudent, "bob", math))

	published, err := g.PublishAssignment(context, mathTeacher, gate.PublishRequest{
		SubjectID: math.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.Student(alice.AccountID),
	})
	require.NoError(t, err)

	t.Run("teacher cannot publish outside their subjects", func(t *testing.T) {
		_, err := g.PublishAssignment(context, artTeacher, gate.PublishRequest{
			SubjectID: math.ID, QuestionNumber: 1, QuestionText: "Q", Target: catalog.AllEnrolled,
		})
		require.ErrorIs(t, err, defs.ErrNotEnrolled)
	})

	t.Run("teacher cannot review outside their subjects", func(t *testing.T) {
		_, err := g.PendingForGrading(context, artTeacher, math.ID)
		require.ErrorIs(t, err, defs.ErrNotEnrolled)
	})

	t.Run("teacher cannot grade outside their subjects", func(t *testing.T) {
		_, err := g.GradeSubmission(context, artTeacher, published.Submissions[0].ID, 1, nil)
		require.ErrorIs(t, err, defs.ErrNotEnrolled)

		sub, err := client.Submission.Get(context, published.Submissions[0].ID)
		require.NoError(t, err)
		assert.Nil(t, sub.Grade)
	})

	t.Run("student cannot read another subject", func(t *testing.T) {
		_, err := g.PendingForStudent(context, alice, art.ID)
		require.ErrorIs(t, err, defs.ErrNotEnrolled)
	})

	t.Run("student without a submission cannot answer", func(t *testing.T) {
		_, err := g.SubmitAnswer(context, bob, published.Assignment.ID, "mine")
		require.ErrorIs(t, err, defs.ErrNotFound)

		sub, err := client.Submission.Get(context, published.Submissions[0].ID)
		require.NoError(t, err)
		assert.Nil(t, sub.Answer)
	})

	t.Run("students only list their own subjects", func(t *testing.T) {
		_, err := g.SubjectsFor(context, alice, bob.AccountID)
		require.ErrorIs(t, err, defs.ErrForbidden)
	})

	t.Run("unenrolled student loses access", func(t *testing.T) {
		require.NoError(t, client.Account.UpdateOneID(alice.AccountID).ClearSubjects().Exec(context))

		_, err := g.SubmitAnswer(context, alice, published.Assignment.ID, "4")
		require.ErrorIs(t, err, defs.ErrNotEnrolled)
	})
}

func TestStaleCaller(t *testing.T) {
	client, g, admin := setupTestGate(t)
	context := context.Background()

	math := testhelper.CreateSubject(t, client, "Math", "MATH")
	student := testhelper.CreateAccount(t, client, account.RoleStudent, "student", math)

	t.Run("claimed role differs from stored role", func(t *testing.T) {
		_, err := g.PendingForGrading(context, gate.Caller{AccountID: student.ID, Role: account.RoleTeacher}, math.ID)
		require.ErrorIs(t, err, defs.ErrUnauthorized)
	})

	t.Run("deleted account", func(t *testing.T) {
		require.NoError(t, g.DeleteAccount(context, admin, student.ID))

		_, err := g.PendingForStudent(context, callerOf(student), math.ID)
		require.ErrorIs(t, err, defs.ErrUnauthorized)
	})
}

func TestEventsAreAttributedToCaller(t *testing.T) {
	client, g, admin := setupTestGate(t)
	context := context.Background()

	_, err := g.CreateSubject(context, admin, "Math", "MATH")
	require.NoError(t, err)

	ev, err := client.Event.Query().Only(context)
	require.NoError(t, err)
	assert.Equal(t, admin.AccountID, ev.AccountID)
}
