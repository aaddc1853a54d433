package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/homework-evaluation/backend/ent"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSubmissionTestData(t *testing.T, client *ent.Client) (*ent.Assignment, []*ent.Account) {
	t.Helper()

	ctx := context.Background()

	subj, err := client.Subject.Create().SetName("Math").SetCode("MATH").Save(ctx)
	require.NoError(t, err)

	assignment, err := client.Assignment.Create().
		SetSubjectID(subj.ID).
		SetQuestionNumber(1).
		SetQuestionText("2+2?").
		Save(ctx)
	require.NoError(t, err)

	var students []*ent.Account
	for _, name := range []string{"s1", "s2", "s3", "s4"} {
		student, err := client.Account.Create().
			SetUsername(name).
			SetSecret("pw").
			SetRole(account.RoleStudent).
			SetDisplayName(name).
			Save(ctx)
		require.NoError(t, err)
		students = append(students, student)
	}

	return assignment, students
}

func gaugesByLabel(t *testing.T, family *dto.MetricFamily) map[string]float64 {
	t.Helper()

	result := make(map[string]float64)
	for _, m := range family.GetMetric() {
		require.Len(t, m.GetLabel(), 1)
		result[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
	}
	return result
}

func TestSubmissionCollector_Collect(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	assignment, students := setupSubmissionTestData(t, client)
	ctx := context.Background()
	now := time.Now()

	// s1 pending, s2 pending, s3 answered, s4 graded
	for _, student := range students[:2] {
		_, err := client.Submission.Create().SetAssignmentID(assignment.ID).SetStudentID(student.ID).Save(ctx)
		require.NoError(t, err)
	}
	_, err := client.Submission.Create().
		SetAssignmentID(assignment.ID).
		SetStudentID(students[2].ID).
		SetAnswer("4").
		SetAnsweredAt(now).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Submission.Create().
		SetAssignmentID(assignment.ID).
		SetStudentID(students[3].ID).
		SetAnswer("4").
		SetAnsweredAt(now).
		SetGrade(2).
		SetGradedAt(now).
		Save(ctx)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewSubmissionCollector(client))

	metrics, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "hwe_submissions_total", metrics[0].GetName())

	got := gaugesByLabel(t, metrics[0])
	assert.Equal(t, map[string]float64{
		"pending":  2,
		"answered": 1,
		"graded":   1,
	}, got)
}

func TestSubmissionCollector_Collect_EmptyDatabase(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewSubmissionCollector(client))

	metrics, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, metrics, 1)

	// every state is reported, even when zero
	got := gaugesByLabel(t, metrics[0])
	assert.Equal(t, map[string]float64{"pending": 0, "answered": 0, "graded": 0}, got)
}

func TestAccountCollector_Collect(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	_, _ = setupSubmissionTestData(t, client)
	ctx := context.Background()

	_, err := client.Account.Create().
		SetUsername("t1").
		SetSecret("pw").
		SetRole(account.RoleTeacher).
		SetDisplayName("Teacher").
		Save(ctx)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewAccountCollector(client))

	metrics, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, metrics, 1)
	assert.Equal(t, "hwe_accounts_total", metrics[0].GetName())

	got := gaugesByLabel(t, metrics[0])
	assert.Equal(t, map[string]float64{"student": 4, "teacher": 1}, got)
}

func TestRecordLogin(t *testing.T) {
	before := testCounterValue(t, LoginTotal.WithLabelValues("failed"))
	RecordLogin(false)
	after := testCounterValue(t, LoginTotal.WithLabelValues("failed"))

	assert.Equal(t, before+1, after)
}

func testCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}
