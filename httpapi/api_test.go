package httpapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/httpapi"
	adminservice "github.com/homework-evaluation/backend/httpapi/admin"
	authservice "github.com/homework-evaluation/backend/httpapi/auth"
	studentservice "github.com/homework-evaluation/backend/httpapi/student"
	teacherservice "github.com/homework-evaluation/backend/httpapi/teacher"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/defs"
	"github.com/homework-evaluation/backend/internal/events"
	"github.com/homework-evaluation/backend/internal/gate"
	"github.com/homework-evaluation/backend/internal/httputils"
	"github.com/homework-evaluation/backend/internal/ledger"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)

	entClient := testhelper.NewEntSqliteClient(t)
	testhelper.CreateAccount(t, entClient, account.RoleAdmin, "admin")

	g := gate.NewFromClient(entClient, events.NewEventService())
	storage := auth.NewMemoryStorage()

	router := gin.New()
	router.Use(httputils.MachineMiddleware(), auth.Middleware(storage))
	httpapi.Register(router.Group("/api"),
		authservice.NewAuthService(g, storage),
		adminservice.NewAdminService(g, storage),
		teacherservice.NewTeacherService(g),
		studentservice.NewStudentService(g),
	)

	return &apiClient{t: t, router: router}
}

// do sends body as JSON and decodes the response into out when non-nil.
func (a *apiClient) do(method, path, token string, body, out any) int {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "api-test")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)

	if out != nil && rr.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}

	return rr.Code
}

func (a *apiClient) login(username, password, role string) string {
	a.t.Helper()

	var response authservice.LoginResponse
	code := a.do("POST", "/api/auth/login", "", authservice.LoginRequest{
		Username: username, Password: password, Role: role,
	}, &response)
	require.Equal(a.t, http.StatusOK, code)

	return response.Token
}

func TestAPI_EndToEnd(t *testing.T) {
	api := newAPI(t)
	admin := api.login("admin", "pw-admin", "admin")

	var math httpapi.SubjectView
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/admin/subjects", admin,
		adminservice.CreateSubjectRequest{Name: "Math", Code: "MTH1"}, &math))

	require.Equal(t, http.StatusCreated, api.do("POST", "/api/admin/accounts", admin, map[string]any{
		"role": "teacher", "username": "T", "password": "tpw", "display_name": "Teacher T",
		"subjects": []map[string]any{{"code": "MTH1"}},
	}, nil))
	var student httpapi.AccountView
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/admin/accounts", admin, map[string]any{
		"role": "student", "username": "S", "password": "spw", "display_name": "Student S",
		"subjects": []map[string]any{{"id": math.ID}},
	}, &student))

	teacher := api.login("T", "tpw", "teacher")
	studentToken := api.login("S", "spw", "student")

	var published teacherservice.PublishAssignmentResponse
	require.Equal(t, http.StatusCreated, api.do("POST", fmt.Sprintf("/api/teacher/subjects/%d/assignments", math.ID), teacher,
		teacherservice.PublishAssignmentRequest{QuestionNumber: 1, QuestionText: "2+2=?"}, &published))
	require.Len(t, published.Submissions, 1)
	assert.Equal(t, student.ID, published.Submissions[0].StudentID)
	assert.Equal(t, ledger.StatePending, published.Submissions[0].State)

	var pending []httpapi.SubmissionView
	require.Equal(t, http.StatusOK, api.do("GET", fmt.Sprintf("/api/student/subjects/%d/pending", math.ID), studentToken, nil, &pending))
	require.Len(t, pending, 1)
	require.NotNil(t, pending[0].Assignment)
	assert.Equal(t, "2+2=?", pending[0].Assignment.QuestionText)

	var answered httpapi.SubmissionView
	require.Equal(t, http.StatusOK, api.do("POST", fmt.Sprintf("/api/student/assignments/%d/answer", published.Assignment.ID), studentToken,
		map[string]string{"answer": "4"}, &answered))
	assert.Equal(t, ledger.StateAnswered, answered.State)

	var toGrade []httpapi.SubmissionView
	require.Equal(t, http.StatusOK, api.do("GET", fmt.Sprintf("/api/teacher/subjects/%d/pending", math.ID), teacher, nil, &toGrade))
	require.Len(t, toGrade, 1)
	require.NotNil(t, toGrade[0].Student)
	assert.Equal(t, "Student S", toGrade[0].Student.DisplayName)

	var graded httpapi.SubmissionView
	require.Equal(t, http.StatusOK, api.do("POST", fmt.Sprintf("/api/teacher/submissions/%d/grade", answered.ID), teacher,
		map[string]any{"grade": 2, "feedback": "Correct"}, &graded))
	assert.Equal(t, ledger.StateGraded, graded.State)

	var results []httpapi.SubmissionView
	require.Equal(t, http.StatusOK, api.do("GET", fmt.Sprintf("/api/student/subjects/%d/graded", math.ID), studentToken, nil, &results))
	require.Len(t, results, 1)
	assert.Equal(t, 2, *results[0].Grade)
	assert.Equal(t, "Correct", *results[0].Feedback)

	require.Equal(t, http.StatusOK, api.do("GET", fmt.Sprintf("/api/teacher/subjects/%d/pending", math.ID), teacher, nil, &toGrade))
	assert.Empty(t, toGrade)
}

func TestAPI_Errors(t *testing.T) {
	api := newAPI(t)
	admin := api.login("admin", "pw-admin", "admin")

	var math httpapi.SubjectView
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/admin/subjects", admin,
		adminservice.CreateSubjectRequest{Name: "Math", Code: "MTH1"}, &math))
	var created httpapi.AccountView
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/admin/accounts", admin, map[string]any{
		"role": "student", "username": "S", "password": "spw", "display_name": "Student S",
	}, &created))
	studentToken := api.login("S", "spw", "student")

	t.Run("unauthenticated", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, api.do("GET", "/api/admin/subjects", "", nil, nil))
	})

	t.Run("student calls admin route", func(t *testing.T) {
		var response map[string]string
		assert.Equal(t, http.StatusForbidden, api.do("GET", "/api/admin/subjects", studentToken, nil, &response))
		assert.Equal(t, defs.CodeForbidden, response["error"])
	})

	t.Run("student not enrolled", func(t *testing.T) {
		var response map[string]string
		assert.Equal(t, http.StatusForbidden, api.do("GET", fmt.Sprintf("/api/student/subjects/%d/pending", math.ID), studentToken, nil, &response))
		assert.Equal(t, defs.CodeNotEnrolled, response["error"])
	})

	t.Run("duplicate subject", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, api.do("POST", "/api/admin/subjects", admin,
			adminservice.CreateSubjectRequest{Name: "Math", Code: "OTHER"}, nil))
	})

	t.Run("unknown subject on create", func(t *testing.T) {
		var response map[string]string
		assert.Equal(t, http.StatusUnprocessableEntity, api.do("POST", "/api/admin/accounts", admin, map[string]any{
			"role": "student", "username": "X", "password": "x", "display_name": "X",
			"subjects": []map[string]any{{"code": "NOPE"}},
		}, &response))
		assert.Equal(t, defs.CodeUnknownSubject, response["error"])
	})

	t.Run("bad id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, api.do("DELETE", "/api/admin/subjects/abc", admin, nil, nil))
	})

	t.Run("enrollment replace", func(t *testing.T) {
		var subjects []httpapi.SubjectView
		require.Equal(t, http.StatusOK, api.do("PUT", fmt.Sprintf("/api/admin/accounts/%d/subjects", created.ID), admin,
			adminservice.ReplaceSubjectsRequest{}, &subjects))
		assert.Empty(t, subjects)
	})

	t.Run("deleted account loses its token", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, api.do("DELETE", fmt.Sprintf("/api/admin/accounts/%d", created.ID), admin, nil, nil))
		assert.Equal(t, http.StatusUnauthorized, api.do("GET", "/api/student/subjects", studentToken, nil, nil))
	})
}
