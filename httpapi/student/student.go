// studentservice exposes a student's own assignments and results.
package studentservice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/gate"
)

type StudentService struct {
	gate *gate.Gate
}

func NewStudentService(gate *gate.Gate) *StudentService {
	return &StudentService{gate: gate}
}

func (s *StudentService) Register(router gin.IRouter) {
	group := router.Group("/student", auth.RequireUser)

	group.GET("/subjects", s.ListSubjects)
	group.GET("/subjects/:id/pending", s.PendingForStudent)
	group.GET("/subjects/:id/graded", s.GradedForStudent)
	group.POST("/assignments/:id/answer", s.SubmitAnswer)
}

var _ httpapi.Service = (*StudentService)(nil)

// GET /api/student/subjects
func (s *StudentService) ListSubjects(c *gin.Context) {
	caller := httpapi.MustCaller(c)

	subjects, err := s.gate.SubjectsFor(c.Request.Context(), caller, caller.AccountID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubjectViews(subjects))
}

// GET /api/student/subjects/:id/pending
func (s *StudentService) PendingForStudent(c *gin.Context) {
	subjectID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	submissions, err := s.gate.PendingForStudent(c.Request.Context(), httpapi.MustCaller(c), subjectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubmissionViews(submissions))
}

// GET /api/student/subjects/:id/graded
func (s *StudentService) GradedForStudent(c *gin.Context) {
	subjectID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	submissions, err := s.gate.GradedForStudent(c.Request.Context(), httpapi.MustCaller(c), subjectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubmissionViews(submissions))
}

type SubmitAnswerRequest struct {
	Answer *string `json:"answer" binding:"required"`
}

// POST /api/student/assignments/:id/answer
func (s *StudentService) SubmitAnswer(c *gin.Context) {
	assignmentID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	var req SubmitAnswerRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	answered, err := s.gate.SubmitAnswer(c.Request.Context(), httpapi.MustCaller(c), assignmentID, *req.Answer)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubmissionView(answered))
}
