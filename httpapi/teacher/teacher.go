// teacherservice exposes publishing, review and grading.
package teacherservice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/catalog"
	"github.com/homework-evaluation/backend/internal/gate"
)

type TeacherService struct {
	gate *gate.Gate
}

func NewTeacherService(gate *gate.Gate) *TeacherService {
	return &TeacherService{gate: gate}
}

func (s *TeacherService) Register(router gin.IRouter) {
	group := router.Group("/teacher", auth.RequireUser)

	group.GET("/subjects", s.ListSubjects)
	group.GET("/subjects/:id/students", s.ListStudents)
	group.GET("/subjects/:id/assignments", s.ListAssignments)
	group.POST("/subjects/:id/assignments", s.PublishAssignment)
	group.GET("/subjects/:id/pending", s.PendingForGrading)
	group.POST("/submissions/:id/grade", s.GradeSubmission)
}

var _ httpapi.Service = (*TeacherService)(nil)

// GET /api/teacher/subjects
func (s *TeacherService) ListSubjects(c *gin.Context) {
	caller := httpapi.MustCaller(c)

	subjects, err := s.gate.SubjectsFor(c.Request.Context(), caller, caller.AccountID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubjectViews(subjects))
}

// GET /api/teacher/subjects/:id/students
func (s *TeacherService) ListStudents(c *gin.Context) {
	subjectID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	students, err := s.gate.StudentsEnrolled(c.Request.Context(), httpapi.MustCaller(c), subjectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewAccountViews(students))
}

// GET /api/teacher/subjects/:id/assignments
func (s *TeacherService) ListAssignments(c *gin.Context) {
	subjectID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := s.gate.ListAssignments(c.Request.Context(), httpapi.MustCaller(c), subjectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewAssignmentViews(assignments))
}

type PublishAssignmentRequest struct {
	QuestionNumber int    `json:"question_number"`
	QuestionText   string `json:"question_text"`
	// StudentID targets one student; omitted or zero targets every enrolled student.
	StudentID int `json:"student_id"`
}

type PublishAssignmentResponse struct {
	Assignment  httpapi.AssignmentView   `json:"assignment"`
	Submissions []httpapi.SubmissionView `json:"submissions"`
}

// POST /api/teacher/subjects/:id/assignments
func (s *TeacherService) PublishAssignment(c *gin.Context) {
	subjectID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	var req PublishAssignmentRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	target := catalog.AllEnrolled
	if req.StudentID != 0 {
		target = catalog.Student(req.StudentID)
	}

	result, err := s.gate.PublishAssignment(c.Request.Context(), httpapi.MustCaller(c), gate.PublishRequest{
		SubjectID:      subjectID,
		QuestionNumber: req.QuestionNumber,
		QuestionText:   req.QuestionText,
		Target:         target,
	})
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PublishAssignmentResponse{
		Assignment:  httpapi.NewAssignmentView(result.Assignment),
		Submissions: httpapi.NewSubmissionViews(result.Submissions),
	})
}

// GET /api/teacher/subjects/:id/pending
func (s *TeacherService) PendingForGrading(c *gin.Context) {
	subjectID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	submissions, err := s.gate.PendingForGrading(c.Request.Context(), httpapi.MustCaller(c), subjectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubmissionViews(submissions))
}

type GradeSubmissionRequest struct {
	Grade    *int    `json:"grade" binding:"required"`
	Feedback *string `json:"feedback"`
}

// POST /api/teacher/submissions/:id/grade
func (s *TeacherService) GradeSubmission(c *gin.Context) {
	submissionID, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	var req GradeSubmissionRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	graded, err := s.gate.GradeSubmission(c.Request.Context(), httpapi.MustCaller(c), submissionID, *req.Grade, req.Feedback)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubmissionView(graded))
}
