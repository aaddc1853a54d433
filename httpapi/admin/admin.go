// adminservice exposes account and subject administration.
package adminservice

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/httpapi"
	"github.com/homework-evaluation/backend/internal/auth"
	"github.com/homework-evaluation/backend/internal/directory"
	"github.com/homework-evaluation/backend/internal/enrollment"
	"github.com/homework-evaluation/backend/internal/gate"
)

type AdminService struct {
	gate    *gate.Gate
	storage auth.Storage
}

func NewAdminService(gate *gate.Gate, storage auth.Storage) *AdminService {
	return &AdminService{gate: gate, storage: storage}
}

func (s *AdminService) Register(router gin.IRouter) {
	group := router.Group("/admin", auth.RequireUser)

	group.GET("/accounts", s.ListAccounts)
	group.POST("/accounts", s.CreateAccount)
	group.DELETE("/accounts/:id", s.DeleteAccount)
	group.PUT("/accounts/:id/subjects", s.ReplaceSubjects)

	group.GET("/subjects", s.ListSubjects)
	group.POST("/subjects", s.CreateSubject)
	group.DELETE("/subjects/:id", s.DeleteSubject)
}

var _ httpapi.Service = (*AdminService)(nil)

// GET /api/admin/accounts?role=
func (s *AdminService) ListAccounts(c *gin.Context) {
	accounts, err := s.gate.ListAccounts(c.Request.Context(), httpapi.MustCaller(c), account.Role(c.Query("role")))
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewAccountViews(accounts))
}

type CreateAccountRequest struct {
	Role        string                  `json:"role"`
	Username    string                  `json:"username"`
	Password    string                  `json:"password"`
	DisplayName string                  `json:"display_name"`
	Subjects    []enrollment.SubjectRef `json:"subjects"`
}

// POST /api/admin/accounts
func (s *AdminService) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	created, err := s.gate.CreateAccount(c.Request.Context(), httpapi.MustCaller(c), directory.CreateAccountRequest{
		Role:        account.Role(req.Role),
		Username:    req.Username,
		Secret:      req.Password,
		DisplayName: req.DisplayName,
		Subjects:    req.Subjects,
	})
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpapi.NewAccountView(created))
}

// DeleteAccount removes the account and revokes its tokens.
// DELETE /api/admin/accounts/:id
func (s *AdminService) DeleteAccount(c *gin.Context) {
	id, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	if err := s.gate.DeleteAccount(c.Request.Context(), httpapi.MustCaller(c), id); err != nil {
		httpapi.RespondError(c, err)
		return
	}

	if err := s.storage.DeleteByAccount(c.Request.Context(), id); err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type ReplaceSubjectsRequest struct {
	Subjects []enrollment.SubjectRef `json:"subjects"`
}

// PUT /api/admin/accounts/:id/subjects
func (s *AdminService) ReplaceSubjects(c *gin.Context) {
	id, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	var req ReplaceSubjectsRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	caller := httpapi.MustCaller(c)
	if err := s.gate.ReplaceSubjects(c.Request.Context(), caller, id, req.Subjects); err != nil {
		httpapi.RespondError(c, err)
		return
	}

	subjects, err := s.gate.SubjectsFor(c.Request.Context(), caller, id)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubjectViews(subjects))
}

// GET /api/admin/subjects
func (s *AdminService) ListSubjects(c *gin.Context) {
	subjects, err := s.gate.ListSubjects(c.Request.Context(), httpapi.MustCaller(c))
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpapi.NewSubjectViews(subjects))
}

type CreateSubjectRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// POST /api/admin/subjects
func (s *AdminService) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if !httpapi.BindJSON(c, &req) {
		return
	}

	created, err := s.gate.CreateSubject(c.Request.Context(), httpapi.MustCaller(c), req.Name, req.Code)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, httpapi.NewSubjectView(created))
}

// DELETE /api/admin/subjects/:id
func (s *AdminService) DeleteSubject(c *gin.Context) {
	id, ok := httpapi.IDParam(c, "id")
	if !ok {
		return
	}

	if err := s.gate.DeleteSubject(c.Request.Context(), httpapi.MustCaller(c), id); err != nil {
		httpapi.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
