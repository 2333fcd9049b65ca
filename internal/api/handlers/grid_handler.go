package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblens/joblens/internal/grid"
	"github.com/joblens/joblens/internal/models"
	"github.com/joblens/joblens/internal/services"
	"github.com/joblens/joblens/internal/utils"
)

type GridHandler struct {
	svc services.GridService
}

func NewGridHandler(svc services.GridService) *GridHandler {
	return &GridHandler{svc: svc}
}

// profileQuery mirrors models.Profile for query-string binding.
type profileQuery struct {
	MySkills       []string `form:"my_skills"`
	TargetRoles    []string `form:"target_roles"`
	AllJobInfo     []string `form:"all_job_info"`
	AllCompanyInfo []string `form:"all_company_info"`
	MinSalary      float64  `form:"min_salary"`
}

func (q profileQuery) profile() models.Profile {
	return models.Profile{
		MySkills:       q.MySkills,
		TargetRoles:    q.TargetRoles,
		AllJobInfo:     q.AllJobInfo,
		AllCompanyInfo: q.AllCompanyInfo,
		MinSalary:      q.MinSalary,
	}
}

func (h *GridHandler) View(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	var pq profileQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "GridHandler.View", "invalid profile parameters", err))
		return
	}

	view, err := h.svc.View(c.Request.Context(), userID, f, pq.profile())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type EditRequest struct {
	Rows []grid.Row `json:"rows" binding:"required"`
}

func (h *GridHandler) Edit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "GridHandler.Edit", "invalid request body", err))
		return
	}

	view, err := h.svc.Edit(c.Request.Context(), userID, req.Rows)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *GridHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	saved, err := h.svc.Save(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}
