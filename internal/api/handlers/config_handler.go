package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblens/joblens/internal/models"
	"github.com/joblens/joblens/internal/services"
	"github.com/joblens/joblens/internal/utils"
)

type ConfigHandler struct {
	svc services.ConfigService
}

func NewConfigHandler(svc services.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

func (h *ConfigHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cfg, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

type SaveConfigRequest struct {
	Searches        []models.SearchSpec            `json:"searches" binding:"required"`
	SkillCategories map[string][]models.SkillAlias `json:"skill_categories"`
}

func (h *ConfigHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ConfigHandler.Save", "invalid request body", err))
		return
	}
	cfg, err := h.svc.Save(c.Request.Context(), userID, req.Searches, req.SkillCategories)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
