package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/services"
	"github.com/joblens/joblens/internal/utils"
)

type PresetHandler struct {
	svc     services.PresetService
	catalog services.CatalogService
}

func NewPresetHandler(svc services.PresetService, catalog services.CatalogService) *PresetHandler {
	return &PresetHandler{svc: svc, catalog: catalog}
}

func (h *PresetHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	rows, err := h.svc.List(c.Request.Context(), c.Param("kind"), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"presets": rows})
}

func (h *PresetHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), c.Param("kind"), userID, c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type SavePresetRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
}

func (h *PresetHandler) Save(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req SavePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PresetHandler.Save", "invalid request body", err))
		return
	}
	p, err := h.svc.Save(c.Request.Context(), c.Param("kind"), userID, c.Param("name"), req.Payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PresetHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), c.Param("kind"), userID, c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Builtin serves the read-only default selections for sessions with no
// saved presets. Selections the current table no longer offers are
// dropped before serving.
func (h *PresetHandler) Builtin(c *gin.Context) {
	opts, err := h.catalog.Options(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"name":    services.BuiltinPresetName,
		"filter":  catalog.SanitizeFilter(h.svc.BuiltinFilter(), opts),
		"profile": catalog.SanitizeProfile(h.svc.BuiltinProfile(), opts),
	})
}
