package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/match"
	"github.com/joblens/joblens/internal/models"
	"github.com/joblens/joblens/internal/services"
	"github.com/joblens/joblens/internal/utils"
)

type DashboardHandler struct {
	svc services.CatalogService
}

func NewDashboardHandler(svc services.CatalogService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// bindFilter reads the sidebar selections from the query string.
// Absent parameters leave the zero value, which imposes no constraint.
func bindFilter(c *gin.Context) (catalog.Filter, bool) {
	var f catalog.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Dashboard", "invalid filter parameters", err))
		return catalog.Filter{}, false
	}
	return f, true
}

func (h *DashboardHandler) Breakdown(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	bundle, err := h.svc.Breakdown(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

func (h *DashboardHandler) Skills(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	bundle, err := h.svc.Skills(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// Postings serves the filtered table scored against the caller's
// profile, highest score first.
func (h *DashboardHandler) Postings(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}
	var pq profileQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "Dashboard", "invalid profile parameters", err))
		return
	}
	profile := pq.profile()

	rows, err := h.svc.Filtered(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}

	type scored struct {
		models.Posting
		MatchScore int `json:"match_score"`
	}
	out := make([]scored, 0, len(rows))
	for _, p := range rows {
		out = append(out, scored{Posting: p, MatchScore: match.Score(p, profile)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		return out[i].JobID < out[j].JobID
	})

	c.JSON(http.StatusOK, gin.H{
		"total":     len(out),
		"max_score": match.MaxPossibleScore(profile),
		"postings":  out,
	})
}

func (h *DashboardHandler) Options(c *gin.Context) {
	opts, err := h.svc.Options(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, opts)
}
