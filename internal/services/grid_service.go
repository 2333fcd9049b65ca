package services

import (
	"context"
	"time"

	"github.com/joblens/joblens/internal/cache"
	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/grid"
	"github.com/joblens/joblens/internal/match"
	"github.com/joblens/joblens/internal/models"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
	"github.com/joblens/joblens/internal/utils"
)

const gridCacheTTL = 2 * time.Hour

// GridService drives the editable tracking grid. The cached snapshot
// per user plays the role of the previous render's editor state: it is
// rebuilt whenever the filtered id set or the profile changes, adjusted
// on edits, and flushed to the tracker table on save.
type GridService interface {
	View(ctx context.Context, userID string, f catalog.Filter, profile models.Profile) (*GridView, error)
	Edit(ctx context.Context, userID string, edited []grid.Row) (*GridView, error)
	Save(ctx context.Context, userID string) (int, error)
}

// GridView is what the grid page renders.
type GridView struct {
	Rows     []grid.Row `json:"rows"`
	Columns  []string   `json:"columns"`
	Total    int        `json:"total"`
	MaxScore int        `json:"max_score"`
}

type gridSnapshot struct {
	Rows    []grid.Row     `json:"rows"`
	Profile models.Profile `json:"profile"`
}

type gridService struct {
	catalog CatalogService
	tracker pgrepo.TrackerRepository
	cache   cache.Cache
	now     func() time.Time
}

func NewGridService(cat CatalogService, tracker pgrepo.TrackerRepository, c cache.Cache) GridService {
	return &gridService{catalog: cat, tracker: tracker, cache: c, now: time.Now}
}

func gridCacheKey(userID string) string { return "grid:" + userID }

func (s *gridService) View(ctx context.Context, userID string, f catalog.Filter, profile models.Profile) (*GridView, error) {
	const op = "GridService.View"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	filtered, err := s.catalog.Filtered(ctx, f)
	if err != nil {
		return nil, err
	}

	opts, err := s.catalog.Options(ctx)
	if err != nil {
		return nil, err
	}
	profile = catalog.SanitizeProfile(profile, opts)

	viewIDs := make([]string, 0, len(filtered))
	for _, p := range filtered {
		viewIDs = append(viewIDs, p.JobID)
	}

	var snap gridSnapshot
	hit, err := s.cache.GetJSON(ctx, gridCacheKey(userID), &snap)
	if err != nil {
		hit = false
	}

	cached := snap.Rows
	if !hit {
		cached = nil
	}
	if grid.NeedsRefresh(cached, viewIDs, !snap.Profile.Equal(profile)) {
		trackerRows, err := s.tracker.ListByUser(ctx, userID)
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to load tracker", err)
		}
		snap = gridSnapshot{
			Rows:    grid.BuildView(filtered, trackerRows, profile),
			Profile: profile,
		}
		_ = s.cache.SetJSON(ctx, gridCacheKey(userID), snap, gridCacheTTL)
	}

	return &GridView{
		Rows:     snap.Rows,
		Columns:  grid.ColumnOrder,
		Total:    len(snap.Rows),
		MaxScore: match.MaxPossibleScore(profile),
	}, nil
}

func (s *gridService) Edit(ctx context.Context, userID string, edited []grid.Row) (*GridView, error) {
	const op = "GridService.Edit"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	var snap gridSnapshot
	hit, err := s.cache.GetJSON(ctx, gridCacheKey(userID), &snap)
	if err != nil || !hit {
		return nil, utils.E(utils.CodeConflict, op, "no grid snapshot; reload the view first", err)
	}

	adjusted, changed := grid.ApplyEdits(snap.Rows, edited, s.now())
	if changed {
		snap.Rows = adjusted
		_ = s.cache.SetJSON(ctx, gridCacheKey(userID), snap, gridCacheTTL)
	}

	return &GridView{
		Rows:     snap.Rows,
		Columns:  grid.ColumnOrder,
		Total:    len(snap.Rows),
		MaxScore: match.MaxPossibleScore(snap.Profile),
	}, nil
}

func (s *gridService) Save(ctx context.Context, userID string) (int, error) {
	const op = "GridService.Save"

	if userID == "" {
		return 0, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	var snap gridSnapshot
	hit, err := s.cache.GetJSON(ctx, gridCacheKey(userID), &snap)
	if err != nil || !hit {
		return 0, utils.E(utils.CodeConflict, op, "no grid snapshot; nothing to save", err)
	}

	rows := grid.RowsToSave(snap.Rows, userID, s.now().UTC())
	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.tracker.UpsertBatch(ctx, rows); err != nil {
		return 0, utils.E(utils.CodeUnavailable, op, "failed to save tracker rows", err)
	}
	return len(rows), nil
}
