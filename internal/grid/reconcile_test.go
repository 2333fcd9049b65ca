package grid_test

import (
	"testing"
	"time"

	"github.com/joblens/joblens/internal/grid"
	"github.com/joblens/joblens/internal/models"
)

func sptr(v string) *string { return &v }

func testPostings() []models.Posting {
	return []models.Posting{
		{JobID: "a", WorkTitles: []string{"Data Analyst"}},
		{JobID: "b", WorkTitles: []string{"Data Engineer"}},
		{JobID: "c", WorkTitles: []string{"Data Analyst"}},
	}
}

func TestBuildView_SortAndJoin(t *testing.T) {
	profile := models.Profile{TargetRoles: []string{"Data Analyst"}}
	tracker := []models.TrackerRecord{
		{JobID: "b", UserID: "u", Status: sptr(models.StatusRefused), Notes: sptr("old lead")},
	}

	rows := grid.BuildView(testPostings(), tracker, profile)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	// a and c both score 10 and sort ahead of b by id; b scores 0.
	wantOrder := []string{"a", "c", "b"}
	for i, id := range wantOrder {
		if rows[i].JobID != id {
			t.Fatalf("row %d = %q, want %q (order %v)", i, rows[i].JobID, id, wantOrder)
		}
	}
	if rows[0].MatchScore != 10 || rows[2].MatchScore != 0 {
		t.Errorf("scores = %d,%d, want 10,0", rows[0].MatchScore, rows[2].MatchScore)
	}
	if rows[2].Status == nil || *rows[2].Status != models.StatusRefused {
		t.Errorf("tracker join lost status on b: %+v", rows[2])
	}
	if rows[0].Status != nil || rows[0].Notes != nil {
		t.Errorf("untracked row carries tracker data: %+v", rows[0])
	}
}

func TestNeedsRefresh(t *testing.T) {
	cached := []grid.Row{
		{Posting: models.Posting{JobID: "a"}},
		{Posting: models.Posting{JobID: "b"}},
	}
	tests := []struct {
		name           string
		cached         []grid.Row
		viewIDs        []string
		profileChanged bool
		want           bool
	}{
		{"first render", nil, []string{"a"}, false, true},
		{"profile changed", cached, []string{"a", "b"}, true, true},
		{"same ids", cached, []string{"a", "b"}, false, false},
		{"same ids reordered", cached, []string{"b", "a"}, false, false},
		{"id dropped", cached, []string{"a"}, false, true},
		{"id swapped", cached, []string{"a", "c"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := grid.NeedsRefresh(tt.cached, tt.viewIDs, tt.profileChanged); got != tt.want {
				t.Errorf("NeedsRefresh = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyEdits_NoChange(t *testing.T) {
	cached := []grid.Row{
		{Posting: models.Posting{JobID: "a"}, Status: sptr(models.StatusPositive)},
	}
	edited := []grid.Row{
		{Posting: models.Posting{JobID: "a"}, Status: sptr(models.StatusPositive)},
	}
	got, changed := grid.ApplyEdits(cached, edited, time.Now())
	if changed {
		t.Error("identical grids reported as changed")
	}
	if len(got) != 1 || got[0].JobID != "a" {
		t.Errorf("unexpected rows: %+v", got)
	}
}

func TestApplyEdits_ContactedForcesDate(t *testing.T) {
	today := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

	cached := []grid.Row{
		{Posting: models.Posting{JobID: "a"}},
	}
	edited := []grid.Row{
		{
			Posting: models.Posting{JobID: "a"},
			Status:  sptr(models.StatusContacted),
			// A stale date sent by the client must be overruled.
			ContactDate: sptr("2020-01-01"),
		},
	}
	got, changed := grid.ApplyEdits(cached, edited, today)
	if !changed {
		t.Fatal("edit not detected")
	}
	if got[0].ContactDate == nil || *got[0].ContactDate != "2026-03-14" {
		t.Errorf("ContactDate = %v, want 2026-03-14", got[0].ContactDate)
	}
}

func TestApplyEdits_DateStickyAfterContacted(t *testing.T) {
	today := time.Date(2026, time.March, 20, 9, 0, 0, 0, time.UTC)

	cached := []grid.Row{
		{
			Posting:     models.Posting{JobID: "a"},
			Status:      sptr(models.StatusContacted),
			ContactDate: sptr("2026-03-14"),
		},
	}
	edited := []grid.Row{
		{
			Posting:     models.Posting{JobID: "a"},
			Status:      sptr(models.StatusRefused),
			ContactDate: sptr("2026-03-14"),
		},
	}
	got, changed := grid.ApplyEdits(cached, edited, today)
	if !changed {
		t.Fatal("status change not detected")
	}
	if got[0].ContactDate == nil || *got[0].ContactDate != "2026-03-14" {
		t.Errorf("ContactDate = %v, want sticky 2026-03-14", got[0].ContactDate)
	}

	// Re-entering Contacted from another status resets the date.
	back := []grid.Row{
		{
			Posting:     models.Posting{JobID: "a"},
			Status:      sptr(models.StatusContacted),
			ContactDate: sptr("2026-03-14"),
		},
	}
	got2, _ := grid.ApplyEdits(got, back, today)
	if got2[0].ContactDate == nil || *got2[0].ContactDate != "2026-03-20" {
		t.Errorf("ContactDate = %v, want 2026-03-20 on re-contact", got2[0].ContactDate)
	}
}

func TestRowsToSave(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	rows := []grid.Row{
		{Posting: models.Posting{JobID: "a"}, Status: sptr(models.StatusContacted), ContactDate: sptr("2026-03-14")},
		{Posting: models.Posting{JobID: "b"}},
		{Posting: models.Posting{JobID: "c"}, Status: sptr("")},
		{Posting: models.Posting{JobID: "d"}, Status: sptr(models.StatusRefused), Notes: sptr("no remote")},
	}
	recs := grid.RowsToSave(rows, "user-1", now)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (null and empty statuses dropped)", len(recs))
	}
	if recs[0].JobID != "a" || recs[1].JobID != "d" {
		t.Errorf("job ids = %s,%s, want a,d", recs[0].JobID, recs[1].JobID)
	}
	for _, r := range recs {
		if r.UserID != "user-1" {
			t.Errorf("record %s missing user id: %q", r.JobID, r.UserID)
		}
		if !r.UpdatedAt.Equal(now) {
			t.Errorf("record %s UpdatedAt = %v, want %v", r.JobID, r.UpdatedAt, now)
		}
	}
	if recs[1].Notes == nil || *recs[1].Notes != "no remote" {
		t.Errorf("notes not carried: %+v", recs[1])
	}
}
