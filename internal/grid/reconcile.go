// Package grid keeps the editable tracking grid consistent with the
// filtered posting view and the remote tracker table. Every function
// here is pure: the service layer owns the cached snapshot and the
// store round-trips.
package grid

import (
	"sort"
	"time"

	"github.com/joblens/joblens/internal/match"
	"github.com/joblens/joblens/internal/models"
)

// ColumnOrder is the display order of the leading grid columns; any
// remaining posting fields follow.
var ColumnOrder = []string{
	"match_score", "title", "company_name", "status", "contact_date",
	"annual_min_salary", "annual_max_salary",
}

// Row is one line of the editable grid: a scored posting plus the
// user-editable tracking columns.
type Row struct {
	models.Posting

	MatchScore  int     `json:"match_score"`
	Status      *string `json:"status"`
	ContactDate *string `json:"contact_date"`
	Notes       *string `json:"notes"`
}

// BuildView scores the filtered postings against the profile, sorts by
// score descending, and left-joins the tracker columns. Postings with
// no tracker record keep null status/date/notes.
func BuildView(ps []models.Posting, tracker []models.TrackerRecord, profile models.Profile) []Row {
	byJob := make(map[string]models.TrackerRecord, len(tracker))
	for _, t := range tracker {
		byJob[t.JobID] = t
	}

	rows := make([]Row, 0, len(ps))
	for _, p := range ps {
		r := Row{Posting: p, MatchScore: match.Score(p, profile)}
		if t, ok := byJob[p.JobID]; ok {
			r.Status = t.Status
			r.ContactDate = t.ContactDate
			r.Notes = t.Notes
		}
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].MatchScore != rows[j].MatchScore {
			return rows[i].MatchScore > rows[j].MatchScore
		}
		return rows[i].JobID < rows[j].JobID
	})
	return rows
}

// NeedsRefresh reports whether the cached snapshot must be rebuilt:
// first render, a different set of posting ids in the current view, or
// a changed scoring profile.
func NeedsRefresh(cached []Row, viewIDs []string, profileChanged bool) bool {
	if cached == nil || profileChanged {
		return true
	}
	if len(cached) != len(viewIDs) {
		return true
	}
	have := make(map[string]struct{}, len(cached))
	for _, r := range cached {
		have[r.JobID] = struct{}{}
	}
	for _, id := range viewIDs {
		if _, ok := have[id]; !ok {
			return true
		}
	}
	return false
}

// Equal reports structural equality of the editable columns, row for
// row. A mismatch means the user edited the grid.
func Equal(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].JobID != b[i].JobID ||
			!eqPtr(a[i].Status, b[i].Status) ||
			!eqPtr(a[i].ContactDate, b[i].ContactDate) ||
			!eqPtr(a[i].Notes, b[i].Notes) {
			return false
		}
	}
	return true
}

// ApplyEdits merges a UI-supplied copy over the cached snapshot. Rows
// whose status newly became Contacted get their contact date forced to
// today, server-side; any date the UI supplied for that transition is
// not trusted. The date is sticky: later transitions away from
// Contacted leave it alone. Returns the adjusted snapshot and whether
// anything actually changed.
func ApplyEdits(cached, edited []Row, today time.Time) ([]Row, bool) {
	if Equal(cached, edited) {
		return cached, false
	}

	prevStatus := make(map[string]string, len(cached))
	for _, r := range cached {
		if r.Status != nil {
			prevStatus[r.JobID] = *r.Status
		}
	}

	out := make([]Row, len(edited))
	copy(out, edited)
	date := today.Format(models.ContactDateFormat)
	for i := range out {
		now := ""
		if out[i].Status != nil {
			now = *out[i].Status
		}
		if now == models.StatusContacted && prevStatus[out[i].JobID] != models.StatusContacted {
			d := date
			out[i].ContactDate = &d
		}
	}
	return out, true
}

// RowsToSave extracts the tracker upsert payload: only rows with a
// non-null status are persisted, keyed by (job_id, user_id).
func RowsToSave(rows []Row, userID string, now time.Time) []models.TrackerRecord {
	var out []models.TrackerRecord
	for _, r := range rows {
		if r.Status == nil || *r.Status == "" {
			continue
		}
		out = append(out, models.TrackerRecord{
			JobID:       r.JobID,
			UserID:      userID,
			Status:      r.Status,
			ContactDate: r.ContactDate,
			Notes:       r.Notes,
			UpdatedAt:   now,
		})
	}
	return out
}

func eqPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
