package catalog

import "github.com/joblens/joblens/internal/models"

// Sentinel values meaning "no constraint" for the singular filters.
const (
	AllConsulting = "Include All"
	AllSchedules  = "All types"
	AllSectors    = "All sectors"
	AllCompanies  = "All companies"
)

// Filter is one set of sidebar selections. Empty slices and sentinel
// strings impose no constraint; active constraints combine
// conjunctively.
type Filter struct {
	Consulting string `json:"consulting" form:"consulting"`
	Schedule   string `json:"schedule" form:"schedule"`
	Sector     string `json:"sector" form:"sector"`
	Company    string `json:"company" form:"company"`

	Seniorities       []string `json:"seniority_category" form:"seniority_category"`
	WorkTitles        []string `json:"titles" form:"titles"`
	CompanyCategories []string `json:"category_company" form:"category_company"`
}

// Matches reports whether a prepared posting satisfies every active
// constraint. Singular filters use exact equality against the column
// value; multi-selects use set membership, and the title filter
// matches when the posting's title list intersects the selection.
func (f Filter) Matches(p models.Posting) bool {
	if f.Consulting != "" && f.Consulting != AllConsulting {
		if p.ConsultingStatus == nil || *p.ConsultingStatus != f.Consulting {
			return false
		}
	}
	if f.Schedule != "" && f.Schedule != AllSchedules {
		if p.ScheduleType == nil || *p.ScheduleType != f.Schedule {
			return false
		}
	}
	if f.Sector != "" && f.Sector != AllSectors {
		if p.ActivitySectionDetails == nil || *p.ActivitySectionDetails != f.Sector {
			return false
		}
	}
	if f.Company != "" && f.Company != AllCompanies {
		if p.CompanyName != f.Company {
			return false
		}
	}
	if len(f.Seniorities) > 0 && !contains(f.Seniorities, p.SeniorityCategory) {
		return false
	}
	if len(f.CompanyCategories) > 0 {
		if p.CompanyCategory == nil || !contains(f.CompanyCategories, *p.CompanyCategory) {
			return false
		}
	}
	if len(f.WorkTitles) > 0 && !intersects(f.WorkTitles, p.WorkTitles) {
		return false
	}
	return true
}

// Apply returns the subset of postings matching the filter, preserving
// input order.
func Apply(ps []models.Posting, f Filter) []models.Posting {
	out := make([]models.Posting, 0, len(ps))
	for _, p := range ps {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(set []string, values []string) bool {
	for _, v := range values {
		if contains(set, v) {
			return true
		}
	}
	return false
}
