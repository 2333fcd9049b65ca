// Package catalog prepares, filters and aggregates the posting table
// that every dashboard page works from.
package catalog

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/joblens/joblens/internal/models"
)

// seniorityPriority resolves a single seniority category from a
// posting's tag list. Earlier entries win when several tags are
// present; anything unmatched falls into "Other".
var seniorityPriority = []string{
	"Lead/Manager",
	"Senior/Expert",
	"Junior",
	"Intern/Apprentice",
	models.NotSpecified,
}

// SeniorityOther is the fallback bucket for tag lists that match no
// known category.
const SeniorityOther = "Other"

// ParseListCell turns a stringified list cell into a list of strings.
// Cells that are empty, not list-shaped, unparseable, or parse to an
// empty list all become the single-element sentinel list. Parse
// failures never propagate.
func ParseListCell(raw string) []string {
	sentinel := []string{models.NotSpecified}

	s := strings.TrimSpace(raw)
	if len(s) < 2 || !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return sentinel
	}

	if !gjson.Valid(s) {
		// Cells exported from the pipeline may carry single-quoted
		// (Python-style) literals.
		s = strings.ReplaceAll(s, "'", `"`)
		if !gjson.Valid(s) {
			return sentinel
		}
	}

	parsed := gjson.Parse(s)
	if !parsed.IsArray() {
		return sentinel
	}

	var out []string
	for _, v := range parsed.Array() {
		if t := strings.TrimSpace(v.String()); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return sentinel
	}
	return out
}

// DeriveSeniority resolves a posting's tag list to one category using
// the fixed priority order.
func DeriveSeniority(tags []string) string {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	for _, cat := range seniorityPriority {
		if _, ok := set[cat]; ok {
			return cat
		}
	}
	return SeniorityOther
}

// Prepare normalizes one posting in place: list columns default to the
// sentinel list, the seniority category is derived, and the
// salary-presence flag is set.
func Prepare(p *models.Posting) {
	for _, col := range []*[]string{
		(*[]string)(&p.SeniorityTags),
		(*[]string)(&p.Languages),
		(*[]string)(&p.BITools),
		(*[]string)(&p.CloudPlatforms),
		(*[]string)(&p.DataModelization),
		(*[]string)(&p.WorkTitles),
	} {
		if len(*col) == 0 {
			*col = []string{models.NotSpecified}
		}
	}

	p.SeniorityCategory = DeriveSeniority(p.SeniorityTags)
	p.IsSalaryMentioned = p.AnnualMinSalary != nil || p.AnnualMaxSalary != nil
}

// PrepareAll normalizes a whole table.
func PrepareAll(ps []models.Posting) []models.Posting {
	for i := range ps {
		Prepare(&ps[i])
	}
	return ps
}
