package catalog

import (
	"sort"

	"github.com/joblens/joblens/internal/models"
)

// Count is one bar or pie slice: a value and how many postings carry it.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts tallies a singular column over the table. Null cells are
// bucketed under the sentinel. Results are sorted by count descending
// (value ascending on ties) and cut to topN when topN > 0.
func ValueCounts(ps []models.Posting, get func(models.Posting) *string, topN int) []Count {
	tally := map[string]int{}
	for _, p := range ps {
		v := models.NotSpecified
		if s := get(p); s != nil && *s != "" {
			v = *s
		}
		tally[v]++
	}
	return sortCounts(tally, topN)
}

// TopKeywords explodes a list column, drops the sentinel, and tallies
// the remaining entries.
func TopKeywords(ps []models.Posting, get func(models.Posting) []string, topN int) []Count {
	tally := map[string]int{}
	for _, p := range ps {
		for _, v := range get(p) {
			if v == "" || v == models.NotSpecified {
				continue
			}
			tally[v]++
		}
	}
	return sortCounts(tally, topN)
}

// SeniorityDistribution tallies the derived seniority category.
func SeniorityDistribution(ps []models.Posting) []Count {
	tally := map[string]int{}
	for _, p := range ps {
		tally[p.SeniorityCategory]++
	}
	return sortCounts(tally, 0)
}

// SalaryTransparency splits the table on the salary-presence flag.
func SalaryTransparency(ps []models.Posting) []Count {
	tally := map[string]int{}
	for _, p := range ps {
		if p.IsSalaryMentioned {
			tally["Salary Mentioned"]++
		} else {
			tally["Salary Not Mentioned"]++
		}
	}
	return sortCounts(tally, 0)
}

// ConsultingDistribution tallies the consulting status, skipping null
// cells entirely.
func ConsultingDistribution(ps []models.Posting) []Count {
	tally := map[string]int{}
	for _, p := range ps {
		if p.ConsultingStatus != nil && *p.ConsultingStatus != "" {
			tally[*p.ConsultingStatus]++
		}
	}
	return sortCounts(tally, 0)
}

func sortCounts(tally map[string]int, topN int) []Count {
	out := make([]Count, 0, len(tally))
	for v, n := range tally {
		out = append(out, Count{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
