// Package match computes the heuristic relevance score of a posting
// against a user profile. Scores are point totals, not probabilities:
// independent rules contribute additively.
package match

import "github.com/joblens/joblens/internal/models"

// Rule weights.
const (
	pointsTitle         = 10
	pointsPerSkill      = 3
	pointsJobInfo       = 5
	pointsCompanyInfo   = 5
	pointsSalaryFull    = 10
	pointsSalaryPartial = 5
)

// Score sums the rule contributions for one posting. Missing fields
// never match; the two salary rules are mutually exclusive.
func Score(p models.Posting, profile models.Profile) int {
	score := 0

	for _, role := range profile.TargetRoles {
		if containsString(p.WorkTitles, role) {
			score += pointsTitle
			break
		}
	}

	jobSkills := map[string]struct{}{}
	for _, col := range [][]string{p.Languages, p.BITools, p.CloudPlatforms, p.DataModelization} {
		for _, s := range col {
			jobSkills[s] = struct{}{}
		}
	}
	for _, skill := range profile.MySkills {
		if _, ok := jobSkills[skill]; ok {
			score += pointsPerSkill
		}
	}

	// Flat bonus regardless of how many tags overlap.
	jobInfo := []string{p.SeniorityCategory}
	if p.ConsultingStatus != nil {
		jobInfo = append(jobInfo, *p.ConsultingStatus)
	}
	if p.ScheduleType != nil {
		jobInfo = append(jobInfo, *p.ScheduleType)
	}
	if intersectsAny(profile.AllJobInfo, jobInfo) {
		score += pointsJobInfo
	}

	var companyInfo []string
	if p.CompanyCategory != nil {
		companyInfo = append(companyInfo, *p.CompanyCategory)
	}
	if p.ActivitySectionDetails != nil {
		companyInfo = append(companyInfo, *p.ActivitySectionDetails)
	}
	if intersectsAny(profile.AllCompanyInfo, companyInfo) {
		score += pointsCompanyInfo
	}

	if profile.MinSalary > 0 {
		switch {
		case p.AnnualMinSalary != nil && *p.AnnualMinSalary >= profile.MinSalary:
			score += pointsSalaryFull
		case p.AnnualMaxSalary != nil && *p.AnnualMaxSalary >= profile.MinSalary:
			score += pointsSalaryPartial
		}
	}

	return score
}

// MaxPossibleScore is the display-normalization ceiling for a profile:
// the best any posting could do. Clamped to 1 so progress rendering
// never divides by zero.
func MaxPossibleScore(profile models.Profile) int {
	max := pointsTitle + pointsJobInfo + pointsCompanyInfo
	max += pointsPerSkill * len(profile.MySkills)
	if profile.MinSalary > 0 {
		max += pointsSalaryFull
	}
	if max < 1 {
		max = 1
	}
	return max
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersectsAny(selection, values []string) bool {
	if len(selection) == 0 {
		return false
	}
	for _, v := range values {
		if containsString(selection, v) {
			return true
		}
	}
	return false
}
