package models

// Profile is a user's scoring configuration: what to look for in a
// posting and how much a salary floor matters. The zero value scores
// every posting 0.
type Profile struct {
	MySkills       []string `json:"my_skills"`
	TargetRoles    []string `json:"target_roles"`
	AllJobInfo     []string `json:"all_job_info"`
	AllCompanyInfo []string `json:"all_company_info"`
	MinSalary      float64  `json:"min_salary"`
}

// Equal reports whether two profiles select the same things. Used to
// decide whether a cached grid snapshot is stale.
func (p Profile) Equal(o Profile) bool {
	if p.MinSalary != o.MinSalary {
		return false
	}
	return equalStrings(p.MySkills, o.MySkills) &&
		equalStrings(p.TargetRoles, o.TargetRoles) &&
		equalStrings(p.AllJobInfo, o.AllJobInfo) &&
		equalStrings(p.AllCompanyInfo, o.AllCompanyInfo)
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
