package catalog

import (
	"sort"

	"github.com/joblens/joblens/internal/models"
)

// Options are the distinct values the sidebar and profile widgets
// offer, computed from the prepared table.
type Options struct {
	ConsultingStatuses []string `json:"consulting_statuses"`
	ScheduleTypes      []string `json:"schedule_types"`
	Seniorities        []string `json:"seniorities"`
	WorkTitles         []string `json:"work_titles"`
	CompanyCategories  []string `json:"company_categories"`
	Sectors            []string `json:"sectors"`
	Companies          []string `json:"companies"`

	// Profile widget inputs.
	Skills      []string `json:"skills"`
	JobInfo     []string `json:"job_info"`
	CompanyInfo []string `json:"company_info"`
}

// CollectOptions walks the table once per concern and returns sorted,
// de-duplicated option lists. Skills union the four skill-bearing list
// columns with the sentinel removed; job info unions seniority,
// consulting and schedule; company info unions category and sector.
func CollectOptions(ps []models.Posting) Options {
	consulting := map[string]struct{}{}
	schedules := map[string]struct{}{}
	seniorities := map[string]struct{}{}
	titles := map[string]struct{}{}
	categories := map[string]struct{}{}
	sectors := map[string]struct{}{}
	companies := map[string]struct{}{}
	skills := map[string]struct{}{}

	for _, p := range ps {
		addPtr(consulting, p.ConsultingStatus)
		addPtr(schedules, p.ScheduleType)
		add(seniorities, p.SeniorityCategory)
		addPtr(categories, p.CompanyCategory)
		addPtr(sectors, p.ActivitySectionDetails)
		add(companies, p.CompanyName)
		for _, t := range p.WorkTitles {
			if t != models.NotSpecified {
				add(titles, t)
			}
		}
		for _, col := range [][]string{p.Languages, p.BITools, p.CloudPlatforms, p.DataModelization} {
			for _, s := range col {
				if s != models.NotSpecified {
					add(skills, s)
				}
			}
		}
	}

	jobInfo := union(seniorities, consulting, schedules)
	companyInfo := union(categories, sectors)

	return Options{
		ConsultingStatuses: sorted(consulting),
		ScheduleTypes:      sorted(schedules),
		Seniorities:        sorted(seniorities),
		WorkTitles:         sorted(titles),
		CompanyCategories:  sorted(categories),
		Sectors:            sorted(sectors),
		Companies:          sorted(companies),
		Skills:             sorted(skills),
		JobInfo:            sorted(jobInfo),
		CompanyInfo:        sorted(companyInfo),
	}
}

// SanitizeProfile drops profile selections that are not offered by the
// current table, the same way preset defaults are filtered against the
// widget options before being applied.
func SanitizeProfile(p models.Profile, opts Options) models.Profile {
	return models.Profile{
		MySkills:       keep(p.MySkills, opts.Skills),
		TargetRoles:    keep(p.TargetRoles, opts.WorkTitles),
		AllJobInfo:     keep(p.AllJobInfo, opts.JobInfo),
		AllCompanyInfo: keep(p.AllCompanyInfo, opts.CompanyInfo),
		MinSalary:      p.MinSalary,
	}
}

// SanitizeFilter drops filter selections that are not offered by the
// current table. Singular selections fall back to "no constraint".
func SanitizeFilter(f Filter, opts Options) Filter {
	if f.Consulting != "" && f.Consulting != AllConsulting && !contains(opts.ConsultingStatuses, f.Consulting) {
		f.Consulting = ""
	}
	if f.Schedule != "" && f.Schedule != AllSchedules && !contains(opts.ScheduleTypes, f.Schedule) {
		f.Schedule = ""
	}
	if f.Sector != "" && f.Sector != AllSectors && !contains(opts.Sectors, f.Sector) {
		f.Sector = ""
	}
	if f.Company != "" && f.Company != AllCompanies && !contains(opts.Companies, f.Company) {
		f.Company = ""
	}
	f.Seniorities = keep(f.Seniorities, opts.Seniorities)
	f.WorkTitles = keep(f.WorkTitles, opts.WorkTitles)
	f.CompanyCategories = keep(f.CompanyCategories, opts.CompanyCategories)
	return f
}

func keep(selected, offered []string) []string {
	var out []string
	for _, s := range selected {
		if contains(offered, s) {
			out = append(out, s)
		}
	}
	return out
}

func add(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func addPtr(set map[string]struct{}, v *string) {
	if v != nil {
		add(set, *v)
	}
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := map[string]struct{}{}
	for _, s := range sets {
		for v := range s {
			out[v] = struct{}{}
		}
	}
	return out
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
