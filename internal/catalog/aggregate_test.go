package catalog_test

import (
	"testing"

	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/models"
)

func TestValueCounts_NullsBucketed(t *testing.T) {
	ps := []models.Posting{
		{JobID: "a", ScheduleType: strPtr("Full-time")},
		{JobID: "b", ScheduleType: strPtr("Full-time")},
		{JobID: "c"},
	}
	counts := catalog.ValueCounts(ps, func(p models.Posting) *string { return p.ScheduleType }, 0)
	if len(counts) != 2 {
		t.Fatalf("got %d buckets, want 2", len(counts))
	}
	if counts[0].Value != "Full-time" || counts[0].Count != 2 {
		t.Errorf("top bucket = %+v, want Full-time x2", counts[0])
	}
	if counts[1].Value != models.NotSpecified || counts[1].Count != 1 {
		t.Errorf("null bucket = %+v, want sentinel x1", counts[1])
	}
}

func TestTopKeywords_DropsSentinel(t *testing.T) {
	ps := catalog.PrepareAll([]models.Posting{
		{JobID: "a", BITools: []string{"Tableau", "Power BI"}},
		{JobID: "b", BITools: []string{"Tableau"}},
		{JobID: "c"}, // defaults to the sentinel list
	})
	counts := catalog.TopKeywords(ps, func(p models.Posting) []string { return p.BITools }, 10)
	for _, c := range counts {
		if c.Value == models.NotSpecified {
			t.Fatalf("sentinel leaked into keyword counts: %+v", counts)
		}
	}
	if len(counts) != 2 || counts[0].Value != "Tableau" || counts[0].Count != 2 {
		t.Errorf("counts = %+v, want Tableau x2 first", counts)
	}
}

func TestTopKeywords_TopN(t *testing.T) {
	ps := []models.Posting{
		{JobID: "a", Languages: []string{"python", "sql", "r", "scala"}},
	}
	counts := catalog.TopKeywords(ps, func(p models.Posting) []string { return p.Languages }, 2)
	if len(counts) != 2 {
		t.Errorf("topN not applied: got %d entries", len(counts))
	}
}

func TestSalaryTransparency(t *testing.T) {
	min := 40000.0
	ps := catalog.PrepareAll([]models.Posting{
		{JobID: "a", AnnualMinSalary: &min},
		{JobID: "b"},
		{JobID: "c"},
	})
	counts := catalog.SalaryTransparency(ps)
	if len(counts) != 2 || counts[0].Value != "Salary Not Mentioned" || counts[0].Count != 2 {
		t.Errorf("counts = %+v", counts)
	}
}

func TestCollectOptions_SkillsUnion(t *testing.T) {
	ps := catalog.PrepareAll([]models.Posting{
		{JobID: "a", Languages: []string{"python"}, BITools: []string{"Tableau"}},
		{JobID: "b", CloudPlatforms: []string{"GCP"}, DataModelization: []string{"dbt"}},
	})
	opts := catalog.CollectOptions(ps)
	want := []string{"GCP", "Tableau", "dbt", "python"}
	if len(opts.Skills) != len(want) {
		t.Fatalf("skills = %v, want %v", opts.Skills, want)
	}
	for i, s := range want {
		if opts.Skills[i] != s {
			t.Errorf("skills[%d] = %q, want %q", i, opts.Skills[i], s)
		}
	}
}

func TestSanitizeFilter(t *testing.T) {
	opts := catalog.Options{
		ScheduleTypes:     []string{"Full-time"},
		Seniorities:       []string{"Junior", "Senior/Expert"},
		CompanyCategories: []string{"Large Enterprise"},
	}
	f := catalog.Filter{
		Consulting:        "Internal position",
		Schedule:          "Full-time",
		Company:           catalog.AllCompanies,
		Seniorities:       []string{"Senior/Expert", "Wizard"},
		CompanyCategories: []string{"SME"},
	}
	got := catalog.SanitizeFilter(f, opts)
	if got.Consulting != "" {
		t.Errorf("Consulting = %q, want dropped", got.Consulting)
	}
	if got.Schedule != "Full-time" {
		t.Errorf("Schedule = %q, want kept", got.Schedule)
	}
	if got.Company != catalog.AllCompanies {
		t.Errorf("Company = %q, sentinel should survive", got.Company)
	}
	if len(got.Seniorities) != 1 || got.Seniorities[0] != "Senior/Expert" {
		t.Errorf("Seniorities = %v, want [Senior/Expert]", got.Seniorities)
	}
	if len(got.CompanyCategories) != 0 {
		t.Errorf("CompanyCategories = %v, want empty", got.CompanyCategories)
	}
}

func TestSanitizeProfile(t *testing.T) {
	opts := catalog.Options{
		Skills:     []string{"python", "sql"},
		WorkTitles: []string{"Data Analyst"},
	}
	p := models.Profile{
		MySkills:    []string{"python", "cobol"},
		TargetRoles: []string{"Data Analyst", "Astronaut"},
		MinSalary:   50000,
	}
	got := catalog.SanitizeProfile(p, opts)
	if len(got.MySkills) != 1 || got.MySkills[0] != "python" {
		t.Errorf("MySkills = %v, want [python]", got.MySkills)
	}
	if len(got.TargetRoles) != 1 || got.TargetRoles[0] != "Data Analyst" {
		t.Errorf("TargetRoles = %v, want [Data Analyst]", got.TargetRoles)
	}
	if got.MinSalary != 50000 {
		t.Errorf("MinSalary = %v, want 50000", got.MinSalary)
	}
}
