package catalog_test

import (
	"testing"

	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/models"
)

func strPtr(s string) *string { return &s }

func testTable() []models.Posting {
	return catalog.PrepareAll([]models.Posting{
		{
			JobID:            "a",
			CompanyName:      "Acme",
			ConsultingStatus: strPtr("Internal position"),
			ScheduleType:     strPtr("Full-time"),
			CompanyCategory:  strPtr("Large Enterprise"),
			SeniorityTags:    []string{"Senior/Expert"},
			WorkTitles:       []string{"Data Analyst", "BI Analyst"},
		},
		{
			JobID:            "b",
			CompanyName:      "Globex",
			ConsultingStatus: strPtr("Consulting"),
			ScheduleType:     strPtr("Full-time"),
			SeniorityTags:    []string{"Junior"},
			WorkTitles:       []string{"Analytics Engineer"},
		},
		{
			JobID:       "c",
			CompanyName: "Initech",
		},
	})
}

func TestFilter_NoConstraints(t *testing.T) {
	ps := testTable()
	got := catalog.Apply(ps, catalog.Filter{})
	if len(got) != len(ps) {
		t.Errorf("empty filter kept %d rows, want %d", len(got), len(ps))
	}

	sentinels := catalog.Filter{
		Consulting: catalog.AllConsulting,
		Schedule:   catalog.AllSchedules,
		Sector:     catalog.AllSectors,
		Company:    catalog.AllCompanies,
	}
	got = catalog.Apply(ps, sentinels)
	if len(got) != len(ps) {
		t.Errorf("sentinel filter kept %d rows, want %d", len(got), len(ps))
	}
}

func TestFilter_Conjunction(t *testing.T) {
	ps := testTable()

	f := catalog.Filter{Schedule: "Full-time", Consulting: "Internal position"}
	got := catalog.Apply(ps, f)
	if len(got) != 1 || got[0].JobID != "a" {
		t.Errorf("conjunctive filter = %v, want only job a", ids(got))
	}

	// Null columns never satisfy a concrete constraint.
	f = catalog.Filter{Consulting: "Internal position", Company: "Initech"}
	if got := catalog.Apply(ps, f); len(got) != 0 {
		t.Errorf("filter over null column kept %v, want none", ids(got))
	}
}

func TestFilter_TitleIntersection(t *testing.T) {
	ps := testTable()
	f := catalog.Filter{WorkTitles: []string{"BI Analyst", "Data Engineer"}}
	got := catalog.Apply(ps, f)
	if len(got) != 1 || got[0].JobID != "a" {
		t.Errorf("title filter = %v, want only job a", ids(got))
	}
}

func TestFilter_SeniorityMembership(t *testing.T) {
	ps := testTable()
	f := catalog.Filter{Seniorities: []string{"Junior", models.NotSpecified}}
	got := catalog.Apply(ps, f)
	if len(got) != 2 {
		t.Fatalf("seniority filter = %v, want jobs b and c", ids(got))
	}
}

// The conjunction is commutative: two filters differing only in which
// field is written first select the same rows.
func TestFilter_OrderIndependent(t *testing.T) {
	ps := testTable()
	f1 := catalog.Filter{Schedule: "Full-time", Seniorities: []string{"Senior/Expert"}}
	f2 := catalog.Filter{Seniorities: []string{"Senior/Expert"}, Schedule: "Full-time"}

	a, b := catalog.Apply(ps, f1), catalog.Apply(ps, f2)
	if len(a) != len(b) {
		t.Fatalf("filters disagree: %v vs %v", ids(a), ids(b))
	}
	for i := range a {
		if a[i].JobID != b[i].JobID {
			t.Errorf("filters disagree at %d: %s vs %s", i, a[i].JobID, b[i].JobID)
		}
	}
}

func ids(ps []models.Posting) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.JobID)
	}
	return out
}
