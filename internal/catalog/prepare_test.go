package catalog_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/models"
)

func TestParseListCell(t *testing.T) {
	sentinel := []string{models.NotSpecified}

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"json array", `["python", "sql"]`, []string{"python", "sql"}},
		{"python literal", `['python', 'sql']`, []string{"python", "sql"}},
		{"single element", `["dbt"]`, []string{"dbt"}},
		{"empty list", `[]`, sentinel},
		{"empty string", "", sentinel},
		{"whitespace", "   ", sentinel},
		{"not a list", "python, sql", sentinel},
		{"garbage brackets", "[not, valid json", sentinel},
		{"nested garbage", `[{"a":}]`, sentinel},
		{"blank entries dropped", `["", "sql"]`, []string{"sql"}},
		{"only blank entries", `["", " "]`, sentinel},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := catalog.ParseListCell(c.in)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("ParseListCell(%q) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

// Re-stringifying the output and parsing again must be a fixed point:
// valid input survives, everything else stays the sentinel list.
func TestParseListCell_Idempotent(t *testing.T) {
	inputs := []string{`["python", "sql"]`, `[]`, "garbage", ""}
	for _, in := range inputs {
		first := catalog.ParseListCell(in)
		asString, err := json.Marshal(first)
		if err != nil {
			t.Fatalf("marshal %v: %v", first, err)
		}
		second := catalog.ParseListCell(string(asString))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("ParseListCell not idempotent for %q: first %v, second %v", in, first, second)
		}
	}
}

func TestDeriveSeniority(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want string
	}{
		{"single known", []string{"Junior"}, "Junior"},
		{"priority wins", []string{"Junior", "Lead/Manager"}, "Lead/Manager"},
		{"senior over junior", []string{"Junior", "Senior/Expert"}, "Senior/Expert"},
		{"sentinel only", []string{models.NotSpecified}, models.NotSpecified},
		{"unknown tags", []string{"Wizard"}, catalog.SeniorityOther},
		{"empty", nil, catalog.SeniorityOther},
		{"known beats sentinel", []string{models.NotSpecified, "Intern/Apprentice"}, "Intern/Apprentice"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := catalog.DeriveSeniority(c.tags); got != c.want {
				t.Errorf("DeriveSeniority(%v) = %q, want %q", c.tags, got, c.want)
			}
		})
	}
}

func TestPrepare(t *testing.T) {
	min := 50000.0
	p := models.Posting{
		JobID:           "j1",
		SeniorityTags:   []string{"Senior/Expert"},
		AnnualMinSalary: &min,
	}
	catalog.Prepare(&p)

	if p.SeniorityCategory != "Senior/Expert" {
		t.Errorf("SeniorityCategory = %q, want Senior/Expert", p.SeniorityCategory)
	}
	if !p.IsSalaryMentioned {
		t.Error("IsSalaryMentioned should be true when a salary bound is set")
	}
	for _, col := range [][]string{p.Languages, p.BITools, p.CloudPlatforms, p.DataModelization, p.WorkTitles} {
		if len(col) != 1 || col[0] != models.NotSpecified {
			t.Errorf("empty list column should default to sentinel, got %v", col)
		}
	}

	q := models.Posting{JobID: "j2"}
	catalog.Prepare(&q)
	if q.IsSalaryMentioned {
		t.Error("IsSalaryMentioned should be false without salary bounds")
	}
	if q.SeniorityCategory != models.NotSpecified {
		t.Errorf("defaulted seniority tags should derive the sentinel category, got %q", q.SeniorityCategory)
	}
}
