package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joblens/joblens/internal/models"
)

// LoadCSV reads a flat posting export. List-valued columns arrive as
// stringified literals and go through ParseListCell; salary cells that
// fail to parse are treated as missing. Only a missing file or an
// unreadable header is fatal.
func LoadCSV(path string) ([]models.Posting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open postings file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read postings header: %w", err)
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	cell := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var out []models.Posting
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		p := models.Posting{
			JobID:            cell(rec, "job_id"),
			Title:            cell(rec, "title"),
			CompanyName:      cell(rec, "company_name"),
			ApplyLink:        cell(rec, "apply_link"),
			ScheduleType:     optCell(rec, idx, "schedule_type"),
			ConsultingStatus: optCell(rec, idx, "consulting_status"),
			CompanyCategory:  optCell(rec, idx, "company_category"),

			SeniorityTags:    ParseListCell(cell(rec, "seniority_tags")),
			Languages:        ParseListCell(cell(rec, "languages")),
			BITools:          ParseListCell(cell(rec, "bi_tools")),
			CloudPlatforms:   ParseListCell(cell(rec, "cloud_platforms")),
			DataModelization: ParseListCell(cell(rec, "data_modelization")),
			WorkTitles:       ParseListCell(cell(rec, "work_titles_final")),

			AnnualMinSalary: parseSalary(cell(rec, "annual_min_salary")),
			AnnualMaxSalary: parseSalary(cell(rec, "annual_max_salary")),
		}
		p.ActivitySectionDetails = optCell(rec, idx, "activity_section_details")
		if p.JobID == "" {
			continue
		}
		out = append(out, p)
	}
	return PrepareAll(out), nil
}

func optCell(rec []string, idx map[string]int, col string) *string {
	i, ok := idx[col]
	if !ok || i >= len(rec) {
		return nil
	}
	s := strings.TrimSpace(rec[i])
	if s == "" {
		return nil
	}
	return &s
}

func parseSalary(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
