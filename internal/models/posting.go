package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// NotSpecified is the sentinel substituted for missing or unparseable
// list-valued cells. List columns never stay empty: a posting with no
// known languages carries ["Not specified"] instead of [].
const NotSpecified = "Not specified"

type Posting struct {
	JobID       string `gorm:"column:job_id;type:text;primaryKey" json:"job_id"`
	Title       string `gorm:"column:title;type:text" json:"title"`
	CompanyName string `gorm:"column:company_name;type:text;index" json:"company_name"`

	ScheduleType           *string `gorm:"column:schedule_type;type:text" json:"schedule_type"`
	ConsultingStatus       *string `gorm:"column:consulting_status;type:text" json:"consulting_status"`
	CompanyCategory        *string `gorm:"column:company_category;type:text" json:"company_category"`
	ActivitySectionDetails *string `gorm:"column:activity_section_details;type:text" json:"activity_section_details"`

	SeniorityTags    pq.StringArray `gorm:"column:seniority_tags;type:text[]" json:"seniority_tags"`
	Languages        pq.StringArray `gorm:"column:languages;type:text[]" json:"languages"`
	BITools          pq.StringArray `gorm:"column:bi_tools;type:text[]" json:"bi_tools"`
	CloudPlatforms   pq.StringArray `gorm:"column:cloud_platforms;type:text[]" json:"cloud_platforms"`
	DataModelization pq.StringArray `gorm:"column:data_modelization;type:text[]" json:"data_modelization"`
	WorkTitles       pq.StringArray `gorm:"column:work_titles_final;type:text[]" json:"work_titles_final"`

	AnnualMinSalary *float64 `gorm:"column:annual_min_salary" json:"annual_min_salary"`
	AnnualMaxSalary *float64 `gorm:"column:annual_max_salary" json:"annual_max_salary"`

	ApplyLink string `gorm:"column:apply_link;type:text" json:"apply_link"`

	// Raw search-API payload, kept for later re-processing.
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`

	// Derived at load time, never stored.
	SeniorityCategory string `gorm:"-" json:"seniority_category"`
	IsSalaryMentioned bool   `gorm:"-" json:"is_salary_mentioned"`
}

func (Posting) TableName() string { return "postings" }
