package models

import (
	"time"

	"gorm.io/datatypes"
)

// CompanyRecord holds the registry enrichment for one company name.
// Info is null when the lookup missed or failed; the row still exists
// so the extractor does not retry the name on every run.
type CompanyRecord struct {
	CompanyName string         `gorm:"column:company_name;type:text;primaryKey" json:"company_name"`
	Info        datatypes.JSON `gorm:"column:company_info;type:jsonb" json:"company_info"`
	CreatedAt   time.Time      `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (CompanyRecord) TableName() string { return "companies" }
