package models

import "time"

// Tracking statuses a user can assign to a posting.
const (
	StatusContacted = "Contacted"
	StatusRefused   = "Refused"
	StatusPositive  = "Positive"
)

// ContactDateFormat is the wire format for contact dates.
const ContactDateFormat = "2006-01-02"

// TrackerRecord is the per (posting, user) application annotation.
// Rows are created implicitly on first edit and upserted on save.
type TrackerRecord struct {
	JobID  string `gorm:"column:job_id;type:text;primaryKey" json:"job_id"`
	UserID string `gorm:"column:user_id;type:text;primaryKey" json:"user_id"`

	Status      *string `gorm:"column:status;type:text" json:"status"`
	ContactDate *string `gorm:"column:contact_date;type:date" json:"contact_date"`
	Notes       *string `gorm:"column:notes;type:text" json:"notes"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (TrackerRecord) TableName() string { return "tracker" }

// UserJobLink records that a user's search returned a posting,
// regardless of whether the posting itself was new.
type UserJobLink struct {
	UserID    string    `gorm:"column:user_id;type:text;primaryKey" json:"user_id"`
	JobID     string    `gorm:"column:job_id;type:text;primaryKey" json:"job_id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (UserJobLink) TableName() string { return "raw_job_user_links" }
