package models

import (
	"time"

	"gorm.io/datatypes"
)

// Preset kinds: filter presets snapshot sidebar selections, search
// presets snapshot scoring-profile selections.
const (
	PresetKindFilter = "filter"
	PresetKindSearch = "search"
)

// Preset is a named, persisted snapshot of selections owned by a user.
type Preset struct {
	UserID    string         `gorm:"column:user_id;type:text;primaryKey" json:"user_id"`
	Name      string         `gorm:"column:name;type:text;primaryKey" json:"name"`
	Payload   datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

// FilterPreset and SearchPreset share a schema but live in separate
// tables, mirroring the two preset toggles in the dashboard sidebar.
type FilterPreset struct{ Preset }

func (FilterPreset) TableName() string { return "user_filter_presets" }

type SearchPreset struct{ Preset }

func (SearchPreset) TableName() string { return "user_search_presets" }
