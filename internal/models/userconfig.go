package models

import (
	"time"

	"gorm.io/datatypes"
)

// SearchSpec is one (query, location) pair the extractor runs for a user.
type SearchSpec struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

// SkillAlias is one canonical skill with the spellings that count as it.
type SkillAlias struct {
	Skill   string   `json:"skill"`
	Aliases []string `json:"aliases,omitempty"`
}

// UserConfig holds a user's extraction searches and skill-category
// definitions. Searches and SkillCategories are stored as JSONB and
// validated at the save boundary (see ConfigService).
type UserConfig struct {
	UserID string `gorm:"column:user_id;type:text;primaryKey" json:"user_id"`

	// [{query, location}, ...]
	Searches datatypes.JSON `gorm:"column:searches;type:jsonb" json:"searches"`

	// {category: [{skill, aliases}, ...], ...}
	SkillCategories datatypes.JSON `gorm:"column:skill_categories;type:jsonb" json:"skill_categories"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (UserConfig) TableName() string { return "user_configs" }
