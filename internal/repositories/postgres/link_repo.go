package postgres

import (
	"context"

	"github.com/joblens/joblens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LinkRepository interface {
	UpsertBatch(ctx context.Context, links []models.UserJobLink) error
}

type linkRepo struct {
	db *gorm.DB
}

func NewLinkRepo(db *gorm.DB) LinkRepository {
	return &linkRepo{db: db}
}

func (r *linkRepo) UpsertBatch(ctx context.Context, links []models.UserJobLink) error {
	if len(links) == 0 {
		return nil
	}
	// Duplicate (user, job) pairs are the common case across runs.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "job_id"}},
			DoNothing: true,
		}).
		CreateInBatches(links, 500).Error
}
