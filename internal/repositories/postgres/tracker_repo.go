package postgres

import (
	"context"

	"github.com/joblens/joblens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrackerRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.TrackerRecord, error)
	UpsertBatch(ctx context.Context, rows []models.TrackerRecord) error
}

type trackerRepo struct {
	db *gorm.DB
}

func NewTrackerRepo(db *gorm.DB) TrackerRepository {
	return &trackerRepo{db: db}
}

func (r *trackerRepo) ListByUser(ctx context.Context, userID string) ([]models.TrackerRecord, error) {
	var rows []models.TrackerRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

func (r *trackerRepo) UpsertBatch(ctx context.Context, rows []models.TrackerRecord) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "contact_date", "notes", "updated_at"}),
		}).
		Create(rows).Error
}
