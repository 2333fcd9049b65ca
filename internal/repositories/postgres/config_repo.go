package postgres

import (
	"context"
	"errors"

	"github.com/joblens/joblens/internal/models"
	"github.com/joblens/joblens/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ConfigRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.UserConfig, error)
	ListAll(ctx context.Context) ([]models.UserConfig, error)
	Upsert(ctx context.Context, cfg *models.UserConfig) error
}

type configRepo struct {
	db *gorm.DB
}

func NewConfigRepo(db *gorm.DB) ConfigRepository {
	return &configRepo{db: db}
}

func (r *configRepo) GetByUserID(ctx context.Context, userID string) (*models.UserConfig, error) {
	var cfg models.UserConfig
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &cfg, err
}

func (r *configRepo) ListAll(ctx context.Context) ([]models.UserConfig, error) {
	var rows []models.UserConfig
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *configRepo) Upsert(ctx context.Context, cfg *models.UserConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"searches", "skill_categories", "updated_at"}),
		}).
		Create(cfg).Error
}
