package postgres

import (
	"context"
	"errors"

	"github.com/joblens/joblens/internal/models"
	"github.com/joblens/joblens/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PresetRepository interface {
	List(ctx context.Context, kind, userID string) ([]models.Preset, error)
	Get(ctx context.Context, kind, userID, name string) (*models.Preset, error)
	Upsert(ctx context.Context, kind string, p *models.Preset) error
	Delete(ctx context.Context, kind, userID, name string) error
}

type presetRepo struct {
	db *gorm.DB
}

func NewPresetRepo(db *gorm.DB) PresetRepository {
	return &presetRepo{db: db}
}

// model picks the table for a preset kind; filter presets and search
// (profile) presets share a schema but live apart.
func (r *presetRepo) model(kind string) (any, error) {
	switch kind {
	case models.PresetKindFilter:
		return &models.FilterPreset{}, nil
	case models.PresetKindSearch:
		return &models.SearchPreset{}, nil
	default:
		return nil, utils.E(utils.CodeInvalidArgument, "PresetRepo", "unknown preset kind: "+kind, nil)
	}
}

func (r *presetRepo) List(ctx context.Context, kind, userID string) ([]models.Preset, error) {
	m, err := r.model(kind)
	if err != nil {
		return nil, err
	}
	var rows []models.Preset
	err = r.db.WithContext(ctx).
		Model(m).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *presetRepo) Get(ctx context.Context, kind, userID, name string) (*models.Preset, error) {
	m, err := r.model(kind)
	if err != nil {
		return nil, err
	}
	var row models.Preset
	err = r.db.WithContext(ctx).
		Model(m).
		Where("user_id = ? AND name = ?", userID, name).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

func (r *presetRepo) Upsert(ctx context.Context, kind string, p *models.Preset) error {
	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}
	switch kind {
	case models.PresetKindFilter:
		row := models.FilterPreset{Preset: *p}
		return r.db.WithContext(ctx).Clauses(conflict).Create(&row).Error
	case models.PresetKindSearch:
		row := models.SearchPreset{Preset: *p}
		return r.db.WithContext(ctx).Clauses(conflict).Create(&row).Error
	default:
		return utils.E(utils.CodeInvalidArgument, "PresetRepo.Upsert", "unknown preset kind: "+kind, nil)
	}
}

func (r *presetRepo) Delete(ctx context.Context, kind, userID, name string) error {
	m, err := r.model(kind)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Delete(m).Error
}
