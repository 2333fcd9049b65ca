package postgres

import (
	"context"

	"github.com/joblens/joblens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyRepository interface {
	ExistingNames(ctx context.Context) (map[string]struct{}, error)
	Upsert(ctx context.Context, rec *models.CompanyRecord) error
}

type companyRepo struct {
	db *gorm.DB
}

func NewCompanyRepo(db *gorm.DB) CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) ExistingNames(ctx context.Context) (map[string]struct{}, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.CompanyRecord{}).
		Pluck("company_name", &names).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(names))
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out, nil
}

func (r *companyRepo) Upsert(ctx context.Context, rec *models.CompanyRecord) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_name"}},
			DoUpdates: clause.AssignmentColumns([]string{"company_info"}),
		}).
		Create(rec).Error
}
