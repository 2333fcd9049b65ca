package postgres

import (
	"context"

	"github.com/joblens/joblens/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostingRepository interface {
	ListAll(ctx context.Context) ([]models.Posting, error)
	ExistingIDs(ctx context.Context) (map[string]struct{}, error)
	UpsertBatch(ctx context.Context, ps []models.Posting) error
	DistinctCompanyNames(ctx context.Context) ([]string, error)
}

type postingRepo struct {
	db *gorm.DB
}

func NewPostingRepo(db *gorm.DB) PostingRepository {
	return &postingRepo{db: db}
}

func (r *postingRepo) ListAll(ctx context.Context) ([]models.Posting, error) {
	var rows []models.Posting
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *postingRepo) ExistingIDs(ctx context.Context) (map[string]struct{}, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.Posting{}).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

func (r *postingRepo) UpsertBatch(ctx context.Context, ps []models.Posting) error {
	if len(ps) == 0 {
		return nil
	}
	// Postings are append-mostly: an existing row is left untouched.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}},
			DoNothing: true,
		}).
		CreateInBatches(ps, 200).Error
}

func (r *postingRepo) DistinctCompanyNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Posting{}).
		Where("company_name <> ''").
		Distinct().
		Pluck("company_name", &names).Error
	return names, err
}
