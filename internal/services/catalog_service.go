package services

import (
	"context"
	"time"

	"github.com/joblens/joblens/internal/cache"
	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/models"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
	"github.com/joblens/joblens/internal/utils"
)

const (
	catalogCacheKey = "catalog:postings"
	catalogCacheTTL = 10 * time.Minute
)

// CatalogService serves the prepared posting table and everything the
// dashboard pages derive from it.
type CatalogService interface {
	Load(ctx context.Context) ([]models.Posting, error)
	Options(ctx context.Context) (catalog.Options, error)
	Filtered(ctx context.Context, f catalog.Filter) ([]models.Posting, error)
	Breakdown(ctx context.Context, f catalog.Filter) (*BreakdownBundle, error)
	Skills(ctx context.Context, f catalog.Filter) (*SkillsBundle, error)
	Invalidate(ctx context.Context) error
}

// BreakdownBundle is the Job Offer Breakdown page payload.
type BreakdownBundle struct {
	Total             int             `json:"total"`
	TopTitles         []catalog.Count `json:"top_titles"`
	Seniorities       []catalog.Count `json:"seniorities"`
	ScheduleTypes     []catalog.Count `json:"schedule_types"`
	Consulting        []catalog.Count `json:"consulting"`
	CompanyCategories []catalog.Count `json:"company_categories"`
	SalaryMentioned   []catalog.Count `json:"salary_mentioned"`
	TopCompanies      []catalog.Count `json:"top_companies"`
	TopActivities     []catalog.Count `json:"top_activities"`
}

// SkillsBundle is the Market Skills Summary page payload.
type SkillsBundle struct {
	Total          int             `json:"total"`
	BITools        []catalog.Count `json:"bi_tools"`
	Languages      []catalog.Count `json:"languages"`
	CloudPlatforms []catalog.Count `json:"cloud_platforms"`
}

type catalogService struct {
	postings pgrepo.PostingRepository
	cache    cache.Cache

	// Set when postings come from a flat file export instead of the
	// postings table.
	filePath string
}

func NewCatalogService(postings pgrepo.PostingRepository, c cache.Cache, filePath string) CatalogService {
	return &catalogService{postings: postings, cache: c, filePath: filePath}
}

func (s *catalogService) Load(ctx context.Context) ([]models.Posting, error) {
	const op = "CatalogService.Load"

	var cached []models.Posting
	if hit, err := s.cache.GetJSON(ctx, catalogCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	var (
		rows []models.Posting
		err  error
	)
	if s.filePath != "" {
		rows, err = catalog.LoadCSV(s.filePath)
	} else {
		rows, err = s.postings.ListAll(ctx)
		rows = catalog.PrepareAll(rows)
	}
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to load postings", err)
	}

	_ = s.cache.SetJSON(ctx, catalogCacheKey, rows, catalogCacheTTL)
	return rows, nil
}

func (s *catalogService) Options(ctx context.Context) (catalog.Options, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return catalog.Options{}, err
	}
	return catalog.CollectOptions(rows), nil
}

func (s *catalogService) Filtered(ctx context.Context, f catalog.Filter) ([]models.Posting, error) {
	rows, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Apply(rows, f), nil
}

func (s *catalogService) Breakdown(ctx context.Context, f catalog.Filter) (*BreakdownBundle, error) {
	rows, err := s.Filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return &BreakdownBundle{
		Total:             len(rows),
		TopTitles:         catalog.TopKeywords(rows, func(p models.Posting) []string { return p.WorkTitles }, 15),
		Seniorities:       catalog.SeniorityDistribution(rows),
		ScheduleTypes:     catalog.ValueCounts(rows, func(p models.Posting) *string { return p.ScheduleType }, 15),
		Consulting:        catalog.ConsultingDistribution(rows),
		CompanyCategories: catalog.ValueCounts(rows, func(p models.Posting) *string { return p.CompanyCategory }, 15),
		SalaryMentioned:   catalog.SalaryTransparency(rows),
		TopCompanies:      catalog.ValueCounts(rows, func(p models.Posting) *string { s := p.CompanyName; return &s }, 15),
		TopActivities:     catalog.ValueCounts(rows, func(p models.Posting) *string { return p.ActivitySectionDetails }, 15),
	}, nil
}

func (s *catalogService) Skills(ctx context.Context, f catalog.Filter) (*SkillsBundle, error) {
	rows, err := s.Filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return &SkillsBundle{
		Total:          len(rows),
		BITools:        catalog.TopKeywords(rows, func(p models.Posting) []string { return p.BITools }, 10),
		Languages:      catalog.TopKeywords(rows, func(p models.Posting) []string { return p.Languages }, 10),
		CloudPlatforms: catalog.TopKeywords(rows, func(p models.Posting) []string { return p.CloudPlatforms }, 10),
	}, nil
}

func (s *catalogService) Invalidate(ctx context.Context) error {
	return s.cache.Del(ctx, catalogCacheKey)
}
