package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/joblens/joblens/internal/models"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
	"github.com/joblens/joblens/internal/utils"
)

// ConfigService manages per-user extraction configs. Skill categories
// arrive as loose JSON from the UI and are validated into the typed
// {category: [{skill, aliases}]} shape here, at the save boundary.
type ConfigService interface {
	Get(ctx context.Context, userID string) (*models.UserConfig, error)
	Save(ctx context.Context, userID string, searches []models.SearchSpec, skillCategories map[string][]models.SkillAlias) (*models.UserConfig, error)
}

type configService struct {
	configs pgrepo.ConfigRepository
}

func NewConfigService(configs pgrepo.ConfigRepository) ConfigService {
	return &configService{configs: configs}
}

func (s *configService) Get(ctx context.Context, userID string) (*models.UserConfig, error) {
	const op = "ConfigService.Get"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	cfg, err := s.configs.GetByUserID(ctx, userID)
	if err != nil {
		if err == utils.ErrNotFound {
			return nil, utils.E(utils.CodeNotFound, op, "config not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get config", err)
	}
	return cfg, nil
}

func (s *configService) Save(ctx context.Context, userID string, searches []models.SearchSpec, skillCategories map[string][]models.SkillAlias) (*models.UserConfig, error) {
	const op = "ConfigService.Save"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if len(searches) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "at least one search is required", nil)
	}
	for _, sp := range searches {
		if strings.TrimSpace(sp.Query) == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "search query must not be empty", nil)
		}
	}
	for category, skills := range skillCategories {
		if strings.TrimSpace(category) == "" {
			return nil, utils.E(utils.CodeInvalidArgument, op, "skill category name must not be empty", nil)
		}
		for _, sk := range skills {
			if strings.TrimSpace(sk.Skill) == "" {
				return nil, utils.E(utils.CodeInvalidArgument, op, "skill name must not be empty in category "+category, nil)
			}
		}
	}

	searchesJSON, err := json.Marshal(searches)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode searches", err)
	}
	skillsJSON, err := json.Marshal(skillCategories)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode skill categories", err)
	}

	cfg := &models.UserConfig{
		UserID:          userID,
		Searches:        datatypes.JSON(searchesJSON),
		SkillCategories: datatypes.JSON(skillsJSON),
		UpdatedAt:       time.Now().UTC(),
	}
	if err := s.configs.Upsert(ctx, cfg); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save config", err)
	}
	return cfg, nil
}
