package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/joblens/joblens/internal/catalog"
	"github.com/joblens/joblens/internal/models"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
	"github.com/joblens/joblens/internal/utils"
)

// Built-in presets served to every session: the hard-coded "active
// search" selections the dashboard shipped with before per-user
// presets existed. They are read-only and share no namespace with
// saved presets.
var (
	builtinFilter = catalog.Filter{
		Consulting:  "Internal position",
		Schedule:    "Full-time",
		Seniorities: []string{"Senior/Expert", models.NotSpecified},
		WorkTitles: []string{
			"BI/Decision Support Specialist", "Analytics Engineer",
			"Business/Functional Analyst", "Data Analyst",
		},
		CompanyCategories: []string{"Large Enterprise", "Intermediate-sized Enterprise"},
	}
	builtinProfile = models.Profile{
		MySkills:       []string{"python", "sql", "tableau", "excel", "looker", "gcp", "dbt"},
		TargetRoles:    []string{"Data Analyst", "Analytics Engineer"},
		AllJobInfo:     []string{"Senior/Expert", models.NotSpecified, "Internal position", "Full-time"},
		AllCompanyInfo: []string{"Large Enterprise", "Intermediate-sized Enterprise"},
		MinSalary:      55000,
	}
)

const BuiltinPresetName = "Active Search"

type PresetService interface {
	List(ctx context.Context, kind, userID string) ([]models.Preset, error)
	Get(ctx context.Context, kind, userID, name string) (*models.Preset, error)
	Save(ctx context.Context, kind, userID, name string, payload []byte) (*models.Preset, error)
	Delete(ctx context.Context, kind, userID, name string) error

	// Built-in defaults for anonymous sessions.
	BuiltinFilter() catalog.Filter
	BuiltinProfile() models.Profile
}

type presetService struct {
	presets pgrepo.PresetRepository
}

func NewPresetService(presets pgrepo.PresetRepository) PresetService {
	return &presetService{presets: presets}
}

func (s *presetService) List(ctx context.Context, kind, userID string) ([]models.Preset, error) {
	const op = "PresetService.List"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	rows, err := s.presets.List(ctx, kind, userID)
	if err != nil {
		if utils.IsCode(err, utils.CodeInvalidArgument) {
			return nil, err
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to list presets", err)
	}
	return rows, nil
}

func (s *presetService) Get(ctx context.Context, kind, userID, name string) (*models.Preset, error) {
	const op = "PresetService.Get"

	p, err := s.presets.Get(ctx, kind, userID, name)
	if err != nil {
		if utils.IsCode(err, utils.CodeInvalidArgument) {
			return nil, err
		}
		if err == utils.ErrNotFound {
			return nil, utils.E(utils.CodeNotFound, op, "preset not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get preset", err)
	}
	return p, nil
}

func (s *presetService) Save(ctx context.Context, kind, userID, name string, payload []byte) (*models.Preset, error) {
	const op = "PresetService.Save"

	if userID == "" || name == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and name are required", nil)
	}
	if name == BuiltinPresetName {
		return nil, utils.E(utils.CodeConflict, op, "preset name is reserved", nil)
	}
	if !json.Valid(payload) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "payload is not valid JSON", nil)
	}

	// The payload must decode as the selection type of its kind, so a
	// saved preset can always be resolved later.
	switch kind {
	case models.PresetKindFilter:
		var f catalog.Filter
		if err := json.Unmarshal(payload, &f); err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "payload is not a filter selection", err)
		}
	case models.PresetKindSearch:
		var p models.Profile
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, utils.E(utils.CodeInvalidArgument, op, "payload is not a profile selection", err)
		}
	}

	row := &models.Preset{
		UserID:    userID,
		Name:      name,
		Payload:   datatypes.JSON(payload),
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.presets.Upsert(ctx, kind, row); err != nil {
		if utils.IsCode(err, utils.CodeInvalidArgument) {
			return nil, err
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to save preset", err)
	}
	return row, nil
}

func (s *presetService) Delete(ctx context.Context, kind, userID, name string) error {
	const op = "PresetService.Delete"

	if userID == "" || name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and name are required", nil)
	}
	if err := s.presets.Delete(ctx, kind, userID, name); err != nil {
		if utils.IsCode(err, utils.CodeInvalidArgument) {
			return err
		}
		return utils.E(utils.CodeInternal, op, "failed to delete preset", err)
	}
	return nil
}

func (s *presetService) BuiltinFilter() catalog.Filter  { return builtinFilter }
func (s *presetService) BuiltinProfile() models.Profile { return builtinProfile }
