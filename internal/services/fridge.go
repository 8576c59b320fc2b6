package services

import (
	"context"
	"fmt"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// GridView is the occupancy snapshot for one temperature: the grid shape
// plus a "<section>-<row>-<col>" → count map for every occupied cell.
type GridView struct {
	Config   *types.FridgeConfig `json:"config"`
	GridData map[string]int64    `json:"grid_data"`
}

// FridgeConfigInput uses pointers so absent dimensions fall back to the
// standard 3x3 body / 2x2 door grid.
type FridgeConfigInput struct {
	BodyRows    *int `json:"body_rows"`
	BodyColumns *int `json:"body_columns"`
	DoorRows    *int `json:"door_rows"`
	DoorColumns *int `json:"door_columns"`
}

type FridgeInput struct {
	Name     string `json:"name"`
	TempType string `json:"temp_type"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

type FridgeService interface {
	Grid(ctx context.Context, tempKey string) (*GridView, error)
	Configs(ctx context.Context) ([]*types.FridgeConfig, error)
	UpdateConfig(ctx context.Context, tempKey string, in FridgeConfigInput) error
	LocationItems(ctx context.Context, tempKey, section string, row, col int) ([]*types.Drug, error)

	ListFridges(ctx context.Context) ([]*types.Fridge, error)
	FridgesByTemp(ctx context.Context, tempType string) ([]*types.Fridge, error)
	GetFridge(ctx context.Context, id int64) (*types.Fridge, error)
	CreateFridge(ctx context.Context, in FridgeInput) (int64, error)
	UpdateFridge(ctx context.Context, id int64, in FridgeInput) error
	DeleteFridge(ctx context.Context, id int64) error
}

type fridgeService struct {
	log        *logger.Logger
	configRepo repos.FridgeConfigRepo
	fridgeRepo repos.FridgeRepo
	drugRepo   repos.DrugRepo
}

func NewFridgeService(baseLog *logger.Logger, configRepo repos.FridgeConfigRepo, fridgeRepo repos.FridgeRepo, drugRepo repos.DrugRepo) FridgeService {
	return &fridgeService{
		log:        baseLog.With("service", "FridgeService"),
		configRepo: configRepo,
		fridgeRepo: fridgeRepo,
		drugRepo:   drugRepo,
	}
}

func (s *fridgeService) Grid(ctx context.Context, tempKey string) (*GridView, error) {
	dbc := dbctx.Context{Ctx: ctx}
	cfg, err := s.configRepo.GetByKey(dbc, tempKey)
	if err != nil {
		return nil, fmt.Errorf("get fridge config: %w", err)
	}
	if cfg == nil {
		return nil, apperr.NotFound("Configuration not found")
	}

	counts, err := s.drugRepo.CellCounts(dbc, tempKey)
	if err != nil {
		return nil, fmt.Errorf("get grid occupancy: %w", err)
	}
	grid := make(map[string]int64, len(counts))
	for _, c := range counts {
		grid[fmt.Sprintf("%s-%d-%d", c.StorageSection, c.StorageRow, c.StorageColumn)] = c.Count
	}
	return &GridView{Config: cfg, GridData: grid}, nil
}

func (s *fridgeService) Configs(ctx context.Context) ([]*types.FridgeConfig, error) {
	return s.configRepo.GetAll(dbctx.Context{Ctx: ctx})
}

// UpdateConfig applies the standard defaults for absent dimensions and
// strips door storage from -80C freezers, which physically have none.
// Unknown temp keys update nothing and still report success.
func (s *fridgeService) UpdateConfig(ctx context.Context, tempKey string, in FridgeConfigInput) error {
	bodyRows := intOr(in.BodyRows, 3)
	bodyCols := intOr(in.BodyColumns, 3)
	doorRows := intOr(in.DoorRows, 2)
	doorCols := intOr(in.DoorColumns, 2)
	if tempKey == types.TempUltraFreeze {
		doorRows = 0
		doorCols = 0
	}

	if err := s.configRepo.UpdateGrid(dbctx.Context{Ctx: ctx}, tempKey, bodyRows, bodyCols, doorRows, doorCols); err != nil {
		s.log.Error("update fridge config failed", "temp_key", tempKey, "error", err)
		return fmt.Errorf("update fridge config: %w", err)
	}
	s.log.Info("fridge config updated", "temp_key", tempKey,
		"body", fmt.Sprintf("%dx%d", bodyRows, bodyCols),
		"door", fmt.Sprintf("%dx%d", doorRows, doorCols))
	return nil
}

func (s *fridgeService) LocationItems(ctx context.Context, tempKey, section string, row, col int) ([]*types.Drug, error) {
	return s.drugRepo.GetByLocation(dbctx.Context{Ctx: ctx}, tempKey, section, row, col)
}

func (s *fridgeService) ListFridges(ctx context.Context) ([]*types.Fridge, error) {
	return s.fridgeRepo.GetAll(dbctx.Context{Ctx: ctx})
}

func (s *fridgeService) FridgesByTemp(ctx context.Context, tempType string) ([]*types.Fridge, error) {
	return s.fridgeRepo.GetByTempType(dbctx.Context{Ctx: ctx}, tempType)
}

func (s *fridgeService) GetFridge(ctx context.Context, id int64) (*types.Fridge, error) {
	row, err := s.fridgeRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("get fridge: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("Fridge not found")
	}
	return row, nil
}

func (s *fridgeService) CreateFridge(ctx context.Context, in FridgeInput) (int64, error) {
	if err := validateFridge(in); err != nil {
		return 0, err
	}
	row, err := s.fridgeRepo.Create(dbctx.Context{Ctx: ctx}, &types.Fridge{
		Name:     in.Name,
		TempType: in.TempType,
		Location: in.Location,
		Notes:    in.Notes,
	})
	if err != nil {
		s.log.Error("create fridge failed", "error", err)
		return 0, fmt.Errorf("create fridge: %w", err)
	}
	s.log.Info("fridge created", "id", row.ID, "name", row.Name)
	return row.ID, nil
}

func (s *fridgeService) UpdateFridge(ctx context.Context, id int64, in FridgeInput) error {
	if err := validateFridge(in); err != nil {
		return err
	}
	row := &types.Fridge{ID: id, Name: in.Name, TempType: in.TempType, Location: in.Location, Notes: in.Notes}
	if err := s.fridgeRepo.Update(dbctx.Context{Ctx: ctx}, row); err != nil {
		s.log.Error("update fridge failed", "id", id, "error", err)
		return fmt.Errorf("update fridge: %w", err)
	}
	return nil
}

func (s *fridgeService) DeleteFridge(ctx context.Context, id int64) error {
	if err := s.fridgeRepo.Delete(dbctx.Context{Ctx: ctx}, id); err != nil {
		s.log.Error("delete fridge failed", "id", id, "error", err)
		return fmt.Errorf("delete fridge: %w", err)
	}
	return nil
}

func validateFridge(in FridgeInput) error {
	if in.Name == "" {
		return apperr.BadRequest("Fridge name is required")
	}
	if in.TempType == "" {
		return apperr.BadRequest("Temperature type is required")
	}
	return nil
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
