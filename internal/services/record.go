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

// RecordInput is the JSON body for creating or updating an inventory record.
// Nullable columns use pointers so that absent and null both map to NULL.
type RecordInput struct {
	DrugName           string   `json:"drug_name"`
	StockConcentration *float64 `json:"stock_concentration"`
	StockUnit          string   `json:"stock_unit"`
	StorageTemp        string   `json:"storage_temp"`
	Supplier           string   `json:"supplier"`
	PreparationDate    string   `json:"preparation_date"`
	Notes              string   `json:"notes"`
	Solvents           string   `json:"solvents"`
	Solubility         string   `json:"solubility"`
	LightSensitive     string   `json:"light_sensitive"`
	PreparationTime    string   `json:"preparation_time"`
	ExpirationTime     string   `json:"expiration_time"`
	Sterility          string   `json:"sterility"`
	LotNumber          string   `json:"lot_number"`
	ProductNumber      string   `json:"product_number"`
	StorageSection     *string  `json:"storage_section"`
	StorageRow         *int     `json:"storage_row"`
	StorageColumn      *int     `json:"storage_column"`
}

type RecordService interface {
	List(ctx context.Context, search, temperature string) ([]*types.Drug, error)
	Get(ctx context.Context, id int64) (*types.Drug, error)
	Create(ctx context.Context, in RecordInput) (int64, error)
	Update(ctx context.Context, id int64, in RecordInput) error
	Delete(ctx context.Context, id int64) error
}

type recordService struct {
	log      *logger.Logger
	drugRepo repos.DrugRepo
}

func NewRecordService(baseLog *logger.Logger, drugRepo repos.DrugRepo) RecordService {
	return &recordService{
		log:      baseLog.With("service", "RecordService"),
		drugRepo: drugRepo,
	}
}

func (s *recordService) List(ctx context.Context, search, temperature string) ([]*types.Drug, error) {
	dbc := dbctx.Context{Ctx: ctx}
	if search != "" {
		return s.drugRepo.Search(dbc, search, temperature)
	}
	if temperature != "" {
		return s.drugRepo.ListByTemp(dbc, temperature)
	}
	return s.drugRepo.List(dbc)
}

func (s *recordService) Get(ctx context.Context, id int64) (*types.Drug, error) {
	row, err := s.drugRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("Record not found")
	}
	return row, nil
}

func (s *recordService) Create(ctx context.Context, in RecordInput) (int64, error) {
	if err := validateRecord(in); err != nil {
		return 0, err
	}
	row, err := s.drugRepo.Create(dbctx.Context{Ctx: ctx}, recordToDrug(in))
	if err != nil {
		s.log.Error("create record failed", "error", err)
		return 0, fmt.Errorf("create record: %w", err)
	}
	s.log.Info("record created", "id", row.ID, "drug_name", row.DrugName)
	return row.ID, nil
}

// Update mirrors the write path of Create. A missing id updates nothing and
// still reports success.
func (s *recordService) Update(ctx context.Context, id int64, in RecordInput) error {
	if err := validateRecord(in); err != nil {
		return err
	}
	row := recordToDrug(in)
	row.ID = id
	if err := s.drugRepo.Update(dbctx.Context{Ctx: ctx}, row); err != nil {
		s.log.Error("update record failed", "id", id, "error", err)
		return fmt.Errorf("update record: %w", err)
	}
	return nil
}

func (s *recordService) Delete(ctx context.Context, id int64) error {
	if err := s.drugRepo.Delete(dbctx.Context{Ctx: ctx}, id); err != nil {
		s.log.Error("delete record failed", "id", id, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func validateRecord(in RecordInput) error {
	if in.DrugName == "" {
		return apperr.BadRequest("Drug name is required")
	}
	section := ""
	if in.StorageSection != nil {
		section = *in.StorageSection
	}
	if in.StorageTemp == types.TempUltraFreeze && section == types.SectionDoor {
		return apperr.BadRequest("-80C freezers do not have door storage")
	}
	return nil
}

func recordToDrug(in RecordInput) *types.Drug {
	return &types.Drug{
		DrugName:           in.DrugName,
		StockConcentration: in.StockConcentration,
		StockUnit:          in.StockUnit,
		StorageTemp:        in.StorageTemp,
		Supplier:           in.Supplier,
		PreparationDate:    in.PreparationDate,
		Notes:              in.Notes,
		Solvents:           in.Solvents,
		Solubility:         in.Solubility,
		LightSensitive:     in.LightSensitive,
		PreparationTime:    in.PreparationTime,
		ExpirationTime:     in.ExpirationTime,
		Sterility:          in.Sterility,
		LotNumber:          in.LotNumber,
		ProductNumber:      in.ProductNumber,
		StorageSection:     in.StorageSection,
		StorageRow:         in.StorageRow,
		StorageColumn:      in.StorageColumn,
	}
}
