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

type PrimaryAntibodyInput struct {
	Name          string `json:"name"`
	Host          string `json:"host"`
	Clonality     string `json:"clonality"`
	Reactivity    string `json:"reactivity"`
	Applications  string `json:"applications"`
	Dilution      string `json:"dilution"`
	StorageTemp   string `json:"storage_temp"`
	Supplier      string `json:"supplier"`
	LotNumber     string `json:"lot_number"`
	ProductNumber string `json:"product_number"`
	Notes         string `json:"notes"`
}

type SecondaryAntibodyInput struct {
	Name          string `json:"name"`
	Host          string `json:"host"`
	TargetSpecies string `json:"target_species"`
	Conjugate     string `json:"conjugate"`
	Applications  string `json:"applications"`
	Dilution      string `json:"dilution"`
	StorageTemp   string `json:"storage_temp"`
	Supplier      string `json:"supplier"`
	LotNumber     string `json:"lot_number"`
	ProductNumber string `json:"product_number"`
	Notes         string `json:"notes"`
}

type AntibodyService interface {
	ListPrimaries(ctx context.Context) ([]*types.PrimaryAntibody, error)
	GetPrimary(ctx context.Context, id int64) (*types.PrimaryAntibody, error)
	CreatePrimary(ctx context.Context, in PrimaryAntibodyInput) (int64, error)
	UpdatePrimary(ctx context.Context, id int64, in PrimaryAntibodyInput) error
	DeletePrimary(ctx context.Context, id int64) error

	ListSecondaries(ctx context.Context) ([]*types.SecondaryAntibody, error)
	GetSecondary(ctx context.Context, id int64) (*types.SecondaryAntibody, error)
	CreateSecondary(ctx context.Context, in SecondaryAntibodyInput) (int64, error)
	UpdateSecondary(ctx context.Context, id int64, in SecondaryAntibodyInput) error
	DeleteSecondary(ctx context.Context, id int64) error

	MatchingSecondaries(ctx context.Context, primaryID int64) ([]*types.SecondaryAntibody, error)
}

type antibodyService struct {
	log           *logger.Logger
	primaryRepo   repos.PrimaryAntibodyRepo
	secondaryRepo repos.SecondaryAntibodyRepo
}

func NewAntibodyService(
	baseLog *logger.Logger,
	primaryRepo repos.PrimaryAntibodyRepo,
	secondaryRepo repos.SecondaryAntibodyRepo,
) AntibodyService {
	return &antibodyService{
		log:           baseLog.With("service", "AntibodyService"),
		primaryRepo:   primaryRepo,
		secondaryRepo: secondaryRepo,
	}
}

func (s *antibodyService) ListPrimaries(ctx context.Context) ([]*types.PrimaryAntibody, error) {
	return s.primaryRepo.GetAll(dbctx.Context{Ctx: ctx})
}

func (s *antibodyService) GetPrimary(ctx context.Context, id int64) (*types.PrimaryAntibody, error) {
	row, err := s.primaryRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("get primary antibody: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("Antibody not found")
	}
	return row, nil
}

func (s *antibodyService) CreatePrimary(ctx context.Context, in PrimaryAntibodyInput) (int64, error) {
	if in.Name == "" {
		return 0, apperr.BadRequest("Antibody name is required")
	}
	row, err := s.primaryRepo.Create(dbctx.Context{Ctx: ctx}, primaryFromInput(in))
	if err != nil {
		s.log.Error("create primary antibody failed", "name", in.Name, "error", err)
		return 0, fmt.Errorf("create primary antibody: %w", err)
	}
	s.log.Info("primary antibody created", "id", row.ID, "name", row.Name)
	return row.ID, nil
}

// UpdatePrimary writes every field of the primary. A missing id updates
// nothing and still reports success.
func (s *antibodyService) UpdatePrimary(ctx context.Context, id int64, in PrimaryAntibodyInput) error {
	if in.Name == "" {
		return apperr.BadRequest("Antibody name is required")
	}
	row := primaryFromInput(in)
	row.ID = id
	if err := s.primaryRepo.Update(dbctx.Context{Ctx: ctx}, row); err != nil {
		s.log.Error("update primary antibody failed", "id", id, "error", err)
		return fmt.Errorf("update primary antibody: %w", err)
	}
	return nil
}

func (s *antibodyService) DeletePrimary(ctx context.Context, id int64) error {
	if err := s.primaryRepo.Delete(dbctx.Context{Ctx: ctx}, id); err != nil {
		s.log.Error("delete primary antibody failed", "id", id, "error", err)
		return fmt.Errorf("delete primary antibody: %w", err)
	}
	return nil
}

func (s *antibodyService) ListSecondaries(ctx context.Context) ([]*types.SecondaryAntibody, error) {
	return s.secondaryRepo.GetAll(dbctx.Context{Ctx: ctx})
}

func (s *antibodyService) GetSecondary(ctx context.Context, id int64) (*types.SecondaryAntibody, error) {
	row, err := s.secondaryRepo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, fmt.Errorf("get secondary antibody: %w", err)
	}
	if row == nil {
		return nil, apperr.NotFound("Antibody not found")
	}
	return row, nil
}

func (s *antibodyService) CreateSecondary(ctx context.Context, in SecondaryAntibodyInput) (int64, error) {
	if in.Name == "" {
		return 0, apperr.BadRequest("Antibody name is required")
	}
	row, err := s.secondaryRepo.Create(dbctx.Context{Ctx: ctx}, secondaryFromInput(in))
	if err != nil {
		s.log.Error("create secondary antibody failed", "name", in.Name, "error", err)
		return 0, fmt.Errorf("create secondary antibody: %w", err)
	}
	s.log.Info("secondary antibody created", "id", row.ID, "name", row.Name)
	return row.ID, nil
}

func (s *antibodyService) UpdateSecondary(ctx context.Context, id int64, in SecondaryAntibodyInput) error {
	if in.Name == "" {
		return apperr.BadRequest("Antibody name is required")
	}
	row := secondaryFromInput(in)
	row.ID = id
	if err := s.secondaryRepo.Update(dbctx.Context{Ctx: ctx}, row); err != nil {
		s.log.Error("update secondary antibody failed", "id", id, "error", err)
		return fmt.Errorf("update secondary antibody: %w", err)
	}
	return nil
}

func (s *antibodyService) DeleteSecondary(ctx context.Context, id int64) error {
	if err := s.secondaryRepo.Delete(dbctx.Context{Ctx: ctx}, id); err != nil {
		s.log.Error("delete secondary antibody failed", "id", id, "error", err)
		return fmt.Errorf("delete secondary antibody: %w", err)
	}
	return nil
}

// MatchingSecondaries lists secondaries raised against the primary's host
// species, matched case-insensitively.
func (s *antibodyService) MatchingSecondaries(ctx context.Context, primaryID int64) ([]*types.SecondaryAntibody, error) {
	primary, err := s.primaryRepo.GetByID(dbctx.Context{Ctx: ctx}, primaryID)
	if err != nil {
		return nil, fmt.Errorf("get primary antibody: %w", err)
	}
	if primary == nil {
		return nil, apperr.NotFound("Antibody not found")
	}
	return s.secondaryRepo.GetByTargetSpecies(dbctx.Context{Ctx: ctx}, primary.Host)
}

func primaryFromInput(in PrimaryAntibodyInput) *types.PrimaryAntibody {
	return &types.PrimaryAntibody{
		Name:          in.Name,
		Host:          in.Host,
		Clonality:     in.Clonality,
		Reactivity:    in.Reactivity,
		Applications:  in.Applications,
		Dilution:      in.Dilution,
		StorageTemp:   in.StorageTemp,
		Supplier:      in.Supplier,
		LotNumber:     in.LotNumber,
		ProductNumber: in.ProductNumber,
		Notes:         in.Notes,
	}
}

func secondaryFromInput(in SecondaryAntibodyInput) *types.SecondaryAntibody {
	return &types.SecondaryAntibody{
		Name:          in.Name,
		Host:          in.Host,
		TargetSpecies: in.TargetSpecies,
		Conjugate:     in.Conjugate,
		Applications:  in.Applications,
		Dilution:      in.Dilution,
		StorageTemp:   in.StorageTemp,
		Supplier:      in.Supplier,
		LotNumber:     in.LotNumber,
		ProductNumber: in.ProductNumber,
		Notes:         in.Notes,
	}
}
