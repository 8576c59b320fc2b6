package services

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/localfiles"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// RegionInput uses pointers because every field must be present on create
// and update; zero is a legitimate coordinate at the photo origin.
type RegionInput struct {
	RegionName *string `json:"region_name"`
	X          *int    `json:"x"`
	Y          *int    `json:"y"`
	Width      *int    `json:"width"`
	Height     *int    `json:"height"`
}

// LayoutView bundles a photo layout with its regions and per-region counts.
type LayoutView struct {
	Layout    *types.PhotoLayout      `json:"layout"`
	Regions   []*types.LayoutRegion   `json:"regions"`
	Occupancy []repos.RegionOccupancy `json:"occupancy"`
}

type LayoutService interface {
	UploadPhoto(ctx context.Context, tempKey, section, originalName string, photo io.Reader) (int64, string, error)
	View(ctx context.Context, tempKey, section string) (*LayoutView, error)

	Regions(ctx context.Context, layoutID int64) ([]*types.LayoutRegion, error)
	CreateRegion(ctx context.Context, layoutID int64, in RegionInput) (int64, error)
	UpdateRegion(ctx context.Context, regionID int64, in RegionInput) error
	DeleteRegion(ctx context.Context, regionID int64) error
	RegionItems(ctx context.Context, regionID int64) ([]*types.Drug, error)
	AssignToRegion(ctx context.Context, regionID int64, drugID *int64) error
}

type layoutService struct {
	log         *logger.Logger
	files       localfiles.Store
	layoutRepo  repos.PhotoLayoutRepo
	regionRepo  repos.LayoutRegionRepo
	assignments repos.RegionAssignmentRepo
}

func NewLayoutService(
	baseLog *logger.Logger,
	files localfiles.Store,
	layoutRepo repos.PhotoLayoutRepo,
	regionRepo repos.LayoutRegionRepo,
	assignments repos.RegionAssignmentRepo,
) LayoutService {
	return &layoutService{
		log:         baseLog.With("service", "LayoutService"),
		files:       files,
		layoutRepo:  layoutRepo,
		regionRepo:  regionRepo,
		assignments: assignments,
	}
}

// UploadPhoto stores a fridge photo and upserts the layout for its slot, so
// one temp/section pair always points at the latest photo while keeping its
// layout id and regions.
func (s *layoutService) UploadPhoto(ctx context.Context, tempKey, section, originalName string, photo io.Reader) (int64, string, error) {
	if tempKey == "" || section == "" {
		return 0, "", apperr.BadRequest("Temperature and section are required")
	}
	if originalName == "" {
		return 0, "", apperr.BadRequest("No file selected")
	}
	if !allowedPhotoExts[localfiles.Ext(originalName)] {
		return 0, "", apperr.BadRequest("Invalid file type. Use JPG, PNG, or GIF")
	}

	filename, err := s.files.SaveLayoutPhoto(tempKey, section, originalName, photo)
	if err != nil {
		s.log.Error("store layout photo failed", "error", err)
		return 0, "", fmt.Errorf("store layout photo: %w", err)
	}
	layoutID, err := s.layoutRepo.UpsertBySlot(dbctx.Context{Ctx: ctx}, tempKey, section, filename)
	if err != nil {
		s.log.Error("upsert layout failed", "temp_key", tempKey, "section", section, "error", err)
		return 0, "", fmt.Errorf("upsert layout: %w", err)
	}
	s.log.Info("layout photo uploaded", "layout_id", layoutID, "filename", filename)
	return layoutID, filename, nil
}

func (s *layoutService) View(ctx context.Context, tempKey, section string) (*LayoutView, error) {
	layout, err := s.layoutRepo.GetBySlot(dbctx.Context{Ctx: ctx}, tempKey, section)
	if err != nil {
		return nil, fmt.Errorf("get layout: %w", err)
	}
	if layout == nil {
		return nil, apperr.NotFound("Layout not found")
	}

	view := &LayoutView{Layout: layout}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.regionRepo.GetByLayoutID(dbctx.Context{Ctx: gctx}, layout.ID)
		if err != nil {
			return fmt.Errorf("get regions: %w", err)
		}
		view.Regions = rows
		return nil
	})
	g.Go(func() error {
		occ, err := s.assignments.OccupancyByLayout(dbctx.Context{Ctx: gctx}, layout.ID)
		if err != nil {
			return fmt.Errorf("get occupancy: %w", err)
		}
		view.Occupancy = occ
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func (s *layoutService) Regions(ctx context.Context, layoutID int64) ([]*types.LayoutRegion, error) {
	return s.regionRepo.GetByLayoutID(dbctx.Context{Ctx: ctx}, layoutID)
}

func (s *layoutService) CreateRegion(ctx context.Context, layoutID int64, in RegionInput) (int64, error) {
	if err := validateRegion(in); err != nil {
		return 0, err
	}
	row, err := s.regionRepo.Create(dbctx.Context{Ctx: ctx}, &types.LayoutRegion{
		LayoutID:   layoutID,
		RegionName: *in.RegionName,
		X:          *in.X,
		Y:          *in.Y,
		Width:      *in.Width,
		Height:     *in.Height,
	})
	if err != nil {
		s.log.Error("create region failed", "layout_id", layoutID, "error", err)
		return 0, fmt.Errorf("create region: %w", err)
	}
	return row.ID, nil
}

func (s *layoutService) UpdateRegion(ctx context.Context, regionID int64, in RegionInput) error {
	if err := validateRegion(in); err != nil {
		return err
	}
	if err := s.regionRepo.Update(dbctx.Context{Ctx: ctx}, regionID, *in.RegionName, *in.X, *in.Y, *in.Width, *in.Height); err != nil {
		s.log.Error("update region failed", "region_id", regionID, "error", err)
		return fmt.Errorf("update region: %w", err)
	}
	return nil
}

func (s *layoutService) DeleteRegion(ctx context.Context, regionID int64) error {
	if err := s.regionRepo.Delete(dbctx.Context{Ctx: ctx}, regionID); err != nil {
		s.log.Error("delete region failed", "region_id", regionID, "error", err)
		return fmt.Errorf("delete region: %w", err)
	}
	return nil
}

func (s *layoutService) RegionItems(ctx context.Context, regionID int64) ([]*types.Drug, error) {
	return s.assignments.ItemsInRegion(dbctx.Context{Ctx: ctx}, regionID)
}

func (s *layoutService) AssignToRegion(ctx context.Context, regionID int64, drugID *int64) error {
	if drugID == nil || *drugID == 0 {
		return apperr.BadRequest("drug_id is required")
	}
	if err := s.assignments.Assign(dbctx.Context{Ctx: ctx}, regionID, *drugID); err != nil {
		s.log.Error("assign to region failed", "region_id", regionID, "drug_id", *drugID, "error", err)
		return fmt.Errorf("assign to region: %w", err)
	}
	return nil
}

func validateRegion(in RegionInput) error {
	if in.RegionName == nil || in.X == nil || in.Y == nil || in.Width == nil || in.Height == nil {
		return apperr.BadRequest("Missing required fields")
	}
	return nil
}
