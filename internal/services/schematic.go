package services

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/localfiles"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

const defaultZoneColor = "#e3f2fd"

type SchematicCreateInput struct {
	TempKey    string `json:"temp_key"`
	Section    string `json:"section"`
	LayoutName string `json:"layout_name"`
	FridgeID   *int64 `json:"fridge_id"`
}

// SchematicZoneInput describes one zone in a replace-all request. Row and
// column indexes are pointers so index zero still counts as provided.
type SchematicZoneInput struct {
	ZoneName string  `json:"zone_name"`
	RowIndex *int    `json:"row_index"`
	ColIndex *int    `json:"col_index"`
	ColSpan  *int    `json:"col_span"`
	RowSpan  *int    `json:"row_span"`
	Color    *string `json:"color"`
}

// SchematicView is the full drawn-layout payload for one slot. Zones and
// Occupancy stay non-nil so an absent layout renders as empty lists.
type SchematicView struct {
	Layout    *types.SchematicLayout `json:"layout"`
	Zones     []*types.SchematicZone `json:"zones"`
	Occupancy []repos.ZoneOccupancy  `json:"occupancy"`
}

type SchematicService interface {
	View(ctx context.Context, tempKey, section string) (*SchematicView, error)
	ViewByFridge(ctx context.Context, fridgeID int64, section string) (*SchematicView, error)
	Create(ctx context.Context, in SchematicCreateInput) (int64, error)
	ReplaceZones(ctx context.Context, layoutID int64, zones []SchematicZoneInput) error
	UploadReference(ctx context.Context, rawLayoutID, originalName string, photo io.Reader) (string, error)
	ZoneItems(ctx context.Context, zoneID int64) ([]*types.Drug, error)
	AssignToZone(ctx context.Context, zoneID int64, drugID *int64) error
}

type schematicService struct {
	db          *gorm.DB
	log         *logger.Logger
	files       localfiles.Store
	layoutRepo  repos.SchematicLayoutRepo
	zoneRepo    repos.SchematicZoneRepo
	assignments repos.ZoneAssignmentRepo
}

func NewSchematicService(
	db *gorm.DB,
	baseLog *logger.Logger,
	files localfiles.Store,
	layoutRepo repos.SchematicLayoutRepo,
	zoneRepo repos.SchematicZoneRepo,
	assignments repos.ZoneAssignmentRepo,
) SchematicService {
	return &schematicService{
		db:          db,
		log:         baseLog.With("service", "SchematicService"),
		files:       files,
		layoutRepo:  layoutRepo,
		zoneRepo:    zoneRepo,
		assignments: assignments,
	}
}

func (s *schematicService) View(ctx context.Context, tempKey, section string) (*SchematicView, error) {
	layout, err := s.layoutRepo.GetBySlot(dbctx.Context{Ctx: ctx}, tempKey, section)
	if err != nil {
		return nil, fmt.Errorf("get schematic: %w", err)
	}
	return s.buildView(ctx, layout)
}

func (s *schematicService) ViewByFridge(ctx context.Context, fridgeID int64, section string) (*SchematicView, error) {
	layout, err := s.layoutRepo.GetByFridge(dbctx.Context{Ctx: ctx}, fridgeID, section)
	if err != nil {
		return nil, fmt.Errorf("get schematic: %w", err)
	}
	return s.buildView(ctx, layout)
}

// buildView loads zones and occupancy for a layout. A nil layout is not an
// error: the slot simply has no schematic yet and the view comes back empty.
func (s *schematicService) buildView(ctx context.Context, layout *types.SchematicLayout) (*SchematicView, error) {
	view := &SchematicView{
		Zones:     []*types.SchematicZone{},
		Occupancy: []repos.ZoneOccupancy{},
	}
	if layout == nil {
		return view, nil
	}
	view.Layout = layout

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.zoneRepo.GetByLayoutID(dbctx.Context{Ctx: gctx}, layout.ID)
		if err != nil {
			return fmt.Errorf("get zones: %w", err)
		}
		view.Zones = rows
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

func (s *schematicService) Create(ctx context.Context, in SchematicCreateInput) (int64, error) {
	if in.TempKey == "" || in.Section == "" {
		return 0, apperr.BadRequest("temp_key and section are required")
	}
	row, err := s.layoutRepo.Create(dbctx.Context{Ctx: ctx}, &types.SchematicLayout{
		TempKey:    in.TempKey,
		Section:    in.Section,
		LayoutName: in.LayoutName,
		FridgeID:   in.FridgeID,
	})
	if err != nil {
		s.log.Error("create schematic failed", "temp_key", in.TempKey, "section", in.Section, "error", err)
		return 0, fmt.Errorf("create schematic: %w", err)
	}
	s.log.Info("schematic created", "layout_id", row.ID, "temp_key", in.TempKey, "section", in.Section)
	return row.ID, nil
}

// ReplaceZones swaps the whole zone set of a layout in one transaction, so a
// failed save never leaves the grid half cleared.
func (s *schematicService) ReplaceZones(ctx context.Context, layoutID int64, zones []SchematicZoneInput) error {
	rows := make([]*types.SchematicZone, 0, len(zones))
	for _, z := range zones {
		if z.ZoneName == "" || z.RowIndex == nil || z.ColIndex == nil {
			return apperr.BadRequest("Each zone requires zone_name, row_index and col_index")
		}
		rows = append(rows, &types.SchematicZone{
			ZoneName: z.ZoneName,
			RowIndex: *z.RowIndex,
			ColIndex: *z.ColIndex,
			ColSpan:  intOr(z.ColSpan, 1),
			RowSpan:  intOr(z.RowSpan, 1),
			Color:    stringOr(z.Color, defaultZoneColor),
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.zoneRepo.ReplaceForLayout(dbctx.Context{Ctx: ctx, Tx: tx}, layoutID, rows)
	})
	if err != nil {
		s.log.Error("replace zones failed", "layout_id", layoutID, "error", err)
		return fmt.Errorf("replace zones: %w", err)
	}
	s.log.Info("zones replaced", "layout_id", layoutID, "count", len(rows))
	return nil
}

// UploadReference attaches a reference photo to an existing schematic.
// Pointing at an id that no longer exists updates nothing and still
// reports success.
func (s *schematicService) UploadReference(ctx context.Context, rawLayoutID, originalName string, photo io.Reader) (string, error) {
	if rawLayoutID == "" {
		return "", apperr.BadRequest("layout_id is required")
	}
	layoutID, err := strconv.ParseInt(rawLayoutID, 10, 64)
	if err != nil {
		return "", apperr.BadRequest("layout_id is required")
	}
	if originalName == "" {
		return "", apperr.BadRequest("No file selected")
	}
	if !allowedPhotoExts[localfiles.Ext(originalName)] {
		return "", apperr.BadRequest("Invalid file type")
	}

	filename, err := s.files.SaveReferencePhoto(layoutID, originalName, photo)
	if err != nil {
		s.log.Error("store reference photo failed", "layout_id", layoutID, "error", err)
		return "", fmt.Errorf("store reference photo: %w", err)
	}
	if err := s.layoutRepo.SetReferencePhoto(dbctx.Context{Ctx: ctx}, layoutID, filename); err != nil {
		s.log.Error("set reference photo failed", "layout_id", layoutID, "error", err)
		return "", fmt.Errorf("set reference photo: %w", err)
	}
	s.log.Info("reference photo uploaded", "layout_id", layoutID, "filename", filename)
	return filename, nil
}

func (s *schematicService) ZoneItems(ctx context.Context, zoneID int64) ([]*types.Drug, error) {
	return s.assignments.ItemsInZone(dbctx.Context{Ctx: ctx}, zoneID)
}

func (s *schematicService) AssignToZone(ctx context.Context, zoneID int64, drugID *int64) error {
	if drugID == nil || *drugID == 0 {
		return apperr.BadRequest("drug_id is required")
	}
	if err := s.assignments.Assign(dbctx.Context{Ctx: ctx}, zoneID, *drugID); err != nil {
		s.log.Error("assign to zone failed", "zone_id", zoneID, "drug_id", *drugID, "error", err)
		return fmt.Errorf("assign to zone: %w", err)
	}
	return nil
}

func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}
