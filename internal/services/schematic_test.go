package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	"github.com/yungbote/labstock-backend/internal/data/repos/testutil"
	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/pkg/pointers"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/localfiles"
	"gorm.io/gorm"
)

func seedServiceDrug(t *testing.T, db *gorm.DB, name string) int64 {
	t.Helper()
	repo := repos.NewDrugRepo(db, testutil.Logger(t))
	row, err := repo.Create(dbctx.Context{Ctx: context.Background()}, &types.Drug{DrugName: name, StorageTemp: types.TempFridge})
	if err != nil {
		t.Fatalf("seed drug %s: %v", name, err)
	}
	return row.ID
}

func newSchematicService(t *testing.T) (SchematicService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	files, err := localfiles.New(t.TempDir(), log)
	if err != nil {
		t.Fatalf("localfiles.New: %v", err)
	}
	svc := NewSchematicService(db, log, files,
		repos.NewSchematicLayoutRepo(db, log),
		repos.NewSchematicZoneRepo(db, log),
		repos.NewZoneAssignmentRepo(db, log))
	return svc, db
}

func TestSchematicServiceViewEmptySlot(t *testing.T) {
	svc, _ := newSchematicService(t)

	view, err := svc.View(context.Background(), "4C", "body")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	// An unconfigured slot is not an error; it renders as an empty view.
	if view.Layout != nil {
		t.Fatalf("layout: %+v", view.Layout)
	}
	if view.Zones == nil || len(view.Zones) != 0 || view.Occupancy == nil || len(view.Occupancy) != 0 {
		t.Fatalf("view: %+v", view)
	}
}

func TestSchematicServiceCreateAndZones(t *testing.T) {
	svc, db := newSchematicService(t)
	ctx := context.Background()

	var ae *apperr.Error
	if _, err := svc.Create(ctx, SchematicCreateInput{Section: "body"}); !errors.As(err, &ae) || ae.Message != "temp_key and section are required" {
		t.Fatalf("Create without temp_key: %v", err)
	}

	layoutID, err := svc.Create(ctx, SchematicCreateInput{TempKey: "4C", Section: "body", LayoutName: "Main Fridge Body"})
	if err != nil || layoutID == 0 {
		t.Fatalf("Create: id=%d err=%v", layoutID, err)
	}

	bad := []SchematicZoneInput{{ZoneName: "Buffers", RowIndex: pointers.Int(0)}}
	if err := svc.ReplaceZones(ctx, layoutID, bad); !errors.As(err, &ae) || ae.Message != "Each zone requires zone_name, row_index and col_index" {
		t.Fatalf("ReplaceZones invalid: %v", err)
	}

	zones := []SchematicZoneInput{
		{ZoneName: "Buffers", RowIndex: pointers.Int(0), ColIndex: pointers.Int(0)},
		{ZoneName: "Enzymes", RowIndex: pointers.Int(1), ColIndex: pointers.Int(0),
			ColSpan: pointers.Int(2), RowSpan: pointers.Int(1), Color: pointers.String("#ffe0b2")},
	}
	if err := svc.ReplaceZones(ctx, layoutID, zones); err != nil {
		t.Fatalf("ReplaceZones: %v", err)
	}

	view, err := svc.View(ctx, "4C", "body")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Layout == nil || view.Layout.LayoutName != "Main Fridge Body" {
		t.Fatalf("view layout: %+v", view.Layout)
	}
	if len(view.Zones) != 2 || view.Zones[0].ZoneName != "Buffers" || view.Zones[1].ZoneName != "Enzymes" {
		t.Fatalf("view zones: %+v", view.Zones)
	}
	// Omitted span and color take grid defaults.
	if view.Zones[0].ColSpan != 1 || view.Zones[0].RowSpan != 1 || view.Zones[0].Color != "#e3f2fd" {
		t.Fatalf("default zone: %+v", view.Zones[0])
	}
	if view.Zones[1].ColSpan != 2 || view.Zones[1].Color != "#ffe0b2" {
		t.Fatalf("explicit zone: %+v", view.Zones[1])
	}

	// Replacing the grid drops old zones along with their assignments.
	drugID := seedServiceDrug(t, db, "Trypsin")
	if err := svc.AssignToZone(ctx, view.Zones[0].ID, &drugID); err != nil {
		t.Fatalf("AssignToZone: %v", err)
	}
	if err := svc.ReplaceZones(ctx, layoutID, zones[:1]); err != nil {
		t.Fatalf("ReplaceZones again: %v", err)
	}
	var n int64
	if err := db.Model(&types.ZoneAssignment{}).Count(&n).Error; err != nil || n != 0 {
		t.Fatalf("assignments after replace: n=%d err=%v", n, err)
	}
}

func TestSchematicServiceViewByFridge(t *testing.T) {
	svc, db := newSchematicService(t)
	ctx := context.Background()
	log := testutil.Logger(t)

	fridge, err := repos.NewFridgeRepo(db, log).Create(dbctx.Context{Ctx: ctx}, &types.Fridge{Name: "Main Lab Fridge", TempType: types.TempFridge})
	if err != nil {
		t.Fatalf("seed fridge: %v", err)
	}

	if _, err := svc.Create(ctx, SchematicCreateInput{
		TempKey: "4C", Section: "door", LayoutName: "Door Shelves", FridgeID: &fridge.ID,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	view, err := svc.ViewByFridge(ctx, fridge.ID, "door")
	if err != nil {
		t.Fatalf("ViewByFridge: %v", err)
	}
	if view.Layout == nil || view.Layout.LayoutName != "Door Shelves" {
		t.Fatalf("view: %+v", view.Layout)
	}

	empty, err := svc.ViewByFridge(ctx, fridge.ID, "body")
	if err != nil || empty.Layout != nil {
		t.Fatalf("ViewByFridge other section: view=%+v err=%v", empty, err)
	}
}

func TestSchematicServiceUploadReference(t *testing.T) {
	svc, _ := newSchematicService(t)
	ctx := context.Background()

	layoutID, err := svc.Create(ctx, SchematicCreateInput{TempKey: "-20C", Section: "body"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	rawID := strconv.FormatInt(layoutID, 10)

	var ae *apperr.Error
	if _, err := svc.UploadReference(ctx, "", "ref.png", strings.NewReader("x")); !errors.As(err, &ae) || ae.Message != "layout_id is required" {
		t.Fatalf("UploadReference empty id: %v", err)
	}
	if _, err := svc.UploadReference(ctx, "abc", "ref.png", strings.NewReader("x")); !errors.As(err, &ae) || ae.Message != "layout_id is required" {
		t.Fatalf("UploadReference bad id: %v", err)
	}
	if _, err := svc.UploadReference(ctx, rawID, "", strings.NewReader("x")); !errors.As(err, &ae) || ae.Message != "No file selected" {
		t.Fatalf("UploadReference no file: %v", err)
	}
	if _, err := svc.UploadReference(ctx, rawID, "ref.pdf", strings.NewReader("x")); !errors.As(err, &ae) || ae.Message != "Invalid file type" {
		t.Fatalf("UploadReference bad ext: %v", err)
	}

	filename, err := svc.UploadReference(ctx, rawID, "whiteboard sketch.PNG", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadReference: %v", err)
	}
	if !strings.HasPrefix(filename, "ref_"+rawID+"_") || !strings.HasSuffix(filename, ".png") {
		t.Fatalf("reference name: %q", filename)
	}

	view, err := svc.View(ctx, "-20C", "body")
	if err != nil || view.Layout == nil {
		t.Fatalf("View: view=%+v err=%v", view, err)
	}
	if view.Layout.ID != layoutID || view.Layout.ReferencePhoto != filename {
		t.Fatalf("reference photo: %+v", view.Layout)
	}

	// Unknown layout ids store the file and quietly update nothing.
	if _, err := svc.UploadReference(ctx, "999", "ref.png", strings.NewReader("x")); err != nil {
		t.Fatalf("UploadReference unknown layout: %v", err)
	}
}

func TestSchematicServiceZoneItems(t *testing.T) {
	svc, db := newSchematicService(t)
	ctx := context.Background()

	layoutID, err := svc.Create(ctx, SchematicCreateInput{TempKey: "4C", Section: "body"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.ReplaceZones(ctx, layoutID, []SchematicZoneInput{
		{ZoneName: "Media", RowIndex: pointers.Int(0), ColIndex: pointers.Int(0)},
	}); err != nil {
		t.Fatalf("ReplaceZones: %v", err)
	}
	view, err := svc.View(ctx, "4C", "body")
	if err != nil || len(view.Zones) != 1 {
		t.Fatalf("View: %+v err=%v", view, err)
	}
	zoneID := view.Zones[0].ID

	var ae *apperr.Error
	if err := svc.AssignToZone(ctx, zoneID, nil); !errors.As(err, &ae) || ae.Message != "drug_id is required" {
		t.Fatalf("AssignToZone nil: %v", err)
	}

	drugID := seedServiceDrug(t, db, "DMEM")
	if err := svc.AssignToZone(ctx, zoneID, &drugID); err != nil {
		t.Fatalf("AssignToZone: %v", err)
	}
	items, err := svc.ZoneItems(ctx, zoneID)
	if err != nil || len(items) != 1 || items[0].DrugName != "DMEM" {
		t.Fatalf("ZoneItems: err=%v rows=%+v", err, items)
	}

	view, err = svc.View(ctx, "4C", "body")
	if err != nil || len(view.Occupancy) != 1 || view.Occupancy[0].ItemCount != 1 {
		t.Fatalf("occupancy: %+v err=%v", view.Occupancy, err)
	}
}
