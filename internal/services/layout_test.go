package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	"github.com/yungbote/labstock-backend/internal/data/repos/testutil"
	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/pointers"
	"github.com/yungbote/labstock-backend/internal/platform/apperr"
	"github.com/yungbote/labstock-backend/internal/platform/localfiles"
)

func newLayoutService(t *testing.T) (LayoutService, RecordService, string) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	dir := t.TempDir()
	files, err := localfiles.New(dir, log)
	if err != nil {
		t.Fatalf("localfiles.New: %v", err)
	}
	svc := NewLayoutService(log, files,
		repos.NewPhotoLayoutRepo(db, log),
		repos.NewLayoutRegionRepo(db, log),
		repos.NewRegionAssignmentRepo(db, log))
	return svc, NewRecordService(log, repos.NewDrugRepo(db, log)), dir
}

func TestLayoutServiceUploadPhotoValidation(t *testing.T) {
	svc, _, _ := newLayoutService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		tempKey  string
		section  string
		fileName string
		want     string
	}{
		{"missing slot", "", "body", "f.jpg", "Temperature and section are required"},
		{"missing section", "4C", "", "f.jpg", "Temperature and section are required"},
		{"missing filename", "4C", "body", "", "No file selected"},
		{"bad extension", "4C", "body", "notes.txt", "Invalid file type. Use JPG, PNG, or GIF"},
	}
	for _, tc := range cases {
		_, _, err := svc.UploadPhoto(ctx, tc.tempKey, tc.section, tc.fileName, strings.NewReader("x"))
		var ae *apperr.Error
		if !errors.As(err, &ae) || ae.Status != 400 || ae.Message != tc.want {
			t.Fatalf("%s: %v", tc.name, err)
		}
	}
}

func TestLayoutServiceUploadPhoto(t *testing.T) {
	svc, _, dir := newLayoutService(t)
	ctx := context.Background()

	id, filename, err := svc.UploadPhoto(ctx, "4C", "body", "fridge Front.JPG", strings.NewReader("jpeg-bytes"))
	if err != nil || id == 0 {
		t.Fatalf("UploadPhoto: id=%d err=%v", id, err)
	}
	if !strings.HasPrefix(filename, "4C_body_") || !strings.HasSuffix(filename, ".jpg") {
		t.Fatalf("stored name: %q", filename)
	}
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil || string(data) != "jpeg-bytes" {
		t.Fatalf("stored file: data=%q err=%v", data, err)
	}

	// Re-uploading the same slot replaces the photo but keeps the layout.
	id2, filename2, err := svc.UploadPhoto(ctx, "4C", "body", "retake.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadPhoto again: %v", err)
	}
	if id2 != id {
		t.Fatalf("layout id changed: %d -> %d", id, id2)
	}
	if !strings.HasSuffix(filename2, ".png") {
		t.Fatalf("second stored name: %q", filename2)
	}
}

func TestLayoutServiceRegions(t *testing.T) {
	svc, records, _ := newLayoutService(t)
	ctx := context.Background()

	layoutID, _, err := svc.UploadPhoto(ctx, "4C", "body", "shelf.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}

	var ae *apperr.Error
	if _, err := svc.CreateRegion(ctx, layoutID, RegionInput{RegionName: pointers.String("Top Shelf")}); !errors.As(err, &ae) || ae.Message != "Missing required fields" {
		t.Fatalf("CreateRegion partial: %v", err)
	}

	full := RegionInput{
		RegionName: pointers.String("Top Shelf"),
		X:          pointers.Int(0),
		Y:          pointers.Int(0),
		Width:      pointers.Int(120),
		Height:     pointers.Int(40),
	}
	regionID, err := svc.CreateRegion(ctx, layoutID, full)
	if err != nil || regionID == 0 {
		t.Fatalf("CreateRegion: id=%d err=%v", regionID, err)
	}

	if err := svc.UpdateRegion(ctx, regionID, RegionInput{RegionName: pointers.String("Top Shelf")}); !errors.As(err, &ae) || ae.Message != "Missing required fields" {
		t.Fatalf("UpdateRegion partial: %v", err)
	}
	moved := full
	moved.Y = pointers.Int(60)
	if err := svc.UpdateRegion(ctx, regionID, moved); err != nil {
		t.Fatalf("UpdateRegion: %v", err)
	}

	regions, err := svc.Regions(ctx, layoutID)
	if err != nil || len(regions) != 1 || regions[0].Y != 60 {
		t.Fatalf("Regions: err=%v rows=%+v", err, regions)
	}

	drugID, err := records.Create(ctx, RecordInput{DrugName: "Aspirin", StorageTemp: types.TempFridge})
	if err != nil {
		t.Fatalf("seed drug: %v", err)
	}
	if err := svc.AssignToRegion(ctx, regionID, nil); !errors.As(err, &ae) || ae.Message != "drug_id is required" {
		t.Fatalf("AssignToRegion nil: %v", err)
	}
	zero := int64(0)
	if err := svc.AssignToRegion(ctx, regionID, &zero); !errors.As(err, &ae) || ae.Message != "drug_id is required" {
		t.Fatalf("AssignToRegion zero: %v", err)
	}
	if err := svc.AssignToRegion(ctx, regionID, &drugID); err != nil {
		t.Fatalf("AssignToRegion: %v", err)
	}

	items, err := svc.RegionItems(ctx, regionID)
	if err != nil || len(items) != 1 || items[0].DrugName != "Aspirin" {
		t.Fatalf("RegionItems: err=%v rows=%+v", err, items)
	}

	if err := svc.DeleteRegion(ctx, regionID); err != nil {
		t.Fatalf("DeleteRegion: %v", err)
	}
	regions, err = svc.Regions(ctx, layoutID)
	if err != nil || len(regions) != 0 {
		t.Fatalf("Regions after delete: err=%v len=%d", err, len(regions))
	}
}

func TestLayoutServiceView(t *testing.T) {
	svc, records, _ := newLayoutService(t)
	ctx := context.Background()

	var ae *apperr.Error
	if _, err := svc.View(ctx, "4C", "body"); !errors.As(err, &ae) || ae.Status != 404 || ae.Message != "Layout not found" {
		t.Fatalf("View missing: %v", err)
	}

	layoutID, _, err := svc.UploadPhoto(ctx, "4C", "body", "shelf.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	mk := func(name string) int64 {
		t.Helper()
		id, err := svc.CreateRegion(ctx, layoutID, RegionInput{
			RegionName: pointers.String(name),
			X:          pointers.Int(0), Y: pointers.Int(0),
			Width: pointers.Int(10), Height: pointers.Int(10),
		})
		if err != nil {
			t.Fatalf("CreateRegion %s: %v", name, err)
		}
		return id
	}
	top := mk("Top Shelf")
	mk("Bottom Shelf")

	drugID, err := records.Create(ctx, RecordInput{DrugName: "Aspirin", StorageTemp: types.TempFridge})
	if err != nil {
		t.Fatalf("seed drug: %v", err)
	}
	if err := svc.AssignToRegion(ctx, top, &drugID); err != nil {
		t.Fatalf("AssignToRegion: %v", err)
	}

	view, err := svc.View(ctx, "4C", "body")
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if view.Layout == nil || view.Layout.ID != layoutID {
		t.Fatalf("view layout: %+v", view.Layout)
	}
	if len(view.Regions) != 2 || len(view.Occupancy) != 2 {
		t.Fatalf("view sizes: regions=%d occupancy=%d", len(view.Regions), len(view.Occupancy))
	}
	byID := map[int64]int64{}
	for _, o := range view.Occupancy {
		byID[o.RegionID] = o.ItemCount
	}
	if byID[top] != 1 {
		t.Fatalf("occupancy: %+v", view.Occupancy)
	}
}
