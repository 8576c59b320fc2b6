package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/pointers"
)

// SeedDrug inserts a minimal inventory record with no storage location.
func SeedDrug(tb testing.TB, ctx context.Context, tx *gorm.DB, name, temp string) *types.Drug {
	tb.Helper()
	d := &types.Drug{
		DrugName:           name,
		StockConcentration: pointers.Float64(10),
		StockUnit:          "mM",
		StorageTemp:        temp,
		Supplier:           "Sigma",
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed drug: %v", err)
	}
	return d
}

// SeedStoredDrug inserts a record already placed in a grid cell.
func SeedStoredDrug(tb testing.TB, ctx context.Context, tx *gorm.DB, name, temp, section string, row, col int) *types.Drug {
	tb.Helper()
	d := &types.Drug{
		DrugName:       name,
		StorageTemp:    temp,
		StorageSection: pointers.String(section),
		StorageRow:     pointers.Int(row),
		StorageColumn:  pointers.Int(col),
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed stored drug: %v", err)
	}
	return d
}

func SeedFridge(tb testing.TB, ctx context.Context, tx *gorm.DB, name, tempType string) *types.Fridge {
	tb.Helper()
	f := &types.Fridge{
		Name:     name,
		TempType: tempType,
		Location: "Room 101",
	}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed fridge: %v", err)
	}
	return f
}

func SeedPhotoLayout(tb testing.TB, ctx context.Context, tx *gorm.DB, tempKey, section string) *types.PhotoLayout {
	tb.Helper()
	l := &types.PhotoLayout{
		TempKey:       tempKey,
		Section:       section,
		PhotoFilename: "fridge.jpg",
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed photo layout: %v", err)
	}
	return l
}

func SeedRegion(tb testing.TB, ctx context.Context, tx *gorm.DB, layoutID int64, name string) *types.LayoutRegion {
	tb.Helper()
	r := &types.LayoutRegion{
		LayoutID:   layoutID,
		RegionName: name,
		X:          10,
		Y:          20,
		Width:      100,
		Height:     50,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed region: %v", err)
	}
	return r
}

func SeedSchematicLayout(tb testing.TB, ctx context.Context, tx *gorm.DB, tempKey, section string, fridgeID *int64) *types.SchematicLayout {
	tb.Helper()
	l := &types.SchematicLayout{
		TempKey:    tempKey,
		Section:    section,
		LayoutName: "main",
		FridgeID:   fridgeID,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed schematic layout: %v", err)
	}
	return l
}

func SeedZone(tb testing.TB, ctx context.Context, tx *gorm.DB, layoutID int64, name string, row, col int) *types.SchematicZone {
	tb.Helper()
	z := &types.SchematicZone{
		LayoutID: layoutID,
		ZoneName: name,
		RowIndex: row,
		ColIndex: col,
		ColSpan:  1,
		RowSpan:  1,
		Color:    "#e3f2fd",
	}
	if err := tx.WithContext(ctx).Create(z).Error; err != nil {
		tb.Fatalf("seed zone: %v", err)
	}
	return z
}

func SeedPrimaryAntibody(tb testing.TB, ctx context.Context, tx *gorm.DB, name, host string) *types.PrimaryAntibody {
	tb.Helper()
	ab := &types.PrimaryAntibody{
		Name: name,
		Host: host,
	}
	if err := tx.WithContext(ctx).Create(ab).Error; err != nil {
		tb.Fatalf("seed primary antibody: %v", err)
	}
	return ab
}

func SeedSecondaryAntibody(tb testing.TB, ctx context.Context, tx *gorm.DB, name, targetSpecies string) *types.SecondaryAntibody {
	tb.Helper()
	ab := &types.SecondaryAntibody{
		Name:          name,
		TargetSpecies: targetSpecies,
		Conjugate:     "HRP",
	}
	if err := tx.WithContext(ctx).Create(ab).Error; err != nil {
		tb.Fatalf("seed secondary antibody: %v", err)
	}
	return ab
}
