package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/labstock-backend/internal/data/repos/antibody"
	"github.com/yungbote/labstock-backend/internal/data/repos/drug"
	"github.com/yungbote/labstock-backend/internal/data/repos/fridge"
	"github.com/yungbote/labstock-backend/internal/data/repos/layout"
	"github.com/yungbote/labstock-backend/internal/data/repos/schematic"
	"github.com/yungbote/labstock-backend/internal/data/repos/setting"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type DrugRepo = drug.DrugRepo
type CellCount = drug.CellCount

type FridgeConfigRepo = fridge.FridgeConfigRepo
type FridgeRepo = fridge.FridgeRepo

type PhotoLayoutRepo = layout.PhotoLayoutRepo
type LayoutRegionRepo = layout.LayoutRegionRepo
type RegionAssignmentRepo = layout.RegionAssignmentRepo
type RegionOccupancy = layout.RegionOccupancy

type SchematicLayoutRepo = schematic.SchematicLayoutRepo
type SchematicZoneRepo = schematic.SchematicZoneRepo
type ZoneAssignmentRepo = schematic.ZoneAssignmentRepo
type ZoneOccupancy = schematic.ZoneOccupancy

type PrimaryAntibodyRepo = antibody.PrimaryAntibodyRepo
type SecondaryAntibodyRepo = antibody.SecondaryAntibodyRepo

type SettingRepo = setting.SettingRepo

func NewDrugRepo(db *gorm.DB, baseLog *logger.Logger) DrugRepo { return drug.NewDrugRepo(db, baseLog) }

func NewFridgeConfigRepo(db *gorm.DB, baseLog *logger.Logger) FridgeConfigRepo {
	return fridge.NewFridgeConfigRepo(db, baseLog)
}
func NewFridgeRepo(db *gorm.DB, baseLog *logger.Logger) FridgeRepo {
	return fridge.NewFridgeRepo(db, baseLog)
}

func NewPhotoLayoutRepo(db *gorm.DB, baseLog *logger.Logger) PhotoLayoutRepo {
	return layout.NewPhotoLayoutRepo(db, baseLog)
}
func NewLayoutRegionRepo(db *gorm.DB, baseLog *logger.Logger) LayoutRegionRepo {
	return layout.NewLayoutRegionRepo(db, baseLog)
}
func NewRegionAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) RegionAssignmentRepo {
	return layout.NewRegionAssignmentRepo(db, baseLog)
}

func NewSchematicLayoutRepo(db *gorm.DB, baseLog *logger.Logger) SchematicLayoutRepo {
	return schematic.NewSchematicLayoutRepo(db, baseLog)
}
func NewSchematicZoneRepo(db *gorm.DB, baseLog *logger.Logger) SchematicZoneRepo {
	return schematic.NewSchematicZoneRepo(db, baseLog)
}
func NewZoneAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) ZoneAssignmentRepo {
	return schematic.NewZoneAssignmentRepo(db, baseLog)
}

func NewPrimaryAntibodyRepo(db *gorm.DB, baseLog *logger.Logger) PrimaryAntibodyRepo {
	return antibody.NewPrimaryAntibodyRepo(db, baseLog)
}
func NewSecondaryAntibodyRepo(db *gorm.DB, baseLog *logger.Logger) SecondaryAntibodyRepo {
	return antibody.NewSecondaryAntibodyRepo(db, baseLog)
}

func NewSettingRepo(db *gorm.DB, baseLog *logger.Logger) SettingRepo {
	return setting.NewSettingRepo(db, baseLog)
}
