package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/labstock-backend/internal/data/repos"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type Repos struct {
	Drug              repos.DrugRepo
	FridgeConfig      repos.FridgeConfigRepo
	Fridge            repos.FridgeRepo
	PhotoLayout       repos.PhotoLayoutRepo
	LayoutRegion      repos.LayoutRegionRepo
	RegionAssignment  repos.RegionAssignmentRepo
	SchematicLayout   repos.SchematicLayoutRepo
	SchematicZone     repos.SchematicZoneRepo
	ZoneAssignment    repos.ZoneAssignmentRepo
	PrimaryAntibody   repos.PrimaryAntibodyRepo
	SecondaryAntibody repos.SecondaryAntibodyRepo
	Setting           repos.SettingRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Drug:              repos.NewDrugRepo(db, log),
		FridgeConfig:      repos.NewFridgeConfigRepo(db, log),
		Fridge:            repos.NewFridgeRepo(db, log),
		PhotoLayout:       repos.NewPhotoLayoutRepo(db, log),
		LayoutRegion:      repos.NewLayoutRegionRepo(db, log),
		RegionAssignment:  repos.NewRegionAssignmentRepo(db, log),
		SchematicLayout:   repos.NewSchematicLayoutRepo(db, log),
		SchematicZone:     repos.NewSchematicZoneRepo(db, log),
		ZoneAssignment:    repos.NewZoneAssignmentRepo(db, log),
		PrimaryAntibody:   repos.NewPrimaryAntibodyRepo(db, log),
		SecondaryAntibody: repos.NewSecondaryAntibodyRepo(db, log),
		Setting:           repos.NewSettingRepo(db, log),
	}
}
