package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/labstock-backend/internal/platform/localfiles"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
	"github.com/yungbote/labstock-backend/internal/services"
)

type Services struct {
	Record    services.RecordService
	Fridge    services.FridgeService
	Transfer  services.TransferService
	Layout    services.LayoutService
	Schematic services.SchematicService
	Antibody  services.AntibodyService
	Setting   services.SettingService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	files, err := localfiles.New(cfg.UploadDir, log)
	if err != nil {
		return Services{}, fmt.Errorf("init upload store: %w", err)
	}

	return Services{
		Record:    services.NewRecordService(log, reposet.Drug),
		Fridge:    services.NewFridgeService(log, reposet.FridgeConfig, reposet.Fridge, reposet.Drug),
		Transfer:  services.NewTransferService(db, log, reposet.Drug),
		Layout:    services.NewLayoutService(log, files, reposet.PhotoLayout, reposet.LayoutRegion, reposet.RegionAssignment),
		Schematic: services.NewSchematicService(db, log, files, reposet.SchematicLayout, reposet.SchematicZone, reposet.ZoneAssignment),
		Antibody:  services.NewAntibodyService(log, reposet.PrimaryAntibody, reposet.SecondaryAntibody),
		Setting:   services.NewSettingService(log, reposet.Setting),
	}, nil
}
