package db

import (
	types "github.com/yungbote/labstock-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(

		// =========================
		// Inventory
		// =========================
		&types.Drug{},

		// =========================
		// Fridges + grid config
		// =========================
		&types.FridgeConfig{},
		&types.Fridge{},

		// =========================
		// Photo layouts
		// =========================
		&types.PhotoLayout{},
		&types.LayoutRegion{},
		&types.RegionAssignment{},

		// =========================
		// Schematic layouts
		// =========================
		&types.SchematicLayout{},
		&types.SchematicZone{},
		&types.ZoneAssignment{},

		// =========================
		// Antibody catalog
		// =========================
		&types.PrimaryAntibody{},
		&types.SecondaryAntibody{},

		// =========================
		// Settings
		// =========================
		&types.Setting{},
	)
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating database tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
