package domain

import (
	"github.com/yungbote/labstock-backend/internal/domain/antibody"
	"github.com/yungbote/labstock-backend/internal/domain/fridge"
	"github.com/yungbote/labstock-backend/internal/domain/inventory"
	"github.com/yungbote/labstock-backend/internal/domain/layout"
	"github.com/yungbote/labstock-backend/internal/domain/settings"
)

// Storage sections within a fridge grid.
const (
	SectionBody = "body"
	SectionDoor = "door"
)

// Temperature keys seeded on first boot. Additional keys can be added
// through the fridge config API.
const (
	TempFridge      = "4C"
	TempFreezer     = "-20C"
	TempUltraFreeze = "-80C"
)

type Drug = inventory.Drug

type FridgeConfig = fridge.FridgeConfig
type Fridge = fridge.Fridge

type PhotoLayout = layout.PhotoLayout
type LayoutRegion = layout.LayoutRegion
type RegionAssignment = layout.RegionAssignment
type SchematicLayout = layout.SchematicLayout
type SchematicZone = layout.SchematicZone
type ZoneAssignment = layout.ZoneAssignment

type PrimaryAntibody = antibody.PrimaryAntibody
type SecondaryAntibody = antibody.SecondaryAntibody

type Setting = settings.Setting
