package schematic

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// ZoneOccupancy is the per-zone item count for one schematic layout.
type ZoneOccupancy struct {
	ZoneID    int64  `json:"zone_id"`
	ZoneName  string `json:"zone_name"`
	ItemCount int64  `json:"item_count"`
}

type ZoneAssignmentRepo interface {
	Assign(dbc dbctx.Context, zoneID, drugID int64) error
	ItemsInZone(dbc dbctx.Context, zoneID int64) ([]*types.Drug, error)
	OccupancyByLayout(dbc dbctx.Context, layoutID int64) ([]ZoneOccupancy, error)
}

type zoneAssignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewZoneAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) ZoneAssignmentRepo {
	return &zoneAssignmentRepo{
		db:  db,
		log: baseLog.With("repo", "ZoneAssignmentRepo"),
	}
}

func (r *zoneAssignmentRepo) Assign(dbc dbctx.Context, zoneID, drugID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	row := &types.ZoneAssignment{ZoneID: zoneID, DrugID: drugID}
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *zoneAssignmentRepo) ItemsInZone(dbc dbctx.Context, zoneID int64) ([]*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Drug{}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.Drug{}).
		Joins("JOIN zone_assignments ON zone_assignments.drug_id = drugs.id").
		Where("zone_assignments.zone_id = ?", zoneID).
		Order("drugs.id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *zoneAssignmentRepo) OccupancyByLayout(dbc dbctx.Context, layoutID int64) ([]ZoneOccupancy, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []ZoneOccupancy{}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.SchematicZone{}).
		Select("schematic_zones.id AS zone_id, schematic_zones.zone_name, COUNT(zone_assignments.id) AS item_count").
		Joins("LEFT JOIN zone_assignments ON zone_assignments.zone_id = schematic_zones.id").
		Where("schematic_zones.layout_id = ?", layoutID).
		Group("schematic_zones.id, schematic_zones.zone_name").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
