package layout

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// RegionOccupancy is the per-region item count for one layout.
type RegionOccupancy struct {
	RegionID   int64  `json:"region_id"`
	RegionName string `json:"region_name"`
	ItemCount  int64  `json:"item_count"`
}

type RegionAssignmentRepo interface {
	Assign(dbc dbctx.Context, regionID, drugID int64) error
	ItemsInRegion(dbc dbctx.Context, regionID int64) ([]*types.Drug, error)
	OccupancyByLayout(dbc dbctx.Context, layoutID int64) ([]RegionOccupancy, error)
}

type regionAssignmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRegionAssignmentRepo(db *gorm.DB, baseLog *logger.Logger) RegionAssignmentRepo {
	return &regionAssignmentRepo{
		db:  db,
		log: baseLog.With("repo", "RegionAssignmentRepo"),
	}
}

func (r *regionAssignmentRepo) Assign(dbc dbctx.Context, regionID, drugID int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	row := &types.RegionAssignment{RegionID: regionID, DrugID: drugID}
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

func (r *regionAssignmentRepo) ItemsInRegion(dbc dbctx.Context, regionID int64) ([]*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Drug{}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.Drug{}).
		Joins("JOIN region_assignments ON region_assignments.drug_id = drugs.id").
		Where("region_assignments.region_id = ?", regionID).
		Order("drugs.id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *regionAssignmentRepo) OccupancyByLayout(dbc dbctx.Context, layoutID int64) ([]RegionOccupancy, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []RegionOccupancy{}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.LayoutRegion{}).
		Select("layout_regions.id AS region_id, layout_regions.region_name, COUNT(region_assignments.id) AS item_count").
		Joins("LEFT JOIN region_assignments ON region_assignments.region_id = layout_regions.id").
		Where("layout_regions.layout_id = ?", layoutID).
		Group("layout_regions.id, layout_regions.region_name").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
