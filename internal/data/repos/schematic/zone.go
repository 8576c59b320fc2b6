package schematic

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type SchematicZoneRepo interface {
	ReplaceForLayout(dbc dbctx.Context, layoutID int64, zones []*types.SchematicZone) error
	GetByID(dbc dbctx.Context, id int64) (*types.SchematicZone, error)
	GetByLayoutID(dbc dbctx.Context, layoutID int64) ([]*types.SchematicZone, error)
}

type schematicZoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSchematicZoneRepo(db *gorm.DB, baseLog *logger.Logger) SchematicZoneRepo {
	return &schematicZoneRepo{
		db:  db,
		log: baseLog.With("repo", "SchematicZoneRepo"),
	}
}

// ReplaceForLayout swaps the full zone set of a layout. Assignments to the
// old zones go with them; callers run this inside a transaction.
func (r *schematicZoneRepo) ReplaceForLayout(dbc dbctx.Context, layoutID int64, zones []*types.SchematicZone) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	if err := t.WithContext(dbc.Ctx).
		Where("zone_id IN (?)", t.Model(&types.SchematicZone{}).Select("id").Where("layout_id = ?", layoutID)).
		Delete(&types.ZoneAssignment{}).Error; err != nil {
		return err
	}
	if err := t.WithContext(dbc.Ctx).
		Where("layout_id = ?", layoutID).
		Delete(&types.SchematicZone{}).Error; err != nil {
		return err
	}

	if len(zones) == 0 {
		return nil
	}
	for _, z := range zones {
		z.LayoutID = layoutID
	}
	return t.WithContext(dbc.Ctx).Create(&zones).Error
}

func (r *schematicZoneRepo) GetByID(dbc dbctx.Context, id int64) (*types.SchematicZone, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SchematicZone
	if err := t.WithContext(dbc.Ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *schematicZoneRepo) GetByLayoutID(dbc dbctx.Context, layoutID int64) ([]*types.SchematicZone, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.SchematicZone{}
	if err := t.WithContext(dbc.Ctx).
		Where("layout_id = ?", layoutID).
		Order("row_index, col_index").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
