package layout

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type LayoutRegionRepo interface {
	Create(dbc dbctx.Context, row *types.LayoutRegion) (*types.LayoutRegion, error)
	GetByID(dbc dbctx.Context, id int64) (*types.LayoutRegion, error)
	GetByLayoutID(dbc dbctx.Context, layoutID int64) ([]*types.LayoutRegion, error)
	Update(dbc dbctx.Context, id int64, name string, x, y, width, height int) error
	Delete(dbc dbctx.Context, id int64) error
}

type layoutRegionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLayoutRegionRepo(db *gorm.DB, baseLog *logger.Logger) LayoutRegionRepo {
	return &layoutRegionRepo{
		db:  db,
		log: baseLog.With("repo", "LayoutRegionRepo"),
	}
}

func (r *layoutRegionRepo) Create(dbc dbctx.Context, row *types.LayoutRegion) (*types.LayoutRegion, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *layoutRegionRepo) GetByID(dbc dbctx.Context, id int64) (*types.LayoutRegion, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.LayoutRegion
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

func (r *layoutRegionRepo) GetByLayoutID(dbc dbctx.Context, layoutID int64) ([]*types.LayoutRegion, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.LayoutRegion{}
	if err := t.WithContext(dbc.Ctx).
		Where("layout_id = ?", layoutID).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *layoutRegionRepo) Update(dbc dbctx.Context, id int64, name string, x, y, width, height int) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	// Map-based Updates: x and y are legitimately zero at the photo origin.
	return t.WithContext(dbc.Ctx).
		Model(&types.LayoutRegion{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"region_name": name,
			"x":           x,
			"y":           y,
			"width":       width,
			"height":      height,
		}).Error
}

func (r *layoutRegionRepo) Delete(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).
		Where("region_id = ?", id).
		Delete(&types.RegionAssignment{}).Error; err != nil {
		return err
	}
	return t.WithContext(dbc.Ctx).Delete(&types.LayoutRegion{}, id).Error
}
