package antibody

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type PrimaryAntibodyRepo interface {
	Create(dbc dbctx.Context, row *types.PrimaryAntibody) (*types.PrimaryAntibody, error)
	GetByID(dbc dbctx.Context, id int64) (*types.PrimaryAntibody, error)
	GetAll(dbc dbctx.Context) ([]*types.PrimaryAntibody, error)
	Update(dbc dbctx.Context, row *types.PrimaryAntibody) error
	Delete(dbc dbctx.Context, id int64) error
}

type primaryAntibodyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPrimaryAntibodyRepo(db *gorm.DB, baseLog *logger.Logger) PrimaryAntibodyRepo {
	return &primaryAntibodyRepo{
		db:  db,
		log: baseLog.With("repo", "PrimaryAntibodyRepo"),
	}
}

func (r *primaryAntibodyRepo) Create(dbc dbctx.Context, row *types.PrimaryAntibody) (*types.PrimaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *primaryAntibodyRepo) GetByID(dbc dbctx.Context, id int64) (*types.PrimaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PrimaryAntibody
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

func (r *primaryAntibodyRepo) GetAll(dbc dbctx.Context) ([]*types.PrimaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.PrimaryAntibody{}
	if err := t.WithContext(dbc.Ctx).
		Order("name").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *primaryAntibodyRepo) Update(dbc dbctx.Context, row *types.PrimaryAntibody) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.PrimaryAntibody{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":           row.Name,
			"host":           row.Host,
			"clonality":      row.Clonality,
			"reactivity":     row.Reactivity,
			"applications":   row.Applications,
			"dilution":       row.Dilution,
			"storage_temp":   row.StorageTemp,
			"supplier":       row.Supplier,
			"lot_number":     row.LotNumber,
			"product_number": row.ProductNumber,
			"notes":          row.Notes,
		}).Error
}

func (r *primaryAntibodyRepo) Delete(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Delete(&types.PrimaryAntibody{}, id).Error
}
