package fridge

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type FridgeRepo interface {
	Create(dbc dbctx.Context, row *types.Fridge) (*types.Fridge, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Fridge, error)
	GetAll(dbc dbctx.Context) ([]*types.Fridge, error)
	GetByTempType(dbc dbctx.Context, tempType string) ([]*types.Fridge, error)
	Update(dbc dbctx.Context, row *types.Fridge) error
	Delete(dbc dbctx.Context, id int64) error
}

type fridgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFridgeRepo(db *gorm.DB, baseLog *logger.Logger) FridgeRepo {
	return &fridgeRepo{
		db:  db,
		log: baseLog.With("repo", "FridgeRepo"),
	}
}

func (r *fridgeRepo) Create(dbc dbctx.Context, row *types.Fridge) (*types.Fridge, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *fridgeRepo) GetByID(dbc dbctx.Context, id int64) (*types.Fridge, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Fridge
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

func (r *fridgeRepo) GetAll(dbc dbctx.Context) ([]*types.Fridge, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Fridge{}
	if err := t.WithContext(dbc.Ctx).
		Order("name").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fridgeRepo) GetByTempType(dbc dbctx.Context, tempType string) ([]*types.Fridge, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Fridge{}
	if err := t.WithContext(dbc.Ctx).
		Where("temp_type = ?", tempType).
		Order("name").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fridgeRepo) Update(dbc dbctx.Context, row *types.Fridge) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.Fridge{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":      row.Name,
			"temp_type": row.TempType,
			"location":  row.Location,
			"notes":     row.Notes,
		}).Error
}

func (r *fridgeRepo) Delete(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Delete(&types.Fridge{}, id).Error
}
