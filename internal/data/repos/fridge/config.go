package fridge

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type FridgeConfigRepo interface {
	GetByKey(dbc dbctx.Context, tempKey string) (*types.FridgeConfig, error)
	GetAll(dbc dbctx.Context) ([]*types.FridgeConfig, error)
	UpdateGrid(dbc dbctx.Context, tempKey string, bodyRows, bodyCols, doorRows, doorCols int) error
}

type fridgeConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFridgeConfigRepo(db *gorm.DB, baseLog *logger.Logger) FridgeConfigRepo {
	return &fridgeConfigRepo{
		db:  db,
		log: baseLog.With("repo", "FridgeConfigRepo"),
	}
}

func (r *fridgeConfigRepo) GetByKey(dbc dbctx.Context, tempKey string) (*types.FridgeConfig, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.FridgeConfig
	if err := t.WithContext(dbc.Ctx).
		Where("temp_key = ?", tempKey).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *fridgeConfigRepo) GetAll(dbc dbctx.Context) ([]*types.FridgeConfig, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.FridgeConfig{}
	if err := t.WithContext(dbc.Ctx).
		Order("temp_key").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fridgeConfigRepo) UpdateGrid(dbc dbctx.Context, tempKey string, bodyRows, bodyCols, doorRows, doorCols int) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	// Map-based Updates so zero door dimensions are written, not skipped.
	return t.WithContext(dbc.Ctx).
		Model(&types.FridgeConfig{}).
		Where("temp_key = ?", tempKey).
		Updates(map[string]any{
			"body_rows":    bodyRows,
			"body_columns": bodyCols,
			"door_rows":    doorRows,
			"door_columns": doorCols,
		}).Error
}
