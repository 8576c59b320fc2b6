package setting

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type SettingRepo interface {
	Upsert(dbc dbctx.Context, key, value string) error
	GetByKey(dbc dbctx.Context, key string) (*types.Setting, error)
	GetAll(dbc dbctx.Context) ([]*types.Setting, error)
}

type settingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSettingRepo(db *gorm.DB, baseLog *logger.Logger) SettingRepo {
	return &settingRepo{
		db:  db,
		log: baseLog.With("repo", "SettingRepo"),
	}
}

func (r *settingRepo) Upsert(dbc dbctx.Context, key, value string) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	row := &types.Setting{Key: key, Value: value}
	return t.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(row).Error
}

func (r *settingRepo) GetByKey(dbc dbctx.Context, key string) (*types.Setting, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Setting
	if err := t.WithContext(dbc.Ctx).
		Where("key = ?", key).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *settingRepo) GetAll(dbc dbctx.Context) ([]*types.Setting, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Setting{}
	if err := t.WithContext(dbc.Ctx).
		Order("key").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
