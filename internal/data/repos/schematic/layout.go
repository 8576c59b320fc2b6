package schematic

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type SchematicLayoutRepo interface {
	Create(dbc dbctx.Context, row *types.SchematicLayout) (*types.SchematicLayout, error)
	GetByID(dbc dbctx.Context, id int64) (*types.SchematicLayout, error)
	GetBySlot(dbc dbctx.Context, tempKey, section string) (*types.SchematicLayout, error)
	GetByFridge(dbc dbctx.Context, fridgeID int64, section string) (*types.SchematicLayout, error)
	SetReferencePhoto(dbc dbctx.Context, id int64, filename string) error
}

type schematicLayoutRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSchematicLayoutRepo(db *gorm.DB, baseLog *logger.Logger) SchematicLayoutRepo {
	return &schematicLayoutRepo{
		db:  db,
		log: baseLog.With("repo", "SchematicLayoutRepo"),
	}
}

func (r *schematicLayoutRepo) Create(dbc dbctx.Context, row *types.SchematicLayout) (*types.SchematicLayout, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *schematicLayoutRepo) GetByID(dbc dbctx.Context, id int64) (*types.SchematicLayout, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SchematicLayout
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

// GetBySlot serves the legacy lookup that predates user-defined fridges.
// Multiple layouts can share a slot; the most recently created one wins.
func (r *schematicLayoutRepo) GetBySlot(dbc dbctx.Context, tempKey, section string) (*types.SchematicLayout, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SchematicLayout
	if err := t.WithContext(dbc.Ctx).
		Where("temp_key = ? AND section = ?", tempKey, section).
		Order("id DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *schematicLayoutRepo) GetByFridge(dbc dbctx.Context, fridgeID int64, section string) (*types.SchematicLayout, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SchematicLayout
	if err := t.WithContext(dbc.Ctx).
		Where("fridge_id = ? AND section = ?", fridgeID, section).
		Order("id DESC").
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *schematicLayoutRepo) SetReferencePhoto(dbc dbctx.Context, id int64, filename string) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.SchematicLayout{}).
		Where("id = ?", id).
		Update("reference_photo", filename).Error
}
