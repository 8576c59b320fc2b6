package layout

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type PhotoLayoutRepo interface {
	UpsertBySlot(dbc dbctx.Context, tempKey, section, filename string) (int64, error)
	GetByID(dbc dbctx.Context, id int64) (*types.PhotoLayout, error)
	GetBySlot(dbc dbctx.Context, tempKey, section string) (*types.PhotoLayout, error)
}

type photoLayoutRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhotoLayoutRepo(db *gorm.DB, baseLog *logger.Logger) PhotoLayoutRepo {
	return &photoLayoutRepo{
		db:  db,
		log: baseLog.With("repo", "PhotoLayoutRepo"),
	}
}

// UpsertBySlot keeps one layout per temp/section pair: re-uploading swaps
// the photo and keeps the layout id (and its regions) stable.
func (r *photoLayoutRepo) UpsertBySlot(dbc dbctx.Context, tempKey, section, filename string) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}

	existing, err := r.GetBySlot(dbc, tempKey, section)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		if err := t.WithContext(dbc.Ctx).
			Model(&types.PhotoLayout{}).
			Where("id = ?", existing.ID).
			Update("photo_filename", filename).Error; err != nil {
			return 0, err
		}
		return existing.ID, nil
	}

	row := &types.PhotoLayout{TempKey: tempKey, Section: section, PhotoFilename: filename}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *photoLayoutRepo) GetByID(dbc dbctx.Context, id int64) (*types.PhotoLayout, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PhotoLayout
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

func (r *photoLayoutRepo) GetBySlot(dbc dbctx.Context, tempKey, section string) (*types.PhotoLayout, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.PhotoLayout
	if err := t.WithContext(dbc.Ctx).
		Where("temp_key = ? AND section = ?", tempKey, section).
		Limit(1).
		Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}
