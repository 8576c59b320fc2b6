package antibody

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

type SecondaryAntibodyRepo interface {
	Create(dbc dbctx.Context, row *types.SecondaryAntibody) (*types.SecondaryAntibody, error)
	GetByID(dbc dbctx.Context, id int64) (*types.SecondaryAntibody, error)
	GetAll(dbc dbctx.Context) ([]*types.SecondaryAntibody, error)
	GetByTargetSpecies(dbc dbctx.Context, species string) ([]*types.SecondaryAntibody, error)
	Update(dbc dbctx.Context, row *types.SecondaryAntibody) error
	Delete(dbc dbctx.Context, id int64) error
}

type secondaryAntibodyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSecondaryAntibodyRepo(db *gorm.DB, baseLog *logger.Logger) SecondaryAntibodyRepo {
	return &secondaryAntibodyRepo{
		db:  db,
		log: baseLog.With("repo", "SecondaryAntibodyRepo"),
	}
}

func (r *secondaryAntibodyRepo) Create(dbc dbctx.Context, row *types.SecondaryAntibody) (*types.SecondaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *secondaryAntibodyRepo) GetByID(dbc dbctx.Context, id int64) (*types.SecondaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.SecondaryAntibody
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

func (r *secondaryAntibodyRepo) GetAll(dbc dbctx.Context) ([]*types.SecondaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.SecondaryAntibody{}
	if err := t.WithContext(dbc.Ctx).
		Order("name").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByTargetSpecies matches case-insensitively: hosts are entered free-form
// ("Rabbit", "rabbit") and must still pair up.
func (r *secondaryAntibodyRepo) GetByTargetSpecies(dbc dbctx.Context, species string) ([]*types.SecondaryAntibody, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.SecondaryAntibody{}
	if err := t.WithContext(dbc.Ctx).
		Where("LOWER(target_species) = LOWER(?)", species).
		Order("name").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *secondaryAntibodyRepo) Update(dbc dbctx.Context, row *types.SecondaryAntibody) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).
		Model(&types.SecondaryAntibody{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":           row.Name,
			"host":           row.Host,
			"target_species": row.TargetSpecies,
			"conjugate":      row.Conjugate,
			"applications":   row.Applications,
			"dilution":       row.Dilution,
			"storage_temp":   row.StorageTemp,
			"supplier":       row.Supplier,
			"lot_number":     row.LotNumber,
			"product_number": row.ProductNumber,
			"notes":          row.Notes,
		}).Error
}

func (r *secondaryAntibodyRepo) Delete(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Delete(&types.SecondaryAntibody{}, id).Error
}
