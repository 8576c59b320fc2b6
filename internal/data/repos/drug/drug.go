package drug

import (
	"gorm.io/gorm"

	types "github.com/yungbote/labstock-backend/internal/domain"
	"github.com/yungbote/labstock-backend/internal/pkg/dbctx"
	"github.com/yungbote/labstock-backend/internal/platform/logger"
)

// CellCount is the number of items stored in one grid cell.
type CellCount struct {
	StorageSection string `json:"storage_section"`
	StorageRow     int    `json:"storage_row"`
	StorageColumn  int    `json:"storage_column"`
	Count          int64  `json:"count"`
}

type DrugRepo interface {
	Create(dbc dbctx.Context, row *types.Drug) (*types.Drug, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Drug, error)
	List(dbc dbctx.Context) ([]*types.Drug, error)
	ListByTemp(dbc dbctx.Context, tempKey string) ([]*types.Drug, error)
	Search(dbc dbctx.Context, term, tempKey string) ([]*types.Drug, error)
	GetByLocation(dbc dbctx.Context, tempKey, section string, row, col int) ([]*types.Drug, error)
	Update(dbc dbctx.Context, row *types.Drug) error
	Delete(dbc dbctx.Context, id int64) error
	CountByName(dbc dbctx.Context, name string) (int64, error)
	CellCounts(dbc dbctx.Context, tempKey string) ([]CellCount, error)
}

type drugRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDrugRepo(db *gorm.DB, baseLog *logger.Logger) DrugRepo {
	return &drugRepo{
		db:  db,
		log: baseLog.With("repo", "DrugRepo"),
	}
}

func (r *drugRepo) Create(dbc dbctx.Context, row *types.Drug) (*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	if err := t.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *drugRepo) GetByID(dbc dbctx.Context, id int64) (*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var out []*types.Drug
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

func (r *drugRepo) List(dbc dbctx.Context) ([]*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Drug{}
	if err := t.WithContext(dbc.Ctx).
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *drugRepo) ListByTemp(dbc dbctx.Context, tempKey string) ([]*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Drug{}
	if err := t.WithContext(dbc.Ctx).
		Where("storage_temp = ?", tempKey).
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *drugRepo) Search(dbc dbctx.Context, term, tempKey string) ([]*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	pattern := "%" + term + "%"
	q := t.WithContext(dbc.Ctx).
		Where("(drug_name LIKE ? OR supplier LIKE ? OR notes LIKE ?)", pattern, pattern, pattern)
	if tempKey != "" {
		q = q.Where("storage_temp = ?", tempKey)
	}
	out := []*types.Drug{}
	if err := q.Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *drugRepo) GetByLocation(dbc dbctx.Context, tempKey, section string, row, col int) ([]*types.Drug, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []*types.Drug{}
	if err := t.WithContext(dbc.Ctx).
		Where("storage_temp = ?", tempKey).
		Where("storage_section = ?", section).
		Where("storage_row = ?", row).
		Where("storage_column = ?", col).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *drugRepo) Update(dbc dbctx.Context, row *types.Drug) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	// Map-based Updates writes every business column, so clearing a storage
	// location back to NULL round-trips correctly without touching created_at.
	return t.WithContext(dbc.Ctx).
		Model(&types.Drug{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"drug_name":           row.DrugName,
			"stock_concentration": row.StockConcentration,
			"stock_unit":          row.StockUnit,
			"storage_temp":        row.StorageTemp,
			"supplier":            row.Supplier,
			"preparation_date":    row.PreparationDate,
			"notes":               row.Notes,
			"solvents":            row.Solvents,
			"solubility":          row.Solubility,
			"light_sensitive":     row.LightSensitive,
			"preparation_time":    row.PreparationTime,
			"expiration_time":     row.ExpirationTime,
			"sterility":           row.Sterility,
			"lot_number":          row.LotNumber,
			"product_number":      row.ProductNumber,
			"storage_section":     row.StorageSection,
			"storage_row":         row.StorageRow,
			"storage_column":      row.StorageColumn,
		}).Error
}

func (r *drugRepo) Delete(dbc dbctx.Context, id int64) error {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx).Delete(&types.Drug{}, id).Error
}

func (r *drugRepo) CountByName(dbc dbctx.Context, name string) (int64, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	var count int64
	if err := t.WithContext(dbc.Ctx).
		Model(&types.Drug{}).
		Where("drug_name = ?", name).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *drugRepo) CellCounts(dbc dbctx.Context, tempKey string) ([]CellCount, error) {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	out := []CellCount{}
	if err := t.WithContext(dbc.Ctx).
		Model(&types.Drug{}).
		Select("storage_section, storage_row, storage_column, COUNT(*) AS count").
		Where("storage_temp = ?", tempKey).
		Where("storage_section IS NOT NULL").
		Where("storage_row IS NOT NULL").
		Where("storage_column IS NOT NULL").
		Group("storage_section, storage_row, storage_column").
		Scan(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
