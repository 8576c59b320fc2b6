package inventory

import "time"

// Drug is a single inventory record: a stock solution or reagent and,
// optionally, where it lives inside a fridge grid. Concentration and the
// storage coordinates are nullable so partially filled records survive
// round-trips unchanged.
type Drug struct {
	ID                 int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	DrugName           string   `gorm:"column:drug_name;not null;index" json:"drug_name"`
	StockConcentration *float64 `gorm:"column:stock_concentration" json:"stock_concentration"`
	StockUnit          string   `gorm:"column:stock_unit" json:"stock_unit"`
	StorageTemp        string   `gorm:"column:storage_temp;index" json:"storage_temp"`
	Supplier           string   `gorm:"column:supplier" json:"supplier"`
	PreparationDate    string   `gorm:"column:preparation_date" json:"preparation_date"`
	Notes              string   `gorm:"column:notes" json:"notes"`
	Solvents           string   `gorm:"column:solvents" json:"solvents"`
	Solubility         string   `gorm:"column:solubility" json:"solubility"`
	LightSensitive     string   `gorm:"column:light_sensitive" json:"light_sensitive"`
	PreparationTime    string   `gorm:"column:preparation_time" json:"preparation_time"`
	ExpirationTime     string   `gorm:"column:expiration_time" json:"expiration_time"`
	Sterility          string   `gorm:"column:sterility" json:"sterility"`
	LotNumber          string   `gorm:"column:lot_number" json:"lot_number"`
	ProductNumber      string   `gorm:"column:product_number" json:"product_number"`

	StorageSection *string `gorm:"column:storage_section;index" json:"storage_section"`
	StorageRow     *int    `gorm:"column:storage_row" json:"storage_row"`
	StorageColumn  *int    `gorm:"column:storage_column" json:"storage_column"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Drug) TableName() string { return "drugs" }
