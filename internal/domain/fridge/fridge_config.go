package fridge

// FridgeConfig describes the storage grid for one temperature class.
// Body and door are independent grids; -80C freezers keep door dimensions
// at zero because they have no door shelving.
type FridgeConfig struct {
	// No column defaults: -80C legitimately stores zero door dimensions,
	// and gorm skips zero values for defaulted columns on insert.
	TempKey     string `gorm:"column:temp_key;primaryKey" json:"temp_key"`
	BodyRows    int    `gorm:"column:body_rows;not null" json:"body_rows"`
	BodyColumns int    `gorm:"column:body_columns;not null" json:"body_columns"`
	DoorRows    int    `gorm:"column:door_rows;not null" json:"door_rows"`
	DoorColumns int    `gorm:"column:door_columns;not null" json:"door_columns"`
}

func (FridgeConfig) TableName() string { return "fridge_config" }
