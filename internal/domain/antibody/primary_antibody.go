package antibody

import "time"

// PrimaryAntibody is a primary in the antibody catalog. Host drives
// secondary matching: a compatible secondary is raised against the
// primary's host species.
type PrimaryAntibody struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"column:name;not null;index" json:"name"`
	Host          string `gorm:"column:host;index" json:"host"`
	Clonality     string `gorm:"column:clonality" json:"clonality"`
	Reactivity    string `gorm:"column:reactivity" json:"reactivity"`
	Applications  string `gorm:"column:applications" json:"applications"`
	Dilution      string `gorm:"column:dilution" json:"dilution"`
	StorageTemp   string `gorm:"column:storage_temp" json:"storage_temp"`
	Supplier      string `gorm:"column:supplier" json:"supplier"`
	LotNumber     string `gorm:"column:lot_number" json:"lot_number"`
	ProductNumber string `gorm:"column:product_number" json:"product_number"`
	Notes         string `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PrimaryAntibody) TableName() string { return "primary_antibodies" }
