package antibody

import "time"

// SecondaryAntibody is a secondary in the antibody catalog. TargetSpecies
// names the species the secondary recognizes and is matched against
// primary hosts case-insensitively.
type SecondaryAntibody struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string `gorm:"column:name;not null;index" json:"name"`
	Host          string `gorm:"column:host" json:"host"`
	TargetSpecies string `gorm:"column:target_species;index" json:"target_species"`
	Conjugate     string `gorm:"column:conjugate" json:"conjugate"`
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

func (SecondaryAntibody) TableName() string { return "secondary_antibodies" }
