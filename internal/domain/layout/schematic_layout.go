package layout

import "time"

// SchematicLayout is a drawn (not photographed) fridge layout. Older rows
// are keyed only by temp_key/section; newer ones can point at a concrete
// fridge, so FridgeID stays nullable.
type SchematicLayout struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TempKey        string `gorm:"column:temp_key;not null;index" json:"temp_key"`
	Section        string `gorm:"column:section;not null" json:"section"`
	LayoutName     string `gorm:"column:layout_name" json:"layout_name"`
	FridgeID       *int64 `gorm:"column:fridge_id;index" json:"fridge_id"`
	ReferencePhoto string `gorm:"column:reference_photo" json:"reference_photo"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SchematicLayout) TableName() string { return "fridge_schematic_layouts" }
