package layout

import "time"

// SchematicZone is one cell (or span of cells) on a schematic grid.
type SchematicZone struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	LayoutID int64  `gorm:"column:layout_id;not null;index" json:"layout_id"`
	ZoneName string `gorm:"column:zone_name;not null" json:"zone_name"`
	RowIndex int    `gorm:"column:row_index;not null" json:"row_index"`
	ColIndex int    `gorm:"column:col_index;not null" json:"col_index"`
	ColSpan  int    `gorm:"column:col_span;not null;default:1" json:"col_span"`
	RowSpan  int    `gorm:"column:row_span;not null;default:1" json:"row_span"`
	Color    string `gorm:"column:color;not null;default:'#e3f2fd'" json:"color"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (SchematicZone) TableName() string { return "schematic_zones" }
