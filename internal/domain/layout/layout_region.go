package layout

import "time"

// LayoutRegion is a rectangle drawn over a layout photo, in pixel
// coordinates of the stored image.
type LayoutRegion struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	LayoutID   int64  `gorm:"column:layout_id;not null;index" json:"layout_id"`
	RegionName string `gorm:"column:region_name;not null" json:"region_name"`
	X          int    `gorm:"column:x;not null" json:"x"`
	Y          int    `gorm:"column:y;not null" json:"y"`
	Width      int    `gorm:"column:width;not null" json:"width"`
	Height     int    `gorm:"column:height;not null" json:"height"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (LayoutRegion) TableName() string { return "layout_regions" }
