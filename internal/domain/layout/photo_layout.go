package layout

import "time"

// PhotoLayout binds an uploaded fridge photograph to one temp/section pair.
// Re-uploading for the same pair replaces the photo instead of stacking
// layouts, so (temp_key, section) carries a unique index.
type PhotoLayout struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TempKey       string `gorm:"column:temp_key;not null;uniqueIndex:idx_photo_layout_slot" json:"temp_key"`
	Section       string `gorm:"column:section;not null;uniqueIndex:idx_photo_layout_slot" json:"section"`
	PhotoFilename string `gorm:"column:photo_filename;not null" json:"photo_filename"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PhotoLayout) TableName() string { return "fridge_photo_layouts" }
