package layout

import "time"

// RegionAssignment places an inventory item inside a photo region.
// A drug appears at most once per region; re-assigning is a no-op.
type RegionAssignment struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	RegionID int64 `gorm:"column:region_id;not null;uniqueIndex:idx_region_drug" json:"region_id"`
	DrugID   int64 `gorm:"column:drug_id;not null;uniqueIndex:idx_region_drug;index" json:"drug_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (RegionAssignment) TableName() string { return "region_assignments" }
