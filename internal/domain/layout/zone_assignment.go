package layout

import "time"

// ZoneAssignment places an inventory item inside a schematic zone.
type ZoneAssignment struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ZoneID int64 `gorm:"column:zone_id;not null;uniqueIndex:idx_zone_drug" json:"zone_id"`
	DrugID int64 `gorm:"column:drug_id;not null;uniqueIndex:idx_zone_drug;index" json:"drug_id"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ZoneAssignment) TableName() string { return "zone_assignments" }
