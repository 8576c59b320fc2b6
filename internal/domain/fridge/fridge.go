package fridge

import "time"

// Fridge is a user-defined physical unit (e.g. "Lab B -20 #2"), distinct
// from the per-temperature grid configuration it shares with its peers.
type Fridge struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;not null" json:"name"`
	TempType string `gorm:"column:temp_type;not null;index" json:"temp_type"`
	Location string `gorm:"column:location" json:"location"`
	Notes    string `gorm:"column:notes" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Fridge) TableName() string { return "fridges" }
