package models

import "time"

// MachineLocation is a named physical site machines can be placed at.
// Admin-created, read by everyone; no update or delete path is exposed.
type MachineLocation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
