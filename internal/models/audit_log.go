package models

import "time"

// AuditLog records admin mutations on domain entities.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	UserID uint `json:"userId"`

	Entity   string `gorm:"size:50;not null" json:"entity"` // "fundraiser", "machine", "redemption", "location"
	EntityID uint   `json:"entityId"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "update", "status_change"
	Details  string `gorm:"type:text" json:"details"`
}
