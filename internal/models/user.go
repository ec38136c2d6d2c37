package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User backs both authentication pathways: externally-provisioned identities
// (OpenID from an OAuth callback) and local password accounts, which store
// their username in OpenID so both share one unique identity key.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OpenID       string    `gorm:"column:open_id;uniqueIndex;size:64;not null" json:"openId"`
	Name         string    `gorm:"type:text" json:"name"`
	Email        string    `gorm:"size:320" json:"email"`
	LoginMethod  string    `gorm:"size:64" json:"loginMethod"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:user" json:"role"`
	Password     *string   `json:"-"` // pbkdf2 salt:hash, nil for external identities
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastSignedIn time.Time `json:"lastSignedIn"`
}
