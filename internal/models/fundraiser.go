package models

import "time"

type FundraiserStatus string

const (
	FundraiserActive   FundraiserStatus = "active"
	FundraiserInactive FundraiserStatus = "inactive"
)

// Fundraiser is the profile of a person or organization raising funds,
// linked 1:1 to a User. Never deleted; soft-disabled via Status.
type Fundraiser struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	UserID          uint             `gorm:"index;not null" json:"userId"`
	CustomerPhoneID string           `gorm:"size:50" json:"customerPhoneId"`
	FirstName       string           `gorm:"size:100" json:"firstName"`
	LastName        string           `gorm:"size:100" json:"lastName"`
	IsFoundation    bool             `gorm:"default:false" json:"isFoundation"`
	IsCompany       bool             `gorm:"default:false" json:"isCompany"`
	HebrewName      string           `gorm:"type:text" json:"hebrewName"`
	Email           string           `gorm:"size:320;index;not null" json:"email"`
	Address2        string           `gorm:"type:text" json:"address2"`
	Address3        string           `gorm:"type:text" json:"address3"`
	Address4        string           `gorm:"type:text" json:"address4"`
	Status          FundraiserStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func (f Fundraiser) DisplayName() string {
	if f.FirstName == "" && f.LastName == "" {
		return f.Email
	}
	if f.FirstName == "" {
		return f.LastName
	}
	if f.LastName == "" {
		return f.FirstName
	}
	return f.FirstName + " " + f.LastName
}
