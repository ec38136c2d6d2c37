package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type RedemptionStatus string

const (
	RedemptionPending  RedemptionStatus = "pending"
	RedemptionApproved RedemptionStatus = "approved"
	RedemptionReleased RedemptionStatus = "released"
	RedemptionRejected RedemptionStatus = "rejected"
)

// Amount carries the DECIMAL(10,2) redemption amount. It always renders
// JSON with the column's scale, so "100.00" does not come back as "100"
// after the decimal library trims trailing zeros.
type Amount struct {
	decimal.Decimal
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.StringFixed(2) + `"`), nil
}

// RedemptionRequest is a fundraiser's ask to cash out processed funds.
// Created only as pending; status is moved by admins.
type RedemptionRequest struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	FundraiserID uint             `gorm:"index;not null" json:"fundraiserId"`
	Amount       Amount           `gorm:"type:decimal(10,2);not null" json:"amount"`
	CheckNumber  string           `gorm:"size:50" json:"checkNumber"`
	CheckName    string           `gorm:"size:100" json:"checkName"`
	CheckMemo    string           `gorm:"type:text" json:"checkMemo"`
	Status       RedemptionStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	Notes        string           `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func ValidRedemptionStatus(s RedemptionStatus) bool {
	switch s {
	case RedemptionPending, RedemptionApproved, RedemptionReleased, RedemptionRejected:
		return true
	}
	return false
}

// AllowedRedemptionTransition is only consulted when strict transitions are
// enabled; the legacy behavior allows any status to follow any other.
func AllowedRedemptionTransition(from, to RedemptionStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case RedemptionPending:
		return to == RedemptionApproved || to == RedemptionRejected
	case RedemptionApproved:
		return to == RedemptionReleased || to == RedemptionRejected
	case RedemptionRejected:
		return to == RedemptionPending
	default:
		return false
	}
}
