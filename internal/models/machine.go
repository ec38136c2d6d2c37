package models

import "time"

type MachineStatus string

const (
	MachineAvailable MachineStatus = "available"
	MachineAssigned  MachineStatus = "assigned"
	MachineReturned  MachineStatus = "returned"
	MachineInactive  MachineStatus = "inactive"
)

// CreditCardMachine is a lendable payment-processing device. FundraiserID is
// nil while the machine is unassigned. The data layer enforces machine number
// uniqueness but imposes no status transition rules.
type CreditCardMachine struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	FundraiserID  *uint         `gorm:"index" json:"fundraiserId"`
	MachineName   string        `gorm:"size:100;not null" json:"machineName"`
	MachineNumber string        `gorm:"size:50;uniqueIndex;not null" json:"machineNumber"`
	BatchNumber   *string       `gorm:"size:50" json:"batchNumber"`
	LocationID    *uint         `json:"locationId"`
	Status        MachineStatus `gorm:"type:varchar(20);not null;default:available;index" json:"status"`
	BatchDate     *time.Time    `json:"batchDate"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func ValidMachineStatus(s MachineStatus) bool {
	switch s {
	case MachineAvailable, MachineAssigned, MachineReturned, MachineInactive:
		return true
	}
	return false
}
