package database

import (
	"log"

	"eizer/internal/models"
)

// CreateAuditLog records an admin mutation. Best effort: a failed write is
// logged and never propagated to the caller.
func (s *Store) CreateAuditLog(userID uint, entity string, entityID uint, action, details string) {
	db := s.handle()
	if db == nil {
		return
	}
	record := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := db.Create(&record).Error; err != nil {
		log.Printf("[database] failed to write audit log: %v", err)
	}
}

func (s *Store) ListAuditLogs() ([]models.AuditLog, error) {
	db := s.handle()
	if db == nil {
		return []models.AuditLog{}, nil
	}

	var logs []models.AuditLog
	if err := db.Order("created_at desc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
