package database

import (
	"log"

	"eizer/internal/models"
)

func (s *Store) ListMachineLocations() ([]models.MachineLocation, error) {
	db := s.handle()
	if db == nil {
		log.Println("[database] cannot list machine locations: database not available")
		return []models.MachineLocation{}, nil
	}

	var locations []models.MachineLocation
	if err := db.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *Store) CreateMachineLocation(l *models.MachineLocation) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Create(l).Error
}
