package database

import (
	"errors"
	"log"

	"eizer/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListMachines() ([]models.CreditCardMachine, error) {
	db := s.handle()
	if db == nil {
		log.Println("[database] cannot list machines: database not available")
		return []models.CreditCardMachine{}, nil
	}

	var machines []models.CreditCardMachine
	if err := db.Order("created_at desc").Find(&machines).Error; err != nil {
		return nil, err
	}
	return machines, nil
}

func (s *Store) GetMachineByID(id uint) (*models.CreditCardMachine, error) {
	db := s.handle()
	if db == nil {
		return nil, nil
	}

	var machine models.CreditCardMachine
	err := db.First(&machine, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &machine, nil
}

func (s *Store) GetMachinesByFundraiserID(fundraiserID uint) ([]models.CreditCardMachine, error) {
	db := s.handle()
	if db == nil {
		return []models.CreditCardMachine{}, nil
	}

	var machines []models.CreditCardMachine
	if err := db.Where("fundraiser_id = ?", fundraiserID).Find(&machines).Error; err != nil {
		return nil, err
	}
	return machines, nil
}

func (s *Store) CreateMachine(m *models.CreditCardMachine) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Create(m).Error
}

// UpdateMachine applies a partial update. Nil values in the map clear the
// column (unassigning a fundraiser, dropping a batch date); absent keys
// leave it untouched.
func (s *Store) UpdateMachine(id uint, data map[string]any) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Model(&models.CreditCardMachine{}).Where("id = ?", id).Updates(data).Error
}
