package database

import (
	"errors"
	"log"

	"eizer/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListFundraisers() ([]models.Fundraiser, error) {
	db := s.handle()
	if db == nil {
		log.Println("[database] cannot list fundraisers: database not available")
		return []models.Fundraiser{}, nil
	}

	var fundraisers []models.Fundraiser
	if err := db.Order("created_at desc").Find(&fundraisers).Error; err != nil {
		return nil, err
	}
	return fundraisers, nil
}

func (s *Store) GetFundraiserByID(id uint) (*models.Fundraiser, error) {
	db := s.handle()
	if db == nil {
		return nil, nil
	}

	var fundraiser models.Fundraiser
	err := db.First(&fundraiser, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fundraiser, nil
}

func (s *Store) GetFundraiserByUserID(userID uint) (*models.Fundraiser, error) {
	db := s.handle()
	if db == nil {
		return nil, nil
	}

	var fundraiser models.Fundraiser
	err := db.Where("user_id = ?", userID).First(&fundraiser).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fundraiser, nil
}

func (s *Store) CreateFundraiser(f *models.Fundraiser) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Create(f).Error
}

// UpdateFundraiser applies a partial update; data maps column names to new
// values, so fields absent from the map stay untouched. Input is trusted:
// validation happens at the service boundary.
func (s *Store) UpdateFundraiser(id uint, data map[string]any) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Model(&models.Fundraiser{}).Where("id = ?", id).Updates(data).Error
}
