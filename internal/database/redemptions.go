package database

import (
	"errors"
	"log"

	"eizer/internal/models"

	"gorm.io/gorm"
)

func (s *Store) ListRedemptionRequests() ([]models.RedemptionRequest, error) {
	db := s.handle()
	if db == nil {
		log.Println("[database] cannot list redemption requests: database not available")
		return []models.RedemptionRequest{}, nil
	}

	var requests []models.RedemptionRequest
	if err := db.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Store) GetRedemptionRequestByID(id uint) (*models.RedemptionRequest, error) {
	db := s.handle()
	if db == nil {
		return nil, nil
	}

	var request models.RedemptionRequest
	err := db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (s *Store) GetRedemptionRequestsByFundraiserID(fundraiserID uint) ([]models.RedemptionRequest, error) {
	db := s.handle()
	if db == nil {
		return []models.RedemptionRequest{}, nil
	}

	var requests []models.RedemptionRequest
	err := db.Where("fundraiser_id = ?", fundraiserID).
		Order("created_at desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *Store) CreateRedemptionRequest(r *models.RedemptionRequest) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Create(r).Error
}

func (s *Store) UpdateRedemptionRequest(id uint, data map[string]any) error {
	db := s.handle()
	if db == nil {
		return ErrUnavailable
	}
	return db.Model(&models.RedemptionRequest{}).Where("id = ?", id).Updates(data).Error
}
