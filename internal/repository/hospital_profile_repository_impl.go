package repository

import (
	"errors"

	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	domainRepo "github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type hospitalProfileRepository struct{}

func NewHospitalProfileRepository() domainRepo.HospitalProfileRepository {
	return &hospitalProfileRepository{}
}

func (r *hospitalProfileRepository) Create(db *gorm.DB, profile *entity.HospitalProfile) error {
	return db.Create(profile).Error
}

func (r *hospitalProfileRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (*entity.HospitalProfile, error) {
	var profile entity.HospitalProfile
	err := db.Where("hospital_id = ?", hospitalID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
