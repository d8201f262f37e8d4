package repository

import (
	"errors"

	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	domainRepo "github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type donorProfileRepository struct{}

func NewDonorProfileRepository() domainRepo.DonorProfileRepository {
	return &donorProfileRepository{}
}

func (r *donorProfileRepository) Upsert(db *gorm.DB, profile *entity.DonorProfile) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "donor_id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

func (r *donorProfileRepository) UpsertAvailability(db *gorm.DB, donorID uuid.UUID, availability bool) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "donor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"availability"}),
	}).Create(&entity.DonorProfile{DonorID: donorID, Availability: availability}).Error
}

func (r *donorProfileRepository) FindByDonorID(db *gorm.DB, donorID uuid.UUID) (*entity.DonorProfile, error) {
	var profile entity.DonorProfile
	err := db.Where("donor_id = ?", donorID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *donorProfileRepository) FindAvailable(db *gorm.DB, limit int) ([]entity.DonorProfile, error) {
	var profiles []entity.DonorProfile
	err := db.Preload("User").
		Where("availability = ?", true).
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}

func (r *donorProfileRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.DonorProfile{}).Count(&count).Error
	return count, err
}

func (r *donorProfileRepository) CountAvailable(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.DonorProfile{}).Where("availability = ?", true).Count(&count).Error
	return count, err
}
