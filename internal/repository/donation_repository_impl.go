package repository

import (
	"time"

	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	domainRepo "github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donationRepository struct{}

func NewDonationRepository() domainRepo.DonationRepository {
	return &donationRepository{}
}

func (r *donationRepository) Create(db *gorm.DB, donation *entity.Donation) error {
	return db.Create(donation).Error
}

func (r *donationRepository) FindByDonorID(db *gorm.DB, donorID uuid.UUID, limit int) ([]entity.Donation, error) {
	var donations []entity.Donation
	err := db.Preload("Hospital").
		Where("donor_id = ?", donorID).
		Order("fulfilled_at DESC").
		Limit(limit).
		Find(&donations).Error
	return donations, err
}

func (r *donationRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Donation{}).Count(&count).Error
	return count, err
}

func (r *donationRepository) CountSince(db *gorm.DB, since time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Donation{}).Where("fulfilled_at >= ?", since).Count(&count).Error
	return count, err
}
