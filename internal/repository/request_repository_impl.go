package repository

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	domainRepo "github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type requestRepository struct{}

func NewRequestRepository() domainRepo.RequestRepository {
	return &requestRepository{}
}

func (r *requestRepository) Create(db *gorm.DB, request *entity.Request) error {
	return db.Create(request).Error
}

func (r *requestRepository) FindPending(db *gorm.DB, limit int) ([]entity.Request, error) {
	var requests []entity.Request
	err := db.Preload("Hospital").
		Where("status = ?", entity.RequestStatusPending).
		Order("created_at DESC").
		Limit(limit).
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Request, error) {
	var requests []entity.Request
	err := db.Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) UpdateStatus(db *gorm.DB, requestID uuid.UUID, status entity.RequestStatus) error {
	return db.Model(&entity.Request{}).
		Where("request_id = ?", requestID).
		Update("status", status).Error
}

func (r *requestRepository) CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Request{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
