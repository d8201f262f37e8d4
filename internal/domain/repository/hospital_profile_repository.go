package repository

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HospitalProfileRepository interface {
	Create(db *gorm.DB, profile *entity.HospitalProfile) error
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) (*entity.HospitalProfile, error)
}
