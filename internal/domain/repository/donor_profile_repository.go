package repository

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonorProfileRepository interface {
	// Upsert inserts or updates a profile keyed on donor_id. Used both at
	// registration and for the availability toggle.
	Upsert(db *gorm.DB, profile *entity.DonorProfile) error
	// UpsertAvailability inserts or updates a profile touching only the
	// availability column on conflict, leaving blood/organ/location intact.
	UpsertAvailability(db *gorm.DB, donorID uuid.UUID, availability bool) error
	FindByDonorID(db *gorm.DB, donorID uuid.UUID) (*entity.DonorProfile, error)
	// FindAvailable returns donors with availability = true, user embedded,
	// capped at limit. Not filtered by compatibility.
	FindAvailable(db *gorm.DB, limit int) ([]entity.DonorProfile, error)
	Count(db *gorm.DB) (int64, error)
	CountAvailable(db *gorm.DB) (int64, error)
}
