package repository

import (
	"time"

	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonationRepository interface {
	Create(db *gorm.DB, donation *entity.Donation) error
	// FindByDonorID returns the donor's history most-recent-first with the
	// hospital embedded, capped at limit.
	FindByDonorID(db *gorm.DB, donorID uuid.UUID, limit int) ([]entity.Donation, error)
	Count(db *gorm.DB) (int64, error)
	CountSince(db *gorm.DB, since time.Time) (int64, error)
}
