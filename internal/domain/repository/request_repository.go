package repository

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(db *gorm.DB, request *entity.Request) error
	// FindPending returns pending requests most-recent-first with the hospital
	// embedded, capped at limit. Compatibility filtering happens in memory
	// after this cap.
	FindPending(db *gorm.DB, limit int) ([]entity.Request, error)
	FindByHospitalID(db *gorm.DB, hospitalID uuid.UUID) ([]entity.Request, error)
	// UpdateStatus updates a single request's status by primary key. No
	// current-status precondition is applied.
	UpdateStatus(db *gorm.DB, requestID uuid.UUID, status entity.RequestStatus) error
	CountByStatus(db *gorm.DB, status entity.RequestStatus) (int64, error)
}
