package repository

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository persists users. The *gorm.DB parameter lets callers run
// operations inside an ambient transaction handle.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	CountByRole(db *gorm.DB, roleID int) (int64, error)
}
