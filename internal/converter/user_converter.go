package converter

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
)

// UserToResponse converts a User entity to its DTO. Role is filled from the
// preloaded relation when present; callers that resolve the role elsewhere
// overwrite it.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
