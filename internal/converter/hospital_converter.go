package converter

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
)

// HospitalProfileToResponse joins the user row with the hospital row. Returns
// nil when either side is missing, matching the dashboard's profile-or-nothing
// rendering.
func HospitalProfileToResponse(user *entity.User, profile *entity.HospitalProfile) *dto.HospitalProfileResponse {
	if user == nil || profile == nil {
		return nil
	}

	return &dto.HospitalProfileResponse{
		ID:           user.ID,
		Email:        user.Email,
		HospitalName: profile.HospitalName,
		Location:     profile.Location,
	}
}
