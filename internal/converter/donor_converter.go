package converter

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
)

// DonorProfileToResponse joins the user row with the donor row. A nil profile
// yields the incomplete-profile shape: null attributes, availability true.
func DonorProfileToResponse(user *entity.User, profile *entity.DonorProfile) *dto.DonorProfileResponse {
	if user == nil {
		return nil
	}

	resp := &dto.DonorProfileResponse{
		ID:           user.ID,
		FullName:     user.FullName,
		Email:        user.Email,
		Availability: true,
	}

	if profile != nil {
		resp.BloodType = profile.BloodType
		resp.OrganType = profile.OrganType
		resp.Location = profile.Location
		resp.Availability = profile.Availability
		resp.ProfileComplete = true
	}

	return resp
}

// DonorProfilesToResponses shapes the available-donor panel. A donor with a
// missing user row falls back to an anonymous display name.
func DonorProfilesToResponses(profiles []entity.DonorProfile) []dto.AvailableDonorResponse {
	responses := make([]dto.AvailableDonorResponse, 0, len(profiles))
	for _, p := range profiles {
		fullName := p.User.FullName
		if fullName == "" {
			fullName = "Anonymous"
		}
		responses = append(responses, dto.AvailableDonorResponse{
			DonorID:      p.DonorID,
			FullName:     fullName,
			BloodType:    p.BloodType,
			OrganType:    p.OrganType,
			Location:     p.Location,
			Availability: p.Availability,
		})
	}
	return responses
}
