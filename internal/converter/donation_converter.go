package converter

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
)

func DonationToResponse(donation *entity.Donation) *dto.DonationResponse {
	if donation == nil {
		return nil
	}

	return &dto.DonationResponse{
		DonationID:  donation.DonationID,
		DonorID:     donation.DonorID,
		HospitalID:  donation.HospitalID,
		RequestID:   donation.RequestID,
		FulfilledAt: donation.FulfilledAt,
	}
}

func DonationsToHistoryResponses(donations []entity.Donation) []dto.DonationHistoryResponse {
	responses := make([]dto.DonationHistoryResponse, 0, len(donations))
	for _, d := range donations {
		responses = append(responses, dto.DonationHistoryResponse{
			DonationID:   d.DonationID,
			RequestID:    d.RequestID,
			FulfilledAt:  d.FulfilledAt,
			HospitalName: d.Hospital.HospitalName,
		})
	}
	return responses
}
