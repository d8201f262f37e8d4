package converter

import (
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
)

func RequestToResponse(request *entity.Request) *dto.RequestResponse {
	if request == nil {
		return nil
	}

	return &dto.RequestResponse{
		RequestID:         request.RequestID,
		HospitalID:        request.HospitalID,
		RequiredBloodType: request.RequiredBloodType,
		RequiredOrganType: request.RequiredOrganType,
		Status:            string(request.Status),
		CreatedAt:         request.CreatedAt,
		HospitalName:      request.Hospital.HospitalName,
		HospitalLocation:  request.Hospital.Location,
	}
}

func RequestsToResponses(requests []entity.Request) []dto.RequestResponse {
	responses := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *RequestToResponse(&requests[i]))
	}
	return responses
}
