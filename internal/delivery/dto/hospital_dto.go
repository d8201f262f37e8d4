package dto

import "github.com/google/uuid"

type HospitalProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	HospitalName string    `json:"hospital_name"`
	Location     string    `json:"location"`
}

// CreateRequestRequest is expected to carry exactly one of the two fields,
// but that expectation is not validated; both-set and both-unset bodies are
// accepted.
type CreateRequestRequest struct {
	RequiredBloodType *string `json:"required_blood_type,omitempty" validate:"omitempty,max=5"`
	RequiredOrganType *string `json:"required_organ_type,omitempty" validate:"omitempty,max=50"`
}

type AvailableDonorResponse struct {
	DonorID      uuid.UUID `json:"donor_id"`
	FullName     string    `json:"full_name"`
	BloodType    *string   `json:"blood_type"`
	OrganType    *string   `json:"organ_type"`
	Location     *string   `json:"location"`
	Availability bool      `json:"availability"`
}

// HospitalStats are derived from the request list. CompletedToday counts
// fulfilled requests by creation date; TotalDonors counts the capped
// available-donor panel.
type HospitalStats struct {
	ActiveRequests int `json:"active_requests"`
	CompletedToday int `json:"completed_today"`
	TotalDonors    int `json:"total_donors"`
}

type HospitalDashboardResponse struct {
	Profile         *HospitalProfileResponse `json:"profile"`
	ActiveRequests  []RequestResponse        `json:"active_requests"`
	AvailableDonors []AvailableDonorResponse `json:"available_donors"`
	Stats           HospitalStats            `json:"stats"`
}
