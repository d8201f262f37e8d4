package dto

import (
	"time"

	"github.com/google/uuid"
)

// DonorProfileResponse joins the user row with the donor row. Blood, organ
// and location stay null until the donor completes the profile; availability
// defaults to true for a profile-less donor.
type DonorProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	BloodType    *string   `json:"blood_type"`
	OrganType    *string   `json:"organ_type"`
	Location     *string   `json:"location"`
	Availability bool      `json:"availability"`
	// ProfileComplete is false when no donor row exists yet; the client
	// renders the "complete your profile" placeholder off this.
	ProfileComplete bool `json:"profile_complete"`
}

type UpdateAvailabilityRequest struct {
	Availability *bool `json:"availability" validate:"required"`
}

type RequestResponse struct {
	RequestID         uuid.UUID `json:"request_id"`
	HospitalID        uuid.UUID `json:"hospital_id"`
	RequiredBloodType *string   `json:"required_blood_type"`
	RequiredOrganType *string   `json:"required_organ_type"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	HospitalName      string    `json:"hospital_name,omitempty"`
	HospitalLocation  string    `json:"hospital_location,omitempty"`
}

type DonationResponse struct {
	DonationID  uuid.UUID `json:"donation_id"`
	DonorID     uuid.UUID `json:"donor_id"`
	HospitalID  uuid.UUID `json:"hospital_id"`
	RequestID   uuid.UUID `json:"request_id"`
	FulfilledAt time.Time `json:"fulfilled_at"`
}

type DonationHistoryResponse struct {
	DonationID   uuid.UUID `json:"donation_id"`
	RequestID    uuid.UUID `json:"request_id"`
	FulfilledAt  time.Time `json:"fulfilled_at"`
	HospitalName string    `json:"hospital_name,omitempty"`
}

type DonorDashboardResponse struct {
	Profile        *DonorProfileResponse     `json:"profile"`
	UrgentRequests []RequestResponse         `json:"urgent_requests"`
	History        []DonationHistoryResponse `json:"history"`
}
