package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donation records a donor fulfilling a specific request. Rows are insert-only
// and never updated or deleted. There is no uniqueness constraint on
// RequestID: two donors racing on the same request can both leave a row.
type Donation struct {
	DonationID  uuid.UUID `gorm:"column:donation_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"donation_id"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"donor_id"`
	HospitalID  uuid.UUID `gorm:"type:uuid;not null;index" json:"hospital_id"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;index" json:"request_id"`
	FulfilledAt time.Time `gorm:"autoCreateTime" json:"fulfilled_at"`

	// Relationships
	Donor    DonorProfile    `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	Hospital HospitalProfile `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Request  Request         `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}

func (Donation) TableName() string {
	return "donations"
}
