package entity

import "github.com/google/uuid"

// HospitalProfile represents hospital-specific profile data, keyed by the
// owning user's ID. Created at registration and read-only thereafter.
type HospitalProfile struct {
	HospitalID   uuid.UUID `gorm:"column:hospital_id;type:uuid;primaryKey" json:"hospital_id"`
	HospitalName string    `gorm:"type:varchar(255);not null" json:"hospital_name"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`

	// Relationships
	User     User      `gorm:"foreignKey:HospitalID" json:"user,omitempty"`
	Requests []Request `gorm:"foreignKey:HospitalID" json:"requests,omitempty"`
}

func (HospitalProfile) TableName() string {
	return "hospitals"
}
