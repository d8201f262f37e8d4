package entity

import "github.com/google/uuid"

// DonorProfile represents donor-specific profile data, keyed by the owning
// user's ID. Availability is the only field the donor mutates after creation;
// blood/organ/location may be absent until the donor completes the profile.
type DonorProfile struct {
	DonorID      uuid.UUID `gorm:"column:donor_id;type:uuid;primaryKey" json:"donor_id"`
	BloodType    *string   `gorm:"type:varchar(5);index" json:"blood_type,omitempty"`
	OrganType    *string   `gorm:"type:varchar(50);index" json:"organ_type,omitempty"`
	Location     *string   `gorm:"type:varchar(255)" json:"location,omitempty"`
	Availability bool      `gorm:"not null;default:true;index" json:"availability"`

	// Relationships
	User      User       `gorm:"foreignKey:DonorID" json:"user,omitempty"`
	Donations []Donation `gorm:"foreignKey:DonorID" json:"donations,omitempty"`
}

func (DonorProfile) TableName() string {
	return "donors"
}
