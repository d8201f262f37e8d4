package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a donation request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusFulfilled RequestStatus = "fulfilled"
)

// Request represents a hospital's ask for a blood or organ type. A request is
// expected to carry exactly one of the two requirement fields, but nothing
// enforces that; both-set and both-unset rows are accepted as-is.
type Request struct {
	RequestID         uuid.UUID     `gorm:"column:request_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	HospitalID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"hospital_id"`
	RequiredBloodType *string       `gorm:"type:varchar(5)" json:"required_blood_type,omitempty"`
	RequiredOrganType *string       `gorm:"type:varchar(50)" json:"required_organ_type,omitempty"`
	Status            RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Hospital  HospitalProfile `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Donations []Donation      `gorm:"foreignKey:RequestID" json:"donations,omitempty"`
}

func (Request) TableName() string {
	return "requests"
}

// IsPending checks if the request is still open
func (r *Request) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsFulfilled checks if the request has been answered by a donor
func (r *Request) IsFulfilled() bool {
	return r.Status == RequestStatusFulfilled
}

// Fulfill transitions the request to fulfilled
func (r *Request) Fulfill() {
	r.Status = RequestStatusFulfilled
}

// MatchesDonor reports whether this request shows up in the given donor's
// feed. An unset requirement satisfies its own clause outright, and the two
// clauses are joined with OR: a request is hidden from a donor only when both
// requirements are set and neither matches the donor's attributes. An unset
// donor attribute never satisfies a set requirement.
func (r *Request) MatchesDonor(d *DonorProfile) bool {
	bloodOK := r.RequiredBloodType == nil ||
		(d.BloodType != nil && *r.RequiredBloodType == *d.BloodType)
	organOK := r.RequiredOrganType == nil ||
		(d.OrganType != nil && *r.RequiredOrganType == *d.OrganType)
	return bloodOK || organOK
}

// FilterCompatible returns the subset of requests visible to the donor,
// preserving input order. The input is expected to be the already-capped
// recent pending list; the cap is applied before this filter, not after.
func FilterCompatible(requests []Request, d *DonorProfile) []Request {
	compatible := make([]Request, 0, len(requests))
	for _, r := range requests {
		if r.MatchesDonor(d) {
			compatible = append(compatible, r)
		}
	}
	return compatible
}
