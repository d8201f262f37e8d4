package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event names carried on the notification queue.
const (
	EventRequestCreated         = "request.created"
	EventDonationRecorded       = "donation.recorded"
	EventPasswordResetRequested = "password.reset.requested"
)

// RequestCreatedEvent announces a new pending request so downstream
// consumers can notify matching donors.
type RequestCreatedEvent struct {
	RequestID         uuid.UUID `json:"request_id"`
	HospitalID        uuid.UUID `json:"hospital_id"`
	RequiredBloodType *string   `json:"required_blood_type,omitempty"`
	RequiredOrganType *string   `json:"required_organ_type,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// DonationRecordedEvent announces a donor's response to a request.
type DonationRecordedEvent struct {
	DonationID  uuid.UUID `json:"donation_id"`
	DonorID     uuid.UUID `json:"donor_id"`
	HospitalID  uuid.UUID `json:"hospital_id"`
	RequestID   uuid.UUID `json:"request_id"`
	FulfilledAt time.Time `json:"fulfilled_at"`
}

// PasswordResetRequestedEvent hands the reset token to the mailer consumer.
// The token is never returned to the HTTP caller.
type PasswordResetRequestedEvent struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher relays domain events to the notification queue. Publishing
// is best-effort: callers log failures and carry on, so implementations must
// never block a request path indefinitely.
type EventPublisher interface {
	PublishRequestCreated(ctx context.Context, evt RequestCreatedEvent) error
	PublishDonationRecorded(ctx context.Context, evt DonationRecordedEvent) error
	PublishPasswordResetRequested(ctx context.Context, evt PasswordResetRequestedEvent) error
}
