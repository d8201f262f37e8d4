package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// RegisterRequest carries the base account fields plus the role-specific
// profile fields collected at sign-up. BloodType/OrganType/Location apply to
// donors; HospitalName and Location apply to hospitals.
type RegisterRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6"`
	FullName     string  `json:"full_name" validate:"required,min=2"`
	Role         string  `json:"role" validate:"required,oneof=donor hospital ngo admin"`
	BloodType    *string `json:"blood_type,omitempty" validate:"omitempty,max=5"`
	OrganType    *string `json:"organ_type,omitempty" validate:"omitempty,max=50"`
	Location     *string `json:"location,omitempty" validate:"omitempty,max=255"`
	HospitalName string  `json:"hospital_name,omitempty" validate:"required_if=Role hospital"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ConfirmEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is returned by register and login. Tokens is nil when the
// email-confirmation branch withholds the session until the address is
// verified.
type AuthResponse struct {
	User                 *UserResponse  `json:"user"`
	Tokens               *TokenResponse `json:"tokens,omitempty"`
	RequiresConfirmation bool           `json:"requires_confirmation,omitempty"`
}
