package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	uc := &mockAuthUsecase{
		registerFn: func(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				User:   &dto.UserResponse{ID: uuid.New(), Email: req.Email, FullName: req.FullName, Role: req.Role},
				Tokens: &dto.TokenResponse{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 900},
			}, nil
		},
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":     "donor@example.com",
		"password":  "secret123",
		"full_name": "Test Donor",
		"role":      "donor",
	})
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, testValidator(), nil)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"password": "secret123", "full_name": "X Y", "role": "donor"}},
		{"bad email", map[string]string{"email": "nope", "password": "secret123", "full_name": "X Y", "role": "donor"}},
		{"short password", map[string]string{"email": "a@b.com", "password": "123", "full_name": "X Y", "role": "donor"}},
		{"unknown role", map[string]string{"email": "a@b.com", "password": "secret123", "full_name": "X Y", "role": "villain"}},
		{"hospital without name", map[string]string{"email": "a@b.com", "password": "secret123", "full_name": "X Y", "role": "hospital"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodPost, "/api/v1/auth/register", tt.body)
			rec := httptest.NewRecorder()
			h.Register(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			envelope := decodeEnvelope(t, rec)
			assert.False(t, envelope.Success)
		})
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, testValidator(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil)
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	uc := &mockAuthUsecase{
		loginFn: func(req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				User:   &dto.UserResponse{ID: uuid.New(), Email: req.Email, Role: "hospital"},
				Tokens: &dto.TokenResponse{AccessToken: "acc", RefreshToken: "ref"},
			}, nil
		},
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "hospital@example.com",
		"password": "secret123",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &mockAuthUsecase{
		loginFn: func(req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "donor@example.com",
		"password": "wrong1",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_RoleNotFound(t *testing.T) {
	uc := &mockAuthUsecase{
		loginFn: func(req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, usecase.ErrRoleNotFound
		},
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "orphan@example.com",
		"password": "secret123",
	})
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	userID := uuid.New()
	uc := &mockAuthUsecase{
		getCurrentUserFn: func(id uuid.UUID) (*dto.UserResponse, error) {
			require.Equal(t, userID, id)
			return &dto.UserResponse{ID: id, Email: "me@example.com", Role: "donor"}, nil
		},
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), userID)
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_GetCurrentUser_NoContext(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, testValidator(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_RefreshToken_Revoked(t *testing.T) {
	uc := &mockAuthUsecase{
		refreshTokenFn: func(req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrTokenRevoked
		},
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/refresh-token", map[string]string{
		"refresh_token": "some-token",
	})
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The reset endpoint answers identically for known and unknown emails.
func TestAuthHandler_ResetPassword(t *testing.T) {
	uc := &mockAuthUsecase{
		requestPasswordResetFn: func(email string) error { return nil },
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/reset-password", map[string]string{
		"email": "whoever@example.com",
	})
	rec := httptest.NewRecorder()
	h.ResetPassword(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ConfirmEmail_InvalidToken(t *testing.T) {
	uc := &mockAuthUsecase{
		confirmEmailFn: func(token string) error { return usecase.ErrInvalidToken },
	}
	h := NewAuthHandler(uc, testValidator(), nil)

	req := jsonRequest(t, http.MethodPost, "/api/v1/auth/confirm", map[string]string{
		"token": "expired",
	})
	rec := httptest.NewRecorder()
	h.ConfirmEmail(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
