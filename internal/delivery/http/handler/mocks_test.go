package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/middleware"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
	"github.com/Paarth01/lifelink-ui-connect/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testValidator() *validator.CustomValidator {
	return validator.NewValidator()
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUser(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

// --- Usecase mocks ---

type mockAuthUsecase struct {
	registerFn             func(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFn                func(req *dto.LoginRequest) (*dto.AuthResponse, error)
	logoutFn               func(accessTokenID, refreshTokenID string) error
	refreshTokenFn         func(req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	getCurrentUserFn       func(userID uuid.UUID) (*dto.UserResponse, error)
	confirmEmailFn         func(token string) error
	requestPasswordResetFn func(email string) error
	confirmPasswordResetFn func(token, newPassword string) error
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return m.registerFn(req)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return m.loginFn(req)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return m.logoutFn(accessTokenID, refreshTokenID)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return m.refreshTokenFn(req)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return m.getCurrentUserFn(userID)
}

func (m *mockAuthUsecase) ConfirmEmail(ctx context.Context, token string) error {
	return m.confirmEmailFn(token)
}

func (m *mockAuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFn(email)
}

func (m *mockAuthUsecase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return m.confirmPasswordResetFn(token, newPassword)
}

type mockDonorUsecase struct {
	getDashboardFn       func() (*dto.DonorDashboardResponse, error)
	updateAvailabilityFn func(availability bool) error
	respondToRequestFn   func(requestID uuid.UUID) (*dto.DonationResponse, error)
}

func (m *mockDonorUsecase) GetDashboard(ctx context.Context) (*dto.DonorDashboardResponse, error) {
	return m.getDashboardFn()
}

func (m *mockDonorUsecase) UpdateAvailability(ctx context.Context, availability bool) error {
	return m.updateAvailabilityFn(availability)
}

func (m *mockDonorUsecase) RespondToRequest(ctx context.Context, requestID uuid.UUID) (*dto.DonationResponse, error) {
	return m.respondToRequestFn(requestID)
}

type mockHospitalUsecase struct {
	getDashboardFn  func() (*dto.HospitalDashboardResponse, error)
	createRequestFn func(req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
}

func (m *mockHospitalUsecase) GetDashboard(ctx context.Context) (*dto.HospitalDashboardResponse, error) {
	return m.getDashboardFn()
}

func (m *mockHospitalUsecase) CreateRequest(ctx context.Context, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	return m.createRequestFn(req)
}
