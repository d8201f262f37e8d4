package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Paarth01/lifelink-ui-connect/config"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore answers Exists from a fixed key set; the other operations are
// unused by the middleware.
type stubStore struct {
	keys map[string]bool
}

func (s *stubStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (s *stubStore) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (s *stubStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(0, nil)
}

func (s *stubStore) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if s.keys[k] {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (s *stubStore) Keys(ctx context.Context, pattern string) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(nil, nil)
}

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateAccessToken(userID, "donor@example.com", entity.RoleIDDonor)
	require.NoError(t, err)

	store := &stubStore{keys: map[string]bool{
		"access_token:" + userID.String() + ":" + tokenID: true,
	}}
	mw := NewAuthMiddleware(jwtService, store)

	var gotUserID uuid.UUID
	var gotRoleID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRoleID, _ = GetRoleIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, entity.RoleIDDonor, gotRoleID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWTService(), &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(newTestJWTService(), &stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	jwtService := newTestJWTService()
	token, _, err := jwtService.GenerateAccessToken(uuid.New(), "donor@example.com", entity.RoleIDDonor)
	require.NoError(t, err)

	// No revocation entry in the store: the session was logged out.
	mw := NewAuthMiddleware(jwtService, &stubStore{keys: map[string]bool{}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	jwtService := newTestJWTService()
	userID := uuid.New()
	token, tokenID, err := jwtService.GenerateRefreshToken(userID, "donor@example.com", entity.RoleIDDonor)
	require.NoError(t, err)

	store := &stubStore{keys: map[string]bool{
		"access_token:" + userID.String() + ":" + tokenID: true,
	}}
	mw := NewAuthMiddleware(jwtService, store)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func ctxWithRole(roleID int) context.Context {
	return context.WithValue(context.Background(), RoleIDKey, roleID)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		guard    func(http.Handler) http.Handler
		roleID   int
		wantCode int
	}{
		{"donor allowed on donor routes", RequireDonor, entity.RoleIDDonor, http.StatusOK},
		{"hospital blocked on donor routes", RequireDonor, entity.RoleIDHospital, http.StatusForbidden},
		{"hospital allowed on hospital routes", RequireHospital, entity.RoleIDHospital, http.StatusOK},
		{"ngo blocked on hospital routes", RequireHospital, entity.RoleIDNGO, http.StatusForbidden},
		{"ngo allowed on ngo routes", RequireNGO, entity.RoleIDNGO, http.StatusOK},
		{"admin blocked on ngo routes", RequireNGO, entity.RoleIDAdmin, http.StatusForbidden},
		{"admin allowed on admin routes", RequireAdmin, entity.RoleIDAdmin, http.StatusOK},
		{"donor blocked on admin routes", RequireAdmin, entity.RoleIDDonor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctxWithRole(tt.roleID))
			rec := httptest.NewRecorder()
			tt.guard(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireRole_NoRoleInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	RequireDonor(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
