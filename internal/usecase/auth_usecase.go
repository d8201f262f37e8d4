package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Paarth01/lifelink-ui-connect/config"
	"github.com/Paarth01/lifelink-ui-connect/internal/converter"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"
	"github.com/Paarth01/lifelink-ui-connect/internal/infrastructure/cache"
	"github.com/Paarth01/lifelink-ui-connect/internal/service"
	"github.com/Paarth01/lifelink-ui-connect/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found, please contact support")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailNotConfirmed  = errors.New("email address has not been confirmed")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	ConfirmEmail(ctx context.Context, token string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}

type authUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	authCfg             config.AuthConfig
	userRepo            repository.UserRepository
	donorProfileRepo    repository.DonorProfileRepository
	hospitalProfileRepo repository.HospitalProfileRepository
	jwtService          *jwt.JWTService
	store               cache.Store
	publisher           service.EventPublisher
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	authCfg config.AuthConfig,
	userRepo repository.UserRepository,
	donorProfileRepo repository.DonorProfileRepository,
	hospitalProfileRepo repository.HospitalProfileRepository,
	jwtService *jwt.JWTService,
	store cache.Store,
	publisher service.EventPublisher,
) AuthUsecase {
	return &authUsecase{
		db:                  db,
		log:                 log,
		authCfg:             authCfg,
		userRepo:            userRepo,
		donorProfileRepo:    donorProfileRepo,
		hospitalProfileRepo: hospitalProfileRepo,
		jwtService:          jwtService,
		store:               store,
		publisher:           publisher,
	}
}

// Register creates a user plus its role profile inside one transaction. A
// duplicate email is not an error surface of its own: registration is retried
// as a sign-in with the same credentials, so re-registering an existing
// account yields that account's session and role.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	roleID := entity.RoleIDByName(req.Role)
	if roleID == 0 {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	isActive := !u.authCfg.RequireEmailConfirmation
	user := &entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		RoleID:   roleID,
		IsActive: &isActive,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			// Fall back to sign-in with the same credentials.
			return u.Login(ctx, &dto.LoginRequest{Email: req.Email, Password: req.Password})
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrRoleNotFound
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	switch roleID {
	case entity.RoleIDDonor:
		profile := &entity.DonorProfile{
			DonorID:      user.ID,
			BloodType:    req.BloodType,
			OrganType:    req.OrganType,
			Location:     req.Location,
			Availability: true,
		}
		if err := u.donorProfileRepo.Upsert(tx, profile); err != nil {
			u.log.Warnf("Failed to create donor profile: %+v", err)
			return nil, err
		}
	case entity.RoleIDHospital:
		location := ""
		if req.Location != nil {
			location = *req.Location
		}
		profile := &entity.HospitalProfile{
			HospitalID:   user.ID,
			HospitalName: req.HospitalName,
			Location:     location,
		}
		if err := u.hospitalProfileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create hospital profile: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	userResp := converter.UserToResponse(user)
	userResp.Role = req.Role

	if u.authCfg.RequireEmailConfirmation {
		if err := u.issueConfirmationToken(ctx, user); err != nil {
			u.log.Warnf("Failed to issue confirmation token for %s: %+v", user.ID, err)
		}
		return &dto.AuthResponse{User: userResp, RequiresConfirmation: true}, nil
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: userResp, Tokens: tokens}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// A user row without a resolvable role is an authorization problem, not a
	// credential problem, and gets its own message.
	roleName := entity.RoleNameByID(user.RoleID)
	if roleName == "" {
		return nil, ErrRoleNotFound
	}

	if u.authCfg.RequireEmailConfirmation && user.IsActive != nil && !*user.IsActive {
		return nil, ErrEmailNotConfirmed
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	userResp := converter.UserToResponse(user)
	userResp.Role = roleName

	return &dto.AuthResponse{User: userResp, Tokens: tokens}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
		fmt.Sprintf("refresh_token:*:%s", refreshTokenID),
	} {
		keys, err := u.store.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.store.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.store.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: the presented refresh token is single-use.
	if err := u.store.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.storeTokenPair(ctx, claims.UserID, claims.Email, claims.RoleID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := converter.UserToResponse(user)
	resp.Role = entity.RoleNameByID(user.RoleID)
	return resp, nil
}

func (u *authUsecase) ConfirmEmail(ctx context.Context, token string) error {
	key := fmt.Sprintf("confirm_token:%s", token)
	userIDStr, err := u.store.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrInvalidToken
	}
	if err != nil {
		u.log.Warnf("Failed to look up confirmation token: %+v", err)
		return err
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ErrInvalidToken
	}

	if err := u.store.Del(ctx, key).Err(); err != nil {
		u.log.Warnf("Failed to delete confirmation token: %+v", err)
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	active := true
	user.IsActive = &active
	return u.userRepo.Update(u.db.WithContext(ctx), user)
}

// RequestPasswordReset always reports success to the caller so the endpoint
// cannot be used to probe which emails are registered.
func (u *authUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find user for password reset: %+v", err)
		return nil
	}
	if user == nil {
		return nil
	}

	token := uuid.New().String()
	key := fmt.Sprintf("password_reset:%s", token)
	if err := u.store.Set(ctx, key, user.ID.String(), u.authCfg.PasswordResetExpiry).Err(); err != nil {
		u.log.Warnf("Failed to store password reset token: %+v", err)
		return err
	}

	evt := service.PasswordResetRequestedEvent{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: timeNow().Add(u.authCfg.PasswordResetExpiry),
	}
	if err := u.publisher.PublishPasswordResetRequested(ctx, evt); err != nil {
		u.log.Warnf("Failed to publish password reset event: %+v", err)
	}

	return nil
}

func (u *authUsecase) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	key := fmt.Sprintf("password_reset:%s", token)
	userIDStr, err := u.store.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrInvalidToken
	}
	if err != nil {
		u.log.Warnf("Failed to look up reset token: %+v", err)
		return err
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ErrInvalidToken
	}

	if err := u.store.Del(ctx, key).Err(); err != nil {
		u.log.Warnf("Failed to delete reset token: %+v", err)
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		return err
	}

	return u.revokeAllUserTokens(ctx, userID)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	return u.storeTokenPair(ctx, user.ID, user.Email, user.RoleID)
}

func (u *authUsecase) storeTokenPair(ctx context.Context, userID uuid.UUID, email string, roleID int) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, roleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.store.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}
	if err := u.store.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) issueConfirmationToken(ctx context.Context, user *entity.User) error {
	token := uuid.New().String()
	key := fmt.Sprintf("confirm_token:%s", token)
	if err := u.store.Set(ctx, key, user.ID.String(), u.authCfg.ConfirmationExpiry).Err(); err != nil {
		return err
	}
	u.log.Infof("Confirmation token issued for user %s", user.ID)
	return nil
}

func (u *authUsecase) revokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	} {
		keys, err := u.store.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.store.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}
	return nil
}

// isDuplicateKeyError checks for a PostgreSQL unique constraint violation on
// the named constraint.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks for a PostgreSQL foreign key violation on the
// named constraint.
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
