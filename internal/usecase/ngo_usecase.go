package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"
	"github.com/Paarth01/lifelink-ui-connect/internal/infrastructure/cache"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ngoDashboardCacheKey = "ngo:dashboard"
	ngoDashboardCacheTTL = 60 * time.Second
)

// regionalData is the static shortage overview the coordination dashboard
// renders alongside the live platform counters.
var regionalData = []dto.RegionalStat{
	{Region: "Downtown", Donors: 342, Requests: 7, Shortage: "Moderate"},
	{Region: "North Side", Donors: 189, Requests: 4, Shortage: "Low"},
	{Region: "West End", Donors: 451, Requests: 3, Shortage: "Low"},
	{Region: "East District", Donors: 265, Requests: 8, Shortage: "Critical"},
}

type NGOUsecase interface {
	GetDashboard(ctx context.Context) (*dto.NGODashboardResponse, error)
}

type ngoUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	donorProfileRepo repository.DonorProfileRepository
	requestRepo      repository.RequestRepository
	donationRepo     repository.DonationRepository
	store            cache.Store
}

func NewNGOUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donorProfileRepo repository.DonorProfileRepository,
	requestRepo repository.RequestRepository,
	donationRepo repository.DonationRepository,
	store cache.Store,
) NGOUsecase {
	return &ngoUsecase{
		db:               db,
		log:              log,
		donorProfileRepo: donorProfileRepo,
		requestRepo:      requestRepo,
		donationRepo:     donationRepo,
		store:            store,
	}
}

// GetDashboard returns platform-wide coordination stats. The computed
// counters are cached for a minute; a cold or failing cache falls through to
// the store.
func (u *ngoUsecase) GetDashboard(ctx context.Context) (*dto.NGODashboardResponse, error) {
	if cached, err := u.store.Get(ctx, ngoDashboardCacheKey).Result(); err == nil {
		var resp dto.NGODashboardResponse
		if err := json.Unmarshal([]byte(cached), &resp); err == nil {
			return &resp, nil
		}
		u.log.Warnf("Failed to decode cached NGO dashboard: %+v", err)
	} else if err != redis.Nil {
		u.log.Warnf("Failed to read NGO dashboard cache: %+v", err)
	}

	db := u.db.WithContext(ctx)

	totalDonors, err := u.donorProfileRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count donors: %+v", err)
		return nil, err
	}

	activeDonors, err := u.donorProfileRepo.CountAvailable(db)
	if err != nil {
		u.log.Warnf("Failed to count available donors: %+v", err)
		return nil, err
	}

	pendingRequests, err := u.requestRepo.CountByStatus(db, entity.RequestStatusPending)
	if err != nil {
		u.log.Warnf("Failed to count pending requests: %+v", err)
		return nil, err
	}

	now := timeNow().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthlyDonations, err := u.donationRepo.CountSince(db, monthStart)
	if err != nil {
		u.log.Warnf("Failed to count monthly donations: %+v", err)
		return nil, err
	}

	resp := &dto.NGODashboardResponse{
		Stats: dto.NGOStats{
			TotalDonors:      totalDonors,
			ActiveDonors:     activeDonors,
			PendingRequests:  pendingRequests,
			MonthlyDonations: monthlyDonations,
		},
		RegionalData: regionalData,
	}

	if encoded, err := json.Marshal(resp); err == nil {
		if err := u.store.Set(ctx, ngoDashboardCacheKey, string(encoded), ngoDashboardCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache NGO dashboard: %+v", err)
		}
	}

	return resp, nil
}
