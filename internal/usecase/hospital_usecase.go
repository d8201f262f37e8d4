package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Paarth01/lifelink-ui-connect/internal/converter"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/middleware"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"
	"github.com/Paarth01/lifelink-ui-connect/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCreateRequestFailed = errors.New("failed to create request")

// availableDonorLimit caps the available-donor panel. The dashboard's
// totalDonors stat counts this capped list, not the donor table.
const availableDonorLimit = 10

type HospitalUsecase interface {
	GetDashboard(ctx context.Context) (*dto.HospitalDashboardResponse, error)
	CreateRequest(ctx context.Context, req *dto.CreateRequestRequest) (*dto.RequestResponse, error)
}

type hospitalUsecase struct {
	db                  *gorm.DB
	log                 *logrus.Logger
	userRepo            repository.UserRepository
	hospitalProfileRepo repository.HospitalProfileRepository
	donorProfileRepo    repository.DonorProfileRepository
	requestRepo         repository.RequestRepository
	publisher           service.EventPublisher
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalProfileRepo repository.HospitalProfileRepository,
	donorProfileRepo repository.DonorProfileRepository,
	requestRepo repository.RequestRepository,
	publisher service.EventPublisher,
) HospitalUsecase {
	return &hospitalUsecase{
		db:                  db,
		log:                 log,
		userRepo:            userRepo,
		hospitalProfileRepo: hospitalProfileRepo,
		donorProfileRepo:    donorProfileRepo,
		requestRepo:         requestRepo,
		publisher:           publisher,
	}
}

// GetDashboard assembles the hospital view: profile, own requests, derived
// stats and the available-donor panel. Secondary list failures degrade to
// empty lists.
func (u *hospitalUsecase) GetDashboard(ctx context.Context) (*dto.HospitalDashboardResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.hospitalProfileRepo.FindByHospitalID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find hospital profile %s: %+v", userID, err)
		return nil, err
	}

	requests, err := u.requestRepo.FindByHospitalID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to fetch requests for hospital %s: %+v", userID, err)
		requests = nil
	}

	donors, err := u.donorProfileRepo.FindAvailable(u.db.WithContext(ctx), availableDonorLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch available donors: %+v", err)
		donors = nil
	}

	stats := deriveHospitalStats(requests, timeNow())
	stats.TotalDonors = len(donors)

	return &dto.HospitalDashboardResponse{
		Profile:         converter.HospitalProfileToResponse(user, profile),
		ActiveRequests:  converter.RequestsToResponses(requests),
		AvailableDonors: converter.DonorProfilesToResponses(donors),
		Stats:           stats,
	}, nil
}

// CreateRequest inserts a pending request. Nothing enforces that exactly one
// of the two requirement fields is set; whatever the hospital sends is
// stored as-is.
func (u *hospitalUsecase) CreateRequest(ctx context.Context, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	request := &entity.Request{
		HospitalID:        userID,
		RequiredBloodType: req.RequiredBloodType,
		RequiredOrganType: req.RequiredOrganType,
		Status:            entity.RequestStatusPending,
	}

	if err := u.requestRepo.Create(u.db.WithContext(ctx), request); err != nil {
		u.log.Warnf("Failed to create request for hospital %s: %+v", userID, err)
		return nil, ErrCreateRequestFailed
	}

	evt := service.RequestCreatedEvent{
		RequestID:         request.RequestID,
		HospitalID:        request.HospitalID,
		RequiredBloodType: request.RequiredBloodType,
		RequiredOrganType: request.RequiredOrganType,
		CreatedAt:         request.CreatedAt,
	}
	if err := u.publisher.PublishRequestCreated(ctx, evt); err != nil {
		u.log.Warnf("Failed to publish request event: %+v", err)
	}

	u.log.Infof("Request created: id=%s hospital=%s", request.RequestID, userID)
	return converter.RequestToResponse(request), nil
}

// deriveHospitalStats computes the request counters client code renders.
// completedToday deliberately filters fulfilled requests by their CREATION
// date, not a fulfillment timestamp, matching the shipped dashboard.
func deriveHospitalStats(requests []entity.Request, now time.Time) dto.HospitalStats {
	today := now.UTC().Format("2006-01-02")
	stats := dto.HospitalStats{}
	for _, r := range requests {
		switch {
		case r.IsPending():
			stats.ActiveRequests++
		case r.IsFulfilled() && r.CreatedAt.UTC().Format("2006-01-02") == today:
			stats.CompletedToday++
		}
	}
	return stats
}
