package usecase

import (
	"context"
	"errors"

	"github.com/Paarth01/lifelink-ui-connect/internal/converter"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/http/middleware"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"
	"github.com/Paarth01/lifelink-ui-connect/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrRespondFailed   = errors.New("failed to respond to request")
)

// pendingFeedLimit caps the recent-pending query BEFORE compatibility
// filtering, so a donor can see fewer than 10 matches even when more exist
// further back.
const pendingFeedLimit = 10

const historyLimit = 10

type DonorUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DonorDashboardResponse, error)
	UpdateAvailability(ctx context.Context, availability bool) error
	RespondToRequest(ctx context.Context, requestID uuid.UUID) (*dto.DonationResponse, error)
}

type donorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	donorProfileRepo repository.DonorProfileRepository
	requestRepo      repository.RequestRepository
	donationRepo     repository.DonationRepository
	publisher        service.EventPublisher
}

func NewDonorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	donorProfileRepo repository.DonorProfileRepository,
	requestRepo repository.RequestRepository,
	donationRepo repository.DonationRepository,
	publisher service.EventPublisher,
) DonorUsecase {
	return &donorUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		donorProfileRepo: donorProfileRepo,
		requestRepo:      requestRepo,
		donationRepo:     donationRepo,
		publisher:        publisher,
	}
}

// GetDashboard assembles the donor view: profile, the compatibility-filtered
// pending request feed and the donation history. Failures on the secondary
// lists degrade to empty lists rather than failing the whole view.
func (u *donorUsecase) GetDashboard(ctx context.Context) (*dto.DonorDashboardResponse, error) {
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

	profile, err := u.donorProfileRepo.FindByDonorID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile %s: %+v", userID, err)
		return nil, err
	}

	compatible := u.compatiblePendingRequests(ctx, profile)

	donations, err := u.donationRepo.FindByDonorID(u.db.WithContext(ctx), userID, historyLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch donation history for %s: %+v", userID, err)
		donations = nil
	}

	return &dto.DonorDashboardResponse{
		Profile:        converter.DonorProfileToResponse(user, profile),
		UrgentRequests: converter.RequestsToResponses(compatible),
		History:        converter.DonationsToHistoryResponses(donations),
	}, nil
}

// UpdateAvailability upserts the donor row keyed on donor_id, touching only
// the availability column on conflict.
func (u *donorUsecase) UpdateAvailability(ctx context.Context, availability bool) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	if err := u.donorProfileRepo.UpsertAvailability(u.db.WithContext(ctx), userID, availability); err != nil {
		u.log.Warnf("Failed to update availability for %s: %+v", userID, err)
		return err
	}

	u.log.Infof("Availability updated: donor=%s available=%t", userID, availability)
	return nil
}

// RespondToRequest executes the pending -> fulfilled transition. The request
// must be present in the donor's current filtered feed. The donation insert
// and the status update are two independent writes with no transaction
// spanning them: an insert failure aborts before the status write, while a
// status-write failure after a successful insert is logged and the donation
// stands. The pending status is not re-checked between read and write, so two
// donors racing on one request can both leave a donation row.
func (u *donorUsecase) RespondToRequest(ctx context.Context, requestID uuid.UUID) (*dto.DonationResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	profile, err := u.donorProfileRepo.FindByDonorID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find donor profile %s: %+v", userID, err)
		return nil, err
	}

	var target *entity.Request
	for _, r := range u.compatiblePendingRequests(ctx, profile) {
		if r.RequestID == requestID {
			req := r
			target = &req
			break
		}
	}
	if target == nil {
		return nil, ErrRequestNotFound
	}

	donation := &entity.Donation{
		DonorID:    userID,
		HospitalID: target.HospitalID,
		RequestID:  target.RequestID,
	}

	if err := u.donationRepo.Create(u.db.WithContext(ctx), donation); err != nil {
		u.log.Warnf("Failed to create donation for request %s: %+v", requestID, err)
		return nil, ErrRespondFailed
	}

	if err := u.requestRepo.UpdateStatus(u.db.WithContext(ctx), requestID, entity.RequestStatusFulfilled); err != nil {
		// The donation row already exists; surface nothing and let the next
		// refetch reconcile the view.
		u.log.Errorf("Failed to mark request %s fulfilled: %+v", requestID, err)
	}

	evt := service.DonationRecordedEvent{
		DonationID:  donation.DonationID,
		DonorID:     donation.DonorID,
		HospitalID:  donation.HospitalID,
		RequestID:   donation.RequestID,
		FulfilledAt: donation.FulfilledAt,
	}
	if err := u.publisher.PublishDonationRecorded(ctx, evt); err != nil {
		u.log.Warnf("Failed to publish donation event: %+v", err)
	}

	u.log.Infof("Donation recorded: donor=%s request=%s hospital=%s", userID, requestID, target.HospitalID)
	return converter.DonationToResponse(donation), nil
}

// compatiblePendingRequests re-derives the donor's filtered feed. Without a
// profile there is nothing to match against and the feed is empty.
func (u *donorUsecase) compatiblePendingRequests(ctx context.Context, profile *entity.DonorProfile) []entity.Request {
	if profile == nil {
		return nil
	}

	pending, err := u.requestRepo.FindPending(u.db.WithContext(ctx), pendingFeedLimit)
	if err != nil {
		u.log.Warnf("Failed to fetch pending requests: %+v", err)
		return nil
	}

	return entity.FilterCompatible(pending, profile)
}
