package usecase

import (
	"context"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AdminUsecase backs the admin dashboard stub: entity counts only, no
// management operations yet.
type AdminUsecase interface {
	GetOverview(ctx context.Context) (*dto.AdminOverviewResponse, error)
}

type adminUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	requestRepo repository.RequestRepository,
	donationRepo repository.DonationRepository,
) AdminUsecase {
	return &adminUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
	}
}

func (u *adminUsecase) GetOverview(ctx context.Context) (*dto.AdminOverviewResponse, error) {
	db := u.db.WithContext(ctx)

	resp := &dto.AdminOverviewResponse{}
	var err error

	if resp.Donors, err = u.userRepo.CountByRole(db, entity.RoleIDDonor); err != nil {
		u.log.Warnf("Failed to count donors: %+v", err)
		return nil, err
	}
	if resp.Hospitals, err = u.userRepo.CountByRole(db, entity.RoleIDHospital); err != nil {
		u.log.Warnf("Failed to count hospitals: %+v", err)
		return nil, err
	}
	if resp.NGOs, err = u.userRepo.CountByRole(db, entity.RoleIDNGO); err != nil {
		u.log.Warnf("Failed to count NGOs: %+v", err)
		return nil, err
	}
	if resp.PendingRequests, err = u.requestRepo.CountByStatus(db, entity.RequestStatusPending); err != nil {
		u.log.Warnf("Failed to count pending requests: %+v", err)
		return nil, err
	}
	if resp.FulfilledRequests, err = u.requestRepo.CountByStatus(db, entity.RequestStatusFulfilled); err != nil {
		u.log.Warnf("Failed to count fulfilled requests: %+v", err)
		return nil, err
	}
	if resp.Donations, err = u.donationRepo.Count(db); err != nil {
		u.log.Warnf("Failed to count donations: %+v", err)
		return nil, err
	}

	return resp, nil
}
