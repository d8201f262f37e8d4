package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUsecase_GetOverview(t *testing.T) {
	userRepo := &mockUserRepo{
		countByRoleFn: func(roleID int) (int64, error) {
			switch roleID {
			case entity.RoleIDDonor:
				return 120, nil
			case entity.RoleIDHospital:
				return 8, nil
			case entity.RoleIDNGO:
				return 3, nil
			}
			return 0, nil
		},
	}
	requestRepo := &mockRequestRepo{
		countByStatusFn: func(status entity.RequestStatus) (int64, error) {
			if status == entity.RequestStatusPending {
				return 14, nil
			}
			return 77, nil
		},
	}
	donationRepo := &mockDonationRepo{
		countFn: func() (int64, error) { return 91, nil },
	}

	uc := NewAdminUsecase(testDB(), testLogger(), userRepo, requestRepo, donationRepo)

	overview, err := uc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120), overview.Donors)
	assert.Equal(t, int64(8), overview.Hospitals)
	assert.Equal(t, int64(3), overview.NGOs)
	assert.Equal(t, int64(14), overview.PendingRequests)
	assert.Equal(t, int64(77), overview.FulfilledRequests)
	assert.Equal(t, int64(91), overview.Donations)
}

func TestAdminUsecase_GetOverview_CountFailure(t *testing.T) {
	userRepo := &mockUserRepo{
		countByRoleFn: func(roleID int) (int64, error) { return 0, errors.New("db down") },
	}

	uc := NewAdminUsecase(testDB(), testLogger(), userRepo, &mockRequestRepo{}, &mockDonationRepo{})

	_, err := uc.GetOverview(context.Background())
	assert.Error(t, err)
}

func TestMapUsecase_GetMarkers(t *testing.T) {
	uc := NewMapUsecase()

	markers := uc.GetMarkers(context.Background())
	assert.Equal(t, 13, markers.Zoom)
	assert.InDelta(t, -74.006, markers.Center.Longitude, 0.0001)
	assert.InDelta(t, 40.7128, markers.Center.Latitude, 0.0001)
	assert.Len(t, markers.Donors, 3)
	assert.Len(t, markers.Hospitals, 2)
	assert.Len(t, markers.ActiveRequests, 2)
}
