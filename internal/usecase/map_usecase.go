package usecase

import (
	"context"

	"github.com/Paarth01/lifelink-ui-connect/internal/delivery/dto"
)

// MapUsecase serves the display-only marker set for the dashboard map. The
// markers are demonstration data around the default NYC viewport; no
// geospatial computation happens anywhere. The map tile access token is
// supplied by the client at render time and never passes through here.
type MapUsecase interface {
	GetMarkers(ctx context.Context) *dto.MapDataResponse
}

type mapUsecase struct{}

func NewMapUsecase() MapUsecase {
	return &mapUsecase{}
}

func (u *mapUsecase) GetMarkers(ctx context.Context) *dto.MapDataResponse {
	return &dto.MapDataResponse{
		Center: dto.Coordinates{Longitude: -74.006, Latitude: 40.7128},
		Zoom:   13,
		Donors: []dto.DonorMarker{
			{ID: 1, Name: "Sarah J.", Coords: dto.Coordinates{Longitude: -74.006, Latitude: 40.7128}, BloodType: "O+"},
			{ID: 2, Name: "Michael R.", Coords: dto.Coordinates{Longitude: -74.0059, Latitude: 40.7129}, BloodType: "A+"},
			{ID: 3, Name: "Emma L.", Coords: dto.Coordinates{Longitude: -74.0058, Latitude: 40.713}, BloodType: "B+"},
		},
		Hospitals: []dto.HospitalMarker{
			{ID: 1, Name: "City General Hospital", Coords: dto.Coordinates{Longitude: -74.006, Latitude: 40.7127}},
			{ID: 2, Name: "St. Mary Medical Center", Coords: dto.Coordinates{Longitude: -74.0057, Latitude: 40.7131}},
		},
		ActiveRequests: []dto.RequestMarker{
			{ID: 1, Coords: dto.Coordinates{Longitude: -74.0061, Latitude: 40.7126}, Urgency: "Critical", BloodType: "O+"},
			{ID: 2, Coords: dto.Coordinates{Longitude: -74.0056, Latitude: 40.7132}, Urgency: "High", BloodType: "A+"},
		},
	}
}
