package dto

type Coordinates struct {
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
}

type DonorMarker struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Coords    Coordinates `json:"coords"`
	BloodType string      `json:"blood_type"`
}

type HospitalMarker struct {
	ID     int         `json:"id"`
	Name   string      `json:"name"`
	Coords Coordinates `json:"coords"`
}

type RequestMarker struct {
	ID        int         `json:"id"`
	Coords    Coordinates `json:"coords"`
	Urgency   string      `json:"urgency"`
	BloodType string      `json:"blood_type"`
}

type MapDataResponse struct {
	Center         Coordinates      `json:"center"`
	Zoom           int              `json:"zoom"`
	Donors         []DonorMarker    `json:"donors"`
	Hospitals      []HospitalMarker `json:"hospitals"`
	ActiveRequests []RequestMarker  `json:"active_requests"`
}
