package dto

type NGOStats struct {
	TotalDonors      int64 `json:"total_donors"`
	ActiveDonors     int64 `json:"active_donors"`
	PendingRequests  int64 `json:"pending_requests"`
	MonthlyDonations int64 `json:"monthly_donations"`
}

type RegionalStat struct {
	Region   string `json:"region"`
	Donors   int    `json:"donors"`
	Requests int    `json:"requests"`
	Shortage string `json:"shortage"`
}

type NGODashboardResponse struct {
	Stats        NGOStats       `json:"stats"`
	RegionalData []RegionalStat `json:"regional_data"`
}

type AdminOverviewResponse struct {
	Donors            int64 `json:"donors"`
	Hospitals         int64 `json:"hospitals"`
	NGOs              int64 `json:"ngos"`
	PendingRequests   int64 `json:"pending_requests"`
	FulfilledRequests int64 `json:"fulfilled_requests"`
	Donations         int64 `json:"donations"`
}
