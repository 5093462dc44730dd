package models

// StaffCounts breaks total headcount down by role
type StaffCounts struct {
	Total    int `json:"total" db:"total"`
	Food     int `json:"food" db:"food"`
	Cleaning int `json:"cleaning" db:"cleaning"`
	Event    int `json:"event" db:"event"`
}

// LossMakingTrip is the alert projection for trips whose expenses exceed revenue
type LossMakingTrip struct {
	CruiseID string `json:"cruiseId" db:"cruise_id"`
	Name     string `json:"name" db:"name"`
	Loss     int64  `json:"loss" db:"loss"`
}

// DashboardAlerts groups the attention-needed items
type DashboardAlerts struct {
	MaintenanceRooms []MaintenanceRoom `json:"maintenanceRooms"`
	LossMakingTrips  []LossMakingTrip  `json:"lossMakingTrips"`
}

// MonthlyTripCount is one bucket of the six-month trip histogram
type MonthlyTripCount struct {
	Month string `json:"month" db:"month"`
	Count int    `json:"count" db:"count"`
}

// RevenuePerTrip is the per-trip financial summary shown on the dashboard chart
type RevenuePerTrip struct {
	CruiseID     string `json:"cruiseId" db:"cruise_id"`
	Name         string `json:"name" db:"name"`
	TotalRevenue int64  `json:"totalRevenue" db:"total_revenue"`
	TotalCost    int64  `json:"totalCost" db:"total_cost"`
	Profit       int64  `json:"profit" db:"profit"`
}

// MonthlyRevenue is one bucket of the six-month revenue series
type MonthlyRevenue struct {
	Month   string `json:"month" db:"month"`
	Revenue int64  `json:"revenue" db:"revenue"`
}

// DashboardStats is the single aggregated payload behind the admin landing page
type DashboardStats struct {
	TotalActivities int              `json:"totalActivities"`
	Staff           StaffCounts      `json:"staff"`
	TripsCompleted  int              `json:"tripsCompleted"`
	UpcomingTrips   int              `json:"upcomingTrips"`
	ActiveCruises   int              `json:"activeCruises"`
	TotalProfit     int64            `json:"totalProfit"`
	TotalLoss       int64            `json:"totalLoss"`
	Alerts          DashboardAlerts  `json:"alerts"`
	TripsPerMonth   []MonthlyTripCount `json:"tripsPerMonth"`
	RevenuePerTrip  []RevenuePerTrip `json:"revenuePerTrip"`
	MonthlyRevenue  []MonthlyRevenue `json:"monthlyRevenue"`
}
