package services

import (
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// DashboardService assembles the aggregated stats payload for the admin
// landing page.
type DashboardService struct {
	dashboardRepo *database.DashboardRepository
	roomRepo      *database.RoomRepository
	staffRepo     *database.StaffRepository
	activityRepo  *database.ActivityRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	dashboardRepo *database.DashboardRepository,
	roomRepo *database.RoomRepository,
	staffRepo *database.StaffRepository,
	activityRepo *database.ActivityRepository,
) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		roomRepo:      roomRepo,
		staffRepo:     staffRepo,
		activityRepo:  activityRepo,
	}
}

// GetStats gathers every dashboard figure in one pass
func (s *DashboardService) GetStats() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	totalActivities, err := s.activityRepo.Count()
	if err != nil {
		return nil, err
	}
	stats.TotalActivities = totalActivities

	staffCounts, err := s.staffRepo.CountByRole()
	if err != nil {
		return nil, err
	}
	stats.Staff = *staffCounts

	completed, upcoming, ongoing, err := s.dashboardRepo.CountTripsByStatus()
	if err != nil {
		return nil, err
	}
	stats.TripsCompleted = completed
	stats.UpcomingTrips = upcoming
	stats.ActiveCruises = ongoing

	totalProfit, totalLoss, err := s.dashboardRepo.SumProfitAndLoss()
	if err != nil {
		return nil, err
	}
	stats.TotalProfit = totalProfit
	stats.TotalLoss = totalLoss

	maintenanceRooms, err := s.roomRepo.GetMaintenanceRooms()
	if err != nil {
		return nil, err
	}
	lossMakingTrips, err := s.dashboardRepo.GetLossMakingTrips()
	if err != nil {
		return nil, err
	}
	stats.Alerts = models.DashboardAlerts{
		MaintenanceRooms: maintenanceRooms,
		LossMakingTrips:  lossMakingTrips,
	}

	tripsPerMonth, err := s.dashboardRepo.GetTripsPerMonth()
	if err != nil {
		return nil, err
	}
	stats.TripsPerMonth = tripsPerMonth

	revenuePerTrip, err := s.dashboardRepo.GetRevenuePerTrip()
	if err != nil {
		return nil, err
	}
	stats.RevenuePerTrip = revenuePerTrip

	monthlyRevenue, err := s.dashboardRepo.GetMonthlyRevenue()
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = monthlyRevenue

	return stats, nil
}

// GetMonthlyRevenue returns the trailing six months of ticket revenue
func (s *DashboardService) GetMonthlyRevenue() ([]models.MonthlyRevenue, error) {
	return s.dashboardRepo.GetMonthlyRevenue()
}
