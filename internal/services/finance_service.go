package services

import (
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// FinanceService computes trip financial summaries. All methods are pure:
// callers fetch the live category, staff, and activity data and the service
// folds it into a TripRevenue.
type FinanceService struct{}

// NewFinanceService creates a new FinanceService
func NewFinanceService() *FinanceService {
	return &FinanceService{}
}

// ComputeTripFinancials prices a trip from its booked-room counts and the
// selected staff and activities. Revenue is the dot product of per-category
// room counts and current category prices. A booked category with no matching
// price row is an error, never a guessed price.
func (s *FinanceService) ComputeTripFinancials(
	roomsBooked map[string]int,
	categories []models.RoomCategory,
	staff []models.Staff,
	activities []models.Activity,
) (*models.TripRevenue, error) {
	priceByName := make(map[string]int64, len(categories))
	for _, category := range categories {
		priceByName[category.Name] = category.Price
	}

	var totalRevenue int64
	for _, name := range models.CategoryNames {
		count := roomsBooked[name]
		if count == 0 {
			continue
		}
		price, ok := priceByName[name]
		if !ok {
			return nil, models.NewValidationError("room category %q not found", name)
		}
		totalRevenue += int64(count) * price
	}

	revenue := &models.TripRevenue{TotalRevenue: totalRevenue}

	for _, member := range staff {
		switch member.Role {
		case models.RoleFood:
			revenue.FoodStaffCost += member.Salary
		case models.RoleCleaning:
			revenue.CleaningStaffCost += member.Salary
		case models.RoleEvent:
			revenue.EventStaffCost += member.Salary
		}
	}

	for _, activity := range activities {
		revenue.ActivityCost += activity.Cost
	}

	revenue.TotalExpenses = revenue.FoodStaffCost + revenue.CleaningStaffCost +
		revenue.EventStaffCost + revenue.ActivityCost

	return revenue, nil
}

// ComputePlannedRevenue prices a planned trip from the rooms actually
// assigned to it, using each room's own price.
func (s *FinanceService) ComputePlannedRevenue(
	rooms []models.Room,
	staff []models.Staff,
	activities []models.Activity,
) *models.TripRevenue {
	revenue := &models.TripRevenue{}

	for _, room := range rooms {
		revenue.TotalRevenue += room.Price
	}

	for _, member := range staff {
		switch member.Role {
		case models.RoleFood:
			revenue.FoodStaffCost += member.Salary
		case models.RoleCleaning:
			revenue.CleaningStaffCost += member.Salary
		case models.RoleEvent:
			revenue.EventStaffCost += member.Salary
		}
	}

	for _, activity := range activities {
		revenue.ActivityCost += activity.Cost
	}

	revenue.TotalExpenses = revenue.FoodStaffCost + revenue.CleaningStaffCost +
		revenue.EventStaffCost + revenue.ActivityCost

	return revenue
}

// CountStaffByRole returns per-role headcounts for the selected staff
func (s *FinanceService) CountStaffByRole(staff []models.Staff) (food, cleaning, event int) {
	for _, member := range staff {
		switch member.Role {
		case models.RoleFood:
			food++
		case models.RoleCleaning:
			cleaning++
		case models.RoleEvent:
			event++
		}
	}
	return food, cleaning, event
}
