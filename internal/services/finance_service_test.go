package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanline/cruise-admin-backend/internal/models"
)

func standardCategories() []models.RoomCategory {
	return []models.RoomCategory{
		{ID: "c1", Name: models.CategoryDeluxe, Price: 35000, Capacity: 6},
		{ID: "c2", Name: models.CategoryPremiumGold, Price: 30000, Capacity: 4},
		{ID: "c3", Name: models.CategoryPremiumSilver, Price: 27000, Capacity: 2},
		{ID: "c4", Name: models.CategoryNormal, Price: 23000, Capacity: 2},
	}
}

func TestComputeTripFinancials(t *testing.T) {
	svc := NewFinanceService()

	t.Run("Revenue Is Dot Product Of Counts And Prices", func(t *testing.T) {
		booked := map[string]int{
			models.CategoryDeluxe:        2,
			models.CategoryPremiumGold:   1,
			models.CategoryPremiumSilver: 0,
			models.CategoryNormal:        3,
		}

		revenue, err := svc.ComputeTripFinancials(booked, standardCategories(), nil, nil)
		require.NoError(t, err)

		// 2*35000 + 1*30000 + 3*23000
		assert.Equal(t, int64(169000), revenue.TotalRevenue)
		assert.Equal(t, int64(0), revenue.TotalExpenses)
	})

	t.Run("Staff Costs Fold By Role", func(t *testing.T) {
		staff := []models.Staff{
			{ID: "s1", Name: "Chef", Role: models.RoleFood, Salary: 5000},
			{ID: "s2", Name: "Cleaner", Role: models.RoleCleaning, Salary: 3000},
		}

		revenue, err := svc.ComputeTripFinancials(nil, standardCategories(), staff, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(5000), revenue.FoodStaffCost)
		assert.Equal(t, int64(3000), revenue.CleaningStaffCost)
		assert.Equal(t, int64(0), revenue.EventStaffCost)
		assert.Equal(t, int64(8000), revenue.TotalExpenses)
	})

	t.Run("Staff Fold Is Order Independent", func(t *testing.T) {
		forward := []models.Staff{
			{ID: "s1", Role: models.RoleFood, Salary: 5000},
			{ID: "s2", Role: models.RoleCleaning, Salary: 3000},
		}
		reversed := []models.Staff{forward[1], forward[0]}

		a, err := svc.ComputeTripFinancials(nil, standardCategories(), forward, nil)
		require.NoError(t, err)
		b, err := svc.ComputeTripFinancials(nil, standardCategories(), reversed, nil)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})

	t.Run("Activity Costs Sum Into Expenses", func(t *testing.T) {
		activities := []models.Activity{
			{ID: "a1", Name: "Pool Party", Cost: 12000},
			{ID: "a2", Name: "Karaoke", Cost: 4000},
		}
		staff := []models.Staff{
			{ID: "s1", Role: models.RoleEvent, Salary: 6000},
		}

		revenue, err := svc.ComputeTripFinancials(nil, standardCategories(), staff, activities)
		require.NoError(t, err)

		assert.Equal(t, int64(16000), revenue.ActivityCost)
		assert.Equal(t, int64(6000), revenue.EventStaffCost)
		assert.Equal(t, int64(22000), revenue.TotalExpenses)
	})

	t.Run("Unknown Category Is An Error", func(t *testing.T) {
		booked := map[string]int{models.CategoryDeluxe: 2}

		// No Deluxe row in the pricing data
		categories := []models.RoomCategory{
			{ID: "c4", Name: models.CategoryNormal, Price: 23000, Capacity: 2},
		}

		revenue, err := svc.ComputeTripFinancials(booked, categories, nil, nil)
		require.Error(t, err)
		assert.Nil(t, revenue)
		assert.Contains(t, err.Error(), models.CategoryDeluxe)

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("Zero Count Skips Missing Category", func(t *testing.T) {
		booked := map[string]int{
			models.CategoryDeluxe: 0,
			models.CategoryNormal: 1,
		}
		categories := []models.RoomCategory{
			{ID: "c4", Name: models.CategoryNormal, Price: 23000, Capacity: 2},
		}

		revenue, err := svc.ComputeTripFinancials(booked, categories, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(23000), revenue.TotalRevenue)
	})
}

func TestComputePlannedRevenue(t *testing.T) {
	svc := NewFinanceService()

	rooms := []models.Room{
		{ID: "r1", Number: "D01", Price: 35000},
		{ID: "r2", Number: "N01", Price: 23000},
		{ID: "r3", Number: "N02", Price: 23000},
	}
	staff := []models.Staff{
		{ID: "s1", Role: models.RoleFood, Salary: 5000},
	}
	activities := []models.Activity{
		{ID: "a1", Cost: 10000},
	}

	revenue := svc.ComputePlannedRevenue(rooms, staff, activities)

	assert.Equal(t, int64(81000), revenue.TotalRevenue)
	assert.Equal(t, int64(5000), revenue.FoodStaffCost)
	assert.Equal(t, int64(10000), revenue.ActivityCost)
	assert.Equal(t, int64(15000), revenue.TotalExpenses)
}

func TestCountStaffByRole(t *testing.T) {
	svc := NewFinanceService()

	staff := []models.Staff{
		{Role: models.RoleFood},
		{Role: models.RoleFood},
		{Role: models.RoleCleaning},
		{Role: models.RoleEvent},
	}

	food, cleaning, event := svc.CountStaffByRole(staff)
	assert.Equal(t, 2, food)
	assert.Equal(t, 1, cleaning)
	assert.Equal(t, 1, event)
}
