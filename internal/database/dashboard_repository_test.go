package database

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepositoryCountTripsByStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewDashboardRepository(mockDB)

		mock.ExpectQuery(`FROM cruises`).
			WillReturnRows(sqlmock.NewRows([]string{"completed", "upcoming", "ongoing"}).
				AddRow(7, 3, 1))

		completed, upcoming, ongoing, err := repo.CountTripsByStatus()
		require.NoError(t, err)
		assert.Equal(t, 7, completed)
		assert.Equal(t, 3, upcoming)
		assert.Equal(t, 1, ongoing)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardRepositorySumProfitAndLoss(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewDashboardRepository(mockDB)

		mock.ExpectQuery(`FROM trip_revenues`).
			WillReturnRows(sqlmock.NewRows([]string{"total_profit", "total_loss"}).
				AddRow(450000, 20000))

		profit, loss, err := repo.SumProfitAndLoss()
		require.NoError(t, err)
		assert.Equal(t, int64(450000), profit)
		assert.Equal(t, int64(20000), loss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewDashboardRepository(mockDB)

		mock.ExpectQuery(`FROM trip_revenues`).
			WillReturnError(errors.New("connection refused"))

		_, _, err := repo.SumProfitAndLoss()
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardRepositoryGetLossMakingTrips(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewDashboardRepository(mockDB)

		// A trip with revenue 100000 and expenses 120000 surfaces as a
		// 20000 loss alert
		mock.ExpectQuery(`FROM trip_revenues tr`).
			WillReturnRows(sqlmock.NewRows([]string{"cruise_id", "name", "loss"}).
				AddRow("cruise-1", "Monsoon Special", 20000))

		trips, err := repo.GetLossMakingTrips()
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, "Monsoon Special", trips[0].Name)
		assert.Equal(t, int64(20000), trips[0].Loss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Losses", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewDashboardRepository(mockDB)

		mock.ExpectQuery(`FROM trip_revenues tr`).
			WillReturnRows(sqlmock.NewRows([]string{"cruise_id", "name", "loss"}))

		trips, err := repo.GetLossMakingTrips()
		require.NoError(t, err)
		assert.Empty(t, trips)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDashboardRepositoryGetMonthlyRevenue(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewDashboardRepository(mockDB)

		mock.ExpectQuery(`FROM cruises c`).
			WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
				AddRow("2026-03", 169000).
				AddRow("2026-04", 250000))

		buckets, err := repo.GetMonthlyRevenue()
		require.NoError(t, err)
		require.Len(t, buckets, 2)
		assert.Equal(t, "2026-03", buckets[0].Month)
		assert.Equal(t, int64(169000), buckets[0].Revenue)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
