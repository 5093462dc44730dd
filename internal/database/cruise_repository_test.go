package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanline/cruise-admin-backend/internal/models"
)

func newCruiseRepoMock(t *testing.T) (*CruiseRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewCruiseRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func expectAvailabilityLock(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT id FROM room_categories ORDER BY id FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).
			AddRow("c1").AddRow("c2").AddRow("c3").AddRow("c4"))

	mock.ExpectQuery(`FROM room_categories c`).
		WillReturnRows(sqlmock.NewRows([]string{"category_id", "name", "price", "capacity", "available"}).
			AddRow("c1", models.CategoryDeluxe, 35000, 6, 25).
			AddRow("c2", models.CategoryPremiumGold, 30000, 4, 25).
			AddRow("c3", models.CategoryPremiumSilver, 27000, 2, 25).
			AddRow("c4", models.CategoryNormal, 23000, 2, 25))
}

func sampleCruise() *models.Cruise {
	return &models.Cruise{
		ID:                "cruise-1",
		Name:              "Summer Escape",
		BoardingLocation:  "Colombo",
		Destination:       "Maldives",
		StartDate:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC),
		Status:            models.CruiseStatusCompleted,
		RoomsBookedDeluxe: 2,
		RoomsBookedNormal: 3,
		PassengersDeluxe:  10,
		PassengersNormal:  6,
		TotalPassengers:   16,
		FoodStaffCount:    1,
	}
}

func TestCruiseRepositoryCreateHistorical(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectBegin()
		expectAvailabilityLock(mock)
		mock.ExpectQuery(`INSERT INTO cruises`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
				AddRow(time.Now(), time.Now()))
		mock.ExpectExec(`INSERT INTO trip_revenues`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM cruise_staff`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO cruise_staff`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM activity_assignments`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO activity_assignments`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		cruise := sampleCruise()
		revenue := &models.TripRevenue{TotalRevenue: 169000, FoodStaffCost: 5000, TotalExpenses: 5000}

		var checked []models.CategoryAvailability
		err := repo.CreateHistorical(cruise, revenue, []string{"s1"}, []string{"a1"},
			func(availability []models.CategoryAvailability) error {
				checked = availability
				return nil
			})

		assert.NoError(t, err)
		assert.Len(t, checked, 4)
		assert.Equal(t, cruise.ID, revenue.CruiseID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Capacity Rejection Rolls Back", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectBegin()
		expectAvailabilityLock(mock)
		mock.ExpectRollback()

		guardErr := models.NewValidationError("not enough Deluxe rooms: requested 6 but only 5 are available")
		err := repo.CreateHistorical(sampleCruise(), &models.TripRevenue{}, nil, nil,
			func([]models.CategoryAvailability) error { return guardErr })

		assert.ErrorIs(t, err, guardErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCruiseRepositoryUpdateHistorical(t *testing.T) {
	t.Run("Cruise Not Found", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectBegin()
		expectAvailabilityLock(mock)
		mock.ExpectExec(`UPDATE cruises SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.UpdateHistorical(sampleCruise(), &models.TripRevenue{}, nil, nil,
			func([]models.CategoryAvailability) error { return nil })

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCruiseRepositoryArchive(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectExec(`UPDATE cruises`).
			WithArgs(models.CruiseStatusCompleted, "cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Archive("cruise-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Idempotent", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		// An already-archived trip still matches by id, so archiving twice
		// succeeds both times and leaves the same state behind.
		for i := 0; i < 2; i++ {
			mock.ExpectExec(`UPDATE cruises`).
				WithArgs(models.CruiseStatusCompleted, "cruise-1").
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		assert.NoError(t, repo.Archive("cruise-1"))
		assert.NoError(t, repo.Archive("cruise-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cruise Not Found", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectExec(`UPDATE cruises`).
			WithArgs(models.CruiseStatusCompleted, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Archive("missing"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCruiseRepositoryDelete(t *testing.T) {
	t.Run("Success Removes All Dependents", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE rooms SET cruise_id = NULL`).
			WithArgs("cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(`DELETE FROM room_bookings`).
			WithArgs("cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(`DELETE FROM activity_assignments`).
			WithArgs("cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM cruise_staff`).
			WithArgs("cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM trip_revenues`).
			WithArgs("cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM cruises`).
			WithArgs("cruise-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Delete("cruise-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cruise Not Found", func(t *testing.T) {
		repo, mock := newCruiseRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE rooms SET cruise_id = NULL`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM room_bookings`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM activity_assignments`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM cruise_staff`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM trip_revenues`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM cruises`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.Delete("missing"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
