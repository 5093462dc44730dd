package database

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanline/cruise-admin-backend/internal/models"
)

func staffRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "role", "designation", "salary", "created_at", "updated_at",
	})
}

func TestStaffRepositoryGetByIDs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewStaffRepository(mockDB)

		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM staff`).
			WithArgs("s1", "s2").
			WillReturnRows(staffRows().
				AddRow("s1", "Head Chef", "FOOD", "Chef", 5000, now, now).
				AddRow("s2", "Housekeeper", "CLEANING", "Housekeeping", 3000, now, now))

		staff, err := repo.GetByIDs([]string{"s1", "s2"})
		require.NoError(t, err)
		require.Len(t, staff, 2)
		assert.Equal(t, models.RoleFood, staff[0].Role)
		assert.Equal(t, int64(5000), staff[0].Salary)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Input", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewStaffRepository(mockDB)

		staff, err := repo.GetByIDs(nil)
		require.NoError(t, err)
		assert.Empty(t, staff)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStaffRepositoryCountByRole(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewStaffRepository(mockDB)

		mock.ExpectQuery(`SELECT (.+) FROM staff`).
			WillReturnRows(sqlmock.NewRows([]string{"total", "food", "cleaning", "event"}).
				AddRow(6, 2, 2, 2))

		counts, err := repo.CountByRole()
		require.NoError(t, err)
		assert.Equal(t, 6, counts.Total)
		assert.Equal(t, 2, counts.Food)
		assert.Equal(t, 2, counts.Cleaning)
		assert.Equal(t, 2, counts.Event)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewStaffRepository(mockDB)

		mock.ExpectQuery(`SELECT (.+) FROM staff`).
			WillReturnError(errors.New("connection refused"))

		counts, err := repo.CountByRole()
		assert.Error(t, err)
		assert.Nil(t, counts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStaffRepositoryDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewStaffRepository(mockDB)

		mock.ExpectExec(`DELETE FROM staff`).
			WithArgs("s1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("s1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Staff Not Found", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewStaffRepository(mockDB)

		mock.ExpectExec(`DELETE FROM staff`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete("missing"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
