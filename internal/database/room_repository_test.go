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

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "number", "status", "price", "capacity", "description",
		"category_id", "cruise_id", "created_at", "updated_at",
	})
}

func TestRoomRepositoryGetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM rooms`).
			WithArgs("room-1").
			WillReturnRows(roomRows().
				AddRow("room-1", "D01", "AVAILABLE", 35000, 6, "Deluxe suite", "c1", nil, now, now))

		room, err := repo.GetByID("room-1")
		require.NoError(t, err)
		assert.Equal(t, "D01", room.Number)
		assert.Equal(t, models.RoomStatusAvailable, room.Status)
		assert.Nil(t, room.CruiseID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Room Not Found", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		mock.ExpectQuery(`SELECT (.+) FROM rooms`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		room, err := repo.GetByID("missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, room)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomRepositoryGetByIDs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		now := time.Now()
		mock.ExpectQuery(`SELECT (.+) FROM rooms`).
			WithArgs("room-1", "room-2").
			WillReturnRows(roomRows().
				AddRow("room-1", "D01", "AVAILABLE", 35000, 6, "", "c1", nil, now, now).
				AddRow("room-2", "N01", "AVAILABLE", 23000, 2, "", "c4", nil, now, now))

		rooms, err := repo.GetByIDs([]string{"room-1", "room-2"})
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Input", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		rooms, err := repo.GetByIDs(nil)
		require.NoError(t, err)
		assert.Empty(t, rooms)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomRepositoryGetMaintenanceRooms(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		mock.ExpectQuery(`SELECT id, number, description`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "number", "description"}).
				AddRow("room-9", "PS02", "Broken air conditioning"))

		rooms, err := repo.GetMaintenanceRooms()
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "PS02", rooms[0].Number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomRepositoryUpdate(t *testing.T) {
	status := "MAINTENANCE"
	description := "Leaking shower"

	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		mock.ExpectExec(`UPDATE rooms`).
			WithArgs(status, description, "room-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update("room-1", &models.UpdateRoomRequest{Status: &status, Description: &description})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Fields", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		err := repo.Update("room-1", &models.UpdateRoomRequest{})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Room Not Found", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		mock.ExpectExec(`UPDATE rooms`).
			WithArgs(status, "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update("missing", &models.UpdateRoomRequest{Status: &status})
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRoomRepositoryDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		mock.ExpectExec(`DELETE FROM rooms`).
			WithArgs("room-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("room-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mockDB, mock := newMockDB(t)
		repo := NewRoomRepository(mockDB)

		mock.ExpectExec(`DELETE FROM rooms`).
			WithArgs("room-1").
			WillReturnError(errors.New("connection refused"))

		assert.Error(t, repo.Delete("room-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
