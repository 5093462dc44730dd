package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db DB
}

// NewRoomRepository creates a new RoomRepository
func NewRoomRepository(db DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room
func (r *RoomRepository) Create(room *models.Room) error {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}

	query := `
		INSERT INTO rooms (id, number, status, price, capacity, description, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		query,
		room.ID, room.Number, room.Status, room.Price, room.Capacity,
		room.Description, room.CategoryID,
	).Scan(&room.CreatedAt, &room.UpdatedAt)
}

// GetAll retrieves all rooms ordered by number
func (r *RoomRepository) GetAll() ([]models.Room, error) {
	query := `
		SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
		FROM rooms
		ORDER BY number
	`

	rooms := []models.Room{}
	if err := r.db.Select(&rooms, query); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(roomID string) (*models.Room, error) {
	query := `
		SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	room := &models.Room{}
	if err := r.db.Get(room, query, roomID); err != nil {
		return nil, err
	}

	return room, nil
}

// GetByIDs retrieves the rooms matching the given IDs
func (r *RoomRepository) GetByIDs(roomIDs []string) ([]models.Room, error) {
	if len(roomIDs) == 0 {
		return []models.Room{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
		FROM rooms
		WHERE id IN (?)
	`, roomIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	rooms := []models.Room{}
	if err := r.db.Select(&rooms, query, args...); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetByCategoryID retrieves all rooms in a category
func (r *RoomRepository) GetByCategoryID(categoryID string) ([]models.Room, error) {
	query := `
		SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
		FROM rooms
		WHERE category_id = $1
		ORDER BY number
	`

	rooms := []models.Room{}
	if err := r.db.Select(&rooms, query, categoryID); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetByCruiseID retrieves all rooms assigned to a cruise
func (r *RoomRepository) GetByCruiseID(cruiseID string) ([]models.Room, error) {
	query := `
		SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
		FROM rooms
		WHERE cruise_id = $1
		ORDER BY number
	`

	rooms := []models.Room{}
	if err := r.db.Select(&rooms, query, cruiseID); err != nil {
		return nil, err
	}

	return rooms, nil
}

// GetMaintenanceRooms retrieves the dashboard alert projection of rooms under repair
func (r *RoomRepository) GetMaintenanceRooms() ([]models.MaintenanceRoom, error) {
	query := `
		SELECT id, number, description
		FROM rooms
		WHERE status = 'MAINTENANCE'
		ORDER BY number
	`

	rooms := []models.MaintenanceRoom{}
	if err := r.db.Select(&rooms, query); err != nil {
		return nil, err
	}

	return rooms, nil
}

// Update updates a room
func (r *RoomRepository) Update(roomID string, req *models.UpdateRoomRequest) error {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Number != nil {
		updates = append(updates, fmt.Sprintf("number = $%d", argCount))
		args = append(args, *req.Number)
		argCount++
	}

	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *req.Status)
		argCount++
	}

	if req.Price != nil {
		updates = append(updates, fmt.Sprintf("price = $%d", argCount))
		args = append(args, *req.Price)
		argCount++
	}

	if req.Capacity != nil {
		updates = append(updates, fmt.Sprintf("capacity = $%d", argCount))
		args = append(args, *req.Capacity)
		argCount++
	}

	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argCount))
		args = append(args, *req.Description)
		argCount++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, roomID)

	query := fmt.Sprintf(`
		UPDATE rooms
		SET %s
		WHERE id = $%d
	`, strings.Join(updates, ", "), argCount)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete deletes a room
func (r *RoomRepository) Delete(roomID string) error {
	query := `DELETE FROM rooms WHERE id = $1`
	result, err := r.db.Exec(query, roomID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
