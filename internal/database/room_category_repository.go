package database

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// RoomCategoryRepository handles database operations for room categories
type RoomCategoryRepository struct {
	db DB
}

// NewRoomCategoryRepository creates a new RoomCategoryRepository
func NewRoomCategoryRepository(db DB) *RoomCategoryRepository {
	return &RoomCategoryRepository{db: db}
}

// Create creates a new room category
func (r *RoomCategoryRepository) Create(category *models.RoomCategory) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	query := `
		INSERT INTO room_categories (id, name, price, capacity, features, images)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		query,
		category.ID, category.Name, category.Price, category.Capacity,
		pq.Array(category.Features), pq.Array(category.Images),
	).Scan(&category.CreatedAt, &category.UpdatedAt)
}

// GetAll retrieves all room categories ordered by price descending
func (r *RoomCategoryRepository) GetAll() ([]models.RoomCategory, error) {
	query := `
		SELECT id, name, price, capacity, features, images, created_at, updated_at
		FROM room_categories
		ORDER BY price DESC
	`

	categories := []models.RoomCategory{}
	if err := r.db.Select(&categories, query); err != nil {
		return nil, err
	}

	return categories, nil
}

// GetByID retrieves a room category by ID
func (r *RoomCategoryRepository) GetByID(categoryID string) (*models.RoomCategory, error) {
	query := `
		SELECT id, name, price, capacity, features, images, created_at, updated_at
		FROM room_categories
		WHERE id = $1
	`

	category := &models.RoomCategory{}
	if err := r.db.Get(category, query, categoryID); err != nil {
		return nil, err
	}

	return category, nil
}

// GetByName retrieves a room category by its fixed name
func (r *RoomCategoryRepository) GetByName(name string) (*models.RoomCategory, error) {
	query := `
		SELECT id, name, price, capacity, features, images, created_at, updated_at
		FROM room_categories
		WHERE name = $1
	`

	category := &models.RoomCategory{}
	if err := r.db.Get(category, query, name); err != nil {
		return nil, err
	}

	return category, nil
}

// Update updates a room category's settings
func (r *RoomCategoryRepository) Update(categoryID string, req *models.UpdateRoomCategoryRequest) error {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

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

	if req.Features != nil {
		updates = append(updates, fmt.Sprintf("features = $%d", argCount))
		args = append(args, pq.Array(req.Features))
		argCount++
	}

	if req.Images != nil {
		updates = append(updates, fmt.Sprintf("images = $%d", argCount))
		args = append(args, pq.Array(req.Images))
		argCount++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, categoryID)

	query := fmt.Sprintf(`
		UPDATE room_categories
		SET %s
		WHERE id = $%d
	`, strings.Join(updates, ", "), argCount)

	_, err := r.db.Exec(query, args...)
	return err
}

const availabilityQuery = `
	SELECT
		c.id AS category_id,
		c.name,
		c.price,
		c.capacity,
		COUNT(r.id) FILTER (WHERE r.status = 'AVAILABLE') AS available
	FROM room_categories c
	LEFT JOIN rooms r ON r.category_id = c.id
	GROUP BY c.id, c.name, c.price, c.capacity
`

// GetAvailability returns the count of AVAILABLE rooms per category
func (r *RoomCategoryRepository) GetAvailability() ([]models.CategoryAvailability, error) {
	availability := []models.CategoryAvailability{}
	if err := r.db.Select(&availability, availabilityQuery); err != nil {
		return nil, err
	}

	return availability, nil
}

// GetAvailabilityForUpdate locks the category rows within the given
// transaction and returns availability. The lock serializes concurrent
// capacity checks so two trips cannot both pass against the same rooms.
func GetAvailabilityForUpdate(tx *sqlx.Tx) ([]models.CategoryAvailability, error) {
	lockQuery := `SELECT id FROM room_categories ORDER BY id FOR UPDATE`
	var lockedIDs []string
	if err := tx.Select(&lockedIDs, lockQuery); err != nil {
		return nil, err
	}

	availability := []models.CategoryAvailability{}
	if err := tx.Select(&availability, availabilityQuery); err != nil {
		return nil, err
	}

	return availability, nil
}
