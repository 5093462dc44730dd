package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity
func (r *ActivityRepository) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activities (id, name, description, type, manager_name, manager_contact, cost, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		query,
		activity.ID, activity.Name, activity.Description, activity.Type,
		activity.ManagerName, activity.ManagerContact, activity.Cost,
		pq.Array(activity.Images),
	).Scan(&activity.CreatedAt, &activity.UpdatedAt)
}

// GetAll retrieves all activities ordered by name
func (r *ActivityRepository) GetAll() ([]models.Activity, error) {
	query := `
		SELECT id, name, description, type, manager_name, manager_contact, cost, images, created_at, updated_at
		FROM activities
		ORDER BY name
	`

	activities := []models.Activity{}
	if err := r.db.Select(&activities, query); err != nil {
		return nil, err
	}

	return activities, nil
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(activityID string) (*models.Activity, error) {
	query := `
		SELECT id, name, description, type, manager_name, manager_contact, cost, images, created_at, updated_at
		FROM activities
		WHERE id = $1
	`

	activity := &models.Activity{}
	if err := r.db.Get(activity, query, activityID); err != nil {
		return nil, err
	}

	return activity, nil
}

// GetByIDs retrieves the activities matching the given IDs
func (r *ActivityRepository) GetByIDs(activityIDs []string) ([]models.Activity, error) {
	if len(activityIDs) == 0 {
		return []models.Activity{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, description, type, manager_name, manager_contact, cost, images, created_at, updated_at
		FROM activities
		WHERE id IN (?)
	`, activityIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	activities := []models.Activity{}
	if err := r.db.Select(&activities, query, args...); err != nil {
		return nil, err
	}

	return activities, nil
}

// Count returns the total number of activities
func (r *ActivityRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM activities`); err != nil {
		return 0, err
	}
	return count, nil
}

// Update updates an activity
func (r *ActivityRepository) Update(activityID string, req *models.UpdateActivityRequest) error {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *req.Name)
		argCount++
	}

	if req.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argCount))
		args = append(args, *req.Description)
		argCount++
	}

	if req.Type != nil {
		updates = append(updates, fmt.Sprintf("type = $%d", argCount))
		args = append(args, *req.Type)
		argCount++
	}

	if req.ManagerName != nil {
		updates = append(updates, fmt.Sprintf("manager_name = $%d", argCount))
		args = append(args, *req.ManagerName)
		argCount++
	}

	if req.ManagerContact != nil {
		updates = append(updates, fmt.Sprintf("manager_contact = $%d", argCount))
		args = append(args, *req.ManagerContact)
		argCount++
	}

	if req.Cost != nil {
		updates = append(updates, fmt.Sprintf("cost = $%d", argCount))
		args = append(args, *req.Cost)
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
	args = append(args, activityID)

	query := fmt.Sprintf(`
		UPDATE activities
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

// Delete deletes an activity
func (r *ActivityRepository) Delete(activityID string) error {
	query := `DELETE FROM activities WHERE id = $1`
	result, err := r.db.Exec(query, activityID)
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
