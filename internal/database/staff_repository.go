package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db DB
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff member
func (r *StaffRepository) Create(staff *models.Staff) error {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}

	query := `
		INSERT INTO staff (id, name, role, designation, salary)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		query,
		staff.ID, staff.Name, staff.Role, staff.Designation, staff.Salary,
	).Scan(&staff.CreatedAt, &staff.UpdatedAt)
}

// GetAll retrieves all staff members ordered by name
func (r *StaffRepository) GetAll() ([]models.Staff, error) {
	query := `
		SELECT id, name, role, designation, salary, created_at, updated_at
		FROM staff
		ORDER BY name
	`

	staff := []models.Staff{}
	if err := r.db.Select(&staff, query); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetByID retrieves a staff member by ID
func (r *StaffRepository) GetByID(staffID string) (*models.Staff, error) {
	query := `
		SELECT id, name, role, designation, salary, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	staff := &models.Staff{}
	if err := r.db.Get(staff, query, staffID); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetByIDs retrieves the staff members matching the given IDs
func (r *StaffRepository) GetByIDs(staffIDs []string) ([]models.Staff, error) {
	if len(staffIDs) == 0 {
		return []models.Staff{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, role, designation, salary, created_at, updated_at
		FROM staff
		WHERE id IN (?)
	`, staffIDs)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	staff := []models.Staff{}
	if err := r.db.Select(&staff, query, args...); err != nil {
		return nil, err
	}

	return staff, nil
}

// GetByCruiseID retrieves the staff assigned to a cruise
func (r *StaffRepository) GetByCruiseID(cruiseID string) ([]models.Staff, error) {
	query := `
		SELECT s.id, s.name, s.role, s.designation, s.salary, s.created_at, s.updated_at
		FROM staff s
		JOIN cruise_staff cs ON cs.staff_id = s.id
		WHERE cs.cruise_id = $1
		ORDER BY s.name
	`

	staff := []models.Staff{}
	if err := r.db.Select(&staff, query, cruiseID); err != nil {
		return nil, err
	}

	return staff, nil
}

// CountByRole returns headcount broken down by role
func (r *StaffRepository) CountByRole() (*models.StaffCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE role = 'FOOD') AS food,
			COUNT(*) FILTER (WHERE role = 'CLEANING') AS cleaning,
			COUNT(*) FILTER (WHERE role = 'EVENT') AS event
		FROM staff
	`

	counts := &models.StaffCounts{}
	if err := r.db.Get(counts, query); err != nil {
		return nil, err
	}

	return counts, nil
}

// Update updates a staff member
func (r *StaffRepository) Update(staffID string, req *models.UpdateStaffRequest) error {
	updates := []string{}
	args := []interface{}{}
	argCount := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argCount))
		args = append(args, *req.Name)
		argCount++
	}

	if req.Role != nil {
		updates = append(updates, fmt.Sprintf("role = $%d", argCount))
		args = append(args, *req.Role)
		argCount++
	}

	if req.Designation != nil {
		updates = append(updates, fmt.Sprintf("designation = $%d", argCount))
		args = append(args, *req.Designation)
		argCount++
	}

	if req.Salary != nil {
		updates = append(updates, fmt.Sprintf("salary = $%d", argCount))
		args = append(args, *req.Salary)
		argCount++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no fields to update")
	}

	updates = append(updates, "updated_at = NOW()")
	args = append(args, staffID)

	query := fmt.Sprintf(`
		UPDATE staff
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

// Delete deletes a staff member
func (r *StaffRepository) Delete(staffID string) error {
	query := `DELETE FROM staff WHERE id = $1`
	result, err := r.db.Exec(query, staffID)
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
