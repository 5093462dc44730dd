package database

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin account
func (r *AdminRepository) Create(admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}

	query := `
		INSERT INTO admins (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(query, admin.ID, admin.Email, admin.PasswordHash).
		Scan(&admin.CreatedAt, &admin.UpdatedAt)
}

// GetByEmail retrieves an admin by email, returning nil when none exists
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, last_login_at, created_at, updated_at
		FROM admins
		WHERE email = $1
	`

	admin := &models.Admin{}
	err := r.db.Get(admin, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return admin, nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(adminID uuid.UUID) (*models.Admin, error) {
	query := `
		SELECT id, email, password_hash, last_login_at, created_at, updated_at
		FROM admins
		WHERE id = $1
	`

	admin := &models.Admin{}
	if err := r.db.Get(admin, query, adminID); err != nil {
		return nil, err
	}

	return admin, nil
}

// UpdateLastLogin records the time of a successful login
func (r *AdminRepository) UpdateLastLogin(adminID uuid.UUID) error {
	query := `UPDATE admins SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(query, adminID)
	return err
}

// UpdatePassword replaces the stored password hash
func (r *AdminRepository) UpdatePassword(adminID uuid.UUID, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.db.Exec(query, passwordHash, adminID)
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

// CreateSession records one successful login for audit purposes
func (r *AdminRepository) CreateSession(session *models.AdminSession) error {
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	query := `
		INSERT INTO admin_sessions (id, admin_id, ip_address, device_type, os, browser, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	return r.db.QueryRow(
		query,
		session.ID, session.AdminID, session.IPAddress,
		session.DeviceType, session.OS, session.Browser, session.UserAgent,
	).Scan(&session.CreatedAt)
}

// GetRecentSessions retrieves the most recent login records for an admin
func (r *AdminRepository) GetRecentSessions(adminID uuid.UUID, limit int) ([]models.AdminSession, error) {
	query := `
		SELECT id, admin_id, ip_address, device_type, os, browser, user_agent, created_at
		FROM admin_sessions
		WHERE admin_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	sessions := []models.AdminSession{}
	if err := r.db.Select(&sessions, query, adminID, limit); err != nil {
		return nil, err
	}

	return sessions, nil
}
