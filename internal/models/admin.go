package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin represents the administrator account
type Admin struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// AdminSession records one successful login for audit purposes
type AdminSession struct {
	ID         uuid.UUID `json:"id" db:"id"`
	AdminID    uuid.UUID `json:"adminId" db:"admin_id"`
	IPAddress  string    `json:"ipAddress" db:"ip_address"`
	DeviceType string    `json:"deviceType" db:"device_type"`
	OS         string    `json:"os" db:"os"`
	Browser    string    `json:"browser" db:"browser"`
	UserAgent  string    `json:"userAgent" db:"user_agent"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// LoginRequest is the credential exchange payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and the admin identity
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Admin   AdminSummary `json:"admin"`
}

// AdminSummary is the public projection of an Admin
type AdminSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
