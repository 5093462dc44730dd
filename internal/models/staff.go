package models

import (
	"errors"
	"time"
)

// StaffRole represents the department a staff member belongs to
type StaffRole string

const (
	RoleFood     StaffRole = "FOOD"
	RoleCleaning StaffRole = "CLEANING"
	RoleEvent    StaffRole = "EVENT"
)

// Staff represents one crew member
type Staff struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Role        StaffRole `json:"role" db:"role"`
	Designation string    `json:"designation" db:"designation"`
	Salary      int64     `json:"salary" db:"salary"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateStaffRequest represents the request to create a staff member
type CreateStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Designation string `json:"designation"`
	Salary      int64  `json:"salary"`
}

// UpdateStaffRequest represents the request to update a staff member
type UpdateStaffRequest struct {
	Name        *string `json:"name,omitempty"`
	Role        *string `json:"role,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Salary      *int64  `json:"salary,omitempty"`
}

func validateStaffRole(role string) error {
	r := StaffRole(role)
	if r != RoleFood && r != RoleCleaning && r != RoleEvent {
		return errors.New("invalid role: must be FOOD, CLEANING, or EVENT")
	}
	return nil
}

// Validate validates the CreateStaffRequest
func (req *CreateStaffRequest) Validate() error {
	if err := validateStaffRole(req.Role); err != nil {
		return err
	}
	if req.Salary < 0 {
		return errors.New("salary must not be negative")
	}
	return nil
}

// Validate validates the UpdateStaffRequest
func (req *UpdateStaffRequest) Validate() error {
	if req.Role != nil {
		if err := validateStaffRole(*req.Role); err != nil {
			return err
		}
	}
	if req.Salary != nil && *req.Salary < 0 {
		return errors.New("salary must not be negative")
	}
	return nil
}
