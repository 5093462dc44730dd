package models

import (
	"errors"
	"time"
)

// Activity represents an onboard entertainment offering run by an external
// manager at a fixed cost per trip.
type Activity struct {
	ID             string      `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	Description    string      `json:"description" db:"description"`
	Type           string      `json:"type" db:"type"`
	ManagerName    string      `json:"managerName" db:"manager_name"`
	ManagerContact string      `json:"managerContact" db:"manager_contact"`
	Cost           int64       `json:"cost" db:"cost"`
	Images         StringArray `json:"images" db:"images"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description"`
	Type           string   `json:"type"`
	ManagerName    string   `json:"managerName"`
	ManagerContact string   `json:"managerContact"`
	Cost           int64    `json:"cost"`
	Images         []string `json:"images,omitempty"`
}

// UpdateActivityRequest represents the request to update an activity
type UpdateActivityRequest struct {
	Name           *string  `json:"name,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Type           *string  `json:"type,omitempty"`
	ManagerName    *string  `json:"managerName,omitempty"`
	ManagerContact *string  `json:"managerContact,omitempty"`
	Cost           *int64   `json:"cost,omitempty"`
	Images         []string `json:"images,omitempty"`
}

// Validate validates the CreateActivityRequest
func (req *CreateActivityRequest) Validate() error {
	if req.Cost < 0 {
		return errors.New("cost must not be negative")
	}
	return nil
}

// Validate validates the UpdateActivityRequest
func (req *UpdateActivityRequest) Validate() error {
	if req.Cost != nil && *req.Cost < 0 {
		return errors.New("cost must not be negative")
	}
	return nil
}
