package models

import (
	"errors"
	"time"
)

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
)

// Room represents one physical cabin
type Room struct {
	ID          string     `json:"id" db:"id"`
	Number      string     `json:"number" db:"number"`
	Status      RoomStatus `json:"status" db:"status"`
	Price       int64      `json:"price" db:"price"`
	Capacity    int        `json:"capacity" db:"capacity"`
	Description *string    `json:"description,omitempty" db:"description"`
	CategoryID  *string    `json:"categoryId,omitempty" db:"category_id"`
	CruiseID    *string    `json:"cruiseId,omitempty" db:"cruise_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// CreateRoomRequest represents the request to create a new room.
// Price and capacity default to the category's values when omitted.
type CreateRoomRequest struct {
	Number      string  `json:"number" binding:"required"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Status      *string `json:"status,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateRoomRequest represents the request to update room information
type UpdateRoomRequest struct {
	Number      *string `json:"number,omitempty"`
	Status      *string `json:"status,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Capacity    *int    `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
}

func validateRoomStatus(status string) error {
	s := RoomStatus(status)
	if s != RoomStatusAvailable && s != RoomStatusMaintenance {
		return errors.New("invalid status: must be AVAILABLE or MAINTENANCE")
	}
	return nil
}

// Validate validates the CreateRoomRequest
func (req *CreateRoomRequest) Validate() error {
	if req.Status != nil {
		if err := validateRoomStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.Price != nil && *req.Price < 0 {
		return errors.New("price must not be negative")
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return errors.New("capacity must not be negative")
	}
	return nil
}

// Validate validates the UpdateRoomRequest
func (req *UpdateRoomRequest) Validate() error {
	if req.Status != nil {
		if err := validateRoomStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.Price != nil && *req.Price < 0 {
		return errors.New("price must not be negative")
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return errors.New("capacity must not be negative")
	}
	return nil
}

// MaintenanceRoom is the dashboard alert projection of a room under repair
type MaintenanceRoom struct {
	ID          string  `json:"id" db:"id"`
	Number      string  `json:"number" db:"number"`
	Description *string `json:"description" db:"description"`
}
