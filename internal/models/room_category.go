package models

import (
	"errors"
	"time"
)

// Fixed cabin category names. Every cruise books rooms against these four.
const (
	CategoryDeluxe        = "Deluxe"
	CategoryPremiumGold   = "Premium Gold"
	CategoryPremiumSilver = "Premium Silver"
	CategoryNormal        = "Normal"
)

// CategoryNames lists the fixed categories in display order.
var CategoryNames = []string{CategoryDeluxe, CategoryPremiumGold, CategoryPremiumSilver, CategoryNormal}

// RoomCategory represents a class of cabin with its own pricing and capacity
type RoomCategory struct {
	ID        string      `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Price     int64       `json:"price" db:"price"`
	Capacity  int         `json:"capacity" db:"capacity"`
	Features  StringArray `json:"features" db:"features"`
	Images    StringArray `json:"images" db:"images"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`

	// Rooms is populated on list/detail reads
	Rooms []Room `json:"rooms,omitempty" db:"-"`
}

// UpdateRoomCategoryRequest represents the request to update category settings
type UpdateRoomCategoryRequest struct {
	Price    *int64   `json:"price,omitempty"`
	Capacity *int     `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
	Images   []string `json:"images,omitempty"`
}

// Validate validates the UpdateRoomCategoryRequest
func (req *UpdateRoomCategoryRequest) Validate() error {
	if req.Price != nil && *req.Price < 0 {
		return errors.New("price must not be negative")
	}
	if req.Capacity != nil && *req.Capacity < 0 {
		return errors.New("capacity must not be negative")
	}
	return nil
}

// CategoryAvailability is the number of AVAILABLE rooms per category at the
// time of check.
type CategoryAvailability struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Price      int64  `db:"price"`
	Capacity   int    `db:"capacity"`
	Available  int    `db:"available"`
}
