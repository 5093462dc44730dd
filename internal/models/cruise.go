package models

import (
	"errors"
	"fmt"
	"time"
)

// CruiseStatus represents the lifecycle phase of a trip
type CruiseStatus string

const (
	CruiseStatusUpcoming  CruiseStatus = "UPCOMING"
	CruiseStatusOngoing   CruiseStatus = "ONGOING"
	CruiseStatusCompleted CruiseStatus = "COMPLETED"
)

// DeriveStatus computes the lifecycle status from the trip's date range.
// Status is a projection of the dates, never an independent source of truth;
// archival pins it to COMPLETED regardless of dates.
func DeriveStatus(start, end, now time.Time, archived bool) CruiseStatus {
	if archived {
		return CruiseStatusCompleted
	}
	if end.Before(now) {
		return CruiseStatusCompleted
	}
	if start.After(now) {
		return CruiseStatusUpcoming
	}
	return CruiseStatusOngoing
}

// Cruise represents one scheduled or historical voyage
type Cruise struct {
	ID               string       `json:"id" db:"id"`
	Name             string       `json:"name" db:"name"`
	BoardingLocation string       `json:"boardingLocation" db:"boarding_location"`
	Destination      string       `json:"destination" db:"destination"`
	StartDate        time.Time    `json:"startDate" db:"start_date"`
	EndDate          time.Time    `json:"endDate" db:"end_date"`
	Status           CruiseStatus `json:"status" db:"status"`
	IsArchived       bool         `json:"isArchived" db:"is_archived"`

	RoomsBookedDeluxe        int `json:"roomsBookedDeluxe" db:"rooms_booked_deluxe"`
	RoomsBookedPremiumGold   int `json:"roomsBookedPremiumGold" db:"rooms_booked_premium_gold"`
	RoomsBookedPremiumSilver int `json:"roomsBookedPremiumSilver" db:"rooms_booked_premium_silver"`
	RoomsBookedNormal        int `json:"roomsBookedNormal" db:"rooms_booked_normal"`

	PassengersDeluxe        int `json:"passengersDeluxe" db:"passengers_deluxe"`
	PassengersPremiumGold   int `json:"passengersPremiumGold" db:"passengers_premium_gold"`
	PassengersPremiumSilver int `json:"passengersPremiumSilver" db:"passengers_premium_silver"`
	PassengersNormal        int `json:"passengersNormal" db:"passengers_normal"`
	TotalPassengers         int `json:"totalPassengers" db:"total_passengers"`

	FoodStaffCount     int `json:"foodStaffCount" db:"food_staff_count"`
	CleaningStaffCount int `json:"cleaningStaffCount" db:"cleaning_staff_count"`
	EventStaffCount    int `json:"eventStaffCount" db:"event_staff_count"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Populated on detail/list reads
	Revenue    *TripRevenue         `json:"revenue,omitempty" db:"-"`
	Rooms      []Room               `json:"rooms,omitempty" db:"-"`
	Staff      []Staff              `json:"staff,omitempty" db:"-"`
	Activities []ActivityAssignment `json:"activities,omitempty" db:"-"`
	Bookings   []RoomBooking        `json:"bookings,omitempty" db:"-"`
}

// RoomsBookedByCategory returns the booked-room counts keyed by category name.
func (c *Cruise) RoomsBookedByCategory() map[string]int {
	return map[string]int{
		CategoryDeluxe:        c.RoomsBookedDeluxe,
		CategoryPremiumGold:   c.RoomsBookedPremiumGold,
		CategoryPremiumSilver: c.RoomsBookedPremiumSilver,
		CategoryNormal:        c.RoomsBookedNormal,
	}
}

// TripRevenue is the persisted financial summary for one cruise
type TripRevenue struct {
	ID                string    `json:"id" db:"id"`
	CruiseID          string    `json:"cruiseId" db:"cruise_id"`
	TotalRevenue      int64     `json:"totalRevenue" db:"total_revenue"`
	FoodStaffCost     int64     `json:"foodStaffCost" db:"food_staff_cost"`
	CleaningStaffCost int64     `json:"cleaningStaffCost" db:"cleaning_staff_cost"`
	EventStaffCost    int64     `json:"eventStaffCost" db:"event_staff_cost"`
	ActivityCost      int64     `json:"activityCost" db:"activity_cost"`
	TotalExpenses     int64     `json:"totalExpenses" db:"total_expenses"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// NetProfit is negative for a loss-making trip.
func (r *TripRevenue) NetProfit() int64 {
	return r.TotalRevenue - r.TotalExpenses
}

// ActivityAssignment schedules one activity on a given day of a cruise
type ActivityAssignment struct {
	ID         string    `json:"id" db:"id"`
	CruiseID   string    `json:"cruiseId" db:"cruise_id"`
	ActivityID string    `json:"activityId" db:"activity_id"`
	Day        int       `json:"day" db:"day"`
	Activity   *Activity `json:"activity,omitempty" db:"-"`
}

// RoomBooking links one room to the cruise it is assigned to
type RoomBooking struct {
	ID       string `json:"id" db:"id"`
	CruiseID string `json:"cruiseId" db:"cruise_id"`
	RoomID   string `json:"roomId" db:"room_id"`
	Room     *Room  `json:"room,omitempty" db:"-"`
}

// ActivitySchedule pairs an activity with the trip day it runs on
type ActivitySchedule struct {
	ActivityID string `json:"activityId" binding:"required"`
	Day        int    `json:"day"`
}

// CreateCruiseRequest is the plan-ahead flow: rooms and staff selected by id,
// activities scheduled by day.
type CreateCruiseRequest struct {
	Name             string             `json:"name" binding:"required"`
	BoardingLocation string             `json:"boardingLocation"`
	Destination      string             `json:"destination"`
	StartDate        string             `json:"startDate" binding:"required"`
	EndDate          string             `json:"endDate" binding:"required"`
	RoomIDs          []string           `json:"rooms"`
	StaffIDs         []string           `json:"staff"`
	Activities       []ActivitySchedule `json:"activities"`
}

// Validate validates the CreateCruiseRequest
func (req *CreateCruiseRequest) Validate() error {
	if _, err := ParseDate(req.StartDate); err != nil {
		return fmt.Errorf("invalid startDate: %w", err)
	}
	if _, err := ParseDate(req.EndDate); err != nil {
		return fmt.Errorf("invalid endDate: %w", err)
	}
	return nil
}

// HistoricalTripRequest is the log-a-past-trip flow: aggregate counts entered
// directly, financials computed server-side from live staff/activity/category
// data at submission time.
type HistoricalTripRequest struct {
	Name             string `json:"name" binding:"required"`
	BoardingLocation string `json:"boardingLocation"`
	Destination      string `json:"destination"`
	StartDate        string `json:"startDate" binding:"required"`
	EndDate          string `json:"endDate" binding:"required"`

	RoomsBookedDeluxe        int `json:"roomsBookedDeluxe"`
	RoomsBookedPremiumGold   int `json:"roomsBookedPremiumGold"`
	RoomsBookedPremiumSilver int `json:"roomsBookedPremiumSilver"`
	RoomsBookedNormal        int `json:"roomsBookedNormal"`

	PassengersDeluxe        int `json:"passengersDeluxe"`
	PassengersPremiumGold   int `json:"passengersPremiumGold"`
	PassengersPremiumSilver int `json:"passengersPremiumSilver"`
	PassengersNormal        int `json:"passengersNormal"`
	TotalPassengers         int `json:"totalPassengers"`

	SelectedStaffIDs    []string `json:"selectedStaffIds"`
	SelectedActivityIDs []string `json:"selectedActivityIds"`
}

// RoomsBookedByCategory returns the requested booked-room counts keyed by
// category name.
func (req *HistoricalTripRequest) RoomsBookedByCategory() map[string]int {
	return map[string]int{
		CategoryDeluxe:        req.RoomsBookedDeluxe,
		CategoryPremiumGold:   req.RoomsBookedPremiumGold,
		CategoryPremiumSilver: req.RoomsBookedPremiumSilver,
		CategoryNormal:        req.RoomsBookedNormal,
	}
}

// PassengerSum returns the per-category passenger total.
func (req *HistoricalTripRequest) PassengerSum() int {
	return req.PassengersDeluxe + req.PassengersPremiumGold +
		req.PassengersPremiumSilver + req.PassengersNormal
}

// Validate validates the HistoricalTripRequest. Passenger-sum and capacity
// consistency are checked by the trip service guard so their failure messages
// can name the offending numbers.
func (req *HistoricalTripRequest) Validate() error {
	if _, err := ParseDate(req.StartDate); err != nil {
		return fmt.Errorf("invalid startDate: %w", err)
	}
	if _, err := ParseDate(req.EndDate); err != nil {
		return fmt.Errorf("invalid endDate: %w", err)
	}
	for _, n := range []int{
		req.RoomsBookedDeluxe, req.RoomsBookedPremiumGold,
		req.RoomsBookedPremiumSilver, req.RoomsBookedNormal,
		req.PassengersDeluxe, req.PassengersPremiumGold,
		req.PassengersPremiumSilver, req.PassengersNormal,
		req.TotalPassengers,
	} {
		if n < 0 {
			return errors.New("counts must not be negative")
		}
	}
	return nil
}

// ParseDate accepts the formats the dashboard submits: a plain date or a full
// RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("must be YYYY-MM-DD or RFC3339: %s", value)
	}
	return t, nil
}
