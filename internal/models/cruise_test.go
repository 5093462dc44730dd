package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Upcoming", func(t *testing.T) {
		start := now.AddDate(0, 0, 7)
		end := now.AddDate(0, 0, 14)
		assert.Equal(t, CruiseStatusUpcoming, DeriveStatus(start, end, now, false))
	})

	t.Run("Ongoing", func(t *testing.T) {
		start := now.AddDate(0, 0, -2)
		end := now.AddDate(0, 0, 3)
		assert.Equal(t, CruiseStatusOngoing, DeriveStatus(start, end, now, false))
	})

	t.Run("Completed", func(t *testing.T) {
		start := now.AddDate(0, 0, -10)
		end := now.AddDate(0, 0, -3)
		assert.Equal(t, CruiseStatusCompleted, DeriveStatus(start, end, now, false))
	})

	t.Run("Starts Today", func(t *testing.T) {
		// A trip whose window contains now is ongoing
		start := now.Add(-time.Hour)
		end := now.AddDate(0, 0, 5)
		assert.Equal(t, CruiseStatusOngoing, DeriveStatus(start, end, now, false))
	})

	t.Run("Archived Pins Completed", func(t *testing.T) {
		// Archival overrides the dates, even for a future trip
		start := now.AddDate(0, 0, 7)
		end := now.AddDate(0, 0, 14)
		assert.Equal(t, CruiseStatusCompleted, DeriveStatus(start, end, now, true))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Plain Date", func(t *testing.T) {
		parsed, err := ParseDate("2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("RFC3339", func(t *testing.T) {
		parsed, err := ParseDate("2025-06-15T08:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 8, parsed.Hour())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseDate("15/06/2025")
		assert.Error(t, err)
	})
}

func TestHistoricalTripRequestValidate(t *testing.T) {
	valid := func() *HistoricalTripRequest {
		return &HistoricalTripRequest{
			Name:      "Summer Escape",
			StartDate: "2025-06-01",
			EndDate:   "2025-06-07",
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Bad Start Date", func(t *testing.T) {
		req := valid()
		req.StartDate = "June 1st"
		assert.Error(t, req.Validate())
	})

	t.Run("Negative Count", func(t *testing.T) {
		req := valid()
		req.PassengersDeluxe = -1
		assert.Error(t, req.Validate())
	})
}

func TestTripRevenueNetProfit(t *testing.T) {
	t.Run("Loss", func(t *testing.T) {
		rev := &TripRevenue{TotalRevenue: 100000, TotalExpenses: 120000}
		assert.Equal(t, int64(-20000), rev.NetProfit())
	})

	t.Run("Profit", func(t *testing.T) {
		rev := &TripRevenue{TotalRevenue: 250000, TotalExpenses: 180000}
		assert.Equal(t, int64(70000), rev.NetProfit())
	})
}
