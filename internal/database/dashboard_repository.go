package database

import (
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// DashboardRepository runs the aggregate queries behind the admin dashboard
type DashboardRepository struct {
	db DB
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// tripStatusCounts holds cruise counts per lifecycle status
type tripStatusCounts struct {
	Completed int `db:"completed"`
	Upcoming  int `db:"upcoming"`
	Ongoing   int `db:"ongoing"`
}

// CountTripsByStatus returns completed, upcoming, and ongoing trip counts.
// Completed includes archived trips.
func (r *DashboardRepository) CountTripsByStatus() (completed, upcoming, ongoing int, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'COMPLETED' OR is_archived) AS completed,
			COUNT(*) FILTER (WHERE status = 'UPCOMING' AND NOT is_archived) AS upcoming,
			COUNT(*) FILTER (WHERE status = 'ONGOING' AND NOT is_archived) AS ongoing
		FROM cruises
	`

	counts := tripStatusCounts{}
	if err := r.db.Get(&counts, query); err != nil {
		return 0, 0, 0, err
	}

	return counts.Completed, counts.Upcoming, counts.Ongoing, nil
}

// profitLoss holds the summed profit and loss across all trips
type profitLoss struct {
	TotalProfit int64 `db:"total_profit"`
	TotalLoss   int64 `db:"total_loss"`
}

// SumProfitAndLoss returns the total profit across profitable trips and the
// total loss across loss-making trips, both as non-negative amounts.
func (r *DashboardRepository) SumProfitAndLoss() (totalProfit, totalLoss int64, err error) {
	query := `
		SELECT
			COALESCE(SUM(total_revenue - total_expenses) FILTER (WHERE total_revenue >= total_expenses), 0) AS total_profit,
			COALESCE(SUM(total_expenses - total_revenue) FILTER (WHERE total_revenue < total_expenses), 0) AS total_loss
		FROM trip_revenues
	`

	sums := profitLoss{}
	if err := r.db.Get(&sums, query); err != nil {
		return 0, 0, err
	}

	return sums.TotalProfit, sums.TotalLoss, nil
}

// GetLossMakingTrips returns trips whose expenses exceed revenue, worst first
func (r *DashboardRepository) GetLossMakingTrips() ([]models.LossMakingTrip, error) {
	query := `
		SELECT c.id AS cruise_id, c.name, tr.total_expenses - tr.total_revenue AS loss
		FROM trip_revenues tr
		JOIN cruises c ON c.id = tr.cruise_id
		WHERE tr.total_expenses > tr.total_revenue
		ORDER BY loss DESC
	`

	trips := []models.LossMakingTrip{}
	if err := r.db.Select(&trips, query); err != nil {
		return nil, err
	}

	return trips, nil
}

// GetTripsPerMonth returns trip counts bucketed by start month over the last
// six months, oldest bucket first
func (r *DashboardRepository) GetTripsPerMonth() ([]models.MonthlyTripCount, error) {
	query := `
		SELECT to_char(date_trunc('month', start_date), 'YYYY-MM') AS month, COUNT(*) AS count
		FROM cruises
		WHERE start_date >= date_trunc('month', NOW()) - INTERVAL '5 months'
		GROUP BY date_trunc('month', start_date)
		ORDER BY date_trunc('month', start_date)
	`

	buckets := []models.MonthlyTripCount{}
	if err := r.db.Select(&buckets, query); err != nil {
		return nil, err
	}

	return buckets, nil
}

// GetRevenuePerTrip returns the per-trip financial summary for the dashboard
// chart, newest trips first
func (r *DashboardRepository) GetRevenuePerTrip() ([]models.RevenuePerTrip, error) {
	query := `
		SELECT
			c.id AS cruise_id,
			c.name,
			tr.total_revenue,
			tr.total_expenses AS total_cost,
			tr.total_revenue - tr.total_expenses AS profit
		FROM trip_revenues tr
		JOIN cruises c ON c.id = tr.cruise_id
		ORDER BY c.start_date DESC
	`

	trips := []models.RevenuePerTrip{}
	if err := r.db.Select(&trips, query); err != nil {
		return nil, err
	}

	return trips, nil
}

// GetMonthlyRevenue returns revenue summed by trip start month over the last
// six months, oldest bucket first
func (r *DashboardRepository) GetMonthlyRevenue() ([]models.MonthlyRevenue, error) {
	query := `
		SELECT
			to_char(date_trunc('month', c.start_date), 'YYYY-MM') AS month,
			COALESCE(SUM(tr.total_revenue), 0) AS revenue
		FROM cruises c
		JOIN trip_revenues tr ON tr.cruise_id = c.id
		WHERE c.start_date >= date_trunc('month', NOW()) - INTERVAL '5 months'
		GROUP BY date_trunc('month', c.start_date)
		ORDER BY date_trunc('month', c.start_date)
	`

	buckets := []models.MonthlyRevenue{}
	if err := r.db.Select(&buckets, query); err != nil {
		return nil, err
	}

	return buckets, nil
}
