package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// CruiseRepository handles database operations for cruises. Creation and
// deletion touch several tables so this repository works directly against
// *sqlx.DB for transactions.
type CruiseRepository struct {
	db *sqlx.DB
}

// NewCruiseRepository creates a new CruiseRepository
func NewCruiseRepository(db *sqlx.DB) *CruiseRepository {
	return &CruiseRepository{db: db}
}

const cruiseColumns = `
	id, name, boarding_location, destination, start_date, end_date, status, is_archived,
	rooms_booked_deluxe, rooms_booked_premium_gold, rooms_booked_premium_silver, rooms_booked_normal,
	passengers_deluxe, passengers_premium_gold, passengers_premium_silver, passengers_normal,
	total_passengers, food_staff_count, cleaning_staff_count, event_staff_count,
	created_at, updated_at
`

// CreateHistorical records a past trip with its financial summary, staff
// roster, and activity list in one transaction. checkCapacity runs against
// availability read under row locks so concurrent submissions serialize.
func (r *CruiseRepository) CreateHistorical(
	cruise *models.Cruise,
	revenue *models.TripRevenue,
	staffIDs []string,
	activityIDs []string,
	checkCapacity func([]models.CategoryAvailability) error,
) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Capacity check against locked category rows
	availability, err := GetAvailabilityForUpdate(tx)
	if err != nil {
		return fmt.Errorf("failed to read room availability: %w", err)
	}
	if err := checkCapacity(availability); err != nil {
		return err
	}

	// 2. Insert the cruise
	if cruise.ID == "" {
		cruise.ID = uuid.New().String()
	}
	if err := insertCruise(tx, cruise); err != nil {
		return fmt.Errorf("failed to insert cruise: %w", err)
	}

	// 3. Insert the financial summary
	revenue.CruiseID = cruise.ID
	if err := upsertRevenue(tx, revenue); err != nil {
		return fmt.Errorf("failed to insert trip revenue: %w", err)
	}

	// 4. Staff roster
	if err := replaceCruiseStaff(tx, cruise.ID, staffIDs); err != nil {
		return fmt.Errorf("failed to assign staff: %w", err)
	}

	// 5. Activity list
	assignments := make([]models.ActivitySchedule, 0, len(activityIDs))
	for _, id := range activityIDs {
		assignments = append(assignments, models.ActivitySchedule{ActivityID: id, Day: 1})
	}
	if err := replaceActivityAssignments(tx, cruise.ID, assignments); err != nil {
		return fmt.Errorf("failed to assign activities: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CreatePlanned creates an upcoming trip from selected rooms, staff, and a
// day-by-day activity schedule. Room rows are locked so a room cannot end up
// on two trips.
func (r *CruiseRepository) CreatePlanned(
	cruise *models.Cruise,
	revenue *models.TripRevenue,
	roomIDs []string,
	staffIDs []string,
	activities []models.ActivitySchedule,
) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Lock and verify the selected rooms
	if len(roomIDs) > 0 {
		query, args, err := sqlx.In(`
			SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
			FROM rooms
			WHERE id IN (?)
			FOR UPDATE
		`, roomIDs)
		if err != nil {
			return err
		}
		query = sqlx.Rebind(sqlx.DOLLAR, query)

		rooms := []models.Room{}
		if err := tx.Select(&rooms, query, args...); err != nil {
			return fmt.Errorf("failed to lock rooms: %w", err)
		}

		if len(rooms) != len(roomIDs) {
			return models.NewValidationError("one or more selected rooms do not exist")
		}
		for _, room := range rooms {
			if room.Status != models.RoomStatusAvailable {
				return models.NewValidationError("room %s is not available", room.Number)
			}
			if room.CruiseID != nil {
				return models.NewValidationError("room %s is already assigned to another cruise", room.Number)
			}
		}
	}

	// 2. Insert the cruise
	if cruise.ID == "" {
		cruise.ID = uuid.New().String()
	}
	if err := insertCruise(tx, cruise); err != nil {
		return fmt.Errorf("failed to insert cruise: %w", err)
	}

	// 3. Attach rooms and record bookings
	for _, roomID := range roomIDs {
		if _, err := tx.Exec(`UPDATE rooms SET cruise_id = $1, updated_at = NOW() WHERE id = $2`, cruise.ID, roomID); err != nil {
			return fmt.Errorf("failed to attach room: %w", err)
		}
		if _, err := tx.Exec(
			`INSERT INTO room_bookings (id, cruise_id, room_id) VALUES ($1, $2, $3)`,
			uuid.New().String(), cruise.ID, roomID,
		); err != nil {
			return fmt.Errorf("failed to record room booking: %w", err)
		}
	}

	// 4. Financial summary
	revenue.CruiseID = cruise.ID
	if err := upsertRevenue(tx, revenue); err != nil {
		return fmt.Errorf("failed to insert trip revenue: %w", err)
	}

	// 5. Staff roster and activity schedule
	if err := replaceCruiseStaff(tx, cruise.ID, staffIDs); err != nil {
		return fmt.Errorf("failed to assign staff: %w", err)
	}
	if err := replaceActivityAssignments(tx, cruise.ID, activities); err != nil {
		return fmt.Errorf("failed to assign activities: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateHistorical rewrites a past trip's counts, financials, staff roster,
// and activity list in one transaction.
func (r *CruiseRepository) UpdateHistorical(
	cruise *models.Cruise,
	revenue *models.TripRevenue,
	staffIDs []string,
	activityIDs []string,
	checkCapacity func([]models.CategoryAvailability) error,
) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	availability, err := GetAvailabilityForUpdate(tx)
	if err != nil {
		return fmt.Errorf("failed to read room availability: %w", err)
	}
	if err := checkCapacity(availability); err != nil {
		return err
	}

	query := `
		UPDATE cruises SET
			name = $1, boarding_location = $2, destination = $3,
			start_date = $4, end_date = $5, status = $6,
			rooms_booked_deluxe = $7, rooms_booked_premium_gold = $8,
			rooms_booked_premium_silver = $9, rooms_booked_normal = $10,
			passengers_deluxe = $11, passengers_premium_gold = $12,
			passengers_premium_silver = $13, passengers_normal = $14,
			total_passengers = $15, food_staff_count = $16,
			cleaning_staff_count = $17, event_staff_count = $18,
			updated_at = NOW()
		WHERE id = $19
	`
	result, err := tx.Exec(
		query,
		cruise.Name, cruise.BoardingLocation, cruise.Destination,
		cruise.StartDate, cruise.EndDate, cruise.Status,
		cruise.RoomsBookedDeluxe, cruise.RoomsBookedPremiumGold,
		cruise.RoomsBookedPremiumSilver, cruise.RoomsBookedNormal,
		cruise.PassengersDeluxe, cruise.PassengersPremiumGold,
		cruise.PassengersPremiumSilver, cruise.PassengersNormal,
		cruise.TotalPassengers, cruise.FoodStaffCount,
		cruise.CleaningStaffCount, cruise.EventStaffCount,
		cruise.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update cruise: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	revenue.CruiseID = cruise.ID
	if err := upsertRevenue(tx, revenue); err != nil {
		return fmt.Errorf("failed to update trip revenue: %w", err)
	}

	if err := replaceCruiseStaff(tx, cruise.ID, staffIDs); err != nil {
		return fmt.Errorf("failed to reassign staff: %w", err)
	}

	assignments := make([]models.ActivitySchedule, 0, len(activityIDs))
	for _, id := range activityIDs {
		assignments = append(assignments, models.ActivitySchedule{ActivityID: id, Day: 1})
	}
	if err := replaceActivityAssignments(tx, cruise.ID, assignments); err != nil {
		return fmt.Errorf("failed to reassign activities: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAll retrieves cruises with their financial summaries, newest first
func (r *CruiseRepository) GetAll(includeArchived bool) ([]models.Cruise, error) {
	query := `SELECT ` + cruiseColumns + ` FROM cruises`
	if !includeArchived {
		query += ` WHERE is_archived = FALSE`
	}
	query += ` ORDER BY start_date DESC`

	cruises := []models.Cruise{}
	if err := r.db.Select(&cruises, query); err != nil {
		return nil, err
	}

	if err := r.attachRevenues(cruises); err != nil {
		return nil, err
	}

	return cruises, nil
}

// GetArchived retrieves archived trips, newest first
func (r *CruiseRepository) GetArchived() ([]models.Cruise, error) {
	query := `SELECT ` + cruiseColumns + ` FROM cruises WHERE is_archived = TRUE ORDER BY start_date DESC`

	cruises := []models.Cruise{}
	if err := r.db.Select(&cruises, query); err != nil {
		return nil, err
	}

	if err := r.attachRevenues(cruises); err != nil {
		return nil, err
	}

	return cruises, nil
}

// GetByID retrieves a cruise with its revenue, rooms, staff, and activities
func (r *CruiseRepository) GetByID(cruiseID string) (*models.Cruise, error) {
	query := `SELECT ` + cruiseColumns + ` FROM cruises WHERE id = $1`

	cruise := &models.Cruise{}
	if err := r.db.Get(cruise, query, cruiseID); err != nil {
		return nil, err
	}

	revenue := &models.TripRevenue{}
	err := r.db.Get(revenue, `
		SELECT id, cruise_id, total_revenue, food_staff_cost, cleaning_staff_cost,
		       event_staff_cost, activity_cost, total_expenses, created_at, updated_at
		FROM trip_revenues
		WHERE cruise_id = $1
	`, cruiseID)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if err == nil {
		cruise.Revenue = revenue
	}

	rooms := []models.Room{}
	err = r.db.Select(&rooms, `
		SELECT id, number, status, price, capacity, description, category_id, cruise_id, created_at, updated_at
		FROM rooms
		WHERE cruise_id = $1
		ORDER BY number
	`, cruiseID)
	if err != nil {
		return nil, err
	}
	cruise.Rooms = rooms

	staff := []models.Staff{}
	err = r.db.Select(&staff, `
		SELECT s.id, s.name, s.role, s.designation, s.salary, s.created_at, s.updated_at
		FROM staff s
		JOIN cruise_staff cs ON cs.staff_id = s.id
		WHERE cs.cruise_id = $1
		ORDER BY s.name
	`, cruiseID)
	if err != nil {
		return nil, err
	}
	cruise.Staff = staff

	assignments, err := r.getActivityAssignments(cruiseID)
	if err != nil {
		return nil, err
	}
	cruise.Activities = assignments

	return cruise, nil
}

// Archive marks a trip as archived and pins its status to COMPLETED.
// Archiving an already-archived trip is a no-op.
func (r *CruiseRepository) Archive(cruiseID string) error {
	query := `
		UPDATE cruises
		SET is_archived = TRUE, status = $1, updated_at = NOW()
		WHERE id = $2
	`
	result, err := r.db.Exec(query, models.CruiseStatusCompleted, cruiseID)
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

// UpdateStatus writes the derived lifecycle status back to the row
func (r *CruiseRepository) UpdateStatus(cruiseID string, status models.CruiseStatus) error {
	query := `UPDATE cruises SET status = $1, updated_at = NOW() WHERE id = $2 AND is_archived = FALSE`
	_, err := r.db.Exec(query, status, cruiseID)
	return err
}

// Delete removes a cruise and everything that hangs off it. Assigned rooms
// are released back to the pool first.
func (r *CruiseRepository) Delete(cruiseID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Release rooms back to the pool
	if _, err := tx.Exec(`UPDATE rooms SET cruise_id = NULL, updated_at = NOW() WHERE cruise_id = $1`, cruiseID); err != nil {
		return fmt.Errorf("failed to release rooms: %w", err)
	}

	// 2. Remove dependents
	if _, err := tx.Exec(`DELETE FROM room_bookings WHERE cruise_id = $1`, cruiseID); err != nil {
		return fmt.Errorf("failed to delete room bookings: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM activity_assignments WHERE cruise_id = $1`, cruiseID); err != nil {
		return fmt.Errorf("failed to delete activity assignments: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM cruise_staff WHERE cruise_id = $1`, cruiseID); err != nil {
		return fmt.Errorf("failed to delete staff assignments: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM trip_revenues WHERE cruise_id = $1`, cruiseID); err != nil {
		return fmt.Errorf("failed to delete trip revenue: %w", err)
	}

	// 3. Remove the cruise itself
	result, err := tx.Exec(`DELETE FROM cruises WHERE id = $1`, cruiseID)
	if err != nil {
		return fmt.Errorf("failed to delete cruise: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// attachRevenues populates Revenue on each cruise in one extra query
func (r *CruiseRepository) attachRevenues(cruises []models.Cruise) error {
	if len(cruises) == 0 {
		return nil
	}

	ids := make([]string, 0, len(cruises))
	for _, c := range cruises {
		ids = append(ids, c.ID)
	}

	query, args, err := sqlx.In(`
		SELECT id, cruise_id, total_revenue, food_staff_cost, cleaning_staff_cost,
		       event_staff_cost, activity_cost, total_expenses, created_at, updated_at
		FROM trip_revenues
		WHERE cruise_id IN (?)
	`, ids)
	if err != nil {
		return err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	revenues := []models.TripRevenue{}
	if err := r.db.Select(&revenues, query, args...); err != nil {
		return err
	}

	byCruise := make(map[string]models.TripRevenue, len(revenues))
	for _, rev := range revenues {
		byCruise[rev.CruiseID] = rev
	}
	for i := range cruises {
		if rev, ok := byCruise[cruises[i].ID]; ok {
			revCopy := rev
			cruises[i].Revenue = &revCopy
		}
	}

	return nil
}

func (r *CruiseRepository) getActivityAssignments(cruiseID string) ([]models.ActivityAssignment, error) {
	query := `
		SELECT aa.id, aa.cruise_id, aa.activity_id, aa.day
		FROM activity_assignments aa
		WHERE aa.cruise_id = $1
		ORDER BY aa.day
	`

	assignments := []models.ActivityAssignment{}
	if err := r.db.Select(&assignments, query, cruiseID); err != nil {
		return nil, err
	}

	for i := range assignments {
		activity := &models.Activity{}
		err := r.db.Get(activity, `
			SELECT id, name, description, type, manager_name, manager_contact, cost, images, created_at, updated_at
			FROM activities
			WHERE id = $1
		`, assignments[i].ActivityID)
		if err != nil {
			if err == sql.ErrNoRows {
				continue
			}
			return nil, err
		}
		assignments[i].Activity = activity
	}

	return assignments, nil
}

func insertCruise(tx *sqlx.Tx, cruise *models.Cruise) error {
	query := `
		INSERT INTO cruises (
			id, name, boarding_location, destination, start_date, end_date, status, is_archived,
			rooms_booked_deluxe, rooms_booked_premium_gold, rooms_booked_premium_silver, rooms_booked_normal,
			passengers_deluxe, passengers_premium_gold, passengers_premium_silver, passengers_normal,
			total_passengers, food_staff_count, cleaning_staff_count, event_staff_count
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		)
		RETURNING created_at, updated_at
	`

	return tx.QueryRow(
		query,
		cruise.ID, cruise.Name, cruise.BoardingLocation, cruise.Destination,
		cruise.StartDate, cruise.EndDate, cruise.Status, cruise.IsArchived,
		cruise.RoomsBookedDeluxe, cruise.RoomsBookedPremiumGold,
		cruise.RoomsBookedPremiumSilver, cruise.RoomsBookedNormal,
		cruise.PassengersDeluxe, cruise.PassengersPremiumGold,
		cruise.PassengersPremiumSilver, cruise.PassengersNormal,
		cruise.TotalPassengers, cruise.FoodStaffCount,
		cruise.CleaningStaffCount, cruise.EventStaffCount,
	).Scan(&cruise.CreatedAt, &cruise.UpdatedAt)
}

func upsertRevenue(tx *sqlx.Tx, revenue *models.TripRevenue) error {
	if revenue.ID == "" {
		revenue.ID = uuid.New().String()
	}

	query := `
		INSERT INTO trip_revenues (
			id, cruise_id, total_revenue, food_staff_cost, cleaning_staff_cost,
			event_staff_cost, activity_cost, total_expenses
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (cruise_id) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			food_staff_cost = EXCLUDED.food_staff_cost,
			cleaning_staff_cost = EXCLUDED.cleaning_staff_cost,
			event_staff_cost = EXCLUDED.event_staff_cost,
			activity_cost = EXCLUDED.activity_cost,
			total_expenses = EXCLUDED.total_expenses,
			updated_at = NOW()
	`

	_, err := tx.Exec(
		query,
		revenue.ID, revenue.CruiseID, revenue.TotalRevenue,
		revenue.FoodStaffCost, revenue.CleaningStaffCost, revenue.EventStaffCost,
		revenue.ActivityCost, revenue.TotalExpenses,
	)
	return err
}

func replaceCruiseStaff(tx *sqlx.Tx, cruiseID string, staffIDs []string) error {
	if _, err := tx.Exec(`DELETE FROM cruise_staff WHERE cruise_id = $1`, cruiseID); err != nil {
		return err
	}

	for _, staffID := range staffIDs {
		if _, err := tx.Exec(
			`INSERT INTO cruise_staff (cruise_id, staff_id) VALUES ($1, $2)`,
			cruiseID, staffID,
		); err != nil {
			return err
		}
	}

	return nil
}

func replaceActivityAssignments(tx *sqlx.Tx, cruiseID string, assignments []models.ActivitySchedule) error {
	if _, err := tx.Exec(`DELETE FROM activity_assignments WHERE cruise_id = $1`, cruiseID); err != nil {
		return err
	}

	for _, assignment := range assignments {
		if _, err := tx.Exec(
			`INSERT INTO activity_assignments (id, cruise_id, activity_id, day) VALUES ($1, $2, $3, $4)`,
			uuid.New().String(), cruiseID, assignment.ActivityID, assignment.Day,
		); err != nil {
			return err
		}
	}

	return nil
}
