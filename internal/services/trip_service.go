package services

import (
	"time"

	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// TripService orchestrates cruise creation, the consistency guards, and the
// lifecycle status derivation.
type TripService struct {
	cruiseRepo   *database.CruiseRepository
	categoryRepo *database.RoomCategoryRepository
	roomRepo     *database.RoomRepository
	staffRepo    *database.StaffRepository
	activityRepo *database.ActivityRepository
	finance      *FinanceService
	now          func() time.Time
}

// NewTripService creates a new TripService
func NewTripService(
	cruiseRepo *database.CruiseRepository,
	categoryRepo *database.RoomCategoryRepository,
	roomRepo *database.RoomRepository,
	staffRepo *database.StaffRepository,
	activityRepo *database.ActivityRepository,
	finance *FinanceService,
) *TripService {
	return &TripService{
		cruiseRepo:   cruiseRepo,
		categoryRepo: categoryRepo,
		roomRepo:     roomRepo,
		staffRepo:    staffRepo,
		activityRepo: activityRepo,
		finance:      finance,
		now:          time.Now,
	}
}

// CheckPassengerTotals verifies that the declared total matches the
// per-category passenger sum.
func CheckPassengerTotals(req *models.HistoricalTripRequest) error {
	if sum := req.PassengerSum(); sum != req.TotalPassengers {
		return models.NewValidationError(
			"passenger totals do not match: per-category sum is %d but totalPassengers is %d",
			sum, req.TotalPassengers,
		)
	}
	return nil
}

// CheckCapacity verifies that booked-room counts fit the fleet and passenger
// counts fit the booked rooms, per category. Failures name the category and
// the offending numbers.
func CheckCapacity(roomsBooked, passengers map[string]int, availability []models.CategoryAvailability) error {
	byName := make(map[string]models.CategoryAvailability, len(availability))
	for _, a := range availability {
		byName[a.Name] = a
	}

	for _, name := range models.CategoryNames {
		booked := roomsBooked[name]
		if booked == 0 && passengers[name] == 0 {
			continue
		}

		category, ok := byName[name]
		if !ok {
			return models.NewValidationError("room category %q not found", name)
		}

		if booked > category.Available {
			return models.NewValidationError(
				"not enough %s rooms: requested %d but only %d are available",
				name, booked, category.Available,
			)
		}

		if maxPassengers := booked * category.Capacity; passengers[name] > maxPassengers {
			return models.NewValidationError(
				"%d passengers exceed %s capacity: %d rooms hold at most %d",
				passengers[name], name, booked, maxPassengers,
			)
		}
	}

	return nil
}

// CreateHistoricalTrip records a past trip. Financials are computed from the
// live category prices and the selected staff and activities at submission
// time.
func (s *TripService) CreateHistoricalTrip(req *models.HistoricalTripRequest) (*models.Cruise, error) {
	if err := CheckPassengerTotals(req); err != nil {
		return nil, err
	}

	cruise, revenue, staffIDs, activityIDs, err := s.buildHistorical(req)
	if err != nil {
		return nil, err
	}

	passengers := map[string]int{
		models.CategoryDeluxe:        req.PassengersDeluxe,
		models.CategoryPremiumGold:   req.PassengersPremiumGold,
		models.CategoryPremiumSilver: req.PassengersPremiumSilver,
		models.CategoryNormal:        req.PassengersNormal,
	}
	roomsBooked := req.RoomsBookedByCategory()

	err = s.cruiseRepo.CreateHistorical(cruise, revenue, staffIDs, activityIDs,
		func(availability []models.CategoryAvailability) error {
			return CheckCapacity(roomsBooked, passengers, availability)
		})
	if err != nil {
		return nil, err
	}

	cruise.Revenue = revenue
	logrus.WithFields(logrus.Fields{
		"cruise_id": cruise.ID,
		"name":      cruise.Name,
		"revenue":   revenue.TotalRevenue,
		"expenses":  revenue.TotalExpenses,
	}).Info("Historical trip recorded")

	return cruise, nil
}

// UpdateHistoricalTrip rewrites a past trip and recomputes its financials
// from current prices, salaries, and activity costs.
func (s *TripService) UpdateHistoricalTrip(cruiseID string, req *models.HistoricalTripRequest) (*models.Cruise, error) {
	if err := CheckPassengerTotals(req); err != nil {
		return nil, err
	}

	existing, err := s.cruiseRepo.GetByID(cruiseID)
	if err != nil {
		return nil, err
	}

	cruise, revenue, staffIDs, activityIDs, err := s.buildHistorical(req)
	if err != nil {
		return nil, err
	}
	cruise.ID = existing.ID
	cruise.IsArchived = existing.IsArchived
	if existing.IsArchived {
		cruise.Status = models.CruiseStatusCompleted
	}

	passengers := map[string]int{
		models.CategoryDeluxe:        req.PassengersDeluxe,
		models.CategoryPremiumGold:   req.PassengersPremiumGold,
		models.CategoryPremiumSilver: req.PassengersPremiumSilver,
		models.CategoryNormal:        req.PassengersNormal,
	}
	roomsBooked := req.RoomsBookedByCategory()

	err = s.cruiseRepo.UpdateHistorical(cruise, revenue, staffIDs, activityIDs,
		func(availability []models.CategoryAvailability) error {
			return CheckCapacity(roomsBooked, passengers, availability)
		})
	if err != nil {
		return nil, err
	}

	cruise.Revenue = revenue
	return cruise, nil
}

// buildHistorical assembles the cruise row and its computed financials from
// the request and the live reference data.
func (s *TripService) buildHistorical(req *models.HistoricalTripRequest) (*models.Cruise, *models.TripRevenue, []string, []string, error) {
	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, nil, nil, nil, models.NewValidationError("invalid startDate: %v", err)
	}
	endDate, err := models.ParseDate(req.EndDate)
	if err != nil {
		return nil, nil, nil, nil, models.NewValidationError("invalid endDate: %v", err)
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	staff, err := s.staffRepo.GetByIDs(req.SelectedStaffIDs)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(staff) != len(req.SelectedStaffIDs) {
		return nil, nil, nil, nil, models.NewValidationError("one or more selected staff members do not exist")
	}

	activities, err := s.activityRepo.GetByIDs(req.SelectedActivityIDs)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(activities) != len(req.SelectedActivityIDs) {
		return nil, nil, nil, nil, models.NewValidationError("one or more selected activities do not exist")
	}

	revenue, err := s.finance.ComputeTripFinancials(req.RoomsBookedByCategory(), categories, staff, activities)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	food, cleaning, event := s.finance.CountStaffByRole(staff)

	cruise := &models.Cruise{
		Name:             req.Name,
		BoardingLocation: req.BoardingLocation,
		Destination:      req.Destination,
		StartDate:        startDate,
		EndDate:          endDate,
		Status:           models.DeriveStatus(startDate, endDate, s.now(), false),

		RoomsBookedDeluxe:        req.RoomsBookedDeluxe,
		RoomsBookedPremiumGold:   req.RoomsBookedPremiumGold,
		RoomsBookedPremiumSilver: req.RoomsBookedPremiumSilver,
		RoomsBookedNormal:        req.RoomsBookedNormal,

		PassengersDeluxe:        req.PassengersDeluxe,
		PassengersPremiumGold:   req.PassengersPremiumGold,
		PassengersPremiumSilver: req.PassengersPremiumSilver,
		PassengersNormal:        req.PassengersNormal,
		TotalPassengers:         req.TotalPassengers,

		FoodStaffCount:     food,
		CleaningStaffCount: cleaning,
		EventStaffCount:    event,
	}

	return cruise, revenue, req.SelectedStaffIDs, req.SelectedActivityIDs, nil
}

// CreatePlannedTrip creates an upcoming trip from selected rooms, staff, and
// a day-by-day activity schedule.
func (s *TripService) CreatePlannedTrip(req *models.CreateCruiseRequest) (*models.Cruise, error) {
	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return nil, models.NewValidationError("invalid startDate: %v", err)
	}
	endDate, err := models.ParseDate(req.EndDate)
	if err != nil {
		return nil, models.NewValidationError("invalid endDate: %v", err)
	}

	rooms, err := s.roomRepo.GetByIDs(req.RoomIDs)
	if err != nil {
		return nil, err
	}
	if len(rooms) != len(req.RoomIDs) {
		return nil, models.NewValidationError("one or more selected rooms do not exist")
	}

	staff, err := s.staffRepo.GetByIDs(req.StaffIDs)
	if err != nil {
		return nil, err
	}
	if len(staff) != len(req.StaffIDs) {
		return nil, models.NewValidationError("one or more selected staff members do not exist")
	}

	activityIDs := make([]string, 0, len(req.Activities))
	for _, a := range req.Activities {
		activityIDs = append(activityIDs, a.ActivityID)
	}
	activities, err := s.activityRepo.GetByIDs(activityIDs)
	if err != nil {
		return nil, err
	}
	if len(activities) != len(activityIDs) {
		return nil, models.NewValidationError("one or more selected activities do not exist")
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	roomsBooked := map[string]int{}
	for _, room := range rooms {
		if room.CategoryID != nil {
			roomsBooked[categoryNames[*room.CategoryID]]++
		}
	}

	revenue := s.finance.ComputePlannedRevenue(rooms, staff, activities)
	food, cleaning, event := s.finance.CountStaffByRole(staff)

	cruise := &models.Cruise{
		Name:             req.Name,
		BoardingLocation: req.BoardingLocation,
		Destination:      req.Destination,
		StartDate:        startDate,
		EndDate:          endDate,
		Status:           models.DeriveStatus(startDate, endDate, s.now(), false),

		RoomsBookedDeluxe:        roomsBooked[models.CategoryDeluxe],
		RoomsBookedPremiumGold:   roomsBooked[models.CategoryPremiumGold],
		RoomsBookedPremiumSilver: roomsBooked[models.CategoryPremiumSilver],
		RoomsBookedNormal:        roomsBooked[models.CategoryNormal],

		FoodStaffCount:     food,
		CleaningStaffCount: cleaning,
		EventStaffCount:    event,
	}

	if err := s.cruiseRepo.CreatePlanned(cruise, revenue, req.RoomIDs, req.StaffIDs, req.Activities); err != nil {
		return nil, err
	}

	cruise.Revenue = revenue
	logrus.WithFields(logrus.Fields{
		"cruise_id": cruise.ID,
		"name":      cruise.Name,
		"rooms":     len(rooms),
	}).Info("Trip planned")

	return cruise, nil
}

// GetTrips lists cruises with statuses freshly derived from their dates.
// A derived status that differs from the stored one is written back.
func (s *TripService) GetTrips(includeArchived bool) ([]models.Cruise, error) {
	cruises, err := s.cruiseRepo.GetAll(includeArchived)
	if err != nil {
		return nil, err
	}

	for i := range cruises {
		s.syncStatus(&cruises[i])
	}

	return cruises, nil
}

// GetArchivedTrips lists archived trips
func (s *TripService) GetArchivedTrips() ([]models.Cruise, error) {
	return s.cruiseRepo.GetArchived()
}

// GetTrip retrieves one cruise with its related data
func (s *TripService) GetTrip(cruiseID string) (*models.Cruise, error) {
	cruise, err := s.cruiseRepo.GetByID(cruiseID)
	if err != nil {
		return nil, err
	}

	s.syncStatus(cruise)
	return cruise, nil
}

// ArchiveTrip marks a trip as archived. Archiving twice is a no-op; trips
// may be archived before their end date.
func (s *TripService) ArchiveTrip(cruiseID string) error {
	return s.cruiseRepo.Archive(cruiseID)
}

// DeleteTrip removes a trip and releases its rooms
func (s *TripService) DeleteTrip(cruiseID string) error {
	return s.cruiseRepo.Delete(cruiseID)
}

// syncStatus recomputes the lifecycle status from the trip dates and writes
// back when the stored value has gone stale.
func (s *TripService) syncStatus(cruise *models.Cruise) {
	derived := models.DeriveStatus(cruise.StartDate, cruise.EndDate, s.now(), cruise.IsArchived)
	if derived == cruise.Status {
		return
	}

	cruise.Status = derived
	if cruise.IsArchived {
		return
	}
	if err := s.cruiseRepo.UpdateStatus(cruise.ID, derived); err != nil {
		logrus.WithError(err).WithField("cruise_id", cruise.ID).Warn("Failed to persist derived trip status")
	}
}
