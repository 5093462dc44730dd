package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/oceanline/cruise-admin-backend/internal/config"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const defaultAdminEmail = "admin@cruise.com"

// categorySeed defines the fixed four-category fleet layout
type categorySeed struct {
	name       string
	price      int64
	capacity   int
	roomPrefix string
	features   []string
}

var categorySeeds = []categorySeed{
	{
		name: models.CategoryDeluxe, price: 35000, capacity: 6, roomPrefix: "D",
		features: []string{"Ocean view balcony", "King bed", "Mini bar", "Room service"},
	},
	{
		name: models.CategoryPremiumGold, price: 30000, capacity: 4, roomPrefix: "PG",
		features: []string{"Ocean view", "Queen bed", "Mini bar"},
	},
	{
		name: models.CategoryPremiumSilver, price: 27000, capacity: 2, roomPrefix: "PS",
		features: []string{"Porthole window", "Double bed"},
	},
	{
		name: models.CategoryNormal, price: 23000, capacity: 2, roomPrefix: "N",
		features: []string{"Interior cabin", "Twin beds"},
	},
}

const roomsPerCategory = 25

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	adminRepo := database.NewAdminRepository(db)
	categoryRepo := database.NewRoomCategoryRepository(db)
	roomRepo := database.NewRoomRepository(db)
	staffRepo := database.NewStaffRepository(db)
	activityRepo := database.NewActivityRepository(db)

	if err := seedAdmin(adminRepo, cfg.Security.BcryptCost, logger); err != nil {
		logger.Fatalf("Failed to seed admin: %v", err)
	}

	if err := seedCategoriesAndRooms(categoryRepo, roomRepo, logger); err != nil {
		logger.Fatalf("Failed to seed room categories: %v", err)
	}

	if err := seedStaff(staffRepo, logger); err != nil {
		logger.Fatalf("Failed to seed staff: %v", err)
	}

	if err := seedActivities(activityRepo, logger); err != nil {
		logger.Fatalf("Failed to seed activities: %v", err)
	}

	logger.Info("Seeding complete")
}

func seedAdmin(adminRepo *database.AdminRepository, bcryptCost int, logger *logrus.Logger) error {
	email := getEnv("SEED_ADMIN_EMAIL", defaultAdminEmail)

	existing, err := adminRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		logger.WithField("email", email).Info("Admin already exists, skipping")
		return nil
	}

	password := getEnv("SEED_ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin := &models.Admin{Email: email, PasswordHash: string(hash)}
	if err := adminRepo.Create(admin); err != nil {
		return err
	}

	logger.WithField("email", email).Info("Admin account created")
	return nil
}

func seedCategoriesAndRooms(
	categoryRepo *database.RoomCategoryRepository,
	roomRepo *database.RoomRepository,
	logger *logrus.Logger,
) error {
	for _, seed := range categorySeeds {
		existing, err := categoryRepo.GetByName(seed.name)
		if err != nil && err != sql.ErrNoRows {
			return err
		}
		if existing != nil {
			logger.WithField("category", seed.name).Info("Category already exists, skipping")
			continue
		}

		category := &models.RoomCategory{
			Name:     seed.name,
			Price:    seed.price,
			Capacity: seed.capacity,
			Features: seed.features,
			Images:   []string{},
		}
		if err := categoryRepo.Create(category); err != nil {
			return err
		}

		for i := 1; i <= roomsPerCategory; i++ {
			room := &models.Room{
				Number:     fmt.Sprintf("%s%02d", seed.roomPrefix, i),
				Status:     models.RoomStatusAvailable,
				Price:      seed.price,
				Capacity:   seed.capacity,
				CategoryID: &category.ID,
			}
			if err := roomRepo.Create(room); err != nil {
				return err
			}
		}

		logger.WithFields(logrus.Fields{
			"category": seed.name,
			"rooms":    roomsPerCategory,
		}).Info("Category seeded")
	}

	return nil
}

func seedStaff(staffRepo *database.StaffRepository, logger *logrus.Logger) error {
	existing, err := staffRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Staff already exist, skipping")
		return nil
	}

	seeds := []models.Staff{
		{Name: "Ruwan Perera", Role: models.RoleFood, Designation: "Head Chef", Salary: 120000},
		{Name: "Nadeesha Silva", Role: models.RoleFood, Designation: "Sous Chef", Salary: 85000},
		{Name: "Kasun Fernando", Role: models.RoleCleaning, Designation: "Housekeeping Supervisor", Salary: 70000},
		{Name: "Ishara Jayawardena", Role: models.RoleCleaning, Designation: "Cabin Attendant", Salary: 50000},
		{Name: "Dilini Wickramasinghe", Role: models.RoleEvent, Designation: "Events Manager", Salary: 110000},
		{Name: "Tharindu Bandara", Role: models.RoleEvent, Designation: "Entertainment Host", Salary: 65000},
	}

	for i := range seeds {
		if err := staffRepo.Create(&seeds[i]); err != nil {
			return err
		}
	}

	logger.WithField("count", len(seeds)).Info("Staff seeded")
	return nil
}

func seedActivities(activityRepo *database.ActivityRepository, logger *logrus.Logger) error {
	count, err := activityRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Activities already exist, skipping")
		return nil
	}

	seeds := []models.Activity{
		{
			Name: "Live Band Night", Type: "Entertainment",
			Description:    "Evening live music performance on the main deck",
			ManagerName:    "Sunil Rodrigo", ManagerContact: "0771234567",
			Cost: 45000, Images: []string{},
		},
		{
			Name: "Kids Treasure Hunt", Type: "Family",
			Description:    "Guided treasure hunt across the ship for children",
			ManagerName:    "Amaya De Silva", ManagerContact: "0719876543",
			Cost: 15000, Images: []string{},
		},
		{
			Name: "Sunset Yoga", Type: "Wellness",
			Description:    "Open-air yoga session at sunset",
			ManagerName:    "Priyanka Herath", ManagerContact: "0765551234",
			Cost: 20000, Images: []string{},
		},
	}

	for i := range seeds {
		if err := activityRepo.Create(&seeds[i]); err != nil {
			return err
		}
	}

	logger.WithField("count", len(seeds)).Info("Activities seeded")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
