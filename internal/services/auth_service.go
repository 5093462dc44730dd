package services

import (
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/oceanline/cruise-admin-backend/internal/utils"
	"github.com/oceanline/cruise-admin-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin authentication
type AuthService struct {
	adminRepo  *database.AdminRepository
	jwtService *jwt.Service
	bcryptCost int
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo *database.AdminRepository, jwtService *jwt.Service, bcryptCost int) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Login verifies credentials and issues a session token. A successful login
// is recorded with client IP and device details for the audit trail.
func (s *AuthService) Login(req *models.LoginRequest, ipAddress, userAgent string) (*models.LoginResponse, error) {
	admin, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil {
		return nil, models.NewTransactionError(err)
	}
	if admin == nil {
		return nil, models.NewAuthError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.NewAuthError("invalid email or password")
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		return nil, models.NewTransactionError(err)
	}

	if err := s.adminRepo.UpdateLastLogin(admin.ID); err != nil {
		logrus.WithError(err).Warn("Failed to record last login time")
	}

	// Session audit is best effort, a failure never blocks login
	device := utils.ParseUserAgent(userAgent)
	session := &models.AdminSession{
		AdminID:    admin.ID,
		IPAddress:  ipAddress,
		DeviceType: device.DeviceType,
		OS:         device.OS,
		Browser:    device.Browser,
		UserAgent:  device.Raw,
	}
	if err := s.adminRepo.CreateSession(session); err != nil {
		logrus.WithError(err).Warn("Failed to record login session")
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": admin.ID,
		"ip":       ipAddress,
		"device":   device.DeviceType,
	}).Info("Admin logged in")

	return &models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin: models.AdminSummary{
			ID:    admin.ID,
			Email: admin.Email,
		},
	}, nil
}

// HashPassword hashes a plaintext password with the configured cost
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
