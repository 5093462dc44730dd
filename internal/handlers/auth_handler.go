package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/middleware"
	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/oceanline/cruise-admin-backend/internal/services"
	"github.com/oceanline/cruise-admin-backend/internal/utils"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	adminRepo   *database.AdminRepository
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService, adminRepo *database.AdminRepository) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		adminRepo:   adminRepo,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	response, err := h.authService.Login(&req, utils.GetRealIP(c), utils.GetUserAgent(c))
	if err != nil {
		respondError(c, err, "admin")
		return
	}

	c.JSON(http.StatusOK, response)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminCtx, exists := middleware.GetAdminContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
		return
	}

	admin, err := h.adminRepo.GetByID(adminCtx.AdminID)
	if err != nil {
		respondError(c, err, "admin")
		return
	}

	c.JSON(http.StatusOK, models.AdminSummary{ID: admin.ID, Email: admin.Email})
}

// Sessions handles GET /api/auth/sessions
func (h *AuthHandler) Sessions(c *gin.Context) {
	adminCtx, exists := middleware.GetAdminContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "not authenticated"})
		return
	}

	sessions, err := h.adminRepo.GetRecentSessions(adminCtx.AdminID, 20)
	if err != nil {
		respondError(c, err, "sessions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
