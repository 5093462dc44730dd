package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// StaffHandler handles staff endpoints
type StaffHandler struct {
	staffRepo *database.StaffRepository
}

// NewStaffHandler creates a new StaffHandler
func NewStaffHandler(staffRepo *database.StaffRepository) *StaffHandler {
	return &StaffHandler{staffRepo: staffRepo}
}

// Create handles POST /api/staff
func (h *StaffHandler) Create(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	staff := &models.Staff{
		Name:        req.Name,
		Role:        models.StaffRole(req.Role),
		Designation: req.Designation,
		Salary:      req.Salary,
	}

	if err := h.staffRepo.Create(staff); err != nil {
		respondError(c, err, "staff member")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetAll handles GET /api/staff
func (h *StaffHandler) GetAll(c *gin.Context) {
	staff, err := h.staffRepo.GetAll()
	if err != nil {
		respondError(c, err, "staff")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// GetByID handles GET /api/staff/:id
func (h *StaffHandler) GetByID(c *gin.Context) {
	staff, err := h.staffRepo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err, "staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// Update handles PUT /api/staff/:id
func (h *StaffHandler) Update(c *gin.Context) {
	staffID := c.Param("id")

	var req models.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.staffRepo.Update(staffID, &req); err != nil {
		respondError(c, err, "staff member")
		return
	}

	staff, err := h.staffRepo.GetByID(staffID)
	if err != nil {
		respondError(c, err, "staff member")
		return
	}

	c.JSON(http.StatusOK, staff)
}

// Delete handles DELETE /api/staff/:id
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.staffRepo.Delete(c.Param("id")); err != nil {
		respondError(c, err, "staff member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
