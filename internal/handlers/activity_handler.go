package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// ActivityHandler handles activity endpoints
type ActivityHandler struct {
	activityRepo *database.ActivityRepository
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityRepo *database.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

// Create handles POST /api/activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	activity := &models.Activity{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		ManagerName:    req.ManagerName,
		ManagerContact: req.ManagerContact,
		Cost:           req.Cost,
		Images:         req.Images,
	}

	if err := h.activityRepo.Create(activity); err != nil {
		respondError(c, err, "activity")
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// GetAll handles GET /api/activities
func (h *ActivityHandler) GetAll(c *gin.Context) {
	activities, err := h.activityRepo.GetAll()
	if err != nil {
		respondError(c, err, "activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}

// GetByID handles GET /api/activities/:id
func (h *ActivityHandler) GetByID(c *gin.Context) {
	activity, err := h.activityRepo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err, "activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Update handles PUT /api/activities/:id
func (h *ActivityHandler) Update(c *gin.Context) {
	activityID := c.Param("id")

	var req models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.activityRepo.Update(activityID, &req); err != nil {
		respondError(c, err, "activity")
		return
	}

	activity, err := h.activityRepo.GetByID(activityID)
	if err != nil {
		respondError(c, err, "activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// Delete handles DELETE /api/activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.activityRepo.Delete(c.Param("id")); err != nil {
		respondError(c, err, "activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
