package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// RoomCategoryHandler handles room category endpoints
type RoomCategoryHandler struct {
	categoryRepo *database.RoomCategoryRepository
	roomRepo     *database.RoomRepository
}

// NewRoomCategoryHandler creates a new RoomCategoryHandler
func NewRoomCategoryHandler(categoryRepo *database.RoomCategoryRepository, roomRepo *database.RoomRepository) *RoomCategoryHandler {
	return &RoomCategoryHandler{
		categoryRepo: categoryRepo,
		roomRepo:     roomRepo,
	}
}

// GetAll handles GET /api/room-categories
func (h *RoomCategoryHandler) GetAll(c *gin.Context) {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		respondError(c, err, "room categories")
		return
	}

	for i := range categories {
		rooms, err := h.roomRepo.GetByCategoryID(categories[i].ID)
		if err != nil {
			respondError(c, err, "rooms")
			return
		}
		categories[i].Rooms = rooms
	}

	c.JSON(http.StatusOK, categories)
}

// GetByID handles GET /api/room-categories/:id
func (h *RoomCategoryHandler) GetByID(c *gin.Context) {
	categoryID := c.Param("id")

	category, err := h.categoryRepo.GetByID(categoryID)
	if err != nil {
		respondError(c, err, "room category")
		return
	}

	rooms, err := h.roomRepo.GetByCategoryID(category.ID)
	if err != nil {
		respondError(c, err, "rooms")
		return
	}
	category.Rooms = rooms

	c.JSON(http.StatusOK, category)
}

// GetAvailability handles GET /api/room-categories/availability
func (h *RoomCategoryHandler) GetAvailability(c *gin.Context) {
	availability, err := h.categoryRepo.GetAvailability()
	if err != nil {
		respondError(c, err, "availability")
		return
	}

	type availabilityResponse struct {
		CategoryID string `json:"categoryId"`
		Name       string `json:"name"`
		Price      int64  `json:"price"`
		Capacity   int    `json:"capacity"`
		Available  int    `json:"available"`
	}

	response := make([]availabilityResponse, 0, len(availability))
	for _, a := range availability {
		response = append(response, availabilityResponse{
			CategoryID: a.CategoryID,
			Name:       a.Name,
			Price:      a.Price,
			Capacity:   a.Capacity,
			Available:  a.Available,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Update handles PUT /api/room-categories/:id
func (h *RoomCategoryHandler) Update(c *gin.Context) {
	categoryID := c.Param("id")

	var req models.UpdateRoomCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	// Confirm the category exists before the partial update
	if _, err := h.categoryRepo.GetByID(categoryID); err != nil {
		respondError(c, err, "room category")
		return
	}

	if err := h.categoryRepo.Update(categoryID, &req); err != nil {
		respondError(c, err, "room category")
		return
	}

	category, err := h.categoryRepo.GetByID(categoryID)
	if err != nil {
		respondError(c, err, "room category")
		return
	}

	c.JSON(http.StatusOK, category)
}
