package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/database"
	"github.com/oceanline/cruise-admin-backend/internal/models"
)

// RoomHandler handles room endpoints
type RoomHandler struct {
	roomRepo     *database.RoomRepository
	categoryRepo *database.RoomCategoryRepository
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(roomRepo *database.RoomRepository, categoryRepo *database.RoomCategoryRepository) *RoomHandler {
	return &RoomHandler{
		roomRepo:     roomRepo,
		categoryRepo: categoryRepo,
	}
}

// Create handles POST /api/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	room := &models.Room{
		Number:      req.Number,
		Status:      models.RoomStatusAvailable,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		room.Status = models.RoomStatus(*req.Status)
	}

	// Price and capacity default to the category's values
	if req.CategoryID != nil {
		category, err := h.categoryRepo.GetByID(*req.CategoryID)
		if err != nil {
			respondError(c, err, "room category")
			return
		}
		room.Price = category.Price
		room.Capacity = category.Capacity
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}

	if err := h.roomRepo.Create(room); err != nil {
		respondError(c, err, "room")
		return
	}

	c.JSON(http.StatusCreated, room)
}

// GetAll handles GET /api/rooms
func (h *RoomHandler) GetAll(c *gin.Context) {
	rooms, err := h.roomRepo.GetAll()
	if err != nil {
		respondError(c, err, "rooms")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetByID handles GET /api/rooms/:id
func (h *RoomHandler) GetByID(c *gin.Context) {
	room, err := h.roomRepo.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err, "room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// Update handles PUT /api/rooms/:id
func (h *RoomHandler) Update(c *gin.Context) {
	roomID := c.Param("id")

	var req models.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.roomRepo.Update(roomID, &req); err != nil {
		respondError(c, err, "room")
		return
	}

	room, err := h.roomRepo.GetByID(roomID)
	if err != nil {
		respondError(c, err, "room")
		return
	}

	c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/rooms/:id
func (h *RoomHandler) Delete(c *gin.Context) {
	roomID := c.Param("id")

	room, err := h.roomRepo.GetByID(roomID)
	if err != nil {
		respondError(c, err, "room")
		return
	}

	if room.CruiseID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "room is assigned to a cruise and cannot be deleted"})
		return
	}

	if err := h.roomRepo.Delete(roomID); err != nil {
		respondError(c, err, "room")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
