package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/oceanline/cruise-admin-backend/internal/services"
)

// CruiseHandler handles trip endpoints
type CruiseHandler struct {
	tripService   *services.TripService
	reportService *services.ReportService
	exportService *services.ExportService
}

// NewCruiseHandler creates a new CruiseHandler
func NewCruiseHandler(
	tripService *services.TripService,
	reportService *services.ReportService,
	exportService *services.ExportService,
) *CruiseHandler {
	return &CruiseHandler{
		tripService:   tripService,
		reportService: reportService,
		exportService: exportService,
	}
}

// Create handles POST /api/cruises (plan-ahead flow)
func (h *CruiseHandler) Create(c *gin.Context) {
	var req models.CreateCruiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cruise, err := h.tripService.CreatePlannedTrip(&req)
	if err != nil {
		respondError(c, err, "cruise")
		return
	}

	c.JSON(http.StatusCreated, cruise)
}

// CreateHistory handles POST /api/cruises/history (log-a-past-trip flow)
func (h *CruiseHandler) CreateHistory(c *gin.Context) {
	var req models.HistoricalTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cruise, err := h.tripService.CreateHistoricalTrip(&req)
	if err != nil {
		respondError(c, err, "cruise")
		return
	}

	c.JSON(http.StatusCreated, cruise)
}

// UpdateHistory handles PUT /api/cruises/:id/history
func (h *CruiseHandler) UpdateHistory(c *gin.Context) {
	var req models.HistoricalTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	cruise, err := h.tripService.UpdateHistoricalTrip(c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "cruise")
		return
	}

	c.JSON(http.StatusOK, cruise)
}

// GetAll handles GET /api/cruises. ?isArchived=true lists archived trips
// instead of the active ones.
func (h *CruiseHandler) GetAll(c *gin.Context) {
	if c.Query("isArchived") == "true" {
		cruises, err := h.tripService.GetArchivedTrips()
		if err != nil {
			respondError(c, err, "cruises")
			return
		}
		c.JSON(http.StatusOK, cruises)
		return
	}

	cruises, err := h.tripService.GetTrips(false)
	if err != nil {
		respondError(c, err, "cruises")
		return
	}

	c.JSON(http.StatusOK, cruises)
}

// GetArchived handles GET /api/cruises/archived
func (h *CruiseHandler) GetArchived(c *gin.Context) {
	cruises, err := h.tripService.GetArchivedTrips()
	if err != nil {
		respondError(c, err, "cruises")
		return
	}

	c.JSON(http.StatusOK, cruises)
}

// GetByID handles GET /api/cruises/:id
func (h *CruiseHandler) GetByID(c *gin.Context) {
	cruise, err := h.tripService.GetTrip(c.Param("id"))
	if err != nil {
		respondError(c, err, "cruise")
		return
	}

	c.JSON(http.StatusOK, cruise)
}

// Archive handles PUT /api/cruises/:id/archive
func (h *CruiseHandler) Archive(c *gin.Context) {
	if err := h.tripService.ArchiveTrip(c.Param("id")); err != nil {
		respondError(c, err, "cruise")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip archived successfully"})
}

// Delete handles DELETE /api/cruises/:id
func (h *CruiseHandler) Delete(c *gin.Context) {
	if err := h.tripService.DeleteTrip(c.Param("id")); err != nil {
		respondError(c, err, "cruise")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// Report handles GET /api/cruises/:id/report
func (h *CruiseHandler) Report(c *gin.Context) {
	cruise, err := h.tripService.GetTrip(c.Param("id"))
	if err != nil {
		respondError(c, err, "cruise")
		return
	}

	pdf, err := h.reportService.TripReport(cruise)
	if err != nil {
		respondError(c, err, "report")
		return
	}

	filename := fmt.Sprintf("trip-report-%s.pdf", cruise.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Export handles GET /api/cruises/export
func (h *CruiseHandler) Export(c *gin.Context) {
	cruises, err := h.tripService.GetTrips(true)
	if err != nil {
		respondError(c, err, "cruises")
		return
	}

	workbook, err := h.exportService.TripsWorkbook(cruises)
	if err != nil {
		respondError(c, err, "export")
		return
	}

	filename := fmt.Sprintf("trips-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
