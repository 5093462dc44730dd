package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/phpdave11/gofpdf"
)

// ReportService renders printable trip reports
type ReportService struct{}

// NewReportService creates a new ReportService
func NewReportService() *ReportService {
	return &ReportService{}
}

// TripReport renders a one-page financial summary PDF for a trip
func (s *ReportService) TripReport(cruise *models.Cruise) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Trip Report - %s", cruise.Name), false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Trip Financial Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Trip details
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, cruise.Name, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)

	writeRow := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	writeRow("Route", fmt.Sprintf("%s - %s", cruise.BoardingLocation, cruise.Destination))
	writeRow("Dates", fmt.Sprintf("%s to %s",
		cruise.StartDate.Format("2006-01-02"), cruise.EndDate.Format("2006-01-02")))
	writeRow("Status", string(cruise.Status))
	writeRow("Total passengers", fmt.Sprintf("%d", cruise.TotalPassengers))
	pdf.Ln(4)

	// Bookings by category
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Bookings", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 7, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Rooms", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 7, "Passengers", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	bookingRows := []struct {
		category   string
		rooms      int
		passengers int
	}{
		{models.CategoryDeluxe, cruise.RoomsBookedDeluxe, cruise.PassengersDeluxe},
		{models.CategoryPremiumGold, cruise.RoomsBookedPremiumGold, cruise.PassengersPremiumGold},
		{models.CategoryPremiumSilver, cruise.RoomsBookedPremiumSilver, cruise.PassengersPremiumSilver},
		{models.CategoryNormal, cruise.RoomsBookedNormal, cruise.PassengersNormal},
	}
	for _, row := range bookingRows {
		pdf.CellFormat(70, 7, row.category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", row.rooms), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", row.passengers), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// Financials
	if cruise.Revenue != nil {
		rev := cruise.Revenue

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Financial Summary", "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		writeAmount := func(label string, amount int64) {
			pdf.CellFormat(70, 7, label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(80, 7, formatAmount(amount), "1", 1, "R", false, 0, "")
		}

		writeAmount("Total revenue", rev.TotalRevenue)
		writeAmount("Food staff cost", rev.FoodStaffCost)
		writeAmount("Cleaning staff cost", rev.CleaningStaffCost)
		writeAmount("Event staff cost", rev.EventStaffCost)
		writeAmount("Activity cost", rev.ActivityCost)
		writeAmount("Total expenses", rev.TotalExpenses)

		pdf.SetFont("Helvetica", "B", 11)
		net := rev.NetProfit()
		label := "Net profit"
		if net < 0 {
			label = "Net loss"
			pdf.SetTextColor(200, 0, 0)
		}
		pdf.CellFormat(70, 8, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 8, formatAmount(net), "1", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render trip report: %w", err)
	}

	return buf.Bytes(), nil
}

func formatAmount(amount int64) string {
	return fmt.Sprintf("%d LKR", amount)
}
