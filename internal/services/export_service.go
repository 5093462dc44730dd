package services

import (
	"bytes"
	"fmt"

	"github.com/oceanline/cruise-admin-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// ExportService renders spreadsheet exports for the back office
type ExportService struct{}

// NewExportService creates a new ExportService
func NewExportService() *ExportService {
	return &ExportService{}
}

// TripsWorkbook renders all trips with their financials as an xlsx workbook
func (s *ExportService) TripsWorkbook(cruises []models.Cruise) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Trips"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Name", "Boarding Location", "Destination", "Start Date", "End Date",
		"Status", "Archived", "Total Passengers",
		"Deluxe Rooms", "Premium Gold Rooms", "Premium Silver Rooms", "Normal Rooms",
		"Total Revenue", "Total Expenses", "Net Profit",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, err
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, err
	}

	for i, cruise := range cruises {
		row := i + 2
		values := []interface{}{
			cruise.Name, cruise.BoardingLocation, cruise.Destination,
			cruise.StartDate.Format("2006-01-02"), cruise.EndDate.Format("2006-01-02"),
			string(cruise.Status), cruise.IsArchived, cruise.TotalPassengers,
			cruise.RoomsBookedDeluxe, cruise.RoomsBookedPremiumGold,
			cruise.RoomsBookedPremiumSilver, cruise.RoomsBookedNormal,
		}
		if cruise.Revenue != nil {
			values = append(values,
				cruise.Revenue.TotalRevenue,
				cruise.Revenue.TotalExpenses,
				cruise.Revenue.NetProfit(),
			)
		} else {
			values = append(values, nil, nil, nil)
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write trips workbook: %w", err)
	}

	return buf.Bytes(), nil
}
