package itinerary

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Itinerary"

// BuildWorkbook renders an itinerary as a spreadsheet: one row per activity,
// days without activities as a single row, and a closing total-budget row.
func BuildWorkbook(tripName string, days []DayPlan) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	f.SetCellValue(exportSheet, "A1", tripName)

	headers := []string{"Day", "Date", "City", "Activity", "Time", "Cost", "Notes"}
	for i, h := range headers {
		cell := fmt.Sprintf("%c2", 'A'+i)
		f.SetCellValue(exportSheet, cell, h)
	}

	row := 3
	for _, day := range days {
		label := fmt.Sprintf("Day %d", day.DayNumber)
		date := day.Date.Format("2006-01-02")

		if len(day.Activities) == 0 {
			f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), label)
			f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), date)
			f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), day.CityName)
			f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), day.Budget)
			f.SetCellValue(exportSheet, fmt.Sprintf("G%d", row), day.Notes)
			row++
			continue
		}

		for i, activity := range day.Activities {
			f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), label)
			f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), date)
			f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), day.CityName)
			f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), activity.Name)
			f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), activity.Time)
			f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), activity.Cost)
			notes := activity.Notes
			if i == 0 && day.Notes != "" {
				notes = day.Notes
			}
			f.SetCellValue(exportSheet, fmt.Sprintf("G%d", row), notes)
			row++
		}
	}

	f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), "Total Budget")
	f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), TotalBudget(days))

	return f, nil
}
