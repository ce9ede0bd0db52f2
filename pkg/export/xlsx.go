// Package export renders the watering and harvest logs as a spreadsheet for
// offline record-keeping.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"garden/entities"
)

const (
	sheetWatering = "Watering Log"
	sheetHarvest  = "Harvest Log"
)

// LogsWorkbook builds a two-sheet workbook, one row per log entry, newest
// data untouched — rows appear in stored (chronological) order.
func LogsWorkbook(watering []entities.WateringLogEntry, harvests []entities.HarvestLogEntry) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetWatering); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetHarvest); err != nil {
		return nil, err
	}

	wHead := []any{"Plot", "Timestamp", "Status", "Off-schedule"}
	if err := f.SetSheetRow(sheetWatering, "A1", &wHead); err != nil {
		return nil, err
	}
	for i, e := range watering {
		row := []any{e.PlotName, e.Timestamp, e.Status, formatOffSchedule(e.TimeDifference)}
		if err := f.SetSheetRow(sheetWatering, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	hHead := []any{"Plant", "Plot", "Timestamp", "Quantity", "Action", "Weather"}
	if err := f.SetSheetRow(sheetHarvest, "A1", &hHead); err != nil {
		return nil, err
	}
	for i, e := range harvests {
		wx := ""
		if e.Weather != nil {
			wx = fmt.Sprintf("%.0f°, %s", e.Weather.Temp, e.Weather.Description)
		}
		row := []any{e.PlantName, e.PlotName, e.Timestamp, e.Quantity, e.Action, wx}
		if err := f.SetSheetRow(sheetHarvest, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func formatOffSchedule(ms int64) string {
	if ms == 0 {
		return "on time"
	}
	d := time.Duration(ms) * time.Millisecond
	if d < 0 {
		return fmt.Sprintf("%s early", (-d).Round(time.Minute))
	}
	return fmt.Sprintf("%s late", d.Round(time.Minute))
}
