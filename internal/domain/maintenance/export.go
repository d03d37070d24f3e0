package maintenance

import (
	"fmt"
	"io"

	"cattle-farm-manager/internal/platform/clock"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Mantenimiento"

var exportHeaders = []string{"Fecha", "Tipo de Trabajo", "Empleados", "Días", "Notas"}

// WriteXLSX escribe la planilla de trabajos del rango en w.
func WriteXLSX(w io.Writer, events []Event, rng Range) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	title := fmt.Sprintf("Trabajos de mantenimiento %s a %s", clock.FormatDate(rng.From), clock.FormatDate(rng.To))
	_ = f.SetCellValue(sheetName, "A1", title)
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9EAD3"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	for col, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 3)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "B", 26)
	_ = f.SetColWidth(sheetName, "E", "E", 48)

	var totalEmployees int
	var totalDays float64
	for i, e := range events {
		row := i + 4
		values := []any{clock.FormatDate(e.EventDate), e.Type.Label(), "", "", e.Notes}
		if e.Employees != nil {
			values[2] = *e.Employees
			totalEmployees += *e.Employees
		}
		if e.Days != nil {
			values[3] = *e.Days
			totalDays += *e.Days
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	totalRow := len(events) + 5
	labelCell, _ := excelize.CoordinatesToCellName(1, totalRow)
	_ = f.SetCellValue(sheetName, labelCell, "Total")
	_ = f.SetCellStyle(sheetName, labelCell, labelCell, titleStyle)
	empCell, _ := excelize.CoordinatesToCellName(3, totalRow)
	_ = f.SetCellValue(sheetName, empCell, totalEmployees)
	daysCell, _ := excelize.CoordinatesToCellName(4, totalRow)
	_ = f.SetCellValue(sheetName, daysCell, totalDays)

	_ = f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
