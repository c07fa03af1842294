package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

const sheetName = "Inventory Report"

var excelHeaders = []string{"ID", "Name", "Description", "Price", "Quantity", "Value", "Sold"}

// WriteExcel renders an inventory report to an XLSX file at path.
func WriteExcel(path string, products []models.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming report sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#B8CCE4"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, h := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return err
	}

	for i, p := range products {
		row := i + 2
		values := []any{p.ID, p.Name, p.Description, p.Price, p.Quantity, p.Value(), p.Sold}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	s := Summarize(products)
	totalsRow := len(products) + 3
	totals := []struct {
		label string
		value any
	}{
		{"Total Products", s.TotalProducts},
		{"Total Quantity", s.TotalQuantity},
		{"Total Sold", s.TotalSold},
		{"Total Inventory Value", s.TotalValue},
	}
	for i, t := range totals {
		labelCell, err := excelize.CoordinatesToCellName(1, totalsRow+i)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, totalsRow+i)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, labelCell, t.label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, valueCell, t.value); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving Excel report: %w", err)
	}
	return nil
}
