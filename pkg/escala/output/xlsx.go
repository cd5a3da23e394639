package output

import (
	"fmt"
	"io"

	"github.com/ukaji3/escala-go/pkg/escala/models"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet name of xlsx exports.
const SheetName = "Escala Filtrada"

// WriteXLSX writes records as a single-sheet workbook with a bold header row.
// Nil columns selects models.Columns.
func WriteXLSX(w io.Writer, records []models.Record, columns []string) error {
	if columns == nil {
		columns = models.Columns
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rec.Values(columns)
		row := make([]any, len(values))
		for j, v := range values {
			row[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, bold); err != nil {
		return err
	}

	lastCell, err := excelize.CoordinatesToCellName(len(columns), len(records)+1)
	if err != nil {
		return err
	}
	if err := f.AutoFilter(SheetName, fmt.Sprintf("A1:%s", lastCell), nil); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
