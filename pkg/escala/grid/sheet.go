package grid

import (
	"github.com/xuri/excelize/v2"
)

// FromSheet reads a worksheet into a Matrix.
// Values are the formatted cell results; formulas are never returned as text.
func FromSheet(f *excelize.File, sheetName string) (*Matrix, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return NewMatrix(rows), nil
}

// ActiveSheet returns the name of the workbook's active sheet, falling back
// to the first sheet.
func ActiveSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0]
	}
	return ""
}
