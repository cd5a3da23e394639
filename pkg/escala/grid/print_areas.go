package grid

import (
	"strings"

	"github.com/ukaji3/escala-go/pkg/escala/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func PrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area := parseRangeToArea(part[idx+1:]); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}
}

// Crop restricts g to the union of areas: cells outside every area read as
// empty and the bounds shrink to the furthest area corner within g.
func Crop(g Grid, areas []models.PrintArea) Grid {
	if len(areas) == 0 {
		return g
	}
	v := &cropped{base: g, areas: areas}
	for _, a := range areas {
		v.maxRow = max(v.maxRow, min(a.R2, g.MaxRow()))
		v.maxCol = max(v.maxCol, min(a.C2, g.MaxCol()))
	}
	return v
}

type cropped struct {
	base   Grid
	areas  []models.PrintArea
	maxRow int
	maxCol int
}

func (v *cropped) MaxRow() int { return v.maxRow }
func (v *cropped) MaxCol() int { return v.maxCol }

func (v *cropped) Text(row, col int) string {
	if row > v.maxRow || col > v.maxCol {
		return ""
	}
	for _, a := range v.areas {
		if a.Contains(row, col) {
			return v.base.Text(row, col)
		}
	}
	return ""
}
