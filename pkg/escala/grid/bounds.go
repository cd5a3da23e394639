package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRange returns the bounding range of non-empty cells in Excel notation
// (e.g. "A1:D10"), or "" when the grid holds no data.
func DataRange(g Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(g)
	if minRow < 0 {
		return ""
	}

	startCell, err := excelize.CoordinatesToCellName(minCol, minRow)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells (1-based, -1 when none).
func findDataBounds(g Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for r := 1; r <= g.MaxRow(); r++ {
		for c := 1; c <= g.MaxCol(); c++ {
			if g.Text(r, c) == "" {
				continue
			}
			if minRow < 0 || r < minRow {
				minRow = r
			}
			if maxRow < 0 || r > maxRow {
				maxRow = r
			}
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if maxCol < 0 || c > maxCol {
				maxCol = c
			}
		}
	}

	return
}
