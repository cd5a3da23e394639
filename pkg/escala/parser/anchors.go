package parser

import (
	"github.com/ukaji3/escala-go/pkg/escala/grid"
	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// LocateAnchors scans g row by row for vehicle ids. For each hit the next
// plateLookahead cells in the same row are checked for a plate candidate.
// Anchors are returned ordered by row, then column.
func LocateAnchors(g grid.Grid, m *Matchers, plateLookahead int) []models.AnchorPosition {
	var anchors []models.AnchorPosition
	maxCol := g.MaxCol()

	for r := 1; r <= g.MaxRow(); r++ {
		for c := 1; c <= maxCol; c++ {
			id, ok := m.VehicleID(g.Text(r, c))
			if !ok {
				continue
			}
			anchors = append(anchors, models.AnchorPosition{
				Row:   r,
				Col:   c,
				Text:  id,
				Plate: plateRightOf(g, r, c, maxCol, plateLookahead),
			})
		}
	}

	return anchors
}

// plateRightOf returns the first plate candidate in the n cells right of (row, col).
func plateRightOf(g grid.Grid, row, col, endCol, n int) string {
	for c := col + 1; c <= min(col+n, endCol); c++ {
		if t := g.Text(row, c); IsPlateCandidate(t) {
			return t
		}
	}
	return ""
}
