// Package grid provides bounded read access to a 2-D grid of text cells.
package grid

import (
	"strings"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// Grid is a read-only sheet of text cells with 1-based coordinates.
// Reads outside 1..MaxRow / 1..MaxCol return "".
type Grid interface {
	MaxRow() int
	MaxCol() int
	Text(row, col int) string
}

// Normalize returns the trimmed text form of a raw cell value.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}

// Matrix is an in-memory Grid.
type Matrix struct {
	rows   [][]string
	maxCol int
}

// NewMatrix builds a Matrix from 0-based rows of raw cell values.
// Values are normalized; trailing empty rows are kept so MaxRow matches the source extent.
func NewMatrix(rows [][]string) *Matrix {
	m := &Matrix{rows: make([][]string, len(rows))}
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = Normalize(v)
		}
		m.rows[i] = cells
		if len(cells) > m.maxCol {
			m.maxCol = len(cells)
		}
	}
	return m
}

// FromCells builds a Matrix holding the given cells. The bounds are the
// larger of maxRow/maxCol and the furthest cell.
func FromCells(maxRow, maxCol int, cells ...models.Cell) *Matrix {
	for _, c := range cells {
		if c.Row > maxRow {
			maxRow = c.Row
		}
		if c.Col > maxCol {
			maxCol = c.Col
		}
	}
	rows := make([][]string, maxRow)
	for i := range rows {
		rows[i] = make([]string, maxCol)
	}
	for _, c := range cells {
		if c.Row < 1 || c.Col < 1 {
			continue
		}
		rows[c.Row-1][c.Col-1] = c.Text
	}
	m := NewMatrix(rows)
	m.maxCol = maxCol
	return m
}

// MaxRow returns the number of rows.
func (m *Matrix) MaxRow() int { return len(m.rows) }

// MaxCol returns the number of columns.
func (m *Matrix) MaxCol() int { return m.maxCol }

// Text returns the normalized text at row, col.
func (m *Matrix) Text(row, col int) string {
	if row < 1 || row > len(m.rows) || col < 1 {
		return ""
	}
	r := m.rows[row-1]
	if col > len(r) {
		return ""
	}
	return r[col-1]
}

// Cells returns the non-empty cells of g in row-major order.
func Cells(g Grid) []models.Cell {
	var out []models.Cell
	for r := 1; r <= g.MaxRow(); r++ {
		for c := 1; c <= g.MaxCol(); c++ {
			if t := g.Text(r, c); t != "" {
				out = append(out, models.Cell{Row: r, Col: c, Text: t})
			}
		}
	}
	return out
}
