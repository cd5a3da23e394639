package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/escala-go/pkg/escala/grid"
	"github.com/ukaji3/escala-go/pkg/escala/models"
)

func TestLocateAnchors(t *testing.T) {
	g := grid.FromCells(30, 8,
		models.Cell{Row: 2, Col: 1, Text: "T100"},
		models.Cell{Row: 2, Col: 3, Text: "ABC1234"},
		models.Cell{Row: 20, Col: 2, Text: "T200"},
		models.Cell{Row: 20, Col: 6, Text: "XYZ9876"},
		models.Cell{Row: 25, Col: 1, Text: "ROTA 12345"},
	)

	anchors := LocateAnchors(g, MustMatchers(DefaultFleetPrefixes), 3)

	expected := []models.AnchorPosition{
		{Row: 2, Col: 1, Text: "T100", Plate: "ABC1234"},
		{Row: 20, Col: 2, Text: "T200"},
	}
	if !reflect.DeepEqual(anchors, expected) {
		t.Errorf("LocateAnchors() = %+v, expected %+v", anchors, expected)
	}
}

func TestLocateAnchorsNone(t *testing.T) {
	g := grid.FromCells(3, 3, models.Cell{Row: 1, Col: 1, Text: "ESCALA"})
	if anchors := LocateAnchors(g, MustMatchers(""), 3); len(anchors) != 0 {
		t.Errorf("LocateAnchors() = %+v, expected none", anchors)
	}
}

func TestSegmentBlocks(t *testing.T) {
	tests := []struct {
		name     string
		rows     []int
		maxRow   int
		expected []models.Block
	}{
		{
			name:     "no anchors",
			maxRow:   30,
			expected: []models.Block{{StartRow: 1, EndRow: 30, StartCol: 1, EndCol: 5}},
		},
		{
			name:   "two anchors",
			rows:   []int{2, 20},
			maxRow: 30,
			expected: []models.Block{
				{StartRow: 2, EndRow: 19, StartCol: 1, EndCol: 5, AnchorCol: 1},
				{StartRow: 20, EndRow: 30, StartCol: 1, EndCol: 5, AnchorCol: 1},
			},
		},
		{
			name:   "unsorted anchors",
			rows:   []int{12, 4},
			maxRow: 12,
			expected: []models.Block{
				{StartRow: 4, EndRow: 11, StartCol: 1, EndCol: 5, AnchorCol: 1},
				{StartRow: 12, EndRow: 12, StartCol: 1, EndCol: 5, AnchorCol: 1},
			},
		},
		{
			name:   "same row",
			rows:   []int{3, 3},
			maxRow: 6,
			expected: []models.Block{
				{StartRow: 3, EndRow: 2, StartCol: 1, EndCol: 5, AnchorCol: 1},
				{StartRow: 3, EndRow: 6, StartCol: 1, EndCol: 5, AnchorCol: 1},
			},
		},
		{
			name:   "empty grid",
			rows:   []int{1},
			maxRow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var anchors []models.AnchorPosition
			for _, r := range tt.rows {
				anchors = append(anchors, models.AnchorPosition{Row: r, Col: 1, Text: "T100"})
			}
			blocks := SegmentBlocks(anchors, tt.maxRow, 5)
			if !reflect.DeepEqual(blocks, tt.expected) {
				t.Errorf("SegmentBlocks() = %+v, expected %+v", blocks, tt.expected)
			}
		})
	}
}

func TestSegmentBlocksPartition(t *testing.T) {
	rows := []int{1, 5, 6, 9, 17, 40}
	maxRow := 50

	var anchors []models.AnchorPosition
	for _, r := range rows {
		anchors = append(anchors, models.AnchorPosition{Row: r, Col: 2})
	}
	blocks := SegmentBlocks(anchors, maxRow, 4)

	if len(blocks) != len(rows) {
		t.Fatalf("Expected %d blocks, got %d", len(rows), len(blocks))
	}
	next := rows[0]
	for i, b := range blocks {
		if b.StartRow != next {
			t.Errorf("block %d starts at %d, expected %d", i, b.StartRow, next)
		}
		if b.StartCol != 1 || b.EndCol != 4 {
			t.Errorf("block %d spans columns %d-%d, expected full width", i, b.StartCol, b.EndCol)
		}
		next = b.EndRow + 1
	}
	if next != maxRow+1 {
		t.Errorf("blocks end at %d, expected %d", next-1, maxRow)
	}
}
