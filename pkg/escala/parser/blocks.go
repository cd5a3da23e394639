package parser

import (
	"cmp"
	"slices"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// SegmentBlocks turns anchors into contiguous full-width row ranges.
// Each anchor opens a block that ends one row before the next anchor's row,
// the last one at maxRow. Without anchors the whole grid is a single block.
func SegmentBlocks(anchors []models.AnchorPosition, maxRow, maxCol int) []models.Block {
	if maxRow < 1 || maxCol < 1 {
		return nil
	}
	if len(anchors) == 0 {
		return []models.Block{{StartRow: 1, EndRow: maxRow, StartCol: 1, EndCol: maxCol}}
	}

	sorted := slices.Clone(anchors)
	slices.SortStableFunc(sorted, func(a, b models.AnchorPosition) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	blocks := make([]models.Block, 0, len(sorted))
	for i, a := range sorted {
		end := maxRow
		if i+1 < len(sorted) {
			end = sorted[i+1].Row - 1
		}
		blocks = append(blocks, models.Block{StartRow: a.Row, EndRow: end, StartCol: 1, EndCol: maxCol, AnchorCol: a.Col})
	}
	return blocks
}
