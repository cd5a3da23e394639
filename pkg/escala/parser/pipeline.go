package parser

import (
	"github.com/ukaji3/escala-go/pkg/escala/grid"
	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// Result holds the intermediate and final products of one pipeline run.
type Result struct {
	Anchors []models.AnchorPosition
	Blocks  []models.Block
	Records []models.Record
}

// Process runs anchor location, block segmentation and field extraction over g.
// Records that fail the degenerate filter are dropped; block order is kept.
func Process(g grid.Grid, p BlockParams) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m, err := NewMatchers(p.FleetPrefixes)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	res.Anchors = LocateAnchors(g, m, p.PlateLookahead)
	res.Blocks = SegmentBlocks(res.Anchors, g.MaxRow(), g.MaxCol())
	for _, b := range res.Blocks {
		rec := ExtractBlock(g, b, m, p)
		if p.Degenerate.Keep(rec) {
			res.Records = append(res.Records, rec)
		}
	}
	return res, nil
}

// ExtractRecords returns the surviving records of g.
func ExtractRecords(g grid.Grid, p BlockParams) ([]models.Record, error) {
	res, err := Process(g, p)
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}
