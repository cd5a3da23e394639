package models

// AnchorPosition is a cell holding a vehicle id, used to delimit blocks.
type AnchorPosition struct {
	// Row is the anchor row (1-based).
	Row int `json:"r"`
	// Col is the anchor column (1-based).
	Col int `json:"c"`
	// Text is the matched vehicle id token.
	Text string `json:"text"`
	// Plate is the plate candidate found to the right of the anchor, if any.
	Plate string `json:"plate,omitempty"`
}

// Block is a rectangular row range holding one shift entry.
type Block struct {
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
	StartCol int `json:"start_col"`
	EndCol   int `json:"end_col"`
	// AnchorCol is the column of the vehicle id that opened the block, 0 when
	// the block was not opened by an anchor.
	AnchorCol int `json:"anchor_col,omitempty"`
}

// Rows returns the number of rows covered by the block.
func (b Block) Rows() int {
	if b.EndRow < b.StartRow {
		return 0
	}
	return b.EndRow - b.StartRow + 1
}
