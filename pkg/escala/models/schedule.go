package models

// Schedule is the result of extracting one sheet.
type Schedule struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the records were read from.
	SheetName string `json:"sheet_name"`
	// DataRange is the bounding range of non-empty cells (e.g. "A1:H40").
	DataRange string `json:"data_range,omitempty"`
	// BlockCount is the number of blocks detected, including dropped ones.
	BlockCount int `json:"blocks"`
	// Records holds the surviving records in sheet order.
	Records []Record `json:"records"`
}
