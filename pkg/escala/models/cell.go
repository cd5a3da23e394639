// Package models defines data structures for shift schedule extraction.
package models

// Cell represents a single normalized grid cell.
type Cell struct {
	// Row is the row index (1-based).
	Row int `json:"r"`
	// Col is the column index (1-based).
	Col int `json:"c"`
	// Text is the trimmed string form of the value ("" when empty).
	Text string `json:"text"`
}
