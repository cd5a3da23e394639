// Package escala extracts shift schedule records from block-structured spreadsheets.
package escala

import (
	"log/slog"

	"github.com/ukaji3/escala-go/pkg/escala/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Sheet is the worksheet to read. Empty selects the active sheet.
	Sheet string
	// Params holds the block heuristics. The zero value selects parser.DefaultBlockParams.
	Params *parser.BlockParams
	// RespectPrintArea restricts the grid to the sheet's print area when one is defined.
	// If nil, defaults to false.
	RespectPrintArea *bool
	// Logger receives progress output. If nil, nothing is logged.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	p := parser.DefaultBlockParams()
	return Options{
		Params: &p,
	}
}

// BlockParams returns the effective block parameters.
func (o Options) BlockParams() parser.BlockParams {
	if o.Params != nil {
		return *o.Params
	}
	return parser.DefaultBlockParams()
}

// ShouldRespectPrintArea returns whether to crop the grid to the print area.
func (o Options) ShouldRespectPrintArea() bool {
	if o.RespectPrintArea != nil {
		return *o.RespectPrintArea
	}
	return false
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}
