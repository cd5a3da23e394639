package parser

import (
	"fmt"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// DegeneratePolicy decides which extracted records are dropped.
type DegeneratePolicy string

const (
	// DropEmpty drops a record only when every field is empty.
	DropEmpty DegeneratePolicy = "any"
	// DropWithoutKeyFields drops a record unless Frota, Placa, Rota or Motorista is set.
	DropWithoutKeyFields DegeneratePolicy = "key"
)

// LabelPrecedence decides which label occurrence fills a field when a block
// holds the same label more than once.
type LabelPrecedence string

const (
	// FirstLabelWins keeps the value under the first label occurrence.
	FirstLabelWins LabelPrecedence = "first"
	// LastLabelWins lets later non-empty values override earlier ones.
	LastLabelWins LabelPrecedence = "last"
)

// BlockParams holds the heuristics used to segment and extract blocks.
type BlockParams struct {
	// FleetPrefixes lists the letters a vehicle id may start with.
	FleetPrefixes string
	// PlateLookahead is how many cells right of a vehicle id are checked for a plate.
	PlateLookahead int
	// LabelLookahead is how many rows below a label are checked for its value.
	LabelLookahead int
	// HeaderLookback is how many rows above the block start are searched for the vehicle id.
	HeaderLookback int
	// InferNames enables upper-case row name inference when no driver label exists.
	InferNames bool
	// NameScanRows bounds name inference to this many rows from the block start.
	NameScanRows int
	// Degenerate selects the record drop policy.
	Degenerate DegeneratePolicy
	// Precedence selects which label occurrence wins.
	Precedence LabelPrecedence
}

// DefaultBlockParams returns default block extraction parameters.
func DefaultBlockParams() BlockParams {
	return BlockParams{
		FleetPrefixes:  DefaultFleetPrefixes,
		PlateLookahead: 3,
		LabelLookahead: 4,
		HeaderLookback: 0,
		InferNames:     false,
		NameScanRows:   12,
		Degenerate:     DropEmpty,
		Precedence:     FirstLabelWins,
	}
}

// Validate checks the parameters.
func (p BlockParams) Validate() error {
	if p.PlateLookahead < 0 || p.LabelLookahead < 0 || p.HeaderLookback < 0 || p.NameScanRows < 0 {
		return fmt.Errorf("block params: negative lookahead or scan size")
	}
	switch p.Degenerate {
	case DropEmpty, DropWithoutKeyFields:
	default:
		return fmt.Errorf("block params: unknown degenerate policy %q", p.Degenerate)
	}
	switch p.Precedence {
	case FirstLabelWins, LastLabelWins:
	default:
		return fmt.Errorf("block params: unknown label precedence %q", p.Precedence)
	}
	return nil
}

// Keep reports whether a record survives the degenerate filter.
func (p DegeneratePolicy) Keep(rec models.Record) bool {
	if p == DropWithoutKeyFields {
		return rec.HasKeyField()
	}
	return !rec.IsEmpty()
}
