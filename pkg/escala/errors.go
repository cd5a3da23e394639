package escala

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoBlocks indicates no record survived extraction.
var ErrNoBlocks = errors.New("no blocks detected")

// ExtractionError represents an error during extraction of one sheet.
type ExtractionError struct {
	SheetName string
	Component string // "sheet", "cells", "blocks"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
