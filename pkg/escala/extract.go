package escala

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ukaji3/escala-go/pkg/escala/grid"
	"github.com/ukaji3/escala-go/pkg/escala/models"
	"github.com/ukaji3/escala-go/pkg/escala/parser"
	"github.com/xuri/excelize/v2"
)

// Extract extracts shift records from an Excel file.
func Extract(path string, opts Options) (*models.Schedule, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractFile(f, filepath.Base(path), opts)
}

// ExtractBytes extracts shift records from workbook bytes. name is reported as the book name.
func ExtractBytes(name string, data []byte, opts Options) (*models.Schedule, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractFile(f, filepath.Base(name), opts)
}

func extractFile(f *excelize.File, bookName string, opts Options) (*models.Schedule, error) {
	log := opts.logger()

	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = grid.ActiveSheet(f)
	}
	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, NewExtractionError(sheetName, "sheet", fmt.Errorf("sheet does not exist"))
	}

	m, err := grid.FromSheet(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "cells", err)
	}

	var g grid.Grid = m
	if opts.ShouldRespectPrintArea() {
		if areas := grid.PrintAreas(f)[sheetName]; len(areas) > 0 {
			log.Debug("restricting grid to print area", "sheet", sheetName, "areas", len(areas))
			g = grid.Crop(g, areas)
		}
	}

	res, err := parser.Process(g, opts.BlockParams())
	if err != nil {
		return nil, NewExtractionError(sheetName, "blocks", err)
	}

	schedule := &models.Schedule{
		BookName:   bookName,
		SheetName:  sheetName,
		DataRange:  grid.DataRange(g),
		BlockCount: len(res.Blocks),
		Records:    res.Records,
	}
	log.Info("sheet extracted",
		"book", bookName,
		"sheet", sheetName,
		"range", schedule.DataRange,
		"anchors", len(res.Anchors),
		"blocks", len(res.Blocks),
		"records", len(res.Records),
	)
	return schedule, nil
}

// CheckRecords returns ErrNoBlocks when s holds no records.
func CheckRecords(s *models.Schedule) error {
	if s == nil || len(s.Records) == 0 {
		return ErrNoBlocks
	}
	return nil
}
