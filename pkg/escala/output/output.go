// Package output serializes extracted schedules to JSON, xlsx and CSV.
package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// Known shift values.
const (
	TurnoNoturno = "Noturno"
	TurnoDiurno  = "Diurno"
)

// FilePrefix is the default export file name prefix.
const FilePrefix = "ESCALA_FILTRADA"

// ParseFormat parses a format name, case-insensitively. A leading dot is accepted
// so file extensions can be passed directly.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case FormatJSON, FormatXLSX, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (must be json, xlsx or csv)", s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}

// ValidTurno reports whether turno is one of the known shift values.
func ValidTurno(turno string) bool {
	return turno == TurnoNoturno || turno == TurnoDiurno
}

// ApplyTurno returns a copy of records with Turno set.
func ApplyTurno(records []models.Record, turno string) []models.Record {
	out := make([]models.Record, len(records))
	for i, r := range records {
		r.Turno = turno
		out[i] = r
	}
	return out
}

// FileName returns the export file name for a date, e.g. ESCALA_FILTRADA_17-10-2026.xlsx.
func FileName(prefix string, t time.Time, f Format) string {
	if prefix == "" {
		prefix = FilePrefix
	}
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format("02-01-2006"), f)
}
