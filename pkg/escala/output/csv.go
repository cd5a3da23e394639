package output

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// WriteCSV writes records with a header row. Nil columns selects models.Columns.
func WriteCSV(w io.Writer, records []models.Record, columns []string) error {
	if columns == nil {
		columns = models.Columns
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Values(columns)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
