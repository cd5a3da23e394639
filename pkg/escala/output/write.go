package output

import (
	"io"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// Write serializes s to w in the given format.
func Write(w io.Writer, s *models.Schedule, f Format, pretty bool) error {
	switch f {
	case FormatXLSX:
		return WriteXLSX(w, s.Records, nil)
	case FormatCSV:
		return WriteCSV(w, s.Records, nil)
	}
	data, err := ToJSON(s, pretty)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
