package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// ToJSON serializes a schedule.
func ToJSON(s *models.Schedule, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
