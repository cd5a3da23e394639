package models

// Column names in export order.
const (
	ColFrota     = "Frota"
	ColPlaca     = "Placa"
	ColRota      = "Rota"
	ColMotorista = "Motorista"
	ColAjudante1 = "Ajudante 1"
	ColAjudante2 = "Ajudante 2"
	ColTurno     = "Turno"
	ColLargada   = "Largada"
)

// Columns is the full export column order.
var Columns = []string{
	ColFrota, ColPlaca, ColRota, ColMotorista, ColAjudante1, ColAjudante2, ColTurno, ColLargada,
}

// Record is one extracted shift entry. Empty strings mean "not found".
type Record struct {
	// Frota is the vehicle id.
	Frota string `json:"Frota"`
	// Placa is the license plate.
	Placa string `json:"Placa"`
	// Rota is the route number, zero-padded to 5 digits.
	Rota string `json:"Rota"`
	// Motorista is the driver name.
	Motorista string `json:"Motorista"`
	// Ajudante1 is the first helper name.
	Ajudante1 string `json:"Ajudante 1"`
	// Ajudante2 is the second helper name.
	Ajudante2 string `json:"Ajudante 2"`
	// Turno is the shift, set by the caller and never by extraction.
	Turno string `json:"Turno,omitempty"`
	// Largada is the departure time.
	Largada string `json:"Largada"`
}

// Get returns the value stored under a column name.
func (r Record) Get(column string) string {
	switch column {
	case ColFrota:
		return r.Frota
	case ColPlaca:
		return r.Placa
	case ColRota:
		return r.Rota
	case ColMotorista:
		return r.Motorista
	case ColAjudante1:
		return r.Ajudante1
	case ColAjudante2:
		return r.Ajudante2
	case ColTurno:
		return r.Turno
	case ColLargada:
		return r.Largada
	}
	return ""
}

// Values returns the record values for the given columns, in order.
func (r Record) Values(columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = r.Get(c)
	}
	return out
}

// IsEmpty reports whether no extracted field is set. Turno is ignored.
func (r Record) IsEmpty() bool {
	return r.Frota == "" && r.Placa == "" && r.Rota == "" && r.Motorista == "" &&
		r.Ajudante1 == "" && r.Ajudante2 == "" && r.Largada == ""
}

// HasKeyField reports whether one of Frota, Placa, Rota or Motorista is set.
func (r Record) HasKeyField() bool {
	return r.Frota != "" || r.Placa != "" || r.Rota != "" || r.Motorista != ""
}
