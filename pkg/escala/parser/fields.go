package parser

import (
	"strings"
	"unicode"

	"github.com/ukaji3/escala-go/pkg/escala/grid"
	"github.com/ukaji3/escala-go/pkg/escala/models"
)

// extractor resolves the fields of one block.
type extractor struct {
	g grid.Grid
	m *Matchers
	p BlockParams
}

// ExtractBlock assembles one record from the cells of b.
// A block spanning no rows is an anchor sharing its row with a later one:
// only its vehicle id and plate are read. Without an anchor it yields an empty record.
func ExtractBlock(g grid.Grid, b models.Block, m *Matchers, p BlockParams) models.Record {
	var rec models.Record
	e := &extractor{g: g, m: m, p: p}
	if b.Rows() == 0 {
		if b.AnchorCol > 0 {
			rec.Frota, rec.Placa = e.vehicle(b)
		}
		return rec
	}

	rec.Frota, rec.Placa = e.vehicle(b)
	rec.Rota = e.route(b, rec.Placa)
	driverLabel := e.labels(b, &rec)
	if p.InferNames && !driverLabel {
		e.inferNames(b, &rec)
	}
	return rec
}

// vehicle searches the block start row from the anchor column, then up to
// HeaderLookback rows above it.
func (e *extractor) vehicle(b models.Block) (string, string) {
	for back := 0; back <= e.p.HeaderLookback; back++ {
		r := b.StartRow - back
		if r < 1 {
			break
		}
		first := b.StartCol
		if back == 0 && b.AnchorCol > first {
			first = b.AnchorCol
		}
		for c := first; c <= b.EndCol; c++ {
			if id, ok := e.m.VehicleID(e.g.Text(r, c)); ok {
				return id, plateRightOf(e.g, r, c, b.EndCol, e.p.PlateLookahead)
			}
		}
	}
	return "", ""
}

// route returns the first route number in row-major order within the block.
func (e *extractor) route(b models.Block, plate string) string {
	for r := b.StartRow; r <= b.EndRow; r++ {
		for c := b.StartCol; c <= b.EndCol; c++ {
			t := e.g.Text(r, c)
			if t == "" || (plate != "" && t == plate) {
				continue
			}
			if rota, ok := RouteNumber(t); ok {
				return rota
			}
		}
	}
	return ""
}

// labels fills driver, helpers and departure from labelled cells.
// It reports whether a driver label was seen.
func (e *extractor) labels(b models.Block, rec *models.Record) bool {
	var driverLabel bool
	for r := b.StartRow; r <= b.EndRow; r++ {
		for c := b.StartCol; c <= b.EndCol; c++ {
			t := e.g.Text(r, c)
			if t == "" {
				continue
			}
			for _, role := range Roles(t) {
				if role == RoleDriver {
					driverLabel = true
				}
				field := fieldFor(rec, role)
				if *field != "" && e.p.Precedence == FirstLabelWins {
					continue
				}
				if v := e.labelValue(role, t, r, c, b.EndRow); v != "" {
					*field = v
				}
			}
		}
	}
	return driverLabel
}

func (e *extractor) labelValue(role Role, label string, row, col, endRow int) string {
	if role == RoleDeparture {
		if t, ok := TimeValue(label); ok {
			return t
		}
	}
	v := e.below(row, col, endRow)
	if role == RoleDeparture {
		if t, ok := TimeValue(v); ok {
			return t
		}
	}
	return v
}

// below returns the first non-empty cell under (row, col) within LabelLookahead
// rows and the block. Reaching another label ends the search.
func (e *extractor) below(row, col, endRow int) string {
	for r := row + 1; r <= min(row+e.p.LabelLookahead, endRow); r++ {
		t := e.g.Text(r, col)
		if t == "" {
			continue
		}
		if IsLabel(t) {
			return ""
		}
		return t
	}
	return ""
}

func fieldFor(rec *models.Record, role Role) *string {
	switch role {
	case RoleDriver:
		return &rec.Motorista
	case RoleHelper1:
		return &rec.Ajudante1
	case RoleHelper2:
		return &rec.Ajudante2
	default:
		return &rec.Largada
	}
}

// inferNames treats the first upper-case text rows of the block as driver,
// helper 1 and helper 2. Only empty fields are filled.
func (e *extractor) inferNames(b models.Block, rec *models.Record) {
	var names []string
	last := min(b.EndRow, b.StartRow+e.p.NameScanRows-1)
	for r := b.StartRow; r <= last && len(names) < 3; r++ {
		if name, ok := e.nameRow(r, b); ok {
			names = append(names, name)
		}
	}

	fields := []*string{&rec.Motorista, &rec.Ajudante1, &rec.Ajudante2}
	for i, name := range names {
		if *fields[i] == "" {
			*fields[i] = name
		}
	}
}

// nameRow joins the non-empty cells of a row and accepts it as a name when it is
// upper-case, longer than 6 characters, holds a letter and carries no other token.
func (e *extractor) nameRow(r int, b models.Block) (string, bool) {
	var parts []string
	for c := b.StartCol; c <= b.EndCol; c++ {
		t := e.g.Text(r, c)
		if t == "" {
			continue
		}
		if e.isToken(t) {
			return "", false
		}
		parts = append(parts, t)
	}
	row := strings.Join(parts, " ")
	if len([]rune(row)) <= 6 || row != strings.ToUpper(row) || !strings.ContainsFunc(row, unicode.IsLetter) {
		return "", false
	}
	return row, true
}

func (e *extractor) isToken(t string) bool {
	if _, ok := e.m.VehicleID(t); ok {
		return true
	}
	if _, ok := RouteNumber(t); ok {
		return true
	}
	if _, ok := TimeValue(t); ok {
		return true
	}
	return IsLabel(t)
}
