// Package parser locates shift blocks in a grid and extracts their fields.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultFleetPrefixes are the leading letters accepted on vehicle ids.
const DefaultFleetPrefixes = "TV"

var (
	routeRe     = regexp.MustCompile(`\b\d{4,5}\b`)
	timeRe      = regexp.MustCompile(`\b(\d{1,2})\s*[:hH]\s*(\d{2})(?:\D|$)`)
	driverRe    = regexp.MustCompile(`(?i)motorista`)
	helper1Re   = regexp.MustCompile(`(?i)ajudante\s*1|\baj\.?\s*1\b`)
	helper2Re   = regexp.MustCompile(`(?i)ajudante\s*2|\baj\.?\s*2\b`)
	departureRe = regexp.MustCompile(`(?i)\blarg(?:a|ad|ada)?\b`)
)

// Role identifies a labelled field.
type Role int

const (
	RoleNone Role = iota
	RoleDriver
	RoleHelper1
	RoleHelper2
	RoleDeparture
)

func (r Role) String() string {
	switch r {
	case RoleDriver:
		return "driver"
	case RoleHelper1:
		return "helper1"
	case RoleHelper2:
		return "helper2"
	case RoleDeparture:
		return "departure"
	}
	return "none"
}

// Matchers holds the compiled token classifiers for one fleet prefix set.
type Matchers struct {
	vehicleRe *regexp.Regexp
}

// NewMatchers compiles matchers accepting vehicle ids prefixed by any letter in prefixes.
// An empty prefixes string selects DefaultFleetPrefixes.
func NewMatchers(prefixes string) (*Matchers, error) {
	if prefixes == "" {
		prefixes = DefaultFleetPrefixes
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(prefixes) {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			return nil, fmt.Errorf("invalid fleet prefix %q", r)
		}
		b.WriteRune(r)
	}
	re, err := regexp.Compile(`(?i)\b[` + b.String() + `]\d{2,4}\b`)
	if err != nil {
		return nil, err
	}
	return &Matchers{vehicleRe: re}, nil
}

// MustMatchers is like NewMatchers but panics on an invalid prefix set.
func MustMatchers(prefixes string) *Matchers {
	m, err := NewMatchers(prefixes)
	if err != nil {
		panic(err)
	}
	return m
}

// VehicleID returns the upper-cased vehicle id token found in text.
func (m *Matchers) VehicleID(text string) (string, bool) {
	tok := m.vehicleRe.FindString(text)
	if tok == "" {
		return "", false
	}
	return strings.ToUpper(tok), true
}

// IsPlateCandidate reports whether text looks like a license plate:
// 5 to 8 characters holding at least one letter and one digit.
func IsPlateCandidate(text string) bool {
	text = strings.TrimSpace(text)
	n := len([]rune(text))
	if n < 5 || n > 8 {
		return false
	}
	var letter, digit bool
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}

// RouteNumber returns the first 4-5 digit token in text, zero-padded to 5.
func RouteNumber(text string) (string, bool) {
	tok := routeRe.FindString(text)
	if tok == "" {
		return "", false
	}
	if n := 5 - len(tok); n > 0 {
		tok = strings.Repeat("0", n) + tok
	}
	return tok, true
}

// TimeValue returns the first H:MM / HhMM token in text as HH:MM.
func TimeValue(text string) (string, bool) {
	for _, m := range timeRe.FindAllStringSubmatch(text, -1) {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h > 23 || mm > 59 {
			continue
		}
		return fmt.Sprintf("%02d:%02d", h, mm), true
	}
	return "", false
}

// Roles returns every label role text carries, in a fixed order.
func Roles(text string) []Role {
	if text == "" {
		return nil
	}
	folded := fold(text)
	var out []Role
	if driverRe.MatchString(folded) {
		out = append(out, RoleDriver)
	}
	if helper1Re.MatchString(folded) {
		out = append(out, RoleHelper1)
	}
	if helper2Re.MatchString(folded) {
		out = append(out, RoleHelper2)
	}
	if departureRe.MatchString(folded) {
		out = append(out, RoleDeparture)
	}
	return out
}

// IsLabel reports whether text carries any role or departure label.
func IsLabel(text string) bool {
	return len(Roles(text)) > 0
}

var accents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold strips diacritics so "LARGADA ÀS" and "AJUDANTE" variants match plain patterns.
func fold(s string) string {
	out, _, err := transform.String(accents, s)
	if err != nil {
		return s
	}
	return out
}
