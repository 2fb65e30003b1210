package ooxml

import (
	"strconv"
	"strings"
)

// Word stores paragraph geometry in twentieths of a point, font sizes in
// half-points and border widths in eighths of a point. Values stay in
// document units everywhere in the model and are converted to points only
// when CSS declarations are produced.

// Twips is a length in twentieths of a point.
type Twips int

// HalfPoints is a font size in half-points.
type HalfPoints int

// EighthPoints is a border width in eighths of a point.
type EighthPoints int

// Points converts to points.
func (t Twips) Points() float64 { return float64(t) / 20 }

// Points converts to points.
func (h HalfPoints) Points() float64 { return float64(h) / 2 }

// Points converts to points.
func (e EighthPoints) Points() float64 { return float64(e) / 8 }

// LineUnit is w:spacing/@w:line value of a single line for auto rule.
const LineUnit = 240

// ParseTwips parses signed twips value, fractional values are truncated the
// way Word does it.
func ParseTwips(s string) (Twips, bool) {
	n, ok := parseNumber(s)
	return Twips(n), ok
}

// ParseHalfPoints parses w:sz value.
func ParseHalfPoints(s string) (HalfPoints, bool) {
	n, ok := parseNumber(s)
	if !ok || n <= 0 {
		return 0, false
	}
	return HalfPoints(n), true
}

// ParseEighthPoints parses border w:sz value.
func ParseEighthPoints(s string) (EighthPoints, bool) {
	n, ok := parseNumber(s)
	if !ok || n < 0 {
		return 0, false
	}
	return EighthPoints(n), true
}

// ParseOnOff parses ST_OnOff. Empty value means "on" because presence of an
// element without w:val turns property on.
func ParseOnOff(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "true", "on":
		return true
	}
	return false
}

func parseNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// Ptr returns pointer to a copy of v. Property structs use pointers to
// mark presence.
func Ptr[T any](v T) *T {
	return &v
}
