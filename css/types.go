package css

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Quote returns s quoted for use as a CSS string (font family names and
// the like). Backslashes and double quotes are escaped per CSS syntax.
func Quote(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`
	}
	var b strings.Builder
	b.Grow(len(s) + 6)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// FormatNumber renders a float the way a script engine would print it: the
// shortest representation that round-trips, no exponent, no negative zero.
func FormatNumber(v float64) string {
	if v == 0 {
		// folds -0 as well
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Pt formats a length in points, "12pt".
func Pt(v float64) string {
	return FormatNumber(v) + "pt"
}

// Value represents a parsed CSS value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// handles "0"
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// IsPercent returns true for percentage values.
func (v Value) IsPercent() bool {
	return v.Unit == "%"
}

// StyleSetter is anything style declarations could be written to: a
// renderer node, a declaration map, an attribute adapter.
type StyleSetter interface {
	SetProperty(name, value string)
}

// Declarations maps CSS property names to values. This is what encoders
// produce and what the external renderer applies to visual nodes.
type Declarations map[string]string

// SetProperty implements StyleSetter. Empty value removes property.
func (d Declarations) SetProperty(name, value string) {
	if value == "" {
		delete(d, name)
		return
	}
	d[name] = value
}

// Merge copies all declarations from src, src wins on conflicts.
func (d Declarations) Merge(src Declarations) Declarations {
	maps.Copy(d, src)
	return d
}

// Clone returns independent copy, nil stays nil.
func (d Declarations) Clone() Declarations {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Keys returns property names in sorted order.
func (d Declarations) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// String serializes declarations into inline style form with properties
// sorted by name, so equal maps always produce equal strings.
func (d Declarations) String() string {
	var b strings.Builder
	for i, k := range d.Keys() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(d[k])
		b.WriteByte(';')
	}
	return b.String()
}
