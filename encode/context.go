package encode

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"docxview/css"
	"docxview/ooxml"
)

// FormatContext carries document scoped lookup tables needed to resolve
// symbolic references. A nil context is valid, symbolic values are then
// emitted unresolved.
type FormatContext struct {
	Theme *ooxml.Theme
	// FontSubstitutes maps font family to the family used when the
	// original is not available, it is appended as a fallback.
	FontSubstitutes map[string]string
}

func (fc *FormatContext) theme() *ooxml.Theme {
	if fc == nil {
		return nil
	}
	return fc.Theme
}

// fontFamily returns CSS font-family value for font reference.
func (fc *FormatContext) fontFamily(f ooxml.FontRef) string {
	name := f.Name
	if f.Theme != "" {
		if face, ok := fc.theme().Font(f.Theme); ok {
			name = face
		} else if name == "" {
			return f.Theme
		}
	}
	if name == "" {
		return ""
	}
	family := css.Quote(name)
	if fc != nil {
		if sub, ok := fc.FontSubstitutes[name]; ok && sub != "" && sub != name {
			family += ", " + css.Quote(sub)
		}
	}
	return family
}

// color returns CSS color value for w:color. Theme references are resolved
// through the theme with tint and shade applied, without theme the
// literal value Word keeps next to the reference is used and, when there
// is none, the theme token itself.
func (fc *FormatContext) color(c ooxml.Color) string {
	if c.Theme != "" {
		if hex, ok := fc.theme().Color(c.Theme); ok {
			if v, ok := adjustColor(hex, c.Tint, c.Shade); ok {
				return v
			}
		}
		if v, ok := hexColor(c.Val); ok {
			return v
		}
		return c.Theme
	}
	if v, ok := hexColor(c.Val); ok {
		return v
	}
	return c.Val
}

func hexColor(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 || strings.EqualFold(s, "auto") {
		return "", false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// adjustColor applies w:themeTint/w:themeShade (hex bytes, 0-255) to
// luminance the way Word does: tint moves toward white, shade toward black.
func adjustColor(hex, tint, shade string) (string, bool) {
	v, ok := hexColor(hex)
	if !ok {
		return "", false
	}
	if tint == "" && shade == "" {
		return v, true
	}
	c, _ := colorful.Hex(v)
	h, s, l := c.Hsl()
	if t, ok := hexByte(tint); ok {
		l = l*t + (1 - t)
	}
	if sh, ok := hexByte(shade); ok {
		l *= sh
	}
	return colorful.Hsl(h, s, l).Clamped().Hex(), true
}

func hexByte(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, false
	}
	return float64(n) / 255, true
}
