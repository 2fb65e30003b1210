package ooxml

import "strings"

// Theme is a subset of DrawingML theme (word/theme/theme1.xml) needed to
// resolve symbolic color and font references.
type Theme struct {
	Name string
	// Colors maps scheme slot (dk1, lt1, accent1, hlink, ...) to RRGGBB.
	Colors    map[string]string
	MajorFont string
	MinorFont string
}

// w:themeColor uses word names, DrawingML scheme uses short slots.
var themeColorAliases = map[string]string{
	"dark1":             "dk1",
	"light1":            "lt1",
	"dark2":             "dk2",
	"light2":            "lt2",
	"text1":             "dk1",
	"background1":       "lt1",
	"text2":             "dk2",
	"background2":       "lt2",
	"hyperlink":         "hlink",
	"followedhyperlink": "folHlink",
}

// Color returns RRGGBB for theme color name as used in w:themeColor.
func (t *Theme) Color(name string) (string, bool) {
	if t == nil || name == "" {
		return "", false
	}
	slot := name
	if alias, ok := themeColorAliases[strings.ToLower(name)]; ok {
		slot = alias
	}
	v, ok := t.Colors[slot]
	return v, ok && v != ""
}

// Font returns typeface for theme font slot (w:asciiTheme values such as
// majorHAnsi, minorEastAsia). Only latin typefaces are kept in the theme
// so every major/minor slot maps to the same face.
func (t *Theme) Font(slot string) (string, bool) {
	if t == nil {
		return "", false
	}
	switch {
	case strings.HasPrefix(slot, "major") && t.MajorFont != "":
		return t.MajorFont, true
	case strings.HasPrefix(slot, "minor") && t.MinorFont != "":
		return t.MinorFont, true
	}
	return "", false
}
