package encode

import (
	"strings"

	"docxview/common"
	"docxview/css"
	"docxview/ooxml"
)

// EncodeCSSFromRPr projects run properties into CSS declarations. Absent
// properties produce no declarations.
func EncodeCSSFromRPr(rpr ooxml.RunProperties, fc *FormatContext) css.Declarations {
	decls := make(css.Declarations)

	if rpr.Font != nil {
		decls.SetProperty("font-family", fc.fontFamily(*rpr.Font))
	}
	if rpr.Size != nil && *rpr.Size > 0 {
		decls.SetProperty("font-size", css.Pt(rpr.Size.Points()))
	}
	if isTrue(rpr.Bold) {
		decls.SetProperty("font-weight", "bold")
	}
	if isTrue(rpr.Italic) {
		decls.SetProperty("font-style", "italic")
	}

	var lines []string
	if rpr.Underline != nil && *rpr.Underline != "" && *rpr.Underline != "none" {
		lines = append(lines, "underline")
		decls.SetProperty("text-decoration-style", underlineStyle(*rpr.Underline))
	}
	if isTrue(rpr.Strike) {
		lines = append(lines, "line-through")
	}
	if len(lines) > 0 {
		decls.SetProperty("text-decoration-line", strings.Join(lines, " "))
	}

	if rpr.Color != nil && !rpr.Color.IsAuto() {
		decls.SetProperty("color", fc.color(*rpr.Color))
	}
	if rpr.Highlight != nil && *rpr.Highlight != "none" {
		decls.SetProperty("background-color", highlightColor(*rpr.Highlight))
	}
	if rpr.VertAlign != nil {
		switch *rpr.VertAlign {
		case common.VertAlignSuperscript:
			decls.SetProperty("vertical-align", "super")
		case common.VertAlignSubscript:
			decls.SetProperty("vertical-align", "sub")
		}
	}
	if isTrue(rpr.Caps) {
		decls.SetProperty("text-transform", "uppercase")
	}
	if isTrue(rpr.SmallCaps) {
		decls.SetProperty("font-variant", "small-caps")
	}
	return decls
}

// underlineStyle maps w:u values to text-decoration-style. Variants
// without a CSS counterpart (words, thick) render solid.
func underlineStyle(u string) string {
	switch {
	case u == "double":
		return "double"
	case strings.HasPrefix(u, "dotted"), strings.HasPrefix(u, "dotDash"), strings.HasPrefix(u, "dotDotDash"):
		return "dotted"
	case strings.HasPrefix(u, "dash"):
		return "dashed"
	case strings.HasPrefix(u, "wav"):
		return "wavy"
	}
	return "solid"
}

var highlightColors = map[string]string{
	"black":       "#000000",
	"blue":        "#0000ff",
	"cyan":        "#00ffff",
	"green":       "#00ff00",
	"magenta":     "#ff00ff",
	"red":         "#ff0000",
	"yellow":      "#ffff00",
	"white":       "#ffffff",
	"darkBlue":    "#000080",
	"darkCyan":    "#008080",
	"darkGreen":   "#008000",
	"darkMagenta": "#800080",
	"darkRed":     "#800000",
	"darkYellow":  "#808000",
	"darkGray":    "#808080",
	"lightGray":   "#c0c0c0",
}

func highlightColor(name string) string {
	if v, ok := highlightColors[name]; ok {
		return v
	}
	return name
}
