package encode

import (
	"strings"

	"docxview/css"
	"docxview/ooxml"
)

// EncodeCSSFromTblPr projects table properties into CSS declarations for
// the table element. Cell margins are exposed as custom properties, cells
// pick them up from there.
func EncodeCSSFromTblPr(tblPr ooxml.TableProperties) css.Declarations {
	decls := make(css.Declarations)

	if tblPr.Justification != nil {
		switch strings.ToLower(*tblPr.Justification) {
		case "center":
			decls.SetProperty("margin-left", "auto")
			decls.SetProperty("margin-right", "auto")
		case "right", "end":
			decls.SetProperty("margin-left", "auto")
		}
	}
	if tblPr.Indent != nil && decls["margin-left"] == "" {
		decls.SetProperty("margin-left", css.Pt(tblPr.Indent.Points()))
	}

	if w := tblPr.Width; w != nil {
		switch w.Type {
		case "dxa":
			if w.W > 0 {
				decls.SetProperty("width", css.Pt(ooxml.Twips(w.W).Points()))
			}
		case "pct":
			// fiftieths of a percent
			if w.W > 0 {
				decls.SetProperty("width", css.FormatNumber(float64(w.W)/50)+"%")
			}
		case "auto":
			decls.SetProperty("width", "auto")
		}
	}

	if b := tblPr.Borders; b != nil {
		decls.SetProperty("border-collapse", "collapse")
		setBorder(decls, "top", b.Top)
		setBorder(decls, "bottom", b.Bottom)
		setBorder(decls, "left", b.Start)
		setBorder(decls, "right", b.End)
		if b.InsideH != nil && !b.InsideH.IsNone() {
			decls.SetProperty("--docx-inside-h", borderValue(*b.InsideH))
		}
		if b.InsideV != nil && !b.InsideV.IsNone() {
			decls.SetProperty("--docx-inside-v", borderValue(*b.InsideV))
		}
	}

	if m := tblPr.CellMargins; m != nil {
		setLength(decls, "--docx-cell-padding-top", m.Top)
		setLength(decls, "--docx-cell-padding-bottom", m.Bottom)
		setLength(decls, "--docx-cell-padding-left", m.Start)
		setLength(decls, "--docx-cell-padding-right", m.End)
	}

	if tblPr.Layout != nil && *tblPr.Layout == "fixed" {
		decls.SetProperty("table-layout", "fixed")
	}
	return decls
}

func setLength(decls css.Declarations, name string, t *ooxml.Twips) {
	if t != nil {
		decls.SetProperty(name, css.Pt(t.Points()))
	}
}
