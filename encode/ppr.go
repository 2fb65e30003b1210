package encode

import (
	"strings"

	"docxview/css"
	"docxview/ooxml"
	"docxview/spacing"
)

// EncodeCSSFromPPr projects paragraph properties into CSS declarations.
// Without previous paragraph before spacing is zero. Previous paragraph
// level is not known here, so automatic before spacing keeps its
// magnitude, use EncodeCSSFromPPrAdjacent when it is.
func EncodeCSSFromPPr(ppr ooxml.ParagraphProperties, hasPrevious bool, next *ooxml.ParagraphProperties) css.Declarations {
	adj := spacing.Adjacency{HasPrevious: hasPrevious}
	if next != nil {
		adj.NextSameLevel = spacing.SameLevel(ppr, *next)
	}
	return encodePPr(ppr, adj)
}

// EncodeCSSFromPPrAdjacent is EncodeCSSFromPPr with both neighbors known,
// nil means there is no paragraph on that side.
func EncodeCSSFromPPrAdjacent(ppr ooxml.ParagraphProperties, prev, next *ooxml.ParagraphProperties) css.Declarations {
	adj := spacing.Adjacency{HasPrevious: prev != nil}
	if prev != nil {
		adj.PreviousSameLevel = spacing.SameLevel(ppr, *prev)
	}
	if next != nil {
		adj.NextSameLevel = spacing.SameLevel(ppr, *next)
	}
	return encodePPr(ppr, adj)
}

func encodePPr(ppr ooxml.ParagraphProperties, adj spacing.Adjacency) css.Declarations {
	var sp ooxml.ParagraphSpacing
	if ppr.Spacing != nil {
		sp = *ppr.Spacing
	}
	decls := spacing.GetSpacingStyle(sp, ppr.IsListItem(), adj)

	if ind := ppr.Indent; ind != nil {
		if ind.Start != nil {
			decls.SetProperty("margin-left", css.Pt(ind.Start.Points()))
		}
		if ind.End != nil {
			decls.SetProperty("margin-right", css.Pt(ind.End.Points()))
		}
		switch {
		case ind.Hanging != nil:
			decls.SetProperty("text-indent", css.Pt(-ind.Hanging.Points()))
		case ind.FirstLine != nil:
			decls.SetProperty("text-indent", css.Pt(ind.FirstLine.Points()))
		}
	}

	if b := ppr.Borders; b != nil {
		setBorder(decls, "top", b.Top)
		setBorder(decls, "bottom", b.Bottom)
		setBorder(decls, "left", b.Start)
		setBorder(decls, "right", b.End)
	}

	if ppr.Justification != nil {
		if v, ok := textAlign(*ppr.Justification); ok {
			decls.SetProperty("text-align", v)
		}
	}
	if ppr.Shading != nil {
		if v, ok := hexColor(*ppr.Shading); ok {
			decls.SetProperty("background-color", v)
		}
	}
	if isTrue(ppr.KeepNext) {
		decls.SetProperty("break-after", "avoid")
	}
	return decls
}

func textAlign(jc string) (string, bool) {
	switch strings.ToLower(jc) {
	case "left", "start":
		return "left", true
	case "right", "end":
		return "right", true
	case "center":
		return "center", true
	case "both", "distribute", "lowkashida", "mediumkashida", "highkashida", "thaidistribute":
		return "justify", true
	}
	return "", false
}

// setBorder writes border-<side> and padding-<side> for a border edge.
// Edges that draw nothing produce no declarations.
func setBorder(decls css.Declarations, side string, b *ooxml.Border) {
	if b == nil || b.IsNone() {
		return
	}
	decls.SetProperty("border-"+side, borderValue(*b))
	if b.Space > 0 {
		decls.SetProperty("padding-"+side, css.Pt(float64(b.Space)))
	}
}

func borderValue(b ooxml.Border) string {
	width := b.Size.Points()
	if width <= 0 {
		// Word draws zero sized borders as hairlines
		width = 0.25
	}
	color := "currentColor"
	if v, ok := hexColor(b.Color); ok {
		color = v
	}
	return css.Pt(width) + " " + borderStyle(b.Style) + " " + color
}

func borderStyle(s string) string {
	switch {
	case s == "double":
		return "double"
	case s == "dotted":
		return "dotted"
	case strings.HasPrefix(s, "dash"), strings.HasPrefix(s, "dotDash"):
		return "dashed"
	case s == "inset", s == "outset":
		return s
	case strings.HasPrefix(s, "thinThick"), strings.HasPrefix(s, "thickThin"), s == "triple":
		return "double"
	}
	return "solid"
}
