// Package resolve flattens layered document properties into effective
// paragraph, run and table property sets.
//
// Precedence, highest to lowest: direct formatting, named style chain
// (nearest style wins), paragraph mark run properties (runs only), document
// defaults. All functions are pure, inputs are never modified.
package resolve

import "docxview/ooxml"

// pick returns override when present, base otherwise.
func pick[T any](base, override *T) *T {
	if override != nil {
		return override
	}
	return base
}

// CombineRunProperties overrides base with every field present in override.
func CombineRunProperties(base, override ooxml.RunProperties) ooxml.RunProperties {
	return ooxml.RunProperties{
		Font:      pick(base.Font, override.Font),
		Size:      pick(base.Size, override.Size),
		Color:     pick(base.Color, override.Color),
		Bold:      pick(base.Bold, override.Bold),
		Italic:    pick(base.Italic, override.Italic),
		Strike:    pick(base.Strike, override.Strike),
		Caps:      pick(base.Caps, override.Caps),
		SmallCaps: pick(base.SmallCaps, override.SmallCaps),
		Underline: pick(base.Underline, override.Underline),
		Highlight: pick(base.Highlight, override.Highlight),
		VertAlign: pick(base.VertAlign, override.VertAlign),
		Lang:      pick(base.Lang, override.Lang),
	}
}

// CombineParagraphProperties overrides base with every field present in
// override. Grouped properties (indentation, spacing, borders, mark run) are
// combined field by field rather than replaced as a whole.
func CombineParagraphProperties(base, override ooxml.ParagraphProperties) ooxml.ParagraphProperties {
	return ooxml.ParagraphProperties{
		Justification: pick(base.Justification, override.Justification),
		Indent:        combineIndent(base.Indent, override.Indent),
		Spacing:       combineSpacing(base.Spacing, override.Spacing),
		Borders:       combineBorders(base.Borders, override.Borders),
		Numbering:     pick(base.Numbering, override.Numbering),
		OutlineLevel:  pick(base.OutlineLevel, override.OutlineLevel),
		KeepNext:      pick(base.KeepNext, override.KeepNext),
		Shading:       pick(base.Shading, override.Shading),
		MarkRun:       combineRunPtr(base.MarkRun, override.MarkRun),
	}
}

// CombineTableProperties overrides base with every field present in override.
func CombineTableProperties(base, override ooxml.TableProperties) ooxml.TableProperties {
	return ooxml.TableProperties{
		Justification: pick(base.Justification, override.Justification),
		Indent:        pick(base.Indent, override.Indent),
		Width:         pick(base.Width, override.Width),
		Borders:       combineTableBorders(base.Borders, override.Borders),
		CellMargins:   combineCellMargins(base.CellMargins, override.CellMargins),
		Layout:        pick(base.Layout, override.Layout),
	}
}

func combineRunPtr(base, override *ooxml.RunProperties) *ooxml.RunProperties {
	if base == nil || override == nil {
		return pick(base, override)
	}
	r := CombineRunProperties(*base, *override)
	return &r
}

// First line and hanging indents are one logical property: whichever one
// the override layer sets cancels the other one from below.
func combineIndent(base, override *ooxml.Indentation) *ooxml.Indentation {
	if base == nil || override == nil {
		return pick(base, override)
	}
	out := ooxml.Indentation{
		Start:     pick(base.Start, override.Start),
		End:       pick(base.End, override.End),
		FirstLine: base.FirstLine,
		Hanging:   base.Hanging,
	}
	if override.FirstLine != nil || override.Hanging != nil {
		out.FirstLine = override.FirstLine
		out.Hanging = override.Hanging
	}
	return &out
}

func combineSpacing(base, override *ooxml.ParagraphSpacing) *ooxml.ParagraphSpacing {
	if base == nil || override == nil {
		return pick(base, override)
	}
	return &ooxml.ParagraphSpacing{
		Before:          pick(base.Before, override.Before),
		After:           pick(base.After, override.After),
		BeforeAuto:      pick(base.BeforeAuto, override.BeforeAuto),
		AfterAuto:       pick(base.AfterAuto, override.AfterAuto),
		Line:            pick(base.Line, override.Line),
		LineRule:        pick(base.LineRule, override.LineRule),
		SuppressForList: pick(base.SuppressForList, override.SuppressForList),
	}
}

func combineBorders(base, override *ooxml.Borders) *ooxml.Borders {
	if base == nil || override == nil {
		return pick(base, override)
	}
	return &ooxml.Borders{
		Top:     pick(base.Top, override.Top),
		Bottom:  pick(base.Bottom, override.Bottom),
		Start:   pick(base.Start, override.Start),
		End:     pick(base.End, override.End),
		Between: pick(base.Between, override.Between),
	}
}

func combineTableBorders(base, override *ooxml.TableBorders) *ooxml.TableBorders {
	if base == nil || override == nil {
		return pick(base, override)
	}
	return &ooxml.TableBorders{
		Top:     pick(base.Top, override.Top),
		Bottom:  pick(base.Bottom, override.Bottom),
		Start:   pick(base.Start, override.Start),
		End:     pick(base.End, override.End),
		InsideH: pick(base.InsideH, override.InsideH),
		InsideV: pick(base.InsideV, override.InsideV),
	}
}

func combineCellMargins(base, override *ooxml.CellMargins) *ooxml.CellMargins {
	if base == nil || override == nil {
		return pick(base, override)
	}
	return &ooxml.CellMargins{
		Top:    pick(base.Top, override.Top),
		Bottom: pick(base.Bottom, override.Bottom),
		Start:  pick(base.Start, override.Start),
		End:    pick(base.End, override.End),
	}
}
