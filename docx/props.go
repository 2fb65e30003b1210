package docx

import (
	"strconv"

	"github.com/beevik/etree"
	"golang.org/x/text/language"

	"docxview/common"
	"docxview/ooxml"
)

func attr(el *etree.Element, key string) (string, bool) {
	if el == nil {
		return "", false
	}
	a := el.SelectAttr(key)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// val returns w:val of the named child.
func val(el *etree.Element, tag string) (string, bool) {
	if el == nil {
		return "", false
	}
	return attr(el.SelectElement(tag), "w:val")
}

// onOff returns toggle property of the named child, nil when absent.
func onOff(el *etree.Element, tag string) *bool {
	child := el.SelectElement(tag)
	if child == nil {
		return nil
	}
	v, _ := attr(child, "w:val")
	return ooxml.Ptr(ooxml.ParseOnOff(v))
}

func twips(el *etree.Element, keys ...string) *ooxml.Twips {
	for _, k := range keys {
		if v, ok := attr(el, k); ok {
			if t, ok := ooxml.ParseTwips(v); ok {
				return &t
			}
		}
	}
	return nil
}

func strPtr(v string, ok bool) *string {
	if !ok {
		return nil
	}
	return &v
}

func parseRPr(el *etree.Element) ooxml.RunProperties {
	var r ooxml.RunProperties
	if el == nil {
		return r
	}

	if f := el.SelectElement("w:rFonts"); f != nil {
		var ref ooxml.FontRef
		for _, k := range []string{"w:ascii", "w:hAnsi", "w:cs", "w:eastAsia"} {
			if v, ok := attr(f, k); ok && v != "" {
				ref.Name = v
				break
			}
		}
		for _, k := range []string{"w:asciiTheme", "w:hAnsiTheme"} {
			if v, ok := attr(f, k); ok && v != "" {
				ref.Theme = v
				break
			}
		}
		if ref != (ooxml.FontRef{}) {
			r.Font = &ref
		}
	}
	if v, ok := val(el, "w:sz"); ok {
		if hp, ok := ooxml.ParseHalfPoints(v); ok {
			r.Size = &hp
		}
	}
	if c := el.SelectElement("w:color"); c != nil {
		var color ooxml.Color
		color.Val, _ = attr(c, "w:val")
		color.Theme, _ = attr(c, "w:themeColor")
		color.Tint, _ = attr(c, "w:themeTint")
		color.Shade, _ = attr(c, "w:themeShade")
		r.Color = &color
	}
	r.Bold = onOff(el, "w:b")
	r.Italic = onOff(el, "w:i")
	r.Strike = onOff(el, "w:strike")
	r.Caps = onOff(el, "w:caps")
	r.SmallCaps = onOff(el, "w:smallCaps")
	if u := el.SelectElement("w:u"); u != nil {
		v, ok := attr(u, "w:val")
		if !ok {
			v = "single"
		}
		r.Underline = &v
	}
	r.Highlight = strPtr(val(el, "w:highlight"))
	if v, ok := val(el, "w:vertAlign"); ok {
		if va, err := common.ParseVertAlign(v); err == nil {
			r.VertAlign = &va
		}
	}
	if v, ok := val(el, "w:lang"); ok {
		if tag, err := language.Parse(v); err == nil {
			r.Lang = &tag
		}
	}
	return r
}

func parseBorder(el *etree.Element) *ooxml.Border {
	if el == nil {
		return nil
	}
	b := ooxml.Border{}
	b.Style, _ = attr(el, "w:val")
	if v, ok := attr(el, "w:sz"); ok {
		b.Size, _ = ooxml.ParseEighthPoints(v)
	}
	if v, ok := attr(el, "w:space"); ok {
		b.Space, _ = strconv.Atoi(v)
	}
	b.Color, _ = attr(el, "w:color")
	return &b
}

func firstChild(el *etree.Element, tags ...string) *etree.Element {
	for _, t := range tags {
		if c := el.SelectElement(t); c != nil {
			return c
		}
	}
	return nil
}

func parsePPr(el *etree.Element) ooxml.ParagraphProperties {
	var p ooxml.ParagraphProperties
	if el == nil {
		return p
	}

	p.Justification = strPtr(val(el, "w:jc"))
	if ind := el.SelectElement("w:ind"); ind != nil {
		p.Indent = &ooxml.Indentation{
			Start:     twips(ind, "w:start", "w:left"),
			End:       twips(ind, "w:end", "w:right"),
			FirstLine: twips(ind, "w:firstLine"),
			Hanging:   twips(ind, "w:hanging"),
		}
	}
	if s := el.SelectElement("w:spacing"); s != nil {
		sp := &ooxml.ParagraphSpacing{
			Before: twips(s, "w:before"),
			After:  twips(s, "w:after"),
			Line:   twips(s, "w:line"),
		}
		if v, ok := attr(s, "w:beforeAutospacing"); ok {
			sp.BeforeAuto = ooxml.Ptr(ooxml.ParseOnOff(v))
		}
		if v, ok := attr(s, "w:afterAutospacing"); ok {
			sp.AfterAuto = ooxml.Ptr(ooxml.ParseOnOff(v))
		}
		if v, ok := attr(s, "w:lineRule"); ok {
			if lr, err := common.ParseLineRule(v); err == nil {
				sp.LineRule = &lr
			}
		}
		p.Spacing = sp
	}
	if cs := onOff(el, "w:contextualSpacing"); cs != nil {
		if p.Spacing == nil {
			p.Spacing = &ooxml.ParagraphSpacing{}
		}
		p.Spacing.SuppressForList = cs
	}
	if b := el.SelectElement("w:pBdr"); b != nil {
		p.Borders = &ooxml.Borders{
			Top:     parseBorder(b.SelectElement("w:top")),
			Bottom:  parseBorder(b.SelectElement("w:bottom")),
			Start:   parseBorder(firstChild(b, "w:start", "w:left")),
			End:     parseBorder(firstChild(b, "w:end", "w:right")),
			Between: parseBorder(b.SelectElement("w:between")),
		}
	}
	if n := el.SelectElement("w:numPr"); n != nil {
		ref := ooxml.NumberingRef{}
		ref.NumID, _ = val(n, "w:numId")
		if v, ok := val(n, "w:ilvl"); ok {
			ref.Level, _ = strconv.Atoi(v)
		}
		p.Numbering = &ref
	}
	if v, ok := val(el, "w:outlineLvl"); ok {
		if lvl, err := strconv.Atoi(v); err == nil && lvl >= 0 && lvl < 9 {
			p.OutlineLevel = &lvl
		}
	}
	p.KeepNext = onOff(el, "w:keepNext")
	if shd := el.SelectElement("w:shd"); shd != nil {
		p.Shading = strPtr(attr(shd, "w:fill"))
	}
	if rpr := el.SelectElement("w:rPr"); rpr != nil {
		mr := parseRPr(rpr)
		p.MarkRun = &mr
	}
	return p
}

func parseTblPr(el *etree.Element) ooxml.TableProperties {
	var t ooxml.TableProperties
	if el == nil {
		return t
	}

	t.Justification = strPtr(val(el, "w:jc"))
	t.Indent = twips(el.SelectElement("w:tblInd"), "w:w")
	if w := el.SelectElement("w:tblW"); w != nil {
		tw := ooxml.TableWidth{}
		if v, ok := attr(w, "w:w"); ok {
			tw.W, _ = strconv.Atoi(v)
		}
		tw.Type, _ = attr(w, "w:type")
		t.Width = &tw
	}
	if b := el.SelectElement("w:tblBorders"); b != nil {
		t.Borders = &ooxml.TableBorders{
			Top:     parseBorder(b.SelectElement("w:top")),
			Bottom:  parseBorder(b.SelectElement("w:bottom")),
			Start:   parseBorder(firstChild(b, "w:start", "w:left")),
			End:     parseBorder(firstChild(b, "w:end", "w:right")),
			InsideH: parseBorder(b.SelectElement("w:insideH")),
			InsideV: parseBorder(b.SelectElement("w:insideV")),
		}
	}
	if m := el.SelectElement("w:tblCellMar"); m != nil {
		t.CellMargins = &ooxml.CellMargins{
			Top:    twips(m.SelectElement("w:top"), "w:w"),
			Bottom: twips(m.SelectElement("w:bottom"), "w:w"),
			Start:  twips(firstChild(m, "w:start", "w:left"), "w:w"),
			End:    twips(firstChild(m, "w:end", "w:right"), "w:w"),
		}
	}
	if l := el.SelectElement("w:tblLayout"); l != nil {
		t.Layout = strPtr(attr(l, "w:type"))
	}
	return t
}
