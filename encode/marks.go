package encode

import (
	"strconv"

	"docxview/common"
	"docxview/ooxml"
	"docxview/resolve"
)

// Mark is an editor annotation attached to a run. Every supported
// formatting property has its own mark type carrying a typed payload, the
// set is closed.
type Mark interface {
	MarkType() common.MarkType
	// Attrs returns mark payload in the flat form annotation layer stores.
	Attrs() map[string]string
	// apply folds mark into run properties.
	apply(ooxml.RunProperties) ooxml.RunProperties
}

// Bold mark.
type Bold struct{}

// Italic mark.
type Italic struct{}

// Strike mark.
type Strike struct{}

// Underline mark, Style is w:u value (single, double, wave, ...).
type Underline struct {
	Style string
}

// FontFamily mark. Font keeps the symbolic reference, CSS is the value
// the editor displays, it is informational and not decoded.
type FontFamily struct {
	Font ooxml.FontRef
	CSS  string
}

// FontSize mark.
type FontSize struct {
	Size ooxml.HalfPoints
}

// Color mark. Like FontFamily it keeps theme references as is.
type Color struct {
	Color ooxml.Color
	CSS   string
}

// Highlight mark, Color is w:highlight value (yellow, darkBlue, ...).
type Highlight struct {
	Color string
}

// VertAlign mark.
type VertAlign struct {
	Align common.VertAlign
}

func (Bold) MarkType() common.MarkType       { return common.MarkTypeBold }
func (Italic) MarkType() common.MarkType     { return common.MarkTypeItalic }
func (Strike) MarkType() common.MarkType     { return common.MarkTypeStrike }
func (Underline) MarkType() common.MarkType  { return common.MarkTypeUnderline }
func (FontFamily) MarkType() common.MarkType { return common.MarkTypeFontFamily }
func (FontSize) MarkType() common.MarkType   { return common.MarkTypeFontSize }
func (Color) MarkType() common.MarkType      { return common.MarkTypeColor }
func (Highlight) MarkType() common.MarkType  { return common.MarkTypeHighlight }
func (VertAlign) MarkType() common.MarkType  { return common.MarkTypeVertAlign }

func (Bold) Attrs() map[string]string   { return nil }
func (Italic) Attrs() map[string]string { return nil }
func (Strike) Attrs() map[string]string { return nil }

func (m Underline) Attrs() map[string]string {
	return map[string]string{"style": m.Style}
}

func (m FontFamily) Attrs() map[string]string {
	return compact(map[string]string{"name": m.Font.Name, "theme": m.Font.Theme, "css": m.CSS})
}

func (m FontSize) Attrs() map[string]string {
	return map[string]string{"halfPoints": strconv.Itoa(int(m.Size))}
}

func (m Color) Attrs() map[string]string {
	return compact(map[string]string{
		"val":   m.Color.Val,
		"theme": m.Color.Theme,
		"tint":  m.Color.Tint,
		"shade": m.Color.Shade,
		"css":   m.CSS,
	})
}

func (m Highlight) Attrs() map[string]string {
	return map[string]string{"color": m.Color}
}

func (m VertAlign) Attrs() map[string]string {
	return map[string]string{"align": m.Align.String()}
}

func (Bold) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Bold: ooxml.Ptr(true)})
}

func (Italic) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Italic: ooxml.Ptr(true)})
}

func (Strike) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Strike: ooxml.Ptr(true)})
}

func (m Underline) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Underline: ooxml.Ptr(m.Style)})
}

func (m FontFamily) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Font: ooxml.Ptr(m.Font)})
}

func (m FontSize) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Size: ooxml.Ptr(m.Size)})
}

func (m Color) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Color: ooxml.Ptr(m.Color)})
}

func (m Highlight) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{Highlight: ooxml.Ptr(m.Color)})
}

func (m VertAlign) apply(r ooxml.RunProperties) ooxml.RunProperties {
	return resolve.CombineRunProperties(r, ooxml.RunProperties{VertAlign: ooxml.Ptr(m.Align)})
}

// EncodeMarksFromRPr returns one mark per formatting property present in
// rpr, in MarkType order. Caps, small caps and language have no marks.
func EncodeMarksFromRPr(rpr ooxml.RunProperties, fc *FormatContext) []Mark {
	var marks []Mark

	if isTrue(rpr.Bold) {
		marks = append(marks, Bold{})
	}
	if isTrue(rpr.Italic) {
		marks = append(marks, Italic{})
	}
	if rpr.Underline != nil && *rpr.Underline != "" && *rpr.Underline != "none" {
		marks = append(marks, Underline{Style: *rpr.Underline})
	}
	if isTrue(rpr.Strike) {
		marks = append(marks, Strike{})
	}
	if rpr.Font != nil && (rpr.Font.Name != "" || rpr.Font.Theme != "") {
		marks = append(marks, FontFamily{Font: *rpr.Font, CSS: fc.fontFamily(*rpr.Font)})
	}
	if rpr.Size != nil && *rpr.Size > 0 {
		marks = append(marks, FontSize{Size: *rpr.Size})
	}
	if rpr.Color != nil && !rpr.Color.IsAuto() {
		marks = append(marks, Color{Color: *rpr.Color, CSS: fc.color(*rpr.Color)})
	}
	if rpr.Highlight != nil && *rpr.Highlight != "" && *rpr.Highlight != "none" {
		marks = append(marks, Highlight{Color: *rpr.Highlight})
	}
	if rpr.VertAlign != nil && *rpr.VertAlign != common.VertAlignBaseline {
		marks = append(marks, VertAlign{Align: *rpr.VertAlign})
	}
	return marks
}

// DecodeRPrFromMarks folds marks into run properties. When a mark type
// repeats, the last one wins. Nil marks are skipped.
func DecodeRPrFromMarks(marks []Mark) ooxml.RunProperties {
	var r ooxml.RunProperties
	for _, m := range marks {
		if m == nil {
			continue
		}
		r = m.apply(r)
	}
	return r
}

// ParseMark builds typed mark from annotation layer representation. It
// returns false for mark types it does not know and for unusable payloads,
// callers skip those.
func ParseMark(name string, attrs map[string]string) (Mark, bool) {
	mt, err := common.ParseMarkType(name)
	if err != nil {
		return nil, false
	}
	switch mt {
	case common.MarkTypeBold:
		return Bold{}, true
	case common.MarkTypeItalic:
		return Italic{}, true
	case common.MarkTypeStrike:
		return Strike{}, true
	case common.MarkTypeUnderline:
		style := attrs["style"]
		if style == "" {
			style = "single"
		}
		return Underline{Style: style}, true
	case common.MarkTypeFontFamily:
		font := ooxml.FontRef{Name: attrs["name"], Theme: attrs["theme"]}
		if font.Name == "" && font.Theme == "" {
			return nil, false
		}
		return FontFamily{Font: font, CSS: attrs["css"]}, true
	case common.MarkTypeFontSize:
		size, ok := ooxml.ParseHalfPoints(attrs["halfPoints"])
		if !ok {
			return nil, false
		}
		return FontSize{Size: size}, true
	case common.MarkTypeColor:
		c := ooxml.Color{Val: attrs["val"], Theme: attrs["theme"], Tint: attrs["tint"], Shade: attrs["shade"]}
		if c.IsAuto() {
			return nil, false
		}
		return Color{Color: c, CSS: attrs["css"]}, true
	case common.MarkTypeHighlight:
		if attrs["color"] == "" {
			return nil, false
		}
		return Highlight{Color: attrs["color"]}, true
	case common.MarkTypeVertAlign:
		va, err := common.ParseVertAlign(attrs["align"])
		if err != nil {
			return nil, false
		}
		return VertAlign{Align: va}, true
	}
	return nil, false
}

func compact(m map[string]string) map[string]string {
	for k, v := range m {
		if v == "" {
			delete(m, k)
		}
	}
	return m
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
