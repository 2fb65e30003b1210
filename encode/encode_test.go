package encode

import (
	"reflect"
	"testing"

	"golang.org/x/text/language"

	"docxview/common"
	"docxview/css"
	"docxview/ooxml"
	"docxview/resolve"
)

func tw(v int) *ooxml.Twips { return ooxml.Ptr(ooxml.Twips(v)) }

func TestEncodeCSSFromPPr(t *testing.T) {
	tests := []struct {
		name        string
		ppr         ooxml.ParagraphProperties
		hasPrevious bool
		next        *ooxml.ParagraphProperties
		want        css.Declarations
	}{
		{
			name:        "empty",
			hasPrevious: true,
			want:        css.Declarations{"margin-top": "0pt", "margin-bottom": "0pt"},
		},
		{
			name: "first paragraph loses before spacing",
			ppr: ooxml.ParagraphProperties{
				Spacing: &ooxml.ParagraphSpacing{Before: tw(480), After: tw(240), Line: tw(360)},
			},
			hasPrevious: false,
			want:        css.Declarations{"margin-top": "0pt", "margin-bottom": "12pt", "line-height": "1.5"},
		},
		{
			name: "auto after collapses before same level paragraph",
			ppr: ooxml.ParagraphProperties{
				Spacing: &ooxml.ParagraphSpacing{Before: tw(100), After: tw(280), AfterAuto: ooxml.Ptr(true)},
			},
			hasPrevious: true,
			next:        &ooxml.ParagraphProperties{},
			want:        css.Declarations{"margin-top": "5pt", "margin-bottom": "0pt"},
		},
		{
			name: "auto after kept before heading",
			ppr: ooxml.ParagraphProperties{
				Spacing: &ooxml.ParagraphSpacing{After: tw(280), AfterAuto: ooxml.Ptr(true)},
			},
			hasPrevious: true,
			next:        &ooxml.ParagraphProperties{OutlineLevel: ooxml.Ptr(0)},
			want:        css.Declarations{"margin-top": "0pt", "margin-bottom": "14pt"},
		},
		{
			name: "indentation alignment and keep next",
			ppr: ooxml.ParagraphProperties{
				Justification: ooxml.Ptr("both"),
				Indent:        &ooxml.Indentation{Start: tw(720), End: tw(360), Hanging: tw(360)},
				KeepNext:      ooxml.Ptr(true),
				Shading:       ooxml.Ptr("FFFF00"),
			},
			hasPrevious: true,
			want: css.Declarations{
				"margin-top":       "0pt",
				"margin-bottom":    "0pt",
				"margin-left":      "36pt",
				"margin-right":     "18pt",
				"text-indent":      "-18pt",
				"text-align":       "justify",
				"break-after":      "avoid",
				"background-color": "#ffff00",
			},
		},
		{
			name: "borders",
			ppr: ooxml.ParagraphProperties{
				Borders: &ooxml.Borders{
					Top:    &ooxml.Border{Style: "single", Size: 4, Space: 1, Color: "auto"},
					Bottom: &ooxml.Border{Style: "double", Size: 12, Color: "FF0000"},
					Start:  &ooxml.Border{Style: "nil"},
				},
			},
			hasPrevious: true,
			want: css.Declarations{
				"margin-top":    "0pt",
				"margin-bottom": "0pt",
				"border-top":    "0.5pt solid currentColor",
				"padding-top":   "1pt",
				"border-bottom": "1.5pt double #ff0000",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeCSSFromPPr(tt.ppr, tt.hasPrevious, tt.next)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeCSSFromPPr() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeCSSFromPPrAdjacent(t *testing.T) {
	ppr := ooxml.ParagraphProperties{
		Spacing: &ooxml.ParagraphSpacing{Before: tw(280), BeforeAuto: ooxml.Ptr(true)},
	}
	body := &ooxml.ParagraphProperties{}
	heading := &ooxml.ParagraphProperties{OutlineLevel: ooxml.Ptr(0)}

	if got := EncodeCSSFromPPrAdjacent(ppr, body, nil)["margin-top"]; got != "0pt" {
		t.Errorf("same level previous: margin-top = %q, want 0pt", got)
	}
	if got := EncodeCSSFromPPrAdjacent(ppr, heading, nil)["margin-top"]; got != "14pt" {
		t.Errorf("heading previous: margin-top = %q, want 14pt", got)
	}
	if got := EncodeCSSFromPPrAdjacent(ppr, nil, nil)["margin-top"]; got != "0pt" {
		t.Errorf("no previous: margin-top = %q, want 0pt", got)
	}
	// previous level unknown
	if got := EncodeCSSFromPPr(ppr, true, nil)["margin-top"]; got != "14pt" {
		t.Errorf("unknown previous: margin-top = %q, want 14pt", got)
	}
}

func TestEncodeCSSFromRPr(t *testing.T) {
	theme := &ooxml.Theme{
		Colors:    map[string]string{"accent1": "4472C4", "dk1": "000000"},
		MajorFont: "Calibri Light",
		MinorFont: "Calibri",
	}
	fc := &FormatContext{Theme: theme, FontSubstitutes: map[string]string{"Calibri": "Carlito"}}

	tests := []struct {
		name string
		rpr  ooxml.RunProperties
		fc   *FormatContext
		want css.Declarations
	}{
		{
			name: "empty",
			want: css.Declarations{},
		},
		{
			name: "toggles and size",
			rpr: ooxml.RunProperties{
				Bold:      ooxml.Ptr(true),
				Italic:    ooxml.Ptr(true),
				Strike:    ooxml.Ptr(true),
				Underline: ooxml.Ptr("wave"),
				Size:      ooxml.Ptr(ooxml.HalfPoints(23)),
				VertAlign: ooxml.Ptr(common.VertAlignSuperscript),
				Caps:      ooxml.Ptr(true),
				SmallCaps: ooxml.Ptr(true),
			},
			want: css.Declarations{
				"font-weight":           "bold",
				"font-style":            "italic",
				"text-decoration-line":  "underline line-through",
				"text-decoration-style": "wavy",
				"font-size":             "11.5pt",
				"vertical-align":        "super",
				"text-transform":        "uppercase",
				"font-variant":          "small-caps",
			},
		},
		{
			name: "theme references without context stay symbolic",
			rpr: ooxml.RunProperties{
				Font:  &ooxml.FontRef{Theme: "minorHAnsi"},
				Color: &ooxml.Color{Theme: "accent1"},
			},
			want: css.Declarations{"font-family": "minorHAnsi", "color": "accent1"},
		},
		{
			name: "literal color next to theme reference",
			rpr:  ooxml.RunProperties{Color: &ooxml.Color{Val: "2F5496", Theme: "accent1"}},
			want: css.Declarations{"color": "#2f5496"},
		},
		{
			name: "theme references resolved",
			rpr: ooxml.RunProperties{
				Font:  &ooxml.FontRef{Theme: "minorHAnsi"},
				Color: &ooxml.Color{Theme: "accent1"},
			},
			fc:   fc,
			want: css.Declarations{"font-family": `"Calibri", "Carlito"`, "color": "#4472c4"},
		},
		{
			name: "tint to white",
			rpr:  ooxml.RunProperties{Color: &ooxml.Color{Theme: "accent1", Tint: "00"}},
			fc:   fc,
			want: css.Declarations{"color": "#ffffff"},
		},
		{
			name: "shade to black",
			rpr:  ooxml.RunProperties{Color: &ooxml.Color{Theme: "text1", Shade: "00"}},
			fc:   fc,
			want: css.Declarations{"color": "#000000"},
		},
		{
			name: "named font and highlight",
			rpr: ooxml.RunProperties{
				Font:      &ooxml.FontRef{Name: `Odd "Font"`},
				Highlight: ooxml.Ptr("darkBlue"),
			},
			fc:   fc,
			want: css.Declarations{"font-family": `"Odd \"Font\""`, "background-color": "#000080"},
		},
		{
			name: "off values produce nothing",
			rpr: ooxml.RunProperties{
				Bold:      ooxml.Ptr(false),
				Underline: ooxml.Ptr("none"),
				Highlight: ooxml.Ptr("none"),
				Color:     &ooxml.Color{Val: "auto"},
				VertAlign: ooxml.Ptr(common.VertAlignBaseline),
			},
			want: css.Declarations{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeCSSFromRPr(tt.rpr, tt.fc)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeCSSFromRPr() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeCSSFromTblPr(t *testing.T) {
	tblPr := ooxml.TableProperties{
		Justification: ooxml.Ptr("center"),
		Indent:        tw(100),
		Width:         &ooxml.TableWidth{W: 2500, Type: "pct"},
		Borders: &ooxml.TableBorders{
			Top:     &ooxml.Border{Style: "single", Size: 8, Color: "000000"},
			InsideH: &ooxml.Border{Style: "dashed", Size: 4},
		},
		CellMargins: &ooxml.CellMargins{Start: tw(108), End: tw(108)},
		Layout:      ooxml.Ptr("fixed"),
	}
	want := css.Declarations{
		"margin-left":               "auto",
		"margin-right":              "auto",
		"width":                     "50%",
		"border-collapse":           "collapse",
		"border-top":                "1pt solid #000000",
		"--docx-inside-h":           "0.5pt dashed currentColor",
		"--docx-cell-padding-left":  "5.4pt",
		"--docx-cell-padding-right": "5.4pt",
		"table-layout":              "fixed",
	}
	if got := EncodeCSSFromTblPr(tblPr); !reflect.DeepEqual(got, want) {
		t.Errorf("EncodeCSSFromTblPr() = %v, want %v", got, want)
	}

	got := EncodeCSSFromTblPr(ooxml.TableProperties{Indent: tw(200), Width: &ooxml.TableWidth{W: 2880, Type: "dxa"}})
	want = css.Declarations{"margin-left": "10pt", "width": "144pt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EncodeCSSFromTblPr() = %v, want %v", got, want)
	}
}

func TestEncodeMarksFromRPr(t *testing.T) {
	rpr := ooxml.RunProperties{
		VertAlign: ooxml.Ptr(common.VertAlignSubscript),
		Highlight: ooxml.Ptr("yellow"),
		Color:     &ooxml.Color{Val: "FF0000"},
		Size:      ooxml.Ptr(ooxml.HalfPoints(28)),
		Font:      &ooxml.FontRef{Name: "Arial"},
		Strike:    ooxml.Ptr(true),
		Underline: ooxml.Ptr("single"),
		Italic:    ooxml.Ptr(true),
		Bold:      ooxml.Ptr(true),
		Caps:      ooxml.Ptr(true),
	}
	want := []Mark{
		Bold{},
		Italic{},
		Underline{Style: "single"},
		Strike{},
		FontFamily{Font: ooxml.FontRef{Name: "Arial"}, CSS: `"Arial"`},
		FontSize{Size: 28},
		Color{Color: ooxml.Color{Val: "FF0000"}, CSS: "#ff0000"},
		Highlight{Color: "yellow"},
		VertAlign{Align: common.VertAlignSubscript},
	}

	got := EncodeMarksFromRPr(rpr, nil)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("EncodeMarksFromRPr() = %#v, want %#v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].MarkType() >= got[i].MarkType() {
			t.Errorf("marks out of order at %d: %v before %v", i, got[i-1].MarkType(), got[i].MarkType())
		}
	}
	if again := EncodeMarksFromRPr(rpr, nil); !reflect.DeepEqual(got, again) {
		t.Error("EncodeMarksFromRPr() is not deterministic")
	}

	if got := EncodeMarksFromRPr(ooxml.RunProperties{}, nil); len(got) != 0 {
		t.Errorf("EncodeMarksFromRPr(empty) = %v, want no marks", got)
	}
}

func TestMarksRoundTrip(t *testing.T) {
	defaults := ooxml.DocDefaults{
		RPr: ooxml.RunProperties{
			Font: &ooxml.FontRef{Theme: "minorHAnsi"},
			Size: ooxml.Ptr(ooxml.HalfPoints(22)),
		},
	}
	chain := ooxml.StyleChain{
		{ID: "Emphasis", RPr: ooxml.RunProperties{Italic: ooxml.Ptr(true), Color: &ooxml.Color{Theme: "accent1", Shade: "BF"}}},
		{ID: "Base", RPr: ooxml.RunProperties{Bold: ooxml.Ptr(true), Underline: ooxml.Ptr("double")}},
	}
	theme := &ooxml.Theme{Colors: map[string]string{"accent1": "4472C4"}, MinorFont: "Calibri"}

	inputs := []ooxml.RunProperties{
		{},
		{Bold: ooxml.Ptr(false)},
		{Strike: ooxml.Ptr(true), Highlight: ooxml.Ptr("green"), VertAlign: ooxml.Ptr(common.VertAlignSuperscript)},
		{Font: &ooxml.FontRef{Name: "Courier New"}, Size: ooxml.Ptr(ooxml.HalfPoints(19)), Color: &ooxml.Color{Val: "auto"}},
		{Underline: ooxml.Ptr("none"), Italic: ooxml.Ptr(false)},
	}

	for _, fc := range []*FormatContext{nil, {Theme: theme}} {
		for i, direct := range inputs {
			x := resolve.ResolveRunProperties(direct, chain, ooxml.RunProperties{}, defaults)
			got := DecodeRPrFromMarks(EncodeMarksFromRPr(x, fc))
			if !reflect.DeepEqual(got, x) {
				t.Errorf("input %d: round trip = %+v, want %+v", i, got, x)
			}
		}
	}
}

func TestMarksRoundTripDropsUnrepresentedFields(t *testing.T) {
	x := ooxml.RunProperties{
		Bold:      ooxml.Ptr(true),
		Caps:      ooxml.Ptr(true),
		SmallCaps: ooxml.Ptr(true),
		Lang:      ooxml.Ptr(language.MustParse("de-DE")),
	}
	got := DecodeRPrFromMarks(EncodeMarksFromRPr(x, nil))
	want := ooxml.RunProperties{Bold: ooxml.Ptr(true)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDecodeRPrFromMarks(t *testing.T) {
	marks := []Mark{
		Color{Color: ooxml.Color{Val: "00FF00"}},
		nil,
		Bold{},
		Color{Color: ooxml.Color{Val: "0000FF"}},
		FontSize{Size: 20},
		FontSize{Size: 30},
	}
	got := DecodeRPrFromMarks(marks)
	want := ooxml.RunProperties{
		Bold:  ooxml.Ptr(true),
		Color: &ooxml.Color{Val: "0000FF"},
		Size:  ooxml.Ptr(ooxml.HalfPoints(30)),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRPrFromMarks() = %+v, want %+v", got, want)
	}

	if got := DecodeRPrFromMarks(nil); !got.IsEmpty() {
		t.Errorf("DecodeRPrFromMarks(nil) = %+v, want empty", got)
	}
}

func TestParseMark(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		want  Mark
		ok    bool
	}{
		{"bold", nil, Bold{}, true},
		{"underline", nil, Underline{Style: "single"}, true},
		{"fontSize", map[string]string{"halfPoints": "24"}, FontSize{Size: 24}, true},
		{"fontSize", map[string]string{"halfPoints": "big"}, nil, false},
		{"color", map[string]string{"theme": "accent2", "css": "#ed7d31"}, Color{Color: ooxml.Color{Theme: "accent2"}, CSS: "#ed7d31"}, true},
		{"color", map[string]string{"val": "auto"}, nil, false},
		{"vertAlign", map[string]string{"align": "subscript"}, VertAlign{Align: common.VertAlignSubscript}, true},
		{"vertAlign", map[string]string{"align": "sideways"}, nil, false},
		{"link", map[string]string{"href": "https://example.com"}, nil, false},
		{"footnoteReference", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMark(tt.name, tt.attrs)
			if ok != tt.ok || !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseMark(%q) = %#v, %v, want %#v, %v", tt.name, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestUnknownMarksIgnored(t *testing.T) {
	external := []struct {
		name  string
		attrs map[string]string
	}{
		{"bold", nil},
		{"comment", map[string]string{"id": "3"}},
		{"highlight", map[string]string{"color": "cyan"}},
		{"trackInsert", map[string]string{"author": "someone"}},
	}

	var marks []Mark
	for _, e := range external {
		if m, ok := ParseMark(e.name, e.attrs); ok {
			marks = append(marks, m)
		}
	}
	got := DecodeRPrFromMarks(marks)
	want := ooxml.RunProperties{Bold: ooxml.Ptr(true), Highlight: ooxml.Ptr("cyan")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRPrFromMarks() = %+v, want %+v", got, want)
	}
}

func TestMarkAttrsParseBack(t *testing.T) {
	marks := EncodeMarksFromRPr(ooxml.RunProperties{
		Bold:      ooxml.Ptr(true),
		Underline: ooxml.Ptr("dotted"),
		Font:      &ooxml.FontRef{Theme: "majorHAnsi"},
		Size:      ooxml.Ptr(ooxml.HalfPoints(40)),
		Color:     &ooxml.Color{Theme: "accent1", Tint: "66"},
		VertAlign: ooxml.Ptr(common.VertAlignSuperscript),
	}, nil)

	for _, m := range marks {
		got, ok := ParseMark(m.MarkType().String(), m.Attrs())
		if !ok || !reflect.DeepEqual(got, m) {
			t.Errorf("ParseMark(%v) = %#v, %v, want %#v", m.MarkType(), got, ok, m)
		}
	}
}

func TestStyleClass(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Heading 1", "docx-style-heading-1"},
		{"Normal", "docx-style-normal"},
		{"  ", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StyleClass(tt.name); got != tt.want {
			t.Errorf("StyleClass(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
	if StyleClass("Title") != StyleClass("Title") {
		t.Error("StyleClass is not stable")
	}
}
