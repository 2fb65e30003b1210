package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"docxview/common"
	"docxview/config"
	"docxview/css"
	"docxview/docx"
	"docxview/imagegeom"
	"docxview/locator"
	"docxview/ooxml"
)

func tw(v int) *ooxml.Twips      { return ooxml.Ptr(ooxml.Twips(v)) }
func hp(v int) *ooxml.HalfPoints { return ooxml.Ptr(ooxml.HalfPoints(v)) }

func textRun(s string) *docx.Run { return &docx.Run{Text: s} }

func imageRun(img *docx.Image) *docx.Run { return &docx.Run{Image: img} }

func para(runs ...*docx.Run) *docx.Paragraph { return &docx.Paragraph{Runs: runs} }

func position(t *testing.T, n *Node) string {
	t.Helper()
	v, ok := n.Attr(locator.PositionAttr)
	if !ok {
		t.Fatalf("node <%s> has no position", n.Tag)
	}
	return v
}

func TestRenderPositions(t *testing.T) {
	img := &docx.Image{Target: "word/media/image1.png"}
	doc := &docx.Document{Body: []docx.Block{
		para(textRun("Hello"), imageRun(img), textRun("ab")),
		para(textRun("Привет")),
	}}

	out := New(nil, zaptest.NewLogger(t)).Render(doc)
	if len(out.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(out.Nodes))
	}
	if got := position(t, out.Nodes[0]); got != "0" {
		t.Errorf("first paragraph position = %s, want 0", got)
	}
	if got := position(t, out.Nodes[1]); got != "10" {
		t.Errorf("second paragraph position = %s, want 10", got)
	}

	p := out.Nodes[0]
	if p.Tag != "p" || len(p.Children) != 3 {
		t.Fatalf("first paragraph = <%s> with %d children", p.Tag, len(p.Children))
	}
	if p.Children[0].Text != "Hello" || p.Children[2].Text != "ab" {
		t.Errorf("unexpected text nodes %q, %q", p.Children[0].Text, p.Children[2].Text)
	}
	pic := p.Children[1]
	if pic.Tag != "img" || !pic.HasClass("layout-inline-image") {
		t.Errorf("image node = <%s> %v", pic.Tag, pic.Class)
	}
	if src, _ := pic.Attr("src"); src != "word/media/image1.png" {
		t.Errorf("src = %q", src)
	}

	if len(out.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(out.Images))
	}
	ref := out.Images[0]
	if ref.Key != "6" || ref.Kind != common.NodeKindInlineImage {
		t.Errorf("image ref = %s %v, want 6 inlineImage", ref.Key, ref.Kind)
	}
	if ref.Selector != locator.BuildInlineImageSelector("6") {
		t.Errorf("selector = %q", ref.Selector)
	}
	if !ref.Transform.IsIdentity() {
		t.Errorf("transform = %v, want identity", ref.Transform)
	}
}

func TestRenderDeterministic(t *testing.T) {
	doc := &docx.Document{Body: []docx.Block{
		para(textRun("a"), imageRun(&docx.Image{Clip: &imagegeom.ClipSpec{Top: 10}})),
		para(imageRun(&docx.Image{})),
	}}
	r := New(nil, nil)
	if a, b := r.Render(doc), r.Render(doc); !reflect.DeepEqual(a, b) {
		t.Error("rendering same document twice differs")
	}
}

func TestRenderSpacing(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{
		PPr: ooxml.ParagraphProperties{Spacing: &ooxml.ParagraphSpacing{
			Before:     tw(100),
			After:      tw(200),
			BeforeAuto: ooxml.Ptr(true),
			AfterAuto:  ooxml.Ptr(true),
		}},
	})
	heading := para(textRun("Title"))
	heading.PPr.OutlineLevel = ooxml.Ptr(0)
	doc := &docx.Document{Styles: ss, Body: []docx.Block{
		para(textRun("one")),
		para(textRun("two")),
		heading,
	}}

	out := New(nil, zaptest.NewLogger(t)).Render(doc)

	tests := []struct {
		tag, top, bottom string
	}{
		{"p", "0pt", "0pt"},
		{"p", "0pt", "10pt"},
		{"h1", "5pt", "10pt"},
	}
	for i, tt := range tests {
		n := out.Nodes[i]
		if n.Tag != tt.tag {
			t.Errorf("node %d tag = %s, want %s", i, n.Tag, tt.tag)
		}
		if got := n.Style["margin-top"]; got != tt.top {
			t.Errorf("node %d margin-top = %s, want %s", i, got, tt.top)
		}
		if got := n.Style["margin-bottom"]; got != tt.bottom {
			t.Errorf("node %d margin-bottom = %s, want %s", i, got, tt.bottom)
		}
	}
}

func TestRenderListSpacing(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{
		PPr: ooxml.ParagraphProperties{Spacing: &ooxml.ParagraphSpacing{
			Before:     tw(100),
			After:      tw(200),
			BeforeAuto: ooxml.Ptr(true),
			AfterAuto:  ooxml.Ptr(true),
		}},
	})
	item := func(s string) *docx.Paragraph {
		p := para(textRun(s))
		p.PPr.Numbering = &ooxml.NumberingRef{NumID: "1"}
		return p
	}
	doc := &docx.Document{Styles: ss, Body: []docx.Block{item("a"), item("b")}}

	collapsed := New(&config.RenderConfig{}, nil).Render(doc)
	if got := collapsed.Nodes[0].Style["margin-bottom"]; got != "0pt" {
		t.Errorf("collapsed margin-bottom = %s, want 0pt", got)
	}
	kept := New(&config.RenderConfig{ListSpacing: true}, nil).Render(doc)
	if got := kept.Nodes[0].Style["margin-bottom"]; got != "10pt" {
		t.Errorf("kept margin-bottom = %s, want 10pt", got)
	}
	if got := kept.Nodes[1].Style["margin-top"]; got != "5pt" {
		t.Errorf("kept margin-top = %s, want 5pt", got)
	}
}

func TestRenderContextualListSpacing(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{
		PPr: ooxml.ParagraphProperties{Spacing: &ooxml.ParagraphSpacing{
			Before:          tw(100),
			After:           tw(200),
			BeforeAuto:      ooxml.Ptr(true),
			AfterAuto:       ooxml.Ptr(true),
			SuppressForList: ooxml.Ptr(true),
		}},
	})
	item := func(s string, level int) *docx.Paragraph {
		p := para(textRun(s))
		p.PPr.Numbering = &ooxml.NumberingRef{NumID: "1", Level: level}
		return p
	}
	doc := &docx.Document{Styles: ss, Body: []docx.Block{item("a", 0), item("b", 0), item("c", 1)}}

	out := New(&config.RenderConfig{}, nil).Render(doc)
	tests := []struct {
		node        int
		top, bottom string
	}{
		{0, "0pt", "0pt"},
		{1, "0pt", "10pt"},
		{2, "5pt", "10pt"},
	}
	for _, tt := range tests {
		n := out.Nodes[tt.node]
		if n.Style["margin-top"] != tt.top || n.Style["margin-bottom"] != tt.bottom {
			t.Errorf("item %d margins = %s/%s, want %s/%s", tt.node, n.Style["margin-top"], n.Style["margin-bottom"], tt.top, tt.bottom)
		}
	}

	kept := New(&config.RenderConfig{ListSpacing: true}, nil).Render(doc)
	if got := kept.Nodes[1].Style["margin-top"]; got != "5pt" {
		t.Errorf("list spacing margin-top = %s, want 5pt", got)
	}
	if got := kept.Nodes[0].Style["margin-bottom"]; got != "10pt" {
		t.Errorf("list spacing margin-bottom = %s, want 10pt", got)
	}
}

func TestRenderHeadingLevels(t *testing.T) {
	tests := []struct {
		level int
		tag   string
	}{
		{0, "h1"},
		{2, "h3"},
		{5, "h6"},
		{6, "p"},
		{8, "p"},
	}
	for _, tt := range tests {
		p := para(textRun("x"))
		p.PPr.OutlineLevel = ooxml.Ptr(tt.level)
		out := New(nil, nil).Render(&docx.Document{Body: []docx.Block{p}})
		if got := out.Nodes[0].Tag; got != tt.tag {
			t.Errorf("outline level %d: tag = %s, want %s", tt.level, got, tt.tag)
		}
	}
}

func TestRenderBlockImage(t *testing.T) {
	img := &docx.Image{
		Width:  100 * EMUPerPoint,
		Height: 50 * EMUPerPoint,
		Clip:   &imagegeom.ClipSpec{Left: 50},
	}
	doc := &docx.Document{Body: []docx.Block{para(imageRun(img))}}

	out := New(nil, zaptest.NewLogger(t)).Render(doc)
	p := out.Nodes[0]
	if p.Tag != "div" || len(p.Children) != 1 {
		t.Fatalf("paragraph = <%s> with %d children, want <div> with 1", p.Tag, len(p.Children))
	}

	frag := p.Children[0]
	if frag.Tag != "div" || !frag.HasClass("layout-image-fragment") {
		t.Fatalf("fragment = <%s> %v", frag.Tag, frag.Class)
	}
	if got := position(t, frag); got != "1" {
		t.Errorf("fragment position = %s, want 1", got)
	}
	wantFrag := css.Declarations{"width": "100pt", "height": "50pt", "overflow": "hidden"}
	if !reflect.DeepEqual(frag.Style, wantFrag) {
		t.Errorf("fragment style = %v, want %v", frag.Style, wantFrag)
	}

	pic := frag.Children[0]
	wantPic := css.Declarations{
		"display":          "block",
		"width":            "100%",
		"height":           "100%",
		"clip-path":        "inset(0% 0% 0% 50%)",
		"transform-origin": "0 0",
		"transform":        "translate(-100%, 0%) scale(2, 1)",
	}
	if !reflect.DeepEqual(pic.Style, wantPic) {
		t.Errorf("image style = %v, want %v", pic.Style, wantPic)
	}

	ref := out.Images[0]
	if ref.Kind != common.NodeKindBlockFragment || ref.Selector != locator.BuildBlockImageSelector("1") {
		t.Errorf("image ref = %v %q", ref.Kind, ref.Selector)
	}
}

func TestRenderAnchoredImageInText(t *testing.T) {
	doc := &docx.Document{Body: []docx.Block{
		para(textRun("text"), imageRun(&docx.Image{Anchored: true})),
	}}
	out := New(nil, nil).Render(doc)
	if got := out.Nodes[0].Tag; got != "div" {
		t.Errorf("paragraph tag = %s, want div", got)
	}
	if out.Images[0].Kind != common.NodeKindBlockFragment {
		t.Errorf("anchored image kind = %v, want blockFragment", out.Images[0].Kind)
	}
}

func TestRenderInlineCrop(t *testing.T) {
	img := &docx.Image{
		Width:  20 * EMUPerPoint,
		Height: 10 * EMUPerPoint,
		Clip:   &imagegeom.ClipSpec{Top: 10, Right: 20, Bottom: 30, Left: 40},
	}
	doc := &docx.Document{Body: []docx.Block{para(textRun("x"), imageRun(img))}}

	out := New(nil, zaptest.NewLogger(t)).Render(doc)
	wrapper := out.Nodes[0].Children[1]
	if wrapper.Tag != "span" || !wrapper.HasClass("layout-inline-image-crop") {
		t.Fatalf("wrapper = <%s> %v", wrapper.Tag, wrapper.Class)
	}
	wantWrapper := css.Declarations{"display": "inline-block", "width": "20pt", "height": "10pt", "overflow": "hidden"}
	if !reflect.DeepEqual(wrapper.Style, wantWrapper) {
		t.Errorf("wrapper style = %v, want %v", wrapper.Style, wantWrapper)
	}

	pic := wrapper.Children[0]
	if !pic.HasClass("layout-inline-image") {
		t.Errorf("image classes = %v", pic.Class)
	}
	if position(t, wrapper) != "2" || position(t, pic) != "2" {
		t.Error("wrapper and image must share position 2")
	}
	if got := pic.Style["clip-path"]; got != "inset(10% 20% 30% 40%)" {
		t.Errorf("clip-path = %q", got)
	}
	if got := pic.Style["transform"]; got != "translate(-100%, -16.666666666666668%) scale(2.5, 1.6666666666666667)" {
		t.Errorf("transform = %q", got)
	}

	ref := out.Images[0]
	if ref.Kind != common.NodeKindInlineCropWrapper {
		t.Errorf("kind = %v", ref.Kind)
	}
	if ref.Transform.ScaleX != 2.5 {
		t.Errorf("scale x = %v, want 2.5", ref.Transform.ScaleX)
	}
}

func TestRenderDegenerateCrop(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	img := &docx.Image{Clip: &imagegeom.ClipSpec{Left: 60, Right: 40}}
	doc := &docx.Document{Body: []docx.Block{para(textRun("x"), imageRun(img))}}

	out := New(nil, zap.New(core)).Render(doc)
	pic := out.Nodes[0].Children[1].Children[0]
	if got := pic.Style["clip-path"]; got != "inset(0% 40% 0% 60%)" {
		t.Errorf("clip-path = %q", got)
	}
	if _, ok := pic.Style["transform"]; ok {
		t.Error("degenerate crop must not produce transform")
	}
	if !out.Images[0].Transform.IsIdentity() {
		t.Errorf("transform = %v, want identity", out.Images[0].Transform)
	}
	if n := logs.FilterMessageSnippet("nothing visible").Len(); n != 1 {
		t.Errorf("got %d warnings, want 1", n)
	}
}

func TestRenderImageSource(t *testing.T) {
	img := &docx.Image{Target: "word/media/image1.png", MIME: "image/png", Data: []byte{1, 2, 3}}
	doc := &docx.Document{Body: []docx.Block{para(textRun("x"), imageRun(img))}}

	tests := []struct {
		name   string
		source common.ImageSource
		want   string
	}{
		{"link", common.ImageSourceLink, "word/media/image1.png"},
		{"embed", common.ImageSourceEmbed, "data:image/png;base64,AQID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(&config.RenderConfig{Images: tt.source}, nil).Render(doc)
			if got, _ := out.Nodes[0].Children[1].Attr("src"); got != tt.want {
				t.Errorf("src = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderRunFormatting(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{},
		&ooxml.Style{ID: "Lead", Name: "Lead", Type: ooxml.StyleParagraph,
			RPr: ooxml.RunProperties{Bold: ooxml.Ptr(true), Color: &ooxml.Color{Val: "FF0000"}}},
		&ooxml.Style{ID: "Emphasis", Name: "Emphasis", Type: ooxml.StyleCharacter,
			RPr: ooxml.RunProperties{Italic: ooxml.Ptr(true)}},
	)
	p := &docx.Paragraph{StyleID: "Lead", Runs: []*docx.Run{
		{Text: "a"},
		{Text: "b", RPr: ooxml.RunProperties{Bold: ooxml.Ptr(false)}},
		{Text: "c", StyleID: "Emphasis"},
	}}
	doc := &docx.Document{Styles: ss, Body: []docx.Block{p}}

	out := New(&config.RenderConfig{StyleClasses: true}, zaptest.NewLogger(t)).Render(doc)
	n := out.Nodes[0]
	if !reflect.DeepEqual(n.Class, []string{"docx-style-lead"}) {
		t.Errorf("paragraph class = %v", n.Class)
	}
	if n.Style["font-weight"] != "bold" || n.Style["color"] != "#ff0000" {
		t.Errorf("paragraph style = %v", n.Style)
	}

	tests := []struct {
		text  string
		class []string
		style css.Declarations
		marks string
	}{
		{"a", nil, nil, "bold color"},
		{"b", nil, css.Declarations{"font-weight": "normal"}, "color"},
		{"c", []string{"docx-style-emphasis"}, css.Declarations{"font-style": "italic"}, "bold italic color"},
	}
	if len(n.Children) != len(tests) {
		t.Fatalf("got %d children, want %d", len(n.Children), len(tests))
	}
	for i, tt := range tests {
		span := n.Children[i]
		if span.Tag != "span" || span.TextContent() != tt.text {
			t.Errorf("child %d = <%s> %q", i, span.Tag, span.TextContent())
			continue
		}
		if !reflect.DeepEqual(span.Class, tt.class) {
			t.Errorf("%s: class = %v, want %v", tt.text, span.Class, tt.class)
		}
		if !reflect.DeepEqual(span.Style, tt.style) {
			t.Errorf("%s: style = %v, want %v", tt.text, span.Style, tt.style)
		}
		if got, _ := span.Attr("data-marks"); got != tt.marks {
			t.Errorf("%s: marks = %q, want %q", tt.text, got, tt.marks)
		}
		if len(span.Marks) != len(strings.Fields(tt.marks)) {
			t.Errorf("%s: got %d marks", tt.text, len(span.Marks))
		}
	}
}

func TestRenderLineBreaks(t *testing.T) {
	doc := &docx.Document{Body: []docx.Block{para(textRun("one\ntwo"))}}
	out := New(nil, nil).Render(doc)
	children := out.Nodes[0].Children
	if len(children) != 3 || children[1].Tag != "br" {
		t.Fatalf("children = %d, want text, br, text", len(children))
	}
	if out.Nodes[0].TextContent() != "onetwo" {
		t.Errorf("text = %q", out.Nodes[0].TextContent())
	}
}

func TestRenderTable(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{
		PPr: ooxml.ParagraphProperties{Spacing: &ooxml.ParagraphSpacing{Before: tw(120)}},
	})
	table := &docx.Table{
		TblPr: ooxml.TableProperties{Justification: ooxml.Ptr("center")},
		Rows: []*docx.Row{{Cells: []*docx.Cell{
			{Blocks: []docx.Block{para(textRun("x"))}},
			{Blocks: []docx.Block{para(textRun("y")), para(textRun("z"))}},
		}}},
	}
	doc := &docx.Document{Styles: ss, Body: []docx.Block{
		para(textRun("a")),
		table,
		para(textRun("b")),
	}}

	out := New(nil, zaptest.NewLogger(t)).Render(doc)
	if len(out.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(out.Nodes))
	}
	tbl := out.Nodes[1]
	if tbl.Tag != "table" || !tbl.HasClass(TableClass) {
		t.Fatalf("table node = <%s> %v", tbl.Tag, tbl.Class)
	}
	if position(t, tbl) != "3" {
		t.Errorf("table position = %s, want 3", position(t, tbl))
	}
	if tbl.Style["margin-left"] != "auto" || tbl.Style["margin-right"] != "auto" {
		t.Errorf("table style = %v", tbl.Style)
	}

	cells := tbl.Children[0].Children
	y, z := cells[1].Children[0], cells[1].Children[1]
	if position(t, cells[0].Children[0]) != "6" || position(t, y) != "11" || position(t, z) != "14" {
		t.Error("unexpected cell paragraph positions")
	}
	if y.Style["margin-top"] != "0pt" || z.Style["margin-top"] != "6pt" {
		t.Errorf("cell spacing = %s, %s", y.Style["margin-top"], z.Style["margin-top"])
	}

	b := out.Nodes[2]
	if position(t, b) != "20" {
		t.Errorf("paragraph after table position = %s, want 20", position(t, b))
	}
	if b.Style["margin-top"] != "6pt" {
		t.Errorf("paragraph after table margin-top = %s, want 6pt", b.Style["margin-top"])
	}
	if out.Nodes[0].Style["margin-top"] != "0pt" {
		t.Errorf("first paragraph margin-top = %s, want 0pt", out.Nodes[0].Style["margin-top"])
	}
}

func TestRenderStyleCycle(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{},
		&ooxml.Style{ID: "A", Type: ooxml.StyleParagraph, BasedOn: "B", PPr: ooxml.ParagraphProperties{Justification: ooxml.Ptr("center")}},
		&ooxml.Style{ID: "B", Type: ooxml.StyleParagraph, BasedOn: "A"},
	)
	doc := &docx.Document{Styles: ss, Body: []docx.Block{
		&docx.Paragraph{StyleID: "A", Runs: []*docx.Run{textRun("1")}},
		&docx.Paragraph{StyleID: "A", Runs: []*docx.Run{textRun("2")}},
	}}

	out := New(nil, zap.New(core)).Render(doc)
	if got := out.Nodes[1].Style["text-align"]; got != "center" {
		t.Errorf("text-align = %q, want center", got)
	}
	if n := logs.FilterMessageSnippet("cycle").Len(); n != 1 {
		t.Errorf("got %d cycle warnings, want 1", n)
	}
}

func TestWriteHTMLLocate(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{
		RPr: ooxml.RunProperties{Lang: ooxml.Ptr(language.MustParse("en-US"))},
	})
	img := &docx.Image{
		Target: "word/media/image1.png",
		Width:  20 * EMUPerPoint,
		Height: 10 * EMUPerPoint,
		Clip:   &imagegeom.ClipSpec{Top: 10, Right: 20, Bottom: 30, Left: 40},
	}
	doc := &docx.Document{Styles: ss, Body: []docx.Block{
		para(textRun("x"), imageRun(img)),
		para(imageRun(&docx.Image{Target: "word/media/image2.png"})),
	}}

	var buf bytes.Buffer
	out, err := New(nil, zaptest.NewLogger(t)).WriteHTML(&buf, doc, "test")
	if err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	root, err := html.Parse(&buf)
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}

	if page := locator.Locate(root, "html"); page == nil {
		t.Fatal("no html element")
	} else if lang, _ := locator.Attr(page, "lang"); lang != "en-US" {
		t.Errorf("lang = %q, want en-US", lang)
	}

	crop := locator.Locate(root, out.Images[0].Selector)
	if crop == nil {
		t.Fatal("crop wrapper not found")
	}
	if class, _ := locator.Attr(crop, "class"); class != "layout-inline-image-crop" {
		t.Errorf("located class = %q, want crop wrapper", class)
	}
	if all := locator.LocateAll(root, out.Images[0].Selector); len(all) != 2 {
		t.Errorf("LocateAll() found %d nodes, want 2", len(all))
	}

	pic := locator.Locate(crop, locator.Selector(common.NodeKindInlineImage, out.Images[0].Key))
	if pic == nil {
		t.Fatal("inline image not found inside wrapper")
	}
	if got := locator.HTMLStyle(pic).Declarations()["clip-path"]; got != "inset(10% 20% 30% 40%)" {
		t.Errorf("clip-path = %q", got)
	}

	frag := locator.Locate(root, out.Images[1].Selector)
	if frag == nil || frag.Data != "div" {
		t.Fatalf("block fragment not found")
	}
}

func TestRules(t *testing.T) {
	ss := ooxml.NewStyleSheet(ooxml.DocDefaults{},
		&ooxml.Style{ID: "Normal", Name: "Normal", Type: ooxml.StyleParagraph, Default: true},
		&ooxml.Style{ID: "Heading10", Name: "heading 10", Type: ooxml.StyleParagraph, BasedOn: "Normal"},
		&ooxml.Style{ID: "Heading2", Name: "heading 2", Type: ooxml.StyleParagraph, BasedOn: "Normal",
			RPr: ooxml.RunProperties{Size: hp(26)}},
		&ooxml.Style{ID: "Emphasis", Name: "Emphasis", Type: ooxml.StyleCharacter},
		&ooxml.Style{ID: "TableGrid", Name: "Table Grid", Type: ooxml.StyleTable},
		&ooxml.Style{ID: "NoList", Name: "No List", Type: ooxml.StyleNumbering},
	)
	doc := &docx.Document{Styles: ss}
	r := New(nil, nil)

	rules := r.Rules(doc)
	var got []string
	for _, rule := range rules[len(baseRules()):] {
		got = append(got, rule.Selector)
	}
	want := []string{
		".docx-style-emphasis",
		".docx-style-heading-2",
		".docx-style-heading-10",
		".docx-style-normal",
		".docx-style-table-grid",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("selectors = %v, want %v", got, want)
	}
	if rules[len(baseRules())+1].Decls["font-size"] != "13pt" {
		t.Errorf("heading 2 rule = %v", rules[len(baseRules())+1].Decls)
	}

	text := r.StyleSheetCSS(doc)
	if text != r.StyleSheetCSS(doc) {
		t.Error("stylesheet is not deterministic")
	}
	if !strings.Contains(text, ".docx-style-heading-2 {\n  font-size: 13pt;\n") {
		t.Errorf("stylesheet misses heading rule:\n%s", text)
	}
}
