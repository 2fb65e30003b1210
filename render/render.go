package render

import (
	"encoding/base64"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"docxview/common"
	"docxview/config"
	"docxview/css"
	"docxview/docx"
	"docxview/encode"
	"docxview/imagegeom"
	"docxview/locator"
	"docxview/ooxml"
	"docxview/resolve"
)

// EMUPerPoint is the number of English Metric Units in a point.
const EMUPerPoint = 12700

// TableClass marks rendered tables, cell rules of the stylesheet hang off
// it.
const TableClass = "docx-table"

// Output is a rendered document.
type Output struct {
	Nodes  []*Node
	Images []*ImageRef
}

// ImageRef describes a rendered image and how to find its node again.
type ImageRef struct {
	Key       locator.PositionKey
	Kind      common.NodeKind
	Selector  string
	Clip      *imagegeom.ClipSpec
	Transform imagegeom.ScaleTransform
	Image     *docx.Image
}

// Renderer turns parsed documents into node trees.
type Renderer struct {
	cfg *config.RenderConfig
	log *zap.Logger
}

// New creates renderer. Nil configuration renders with zero values: linked
// images, no style classes, no font substitutes.
func New(cfg *config.RenderConfig, log *zap.Logger) *Renderer {
	if cfg == nil {
		cfg = &config.RenderConfig{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{cfg: cfg, log: log.Named("render")}
}

// FormatContext returns context encoders use to resolve theme references
// of doc.
func (r *Renderer) FormatContext(doc *docx.Document) *encode.FormatContext {
	return &encode.FormatContext{Theme: doc.Theme, FontSubstitutes: r.cfg.FontSubstitutes}
}

// Render walks document body. Positions are assigned in document order:
// paragraph open and close take one position each, text takes one per
// rune and every image takes one. Tables, rows and cells take one for
// open and one for close.
func (r *Renderer) Render(doc *docx.Document) *Output {
	styles := doc.Styles
	if styles == nil {
		styles = ooxml.NewStyleSheet(ooxml.DocDefaults{})
	}
	w := &walker{
		Renderer: r,
		styles:   styles,
		fc:       r.FormatContext(doc),
		out:      &Output{},
		warned:   make(map[string]bool),
	}
	w.out.Nodes = w.blocks(doc.Body)

	r.log.Debug("Document rendered",
		zap.Int("nodes", len(w.out.Nodes)),
		zap.Int("images", len(w.out.Images)),
		zap.Int("positions", w.pos))
	return w.out
}

type walker struct {
	*Renderer
	styles *ooxml.StyleSheet
	fc     *encode.FormatContext
	out    *Output
	pos    int
	warned map[string]bool
}

// next reserves n positions and returns the first one.
func (w *walker) next(n int) int {
	p := w.pos
	w.pos += n
	return p
}

func (w *walker) warnCycle(kind string, chain ooxml.StyleChain) {
	ids := strings.Join(chain.IDs(), " -> ")
	if w.warned[ids] {
		return
	}
	w.warned[ids] = true
	w.log.Warn("Style inheritance cycle, chain cut", zap.String("type", kind), zap.String("chain", ids))
}

type paragraphInfo struct {
	ppr   ooxml.ParagraphProperties
	chain ooxml.StyleChain
}

// blocks renders sibling blocks of a single container. Spacing of a
// paragraph depends on its neighbors, so all paragraphs are resolved
// before any is encoded.
func (w *walker) blocks(blocks []docx.Block) []*Node {
	infos := make([]*paragraphInfo, len(blocks))
	for i, b := range blocks {
		p, ok := b.(*docx.Paragraph)
		if !ok {
			continue
		}
		chain, cycle := w.styles.ParagraphChain(p.StyleID)
		if cycle {
			w.warnCycle(string(ooxml.StyleParagraph), chain)
		}
		infos[i] = &paragraphInfo{
			ppr:   resolve.ResolveParagraphProperties(p.PPr, chain, w.styles.Defaults),
			chain: chain,
		}
	}

	ppr := func(i int) *ooxml.ParagraphProperties {
		if i < 0 || i >= len(infos) || infos[i] == nil {
			return nil
		}
		return &infos[i].ppr
	}

	out := make([]*Node, 0, len(blocks))
	for i, b := range blocks {
		switch b := b.(type) {
		case *docx.Paragraph:
			decls := w.paragraphCSS(infos[i].ppr, i > 0, ppr(i-1), ppr(i+1))
			out = append(out, w.paragraph(b, infos[i], decls))
		case *docx.Table:
			out = append(out, w.table(b))
		}
	}
	return out
}

func (w *walker) paragraphCSS(pp ooxml.ParagraphProperties, hasPrevious bool, prev, next *ooxml.ParagraphProperties) css.Declarations {
	switch {
	case w.cfg.ListSpacing && pp.IsListItem():
		if pp.Spacing != nil {
			sp := *pp.Spacing
			sp.SuppressForList = nil
			pp.Spacing = &sp
		}
		return encode.EncodeCSSFromPPr(pp, hasPrevious, nil)
	case hasPrevious && prev == nil:
		// previous block is a table
		return encode.EncodeCSSFromPPr(pp, true, next)
	default:
		return encode.EncodeCSSFromPPrAdjacent(pp, prev, next)
	}
}

func styleName(s *ooxml.Style) string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

func (w *walker) styleClass(chain ooxml.StyleChain) string {
	if !w.cfg.StyleClasses || len(chain) == 0 {
		return ""
	}
	return encode.StyleClass(styleName(chain[0]))
}

func (w *walker) paragraph(p *docx.Paragraph, info *paragraphInfo, decls css.Declarations) *Node {
	pos := w.next(1)

	tag := "p"
	if lvl := info.ppr.OutlineLevel; lvl != nil && *lvl < 6 {
		tag = "h" + strconv.Itoa(*lvl+1)
	}
	n := newNode(tag)
	if c := w.styleClass(info.chain); c != "" {
		n.Class = append(n.Class, c)
	}
	n.SetAttr(locator.PositionAttr, strconv.Itoa(pos))

	var mark ooxml.RunProperties
	if p.PPr.MarkRun != nil {
		mark = *p.PPr.MarkRun
	}
	base := encode.EncodeCSSFromRPr(resolve.ResolveRunProperties(ooxml.RunProperties{}, info.chain, mark, w.styles.Defaults), w.fc)
	n.Style = base.Clone().Merge(decls)

	images := p.Images()
	sole := len(images) == 1 && p.Text() == ""
	for _, run := range p.Runs {
		if run.Image != nil {
			img := w.image(run.Image, sole || run.Image.Anchored)
			if img.HasClass(locator.ClassName(common.NodeKindBlockFragment)) {
				// block content cannot live in phrasing element
				n.Tag = "div"
			}
			n.append(img)
			continue
		}
		n.append(w.text(run, info.chain, mark, base)...)
	}

	w.next(1)
	return n
}

// resets are values restoring inherited run formatting a run turns off.
var resets = map[string]string{
	"font-weight":          "normal",
	"font-style":           "normal",
	"text-decoration-line": "none",
	"vertical-align":       "baseline",
	"text-transform":       "none",
	"font-variant":         "normal",
	"background-color":     "transparent",
}

// diff returns declarations of decls that differ from base, properties of
// base missing in decls are reset.
func diff(decls, base css.Declarations) css.Declarations {
	out := make(css.Declarations)
	for k, v := range decls {
		if base[k] != v {
			out[k] = v
		}
	}
	for k := range base {
		if _, ok := decls[k]; ok {
			continue
		}
		if v, ok := resets[k]; ok {
			out[k] = v
		} else {
			out[k] = "initial"
		}
	}
	return out
}

func (w *walker) text(run *docx.Run, pchain ooxml.StyleChain, mark ooxml.RunProperties, base css.Declarations) []*Node {
	cchain, cycle := w.styles.CharacterChain(run.StyleID)
	if cycle {
		w.warnCycle(string(ooxml.StyleCharacter), cchain)
	}
	rpr := resolve.ResolveRunProperties(run.RPr, cchain.Concat(pchain), mark, w.styles.Defaults)
	w.next(utf8.RuneCountInString(run.Text))

	var children []*Node
	for i, line := range strings.Split(run.Text, "\n") {
		if i > 0 {
			children = append(children, newNode("br"))
		}
		if line != "" {
			children = append(children, textNode(line))
		}
	}

	decls := diff(encode.EncodeCSSFromRPr(rpr, w.fc), base)
	marks := encode.EncodeMarksFromRPr(rpr, w.fc)
	class := w.styleClass(cchain)
	if len(decls) == 0 && len(marks) == 0 && class == "" {
		return children
	}

	span := newNode("span")
	if class != "" {
		span.Class = append(span.Class, class)
	}
	if len(decls) > 0 {
		span.Style = decls
	}
	span.Marks = marks
	span.SetAttr("data-marks", markNames(marks))
	return []*Node{span.append(children...)}
}

func markNames(marks []encode.Mark) string {
	names := make([]string, 0, len(marks))
	for _, m := range marks {
		names = append(names, m.MarkType().String())
	}
	return strings.Join(names, " ")
}

func emuPt(v int64) string {
	if v <= 0 {
		return ""
	}
	return css.Pt(float64(v) / EMUPerPoint)
}

func (w *walker) imageSource(img *docx.Image) string {
	if w.cfg.Images == common.ImageSourceEmbed && len(img.Data) > 0 {
		mime := img.MIME
		if mime == "" {
			mime = "application/octet-stream"
		}
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
	}
	return img.Target
}

// image renders picture as block fragment, as inline image inside crop
// wrapper when picture is cropped or as bare inline image. Crop and scale
// go on the picture, the box around it clips overflow.
func (w *walker) image(img *docx.Image, block bool) *Node {
	key := locator.IntKey(w.next(1))

	pic := newNode("img")
	pic.SetAttr("src", w.imageSource(img))

	var kind common.NodeKind
	var root *Node
	switch {
	case block:
		kind = common.NodeKindBlockFragment
		root = newNode("div", locator.ClassName(kind))
		pic.SetProperty("display", "block")
	case img.Clip != nil:
		kind = common.NodeKindInlineCropWrapper
		root = newNode("span", locator.ClassName(kind))
		root.SetProperty("display", "inline-block")
		pic.Class = []string{locator.ClassName(common.NodeKindInlineImage)}
		pic.SetAttr(locator.PositionAttr, string(key))
	default:
		kind = common.NodeKindInlineImage
		pic.Class = []string{locator.ClassName(kind)}
		root = pic
	}
	root.SetAttr(locator.PositionAttr, string(key))
	root.SetProperty("width", emuPt(img.Width))
	root.SetProperty("height", emuPt(img.Height))
	if root != pic {
		pic.SetProperty("width", "100%")
		pic.SetProperty("height", "100%")
		root.append(pic)
		imagegeom.ApplyClip(pic, img.Clip, root)
	}

	ref := &ImageRef{
		Key:       key,
		Kind:      kind,
		Clip:      img.Clip,
		Transform: imagegeom.Identity,
		Image:     img,
	}
	if kind.IsInline() {
		ref.Selector = locator.BuildInlineImageSelector(key)
	} else {
		ref.Selector = locator.BuildBlockImageSelector(key)
	}
	if img.Clip != nil {
		tr, err := imagegeom.DeriveScaleTransform(*img.Clip)
		if err != nil {
			w.log.Warn("Image crop leaves nothing visible, transform skipped",
				zap.String("position", string(key)), zap.String("target", img.Target), zap.Error(err))
		} else {
			ref.Transform = tr
		}
	}
	w.out.Images = append(w.out.Images, ref)
	return root
}

func (w *walker) table(t *docx.Table) *Node {
	pos := w.next(1)

	chain, cycle := w.styles.TableChain(t.StyleID)
	if cycle {
		w.warnCycle(string(ooxml.StyleTable), chain)
	}
	n := newNode("table", TableClass)
	if c := w.styleClass(chain); c != "" {
		n.Class = append(n.Class, c)
	}
	n.SetAttr(locator.PositionAttr, strconv.Itoa(pos))
	if decls := encode.EncodeCSSFromTblPr(resolve.ResolveTableProperties(t.TblPr, chain)); len(decls) > 0 {
		n.Style = decls
	}

	for _, row := range t.Rows {
		w.next(1)
		tr := newNode("tr")
		for _, cell := range row.Cells {
			w.next(1)
			tr.append(newNode("td").append(w.blocks(cell.Blocks)...))
			w.next(1)
		}
		n.append(tr)
		w.next(1)
	}

	w.next(1)
	return n
}
