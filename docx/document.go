package docx

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/h2non/filetype"
	"go.uber.org/zap"

	"docxview/imagegeom"
	"docxview/ooxml"
)

// Open reads and parses .docx file.
func Open(archive string, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	parts, err := ReadPackage(archive, log)
	if err != nil {
		return nil, err
	}
	return Parse(parts, log)
}

// Parse builds document from package parts. Only main document part is
// required, missing styles or theme produce empty style sheet and nil
// theme.
func Parse(parts Parts, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("docx")

	d := &Document{}

	if data, ok := parts[partCore]; ok {
		if err := parseCore(data, d); err != nil {
			// core properties are informational
			log.Warn("Unable to parse core properties", zap.Error(err))
		}
	}

	if data, ok := parts[partStyles]; ok {
		ss, err := parseStyles(data)
		if err != nil {
			return nil, err
		}
		d.Styles = ss
	} else {
		log.Debug("Package has no styles part")
		d.Styles = ooxml.NewStyleSheet(ooxml.DocDefaults{})
	}

	if data, ok := parts[partTheme]; ok {
		th, err := parseTheme(data)
		if err != nil {
			return nil, err
		}
		d.Theme = th
	}

	data, ok := parts[partDocument]
	if !ok {
		return nil, fmt.Errorf("package has no main document part (%s)", partDocument)
	}
	doc, err := readXML(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}

	b := &bodyBuilder{parts: parts, log: log}
	if rels, ok := parts[partRels]; ok {
		if b.rels, err = parseRels(rels); err != nil {
			return nil, err
		}
	}

	body := doc.Root().SelectElement("w:body")
	if body == nil {
		return nil, errors.New("document has no body")
	}
	d.Body = b.blocks(body)

	log.Debug("Document parsed",
		zap.Int("styles", d.Styles.Len()),
		zap.Bool("theme", d.Theme != nil),
		zap.Int("blocks", len(d.Body)),
		zap.Int("images", b.images))
	return d, nil
}

// parseRels maps relationship ids of the main document to targets.
func parseRels(data []byte) (map[string]string, error) {
	doc, err := readXML(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse document relationships: %w", err)
	}
	rels := make(map[string]string)
	for _, el := range doc.Root().SelectElements("Relationship") {
		if mode := el.SelectAttrValue("TargetMode", ""); mode == "External" {
			continue
		}
		rels[el.SelectAttrValue("Id", "")] = el.SelectAttrValue("Target", "")
	}
	return rels, nil
}

type bodyBuilder struct {
	parts  Parts
	rels   map[string]string
	log    *zap.Logger
	images int
}

func (b *bodyBuilder) blocks(parent *etree.Element) []Block {
	var out []Block
	for _, el := range parent.ChildElements() {
		switch el.FullTag() {
		case "w:p":
			out = append(out, b.paragraph(el))
		case "w:tbl":
			out = append(out, b.table(el))
		case "w:sdt":
			if content := el.SelectElement("w:sdtContent"); content != nil {
				out = append(out, b.blocks(content)...)
			}
		}
	}
	return out
}

func (b *bodyBuilder) paragraph(el *etree.Element) *Paragraph {
	p := &Paragraph{}
	if ppr := el.SelectElement("w:pPr"); ppr != nil {
		p.StyleID, _ = val(ppr, "w:pStyle")
		p.PPr = parsePPr(ppr)
	}
	b.runs(el, p)
	return p
}

// runs collects runs of paragraph content, including runs nested in
// hyperlinks, insertions and other inline containers.
func (b *bodyBuilder) runs(parent *etree.Element, p *Paragraph) {
	for _, el := range parent.ChildElements() {
		switch el.FullTag() {
		case "w:r":
			p.Runs = append(p.Runs, b.run(el)...)
		case "w:hyperlink", "w:ins", "w:smartTag", "w:fldSimple", "w:customXml":
			b.runs(el, p)
		case "w:sdt":
			if content := el.SelectElement("w:sdtContent"); content != nil {
				b.runs(content, p)
			}
		}
	}
}

// run returns text run and one run per picture found in w:r, so every
// returned run carries either text or image.
func (b *bodyBuilder) run(el *etree.Element) []*Run {
	var styleID string
	var rpr ooxml.RunProperties
	if r := el.SelectElement("w:rPr"); r != nil {
		styleID, _ = val(r, "w:rStyle")
		rpr = parseRPr(r)
	}

	var out []*Run
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			out = append(out, &Run{StyleID: styleID, RPr: rpr, Text: text.String()})
			text.Reset()
		}
	}
	for _, c := range el.ChildElements() {
		switch c.FullTag() {
		case "w:t":
			text.WriteString(c.Text())
		case "w:tab":
			text.WriteByte('\t')
		case "w:br", "w:cr":
			text.WriteByte('\n')
		case "w:noBreakHyphen":
			text.WriteString("‑")
		case "w:drawing":
			if img := b.image(c); img != nil {
				flush()
				out = append(out, &Run{StyleID: styleID, RPr: rpr, Image: img})
			}
		}
	}
	flush()
	return out
}

func (b *bodyBuilder) image(drawing *etree.Element) *Image {
	container := firstChild(drawing, "wp:inline", "wp:anchor")
	if container == nil {
		return nil
	}
	blip := container.FindElement(".//a:blip")
	if blip == nil {
		b.log.Debug("Drawing without picture skipped")
		return nil
	}

	img := &Image{
		RelID:    blip.SelectAttrValue("r:embed", ""),
		Anchored: container.Tag == "anchor",
	}
	if ext := container.SelectElement("wp:extent"); ext != nil {
		img.Width, _ = strconv.ParseInt(ext.SelectAttrValue("cx", "0"), 10, 64)
		img.Height, _ = strconv.ParseInt(ext.SelectAttrValue("cy", "0"), 10, 64)
	}
	if sr := container.FindElement(".//a:srcRect"); sr != nil {
		edge := func(k string) int {
			v, _ := strconv.Atoi(sr.SelectAttrValue(k, "0"))
			return v
		}
		clip := imagegeom.FromSrcRect(edge("l"), edge("t"), edge("r"), edge("b"))
		if !clip.IsZero() {
			img.Clip = &clip
		}
	}

	img.Target, img.Data = b.media(img.RelID)
	if svg := blip.FindElement(".//asvg:svgBlip"); svg != nil {
		img.SVGTarget, img.SVG = b.media(svg.SelectAttrValue("r:embed", ""))
	}
	if len(img.Data) == 0 && len(img.SVG) > 0 {
		// vector only picture
		img.Target, img.Data, img.MIME = img.SVGTarget, img.SVG, svgMIME
	}
	switch {
	case img.MIME != "":
	case len(img.Data) > 0:
		if kind, err := filetype.Match(img.Data); err == nil && kind != filetype.Unknown {
			img.MIME = kind.MIME.Value
		}
	default:
		b.log.Warn("Image data not found", zap.String("rel", img.RelID), zap.String("target", img.Target))
	}
	b.images++
	return img
}

// media returns part name and content for image relationship.
func (b *bodyBuilder) media(relID string) (string, []byte) {
	target, ok := b.rels[relID]
	if !ok {
		return "", nil
	}
	name, ok := resolveTarget(target)
	if !ok {
		return "", nil
	}
	return name, b.parts[name]
}

func (b *bodyBuilder) table(el *etree.Element) *Table {
	t := &Table{}
	if tblPr := el.SelectElement("w:tblPr"); tblPr != nil {
		t.StyleID, _ = val(tblPr, "w:tblStyle")
		t.TblPr = parseTblPr(tblPr)
	}
	for _, tr := range el.SelectElements("w:tr") {
		row := &Row{}
		for _, tc := range tr.SelectElements("w:tc") {
			row.Cells = append(row.Cells, &Cell{Blocks: b.blocks(tc)})
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
