// Package docx reads word-processing packages (.docx) into the property
// model: style sheet, theme and a body of paragraphs, runs, tables and
// images with their direct formatting. Only what rendering needs is kept.
package docx

import (
	"docxview/imagegeom"
	"docxview/ooxml"
)

// Document is a parsed package.
type Document struct {
	// Title and Creator come from core properties, empty when absent.
	Title   string
	Creator string
	Styles  *ooxml.StyleSheet
	// Theme is nil when package has no theme part.
	Theme *ooxml.Theme
	Body  []Block
}

// Block is a body level element: *Paragraph or *Table.
type Block interface {
	block()
}

// Paragraph is w:p.
type Paragraph struct {
	StyleID string
	PPr     ooxml.ParagraphProperties
	Runs    []*Run
}

// Run is w:r. A run carries either text or an image.
type Run struct {
	StyleID string
	RPr     ooxml.RunProperties
	Text    string
	Image   *Image
}

// Table is w:tbl.
type Table struct {
	StyleID string
	TblPr   ooxml.TableProperties
	Rows    []*Row
}

// Row is w:tr.
type Row struct {
	Cells []*Cell
}

// Cell is w:tc, it holds nested blocks.
type Cell struct {
	Blocks []Block
}

// Image is a picture from w:drawing.
type Image struct {
	RelID  string
	Target string // package part name, "word/media/image1.png"
	MIME   string
	Data   []byte
	// Anchored images float outside of text lines.
	Anchored bool
	// Extent in EMU.
	Width  int64
	Height int64
	// Clip is nil when picture is not cropped.
	Clip *imagegeom.ClipSpec
	// SVG is vector source of the picture when package has one, Data
	// then holds raster fallback.
	SVG       []byte
	SVGTarget string
}

func (*Paragraph) block() {}
func (*Table) block()     {}

// Text returns concatenated text of paragraph runs.
func (p *Paragraph) Text() string {
	var n int
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	b := make([]byte, 0, n)
	for _, r := range p.Runs {
		b = append(b, r.Text...)
	}
	return string(b)
}

// Images returns images of all runs in the paragraph.
func (p *Paragraph) Images() []*Image {
	var out []*Image
	for _, r := range p.Runs {
		if r.Image != nil {
			out = append(out, r.Image)
		}
	}
	return out
}

// Language returns BCP 47 tag of document default run language, empty
// when not set.
func (d *Document) Language() string {
	if d.Styles == nil || d.Styles.Defaults.RPr.Lang == nil {
		return ""
	}
	return d.Styles.Defaults.RPr.Lang.String()
}

// Walk calls fn for every paragraph of the body, including paragraphs
// nested in table cells, in document order.
func (d *Document) Walk(fn func(*Paragraph)) {
	walkBlocks(d.Body, fn)
}

func walkBlocks(blocks []Block, fn func(*Paragraph)) {
	for _, b := range blocks {
		switch b := b.(type) {
		case *Paragraph:
			fn(b)
		case *Table:
			for _, row := range b.Rows {
				for _, cell := range row.Cells {
					walkBlocks(cell.Blocks, fn)
				}
			}
		}
	}
}
