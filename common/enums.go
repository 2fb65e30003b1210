// Package common keeps enumerations shared by the property model, the
// encoders and the locator. Values are generated with go-enum, do not edit
// enums_enum.go by hand.
package common

//go:generate go tool go-enum --marshal --names --values

// Line spacing rule of a paragraph (w:spacing/@w:lineRule).
// ENUM(auto, exact, atLeast)
type LineRule int

// Vertical alignment of a run (w:vertAlign).
// ENUM(baseline, superscript, subscript)
type VertAlign int

// Editor annotation kinds, in the order encoders emit them.
// ENUM(bold, italic, underline, strike, fontFamily, fontSize, color, highlight, vertAlign)
type MarkType int

// Kind of visual node produced for an image by the external painter.
// ENUM(blockFragment, inlineCropWrapper, inlineImage)
type NodeKind int

// How rendered image nodes reference picture data.
// ENUM(link, embed)
type ImageSource int

// Raster format used when writing crop previews.
// ENUM(png, jpeg)
type PreviewFormat int

// IsInline reports whether nodes of this kind live inside a text line.
func (k NodeKind) IsInline() bool {
	return k == NodeKindInlineCropWrapper || k == NodeKindInlineImage
}

// Ext returns file name extension for preview format.
func (f PreviewFormat) Ext() string {
	switch f {
	case PreviewFormatJpeg:
		return ".jpg"
	case PreviewFormatPng:
		return ".png"
	default:
		// this should never happen
		panic("unsupported preview format requested")
	}
}
