// Package ooxml is the structural property model of a word-processing
// document: paragraph, run and table properties with optional fields, named
// styles and their based-on chains, document defaults and theme.
//
// Every property field is a pointer, nil means "not specified at this layer".
// Property values are never modified once built, combining layers always
// produces new structs (pointers to leaf values may be shared).
package ooxml

import (
	"golang.org/x/text/language"

	"docxview/common"
)

// FontRef names a font either directly or through a theme font slot
// (majorHAnsi, minorHAnsi, ...).
type FontRef struct {
	Name  string
	Theme string
}

// Color is w:color: a hex RGB value, "auto" or a theme color reference
// with optional tint/shade (hex bytes as in the document).
type Color struct {
	Val   string
	Theme string
	Tint  string
	Shade string
}

// IsAuto reports whether color carries no concrete or theme value.
func (c Color) IsAuto() bool {
	return c.Theme == "" && (c.Val == "" || c.Val == "auto")
}

// RunProperties is the attribute set of a run (w:rPr).
type RunProperties struct {
	Font      *FontRef
	Size      *HalfPoints
	Color     *Color
	Bold      *bool
	Italic    *bool
	Strike    *bool
	Caps      *bool
	SmallCaps *bool
	Underline *string
	Highlight *string
	VertAlign *common.VertAlign
	Lang      *language.Tag
}

// IsEmpty reports whether no field is set.
func (r RunProperties) IsEmpty() bool {
	return r == RunProperties{}
}

// Indentation is w:ind. Start/End are used for both left/right and
// start/end attribute spellings.
type Indentation struct {
	Start     *Twips
	End       *Twips
	FirstLine *Twips
	Hanging   *Twips
}

// ParagraphSpacing is w:spacing.
type ParagraphSpacing struct {
	Before     *Twips
	After      *Twips
	BeforeAuto *bool
	AfterAuto  *bool
	Line       *Twips
	LineRule   *common.LineRule
	// SuppressForList turns off automatic spacing inside lists.
	SuppressForList *bool
}

// Border is a single paragraph or table border edge.
type Border struct {
	Style string // single, double, dotted, dashed, nil, none, ...
	Size  EighthPoints
	Space int // points
	Color string
}

// IsNone reports whether border draws nothing.
func (b Border) IsNone() bool {
	return b.Style == "" || b.Style == "nil" || b.Style == "none"
}

// Borders is w:pBdr.
type Borders struct {
	Top     *Border
	Bottom  *Border
	Start   *Border
	End     *Border
	Between *Border
}

// NumberingRef is w:numPr.
type NumberingRef struct {
	NumID string
	Level int
}

// ParagraphProperties is the attribute set of a paragraph (w:pPr).
type ParagraphProperties struct {
	Justification *string
	Indent        *Indentation
	Spacing       *ParagraphSpacing
	Borders       *Borders
	Numbering     *NumberingRef
	OutlineLevel  *int
	KeepNext      *bool
	Shading       *string
	// MarkRun is w:pPr/w:rPr, run properties of paragraph mark.
	MarkRun *RunProperties
}

// IsListItem reports whether paragraph takes part in numbering. numId 0
// explicitly removes numbering inherited from a style.
func (p ParagraphProperties) IsListItem() bool {
	return p.Numbering != nil && p.Numbering.NumID != "" && p.Numbering.NumID != "0"
}

// TableWidth is w:tblW / w:tcW.
type TableWidth struct {
	W    int
	Type string // dxa, pct, auto, nil
}

// TableBorders is w:tblBorders.
type TableBorders struct {
	Top     *Border
	Bottom  *Border
	Start   *Border
	End     *Border
	InsideH *Border
	InsideV *Border
}

// CellMargins is w:tblCellMar.
type CellMargins struct {
	Top    *Twips
	Bottom *Twips
	Start  *Twips
	End    *Twips
}

// TableProperties is the attribute set of a table (w:tblPr).
type TableProperties struct {
	Justification *string
	Indent        *Twips
	Width         *TableWidth
	Borders       *TableBorders
	CellMargins   *CellMargins
	Layout        *string
}

// DocDefaults is w:docDefaults, the lowest layer of every cascade.
type DocDefaults struct {
	RPr RunProperties
	PPr ParagraphProperties
}
