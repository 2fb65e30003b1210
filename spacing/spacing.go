// Package spacing projects paragraph spacing into CSS margins and line
// height, collapsing automatic spacing between paragraphs of the same
// level.
package spacing

import (
	"strconv"

	"docxview/common"
	"docxview/css"
	"docxview/ooxml"
)

// Adjacency describes paragraph neighbors as far as spacing cares.
type Adjacency struct {
	// HasPrevious is false for the first paragraph in a container, its
	// before spacing is always zero.
	HasPrevious bool
	// PreviousSameLevel is true when previous paragraph is known and shares
	// the level (see LevelKey).
	PreviousSameLevel bool
	// NextSameLevel is true when next paragraph exists and shares the level.
	NextSameLevel bool
}

// LevelKey identifies outline/list level of a paragraph. Paragraphs with
// equal keys are considered to be on the same level.
func LevelKey(p ooxml.ParagraphProperties) string {
	switch {
	case p.IsListItem():
		return "num:" + strconv.Itoa(p.Numbering.Level)
	case p.OutlineLevel != nil:
		return "outline:" + strconv.Itoa(*p.OutlineLevel)
	}
	return "body"
}

// SameLevel reports whether two paragraphs share outline/list level.
func SameLevel(a, b ooxml.ParagraphProperties) bool {
	return LevelKey(a) == LevelKey(b)
}

// GetSpacingStyle returns margin-top, margin-bottom and line-height
// declarations for paragraph spacing.
//
// Automatic spacing collapses to zero when the neighbor on that side is on
// the same level. List items keep their before spacing regardless of the
// previous paragraph unless contextual list suppression is set and the
// previous item is on the same level. Without neighbor (or with a
// different level) the explicit magnitude is used.
func GetSpacingStyle(sp ooxml.ParagraphSpacing, isListItem bool, adj Adjacency) css.Declarations {
	decls := make(css.Declarations, 3)

	before := magnitude(sp.Before)
	switch {
	case !adj.HasPrevious:
		before = 0
	case isTrue(sp.BeforeAuto) && adj.PreviousSameLevel && !isListItem:
		before = 0
	}

	after := magnitude(sp.After)
	if isTrue(sp.AfterAuto) && adj.NextSameLevel {
		after = 0
	}

	// contextual suppression applies only between list items of the same level
	if isListItem && isTrue(sp.SuppressForList) {
		if isTrue(sp.BeforeAuto) && adj.PreviousSameLevel {
			before = 0
		}
		if isTrue(sp.AfterAuto) && adj.NextSameLevel {
			after = 0
		}
	}

	decls["margin-top"] = css.Pt(before.Points())
	decls["margin-bottom"] = css.Pt(after.Points())

	if lh, ok := lineHeight(sp); ok {
		decls["line-height"] = lh
	}
	return decls
}

func lineHeight(sp ooxml.ParagraphSpacing) (string, bool) {
	if sp.Line == nil || *sp.Line <= 0 {
		return "", false
	}
	rule := common.LineRuleAuto
	if sp.LineRule != nil {
		rule = *sp.LineRule
	}
	switch rule {
	case common.LineRuleExact, common.LineRuleAtLeast:
		return css.Pt(sp.Line.Points()), true
	default:
		// proportional: 240 is single line
		return css.FormatNumber(float64(*sp.Line) / ooxml.LineUnit), true
	}
}

func magnitude(t *ooxml.Twips) ooxml.Twips {
	if t == nil || *t < 0 {
		return 0
	}
	return *t
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
