package render

import (
	"slices"
	"strings"

	"github.com/maruel/natural"

	"docxview/common"
	"docxview/css"
	"docxview/docx"
	"docxview/encode"
	"docxview/locator"
	"docxview/ooxml"
	"docxview/resolve"
)

// Rule is a single stylesheet rule.
type Rule struct {
	Selector string
	// StyleID is the document style rule was generated from, empty for base
	// rules.
	StyleID string
	Decls   css.Declarations
}

func (r Rule) String() string {
	var b strings.Builder
	b.WriteString(r.Selector)
	b.WriteString(" {\n")
	for _, k := range r.Decls.Keys() {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(r.Decls[k])
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// baseRules do not depend on document.
func baseRules() []Rule {
	return []Rule{
		{
			Selector: "p, h1, h2, h3, h4, h5, h6",
			Decls:    css.Declarations{"white-space": "pre-wrap", "margin": "0"},
		},
		{
			Selector: "." + TableClass + " td",
			Decls: css.Declarations{
				"padding": "var(--docx-cell-padding-top, 0) var(--docx-cell-padding-right, 5.4pt) " +
					"var(--docx-cell-padding-bottom, 0) var(--docx-cell-padding-left, 5.4pt)",
				"border-top":     "var(--docx-inside-h, none)",
				"border-left":    "var(--docx-inside-v, none)",
				"vertical-align": "top",
			},
		},
		{
			Selector: "." + locator.ClassName(common.NodeKindBlockFragment),
			Decls:    css.Declarations{"position": "relative"},
		},
		{
			Selector: "." + locator.ClassName(common.NodeKindInlineCropWrapper),
			Decls:    css.Declarations{"display": "inline-block", "vertical-align": "baseline"},
		},
	}
}

// Rules returns base rules followed by one rule per named paragraph,
// character and table style of doc. Style rules are ordered by class name
// in natural order, so "Heading 2" comes before "Heading 10". When several
// styles produce the same class only the first in that order is kept.
func (r *Renderer) Rules(doc *docx.Document) []Rule {
	ss := doc.Styles
	if ss == nil {
		ss = ooxml.NewStyleSheet(ooxml.DocDefaults{})
	}
	fc := r.FormatContext(doc)

	var styled []Rule
	for _, id := range ss.IDs() {
		s, _ := ss.Get(id)
		class := encode.StyleClass(styleName(s))
		if class == "" {
			continue
		}
		chain, _ := ss.Chain(id)

		var decls css.Declarations
		switch s.Type {
		case ooxml.StyleParagraph:
			pp := resolve.ResolveParagraphProperties(ooxml.ParagraphProperties{}, chain, ss.Defaults)
			decls = encode.EncodeCSSFromRPr(resolve.ResolveRunProperties(ooxml.RunProperties{}, chain, ooxml.RunProperties{}, ss.Defaults), fc)
			decls.Merge(encode.EncodeCSSFromPPr(pp, true, nil))
		case ooxml.StyleCharacter:
			decls = encode.EncodeCSSFromRPr(resolve.ResolveRunProperties(ooxml.RunProperties{}, chain, ooxml.RunProperties{}, ooxml.DocDefaults{}), fc)
		case ooxml.StyleTable:
			decls = encode.EncodeCSSFromTblPr(resolve.ResolveTableProperties(ooxml.TableProperties{}, chain))
		default:
			continue
		}
		styled = append(styled, Rule{Selector: "." + class, StyleID: id, Decls: decls})
	}

	slices.SortStableFunc(styled, func(a, b Rule) int {
		switch {
		case natural.Less(a.Selector, b.Selector):
			return -1
		case natural.Less(b.Selector, a.Selector):
			return 1
		}
		return 0
	})
	styled = slices.CompactFunc(styled, func(a, b Rule) bool {
		return a.Selector == b.Selector
	})
	return append(baseRules(), styled...)
}

// StyleSheetCSS returns stylesheet text for doc.
func (r *Renderer) StyleSheetCSS(doc *docx.Document) string {
	var b strings.Builder
	for i, rule := range r.Rules(doc) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(rule.String())
	}
	return b.String()
}
