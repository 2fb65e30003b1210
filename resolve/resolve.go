package resolve

import (
	"strings"

	"golang.org/x/text/language"

	"docxview/common"
	"docxview/ooxml"
)

// ResolveParagraphProperties computes effective paragraph properties:
// document defaults, then style chain from root to nearest, then direct
// formatting.
func ResolveParagraphProperties(direct ooxml.ParagraphProperties, chain ooxml.StyleChain, defaults ooxml.DocDefaults) ooxml.ParagraphProperties {
	result := defaults.PPr
	for i := len(chain) - 1; i >= 0; i-- {
		result = CombineParagraphProperties(result, chain[i].PPr)
	}
	result = CombineParagraphProperties(result, direct)
	return normalizeParagraph(result)
}

// ResolveRunProperties computes effective run properties: document defaults,
// paragraph mark run properties, style chain from root to nearest, then
// direct formatting.
//
// For runs the chain is usually the character style chain followed by the
// paragraph style chain (see ooxml.StyleChain.Concat).
func ResolveRunProperties(direct ooxml.RunProperties, chain ooxml.StyleChain, paragraphMark ooxml.RunProperties, defaults ooxml.DocDefaults) ooxml.RunProperties {
	result := CombineRunProperties(defaults.RPr, paragraphMark)
	for i := len(chain) - 1; i >= 0; i-- {
		result = CombineRunProperties(result, chain[i].RPr)
	}
	result = CombineRunProperties(result, direct)
	return normalizeRun(result)
}

// ResolveTableProperties computes effective table properties from table
// style chain and direct formatting. Document defaults have no table layer.
func ResolveTableProperties(direct ooxml.TableProperties, chain ooxml.StyleChain) ooxml.TableProperties {
	var result ooxml.TableProperties
	for i := len(chain) - 1; i >= 0; i-- {
		result = CombineTableProperties(result, chain[i].TblPr)
	}
	return CombineTableProperties(result, direct)
}

// normalizeRun replaces explicit "off" values with absent ones, so resolved
// properties have a single representation for every default.
func normalizeRun(r ooxml.RunProperties) ooxml.RunProperties {
	r.Bold = dropFalse(r.Bold)
	r.Italic = dropFalse(r.Italic)
	r.Strike = dropFalse(r.Strike)
	r.Caps = dropFalse(r.Caps)
	r.SmallCaps = dropFalse(r.SmallCaps)
	r.Underline = dropKeyword(r.Underline, "none")
	r.Highlight = dropKeyword(r.Highlight, "none")
	if r.Color != nil && r.Color.IsAuto() {
		r.Color = nil
	}
	if r.Font != nil && r.Font.Name == "" && r.Font.Theme == "" {
		r.Font = nil
	}
	if r.VertAlign != nil && *r.VertAlign == common.VertAlignBaseline {
		r.VertAlign = nil
	}
	if r.Lang != nil && *r.Lang == language.Und {
		r.Lang = nil
	}
	return r
}

func normalizeParagraph(p ooxml.ParagraphProperties) ooxml.ParagraphProperties {
	p.KeepNext = dropFalse(p.KeepNext)
	p.Justification = dropKeyword(p.Justification, "")
	p.Shading = dropKeyword(p.Shading, "auto")
	if p.Numbering != nil && !p.IsListItem() {
		p.Numbering = nil
	}
	if p.MarkRun != nil {
		mr := normalizeRun(*p.MarkRun)
		p.MarkRun = nil
		if !mr.IsEmpty() {
			p.MarkRun = &mr
		}
	}
	return p
}

func dropFalse(b *bool) *bool {
	if b != nil && !*b {
		return nil
	}
	return b
}

func dropKeyword(s *string, keyword string) *string {
	if s == nil {
		return nil
	}
	if v := strings.TrimSpace(*s); v == "" || strings.EqualFold(v, keyword) {
		return nil
	}
	return s
}
