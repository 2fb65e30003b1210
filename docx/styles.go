package docx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"docxview/ooxml"
)

const svgMIME = "image/svg+xml"

func readXML(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
	}
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, errors.New("no root element")
	}
	return doc, nil
}

// parseStyles reads word/styles.xml.
func parseStyles(data []byte) (*ooxml.StyleSheet, error) {
	doc, err := readXML(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse styles: %w", err)
	}
	root := doc.Root()

	var defaults ooxml.DocDefaults
	if dd := root.SelectElement("w:docDefaults"); dd != nil {
		if r := dd.SelectElement("w:rPrDefault"); r != nil {
			defaults.RPr = parseRPr(r.SelectElement("w:rPr"))
		}
		if p := dd.SelectElement("w:pPrDefault"); p != nil {
			defaults.PPr = parsePPr(p.SelectElement("w:pPr"))
		}
	}

	ss := ooxml.NewStyleSheet(defaults)
	for _, el := range root.SelectElements("w:style") {
		s := &ooxml.Style{
			Type:  ooxml.StyleType(el.SelectAttrValue("w:type", string(ooxml.StyleParagraph))),
			ID:    el.SelectAttrValue("w:styleId", ""),
			PPr:   parsePPr(el.SelectElement("w:pPr")),
			RPr:   parseRPr(el.SelectElement("w:rPr")),
			TblPr: parseTblPr(el.SelectElement("w:tblPr")),
		}
		s.Name, _ = val(el, "w:name")
		s.BasedOn, _ = val(el, "w:basedOn")
		if v, ok := attr(el, "w:default"); ok {
			s.Default = ooxml.ParseOnOff(v)
		}
		ss.Add(s)
	}
	return ss, nil
}

// parseTheme reads color and font schemes of word/theme/theme1.xml.
func parseTheme(data []byte) (*ooxml.Theme, error) {
	doc, err := readXML(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse theme: %w", err)
	}
	root := doc.Root()

	th := &ooxml.Theme{
		Name:   root.SelectAttrValue("name", ""),
		Colors: make(map[string]string),
	}
	elements := root.SelectElement("a:themeElements")
	if elements == nil {
		return th, nil
	}

	if scheme := elements.SelectElement("a:clrScheme"); scheme != nil {
		for _, slot := range scheme.ChildElements() {
			switch {
			case slot.SelectElement("a:srgbClr") != nil:
				th.Colors[slot.Tag] = slot.SelectElement("a:srgbClr").SelectAttrValue("val", "")
			case slot.SelectElement("a:sysClr") != nil:
				th.Colors[slot.Tag] = slot.SelectElement("a:sysClr").SelectAttrValue("lastClr", "")
			}
		}
	}
	if fonts := elements.SelectElement("a:fontScheme"); fonts != nil {
		if latin := fonts.FindElement("./a:majorFont/a:latin"); latin != nil {
			th.MajorFont = latin.SelectAttrValue("typeface", "")
		}
		if latin := fonts.FindElement("./a:minorFont/a:latin"); latin != nil {
			th.MinorFont = latin.SelectAttrValue("typeface", "")
		}
	}
	return th, nil
}

// parseCore reads title and creator of docProps/core.xml.
func parseCore(data []byte, d *Document) error {
	doc, err := readXML(data)
	if err != nil {
		return fmt.Errorf("unable to parse core properties: %w", err)
	}
	if el := doc.Root().SelectElement("dc:title"); el != nil {
		d.Title = strings.TrimSpace(el.Text())
	}
	if el := doc.Root().SelectElement("dc:creator"); el != nil {
		d.Creator = strings.TrimSpace(el.Text())
	}
	return nil
}
