package render

import (
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"docxview/docx"
)

// ToHTML converts rendered nodes to HTML nodes. Attributes are emitted in
// sorted order and style declarations sorted by property, so equal trees
// serialize identically.
func ToHTML(nodes []*Node) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toHTML(n))
	}
	return out
}

func toHTML(n *Node) *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	h := element(n.Tag)
	if len(n.Class) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "class", Val: strings.Join(n.Class, " ")})
	}
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		h.Attr = append(h.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	if len(n.Style) > 0 {
		h.Attr = append(h.Attr, html.Attribute{Key: "style", Val: n.Style.String()})
	}
	for _, c := range n.Children {
		h.AppendChild(toHTML(c))
	}
	return h
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

// Page builds complete HTML document with stylesheet of doc in its head.
func (r *Renderer) Page(doc *docx.Document, out *Output, title string) *html.Node {
	root := element("html")
	if lang := doc.Language(); lang != "" {
		root.Attr = append(root.Attr, html.Attribute{Key: "lang", Val: lang})
	}

	head := element("head")
	meta := element("meta")
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head.AppendChild(meta)
	t := element("title")
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(t)
	style := element("style")
	style.AppendChild(&html.Node{Type: html.TextNode, Data: r.StyleSheetCSS(doc)})
	head.AppendChild(style)
	root.AppendChild(head)

	body := element("body")
	for _, n := range ToHTML(out.Nodes) {
		body.AppendChild(n)
	}
	root.AppendChild(body)

	page := &html.Node{Type: html.DocumentNode}
	page.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	page.AppendChild(root)
	return page
}

// WriteHTML renders doc and writes complete HTML page to w.
func (r *Renderer) WriteHTML(w io.Writer, doc *docx.Document, title string) (*Output, error) {
	out := r.Render(doc)
	if err := html.Render(w, r.Page(doc, out, title)); err != nil {
		return nil, err
	}
	return out, nil
}
