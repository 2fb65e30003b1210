package locator

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"docxview/css"
)

// Locate returns the node matched by the first selector alternative that
// matches anything under root (document order within an alternative). It
// returns nil when nothing matches or selector is invalid.
func Locate(root *html.Node, selector string) *html.Node {
	if root == nil {
		return nil
	}
	alts, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	for _, sel := range alts {
		if n := cascadia.Query(root, sel); n != nil {
			return n
		}
	}
	return nil
}

// LocateAll returns every node under root matching any alternative of
// selector, in document order. A position may have several nodes of one
// kind when an image is split into fragments.
func LocateAll(root *html.Node, selector string) []*html.Node {
	if root == nil {
		return nil
	}
	alts, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	return cascadia.QueryAll(root, alts)
}

// NodeStyle edits inline style attribute of an HTML element.
type NodeStyle struct {
	node   *html.Node
	parser *css.Parser
}

// HTMLStyle returns style setter for node, so ApplyClip and encoders could
// write to located nodes.
func HTMLStyle(node *html.Node) *NodeStyle {
	return &NodeStyle{node: node, parser: css.NewParser(nil)}
}

// Declarations returns current inline style of the node.
func (s *NodeStyle) Declarations() css.Declarations {
	if s == nil || s.node == nil {
		return css.Declarations{}
	}
	for _, a := range s.node.Attr {
		if a.Key == "style" {
			return s.parser.ParseDeclarations(a.Val)
		}
	}
	return css.Declarations{}
}

// SetProperty implements css.StyleSetter. Setting on nil node does
// nothing.
func (s *NodeStyle) SetProperty(name, value string) {
	if s == nil || s.node == nil {
		return
	}
	decls := s.Declarations()
	decls.SetProperty(name, value)
	s.setAttr("style", decls.String())
}

func (s *NodeStyle) setAttr(key, val string) {
	for i := range s.node.Attr {
		if s.node.Attr[i].Key == key {
			s.node.Attr[i].Val = val
			return
		}
	}
	s.node.Attr = append(s.node.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns attribute value of node.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
