// Package render walks a parsed document and produces a tree of visual
// nodes: resolved paragraph, run and table styles projected to CSS, image
// crops with their transforms, and position keys the locator finds nodes
// by.
package render

import (
	"slices"
	"strings"

	"docxview/css"
	"docxview/encode"
)

// Node is an element of rendered tree. Node with empty Tag is a text node.
type Node struct {
	Tag      string
	Class    []string
	Attrs    map[string]string
	Style    css.Declarations
	Text     string
	Marks    []encode.Mark
	Children []*Node
}

func newNode(tag string, class ...string) *Node {
	return &Node{Tag: tag, Class: class}
}

func textNode(s string) *Node {
	return &Node{Text: s}
}

// SetProperty implements css.StyleSetter.
func (n *Node) SetProperty(name, value string) {
	if n.Style == nil {
		n.Style = make(css.Declarations)
	}
	n.Style.SetProperty(name, value)
}

// SetAttr sets element attribute, empty value removes it.
func (n *Node) SetAttr(key, value string) {
	if value == "" {
		delete(n.Attrs, key)
		return
	}
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// Attr returns element attribute.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.Attrs[key]
	return v, ok
}

// HasClass reports whether class is set on node.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Class, class)
}

func (n *Node) append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk calls fn for node and its descendants in document order until fn
// returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// TextContent returns concatenated text of node subtree.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Tag == "" {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}
