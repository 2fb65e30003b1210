// Package locator builds selectors which re-acquire rendered image nodes
// by document position after the visual tree is rebuilt, and matches them
// against an HTML tree.
package locator

import (
	"strconv"
	"strings"

	"docxview/common"
)

// PositionAttr is the attribute carrying position key on rendered nodes.
const PositionAttr = "data-position"

// PositionKey identifies the document position a visual node came from.
// Keys are interpolated into selectors verbatim.
type PositionKey string

// IntKey returns key for numeric document position.
func IntKey(pos int) PositionKey {
	return PositionKey(strconv.Itoa(pos))
}

// EscapedKey returns key for identifier the caller already escaped for use
// inside a double-quoted attribute selector. Untrusted values must not be
// passed here as is.
func EscapedKey(s string) PositionKey {
	return PositionKey(s)
}

var kindClasses = map[common.NodeKind]string{
	common.NodeKindBlockFragment:     "layout-image-fragment",
	common.NodeKindInlineCropWrapper: "layout-inline-image-crop",
	common.NodeKindInlineImage:       "layout-inline-image",
}

// ClassName returns CSS class painter puts on nodes of kind.
func ClassName(kind common.NodeKind) string {
	return kindClasses[kind]
}

// KindOfClass maps class attribute value back to node kind.
func KindOfClass(class string) (common.NodeKind, bool) {
	for _, c := range strings.Fields(class) {
		for k, v := range kindClasses {
			if v == c {
				return k, true
			}
		}
	}
	return 0, false
}

// Selector returns compound selector for a single node kind at position.
func Selector(kind common.NodeKind, key PositionKey) string {
	return "." + ClassName(kind) + "[" + PositionAttr + `="` + string(key) + `"]`
}

func group(key PositionKey, kinds ...common.NodeKind) string {
	alts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		alts = append(alts, Selector(k, key))
	}
	return strings.Join(alts, ", ")
}

// BuildBlockImageSelector matches any image node at position: block
// fragment, inline crop wrapper or bare inline image, in that order.
func BuildBlockImageSelector(key PositionKey) string {
	return group(key, common.NodeKindBlockFragment, common.NodeKindInlineCropWrapper, common.NodeKindInlineImage)
}

// BuildInlineImageSelector matches inline image nodes at position. Crop
// wrapper comes first, it is the visible box of a cropped image and is the
// one selection outlines and resize handles should target.
func BuildInlineImageSelector(key PositionKey) string {
	return group(key, common.NodeKindInlineCropWrapper, common.NodeKindInlineImage)
}
