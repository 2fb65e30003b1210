// Package imagegeom turns crop specifications of embedded images into the
// clip region and compensating translate/scale transform a renderer needs
// to show only the visible window, unscaled and pinned to the top-left
// corner of its box.
package imagegeom

import (
	"math"

	"docxview/css"
)

// ClipSpec holds insets of the visible window from the four edges of the
// image natural box, in percent of the box.
type ClipSpec struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// IsZero reports whether clip removes nothing.
func (c ClipSpec) IsZero() bool {
	return c == ClipSpec{}
}

func (c ClipSpec) valid() bool {
	for _, v := range [...]float64{c.Top, c.Right, c.Bottom, c.Left} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// String returns clip in "inset(<top>% <right>% <bottom>% <left>%)" form,
// the same form ResolveClipSpec accepts.
func (c ClipSpec) String() string {
	return "inset(" +
		css.FormatNumber(c.Top) + "% " +
		css.FormatNumber(c.Right) + "% " +
		css.FormatNumber(c.Bottom) + "% " +
		css.FormatNumber(c.Left) + "%)"
}

// ResolveClipSpec interprets raw as clip specification. Accepted are
// strings in inset() form, ClipSpec and *ClipSpec values. Anything else,
// as well as empty, malformed or negative specifications, yields false.
func ResolveClipSpec(raw any) (ClipSpec, bool) {
	var c ClipSpec
	switch v := raw.(type) {
	case string:
		var ok bool
		if c, ok = parseInset(v); !ok {
			return ClipSpec{}, false
		}
	case ClipSpec:
		c = v
	case *ClipSpec:
		if v == nil {
			return ClipSpec{}, false
		}
		c = *v
	default:
		return ClipSpec{}, false
	}
	if !c.valid() {
		return ClipSpec{}, false
	}
	return c, true
}

func parseInset(s string) (ClipSpec, bool) {
	name, args, ok := css.ParseFunction(s)
	if !ok || name != "inset" || len(args) != 4 {
		return ClipSpec{}, false
	}
	var v [4]float64
	for i, a := range args {
		switch {
		case a.IsPercent():
			v[i] = a.Value
		case a.Unit == "" && a.Keyword == "" && a.Value == 0 && a.IsNumeric():
			// unitless zero is a valid length
			v[i] = 0
		default:
			return ClipSpec{}, false
		}
	}
	return ClipSpec{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}, true
}

// FromSrcRect converts DrawingML a:srcRect attributes (thousandths of a
// percent, l/t/r/b) to clip. Negative values extend the picture beyond
// its box and are treated as no crop.
func FromSrcRect(l, t, r, b int) ClipSpec {
	conv := func(v int) float64 {
		if v <= 0 {
			return 0
		}
		return float64(v) / 1000
	}
	return ClipSpec{Top: conv(t), Right: conv(r), Bottom: conv(b), Left: conv(l)}
}
