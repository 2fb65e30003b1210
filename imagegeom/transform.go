package imagegeom

import (
	"errors"
	"fmt"

	"docxview/css"
)

// ErrGeometryDegenerate is returned when insets leave no visible width or
// height, no transform could be derived and image is shown without crop
// scaling.
var ErrGeometryDegenerate = errors.New("degenerate crop geometry")

// ScaleTransform is translate-then-scale composition. Translations are in
// percent of the box.
type ScaleTransform struct {
	ScaleX     float64
	ScaleY     float64
	TranslateX float64
	TranslateY float64
}

// Identity transform.
var Identity = ScaleTransform{ScaleX: 1, ScaleY: 1}

// IsIdentity reports whether transform leaves content in place.
func (t ScaleTransform) IsIdentity() bool {
	return t.ScaleX == 1 && t.ScaleY == 1 && t.TranslateX == 0 && t.TranslateY == 0
}

// String returns CSS transform value
// "translate(<x>%, <y>%) scale(<sx>, <sy>)".
func (t ScaleTransform) String() string {
	return "translate(" + css.FormatNumber(t.TranslateX) + "%, " + css.FormatNumber(t.TranslateY) + "%) " +
		"scale(" + css.FormatNumber(t.ScaleX) + ", " + css.FormatNumber(t.ScaleY) + ")"
}

// DeriveScaleTransform computes transform which makes the visible window
// of the clip fill the box: every axis is scaled by the ratio of full to
// visible size and shifted so the window's top-left corner lands on the
// box's top-left corner.
func DeriveScaleTransform(clip ClipSpec) (ScaleTransform, error) {
	if !clip.valid() {
		return ScaleTransform{}, fmt.Errorf("%w: negative or non-finite inset %s", ErrGeometryDegenerate, clip)
	}
	visibleW := 100 - clip.Left - clip.Right
	visibleH := 100 - clip.Top - clip.Bottom
	if visibleW <= 0 || visibleH <= 0 {
		return ScaleTransform{}, fmt.Errorf("%w: visible area %s%% x %s%%", ErrGeometryDegenerate,
			css.FormatNumber(visibleW), css.FormatNumber(visibleH))
	}

	sx := 100 / visibleW
	sy := 100 / visibleH
	return ScaleTransform{
		ScaleX:     sx,
		ScaleY:     sy,
		TranslateX: -clip.Left * sx,
		TranslateY: -clip.Top * sy,
	}, nil
}
