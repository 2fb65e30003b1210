package imagegeom

import "docxview/css"

// ApplyClip writes crop declarations to node: clip-path with the inset
// rectangle and, when clip scales content, top-left transform origin and
// the transform itself. Container, when given, is set to hide overflow of
// the scaled content. With nil clip nothing is touched.
//
// Degenerate clips keep clip-path only. ApplyClip does not hold on to
// node or container.
func ApplyClip(node css.StyleSetter, clip *ClipSpec, container css.StyleSetter) {
	if clip == nil || node == nil {
		return
	}

	node.SetProperty("clip-path", clip.String())
	if tr, err := DeriveScaleTransform(*clip); err == nil && !tr.IsIdentity() {
		node.SetProperty("transform-origin", "0 0")
		node.SetProperty("transform", tr.String())
	}

	if container != nil {
		container.SetProperty("overflow", "hidden")
	}
}
