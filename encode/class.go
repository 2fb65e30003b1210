// Package encode projects resolved document properties into CSS
// declarations for the renderer and converts run properties to editor
// marks and back.
//
// Encoders are pure: the same properties and format context always give
// the same declarations.
package encode

import "github.com/gosimple/slug"

// StyleClassPrefix starts every class name generated for named styles.
const StyleClassPrefix = "docx-style-"

// StyleClass returns stable CSS class name for a named style, empty name
// has no class.
func StyleClass(name string) string {
	s := slug.Make(name)
	if s == "" {
		return ""
	}
	return StyleClassPrefix + s
}
