package scene

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/glyphmesh"
	"github.com/gogpu/glyphmesh/catalog"
)

// Glyph places one letterform in the composition.
type Glyph struct {
	// Name labels the glyph in logs and errors.
	Name string

	// Parts are catalog outline names, extruded and merged in order.
	Parts []string

	// Depth is the extrusion depth shared by all parts.
	Depth float64

	// Color is the base (front face) color.
	Color glyphmesh.Color

	// Offset moves the glyph in the xy plane after its parts are merged.
	Offset f32.Vec2
}

// Layout is an ordered list of glyphs. Glyphs are merged in this order, so
// their vertex ranges in the final mesh follow it as well.
type Layout []Glyph

// DefaultLayout returns the "IZ3" composition: three letters side by side,
// each 0.4 deep, in amber, mint and violet.
func DefaultLayout() Layout {
	return NewLayoutBuilder().
		Depth(0.4).
		Color(glyphmesh.RGB(1.0, 0.7, 0.28)).
		Glyph("I", f32.Vec2{-1.2, 0}, catalog.ITop, catalog.IBot).
		Color(glyphmesh.RGB(0.2, 0.9, 0.6)).
		Glyph("Z", f32.Vec2{-0.1, 0}, catalog.ZTop, catalog.ZDiag, catalog.ZBot).
		Color(glyphmesh.RGB(0.4, 0.3, 1.0)).
		Glyph("3", f32.Vec2{1.1, 0}, catalog.ThreeTop, catalog.ThreeMid, catalog.ThreeBot).
		Build()
}

// LayoutBuilder provides a fluent API for composing layouts.
// Depth and Color set the values used by subsequent Glyph calls.
//
// Example:
//
//	layout := NewLayoutBuilder().
//	    Depth(0.3).
//	    Color(glyphmesh.RGB(1, 0, 0)).
//	    Glyph("Z", f32.Vec2{0, 0}, catalog.ZTop, catalog.ZDiag, catalog.ZBot).
//	    Build()
type LayoutBuilder struct {
	layout Layout
	depth  float64
	color  glyphmesh.Color
}

// NewLayoutBuilder creates a builder with depth 0.4 and white color.
func NewLayoutBuilder() *LayoutBuilder {
	return &LayoutBuilder{
		depth: 0.4,
		color: glyphmesh.RGB(1, 1, 1),
	}
}

// Depth sets the extrusion depth for following glyphs.
func (b *LayoutBuilder) Depth(d float64) *LayoutBuilder {
	b.depth = d
	return b
}

// Color sets the base color for following glyphs.
func (b *LayoutBuilder) Color(c glyphmesh.Color) *LayoutBuilder {
	b.color = c
	return b
}

// Glyph appends a glyph built from parts at offset.
func (b *LayoutBuilder) Glyph(name string, offset f32.Vec2, parts ...string) *LayoutBuilder {
	b.layout = append(b.layout, Glyph{
		Name:   name,
		Parts:  append([]string(nil), parts...),
		Depth:  b.depth,
		Color:  b.color,
		Offset: offset,
	})
	return b
}

// Build returns the layout composed so far. The builder can keep appending
// without affecting the returned layout.
func (b *LayoutBuilder) Build() Layout {
	out := make(Layout, len(b.layout))
	copy(out, b.layout)
	return out
}
