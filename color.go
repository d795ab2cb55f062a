package glyphmesh

import "golang.org/x/image/math/f32"

// Color is a linear RGB triple. Channels are nominally in [0,1] but are
// never clamped here: values above 1 reach the renderer unchanged, and any
// clamping happens in the shading stage.
type Color = f32.Vec3

// Shade factors applied per facet orientation. They fake distinct
// brightness for caps and walls independently of scene lighting.
const (
	// FrontShade scales the front cap color.
	FrontShade float32 = 1.0

	// BackShade scales the back cap color.
	BackShade float32 = 0.9

	// SideShade scales the side wall color.
	SideShade float32 = 0.92
)

// RGB is a convenience function to create a Color.
func RGB(r, g, b float32) Color {
	return Color{r, g, b}
}

// Shade returns c with every channel multiplied by k.
func Shade(c Color, k float32) Color {
	return Color{c[0] * k, c[1] * k, c[2] * k}
}
