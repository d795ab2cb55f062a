// Package camera provides the orbit camera used to view glyph meshes.
//
// Matrices are f32.Mat4 values in row-major order acting on column vectors:
// element (r, c) is m[4*r+c] and a point p is transformed as M*p. Use
// ColumnMajor to obtain the order WGSL and most GPU APIs expect.
package camera

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Orbit camera defaults.
const (
	DefaultZoom = -4.5
	MinZoom     = -10
	MaxZoom     = -2

	// DragSpeed is the rotation in radians per dragged pixel.
	DragSpeed = 0.01

	// WheelSpeed is the zoom change per wheel delta unit.
	WheelSpeed = 0.002

	// AutoRotateSpeed is the idle yaw in radians per millisecond.
	AutoRotateSpeed = 0.0005

	FovY = 45 * math.Pi / 180
	Near = 0.1
	Far  = 100
)

// Orbit rotates the scene in front of a fixed camera looking down -z.
// The zero value is not useful; use NewOrbit.
type Orbit struct {
	// RotX and RotY are pitch and yaw in radians.
	RotX, RotY float32

	// Zoom is the camera z translation, kept in [MinZoom, MaxZoom].
	Zoom float32

	// AutoRotate adds a slow yaw proportional to the frame time.
	AutoRotate bool
}

// NewOrbit returns an orbit at the default zoom with auto-rotation on.
func NewOrbit() *Orbit {
	return &Orbit{Zoom: DefaultZoom, AutoRotate: true}
}

// Drag rotates by a pointer movement in pixels: horizontal motion yaws,
// vertical motion pitches.
func (o *Orbit) Drag(dx, dy float32) {
	o.RotY += dx * DragSpeed
	o.RotX += dy * DragSpeed
}

// Wheel zooms by a scroll delta. Positive deltas move the camera away.
func (o *Orbit) Wheel(delta float32) {
	o.Zoom = clamp(o.Zoom+delta*WheelSpeed, MinZoom, MaxZoom)
}

// Reset restores rotation and zoom. AutoRotate is left as is.
func (o *Orbit) Reset() {
	o.RotX, o.RotY = 0, 0
	o.Zoom = DefaultZoom
}

// Yaw returns the model yaw at time ms (milliseconds since start).
func (o *Orbit) Yaw(ms float64) float32 {
	if !o.AutoRotate {
		return o.RotY
	}
	spin := math.Mod(ms*AutoRotateSpeed, 2*math.Pi)
	return o.RotY + float32(spin)
}

// Model returns RotateX(RotX) * RotateY(Yaw(ms)).
func (o *Orbit) Model(ms float64) f32.Mat4 {
	return Mul(RotateX(o.RotX), RotateY(o.Yaw(ms)))
}

// View moves the scene Zoom units along z.
func (o *Orbit) View() f32.Mat4 {
	return Translate(0, 0, o.Zoom)
}

// Eye returns the camera position in model space, ignoring rotation.
func (o *Orbit) Eye() f32.Vec3 {
	return f32.Vec3{0, 0, -o.Zoom}
}

// Projection returns the default perspective for the given aspect ratio.
func (o *Orbit) Projection(aspect float32) f32.Mat4 {
	return Perspective(FovY, aspect, Near, Far)
}

func clamp(v, lo, hi float32) float32 {
	return math32.Min(hi, math32.Max(lo, v))
}
