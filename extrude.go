package glyphmesh

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f32"
)

var (
	frontNormal = f32.Vec3{0, 0, 1}
	backNormal  = f32.Vec3{0, 0, -1}
)

// ExtrudedCounts returns the vertex and triangle counts Extrude produces for
// an outline of n points: two capped fans of n+1 vertices and n triangles
// each, plus a 4-vertex, 2-triangle quad per edge.
func ExtrudedCounts(n int) (vertices, triangles int) {
	return 2*(n+1) + 4*n, 2*n + 2*n
}

// Extrude turns a counter-clockwise outline into a closed solid of the given
// depth, centered on z = 0.
//
// Each mesh has three parts:
//   - Front cap at z = +depth/2, normal (0,0,1), colored base*FrontShade.
//   - Back cap at z = -depth/2, normal (0,0,-1), colored base*BackShade.
//   - One quad per outline edge with its own flat outward normal,
//     colored base*SideShade. Side vertices are not shared with the caps.
//
// Every triangle winds counter-clockwise seen from outside the solid.
//
// Caps are fan-triangulated from the outline's mean point, so the outline
// must be star-convex from that point for the caps to be correct. Extrude
// does not check this; see [Outline.Analyze].
func Extrude(outline Outline, depth float64, base Color) (*Mesh, error) {
	n := len(outline)
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOutline, n)
	}
	if !(depth > 0) || math.IsInf(depth, 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidDepth, depth)
	}
	nv, nt := ExtrudedCounts(n)
	if nv > MaxVertices {
		return nil, fmt.Errorf("%w: %d-point outline needs %d vertices (max %d)", ErrIndexOverflow, n, nv, MaxVertices)
	}

	m := NewMesh(nv, nt*3)
	half := float32(depth / 2)
	c := outline.Centroid()
	apex := [2]float32{float32(c.X), float32(c.Y)}

	// Front cap, counter-clockwise seen from +z.
	addCap(m, outline, apex, half, frontNormal, Shade(base, FrontShade), false)

	// Back cap, winding reversed so it is counter-clockwise seen from -z.
	addCap(m, outline, apex, -half, backNormal, Shade(base, BackShade), true)

	side := Shade(base, SideShade)
	for i := 0; i < n; i++ {
		p1 := outline[i]
		p2 := outline[(i+1)%n]

		nrm := p2.Sub(p1).Perp().Normalize()
		norm := f32.Vec3{float32(nrm.X), float32(nrm.Y), 0}

		x1, y1 := float32(p1.X), float32(p1.Y)
		x2, y2 := float32(p2.X), float32(p2.Y)
		q := m.addVertex(f32.Vec3{x1, y1, half}, norm, side)
		m.addVertex(f32.Vec3{x2, y2, half}, norm, side)
		m.addVertex(f32.Vec3{x2, y2, -half}, norm, side)
		m.addVertex(f32.Vec3{x1, y1, -half}, norm, side)

		// (p1,+h) (p2,+h) (p2,-h) runs clockwise seen from outside a
		// counter-clockwise outline, so both triangles are reversed.
		m.addTriangle(q, q+2, q+1)
		m.addTriangle(q, q+3, q+2)
	}

	Logger().Debug("extruded outline",
		"points", n,
		"depth", depth,
		"vertices", m.VertexCount(),
		"triangles", m.TriangleCount(),
		"area", math.Abs(outline.SignedArea()))

	return m, nil
}

// addCap appends one outline ring plus the fan apex at height z and
// triangulates it as a fan. reverse flips every triangle's winding.
func addCap(m *Mesh, outline Outline, apex [2]float32, z float32, norm f32.Vec3, clr Color, reverse bool) {
	n := len(outline)
	base := m.VertexCount()
	for _, p := range outline {
		m.addVertex(f32.Vec3{float32(p.X), float32(p.Y), z}, norm, clr)
	}
	center := m.addVertex(f32.Vec3{apex[0], apex[1], z}, norm, clr)

	for i := 0; i < n; i++ {
		a := base + i
		b := base + (i+1)%n
		if reverse {
			m.addTriangle(b, a, center)
		} else {
			m.addTriangle(a, b, center)
		}
	}
}
