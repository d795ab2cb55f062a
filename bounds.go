package glyphmesh

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max f32.Vec3
}

// EmptyBox3 returns an inverted box that any point expands.
func EmptyBox3() Box3 {
	inf := math32.Inf(1)
	return Box3{
		Min: f32.Vec3{inf, inf, inf},
		Max: f32.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// ExpandByPoint grows the box to include p.
func (b *Box3) ExpandByPoint(p f32.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math32.Min(b.Min[i], p[i])
		b.Max[i] = math32.Max(b.Max[i], p[i])
	}
}

// Size returns the box extent along each axis, zero for an empty box.
func (b Box3) Size() f32.Vec3 {
	if b.IsEmpty() {
		return f32.Vec3{}
	}
	return f32.Vec3{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Center returns the box midpoint, zero for an empty box.
func (b Box3) Center() f32.Vec3 {
	if b.IsEmpty() {
		return f32.Vec3{}
	}
	return f32.Vec3{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Bounds returns the bounding box of all vertex positions.
// An empty mesh has an empty box.
func (m *Mesh) Bounds() Box3 {
	return m.RangeBounds(0, m.VertexCount())
}

// RangeBounds returns the bounding box of vertices [start, end).
func (m *Mesh) RangeBounds(start, end int) Box3 {
	bb := EmptyBox3()
	for i := start; i < end; i++ {
		bb.ExpandByPoint(m.Position(i))
	}
	return bb
}
