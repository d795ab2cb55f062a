package glyphmesh

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// MaxVertices is the number of vertices a 16-bit index buffer can address.
const MaxVertices = 1 << 16

// Mesh is an indexed triangle mesh in structure-of-arrays layout, ready for
// upload as separate GPU vertex buffers.
//
// Positions, Normals and Colors each hold one float32 triple per vertex, in
// the same vertex order. Indices holds one triple per counter-clockwise
// triangle.
type Mesh struct {
	Positions []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals   []float32 // [nx0,ny0,nz0, ...]
	Colors    []float32 // [r0,g0,b0, ...]
	Indices   []uint16  // [i0,i1,i2, ...] triangles
}

// NewMesh returns an empty mesh with room for the given number of vertices
// and indices.
func NewMesh(vertexCap, indexCap int) *Mesh {
	return &Mesh{
		Positions: make([]float32, 0, vertexCap*3),
		Normals:   make([]float32, 0, vertexCap*3),
		Colors:    make([]float32, 0, vertexCap*3),
		Indices:   make([]uint16, 0, indexCap),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) f32.Vec3 {
	return f32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) f32.Vec3 {
	return f32.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
}

// Color returns the color of vertex i.
func (m *Mesh) Color(i int) Color {
	return Color{m.Colors[i*3], m.Colors[i*3+1], m.Colors[i*3+2]}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Positions: append([]float32(nil), m.Positions...),
		Normals:   append([]float32(nil), m.Normals...),
		Colors:    append([]float32(nil), m.Colors...),
		Indices:   append([]uint16(nil), m.Indices...),
	}
}

// Validate checks the mesh invariants: parallel buffers of equal length in
// whole triples, whole index triples, at most MaxVertices vertices, and every
// index naming an existing vertex.
func (m *Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("%w: %d position floats is not a multiple of 3", ErrMalformedMesh, len(m.Positions))
	}
	if len(m.Normals) != len(m.Positions) {
		return fmt.Errorf("%w: %d normal floats for %d position floats", ErrMalformedMesh, len(m.Normals), len(m.Positions))
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("%w: %d color floats for %d position floats", ErrMalformedMesh, len(m.Colors), len(m.Positions))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrMalformedMesh, len(m.Indices))
	}
	nv := m.VertexCount()
	if nv > MaxVertices {
		return fmt.Errorf("%w: %d vertices (max %d)", ErrIndexOverflow, nv, MaxVertices)
	}
	for i, idx := range m.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("%w: index %d at %d exceeds vertex count %d", ErrMalformedMesh, idx, i, nv)
		}
	}
	return nil
}

// addVertex appends one vertex and returns its index.
// Callers check the vertex budget before building.
func (m *Mesh) addVertex(pos, norm f32.Vec3, clr Color) int {
	i := m.VertexCount()
	m.Positions = append(m.Positions, pos[0], pos[1], pos[2])
	m.Normals = append(m.Normals, norm[0], norm[1], norm[2])
	m.Colors = append(m.Colors, clr[0], clr[1], clr[2])
	return i
}

// addTriangle appends one triangle.
func (m *Mesh) addTriangle(a, b, c int) {
	m.Indices = append(m.Indices, uint16(a), uint16(b), uint16(c)) //nolint:gosec // bounded by MaxVertices
}
