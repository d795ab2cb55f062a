package scene

import (
	"fmt"

	"github.com/gogpu/glyphmesh"
)

// MeshStats summarizes an assembled mesh.
type MeshStats struct {
	Vertices  int
	Triangles int
	Indices   int
	Bounds    glyphmesh.Box3
}

// Stats reports the size and extent of m.
func Stats(m *glyphmesh.Mesh) MeshStats {
	if m == nil {
		return MeshStats{Bounds: glyphmesh.EmptyBox3()}
	}
	return MeshStats{
		Vertices:  m.VertexCount(),
		Triangles: m.TriangleCount(),
		Indices:   len(m.Indices),
		Bounds:    m.Bounds(),
	}
}

// String implements fmt.Stringer.
func (s MeshStats) String() string {
	if s.Bounds.IsEmpty() {
		return fmt.Sprintf("%d vertices, %d triangles, empty", s.Vertices, s.Triangles)
	}
	return fmt.Sprintf("%d vertices, %d triangles, bounds [%.3g %.3g %.3g]..[%.3g %.3g %.3g]",
		s.Vertices, s.Triangles,
		s.Bounds.Min[0], s.Bounds.Min[1], s.Bounds.Min[2],
		s.Bounds.Max[0], s.Bounds.Max[1], s.Bounds.Max[2])
}
