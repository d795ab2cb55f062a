package glyphmesh

import "fmt"

// Translate returns a copy of m moved by (dx, dy) in the xy plane.
// z, normals, colors and indices are unchanged; m is not modified.
//
// This is a one-time layout step applied before merging; per-frame motion
// belongs in the renderer's model matrix.
func Translate(m *Mesh, dx, dy float32) *Mesh {
	out := m.Clone()
	translateVertices(out.Positions, 0, out.VertexCount(), dx, dy)
	return out
}

// TranslateRange returns a copy of m with only the vertices
// [first, first+count) moved by (dx, dy). This places one sub-mesh of an
// already merged mesh.
func TranslateRange(m *Mesh, first, count int, dx, dy float32) (*Mesh, error) {
	if first < 0 || count < 0 || first+count > m.VertexCount() {
		return nil, fmt.Errorf("%w: [%d, %d) of %d vertices", ErrVertexRange, first, first+count, m.VertexCount())
	}
	out := m.Clone()
	translateVertices(out.Positions, first, first+count, dx, dy)
	return out, nil
}

func translateVertices(pos []float32, start, end int, dx, dy float32) {
	for i := start * 3; i < end*3; i += 3 {
		pos[i] += dx
		pos[i+1] += dy
	}
}
