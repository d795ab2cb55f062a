package glyphmesh

import "fmt"

// Merge concatenates meshes into one, so a whole composition can be drawn
// with a single indexed draw call.
//
// Vertex attributes are copied verbatim in input order. The indices of the
// i-th mesh are re-based by the total vertex count of the meshes before it.
// Nil meshes are skipped; merging nothing yields an empty mesh.
//
// Merge returns ErrIndexOverflow rather than wrapping indices when the
// combined vertex count exceeds MaxVertices, and ErrMalformedMesh when an
// input fails [Mesh.Validate].
func Merge(meshes ...*Mesh) (*Mesh, error) {
	var nv, ni int
	for i, m := range meshes {
		if m == nil {
			continue
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("merge input %d: %w", i, err)
		}
		nv += m.VertexCount()
		ni += len(m.Indices)
	}
	if nv > MaxVertices {
		return nil, fmt.Errorf("%w: merged mesh has %d vertices (max %d)", ErrIndexOverflow, nv, MaxVertices)
	}

	out := NewMesh(nv, ni)
	offset := 0
	for _, m := range meshes {
		if m == nil {
			continue
		}
		out.Positions = append(out.Positions, m.Positions...)
		out.Normals = append(out.Normals, m.Normals...)
		out.Colors = append(out.Colors, m.Colors...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, uint16(int(idx)+offset)) //nolint:gosec // bounded by MaxVertices
		}
		offset += m.VertexCount()
	}

	Logger().Debug("merged meshes",
		"inputs", len(meshes),
		"vertices", out.VertexCount(),
		"triangles", out.TriangleCount())

	return out, nil
}
