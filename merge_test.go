package glyphmesh

import (
	"errors"
	"testing"
)

func mustExtrude(t testing.TB, o Outline, depth float64, c Color) *Mesh {
	t.Helper()
	m, err := Extrude(o, depth, c)
	if err != nil {
		t.Fatalf("Extrude() error = %v", err)
	}
	return m
}

func TestMerge_RebasesIndices(t *testing.T) {
	meshes := []*Mesh{
		mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0)),
		mustExtrude(t, neck(), 0.4, RGB(0, 1, 0)),
		mustExtrude(t, regularPolygon(5, 0.3), 0.2, RGB(0, 0, 1)),
	}

	merged, err := Merge(meshes...)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	var wantVertices, wantIndices int
	for _, m := range meshes {
		wantVertices += m.VertexCount()
		wantIndices += len(m.Indices)
	}
	if merged.VertexCount() != wantVertices {
		t.Errorf("VertexCount() = %d, want %d", merged.VertexCount(), wantVertices)
	}
	if len(merged.Indices) != wantIndices {
		t.Errorf("len(Indices) = %d, want %d", len(merged.Indices), wantIndices)
	}

	vertexOffset, indexOffset := 0, 0
	for mi, m := range meshes {
		for i, idx := range m.Indices {
			got := merged.Indices[indexOffset+i]
			if int(got) != int(idx)+vertexOffset {
				t.Fatalf("mesh %d index %d = %d, want %d", mi, i, got, int(idx)+vertexOffset)
			}
		}
		for v := 0; v < m.VertexCount(); v++ {
			if merged.Position(vertexOffset+v) != m.Position(v) ||
				merged.Normal(vertexOffset+v) != m.Normal(v) ||
				merged.Color(vertexOffset+v) != m.Color(v) {
				t.Fatalf("mesh %d vertex %d not copied verbatim", mi, v)
			}
		}
		vertexOffset += m.VertexCount()
		indexOffset += len(m.Indices)
	}

	if err := merged.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	a := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	b := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	before := b.Clone()

	if _, err := Merge(a, b); err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	for i := range b.Indices {
		if b.Indices[i] != before.Indices[i] {
			t.Fatal("Merge() modified the indices of an input mesh")
		}
	}
}

func TestMerge_EmptyAndNil(t *testing.T) {
	m, err := Merge()
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if !m.IsEmpty() || len(m.Indices) != 0 {
		t.Errorf("Merge() of nothing = %d vertices, %d indices, want empty", m.VertexCount(), len(m.Indices))
	}

	sq := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	m, err = Merge(nil, sq, nil)
	if err != nil {
		t.Fatalf("Merge(nil, sq, nil) error = %v", err)
	}
	if m.VertexCount() != sq.VertexCount() || m.Indices[0] != sq.Indices[0] {
		t.Error("nil entries should be skipped without shifting indices")
	}
}

func TestMerge_IndexOverflow(t *testing.T) {
	// 32768 vertices each; two fit exactly, three do not.
	big := &Mesh{
		Positions: make([]float32, 3*MaxVertices/2),
		Normals:   make([]float32, 3*MaxVertices/2),
		Colors:    make([]float32, 3*MaxVertices/2),
		Indices:   []uint16{0, 1, MaxVertices/2 - 1},
	}

	m, err := Merge(big, big)
	if err != nil {
		t.Fatalf("Merge() of %d vertices error = %v", MaxVertices, err)
	}
	if last := m.Indices[len(m.Indices)-1]; last != MaxVertices-1 {
		t.Errorf("last index = %d, want %d", last, MaxVertices-1)
	}

	if _, err := Merge(big, big, big); !errors.Is(err, ErrIndexOverflow) {
		t.Errorf("Merge() of %d vertices error = %v, want ErrIndexOverflow", 3*MaxVertices/2, err)
	}
}

func TestMerge_MalformedInput(t *testing.T) {
	bad := &Mesh{
		Positions: []float32{0, 0, 0},
		Normals:   []float32{0, 0, 1},
		Colors:    []float32{1, 1, 1},
		Indices:   []uint16{0, 0, 1},
	}
	if _, err := Merge(bad); !errors.Is(err, ErrMalformedMesh) {
		t.Errorf("Merge() error = %v, want ErrMalformedMesh", err)
	}
}

func BenchmarkMerge(b *testing.B) {
	parts := make([]*Mesh, 16)
	for i := range parts {
		parts[i] = mustExtrude(b, regularPolygon(32, 1), 0.4, RGB(1, 1, 1))
	}
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Merge(parts...)
	}
}
