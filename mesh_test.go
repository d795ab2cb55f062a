package glyphmesh

import (
	"errors"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestMesh_Validate(t *testing.T) {
	valid := func() *Mesh {
		return &Mesh{
			Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
			Normals:   []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
			Colors:    []float32{1, 0, 0, 1, 0, 0, 1, 0, 0},
			Indices:   []uint16{0, 1, 2},
		}
	}

	tests := []struct {
		name   string
		mutate func(m *Mesh)
		want   error
	}{
		{"valid", func(*Mesh) {}, nil},
		{"empty", func(m *Mesh) { *m = Mesh{} }, nil},
		{"ragged positions", func(m *Mesh) { m.Positions = m.Positions[:8] }, ErrMalformedMesh},
		{"short normals", func(m *Mesh) { m.Normals = m.Normals[:6] }, ErrMalformedMesh},
		{"long colors", func(m *Mesh) { m.Colors = append(m.Colors, 1, 1, 1) }, ErrMalformedMesh},
		{"partial triangle", func(m *Mesh) { m.Indices = m.Indices[:2] }, ErrMalformedMesh},
		{"index out of range", func(m *Mesh) { m.Indices[2] = 3 }, ErrMalformedMesh},
		{"too many vertices", func(m *Mesh) {
			n := (MaxVertices + 1) * 3
			m.Positions = make([]float32, n)
			m.Normals = make([]float32, n)
			m.Colors = make([]float32, n)
		}, ErrIndexOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := valid()
			tt.mutate(m)
			err := m.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMesh_Accessors(t *testing.T) {
	m := NewMesh(2, 3)
	a := m.addVertex(f32.Vec3{1, 2, 3}, f32.Vec3{0, 0, 1}, RGB(0.5, 0.25, 1))
	b := m.addVertex(f32.Vec3{4, 5, 6}, f32.Vec3{1, 0, 0}, RGB(0, 0, 0))
	m.addTriangle(a, b, a)

	if a != 0 || b != 1 {
		t.Errorf("addVertex indices = %d, %d, want 0, 1", a, b)
	}
	if m.VertexCount() != 2 || m.TriangleCount() != 1 {
		t.Errorf("counts = %d vertices, %d triangles, want 2, 1", m.VertexCount(), m.TriangleCount())
	}
	if got := m.Position(1); got != (f32.Vec3{4, 5, 6}) {
		t.Errorf("Position(1) = %v", got)
	}
	if got := m.Normal(1); got != (f32.Vec3{1, 0, 0}) {
		t.Errorf("Normal(1) = %v", got)
	}
	if got := m.Color(0); got != RGB(0.5, 0.25, 1) {
		t.Errorf("Color(0) = %v", got)
	}
	if m.IsEmpty() || !NewMesh(0, 0).IsEmpty() {
		t.Error("IsEmpty() mismatch")
	}
}

func TestMesh_CloneIsDeep(t *testing.T) {
	m := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	c := m.Clone()
	c.Positions[0] = 42
	c.Normals[0] = 42
	c.Colors[0] = 42
	c.Indices[0] = 7
	if m.Positions[0] == 42 || m.Normals[0] == 42 || m.Colors[0] == 42 || m.Indices[0] == 7 {
		t.Error("Clone() shares storage with the original")
	}
}

func TestMesh_Bounds(t *testing.T) {
	m := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	m = Translate(m, 2, -1)

	bb := m.Bounds()
	if bb.Min != (f32.Vec3{1.5, -1.5, -0.5}) || bb.Max != (f32.Vec3{2.5, -0.5, 0.5}) {
		t.Errorf("Bounds() = %v..%v", bb.Min, bb.Max)
	}
	if got := bb.Size(); got != (f32.Vec3{1, 1, 1}) {
		t.Errorf("Size() = %v, want (1,1,1)", got)
	}
	if got := bb.Center(); got != (f32.Vec3{2, -1, 0}) {
		t.Errorf("Center() = %v, want (2,-1,0)", got)
	}

	empty := (&Mesh{}).Bounds()
	if !empty.IsEmpty() {
		t.Error("Bounds() of an empty mesh should be empty")
	}
	if empty.Size() != (f32.Vec3{}) || empty.Center() != (f32.Vec3{}) {
		t.Error("empty box should report zero size and center")
	}
}
