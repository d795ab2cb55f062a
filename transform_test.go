package glyphmesh

import (
	"errors"
	"testing"
)

func TestTranslate(t *testing.T) {
	m := mustExtrude(t, neck(), 0.4, RGB(1, 0.7, 0.28))
	moved := Translate(m, -1.2, 0.5)

	for i := 0; i < m.VertexCount(); i++ {
		p, q := m.Position(i), moved.Position(i)
		if q[0] != p[0]+float32(-1.2) || q[1] != p[1]+float32(0.5) || q[2] != p[2] {
			t.Fatalf("vertex %d: %v moved to %v", i, p, q)
		}
		if moved.Normal(i) != m.Normal(i) || moved.Color(i) != m.Color(i) {
			t.Fatalf("vertex %d attributes changed by Translate", i)
		}
	}
	for i := range m.Indices {
		if moved.Indices[i] != m.Indices[i] {
			t.Fatalf("index %d changed by Translate", i)
		}
	}

	// The input is left untouched.
	orig := mustExtrude(t, neck(), 0.4, RGB(1, 0.7, 0.28))
	for i := range m.Positions {
		if m.Positions[i] != orig.Positions[i] {
			t.Fatal("Translate() modified its input")
		}
	}
}

// Translating a part before merging is the same as translating its vertex
// range after merging.
func TestTranslate_CommutesWithMerge(t *testing.T) {
	a := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	b := mustExtrude(t, neck(), 0.4, RGB(0, 1, 0))
	c := mustExtrude(t, regularPolygon(5, 0.3), 0.2, RGB(0, 0, 1))
	const dx, dy = float32(1.1), float32(-0.3)

	before, err := Merge(a, Translate(b, dx, dy), c)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	merged, err := Merge(a, b, c)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	after, err := TranslateRange(merged, a.VertexCount(), b.VertexCount(), dx, dy)
	if err != nil {
		t.Fatalf("TranslateRange() error = %v", err)
	}

	for i := range before.Positions {
		if before.Positions[i] != after.Positions[i] {
			t.Fatalf("position float %d: %v != %v", i, before.Positions[i], after.Positions[i])
		}
	}
	for i := range before.Indices {
		if before.Indices[i] != after.Indices[i] {
			t.Fatalf("index %d: %d != %d", i, before.Indices[i], after.Indices[i])
		}
	}
}

func TestTranslateRange_Errors(t *testing.T) {
	m := mustExtrude(t, unitSquare(), 1, RGB(1, 0, 0))
	tests := []struct {
		name         string
		first, count int
	}{
		{"negative first", -1, 2},
		{"negative count", 0, -1},
		{"past end", m.VertexCount() - 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := TranslateRange(m, tt.first, tt.count, 1, 1); !errors.Is(err, ErrVertexRange) {
				t.Errorf("TranslateRange(%d, %d) error = %v, want ErrVertexRange", tt.first, tt.count, err)
			}
		})
	}

	if _, err := TranslateRange(m, m.VertexCount(), 0, 1, 1); err != nil {
		t.Errorf("empty range at end error = %v", err)
	}
}
