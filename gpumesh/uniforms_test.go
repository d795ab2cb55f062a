// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"encoding/binary"
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func floatAt(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestUniformBytes_Layout(t *testing.T) {
	var model f32.Mat4
	model[4*0+1] = 5 // row 0, column 1
	model[4*3+2] = 9 // row 3, column 2

	var normal f32.Mat3
	normal[3*2+1] = 7 // row 2, column 1

	u := Uniforms{
		Model:    model,
		Normal:   normal,
		Eye:      f32.Vec3{0, 0, 4.5},
		Lighting: DefaultLighting(),
	}
	buf := UniformBytes(u)
	if len(buf) != UniformSize {
		t.Fatalf("len = %d, want %d", len(buf), UniformSize)
	}

	tests := []struct {
		name string
		off  int
		want float32
	}{
		{"model col 1 row 0", 16, 5},
		{"model col 2 row 3", 2*16 + 12, 9},
		{"model col 0 row 1", 4, 0},
		{"normal col 1 row 2", 192 + 16 + 8, 7},
		{"normal col 0 pad", 192 + 12, 0},
		{"light x", 240, 0.5},
		{"light z", 248, 1.0},
		{"ambient z", 264, 0.25},
		{"eye z", 280, 4.5},
		{"tail pad", 284, 0},
	}
	for _, tt := range tests {
		if got := floatAt(buf, tt.off); got != tt.want {
			t.Errorf("%s: float at %d = %v, want %v", tt.name, tt.off, got, tt.want)
		}
	}
}

func TestUniformBytes_Identity(t *testing.T) {
	id := f32.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	buf := UniformBytes(Uniforms{View: id})

	// The identity is its own transpose, so both orders agree.
	for i := 0; i < 16; i++ {
		if got := floatAt(buf, 64+i*4); got != id[i] {
			t.Fatalf("view float %d = %v, want %v", i, got, id[i])
		}
	}
}

func TestDefaultLighting(t *testing.T) {
	l := DefaultLighting()
	if l.LightDir != (f32.Vec3{0.5, 0.8, 1.0}) {
		t.Errorf("LightDir = %v", l.LightDir)
	}
	if l.Ambient != (f32.Vec3{0.2, 0.2, 0.25}) {
		t.Errorf("Ambient = %v", l.Ambient)
	}
}
