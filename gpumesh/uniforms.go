// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"encoding/binary"
	"math"

	"golang.org/x/image/math/f32"
)

// UniformSize is the byte size of the Uniforms block in lit.wgsl.
// Layout (WGSL uniform address space):
//
//	model      mat4x4<f32>  offset   0
//	view       mat4x4<f32>  offset  64
//	proj       mat4x4<f32>  offset 128
//	normal_mat mat3x3<f32>  offset 192 (three 16-byte columns)
//	light_dir  vec3<f32>    offset 240
//	ambient    vec3<f32>    offset 256
//	eye        vec3<f32>    offset 272
//
// The struct is rounded up to its 16-byte alignment.
const UniformSize = 288

// Lighting holds the scene light.
type Lighting struct {
	// LightDir points from the surface towards the light. The shader
	// normalizes it.
	LightDir f32.Vec3

	// Ambient is added to the diffuse term before modulating vertex color.
	Ambient f32.Vec3
}

// DefaultLighting returns a key light from the upper right front with a
// slightly blue ambient.
func DefaultLighting() Lighting {
	return Lighting{
		LightDir: f32.Vec3{0.5, 0.8, 1.0},
		Ambient:  f32.Vec3{0.2, 0.2, 0.25},
	}
}

// Uniforms is the per-frame constant block of the lit shader.
// Matrices are row-major (f32.Mat4 element (r, c) is m[4*r+c]) and act on
// column vectors; UniformBytes transposes them to WGSL column order.
type Uniforms struct {
	Model      f32.Mat4
	View       f32.Mat4
	Projection f32.Mat4
	Normal     f32.Mat3
	Eye        f32.Vec3
	Lighting
}

// UniformBytes packs u into UniformSize little-endian bytes.
func UniformBytes(u Uniforms) []byte {
	buf := make([]byte, UniformSize)
	putMat4(buf[0:], u.Model)
	putMat4(buf[64:], u.View)
	putMat4(buf[128:], u.Projection)
	putMat3(buf[192:], u.Normal)
	putVec3(buf[240:], u.LightDir)
	putVec3(buf[256:], u.Ambient)
	putVec3(buf[272:], u.Eye)
	return buf
}

func putFloat(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}

func putMat4(buf []byte, m f32.Mat4) {
	off := 0
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			putFloat(buf[off:], m[4*r+c])
			off += 4
		}
	}
}

// putMat3 writes m as three vec3 columns, each padded to 16 bytes.
func putMat3(buf []byte, m f32.Mat3) {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			putFloat(buf[c*16+r*4:], m[3*r+c])
		}
	}
}

func putVec3(buf []byte, v f32.Vec3) {
	putFloat(buf[0:], v[0])
	putFloat(buf[4:], v[1])
	putFloat(buf[8:], v[2])
}
