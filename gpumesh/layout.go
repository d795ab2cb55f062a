// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import "github.com/gogpu/gputypes"

// Shader locations of the vertex attributes in lit.wgsl.
const (
	LocationPosition = 0
	LocationNormal   = 1
	LocationColor    = 2
)

// attributeStride is the byte stride of every vertex buffer: 3 x float32.
const attributeStride = 12

// IndexFormat is the index buffer format of every glyph mesh.
const IndexFormat = gputypes.IndexFormatUint16

// VertexLayouts returns one buffer layout per attribute. Buffer slots follow
// shader locations: slot 0 positions, slot 1 normals, slot 2 colors.
func VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		attributeLayout(LocationPosition),
		attributeLayout(LocationNormal),
		attributeLayout(LocationColor),
	}
}

func attributeLayout(location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: attributeStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: location},
		},
	}
}
