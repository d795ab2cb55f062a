// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/glyphmesh"
)

// Packed holds a mesh as GPU-ready little-endian bytes.
type Packed struct {
	Positions []byte
	Normals   []byte
	Colors    []byte

	// Indices are uint16 values padded with zeros to a multiple of 4 bytes,
	// as required for buffer writes.
	Indices []byte

	VertexCount int
	IndexCount  uint32
}

// Pack validates m and converts it to byte slices for buffer upload.
func Pack(m *glyphmesh.Mesh) (*Packed, error) {
	if m == nil {
		return nil, fmt.Errorf("gpumesh: pack: %w: nil mesh", glyphmesh.ErrMalformedMesh)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("gpumesh: pack: %w", err)
	}

	return &Packed{
		Positions:   packFloats(m.Positions),
		Normals:     packFloats(m.Normals),
		Colors:      packFloats(m.Colors),
		Indices:     packIndices(m.Indices),
		VertexCount: m.VertexCount(),
		IndexCount:  uint32(len(m.Indices)), //nolint:gosec // bounded by slice length
	}, nil
}

func packFloats(vals []float32) []byte {
	data := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	return data
}

func packIndices(indices []uint16) []byte {
	size := len(indices) * 2
	data := make([]byte, alignUp4(size))
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}

func alignUp4(n int) int {
	return (n + 3) &^ 3
}
