// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpumesh moves glyph meshes onto the GPU.
//
// It is the boundary between the CPU-side mesh generator and a WebGPU
// renderer built on gogpu/wgpu:
//
//   - Pack converts a [glyphmesh.Mesh] to little-endian byte slices.
//   - VertexLayouts describes the three non-interleaved vertex buffers.
//   - Upload creates and fills HAL buffers from a [gpucontext.DeviceProvider].
//   - Pipeline owns the lit render pipeline and records the indexed draw.
//   - Uniforms packs the camera matrices and lighting constants.
//
// Basic usage:
//
//	bufs, err := gpumesh.Upload(provider, mesh)
//	if err != nil {
//	    return err
//	}
//	defer bufs.Destroy()
//
//	bufs.WriteUniforms(gpumesh.Uniforms{...})
//	pipe.Draw(pass, bufs)
package gpumesh
