// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphmesh"
)

// Buffers holds the GPU copy of one mesh: three vertex buffers, an index
// buffer and the uniform buffer of the lit shader.
//
// Buffers are owned by the caller and must be released with Destroy.
type Buffers struct {
	Positions hal.Buffer
	Normals   hal.Buffer
	Colors    hal.Buffer
	Indices   hal.Buffer
	Uniforms  hal.Buffer

	VertexCount int
	IndexCount  uint32

	device    hal.Device
	queue     hal.Queue
	bindGroup hal.BindGroup
	owner     *Pipeline // pipeline that created bindGroup
}

// Upload packs m and writes it to new buffers on the provider's device.
//
// The provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue, as gogpu's device provider does.
func Upload(provider gpucontext.DeviceProvider, m *glyphmesh.Mesh) (*Buffers, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	device, queue, err := halFromProvider(provider)
	if err != nil {
		return nil, err
	}
	return UploadHAL(device, queue, m)
}

// UploadHAL is like Upload for callers that already hold HAL objects.
func UploadHAL(device hal.Device, queue hal.Queue, m *glyphmesh.Mesh) (*Buffers, error) {
	if device == nil || queue == nil {
		return nil, ErrNoHALProvider
	}
	packed, err := Pack(m)
	if err != nil {
		return nil, err
	}
	if packed.IndexCount == 0 {
		return nil, ErrEmptyMesh
	}

	b := &Buffers{
		VertexCount: packed.VertexCount,
		IndexCount:  packed.IndexCount,
		device:      device,
		queue:       queue,
	}

	vertexUsage := gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	uploads := []struct {
		dst   *hal.Buffer
		label string
		data  []byte
		usage gputypes.BufferUsage
	}{
		{&b.Positions, "glyph_positions", packed.Positions, vertexUsage},
		{&b.Normals, "glyph_normals", packed.Normals, vertexUsage},
		{&b.Colors, "glyph_colors", packed.Colors, vertexUsage},
		{&b.Indices, "glyph_indices", packed.Indices, gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst},
		{&b.Uniforms, "glyph_uniforms", UniformBytes(Uniforms{Lighting: DefaultLighting()}),
			gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst},
	}
	for _, u := range uploads {
		buf, err := createAndUploadBuffer(device, queue, u.label, u.data, u.usage)
		if err != nil {
			b.Destroy()
			return nil, fmt.Errorf("gpumesh: upload: %w", err)
		}
		*u.dst = buf
	}

	glyphmesh.Logger().Info("uploaded mesh buffers",
		"vertices", b.VertexCount,
		"indices", b.IndexCount,
		"bytes", len(packed.Positions)*3+len(packed.Indices))

	return b, nil
}

// WriteUniforms replaces the uniform block used by the next draw.
func (b *Buffers) WriteUniforms(u Uniforms) error {
	if b.device == nil || b.Uniforms == nil {
		return ErrDestroyed
	}
	b.queue.WriteBuffer(b.Uniforms, 0, UniformBytes(u))
	return nil
}

// Destroy releases all buffers. Safe to call multiple times.
func (b *Buffers) Destroy() {
	if b.device == nil {
		return
	}
	b.detach()
	for _, buf := range []*hal.Buffer{&b.Positions, &b.Normals, &b.Colors, &b.Indices, &b.Uniforms} {
		if *buf != nil {
			b.device.DestroyBuffer(*buf)
			*buf = nil
		}
	}
	b.device = nil
	b.queue = nil
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
// detach releases the bind group on the device of the pipeline that
// created it.
func (b *Buffers) detach() {
	if b.bindGroup != nil && b.owner != nil {
		b.owner.device.DestroyBindGroup(b.bindGroup)
	}
	b.bindGroup = nil
	b.owner = nil
}

func createAndUploadBuffer(device hal.Device, queue hal.Queue, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// halFromProvider extracts HAL objects from a gogpu device provider.
func halFromProvider(provider any) (hal.Device, hal.Queue, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALProvider)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALProvider)
	}
	return device, queue, nil
}
