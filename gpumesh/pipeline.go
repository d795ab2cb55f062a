// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/glyphmesh"
)

// DepthFormat is the depth attachment format the pipeline is built for.
const DepthFormat = gputypes.TextureFormatDepth24PlusStencil8

// Pipeline renders uploaded glyph meshes with the lit shader.
// Depth testing and back-face culling are enabled; glyph meshes are wound
// counter-clockwise when seen from outside.
type Pipeline struct {
	device hal.Device
	format gputypes.TextureFormat

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipeline      hal.RenderPipeline
}

// NewPipeline creates the lit render pipeline for a color target of the
// given format.
func NewPipeline(device hal.Device, format gputypes.TextureFormat) (*Pipeline, error) {
	if device == nil {
		return nil, ErrNoHALProvider
	}
	p := &Pipeline{device: device, format: format}
	if err := p.createPipeline(); err != nil {
		p.Destroy()
		return nil, err
	}
	glyphmesh.Logger().Debug("created lit pipeline", "format", format)
	return p, nil
}

// Format returns the color target format.
func (p *Pipeline) Format() gputypes.TextureFormat {
	return p.format
}

func (p *Pipeline) createPipeline() error {
	spirv, err := litSPIRV()
	if err != nil {
		return err
	}
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glyph_lit_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("gpumesh: create lit shader module: %w", err)
	}
	p.shader = shader

	// One uniform buffer at group(0) binding(0), visible to both stages.
	uniformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("gpumesh: create uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "glyph_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("gpumesh: create pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "glyph_lit_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    VertexLayouts(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLess,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0x00,
			StencilWriteMask: 0x00,
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeBack,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("gpumesh: create lit pipeline: %w", err)
	}
	p.pipeline = pipeline

	return nil
}

// Attach creates the bind group that connects b's uniform buffer to this
// pipeline, replacing any bind group from an earlier Attach. The bind group
// is released by b.Destroy.
func (p *Pipeline) Attach(b *Buffers) error {
	if p.pipeline == nil {
		return ErrDestroyed
	}
	if b == nil || b.device == nil || b.Uniforms == nil {
		return ErrDestroyed
	}
	b.detach()

	bg, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "glyph_uniform_bind",
		Layout: p.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: b.Uniforms.NativeHandle(), Offset: 0, Size: UniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpumesh: create bind group: %w", err)
	}
	b.bindGroup = bg
	b.owner = p
	return nil
}

// Draw records one indexed draw of b into rp. b must have been attached to
// p; buffers attached to another pipeline return ErrNotAttached.
func (p *Pipeline) Draw(rp hal.RenderPassEncoder, b *Buffers) error {
	if p.pipeline == nil || b == nil || b.device == nil {
		return ErrDestroyed
	}
	if b.bindGroup == nil || b.owner != p {
		return ErrNotAttached
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, b.bindGroup, nil)
	rp.SetVertexBuffer(LocationPosition, b.Positions, 0)
	rp.SetVertexBuffer(LocationNormal, b.Normals, 0)
	rp.SetVertexBuffer(LocationColor, b.Colors, 0)
	rp.SetIndexBuffer(b.Indices, IndexFormat, 0)
	rp.DrawIndexed(b.IndexCount, 1, 0, 0, 0)
	return nil
}

// Destroy releases pipeline objects in reverse creation order.
// Safe to call multiple times.
func (p *Pipeline) Destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
