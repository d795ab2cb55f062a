// Package glyphmesh builds extruded 3D letterform meshes from 2D outlines.
//
// # Overview
//
// glyphmesh turns closed, counter-clockwise 2D outlines into watertight
// solids with flat per-face normals and per-vertex colors, and merges many
// such solids into one vertex/index buffer set that a GPU renderer can draw
// with a single indexed call.
//
// # Quick Start
//
//	import "github.com/gogpu/glyphmesh"
//
//	square := glyphmesh.Outline{
//	    glyphmesh.Pt(-0.5, -0.5), glyphmesh.Pt(0.5, -0.5),
//	    glyphmesh.Pt(0.5, 0.5), glyphmesh.Pt(-0.5, 0.5),
//	}
//	m, err := glyphmesh.Extrude(square, 1.0, glyphmesh.RGB(1, 0, 0))
//	if err != nil {
//	    return err
//	}
//	moved := glyphmesh.Translate(m, 2, 0)
//	both, err := glyphmesh.Merge(m, moved)
//
// # Mesh Layout
//
// A [Mesh] is structure-of-arrays: Positions, Normals and Colors are flat
// float32 slices with one triple per vertex, and Indices is a uint16 slice
// with one triple per counter-clockwise triangle. This matches the layout of
// separate GPU vertex buffers; see the gpumesh package for packing and
// upload.
//
// # Architecture
//
// The module is organized into:
//   - glyphmesh: Outline, Mesh, Extrude, Merge, Translate
//   - catalog: validated, immutable named outlines (built-in I, Z, 3)
//   - scene: layout of glyphs and the assembler producing the final mesh
//   - gpumesh: byte packing, vertex layouts, lit shader, GPU upload
//   - camera: orbit camera matrices for the host's render loop
//
// # Limitations
//
// Caps are fan-triangulated from the outline's mean point. Outlines must be
// star-convex from that point; concave and self-intersecting outlines are
// not supported. The catalog package rejects outlines that violate this.
//
// # Coordinate System
//
// Right-handed: x right, y up, z toward the viewer. Front caps face +z.
package glyphmesh
