// Package scene assembles catalog outlines into a single extruded mesh.
//
// Each glyph of a Layout is built from one or more catalog parts: every part
// is extruded with the glyph's depth and color, the parts are merged, the
// result is moved to the glyph's offset, and finally all glyphs are merged
// into one mesh ready for a single indexed draw call.
package scene

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphmesh"
	"github.com/gogpu/glyphmesh/catalog"
)

// Assembly errors.
var (
	// ErrNilCatalog is returned when Assemble is given no catalog.
	ErrNilCatalog = errors.New("scene: nil catalog")

	// ErrEmptyGlyph is returned for a glyph with no parts.
	ErrEmptyGlyph = errors.New("scene: glyph has no parts")
)

// Span locates one glyph inside an assembled mesh.
type Span struct {
	Name        string
	FirstVertex int
	VertexCount int
	FirstIndex  int
	IndexCount  int
	Bounds      glyphmesh.Box3
}

// Result is an assembled scene with per-glyph spans.
type Result struct {
	Mesh  *glyphmesh.Mesh
	Spans []Span
}

// Assemble builds the merged mesh for layout.
func Assemble(cat *catalog.Catalog, layout Layout, opts ...Option) (*glyphmesh.Mesh, error) {
	r, err := Build(cat, layout, opts...)
	if err != nil {
		return nil, err
	}
	return r.Mesh, nil
}

// Build is like Assemble but also reports where each glyph ended up in the
// merged mesh.
func Build(cat *catalog.Catalog, layout Layout, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log()

	if cat == nil {
		return nil, ErrNilCatalog
	}

	glyphs := make([]*glyphmesh.Mesh, 0, len(layout))
	spans := make([]Span, 0, len(layout))
	var firstVertex, firstIndex int
	for _, g := range layout {
		m, err := buildGlyph(cat, g, o.cache)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, m)
		spans = append(spans, Span{
			Name:        g.Name,
			FirstVertex: firstVertex,
			VertexCount: m.VertexCount(),
			FirstIndex:  firstIndex,
			IndexCount:  len(m.Indices),
			Bounds:      m.Bounds(),
		})
		firstVertex += m.VertexCount()
		firstIndex += len(m.Indices)

		log.Debug("built glyph",
			"glyph", g.Name,
			"parts", len(g.Parts),
			"vertices", m.VertexCount(),
			"triangles", m.TriangleCount())
	}

	mesh, err := glyphmesh.Merge(glyphs...)
	if err != nil {
		return nil, fmt.Errorf("scene: merge %d glyphs: %w", len(glyphs), err)
	}

	st := Stats(mesh)
	log.Info("scene assembled",
		"glyphs", len(layout),
		"vertices", st.Vertices,
		"triangles", st.Triangles)
	if o.cache != nil {
		cs := o.cache.Stats()
		log.Debug("part cache", "len", cs.Len, "hits", cs.Hits, "misses", cs.Misses)
	}

	return &Result{Mesh: mesh, Spans: spans}, nil
}

// BuildGlyph extrudes and merges the parts of g and moves the result to
// g.Offset.
func BuildGlyph(cat *catalog.Catalog, g Glyph) (*glyphmesh.Mesh, error) {
	return buildGlyph(cat, g, nil)
}

func buildGlyph(cat *catalog.Catalog, g Glyph, cache *PartCache) (*glyphmesh.Mesh, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if len(g.Parts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyGlyph, g.Name)
	}

	parts := make([]*glyphmesh.Mesh, 0, len(g.Parts))
	for _, name := range g.Parts {
		extrude := func() (*glyphmesh.Mesh, error) {
			o, err := cat.Outline(name)
			if err != nil {
				return nil, err
			}
			return glyphmesh.Extrude(o, g.Depth, g.Color)
		}

		var m *glyphmesh.Mesh
		var err error
		if cache != nil {
			m, err = cache.getOrCreate(partKey{cat: cat, name: name, depth: g.Depth, color: g.Color}, extrude)
		} else {
			m, err = extrude()
		}
		if err != nil {
			return nil, fmt.Errorf("scene: glyph %q part %q: %w", g.Name, name, err)
		}
		parts = append(parts, m)
	}

	m, err := glyphmesh.Merge(parts...)
	if err != nil {
		return nil, fmt.Errorf("scene: glyph %q: %w", g.Name, err)
	}
	return glyphmesh.Translate(m, g.Offset[0], g.Offset[1]), nil
}
