// Package catalog holds named glyph outlines for extrusion.
//
// A Catalog is built once, validated, and never changes afterwards. Every
// outline in it is guaranteed to have at least 3 points, wind
// counter-clockwise, and be star-convex from its mean point, so the
// centroid fan used by glyphmesh.Extrude produces correct caps.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/glyphmesh"
)

// Catalog errors.
var (
	// ErrUnknownOutline is returned when looking up a name the catalog does not hold.
	ErrUnknownOutline = errors.New("catalog: unknown outline")

	// ErrWinding is returned for outlines that do not wind counter-clockwise.
	ErrWinding = errors.New("catalog: outline is not counter-clockwise")

	// ErrNotStarConvex is returned for outlines whose centroid fan would
	// overlap or leave gaps.
	ErrNotStarConvex = errors.New("catalog: outline is not star-convex from its centroid")

	// ErrEmptyName is returned for outlines registered under an empty name.
	ErrEmptyName = errors.New("catalog: empty outline name")
)

// Catalog is an immutable set of named outlines.
// It is safe for concurrent use.
type Catalog struct {
	outlines map[string]glyphmesh.Outline
	names    []string
}

// New validates entries and returns a catalog holding copies of them.
// Entries are checked in name order so the first reported error is stable.
func New(entries map[string]glyphmesh.Outline) (*Catalog, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	c := &Catalog{
		outlines: make(map[string]glyphmesh.Outline, len(entries)),
		names:    names,
	}
	for _, name := range names {
		o := entries[name]
		if err := Check(name, o); err != nil {
			return nil, err
		}
		c.outlines[name] = o.Clone()
	}
	return c, nil
}

// MustNew is like New but panics on invalid entries.
// It is intended for outlines written as literals in source.
func MustNew(entries map[string]glyphmesh.Outline) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Check reports whether o may be extruded with centroid fan caps.
func Check(name string, o glyphmesh.Outline) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(o) < 3 {
		return fmt.Errorf("catalog: outline %q: %w: got %d", name, glyphmesh.ErrInvalidOutline, len(o))
	}
	a := o.Analyze()
	if a.Winding != 1 {
		return fmt.Errorf("%w: %q has signed area %g", ErrWinding, name, o.SignedArea())
	}
	if !a.StarConvex {
		return fmt.Errorf("%w: %q", ErrNotStarConvex, name)
	}
	return nil
}

// Outline returns a copy of the named outline.
func (c *Catalog) Outline(name string) (glyphmesh.Outline, error) {
	o, ok := c.outlines[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOutline, name)
	}
	return o.Clone(), nil
}

// Has reports whether the catalog holds the named outline.
func (c *Catalog) Has(name string) bool {
	_, ok := c.outlines[name]
	return ok
}

// Names returns the outline names in sorted order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of outlines.
func (c *Catalog) Len() int {
	return len(c.names)
}
