package glyphmesh

import "errors"

// Mesh generation errors.
var (
	// ErrInvalidOutline is returned when an outline has fewer than 3 points.
	ErrInvalidOutline = errors.New("glyphmesh: outline needs at least 3 points")

	// ErrInvalidDepth is returned when an extrusion depth is not positive.
	ErrInvalidDepth = errors.New("glyphmesh: extrusion depth must be positive")

	// ErrIndexOverflow is returned when a mesh would need more vertices
	// than a 16-bit index buffer can address.
	ErrIndexOverflow = errors.New("glyphmesh: vertex count exceeds 16-bit index range")

	// ErrMalformedMesh is returned when a mesh's parallel buffers disagree
	// or an index points past the last vertex.
	ErrMalformedMesh = errors.New("glyphmesh: malformed mesh")

	// ErrVertexRange is returned when a vertex span lies outside a mesh.
	ErrVertexRange = errors.New("glyphmesh: vertex range out of bounds")
)
