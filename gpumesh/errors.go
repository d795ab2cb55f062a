// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import "errors"

// Upload and draw errors.
var (
	// ErrNilProvider is returned when Upload is given no device provider.
	ErrNilProvider = errors.New("gpumesh: nil device provider")

	// ErrNoHALProvider is returned when the provider does not expose a
	// hal.Device and hal.Queue.
	ErrNoHALProvider = errors.New("gpumesh: provider does not expose HAL types")

	// ErrEmptyMesh is returned when uploading a mesh with no triangles.
	ErrEmptyMesh = errors.New("gpumesh: mesh has no triangles")

	// ErrNotAttached is returned when drawing buffers that have no bind
	// group from Pipeline.Attach.
	ErrNotAttached = errors.New("gpumesh: buffers not attached to pipeline")

	// ErrDestroyed is returned when using released buffers or pipelines.
	ErrDestroyed = errors.New("gpumesh: resource destroyed")
)
