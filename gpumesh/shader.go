// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

// ShaderSource is the WGSL source of the lit glyph shader.
// Entry points are vs_main and fs_main.
//
//go:embed shaders/lit.wgsl
var ShaderSource string

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("gpumesh: compile lit shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// litSPIRV compiles ShaderSource once per process for NewPipeline.
var litSPIRV = sync.OnceValues(CompileShader)
