// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpumesh

import (
	"strings"
	"testing"
)

func TestShaderSource(t *testing.T) {
	if ShaderSource == "" {
		t.Fatal("lit shader source is empty")
	}
	for _, want := range []string{
		"fn vs_main", "fn fs_main",
		"@location(0) position", "@location(1) normal", "@location(2) color",
		"@group(0) @binding(0) var<uniform>",
	} {
		if !strings.Contains(ShaderSource, want) {
			t.Errorf("shader source missing %q", want)
		}
	}
}

// skipIfUnsupported skips the test when naga reports a missing feature.
func skipIfUnsupported(t *testing.T, err error) {
	t.Helper()
	errStr := err.Error()
	if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
		t.Skipf("Skipping: naga feature not yet implemented: %v", err)
	}
}

func TestCompileShader(t *testing.T) {
	code, err := CompileShader()
	if err != nil {
		skipIfUnsupported(t, err)
		t.Fatalf("CompileShader() error = %v", err)
	}
	if len(code) == 0 {
		t.Fatal("SPIR-V output is empty")
	}

	// SPIR-V magic number
	if code[0] != 0x07230203 {
		t.Errorf("SPIR-V magic = %#x, want 0x07230203", code[0])
	}
}

func TestLitSPIRV_MatchesCompileShader(t *testing.T) {
	want, err := CompileShader()
	if err != nil {
		skipIfUnsupported(t, err)
		t.Fatalf("CompileShader() error = %v", err)
	}
	got, err := litSPIRV()
	if err != nil {
		t.Fatalf("litSPIRV() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("litSPIRV() = %d words, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("litSPIRV()[%d] = %#x, want %#x", i, got[i], want[i])
		}
	}
}
