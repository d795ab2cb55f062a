// Command glyphdemo builds the "IZ3" glyph scene and reports on it.
//
// It assembles the default layout, packs it for the GPU and, with -gpu,
// uploads it to a no-op HAL device and records the lit pipeline setup. This
// exercises the full path a renderer takes without needing a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/glyphmesh"
	"github.com/gogpu/glyphmesh/camera"
	"github.com/gogpu/glyphmesh/catalog"
	"github.com/gogpu/glyphmesh/gpumesh"
	"github.com/gogpu/glyphmesh/scene"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "debug logging")
		layout  = flag.Bool("layout", false, "print per-glyph vertex ranges")
		compile = flag.Bool("compile", false, "compile the lit shader to SPIR-V")
		gpu     = flag.Bool("gpu", false, "upload to a no-op HAL device")
		frame   = flag.Float64("frame", 0, "frame time in ms for the printed camera state")
		aspect  = flag.Float64("aspect", 16.0/9.0, "viewport aspect ratio")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glyphmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	res, err := scene.Build(catalog.Default(), scene.DefaultLayout())
	if err != nil {
		log.Fatalf("Failed to assemble scene: %v", err)
	}
	fmt.Println(scene.Stats(res.Mesh))

	if *layout {
		for _, s := range res.Spans {
			c := s.Bounds.Center()
			fmt.Printf("  %-2s vertices [%d, %d)  indices [%d, %d)  center (%.2f, %.2f)\n",
				s.Name, s.FirstVertex, s.FirstVertex+s.VertexCount,
				s.FirstIndex, s.FirstIndex+s.IndexCount, c[0], c[1])
		}
	}

	packed, err := gpumesh.Pack(res.Mesh)
	if err != nil {
		log.Fatalf("Failed to pack mesh: %v", err)
	}
	fmt.Printf("packed: %d bytes per attribute, %d index bytes\n", len(packed.Positions), len(packed.Indices))

	orbit := camera.NewOrbit()
	model := orbit.Model(*frame)
	uniforms := gpumesh.Uniforms{
		Model:      model,
		View:       orbit.View(),
		Projection: orbit.Projection(float32(*aspect)),
		Normal:     camera.NormalMatrix(model),
		Eye:        orbit.Eye(),
		Lighting:   gpumesh.DefaultLighting(),
	}
	fmt.Printf("camera: yaw %.3f rad, zoom %.1f\n", orbit.Yaw(*frame), orbit.Zoom)

	if *compile {
		code, err := gpumesh.CompileShader()
		if err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
		fmt.Printf("shader: %d SPIR-V words\n", len(code))
	}

	if *gpu {
		if err := uploadNoop(res.Mesh, uniforms); err != nil {
			log.Fatalf("GPU upload failed: %v", err)
		}
	}
}

// uploadNoop runs the upload and pipeline path against the no-op backend.
func uploadNoop(m *glyphmesh.Mesh, u gpumesh.Uniforms) error {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	defer instance.Destroy()

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	defer openDev.Device.Destroy()

	bufs, err := gpumesh.UploadHAL(openDev.Device, openDev.Queue, m)
	if err != nil {
		return err
	}
	defer bufs.Destroy()

	pipe, err := gpumesh.NewPipeline(openDev.Device, gputypes.TextureFormatBGRA8Unorm)
	if err != nil {
		return err
	}
	defer pipe.Destroy()

	if err := pipe.Attach(bufs); err != nil {
		return err
	}
	if err := bufs.WriteUniforms(u); err != nil {
		return err
	}
	fmt.Printf("gpu: %d vertices, %d indices uploaded\n", bufs.VertexCount, bufs.IndexCount)
	return nil
}
