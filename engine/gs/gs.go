// Package gs is the raster output stage. It takes a fully shaded display list
// and submits it to the GPU through the renderer: clear, upload, one draw
// call, present. All transformation and lighting has already happened
// upstream, the pipeline here is pure passthrough.
package gs

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/Ang-Andrew/emotion-cube/engine/model"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer/mesh_provider"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer/pipeline"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/passthrough.wgsl
var passthroughWGSL string

// PipelineKey is the cache key of the passthrough render pipeline.
const PipelineKey = "gs_passthrough"

// ErrSurfaceLost indicates the render surface could not be acquired for the
// current frame. The caller may recover by resizing or recreating the surface.
var ErrSurfaceLost = errors.New("render surface lost")

type rasterizer struct {
	renderer renderer.Renderer
	provider mesh_provider.MeshProvider

	pipelineKey string
	// bufferCapacity is the vertex capacity of the provider's GPU buffer.
	bufferCapacity int
}

// Rasterizer defines the interface for the raster output stage.
type Rasterizer interface {
	// Render submits one display list as a single frame: clears the target,
	// uploads the vertices, draws them as a triangle list, and presents.
	//
	// Parameters:
	//   - dl: the shaded display list to draw, interpreted as a triangle list
	//
	// Returns:
	//   - error: ErrSurfaceLost if the surface could not be acquired, or a
	//     draw submission error
	Render(dl model.DisplayList) error

	// Resize reconfigures the render surface for a new target size.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// Release frees the GPU vertex buffer and the underlying renderer backend.
	// The Rasterizer must not be used after Release.
	Release()
}

var _ Rasterizer = &rasterizer{}

// NewRasterizer creates the raster stage on top of an initialized renderer.
// It registers the passthrough pipeline and allocates the mesh provider used
// for per-frame vertex streaming.
//
// Parameters:
//   - r: the renderer targeting the output surface
//   - options: optional builder options to apply
//
// Returns:
//   - Rasterizer: the configured raster stage
//   - error: an error if the passthrough pipeline could not be created
func NewRasterizer(r renderer.Renderer, options ...RasterizerBuilderOption) (Rasterizer, error) {
	g := &rasterizer{
		renderer:    r,
		pipelineKey: PipelineKey,
	}
	for _, opt := range options {
		opt(g)
	}

	vs := shader.NewShader(g.pipelineKey+"_vs", shader.ShaderTypeVertex, passthroughWGSL,
		shader.WithVertexLayouts(wgpu.VertexBufferLayout{
			ArrayStride: model.GsVertexSize,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1},
			},
		}),
	)
	fs := shader.NewShader(g.pipelineKey+"_fs", shader.ShaderTypeFragment, passthroughWGSL)

	p := pipeline.NewPipeline(g.pipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
		pipeline.WithFrontFace(wgpu.FrontFaceCCW),
		pipeline.WithCullMode(wgpu.CullModeBack),
	)
	if err := r.RegisterPipelines(p); err != nil {
		return nil, fmt.Errorf("failed to register passthrough pipeline: %w", err)
	}

	g.provider = mesh_provider.NewMeshProvider(g.pipelineKey)
	return g, nil
}

func (g *rasterizer) Render(dl model.DisplayList) error {
	if err := g.uploadVertices(dl); err != nil {
		return err
	}

	if err := g.renderer.BeginFrame(); err != nil {
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	}

	if err := g.renderer.DrawCall(g.pipelineKey, g.provider); err != nil {
		// Drop the frame without presenting; a cleared frame must never reach
		// the display. AbortFrame releases the acquired swapchain texture so
		// the next BeginFrame can acquire one.
		g.renderer.AbortFrame()
		return err
	}

	g.renderer.EndFrame()
	g.renderer.Present()
	return nil
}

// uploadVertices streams the display list into the provider's vertex buffer,
// growing the buffer when the list exceeds the current capacity.
func (g *rasterizer) uploadVertices(dl model.DisplayList) error {
	if dl.Len() > g.bufferCapacity {
		g.provider.Release()
		if err := g.renderer.InitMeshBuffers(g.provider, dl.Bytes(), dl.Len()); err != nil {
			return err
		}
		g.bufferCapacity = dl.Len()
		return nil
	}

	g.renderer.WriteVertexBuffer(g.provider, dl.Bytes())
	g.provider.SetVertexCount(dl.Len())
	return nil
}

func (g *rasterizer) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

func (g *rasterizer) Release() {
	g.provider.Release()
	g.renderer.Release()
}
