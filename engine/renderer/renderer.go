package renderer

import (
	"fmt"
	"sync"

	"github.com/Ang-Andrew/emotion-cube/engine/renderer/mesh_provider"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer/pipeline"
	"github.com/Ang-Andrew/emotion-cube/engine/window"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	pendingClearColor    *ClearColor
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API designed to simplify rendering tasks into a streamlined and idiomatic flow.
// The Renderer manages a cache of pipelines, allowing for easy retrieval and management of these resources.
// The Renderer also implements a backend which allows for multiple backend API implementations to exist.
type Renderer interface {
	// RegisterPipelines registers one or more pipelines by creating the corresponding GPU
	// pipeline objects via the backend, then caching them by PipelineKey.
	// Pipelines whose keys are already registered are skipped to avoid duplicate GPU resource creation.
	//
	// Parameters:
	//   - pipelines: the Pipelines to register
	//
	// Returns:
	//   - error: an error if pipeline creation fails
	RegisterPipelines(pipelines ...pipeline.Pipeline) error

	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window or when the surface size should change.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// InitMeshBuffers creates a GPU vertex buffer from raw byte data and stores it
	// on the given MeshProvider for later use in draw calls.
	//
	// Parameters:
	//   - provider: the MeshProvider to store the created buffer on
	//   - vertexData: the raw vertex data bytes to upload to the GPU
	//   - vertexCount: the number of vertices, used for draw calls
	//
	// Returns:
	//   - error: an error if buffer creation fails
	InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData []byte, vertexCount int) error

	// WriteVertexBuffer streams new vertex data into a provider's existing GPU vertex buffer.
	// The data must not exceed the size the buffer was created with.
	//
	// Parameters:
	//   - provider: the MeshProvider whose vertex buffer to write
	//   - vertexData: the raw vertex data bytes to write
	WriteVertexBuffer(provider mesh_provider.MeshProvider, vertexData []byte)

	// BeginFrame acquires the swapchain texture and begins the main render pass.
	// Must be paired with EndFrame after all DrawCall invocations within a single frame.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	BeginFrame() error

	// DrawCall encodes a single non-indexed draw command within the current render pass.
	// Multiple DrawCall invocations can be made between BeginFrame and EndFrame.
	//
	// Parameters:
	//   - pipelineKey: the unique identifier for the cached render Pipeline to use
	//   - meshProvider: the MeshProvider holding the vertex buffer to draw
	//
	// Returns:
	//   - error: an error if the pipeline is not found
	DrawCall(pipelineKey string, meshProvider mesh_provider.MeshProvider) error

	// EndFrame ends the current render pass and submits the command buffer to the GPU.
	// Does not present the surface; call Present() after EndFrame to display the frame.
	// Must be called after BeginFrame and all DrawCall invocations within a single frame.
	EndFrame()

	// Present presents the surface to the display and releases the swapchain texture.
	// Must be called once per frame after EndFrame.
	Present()

	// AbortFrame discards the frame started by BeginFrame without submitting or
	// presenting anything, releasing the swapchain texture back to the surface.
	// Use it in place of EndFrame/Present when a frame must be dropped.
	AbortFrame()

	// SetPresentMode sets the surface present mode which controls how frames are delivered to the display.
	// A call to Resize is required after changing this for the new mode to take effect.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// Release releases the GPU device, surface, adapter, and instance held by the backend.
	// The Renderer must not be used after Release.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer instance with the specified backend type, targeting
// the surface of the given window.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window whose surface the renderer draws to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: an error if no suitable GPU adapter or device could be acquired
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAAOff // default
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}
	clearColor := ClearColor{R: 0.03, G: 0.03, B: 0.08, A: 1.0} // default
	if r.pendingClearColor != nil {
		clearColor = *r.pendingClearColor
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		backend, err := newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, clearColor)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize wgpu backend: %w", err)
		}
		r.backend = backend
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range pipelines {
		key := p.PipelineKey()
		if _, exists := r.pipelineCache[key]; exists {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return err
		}
		r.pipelineCache[key] = p
	}
	return nil
}

func (r *renderer) InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData []byte, vertexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, vertexCount)
}

func (r *renderer) WriteVertexBuffer(provider mesh_provider.MeshProvider, vertexData []byte) {
	r.backend.WriteVertexBuffer(provider, vertexData)
}

func (r *renderer) BeginFrame() error {
	return r.backend.BeginFrame()
}

func (r *renderer) DrawCall(pipelineKey string, meshProvider mesh_provider.MeshProvider) error {
	r.mu.Lock()
	p, exists := r.pipelineCache[pipelineKey]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("render pipeline %q not found in cache", pipelineKey)
	}

	r.backend.DrawCall(p, meshProvider)
	return nil
}

func (r *renderer) EndFrame() {
	r.backend.EndFrame()
}

func (r *renderer) Present() {
	r.backend.Present()
}

func (r *renderer) AbortFrame() {
	r.backend.AbortFrame()
}

func (r *renderer) Release() {
	r.backend.Release()
}
