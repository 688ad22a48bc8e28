package mesh_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// meshProvider is the unexported implementation of MeshProvider.
type meshProvider struct {
	// label is a debug label added for convenience.
	label string

	// The following fields are GPU allocated resources and must be released when no longer needed.
	// They are populated by the Renderer during initialization, not by user-creation.

	// vertexBuffer is the GPU vertex buffer created for this provider, or nil if not initialized with the Renderer.
	vertexBuffer *wgpu.Buffer
	// vertexCount is the number of vertices for draw calls, used by the Renderer to issue draw calls for this provider.
	vertexCount int
}

// MeshProvider defines the interface for components that hold GPU vertex data for draw calls.
//
// Usage pattern:
//  1. Component creates a MeshProvider with a unique label
//  2. Renderer.InitMeshBuffers(provider, data, count) creates the GPU vertex buffer
//  3. Renderer.WriteVertexBuffer(provider, data) streams per-frame vertex data
//  4. Renderer.DrawCall(key, provider) draws the provider's vertices
type MeshProvider interface {
	// Release releases any GPU resources held by this provider.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// VertexCount returns the number of vertices for draw calls.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// SetVertexBuffer stores the GPU vertex buffer after creation by InitMeshBuffers.
	//
	// Parameters:
	//   - buf: the created vertex buffer
	SetVertexBuffer(buf *wgpu.Buffer)

	// SetVertexCount sets the number of vertices for draw calls.
	//
	// Parameters:
	//   - count: the vertex count
	SetVertexCount(count int)
}

// Compile-time check that meshProvider implements MeshProvider
var _ MeshProvider = &meshProvider{}

// NewMeshProvider creates a new MeshProvider with the provided options.
//
// Parameters:
//   - label: a debug label for this provider
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - MeshProvider: a new instance of MeshProvider configured with the provided options
func NewMeshProvider(label string, options ...MeshProviderOption) MeshProvider {
	p := &meshProvider{
		label: label,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *meshProvider) Label() string {
	return p.label
}

func (p *meshProvider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *meshProvider) VertexCount() int {
	return p.vertexCount
}

func (p *meshProvider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *meshProvider) SetVertexCount(count int) {
	p.vertexCount = count
}

func (p *meshProvider) Release() {
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
	p.vertexCount = 0
}
