package shader

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithEntryPoint overrides the default entry point name for this shader.
//
// Parameters:
//   - entryPoint: the entry point function name in the WGSL source
//
// Returns:
//   - ShaderBuilderOption: a function that sets the entry point for this shader
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		if entryPoint == "" {
			return
		}
		s.entryPoint = entryPoint
	}
}

// WithVertexLayouts sets the vertex buffer layouts for this shader, in buffer slot order.
// Only meaningful for vertex shaders.
//
// Parameters:
//   - layouts: the vertex buffer layouts describing the shader's vertex inputs
//
// Returns:
//   - ShaderBuilderOption: a function that sets the vertex layouts for this shader
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
