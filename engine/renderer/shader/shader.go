package shader

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a shader module serves.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds the persistent shader data required for pipeline creation.
type shader struct {
	key           string
	source        string
	shaderType    ShaderType
	vertexLayouts []wgpu.VertexBufferLayout
	entryPoint    string
	module        *wgpu.ShaderModuleDescriptor
}

// Shader defines the interface for a WGSL shader module. It exposes the shader's
// unique key, source code, entry point, and vertex buffer layouts needed for
// pipeline creation.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// VertexLayouts retrieves the vertex buffer layouts associated with this shader.
	// Only vertex shaders carry layouts, other shader types return nil.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the vertex buffer layouts in buffer slot order
	VertexLayouts() []wgpu.VertexBufferLayout

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the shader module descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// ShaderType returns the type of the shader (vertex or fragment).
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType
}

var _ Shader = &shader{}

// NewShader creates a new Shader instance with all specified options applied.
// The source is typically embedded WGSL text.
//
// Parameters:
//   - key: a unique identifier for the shader, used for caching and lookups
//   - shaderType: the type of shader (vertex or fragment), used for validation and pipeline setup
//   - source: the WGSL source code for the shader module
//   - opts: a variadic list of ShaderBuilderOption functions to configure the shader
//
// Returns:
//   - Shader: a new Shader instance with the provided configuration
func NewShader(key string, shaderType ShaderType, source string, opts ...ShaderBuilderOption) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s must have WGSL source provided", key))
	}
	s := &shader{
		key:        key,
		shaderType: shaderType,
		source:     source,
		entryPoint: defaultEntryPoint(shaderType),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	return s
}

func defaultEntryPoint(shaderType ShaderType) string {
	switch shaderType {
	case ShaderTypeFragment:
		return "fs_main"
	default:
		return "vs_main"
	}
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}
