package mesh_provider

// MeshProviderOption is a functional option applied to a MeshProvider during construction.
type MeshProviderOption func(*meshProvider)

// WithVertexCount pre-sets the vertex count before GPU initialization.
//
// Parameters:
//   - count: the number of vertices this provider will draw
//
// Returns:
//   - MeshProviderOption: a function that applies the vertex count to a provider
func WithVertexCount(count int) MeshProviderOption {
	return func(p *meshProvider) {
		if count < 0 {
			return
		}
		p.vertexCount = count
	}
}
