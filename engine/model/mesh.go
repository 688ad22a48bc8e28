// Package model holds the geometry types moved through the pipeline: the
// static input Mesh consumed by the transform-and-lighting unit, and the
// per-frame DisplayList of shaded clip-space vertices handed to the
// rasterizer.
package model

// Vertex is a single static mesh vertex in model space.
type Vertex struct {
	// Position is the vertex position in model space.
	Position [3]float32

	// Normal is the face normal used for lighting. Expected to be unit length.
	Normal [3]float32

	// Color is the base RGB color modulated by lighting, components in [0, 1].
	Color [3]float32
}

// Mesh is an immutable non-indexed triangle list: every 3 consecutive
// vertices form one triangle. Vertex count and topology never change after
// construction.
type Mesh struct {
	vertices []Vertex
}

// NewMesh creates a Mesh from the given vertices. The slice is copied so the
// mesh cannot be mutated through the caller's reference. The vertex count
// must be a multiple of 3 (triangle list); NewMesh panics otherwise, since a
// malformed mesh is a programming error rather than a runtime condition.
//
// Parameters:
//   - vertices: the triangle-list vertices in draw order
//
// Returns:
//   - *Mesh: the immutable mesh
func NewMesh(vertices []Vertex) *Mesh {
	if len(vertices)%3 != 0 {
		panic("model: mesh vertex count must be a multiple of 3")
	}
	verts := make([]Vertex, len(vertices))
	copy(verts, vertices)
	return &Mesh{vertices: verts}
}

// Len returns the number of vertices in the mesh.
//
// Returns:
//   - int: the vertex count
func (m *Mesh) Len() int {
	return len(m.vertices)
}

// Triangles returns the number of triangles in the mesh.
//
// Returns:
//   - int: the triangle count (Len / 3)
func (m *Mesh) Triangles() int {
	return len(m.vertices) / 3
}

// At returns the vertex at index i by value.
//
// Parameters:
//   - i: the vertex index in draw order
//
// Returns:
//   - Vertex: a copy of the vertex
func (m *Mesh) At(i int) Vertex {
	return m.vertices[i]
}
