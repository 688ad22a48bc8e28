package model

import (
	"github.com/Ang-Andrew/emotion-cube/common"
)

// GsVertex is a single shaded vertex in the layout the passthrough pipeline
// consumes: a clip-space position followed by an RGBA color, both vec4. The
// struct is 32 bytes with no padding, matching the vertex buffer stride.
type GsVertex struct {
	Pos   [4]float32
	Color [4]float32
}

// GsVertexSize is the byte stride of one GsVertex in a vertex buffer.
const GsVertexSize = 32

// DisplayList is the per-frame output of the transform stage: one shaded
// GsVertex per mesh vertex, in submission order. It carries no indices, the
// rasterizer consumes it as a plain triangle list.
type DisplayList []GsVertex

// Len returns the number of vertices in the display list.
//
// Returns:
//   - int: vertex count
func (d DisplayList) Len() int {
	return len(d)
}

// Bytes reinterprets the display list as its raw vertex buffer contents,
// ready for upload. No copy is made.
//
// Returns:
//   - []byte: the backing bytes of the list
func (d DisplayList) Bytes() []byte {
	return common.SliceToBytes([]GsVertex(d))
}
