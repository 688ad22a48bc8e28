package model

// Face colors: +X=Red, -X=Cyan, +Y=Green, -Y=Magenta, +Z=Blue, -Z=Yellow.
var (
	faceRed     = [3]float32{1, 0.1, 0.1}
	faceCyan    = [3]float32{0.1, 1, 1}
	faceGreen   = [3]float32{0.1, 1, 0.1}
	faceMagenta = [3]float32{1, 0.1, 1}
	faceBlue    = [3]float32{0.1, 0.1, 1}
	faceYellow  = [3]float32{1, 1, 0.1}
)

// v is a terse constructor for cube vertices.
func v(pos, normal, color [3]float32) Vertex {
	return Vertex{Position: pos, Normal: normal, Color: color}
}

// UnitCube returns the canonical demo mesh: a cube spanning [-1, 1] on every
// axis, realized as a non-indexed triangle list of 36 vertices (6 faces x
// 2 triangles x 3 vertices, CCW winding) with per-face flat normals and
// colors.
//
// Returns:
//   - *Mesh: the 36-vertex cube mesh
func UnitCube() *Mesh {
	return NewMesh([]Vertex{
		// +X face
		v([3]float32{1, -1, 1}, [3]float32{1, 0, 0}, faceRed),
		v([3]float32{1, 1, 1}, [3]float32{1, 0, 0}, faceRed),
		v([3]float32{1, 1, -1}, [3]float32{1, 0, 0}, faceRed),
		v([3]float32{1, -1, 1}, [3]float32{1, 0, 0}, faceRed),
		v([3]float32{1, 1, -1}, [3]float32{1, 0, 0}, faceRed),
		v([3]float32{1, -1, -1}, [3]float32{1, 0, 0}, faceRed),
		// -X face
		v([3]float32{-1, -1, -1}, [3]float32{-1, 0, 0}, faceCyan),
		v([3]float32{-1, 1, -1}, [3]float32{-1, 0, 0}, faceCyan),
		v([3]float32{-1, 1, 1}, [3]float32{-1, 0, 0}, faceCyan),
		v([3]float32{-1, -1, -1}, [3]float32{-1, 0, 0}, faceCyan),
		v([3]float32{-1, 1, 1}, [3]float32{-1, 0, 0}, faceCyan),
		v([3]float32{-1, -1, 1}, [3]float32{-1, 0, 0}, faceCyan),
		// +Y face
		v([3]float32{-1, 1, 1}, [3]float32{0, 1, 0}, faceGreen),
		v([3]float32{-1, 1, -1}, [3]float32{0, 1, 0}, faceGreen),
		v([3]float32{1, 1, -1}, [3]float32{0, 1, 0}, faceGreen),
		v([3]float32{-1, 1, 1}, [3]float32{0, 1, 0}, faceGreen),
		v([3]float32{1, 1, -1}, [3]float32{0, 1, 0}, faceGreen),
		v([3]float32{1, 1, 1}, [3]float32{0, 1, 0}, faceGreen),
		// -Y face
		v([3]float32{-1, -1, -1}, [3]float32{0, -1, 0}, faceMagenta),
		v([3]float32{-1, -1, 1}, [3]float32{0, -1, 0}, faceMagenta),
		v([3]float32{1, -1, 1}, [3]float32{0, -1, 0}, faceMagenta),
		v([3]float32{-1, -1, -1}, [3]float32{0, -1, 0}, faceMagenta),
		v([3]float32{1, -1, 1}, [3]float32{0, -1, 0}, faceMagenta),
		v([3]float32{1, -1, -1}, [3]float32{0, -1, 0}, faceMagenta),
		// +Z face
		v([3]float32{-1, -1, 1}, [3]float32{0, 0, 1}, faceBlue),
		v([3]float32{1, -1, 1}, [3]float32{0, 0, 1}, faceBlue),
		v([3]float32{1, 1, 1}, [3]float32{0, 0, 1}, faceBlue),
		v([3]float32{-1, -1, 1}, [3]float32{0, 0, 1}, faceBlue),
		v([3]float32{1, 1, 1}, [3]float32{0, 0, 1}, faceBlue),
		v([3]float32{-1, 1, 1}, [3]float32{0, 0, 1}, faceBlue),
		// -Z face
		v([3]float32{1, -1, -1}, [3]float32{0, 0, -1}, faceYellow),
		v([3]float32{-1, -1, -1}, [3]float32{0, 0, -1}, faceYellow),
		v([3]float32{-1, 1, -1}, [3]float32{0, 0, -1}, faceYellow),
		v([3]float32{1, -1, -1}, [3]float32{0, 0, -1}, faceYellow),
		v([3]float32{-1, 1, -1}, [3]float32{0, 0, -1}, faceYellow),
		v([3]float32{1, 1, -1}, [3]float32{0, 0, -1}, faceYellow),
	})
}
