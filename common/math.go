package common

import (
	"math"
	"unsafe"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (WebGPU convention).
// Result: out = a * b. out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// RotateX builds a rotation matrix about the X axis.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - rad: rotation angle in radians
func RotateX(out []float32, rad float32) {
	s := float32(math.Sin(float64(rad)))
	c := float32(math.Cos(float64(rad)))
	Identity(out)
	out[5] = c
	out[6] = -s
	out[9] = s
	out[10] = c
}

// RotateY builds a rotation matrix about the Y axis.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - rad: rotation angle in radians
func RotateY(out []float32, rad float32) {
	s := float32(math.Sin(float64(rad)))
	c := float32(math.Cos(float64(rad)))
	Identity(out)
	out[0] = c
	out[2] = s
	out[8] = -s
	out[10] = c
}

// TranslateZ builds a translation matrix along the Z axis.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - tz: translation distance along Z
func TranslateZ(out []float32, tz float32) {
	Identity(out)
	out[14] = tz
}

// Perspective creates a perspective projection matrix with a finite far plane
// and the WebGPU clip-space depth convention: post-divide depth lands in
// [0, 1], with the near plane mapping to 0 and the far plane to 1. The depth
// terms are derived from rangeInv = 1 / (near - far).
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	rangeInv := 1.0 / (near - far)
	Identity(out)

	out[0] = f / aspect
	out[5] = f
	out[10] = far * rangeInv
	out[11] = -1.0
	out[14] = near * far * rangeInv
	out[15] = 0.0
}

// TransformVec4 multiplies a column-major 4x4 matrix by a column vector.
//
// Parameters:
//   - m: the matrix (16 elements, column-major)
//   - v: the vector [x, y, z, w]
//
// Returns:
//   - [4]float32: the transformed vector m * v
func TransformVec4(m []float32, v [4]float32) [4]float32 {
	return [4]float32{
		m[0]*v[0] + m[4]*v[1] + m[8]*v[2] + m[12]*v[3],
		m[1]*v[0] + m[5]*v[1] + m[9]*v[2] + m[13]*v[3],
		m[2]*v[0] + m[6]*v[1] + m[10]*v[2] + m[14]*v[3],
		m[3]*v[0] + m[7]*v[1] + m[11]*v[2] + m[15]*v[3],
	}
}

// Dot3 computes the dot product of two 3-component vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - float32: a · b
func Dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Normalize3 returns the unit-length copy of a 3-component vector.
// A zero vector is returned unchanged.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - [3]float32: v scaled to unit length, or v if its length is zero
func Normalize3(v [3]float32) [3]float32 {
	lenSq := float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if lenSq == 0 {
		return v
	}
	invLen := float32(1.0 / math.Sqrt(lenSq))
	return [3]float32{v[0] * invLen, v[1] * invLen, v[2] * invLen}
}

// Clamp01 clamps a value to the [0, 1] range.
//
// Parameters:
//   - v: the value to clamp
//
// Returns:
//   - float32: v limited to [0, 1]
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
