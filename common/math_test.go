package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func TestIdentityTransformsVectorUnchanged(t *testing.T) {
	m := make([]float32, 16)
	Identity(m)

	v := [4]float32{1.5, -2, 3, 1}
	got := TransformVec4(m, v)
	if got != v {
		t.Errorf("identity transform = %v, want %v", got, v)
	}
}

func TestRotationsAtZeroAreIdentity(t *testing.T) {
	want := make([]float32, 16)
	Identity(want)

	for _, tt := range []struct {
		name  string
		build func(out []float32, rad float32)
	}{
		{"RotateX", RotateX},
		{"RotateY", RotateY},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := make([]float32, 16)
			tt.build(m, 0)
			for i := range want {
				if !approxEqual(m[i], want[i]) {
					t.Errorf("element %d = %v, want %v", i, m[i], want[i])
				}
			}
		})
	}
}

func TestRotateYMovesZAxisVertexThroughNegativeX(t *testing.T) {
	m := make([]float32, 16)
	RotateY(m, float32(math.Pi/2))

	// Rotating +Z by 90 degrees about Y lands on -X (and +X lands on +Z).
	got := TransformVec4(m, [4]float32{0, 0, 1, 1})
	want := [4]float32{-1, 0, 0, 1}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotateXMovesYAxisVertexThroughNegativeZ(t *testing.T) {
	m := make([]float32, 16)
	RotateX(m, float32(math.Pi/2))

	// Rotating +Y by 90 degrees about X lands on -Z (and +Z lands on +Y).
	got := TransformVec4(m, [4]float32{0, 1, 0, 1})
	want := [4]float32{0, 0, -1, 1}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRotationCompositionPose(t *testing.T) {
	// The model pose after a quarter turn about Y followed by an eighth turn
	// about X. A corner at (1, -1, 1) must end up at (-1, 0, sqrt(2)).
	rotX := make([]float32, 16)
	rotY := make([]float32, 16)
	mdl := make([]float32, 16)
	RotateX(rotX, float32(math.Pi/4))
	RotateY(rotY, float32(math.Pi/2))
	Mul4(mdl, rotX, rotY)

	got := TransformVec4(mdl, [4]float32{1, -1, 1, 1})
	want := [4]float32{-1, 0, float32(math.Sqrt2), 1}
	for i := range want {
		if !approxEqual(got[i], want[i]) {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMul4CompositionOrder(t *testing.T) {
	// Mul4(out, a, b) must compute a*b with column vectors: applying the
	// product to v equals applying b first, then a.
	a := make([]float32, 16)
	b := make([]float32, 16)
	ab := make([]float32, 16)
	RotateY(a, 0.7)
	TranslateZ(b, -3)
	Mul4(ab, a, b)

	v := [4]float32{0.25, -1, 2, 1}
	direct := TransformVec4(ab, v)
	stepped := TransformVec4(a, TransformVec4(b, v))
	for i := range direct {
		if !approxEqual(direct[i], stepped[i]) {
			t.Errorf("component %d: composite %v, stepwise %v", i, direct[i], stepped[i])
		}
	}
}

func TestMul4AliasSafe(t *testing.T) {
	a := make([]float32, 16)
	b := make([]float32, 16)
	want := make([]float32, 16)
	RotateX(a, 1.1)
	TranslateZ(b, 5)
	Mul4(want, a, b)

	// Writing the result over the left operand must not corrupt the product.
	Mul4(a, a, b)
	for i := range want {
		if !approxEqual(a[i], want[i]) {
			t.Errorf("element %d = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestPerspectiveDepthRangeZeroToOne(t *testing.T) {
	const (
		near = float32(0.1)
		far  = float32(100)
	)
	m := make([]float32, 16)
	Perspective(m, float32(math.Pi/3), 640.0/448.0, near, far)

	tests := []struct {
		name string
		z    float32
		want float32
	}{
		{"near plane maps to 0", -near, 0},
		{"far plane maps to 1", -far, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := TransformVec4(m, [4]float32{0, 0, tt.z, 1})
			if clip[3] <= 0 {
				t.Fatalf("clip w = %v, want > 0", clip[3])
			}
			depth := clip[2] / clip[3]
			if !approxEqual(depth, tt.want) {
				t.Errorf("post-divide depth = %v, want %v", depth, tt.want)
			}
		})
	}
}

func TestPerspectiveCentersOnAxis(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, float32(math.Pi/3), 640.0/448.0, 0.1, 100)

	// A point on the view axis stays centered in x/y.
	clip := TransformVec4(m, [4]float32{0, 0, -3, 1})
	if !approxEqual(clip[0], 0) || !approxEqual(clip[1], 0) {
		t.Errorf("on-axis clip xy = (%v, %v), want (0, 0)", clip[0], clip[1])
	}
}

func TestNormalize3(t *testing.T) {
	tests := []struct {
		name string
		in   [3]float32
		want [3]float32
	}{
		{"axis vector unchanged", [3]float32{0, 1, 0}, [3]float32{0, 1, 0}},
		{"scaled axis", [3]float32{0, 0, 4}, [3]float32{0, 0, 1}},
		{"zero vector unchanged", [3]float32{0, 0, 0}, [3]float32{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize3(tt.in)
			for i := range tt.want {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("component %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	got := Normalize3([3]float32{3, 4, 0})
	length := float32(math.Sqrt(float64(Dot3(got, got))))
	if !approxEqual(length, 1) {
		t.Errorf("normalized length = %v, want 1", length)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSliceToBytesLength(t *testing.T) {
	data := []float32{1, 2, 3}
	b := SliceToBytes(data)
	if len(b) != 12 {
		t.Errorf("len = %d, want 12", len(b))
	}
	if SliceToBytes([]float32(nil)) != nil {
		t.Error("nil slice should convert to nil")
	}
}
