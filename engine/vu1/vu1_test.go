package vu1

import (
	"math"
	"testing"

	"github.com/Ang-Andrew/emotion-cube/engine/model"
)

const epsilon = 1e-4

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestComputeFrameIsDeterministic(t *testing.T) {
	u := NewUnit()
	cube := model.UnitCube()
	first := u.ComputeFrame(42, cube)
	second := u.ComputeFrame(42, cube)
	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("vertex %d differs between identical calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestComputeFramePreservesVertexCount(t *testing.T) {
	u := NewUnit()
	cube := model.UnitCube()
	dl := u.ComputeFrame(0, cube)
	if dl.Len() != cube.Len() {
		t.Fatalf("display list has %d vertices, mesh has %d", dl.Len(), cube.Len())
	}
}

func TestFrameZeroReferenceVertex(t *testing.T) {
	u := NewUnit()
	cube := model.UnitCube()
	dl := u.ComputeFrame(0, cube)

	// At frame 0 both rotation angles are zero, so clip space is just the
	// perspective projection of the vertex pulled back by the view distance.
	// For vertex 0 at (1, -1, 1) the camera-space depth is -2, hence w = 2.
	f := float32(1 / math.Tan(defaultFovY/2))
	rangeInv := float32(1 / (defaultNear - defaultFar))
	want := [4]float32{
		f / defaultAspect,
		-f,
		-defaultFar*rangeInv*2 + defaultNear*defaultFar*rangeInv,
		2,
	}
	for c := 0; c < 4; c++ {
		if !approxEqual(dl[0].Pos[c], want[c]) {
			t.Fatalf("component %d: got %v, want %v", c, dl[0].Pos[c], want[c])
		}
	}
}

func TestFrameZeroFaceLighting(t *testing.T) {
	// With zero rotation the +Z face normal points straight at (0, 0, 1), so
	// diffuse equals the z component of the normalized light direction.
	light := float32(1 / math.Sqrt(3))
	scale := light + defaultAmbient
	tests := []struct {
		name   string
		vertex int
		base   [3]float32
		want   float32
	}{
		{name: "+Z blue lit", vertex: 24, base: [3]float32{0.1, 0.1, 1}, want: scale},
		{name: "+X red lit", vertex: 0, base: [3]float32{1, 0.1, 0.1}, want: scale},
		{name: "-Z yellow ambient only", vertex: 30, base: [3]float32{1, 1, 0.1}, want: defaultAmbient},
	}
	u := NewUnit()
	dl := u.ComputeFrame(0, model.UnitCube())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := dl[tc.vertex]
			for c := 0; c < 3; c++ {
				if !approxEqual(got.Color[c], tc.base[c]*tc.want) {
					t.Fatalf("channel %d: got %v, want %v", c, got.Color[c], tc.base[c]*tc.want)
				}
			}
			if got.Color[3] != 1 {
				t.Fatalf("alpha must be 1, got %v", got.Color[3])
			}
		})
	}
}

func TestRotationRateIsTwoToOne(t *testing.T) {
	// The Y axis spins twice as fast as X: after 720 frames Y has completed
	// four half turns and X two, so the pose returns to the frame-0 pose.
	u := NewUnit()
	cube := model.UnitCube()
	ref := u.ComputeFrame(0, cube)
	back := u.ComputeFrame(720, cube)
	for i := range ref {
		for c := 0; c < 4; c++ {
			if !approxEqual(ref[i].Pos[c], back[i].Pos[c]) {
				t.Fatalf("vertex %d component %d: frame 720 pose %v diverged from frame 0 pose %v",
					i, c, back[i].Pos[c], ref[i].Pos[c])
			}
		}
	}
}

func TestLightingClampsToOne(t *testing.T) {
	u := NewUnit(WithAmbient(1.0))
	dl := u.ComputeFrame(0, model.UnitCube())
	for i, vtx := range dl {
		for c := 0; c < 4; c++ {
			if vtx.Color[c] < 0 || vtx.Color[c] > 1 {
				t.Fatalf("vertex %d channel %d: color %v outside [0, 1]", i, c, vtx.Color[c])
			}
		}
	}
}

func TestBuilderOptionsRejectInvalidValues(t *testing.T) {
	u := NewUnit(
		WithLightDirection([3]float32{0, 0, 0}),
		WithAmbient(-1),
		WithViewDistance(0),
		WithPerspective(0, 0, 0, 0),
	).(*unit)
	if u.ambient != defaultAmbient {
		t.Fatalf("negative ambient accepted: %v", u.ambient)
	}
	if u.viewDistance != defaultViewDistance {
		t.Fatalf("zero view distance accepted: %v", u.viewDistance)
	}
	if u.fovY != defaultFovY || u.near != defaultNear {
		t.Fatal("invalid perspective accepted")
	}
	want := float32(1 / math.Sqrt(3))
	for c := 0; c < 3; c++ {
		if !approxEqual(u.lightDirection[c], want) {
			t.Fatalf("zero light direction accepted: %v", u.lightDirection)
		}
	}
}
