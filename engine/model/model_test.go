package model

import (
	"math"
	"testing"
)

func TestNewMeshPanicsOnPartialTriangle(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for vertex count not divisible by 3")
		}
	}()
	NewMesh(make([]Vertex, 4))
}

func TestNewMeshCopiesInput(t *testing.T) {
	src := make([]Vertex, 3)
	m := NewMesh(src)
	src[0].Position = [3]float32{9, 9, 9}
	if m.At(0).Position != ([3]float32{0, 0, 0}) {
		t.Fatalf("mesh aliases caller slice: got %v", m.At(0).Position)
	}
}

func TestUnitCubeShape(t *testing.T) {
	cube := UnitCube()
	if cube.Len() != 36 {
		t.Fatalf("expected 36 vertices, got %d", cube.Len())
	}
	if cube.Triangles() != 12 {
		t.Fatalf("expected 12 triangles, got %d", cube.Triangles())
	}
}

func TestUnitCubeVerticesOnUnitExtent(t *testing.T) {
	cube := UnitCube()
	for i := 0; i < cube.Len(); i++ {
		for axis, p := range cube.At(i).Position {
			if p != 1 && p != -1 {
				t.Fatalf("vertex %d axis %d: position %v not on cube corner", i, axis, p)
			}
		}
	}
}

func TestUnitCubeNormalsAreUnitAxisAligned(t *testing.T) {
	cube := UnitCube()
	for i := 0; i < cube.Len(); i++ {
		n := cube.At(i).Normal
		length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(length-1) > 1e-6 {
			t.Fatalf("vertex %d: normal %v is not unit length", i, n)
		}
	}
}

func TestUnitCubeFaceColors(t *testing.T) {
	tests := []struct {
		name  string
		first int
		want  [3]float32
	}{
		{name: "+X red", first: 0, want: [3]float32{1, 0.1, 0.1}},
		{name: "-X cyan", first: 6, want: [3]float32{0.1, 1, 1}},
		{name: "+Y green", first: 12, want: [3]float32{0.1, 1, 0.1}},
		{name: "-Y magenta", first: 18, want: [3]float32{1, 0.1, 1}},
		{name: "+Z blue", first: 24, want: [3]float32{0.1, 0.1, 1}},
		{name: "-Z yellow", first: 30, want: [3]float32{1, 1, 0.1}},
	}
	cube := UnitCube()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := tc.first; i < tc.first+6; i++ {
				if cube.At(i).Color != tc.want {
					t.Fatalf("vertex %d: color %v, want %v", i, cube.At(i).Color, tc.want)
				}
			}
		})
	}
}

func TestDisplayListBytesLength(t *testing.T) {
	dl := make(DisplayList, 36)
	if got := len(dl.Bytes()); got != 36*GsVertexSize {
		t.Fatalf("expected %d bytes, got %d", 36*GsVertexSize, got)
	}
}
