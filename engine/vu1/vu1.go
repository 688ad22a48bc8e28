// Package vu1 performs the per-frame transform and lighting stage. For a
// given frame index it builds the model, view and projection matrices, then
// shades every mesh vertex into a display list the rasterizer can consume
// directly. The stage is pure: identical inputs always produce an identical
// display list.
package vu1

import (
	"math"

	"github.com/Ang-Andrew/emotion-cube/common"
	"github.com/Ang-Andrew/emotion-cube/engine/model"
)

// MatOpsPerFrame is the number of matrix operations a single ComputeFrame
// call performs: two rotation builds and three 4x4 multiplies.
const MatOpsPerFrame uint64 = 5

const (
	defaultFovY         = math.Pi / 3
	defaultAspect       = 640.0 / 448.0
	defaultNear         = 0.1
	defaultFar          = 100.0
	defaultViewDistance = 3.0
	defaultAmbient      = 0.2
)

var defaultLightDirection = [3]float32{0.577, 0.577, 0.577}

type unit struct {
	lightDirection [3]float32
	ambient        float32
	viewDistance   float32
	fovY           float32
	aspect         float32
	near           float32
	far            float32
}

var _ Unit = &unit{}

type Unit interface {
	// ComputeFrame transforms and shades every vertex of the mesh for the
	// given frame index.
	//
	// The model matrix rotates the mesh around Y at one degree per frame and
	// around X at half that rate. The view matrix pulls the camera back along
	// +Z by the configured view distance. Projection is a perspective
	// transform mapping depth to [0, 1]. Normals are rotated by the model
	// matrix only and renormalized before lighting.
	//
	// Parameters:
	//   - frameIndex: the frame number driving the rotation angles
	//   - mesh: the triangle list to transform, must be non-nil
	//
	// Returns:
	//   - model.DisplayList: one shaded vertex per mesh vertex, same order
	ComputeFrame(frameIndex uint64, mesh *model.Mesh) model.DisplayList
}

// NewUnit creates a transform-and-lighting unit with the default camera,
// projection and lighting parameters, overridable via builder options.
//
// Parameters:
//   - options: optional builder options to apply
//
// Returns:
//   - Unit: the configured unit
func NewUnit(options ...UnitBuilderOption) Unit {
	u := &unit{
		lightDirection: defaultLightDirection,
		ambient:        defaultAmbient,
		viewDistance:   defaultViewDistance,
		fovY:           defaultFovY,
		aspect:         defaultAspect,
		near:           defaultNear,
		far:            defaultFar,
	}
	for _, opt := range options {
		opt(u)
	}
	u.lightDirection = common.Normalize3(u.lightDirection)
	return u
}

func (u *unit) ComputeFrame(frameIndex uint64, mesh *model.Mesh) model.DisplayList {
	angleY := float32(frameIndex) * math.Pi / 180
	angleX := float32(frameIndex) * math.Pi / 360

	var rotX, rotY, mdl, view, mv, mvp [16]float32
	common.RotateX(rotX[:], angleX)
	common.RotateY(rotY[:], angleY)
	common.Mul4(mdl[:], rotX[:], rotY[:])
	common.TranslateZ(view[:], -u.viewDistance)
	common.Mul4(mv[:], view[:], mdl[:])

	var proj [16]float32
	common.Perspective(proj[:], u.fovY, u.aspect, u.near, u.far)
	common.Mul4(mvp[:], proj[:], mv[:])

	out := make(model.DisplayList, 0, mesh.Len())
	for i := 0; i < mesh.Len(); i++ {
		out = append(out, u.shadeVertex(mdl[:], mvp[:], mesh.At(i)))
	}
	return out
}

// shadeVertex projects one vertex to clip space and applies diffuse plus
// ambient lighting to its base color.
func (u *unit) shadeVertex(mdl, mvp []float32, vtx model.Vertex) model.GsVertex {
	pos := [4]float32{vtx.Position[0], vtx.Position[1], vtx.Position[2], 1}
	clip := common.TransformVec4(mvp, pos)

	n4 := common.TransformVec4(mdl, [4]float32{vtx.Normal[0], vtx.Normal[1], vtx.Normal[2], 0})
	normal := common.Normalize3([3]float32{n4[0], n4[1], n4[2]})

	diffuse := common.Clamp01(common.Dot3(normal, u.lightDirection))
	var color [4]float32
	for c := 0; c < 3; c++ {
		color[c] = common.Clamp01(vtx.Color[c]*diffuse + vtx.Color[c]*u.ambient)
	}
	color[3] = 1

	return model.GsVertex{Pos: clip, Color: color}
}
