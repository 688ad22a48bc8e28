package engine

import (
	"github.com/Ang-Andrew/emotion-cube/engine/ee"
	"github.com/Ang-Andrew/emotion-cube/engine/gs"
	"github.com/Ang-Andrew/emotion-cube/engine/model"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer"
	"github.com/Ang-Andrew/emotion-cube/engine/vu1"
)

// CoreOption is a functional option applied to a Core during construction.
type CoreOption func(c *core)

// WithClock replaces the default frame clock.
//
// Parameters:
//   - clock: the frame clock to drive the pipeline with
//
// Returns:
//   - CoreOption: the option to apply
func WithClock(clock ee.Clock) CoreOption {
	return func(c *core) {
		c.clock = clock
	}
}

// WithUnit replaces the default transform-and-lighting unit.
//
// Parameters:
//   - unit: the transform stage to shade frames with
//
// Returns:
//   - CoreOption: the option to apply
func WithUnit(unit vu1.Unit) CoreOption {
	return func(c *core) {
		c.unit = unit
	}
}

// WithRasterizer replaces the default raster stage. When set, the Core does
// not build a renderer of its own.
//
// Parameters:
//   - raster: the raster stage to submit frames to
//
// Returns:
//   - CoreOption: the option to apply
func WithRasterizer(raster gs.Rasterizer) CoreOption {
	return func(c *core) {
		c.raster = raster
	}
}

// WithMesh replaces the default cube mesh.
//
// Parameters:
//   - mesh: the triangle list to render each frame
//
// Returns:
//   - CoreOption: the option to apply
func WithMesh(mesh *model.Mesh) CoreOption {
	return func(c *core) {
		c.mesh = mesh
	}
}

// WithRendererOptions forwards options to the renderer the Core builds, such
// as renderer.WithPresentMode or renderer.WithMSAA. Ignored when a raster
// stage is injected via WithRasterizer.
//
// Parameters:
//   - options: renderer builder options to apply
//
// Returns:
//   - CoreOption: the option to apply
func WithRendererOptions(options ...renderer.RendererBuilderOption) CoreOption {
	return func(c *core) {
		c.rendererOptions = options
	}
}
