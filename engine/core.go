// Package engine wires the emulated pipeline together: the CPU frame clock,
// the transform-and-lighting stage, and the raster output stage. A Core steps
// the pipeline one frame at a time and reports cumulative telemetry.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Ang-Andrew/emotion-cube/engine/ee"
	"github.com/Ang-Andrew/emotion-cube/engine/gs"
	"github.com/Ang-Andrew/emotion-cube/engine/model"
	"github.com/Ang-Andrew/emotion-cube/engine/profiler"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer"
	"github.com/Ang-Andrew/emotion-cube/engine/vu1"
	"github.com/Ang-Andrew/emotion-cube/engine/window"
)

// ErrNoBackend indicates that no compatible GPU adapter or device could be
// acquired during Core creation. This is fatal: the Core was not created.
var ErrNoBackend = errors.New("no compatible render backend")

// ErrClosed indicates the Core has been torn down and can no longer step frames.
var ErrClosed = errors.New("core is closed")

// core implements the Core interface.
// Coordinates the frame clock, transform stage, and raster stage.
type core struct {
	mu sync.Mutex

	window     window.Window
	ownsWindow bool

	clock  ee.Clock
	unit   vu1.Unit
	raster gs.Rasterizer
	mesh   *model.Mesh

	profiler         *profiler.Profiler
	profilingEnabled bool

	// rendererOptions are applied when the Core builds its own renderer.
	rendererOptions []renderer.RendererBuilderOption

	telemetry Telemetry
	closed    bool
}

// Core is the main entry point for the emulated pipeline.
// It orchestrates frame stepping and resource teardown.
type Core interface {
	// StepFrame advances the pipeline by exactly one frame: the transform
	// stage shades the mesh for the current frame index, the raster stage
	// draws and presents it, and the clock and counters advance.
	//
	// If the frame fails (e.g. the render surface was lost) no counter
	// advances and the same frame is retried on the next call.
	//
	// Returns:
	//   - Telemetry: the cumulative counters after this step
	//   - error: gs.ErrSurfaceLost if the surface was lost, ErrClosed after
	//     Close, or a draw submission error
	StepFrame() (Telemetry, error)

	// Telemetry returns the current cumulative counters without stepping.
	//
	// Returns:
	//   - Telemetry: the counters as of the last successful step
	Telemetry() Telemetry

	// Window returns the underlying window, or nil when the Core was built
	// on an externally managed window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Close tears the pipeline down: GPU buffers, the render backend, and
	// the window if the Core owns one. Subsequent StepFrame calls return
	// ErrClosed. Close is idempotent.
	//
	// Returns:
	//   - error: error if window teardown fails
	Close() error
}

var _ Core = &core{}

// Create builds a complete Core targeting a new window.
//
// Parameters:
//   - targetHandle: the window title identifying the output target
//   - options: functional options to configure the Core
//
// Returns:
//   - Core: the ready pipeline
//   - error: ErrNoBackend (wrapped) if no GPU adapter or device is available
func Create(targetHandle string, options ...CoreOption) (Core, error) {
	win := window.NewWindow(window.WithTitle(targetHandle))
	c, err := NewCore(win, options...)
	if err != nil {
		_ = win.Close()
		return nil, err
	}
	c.(*core).ownsWindow = true
	return c, nil
}

// NewCore builds a Core on an existing window. The window's surface becomes
// the render target; the caller keeps ownership of the window unless the Core
// was built via Create.
//
// Parameters:
//   - win: the window whose surface the pipeline renders to
//   - options: functional options to configure the Core
//
// Returns:
//   - Core: the ready pipeline
//   - error: ErrNoBackend (wrapped) if no GPU adapter or device is available
func NewCore(win window.Window, options ...CoreOption) (Core, error) {
	c := &core{
		window:   win,
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(c)
	}

	if c.clock == nil {
		c.clock = ee.NewClock()
	}
	if c.unit == nil {
		c.unit = vu1.NewUnit()
	}
	if c.mesh == nil {
		c.mesh = model.UnitCube()
	}
	if c.raster == nil {
		r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win, c.rendererOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoBackend, err)
		}
		raster, err := gs.NewRasterizer(r)
		if err != nil {
			r.Release()
			return nil, fmt.Errorf("%w: %v", ErrNoBackend, err)
		}
		c.raster = raster
	}

	win.SetResizeCallback(c.raster.Resize)

	return c, nil
}

func (c *core) StepFrame() (Telemetry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.telemetry, ErrClosed
	}

	// Counters only advance after the frame has been presented, so a failed
	// frame is retried at the same frame index on the next call.
	frame := c.clock.Frame()
	dl := c.unit.ComputeFrame(frame, c.mesh)
	if err := c.raster.Render(dl); err != nil {
		return c.telemetry, err
	}

	c.clock.Tick()
	c.telemetry.EmulatedCycles += c.clock.CyclesPerFrame()
	c.telemetry.Vu1MatOps += vu1.MatOpsPerFrame
	c.telemetry.FrameCount++

	if c.profilingEnabled {
		c.profiler.SetCounters(c.telemetry.EmulatedCycles, c.telemetry.Vu1MatOps, c.telemetry.FrameCount)
		c.profiler.Tick()
	}

	return c.telemetry, nil
}

func (c *core) Telemetry() Telemetry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.telemetry
}

func (c *core) Window() window.Window {
	return c.window
}

func (c *core) EnableProfiler() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profilingEnabled = true
}

func (c *core) DisableProfiler() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profilingEnabled = false
}

func (c *core) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.raster.Release()

	if c.ownsWindow && c.window != nil {
		return c.window.Close()
	}
	return nil
}
