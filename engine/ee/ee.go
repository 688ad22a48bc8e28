// Package ee models the host CPU of the emulated console as a smart stub.
// The real chip runs the game binary; here it only advances the frame index
// and accounts a fixed nominal cycle budget per frame. There is no
// instruction-level emulation and no branching logic.
package ee

// CyclesPerFrame is the fixed number of emulated CPU cycles accounted per
// frame (300 MHz at a nominal per-frame budget). It is a stub value, never
// derived from actual work performed.
const CyclesPerFrame uint64 = 300_000

// clock is the implementation of the Clock interface.
type clock struct {
	// frame is the index handed out by the next Tick call.
	frame uint64

	// cyclesPerFrame is the fixed cycle budget reported for every frame.
	cyclesPerFrame uint64
}

// Clock advances the emulated frame counter. It is deterministic and cannot
// fail; the only state it carries is the frame index itself.
type Clock interface {
	// Tick returns the current frame index and advances the counter.
	// The first call returns 0.
	//
	// Returns:
	//   - uint64: the frame index for the frame being stepped
	Tick() uint64

	// Frame returns the index the next Tick call will hand out, without
	// advancing the counter.
	//
	// Returns:
	//   - uint64: the upcoming frame index
	Frame() uint64

	// CyclesPerFrame returns the fixed emulated cycle budget per frame.
	//
	// Returns:
	//   - uint64: cycles accounted for every frame
	CyclesPerFrame() uint64
}

var _ Clock = &clock{}

// NewClock creates a new Clock starting at frame 0 with the specified options.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - Clock: the newly created clock
func NewClock(options ...ClockBuilderOption) Clock {
	c := &clock{
		cyclesPerFrame: CyclesPerFrame,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *clock) Tick() uint64 {
	frame := c.frame
	c.frame++
	return frame
}

func (c *clock) Frame() uint64 {
	return c.frame
}

func (c *clock) CyclesPerFrame() uint64 {
	return c.cyclesPerFrame
}
