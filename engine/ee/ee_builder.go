package ee

// ClockBuilderOption is a functional option for configuring a clock.
// Use the With* functions to create options.
type ClockBuilderOption func(c *clock)

// WithCyclesPerFrame overrides the fixed emulated cycle budget per frame.
// Values of 0 are ignored and the default (CyclesPerFrame) is kept.
//
// Parameters:
//   - cycles: the cycle budget to report for every frame
//
// Returns:
//   - ClockBuilderOption: option function to apply
func WithCyclesPerFrame(cycles uint64) ClockBuilderOption {
	return func(c *clock) {
		if cycles == 0 {
			return
		}
		c.cyclesPerFrame = cycles
	}
}

// WithStartFrame sets the frame index returned by the first Tick call.
// Defaults to 0.
//
// Parameters:
//   - frame: the initial frame index
//
// Returns:
//   - ClockBuilderOption: option function to apply
func WithStartFrame(frame uint64) ClockBuilderOption {
	return func(c *clock) {
		c.frame = frame
	}
}
