package engine

// Telemetry holds the cumulative emulation counters of a Core. All counters
// start at zero and only advance when a frame step completes successfully.
type Telemetry struct {
	// EmulatedCycles is the total number of emulated CPU cycles elapsed,
	// at a fixed cycle budget per frame.
	EmulatedCycles uint64

	// Vu1MatOps is the total number of matrix operations performed by the
	// transform stage.
	Vu1MatOps uint64

	// FrameCount is the total number of frames stepped.
	FrameCount uint64
}
