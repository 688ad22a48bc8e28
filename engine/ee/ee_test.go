package ee

import "testing"

func TestTickStartsAtZeroAndIncrements(t *testing.T) {
	c := NewClock()
	for want := uint64(0); want < 100; want++ {
		if got := c.Tick(); got != want {
			t.Fatalf("Tick() = %d, want %d", got, want)
		}
	}
}

func TestFrameDoesNotAdvanceCounter(t *testing.T) {
	c := NewClock()
	c.Tick()
	c.Tick()

	if got := c.Frame(); got != 2 {
		t.Errorf("Frame() = %d, want 2", got)
	}
	if got := c.Frame(); got != 2 {
		t.Errorf("second Frame() = %d, want 2", got)
	}
	if got := c.Tick(); got != 2 {
		t.Errorf("Tick() after Frame() = %d, want 2", got)
	}
}

func TestCyclesPerFrameIsConstant(t *testing.T) {
	c := NewClock()
	if got := c.CyclesPerFrame(); got != 300_000 {
		t.Errorf("CyclesPerFrame() = %d, want 300000", got)
	}
	c.Tick()
	if got := c.CyclesPerFrame(); got != 300_000 {
		t.Errorf("CyclesPerFrame() after Tick = %d, want 300000", got)
	}
}

func TestBuilderOptions(t *testing.T) {
	c := NewClock(WithCyclesPerFrame(1000), WithStartFrame(5))
	if got := c.CyclesPerFrame(); got != 1000 {
		t.Errorf("CyclesPerFrame() = %d, want 1000", got)
	}
	if got := c.Tick(); got != 5 {
		t.Errorf("Tick() = %d, want 5", got)
	}

	c = NewClock(WithCyclesPerFrame(0))
	if got := c.CyclesPerFrame(); got != CyclesPerFrame {
		t.Errorf("CyclesPerFrame() = %d, want default %d", got, CyclesPerFrame)
	}
}
