package app

import (
	"errors"
	"testing"
)

func TestSchedulerRunsContinuously(t *testing.T) {
	clock := &LoopClock{}
	draws := 0
	s := NewScheduler(clock, func() error { draws++; return nil })

	if s.State() != Idle {
		t.Fatalf("new scheduler is %s, want idle", s.State())
	}
	if clock.Tick() {
		t.Fatal("idle scheduler requested a frame")
	}

	s.Start()
	if s.State() != Pending {
		t.Fatalf("started scheduler is %s, want pending", s.State())
	}
	for i := 0; i < 10; i++ {
		if !clock.Tick() {
			t.Fatalf("no frame pending after %d frames", i)
		}
	}
	if draws != 10 || s.Frames() != 10 {
		t.Fatalf("draws = %d, frames = %d, want 10", draws, s.Frames())
	}
	if s.State() != Pending {
		t.Fatalf("scheduler is %s after drawing, want pending", s.State())
	}
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	clock := &countingClock{}
	s := NewScheduler(clock, func() error { return nil })
	s.Start()
	s.Start()
	if clock.requests != 1 {
		t.Fatalf("requests = %d, want 1", clock.requests)
	}
}

func TestSchedulerStop(t *testing.T) {
	clock := &countingClock{}
	draws := 0
	s := NewScheduler(clock, func() error { draws++; return nil })

	s.Start()
	s.Stop()
	if s.State() != Idle {
		t.Fatalf("stopped scheduler is %s, want idle", s.State())
	}

	// The frame requested before Stop still arrives, and is dropped.
	clock.deliver()
	if draws != 0 {
		t.Fatalf("stale frame was drawn")
	}
	if clock.requests != 1 {
		t.Fatalf("stale frame requested another: %d requests", clock.requests)
	}
}

func TestSchedulerRestartDropsStaleFrame(t *testing.T) {
	clock := &countingClock{}
	draws := 0
	s := NewScheduler(clock, func() error { draws++; return nil })

	s.Start()
	stale := clock.callbacks[0]
	s.Stop()
	s.Start()

	stale()
	if draws != 0 {
		t.Fatalf("frame from before the restart was drawn")
	}
	clock.callbacks[1]()
	if draws != 1 {
		t.Fatalf("draws = %d, want 1", draws)
	}
}

func TestSchedulerHaltsOnError(t *testing.T) {
	clock := &LoopClock{}
	errUpload := errors.New("buffer upload rejected")
	draws := 0
	s := NewScheduler(clock, func() error {
		draws++
		if draws == 3 {
			return errUpload
		}
		return nil
	})

	s.Start()
	for clock.Tick() {
	}

	if draws != 3 {
		t.Fatalf("draws = %d, want 3", draws)
	}
	if s.State() != Idle {
		t.Fatalf("scheduler is %s after error, want idle", s.State())
	}
	if !errors.Is(s.Err(), errUpload) {
		t.Fatalf("Err() = %v, want %v", s.Err(), errUpload)
	}

	s.Start()
	if s.Err() != nil {
		t.Fatalf("Start did not clear the previous error")
	}
}

// countingClock records requested callbacks without delivering them.
type countingClock struct {
	requests  int
	callbacks []func()
}

func (c *countingClock) RequestFrame(cb func()) {
	c.requests++
	c.callbacks = append(c.callbacks, cb)
}

func (c *countingClock) deliver() {
	cbs := c.callbacks
	c.callbacks = nil
	for _, cb := range cbs {
		cb()
	}
}
