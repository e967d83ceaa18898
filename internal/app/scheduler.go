package app

import (
	"fmt"
	"io"
	"log"
	"os"
)

var frameLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("QUADS_DEBUG_FRAMES") == "1" {
		frameLogger = log.New(os.Stdout, "[frames] ", log.Ltime|log.Lmsgprefix)
	}
}

// FrameClock is the host's frame-pacing primitive: it invokes the callback
// once, at the next display refresh.
type FrameClock interface {
	RequestFrame(func())
}

// LoopClock is a FrameClock for hosts that drive their own render loop. At
// most one callback is pending; Tick delivers it.
type LoopClock struct {
	pending func()
}

var _ FrameClock = (*LoopClock)(nil)

// RequestFrame schedules cb for the next Tick, replacing any pending callback.
func (c *LoopClock) RequestFrame(cb func()) {
	c.pending = cb
}

// Tick delivers the pending callback, if any, and reports whether one ran.
func (c *LoopClock) Tick() bool {
	cb := c.pending
	if cb == nil {
		return false
	}
	c.pending = nil
	cb()
	return true
}

// SchedulerState is the state of the redraw loop.
type SchedulerState int

const (
	Idle    SchedulerState = iota // no frame pending
	Pending                       // a redraw has been requested
)

func (s SchedulerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	default:
		return "unknown"
	}
}

// Scheduler drives a continuous redraw: every delivered frame runs the draw
// function and requests the next frame. It never blocks. A draw error halts
// the loop rather than skipping frames; the error is kept for Err.
//
// Scheduler is not safe for concurrent use; the frame clock must deliver
// callbacks on the same goroutine that calls Start and Stop.
type Scheduler struct {
	clock FrameClock
	draw  func() error

	state  SchedulerState
	epoch  uint64 // bumped on every stop; frames requested in older epochs are dropped
	frames uint64
	err    error
}

// NewScheduler creates an idle scheduler.
func NewScheduler(clock FrameClock, draw func() error) *Scheduler {
	return &Scheduler{clock: clock, draw: draw}
}

// Start moves the scheduler from Idle to Pending and requests a frame.
// Starting a running scheduler does nothing. Start clears any previous error.
func (s *Scheduler) Start() {
	if s.state == Pending {
		return
	}
	s.err = nil
	s.state = Pending
	s.request()
}

// Stop returns the scheduler to Idle. A frame already requested from the
// clock is discarded when delivered.
func (s *Scheduler) Stop() {
	if s.state == Idle {
		return
	}
	s.state = Idle
	s.epoch++
}

// State returns the current scheduler state.
func (s *Scheduler) State() SchedulerState { return s.state }

// Err returns the draw error that halted the loop, if any.
func (s *Scheduler) Err() error { return s.err }

// Frames returns the number of frames drawn successfully.
func (s *Scheduler) Frames() uint64 { return s.frames }

func (s *Scheduler) request() {
	epoch := s.epoch
	s.clock.RequestFrame(func() { s.onFrame(epoch) })
}

func (s *Scheduler) onFrame(epoch uint64) {
	if s.state != Pending || epoch != s.epoch {
		return // stopped since this frame was requested
	}

	if err := s.draw(); err != nil {
		s.err = fmt.Errorf("frame %d: %w", s.frames, err)
		s.state = Idle
		s.epoch++
		frameLogger.Printf("redraw loop halted: %v", s.err)
		return
	}
	s.frames++
	s.request()
}
