// Package app wires the editor state to its two event sources: pointer
// events from the host input system and frame callbacks from the host frame
// clock. Both are expected on a single goroutine, one callback at a time, so
// nothing here takes a lock; a host that dispatches callbacks concurrently
// must serialize calls into App itself.
package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/irfansharif/quads/internal/editor"
	"github.com/irfansharif/quads/internal/frame"
)

// PrimaryButton is the button-mask bit that enables dragging.
const PrimaryButton = 1 << 0

var inputLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("QUADS_DEBUG_INPUT") == "1" {
		inputLogger = log.New(os.Stdout, "[input] ", log.Ltime|log.Lmsgprefix)
	}
}

// Renderer is the drawing backend. Each frame is a Clear followed by an
// Upload and Draw per shape.
type Renderer interface {
	Clear()
	Upload(vertexColourBuffer []float32) error
	Draw(kind frame.Primitive, vertexCount int) error
}

// Stats tracks per-frame metrics.
type Stats struct {
	LastShapes     int     // draw calls in the last frame
	LastVertices   int     // vertices uploaded in the last frame
	LastDrawTimeUs float64 // time spent in the last DrawFrame call in microseconds
}

// App encapsulates the editor state and the components acting on it.
type App struct {
	State     *editor.State
	View      *View
	Renderer  Renderer
	Scheduler *Scheduler

	stats Stats
}

// NewApp creates an application over the given state. The redraw loop is
// created idle; call Scheduler.Start to begin drawing.
func NewApp(state *editor.State, view *View, renderer Renderer, clock FrameClock) *App {
	a := &App{
		State:    state,
		View:     view,
		Renderer: renderer,
	}
	a.Scheduler = NewScheduler(clock, a.DrawFrame)
	return a
}

// HandlePointer processes one pointer-move event: pixel coordinates relative
// to the same space as the view's canvas, and the button mask. The cursor
// follows the pointer, hover flags and selection are recomputed, and the
// selected vertex (if any) is dragged to the pointer.
func (a *App) HandlePointer(px, py float64, buttons int) {
	p := a.View.ToModel(px, py)
	s := a.State

	s.Cursor.Pos = p
	wasSelected := s.Selected
	s.PointerDown = buttons&PrimaryButton != 0
	s.HitTest(p)

	if s.Selected != nil && (wasSelected == nil || *wasSelected != *s.Selected) {
		inputLogger.Printf("selected %s at (%.3f, %.3f)", s.Selected, p.X, p.Y)
	} else if s.Selected == nil && wasSelected != nil {
		inputLogger.Printf("released %s at (%.3f, %.3f)", wasSelected, p.X, p.Y)
	}

	if s.Selected != nil {
		s.Drag(p)
	}
}

// DrawFrame derives the frame from the current state and hands it to the
// renderer. It is the scheduler's per-frame callback.
func (a *App) DrawFrame() error {
	startTime := time.Now()

	f, err := frame.Build(a.State)
	if err != nil {
		return fmt.Errorf("building frame: %w", err)
	}

	a.Renderer.Clear()
	for i, shape := range f.Shapes {
		if err := a.Renderer.Upload(shape.Data); err != nil {
			return fmt.Errorf("uploading shape %d: %w", i, err)
		}
		if err := a.Renderer.Draw(shape.Kind, shape.VertexCount()); err != nil {
			return fmt.Errorf("drawing shape %d (%s): %w", i, shape.Kind, err)
		}
	}

	a.stats = Stats{
		LastShapes:     len(f.Shapes),
		LastVertices:   f.VertexCount(),
		LastDrawTimeUs: float64(time.Since(startTime).Microseconds()),
	}
	return nil
}

// Stats returns the metrics of the last frame drawn.
func (a *App) Stats() Stats {
	return a.stats
}
