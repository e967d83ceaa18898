package main

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/quads/internal/app"
	"github.com/irfansharif/quads/internal/render"
)

// Button-mask bits beyond app.PrimaryButton, in the same layout as DOM
// MouseEvent.buttons. Only the primary button enables dragging.
const (
	secondaryButton = 1 << 1
	auxiliaryButton = 1 << 2
)

// EventHandlers forwards GLFW events to the application.
type EventHandlers struct {
	application *app.App
	window      *glfw.Window
	renderer    *render.Renderer
}

// NewEventHandlers creates the event handlers and registers them with the
// window.
func NewEventHandlers(application *app.App, window *glfw.Window, renderer *render.Renderer) *EventHandlers {
	eh := &EventHandlers{
		application: application,
		window:      window,
		renderer:    renderer,
	}
	eh.SetupCallbacks(window)
	return eh
}

// SetupCallbacks configures all GLFW event callbacks.
func (eh *EventHandlers) SetupCallbacks(window *glfw.Window) {
	window.SetCursorPosCallback(func(wnd *glfw.Window, xpos, ypos float64) {
		eh.handleCursorPos(xpos, ypos) // the only pointer handler: hover, selection and dragging
	})
	window.SetKeyCallback(func(wnd *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		eh.handleKey(key, action) // for pausing the redraw loop
	})
	window.SetSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.handleWindowSize(newW, newH) // pointer coordinate mapping
	})
	window.SetFramebufferSizeCallback(func(wnd *glfw.Window, newW, newH int) {
		eh.handleFramebufferSize(newW, newH) // GL viewport
	})
}

// handleCursorPos handles pointer movement.
func (eh *EventHandlers) handleCursorPos(xpos, ypos float64) {
	eh.application.HandlePointer(xpos, ypos, eh.buttonMask())
}

// buttonMask returns the currently held mouse buttons as a bitmask.
func (eh *EventHandlers) buttonMask() int {
	mask := 0
	if eh.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press {
		mask |= app.PrimaryButton
	}
	if eh.window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		mask |= secondaryButton
	}
	if eh.window.GetMouseButton(glfw.MouseButtonMiddle) == glfw.Press {
		mask |= auxiliaryButton
	}
	return mask
}

// handleKey handles keyboard input events.
func (eh *EventHandlers) handleKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return // nothing to do
	}

	switch key {
	case glfw.KeyEscape:
		scheduler := eh.application.Scheduler
		if scheduler.State() == app.Pending {
			scheduler.Stop()
			log.Printf("Redraw loop paused after %d frames", scheduler.Frames())
		} else {
			scheduler.Start()
			log.Printf("Redraw loop resumed")
		}
	case glfw.KeyQ:
		eh.window.SetShouldClose(true)
	}
}

// handleWindowSize handles window resize events. Minimized windows report a
// zero size and are ignored.
func (eh *EventHandlers) handleWindowSize(newW, newH int) {
	if newW <= 0 || newH <= 0 {
		return
	}
	eh.application.View.SetViewport(newW, newH)
}

// handleFramebufferSize keeps the GL viewport in sync with the framebuffer.
func (eh *EventHandlers) handleFramebufferSize(newW, newH int) {
	if newW <= 0 || newH <= 0 {
		return
	}
	eh.renderer.SetViewport(newW, newH)
}
