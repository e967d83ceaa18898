package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/quads/internal/app"
	"github.com/irfansharif/quads/internal/config"
	"github.com/irfansharif/quads/internal/editor"
	"github.com/irfansharif/quads/internal/render"
)

const logFlags = log.Ltime | log.Lshortfile

// mainSurface is the id the editor window is registered under.
const mainSurface = config.DefaultSurface

const frameWaitTimeout = 1.0 / 60 // seconds to wait for events while the redraw loop is paused

var runtimeLogger *log.Logger = log.New(io.Discard, "", 0)

var _ app.Renderer = (*render.Renderer)(nil)

func init() {
	// OpenGL contexts are tied to specific OS threads - let's pin to just one.
	runtime.LockOSThread()
	log.SetFlags(logFlags)

	if os.Getenv("QUADS_DEBUG_RUNTIME") == "1" {
		runtimeLogger = log.New(os.Stdout, "[runtime] ", log.Ltime|log.Lmsgprefix)
	}
}

func makeTitle(title string, fps float64, avgFrameTime float64, stats app.Stats, state *editor.State, scheduler *app.Scheduler) string {
	selection := "none"
	if state.Selected != nil {
		selection = state.Selected.String()
	}
	if scheduler.State() == app.Idle {
		return fmt.Sprintf("%s (paused, %d quads, %s selection)", title, len(state.Quads), state.Mode)
	}
	return fmt.Sprintf("%s (%.1f FPS, %.2fms/frame, %d quads, %d draw calls/frame, %s selection, selected: %s)",
		title,
		fps,
		avgFrameTime,
		len(state.Quads),
		stats.LastShapes,
		state.Mode,
		selection,
	)
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file with the initial layout")
	selection := flag.String("selection", "", "selection mode, shared or per-quad (overrides config)")
	surface := flag.String("surface", "", "surface id to render into (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *selection != "" {
		cfg.Selection = *selection
	}
	if *surface != "" {
		cfg.Surface = *surface
	}
	layout, err := cfg.Layout()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// Configure GLFW window hints - use OpenGL 4.1.
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	surfaces := render.NewSurfaces()
	surfaces.Register(mainSurface, window)
	renderer, err := render.ConfigureSurface(surfaces, cfg.Surface)
	if err != nil {
		log.Fatalf("Failed to configure surface: %v", err)
	}
	defer renderer.Destroy()

	// Pointer coordinates are reported in window (not framebuffer) pixels.
	ww, wh := window.GetSize()
	clock := &app.LoopClock{}
	application := app.NewApp(editor.NewState(layout), app.NewView(ww, wh), renderer, clock)
	if err := application.State.Validate(); err != nil {
		log.Fatalf("Initial layout invalid: %v", err)
	}

	NewEventHandlers(application, window, renderer)
	application.Scheduler.Start()

	frameCount, frameTimeSum := 0, 0.0
	lastFPSUpdate := time.Now()

	// Main loop.
	for !window.ShouldClose() {
		frameStart := time.Now()

		if !clock.Tick() {
			// Paused: nothing to draw until an event resumes the loop.
			glfw.WaitEventsTimeout(frameWaitTimeout)
		} else {
			if err := application.Scheduler.Err(); err != nil {
				log.Fatalf("Redraw loop halted: %v", err)
			}
			window.SwapBuffers()
			glfw.PollEvents()

			frameTimeSum += time.Since(frameStart).Seconds() * 1000.0 // ms
			frameCount++

			if frameCount%100 == 0 { // Periodically validate quad integrity.
				if err := application.State.Validate(); err != nil {
					log.Fatalf("Quad integrity invalid: %v", err)
				}
			}
		}

		now := time.Now()
		if now.Sub(lastFPSUpdate) >= time.Second {
			fps := float64(frameCount) / now.Sub(lastFPSUpdate).Seconds()
			avgFrameTime := 0.0
			if frameCount > 0 {
				avgFrameTime = frameTimeSum / float64(frameCount)
			}
			frameCount, frameTimeSum = 0, 0.0
			lastFPSUpdate = now

			stats := application.Stats()
			window.SetTitle(makeTitle(cfg.Window.Title, fps, avgFrameTime, stats, application.State, application.Scheduler))

			runtimeLogger.Println("=== Performance statistics ===")
			runtimeLogger.Printf("Frame rate:     %.1f FPS (%.2f ms/frame, %d draw calls/frame)", fps, avgFrameTime, stats.LastShapes)
			runtimeLogger.Printf("Shapes:         %d quads, %d vertices uploaded/frame", len(application.State.Quads), stats.LastVertices)
			runtimeLogger.Printf("Render time:    %.2f µs (last frame)", stats.LastDrawTimeUs)
			runtimeLogger.Printf("Frames drawn:   %d (scheduler %s)", application.Scheduler.Frames(), application.Scheduler.State())
			runtimeLogger.Println("==============================")
		}
	}
}
