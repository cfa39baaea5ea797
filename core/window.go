package core

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cube-renderer/input"
)

// GLFW and the GL context must stay on the main thread.
func init() {
	runtime.LockOSThread()
}

// Window is a GLFW window owning an OpenGL 4.1 core context. Width and Height
// track the framebuffer size in pixels.
type Window struct {
	Handle *glfw.Window
	Width  int
	Height int
	Title  string

	events   *input.Queue
	captured bool
}

var _ input.KeyState = (*Window)(nil)

type WindowConfig struct {
	Width      int
	Height     int
	Title      string
	Resizable  bool
	VSync      bool
	Fullscreen bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "Cube Renderer",
		Resizable:  true,
		VSync:      true,
		Fullscreen: false,
	}
}

// NewWindow opens the window and makes its context current on the calling
// thread.
func NewWindow(config WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolToInt(config.Resizable))

	monitor := (*glfw.Monitor)(nil)
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	handle, err := glfw.CreateWindow(config.Width, config.Height, config.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	handle.MakeContextCurrent()
	glfw.SwapInterval(boolToInt(config.VSync))

	// HiDPI displays report a framebuffer larger than the window
	fbW, fbH := handle.GetFramebufferSize()

	window := &Window{
		Handle: handle,
		Width:  fbW,
		Height: fbH,
		Title:  config.Title,
		events: input.NewQueue(),
	}
	window.installCallbacks()

	slog.Info("window created", "width", fbW, "height", fbH, "vsync", config.VSync)
	return window, nil
}

func (w *Window) installCallbacks() {
	w.Handle.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width = width
		w.Height = height
		w.events.PushResize(width, height)
	})
	w.Handle.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Press {
			w.events.PushKey(input.Key(key))
		}
	})
	w.Handle.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events.PushCursor(x, y)
	})
	w.Handle.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		w.events.PushScroll(yoff)
	})
	w.Handle.SetCloseCallback(func(_ *glfw.Window) {
		w.events.PushQuit()
	})
}

// PollEvents processes pending window-system events and returns them in
// arrival order. The slice is only valid until the next call.
func (w *Window) PollEvents() []input.Event {
	glfw.PollEvents()
	return w.events.Drain()
}

func (w *Window) ShouldClose() bool {
	return w.Handle.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Handle.SetShouldClose(v)
}

// IsKeyDown reports whether key is currently held.
func (w *Window) IsKeyDown(key input.Key) bool {
	if key < 0 {
		return false
	}
	return w.Handle.GetKey(glfw.Key(key)) == glfw.Press
}

// SetCursorCaptured hides and locks the cursor for mouse look, or releases
// it. Cursor deltas restart from the next sample either way.
func (w *Window) SetCursorCaptured(captured bool) {
	if captured {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.Handle.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		w.Handle.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	w.captured = captured
	w.events.ResetCursor()
}

func (w *Window) CursorCaptured() bool { return w.captured }

func (w *Window) SwapBuffers() {
	w.Handle.SwapBuffers()
}

func (w *Window) GetFramebufferSize() (int, int) {
	return w.Handle.GetFramebufferSize()
}

func (w *Window) SetTitle(title string) {
	w.Handle.SetTitle(title)
	w.Title = title
}

func (w *Window) Destroy() {
	w.Handle.Destroy()
	glfw.Terminate()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
