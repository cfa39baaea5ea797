package scene

import "cube-renderer/input"

// FrameInput summarises the requests raised by one frame's input that the
// frame loop has to act on itself.
type FrameInput struct {
	Quit bool

	Resized       bool
	Width, Height int

	SaveRequested bool
	LoadRequested bool

	// CaptureChanged reports that Captured flipped this frame.
	CaptureChanged bool
	Captured       bool
}

// Controller maps polled events and held keys onto a Camera.
type Controller struct {
	camera   *Camera
	start    CameraState
	captured bool
}

// NewController drives c. The pose of c at this point is the reset pose.
// Mouse look starts enabled.
func NewController(c *Camera) *Controller {
	return &Controller{
		camera:   c,
		start:    StateOf(c),
		captured: true,
	}
}

func (ctl *Controller) Camera() *Camera { return ctl.camera }

// Captured reports whether mouse motion currently steers the camera.
func (ctl *Controller) Captured() bool { return ctl.captured }

// Update applies the frame's events, then translates the camera for every
// movement key held in keys.
func (ctl *Controller) Update(events []input.Event, keys input.KeyState, deltaTime float32) FrameInput {
	var out FrameInput
	for _, ev := range events {
		switch ev.Kind {
		case input.EventQuit:
			out.Quit = true
		case input.EventResize:
			out.Resized = true
			out.Width, out.Height = ev.Width, ev.Height
		case input.EventKeyDown:
			ctl.handleKey(ev.Key, &out)
		case input.EventMouseMotion:
			if ctl.captured {
				// screen y grows downwards; positive pitch looks up
				ctl.camera.ProcessMouseMovement(float32(ev.DX), float32(-ev.DY))
			}
		case input.EventScroll:
			ctl.camera.ProcessMouseScroll(float32(ev.DY))
		}
	}
	out.Captured = ctl.captured

	if keys == nil {
		return out
	}
	if keys.IsKeyDown(input.KeyW) || keys.IsKeyDown(input.KeyUp) {
		ctl.camera.ProcessKeyboard(Forward, deltaTime)
	}
	if keys.IsKeyDown(input.KeyS) || keys.IsKeyDown(input.KeyDown) {
		ctl.camera.ProcessKeyboard(Backward, deltaTime)
	}
	if keys.IsKeyDown(input.KeyA) || keys.IsKeyDown(input.KeyLeft) {
		ctl.camera.ProcessKeyboard(Left, deltaTime)
	}
	if keys.IsKeyDown(input.KeyD) || keys.IsKeyDown(input.KeyRight) {
		ctl.camera.ProcessKeyboard(Right, deltaTime)
	}
	return out
}

func (ctl *Controller) handleKey(key input.Key, out *FrameInput) {
	switch key {
	case input.KeyEscape:
		out.Quit = true
	case input.KeyBackspace:
		ctl.start.Apply(ctl.camera)
	case input.KeyF5:
		out.SaveRequested = true
	case input.KeyF9:
		out.LoadRequested = true
	case input.KeyTab:
		ctl.captured = !ctl.captured
		out.CaptureChanged = !out.CaptureChanged
	}
}
