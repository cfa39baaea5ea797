package renderer

import (
	"log/slog"

	"cube-renderer/scene"
)

// Renderer holds per-frame state on top of a Device: viewport size, aspect
// ratio and draw statistics.
type Renderer struct {
	dev    Device
	width  int
	height int
	aspect float32

	// Per-frame stats, reset by BeginFrame
	drawCalls int
	triangles int
}

func NewRenderer(dev Device, width, height int) *Renderer {
	dev.EnableDepthTest()
	r := &Renderer{dev: dev, aspect: 1}
	r.Resize(width, height)
	slog.Debug("renderer initialized", "width", width, "height", height)
	return r
}

func (r *Renderer) Device() Device { return r.dev }

// Resize updates the viewport and aspect ratio. A zero-area size, as reported
// for minimized windows, keeps the previous values.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.aspect = float32(width) / float32(height)
	r.dev.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) Aspect() float32 { return r.aspect }

func (r *Renderer) Size() (int, int) { return r.width, r.height }

// BeginFrame clears colour and depth.
func (r *Renderer) BeginFrame(clear scene.Color) {
	r.drawCalls, r.triangles = 0, 0
	r.dev.ClearColor(clear.R, clear.G, clear.B, clear.A)
	r.dev.Clear()
}

// BindTexture binds t to texture unit (0-based).
func (r *Renderer) BindTexture(unit uint32, t *Texture) {
	r.dev.ActiveTexture(unit)
	r.dev.BindTexture(t.id)
}

// Draw draws m with p, indexed when m has an element buffer.
func (r *Renderer) Draw(p *Program, m *Model) {
	p.Use()
	r.dev.BindVertexArray(m.vao)
	if m.HasIndices() {
		r.dev.DrawElements(m.indexCount)
		r.triangles += int(m.indexCount) / 3
	} else {
		r.dev.DrawArrays(0, m.vertexCount)
		r.triangles += int(m.vertexCount) / 3
	}
	r.dev.BindVertexArray(0)
	r.drawCalls++
}

// DrawStats returns the draw calls and triangles issued since BeginFrame.
func (r *Renderer) DrawStats() (drawCalls, triangles int) {
	return r.drawCalls, r.triangles
}
