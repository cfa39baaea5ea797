package main

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"cube-renderer/renderer"
)

// countingDevice tracks live GPU objects by kind. Shaders compile only when
// the source has a main function; every uniform resolves.
type countingDevice struct {
	next     uint32
	live     map[uint32]string
	compiled map[uint32]bool
}

var _ renderer.Device = (*countingDevice)(nil)

func newCountingDevice() *countingDevice {
	return &countingDevice{
		live:     make(map[uint32]string),
		compiled: make(map[uint32]bool),
	}
}

func (d *countingDevice) alloc(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *countingDevice) free(id uint32) { delete(d.live, id) }

// leaked reports the live objects by kind.
func (d *countingDevice) leaked() map[string]int {
	out := make(map[string]int)
	for _, kind := range d.live {
		out[kind]++
	}
	return out
}

func (d *countingDevice) CreateShader(renderer.ShaderStage) uint32 { return d.alloc("shader") }

func (d *countingDevice) ShaderSource(shader uint32, src string) {
	d.compiled[shader] = strings.Contains(src, "void main(")
}

func (d *countingDevice) CompileShader(uint32) {}

func (d *countingDevice) ShaderCompiled(shader uint32) bool { return d.compiled[shader] }

func (d *countingDevice) ShaderInfoLog(uint32) string { return "error: main function not found" }

func (d *countingDevice) DeleteShader(shader uint32) { d.free(shader) }

func (d *countingDevice) CreateProgram() uint32 { return d.alloc("program") }

func (d *countingDevice) AttachShader(program, shader uint32) {}

func (d *countingDevice) DetachShader(program, shader uint32) {}

func (d *countingDevice) LinkProgram(uint32) {}

func (d *countingDevice) ProgramLinked(uint32) bool { return true }

func (d *countingDevice) ProgramInfoLog(uint32) string { return "" }

func (d *countingDevice) DeleteProgram(program uint32) { d.free(program) }

func (d *countingDevice) UseProgram(uint32) {}

func (d *countingDevice) UniformLocation(uint32, string) int32 { return 0 }

func (d *countingDevice) Uniform1i(location, v int32) {}

func (d *countingDevice) Uniform1f(location int32, v float32) {}

func (d *countingDevice) Uniform3f(location int32, x, y, z float32) {}

func (d *countingDevice) UniformMatrix4(location int32, m mgl32.Mat4) {}

func (d *countingDevice) GenBuffer() uint32 { return d.alloc("buffer") }

func (d *countingDevice) BindBuffer(renderer.BufferTarget, uint32) {}

func (d *countingDevice) BufferFloats(renderer.BufferTarget, []float32) {}

func (d *countingDevice) BufferUints(renderer.BufferTarget, []uint32) {}

func (d *countingDevice) DeleteBuffer(buffer uint32) { d.free(buffer) }

func (d *countingDevice) GenVertexArray() uint32 { return d.alloc("vao") }

func (d *countingDevice) BindVertexArray(uint32) {}

func (d *countingDevice) VertexAttribPointer(index uint32, components, stride, offset int32) {}

func (d *countingDevice) EnableVertexAttribArray(uint32) {}

func (d *countingDevice) DeleteVertexArray(vao uint32) { d.free(vao) }

func (d *countingDevice) GenTexture() uint32 { return d.alloc("texture") }

func (d *countingDevice) ActiveTexture(uint32) {}

func (d *countingDevice) BindTexture(uint32) {}

func (d *countingDevice) TexImageRGBA(width, height int32, pixels []byte) {}

func (d *countingDevice) SetTextureParams(renderer.WrapMode) {}

func (d *countingDevice) GenerateMipmap() {}

func (d *countingDevice) DeleteTexture(texture uint32) { d.free(texture) }

func (d *countingDevice) Viewport(x, y, width, height int32) {}

func (d *countingDevice) ClearColor(r, g, b, a float32) {}

func (d *countingDevice) Clear() {}

func (d *countingDevice) EnableDepthTest() {}

func (d *countingDevice) DrawArrays(first, count int32) {}

func (d *countingDevice) DrawElements(count int32) {}
