package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeDevice records calls and tracks live objects. A shader fails to compile
// when its source has no main function; a program fails to link when
// failLink is set.
type fakeDevice struct {
	next     uint32
	live     map[uint32]string
	sources  map[uint32]string
	compiled map[uint32]bool
	attached map[uint32][]uint32
	uniforms map[string]int32
	failLink bool

	calls   []string
	writes  map[int32]any
	program uint32
	vao     uint32
	unit    uint32
	bound   map[uint32]uint32 // texture unit -> texture
	deletes map[uint32]int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		live:     make(map[uint32]string),
		sources:  make(map[uint32]string),
		compiled: make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
		uniforms: map[string]int32{"model": 0, "view": 1, "projection": 2, "lightColor": 3, "texture1": 4, "mixAmount": 5, "hasTexture": 6},
		writes:   make(map[int32]any),
		bound:    make(map[uint32]uint32),
		deletes:  make(map[uint32]int),
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) alloc(kind string) uint32 {
	d.next++
	d.live[d.next] = kind
	return d.next
}

func (d *fakeDevice) free(id uint32) {
	d.deletes[id]++
	delete(d.live, id)
}

// liveCount returns the number of live objects of kind.
func (d *fakeDevice) liveCount(kind string) int {
	n := 0
	for _, k := range d.live {
		if k == kind {
			n++
		}
	}
	return n
}

func (d *fakeDevice) CreateShader(stage ShaderStage) uint32 {
	d.record("CreateShader %s", stage)
	return d.alloc("shader")
}

func (d *fakeDevice) ShaderSource(shader uint32, src string) { d.sources[shader] = src }

func (d *fakeDevice) CompileShader(shader uint32) {
	d.compiled[shader] = strings.Contains(d.sources[shader], "void main(")
}

func (d *fakeDevice) ShaderCompiled(shader uint32) bool { return d.compiled[shader] }

func (d *fakeDevice) ShaderInfoLog(shader uint32) string {
	if d.compiled[shader] {
		return ""
	}
	return "0:1(1): error: main function not found\n"
}

func (d *fakeDevice) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	d.free(shader)
}

func (d *fakeDevice) CreateProgram() uint32 { return d.alloc("program") }

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) DetachShader(program, shader uint32) {
	list := d.attached[program]
	for i, s := range list {
		if s == shader {
			d.attached[program] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (d *fakeDevice) LinkProgram(program uint32) {}
func (d *fakeDevice) ProgramLinked(program uint32) bool { return !d.failLink }
func (d *fakeDevice) ProgramInfoLog(program uint32) string {
	if d.failLink {
		return "error: vertex output 'TexCoord' not consumed\n"
	}
	return ""
}
func (d *fakeDevice) DeleteProgram(program uint32) {
	d.record("DeleteProgram %d", program)
	d.free(program)
}

func (d *fakeDevice) UseProgram(program uint32) {
	d.record("UseProgram %d", program)
	d.program = program
}

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation %s", name)
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *fakeDevice) Uniform1i(location, v int32) { d.writes[location] = v }
func (d *fakeDevice) Uniform1f(location int32, v float32) { d.writes[location] = v }
func (d *fakeDevice) Uniform3f(location int32, x, y, z float32) {
	d.writes[location] = mgl32.Vec3{x, y, z}
}
func (d *fakeDevice) UniformMatrix4(location int32, m mgl32.Mat4) { d.writes[location] = m }

func (d *fakeDevice) GenBuffer() uint32 { return d.alloc("buffer") }

func (d *fakeDevice) BindBuffer(target BufferTarget, buffer uint32) {
	d.record("BindBuffer %d %d", target, buffer)
}

func (d *fakeDevice) BufferFloats(target BufferTarget, data []float32) {
	d.record("BufferFloats %d", len(data))
}

func (d *fakeDevice) BufferUints(target BufferTarget, data []uint32) {
	d.record("BufferUints %d", len(data))
}

func (d *fakeDevice) DeleteBuffer(buffer uint32) { d.free(buffer) }

func (d *fakeDevice) GenVertexArray() uint32 { return d.alloc("vao") }

func (d *fakeDevice) BindVertexArray(vao uint32) {
	d.record("BindVertexArray %d", vao)
	d.vao = vao
}

func (d *fakeDevice) VertexAttribPointer(index uint32, components, stride, offset int32) {
	d.record("VertexAttribPointer %d %d %d %d", index, components, stride, offset)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray %d", index)
}

func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.free(vao) }

func (d *fakeDevice) GenTexture() uint32 { return d.alloc("texture") }
func (d *fakeDevice) ActiveTexture(unit uint32) { d.unit = unit }
func (d *fakeDevice) BindTexture(texture uint32) {
	d.bound[d.unit] = texture
}
func (d *fakeDevice) TexImageRGBA(width, height int32, pixels []byte) {
	d.record("TexImageRGBA %dx%d %d", width, height, len(pixels))
}
func (d *fakeDevice) SetTextureParams(wrap WrapMode) { d.record("SetTextureParams %d", wrap) }
func (d *fakeDevice) GenerateMipmap() { d.record("GenerateMipmap") }
func (d *fakeDevice) DeleteTexture(texture uint32) { d.free(texture) }

func (d *fakeDevice) Viewport(x, y, width, height int32) {
	d.record("Viewport %d %d %d %d", x, y, width, height)
}
func (d *fakeDevice) ClearColor(r, g, b, a float32) { d.record("ClearColor %g %g %g %g", r, g, b, a) }
func (d *fakeDevice) Clear() { d.record("Clear") }
func (d *fakeDevice) EnableDepthTest() { d.record("EnableDepthTest") }

func (d *fakeDevice) DrawArrays(first, count int32) {
	d.record("DrawArrays %d %d vao=%d program=%d", first, count, d.vao, d.program)
}

func (d *fakeDevice) DrawElements(count int32) {
	d.record("DrawElements %d vao=%d program=%d", count, d.vao, d.program)
}

// callsWithPrefix returns the recorded calls starting with prefix.
func (d *fakeDevice) callsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range d.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

const (
	testVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
void main() { gl_Position = vec4(aPos, 1.0); }
`
	testFragmentShader = `#version 410 core
out vec4 FragColor;
void main() { FragColor = vec4(1.0); }
`
)
