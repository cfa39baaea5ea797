// Package opengl implements renderer.Device on OpenGL 4.1 core through go-gl.
// Every method must be called on the thread that owns the current context.
package opengl

import (
	"fmt"
	"log/slog"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cube-renderer/renderer"
)

// Device is the go-gl rendering context.
type Device struct{}

var _ renderer.Device = (*Device)(nil)

// NewDevice loads the GL function pointers for the current context.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	var maxAttribs int32
	gl.GetIntegerv(gl.MAX_VERTEX_ATTRIBS, &maxAttribs)
	slog.Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		"max_vertex_attribs", maxAttribs)
	return &Device{}, nil
}

// ── Shaders & programs ───────────────────────────────────────────────────────

func (d *Device) CreateShader(stage renderer.ShaderStage) uint32 {
	switch stage {
	case renderer.FragmentStage:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return gl.CreateShader(gl.VERTEX_SHADER)
	}
}

func (d *Device) ShaderSource(shader uint32, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLog(shader uint32) string {
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (d *Device) CreateProgram() uint32 { return gl.CreateProgram() }

func (d *Device) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (d *Device) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }

func (d *Device) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

// ── Uniforms ─────────────────────────────────────────────────────────────────

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) Uniform1i(location, v int32) { gl.Uniform1i(location, v) }

func (d *Device) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (d *Device) Uniform3f(location int32, x, y, z float32) { gl.Uniform3f(location, x, y, z) }

// UniformMatrix4 uploads m as-is; mgl32 matrices are column-major like GLSL.
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// ── Buffers & vertex arrays ──────────────────────────────────────────────────

func bufferTarget(t renderer.BufferTarget) uint32 {
	if t == renderer.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) BindBuffer(target renderer.BufferTarget, buffer uint32) {
	gl.BindBuffer(bufferTarget(target), buffer)
}

func (d *Device) BufferFloats(target renderer.BufferTarget, data []float32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) BufferUints(target renderer.BufferTarget, data []uint32) {
	if len(data) == 0 {
		gl.BufferData(bufferTarget(target), 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(bufferTarget(target), len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (d *Device) VertexAttribPointer(index uint32, components, stride, offset int32) {
	gl.VertexAttribPointer(index, components, gl.FLOAT, false, stride, gl.PtrOffset(int(offset)))
}

func (d *Device) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (d *Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

// ── Textures ─────────────────────────────────────────────────────────────────

func (d *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (d *Device) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (d *Device) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

func (d *Device) TexImageRGBA(width, height int32, pixels []byte) {
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels),
	)
}

func (d *Device) SetTextureParams(wrap renderer.WrapMode) {
	mode := int32(gl.REPEAT)
	if wrap == renderer.WrapMirroredRepeat {
		mode = gl.MIRRORED_REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, mode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
}

func (d *Device) GenerateMipmap() { gl.GenerateMipmap(gl.TEXTURE_2D) }

func (d *Device) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

// ── Frame ────────────────────────────────────────────────────────────────────

func (d *Device) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (d *Device) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (d *Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}

func (d *Device) DrawArrays(first, count int32) { gl.DrawArrays(gl.TRIANGLES, first, count) }

func (d *Device) DrawElements(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, nil)
}
