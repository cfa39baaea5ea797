package renderer

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage selects the pipeline stage a shader object is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// BufferTarget is the binding point of a buffer object.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

// WrapMode is the texture coordinate wrapping applied on both axes.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
)

// Device is the rendering context. Every GPU call made by this package goes
// through it, so the context is an explicit value instead of ambient global
// state. Implementations must be used from the goroutine that owns the
// context (see core.Window); none of the methods are safe for concurrent use.
//
// Object handles are non-zero on success. Uniform locations are -1 when the
// name does not resolve. Attribute strides and offsets are in bytes.
type Device interface {
	// Shaders
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	// Programs
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	// Uniforms, written to the active program
	UniformLocation(program uint32, name string) int32
	Uniform1i(location, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x, y, z float32)
	UniformMatrix4(location int32, m mgl32.Mat4)

	// Buffers and vertex arrays; Buffer* upload static data to the buffer
	// bound at target.
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloats(target BufferTarget, data []float32)
	BufferUints(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	VertexAttribPointer(index uint32, components, stride, offset int32)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(vao uint32)

	// 2D textures; TexImageRGBA, SetTextureParams and GenerateMipmap act on
	// the texture bound to the active unit.
	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)
	TexImageRGBA(width, height int32, pixels []byte)
	SetTextureParams(wrap WrapMode)
	GenerateMipmap()
	DeleteTexture(texture uint32)

	// Frame state and draws. Draws always use triangles; DrawElements reads
	// uint32 indices from the bound element buffer.
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	EnableDepthTest()
	DrawArrays(first, count int32)
	DrawElements(count int32)
}
