package renderer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex+fragment shader program.
type Program struct {
	dev       Device
	id        uint32
	locations map[string]int32
	warned    map[string]bool
	released  bool
}

// NewProgram compiles both stages and links them. The returned error is a
// *ShaderCompileError or a *ProgramLinkError; no GPU objects survive a
// failure. On success the shader objects are already deleted and only the
// program handle is owned by the Program.
func NewProgram(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compileShader(dev, VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(dev, FragmentStage, fragmentSrc)
	if err != nil {
		dev.DeleteShader(vs)
		return nil, err
	}

	id := dev.CreateProgram()
	dev.AttachShader(id, vs)
	dev.AttachShader(id, fs)
	dev.LinkProgram(id)

	linked := dev.ProgramLinked(id)
	var linkLog string
	if !linked {
		linkLog = dev.ProgramInfoLog(id)
	}

	dev.DetachShader(id, vs)
	dev.DetachShader(id, fs)
	dev.DeleteShader(vs)
	dev.DeleteShader(fs)

	if !linked {
		dev.DeleteProgram(id)
		return nil, &ProgramLinkError{Log: linkLog}
	}

	return &Program{
		dev:       dev,
		id:        id,
		locations: make(map[string]int32),
		warned:    make(map[string]bool),
	}, nil
}

func compileShader(dev Device, stage ShaderStage, src string) (uint32, error) {
	if strings.IndexByte(src, 0) >= 0 {
		return 0, &ShaderCompileError{Stage: stage, Log: "source contains a NUL byte"}
	}

	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, src)
	dev.CompileShader(shader)
	if !dev.ShaderCompiled(shader) {
		log := dev.ShaderInfoLog(shader)
		dev.DeleteShader(shader)
		if strings.TrimSpace(log) == "" {
			log = "compilation failed without a log"
		}
		return 0, &ShaderCompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

func (p *Program) ID() uint32 { return p.id }

// Use makes p the active program.
func (p *Program) Use() {
	p.dev.UseProgram(p.id)
}

// Uniform returns the location of name, or ErrUniformNotFound.
func (p *Program) Uniform(name string) (int32, error) {
	loc := p.lookup(name)
	if loc < 0 {
		return -1, fmt.Errorf("%s: %w", name, ErrUniformNotFound)
	}
	return loc, nil
}

// location is the lenient lookup behind the Set* methods. A miss is logged
// once per name, even when Uniform resolved it first.
func (p *Program) location(name string) int32 {
	loc := p.lookup(name)
	if loc < 0 && !p.warned[name] {
		p.warned[name] = true
		slog.Warn("uniform not found, writes will be skipped", "program", p.id, "uniform", name)
	}
	return loc
}

func (p *Program) lookup(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.id, name)
	p.locations[name] = loc
	return loc
}

// The setters activate p before writing. A name that does not resolve is
// skipped.

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		p.Use()
		p.dev.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		p.Use()
		p.dev.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		p.Use()
		p.dev.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		p.Use()
		p.dev.UniformMatrix4(loc, m)
	}
}

// Release deletes the program. Calls after the first do nothing.
func (p *Program) Release() {
	if p.released {
		return
	}
	p.released = true
	p.dev.DeleteProgram(p.id)
}
