package renderer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUniformNotFound is returned by Program.Uniform when the name does not
	// resolve to an active uniform.
	ErrUniformNotFound = errors.New("uniform not found")

	// ErrInvalidGeometry is wrapped by every NewModel validation failure.
	ErrInvalidGeometry = errors.New("invalid geometry")
)

// ShaderCompileError reports a shader stage that failed to compile. Log holds
// the driver's info log.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, strings.TrimSpace(e.Log))
}

// ProgramLinkError reports a program that failed to link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return "link program: " + strings.TrimSpace(e.Log)
}
