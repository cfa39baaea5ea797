package main

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cube-renderer/config"
	"cube-renderer/renderer"
	"cube-renderer/scene"
)

//go:embed shaders/*.vert shaders/*.frag
var builtinShaders embed.FS

const mixAmount = 0.2

// demoAssets owns every GPU object the demo creates.
type demoAssets struct {
	cubeProgram *renderer.Program
	lampProgram *renderer.Program
	textures    [2]*renderer.Texture
	cube        *renderer.Model
	lamp        *renderer.Model
}

// Release frees whatever was created. Safe on a partially loaded set.
func (a *demoAssets) Release() {
	for _, p := range []*renderer.Program{a.cubeProgram, a.lampProgram} {
		if p != nil {
			p.Release()
		}
	}
	for _, t := range a.textures {
		if t != nil {
			t.Release()
		}
	}
	for _, m := range []*renderer.Model{a.cube, a.lamp} {
		if m != nil {
			m.Release()
		}
	}
}

// loadAssets compiles the programs and uploads textures and geometry. On error
// everything created so far is released.
func loadAssets(dev renderer.Device, cfg config.Assets) (_ *demoAssets, err error) {
	a := &demoAssets{}
	defer func() {
		if err != nil {
			a.Release()
		}
	}()

	if a.cubeProgram, err = loadProgram(dev, cfg.ShaderDir, "cube"); err != nil {
		return nil, err
	}
	if a.lampProgram, err = loadProgram(dev, cfg.ShaderDir, "lamp"); err != nil {
		return nil, err
	}

	wrap, err := renderer.ParseWrapMode(cfg.Wrap)
	if err != nil {
		return nil, err
	}
	fallbacks := [2]func() *scene.Texture{
		func() *scene.Texture {
			return scene.NewCheckerTexture("checker-wood", 256, 8,
				scene.Color{R: 0.62, G: 0.42, B: 0.22, A: 1}, scene.Color{R: 0.40, G: 0.26, B: 0.12, A: 1})
		},
		func() *scene.Texture {
			return scene.NewCheckerTexture("checker-teal", 256, 2, scene.ColorTeal, scene.ColorWhite)
		},
	}
	for i, path := range []string{cfg.Texture1, cfg.Texture2} {
		tex, err := loadTexture(path, cfg.FlipY, fallbacks[i])
		if err != nil {
			return nil, err
		}
		if a.textures[i], err = renderer.UploadTexture(dev, tex, wrap); err != nil {
			return nil, fmt.Errorf("upload %s: %w", tex.Name, err)
		}
	}

	geom := scene.CubeGeometry()
	if cfg.Model != "" {
		if geom, err = scene.LoadGeometry(cfg.Model); err != nil {
			return nil, err
		}
		slog.Info("loaded model", "path", cfg.Model, "vertices", geom.VertexCount(), "indices", len(geom.Indices))
	}
	if a.cube, err = renderer.NewModel(dev, geom.Vertices, geom.Indices, renderer.LayoutPositionTexCoord); err != nil {
		return nil, fmt.Errorf("cube model: %w", err)
	}
	lampGeom := scene.CubeGeometry()
	if a.lamp, err = renderer.NewModel(dev, lampGeom.Vertices, lampGeom.Indices, renderer.LayoutPositionOnly5); err != nil {
		return nil, fmt.Errorf("lamp model: %w", err)
	}

	a.cubeProgram.SetInt("texture1", 0)
	a.cubeProgram.SetInt("texture2", 1)
	a.cubeProgram.SetFloat("mixAmount", mixAmount)
	return a, nil
}

// loadProgram compiles <name>.vert and <name>.frag from dir, or from the
// embedded defaults when dir is empty.
func loadProgram(dev renderer.Device, dir, name string) (*renderer.Program, error) {
	vs, err := readShader(dir, name+".vert")
	if err != nil {
		return nil, err
	}
	fs, err := readShader(dir, name+".frag")
	if err != nil {
		return nil, err
	}
	p, err := renderer.NewProgram(dev, vs, fs)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	slog.Debug("compiled program", "name", name, "id", p.ID())
	return p, nil
}

func readShader(dir, file string) (string, error) {
	if dir == "" {
		data, err := builtinShaders.ReadFile("shaders/" + file)
		if err != nil {
			return "", fmt.Errorf("builtin shader %s: %w", file, err)
		}
		return string(data), nil
	}
	path := filepath.Join(dir, file)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &scene.AssetLoadError{Path: path, Err: err}
	}
	return string(data), nil
}

// loadTexture decodes path, or generates the fallback when no path is
// configured. A configured file that cannot be read is an error.
func loadTexture(path string, flipY bool, fallback func() *scene.Texture) (*scene.Texture, error) {
	if path == "" {
		return fallback(), nil
	}
	tex, err := scene.LoadTexture(path)
	if err != nil {
		return nil, err
	}
	if flipY {
		tex.FlipVertical()
	}
	slog.Info("loaded texture", "path", path, "width", tex.Width, "height", tex.Height)
	return tex, nil
}
