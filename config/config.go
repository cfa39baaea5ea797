// Package config loads the demo settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFilename = "demo.yml"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window     Window     `yaml:"window"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Camera     Camera     `yaml:"camera"`
	Assets     Assets     `yaml:"assets"`

	// StateFile is where F5 saves and F9 loads the camera snapshot.
	StateFile string `yaml:"state_file"`
	LogLevel  string `yaml:"log_level"`
}

type Window struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Resizable  bool   `yaml:"resizable"`
	VSync      bool   `yaml:"vsync"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type Camera struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// Assets lists optional files. Empty paths select the built-in shaders,
// generated textures and the built-in cube.
type Assets struct {
	ShaderDir string `yaml:"shader_dir"`
	Texture1  string `yaml:"texture1"`
	Texture2  string `yaml:"texture2"`
	FlipY     bool   `yaml:"flip_y"`
	Wrap      string `yaml:"wrap"`
	Model     string `yaml:"model"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:     800,
			Height:    600,
			Title:     "Cube Renderer",
			Resizable: true,
			VSync:     true,
		},
		ClearColor: [4]float32{0.2, 0.3, 0.3, 1.0},
		Camera: Camera{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Near:        0.1,
			Far:         100,
		},
		Assets: Assets{
			FlipY: true,
			Wrap:  "repeat",
		},
		StateFile: "camera.json",
		LogLevel:  "info",
	}
}

const maxConfigSize = 1024 * 1024

// Load reads path over the defaults. A missing file yields the defaults;
// unknown keys, malformed YAML and values rejected by Validate are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("no config file, using defaults", "path", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config %s is too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	slog.Info("loaded config", "path", path)
	return cfg, nil
}

// Validate reports every invalid value at once.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	for i, v := range c.ClearColor {
		if v < 0 || v > 1 {
			bad("clear_color[%d] = %v is outside [0, 1]", i, v)
		}
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		bad("clip planes near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.Speed < 0 {
		bad("camera speed %v", c.Camera.Speed)
	}
	if c.Camera.Sensitivity < 0 {
		bad("camera sensitivity %v", c.Camera.Sensitivity)
	}
	switch c.Assets.Wrap {
	case "", "repeat", "mirrored_repeat":
	default:
		bad("wrap mode %q", c.Assets.Wrap)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		bad("%v", err)
	}
	return errors.Join(errs...)
}

// ParseLogLevel accepts debug, info, warn and error. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q", s)
	}
	return level, nil
}
