package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"cube-renderer/config"
	"cube-renderer/core"
	"cube-renderer/internal/opengl"
	"cube-renderer/renderer"
	"cube-renderer/scene"
)

func main() {
	configPath := flag.String("config", config.DefaultFilename, "path to the YAML config file")
	logLevel := flag.String("log-level", "", "log level override: debug, info, warn or error")
	flag.Parse()

	if err := run(*configPath, *logLevel); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, levelOverride string) error {
	var level slog.LevelVar
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level})))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	levelName := cfg.LogLevel
	if levelOverride != "" {
		levelName = levelOverride
	}
	l, err := config.ParseLogLevel(levelName)
	if err != nil {
		return err
	}
	level.Set(l)

	window, err := core.NewWindow(core.WindowConfig{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		VSync:      cfg.Window.VSync,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev, err := opengl.NewDevice()
	if err != nil {
		return err
	}
	r := renderer.NewRenderer(dev, window.Width, window.Height)

	assets, err := loadAssets(dev, cfg.Assets)
	if err != nil {
		return err
	}
	defer assets.Release()

	camera := scene.NewCamera(mgl32.Vec3(cfg.Camera.Position), mgl32.Vec3{0, 1, 0}, cfg.Camera.Yaw, cfg.Camera.Pitch)
	camera.MovementSpeed = cfg.Camera.Speed
	camera.MouseSensitivity = cfg.Camera.Sensitivity
	ctl := scene.NewController(camera)
	window.SetCursorCaptured(ctl.Captured())

	printControls(cfg.StateFile)

	fp := frameParams{
		clear: scene.Color{R: cfg.ClearColor[0], G: cfg.ClearColor[1], B: cfg.ClearColor[2], A: cfg.ClearColor[3]},
		near:  cfg.Camera.Near,
		far:   cfg.Camera.Far,
	}
	start := time.Now()
	lastTime := start
	stats := newFrameStats(cfg.Window.Title, start)

	for {
		now := time.Now()
		deltaTime := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		in := ctl.Update(window.PollEvents(), window, deltaTime)
		if in.Quit {
			break
		}
		if in.Resized {
			r.Resize(in.Width, in.Height)
		}
		if in.CaptureChanged {
			window.SetCursorCaptured(in.Captured)
		}
		if in.SaveRequested {
			if err := scene.SaveCamera(camera, cfg.StateFile); err != nil {
				slog.Error("save camera failed", "error", err)
			} else {
				slog.Info("camera saved", "path", cfg.StateFile)
			}
		}
		if in.LoadRequested {
			if state, err := scene.LoadCamera(cfg.StateFile); err != nil {
				slog.Error("load camera failed", "error", err)
			} else {
				state.Apply(camera)
				slog.Info("camera loaded", "path", cfg.StateFile)
			}
		}

		fp.time = float32(now.Sub(start).Seconds())
		drawFrame(r, assets, camera, fp)
		window.SwapBuffers()

		drawCalls, _ := r.DrawStats()
		if title, ok := stats.frame(time.Now(), camera.Position(), drawCalls); ok {
			window.SetTitle(title)
		}
	}

	slog.Info("exiting")
	return nil
}

func printControls(stateFile string) {
	fmt.Println("CAMERA CONTROLS:")
	fmt.Println("  W / S / Up / Down    - Move forward / backward")
	fmt.Println("  A / D / Left / Right - Strafe left / right")
	fmt.Println("  Mouse                - Look around")
	fmt.Println("  Scroll               - Zoom")
	fmt.Println("  Tab                  - Capture / release the cursor")
	fmt.Println("  Backspace            - Reset the camera")
	fmt.Printf("  F5 / F9              - Save / load the camera (%s)\n", stateFile)
	fmt.Println("EXIT: ESC")
}
