package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

const cameraStateVersion = 1

type vec3JSON struct {
	X, Y, Z float32
}

type cameraJSON struct {
	Version  int
	Position vec3JSON
	Yaw      float32
	Pitch    float32
	Zoom     float32
}

// CameraState is a saved camera pose.
type CameraState struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Zoom     float32
}

// StateOf captures the current pose of c.
func StateOf(c *Camera) CameraState {
	return CameraState{
		Position: c.Position(),
		Yaw:      c.Yaw(),
		Pitch:    c.Pitch(),
		Zoom:     c.Zoom(),
	}
}

// Apply restores the pose onto c. Pitch and zoom are clamped to the camera's
// limits.
func (s CameraState) Apply(c *Camera) {
	c.SetPose(s.Position, s.Yaw, s.Pitch)
	c.SetZoom(s.Zoom)
}

// SaveCamera writes the pose of c to a JSON file at path.
func SaveCamera(c *Camera, path string) error {
	s := StateOf(c)
	js := cameraJSON{
		Version:  cameraStateVersion,
		Position: vec3JSON{s.Position[0], s.Position[1], s.Position[2]},
		Yaw:      s.Yaw,
		Pitch:    s.Pitch,
		Zoom:     s.Zoom,
	}

	data, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal camera: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write camera %q: %w", path, err)
	}
	return nil
}

// LoadCamera reads a JSON file written by SaveCamera.
func LoadCamera(path string) (CameraState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CameraState{}, fmt.Errorf("read camera %q: %w", path, err)
	}
	var js cameraJSON
	if err := json.Unmarshal(data, &js); err != nil {
		return CameraState{}, fmt.Errorf("unmarshal camera: %w", err)
	}
	if js.Version != cameraStateVersion {
		return CameraState{}, fmt.Errorf("camera %q: unsupported version %d", path, js.Version)
	}

	return CameraState{
		Position: mgl32.Vec3{js.Position.X, js.Position.Y, js.Position.Z},
		Yaw:      js.Yaw,
		Pitch:    js.Pitch,
		Zoom:     js.Zoom,
	}, nil
}
