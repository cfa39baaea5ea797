package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraMovement is a keyboard translation direction relative to the camera.
type CameraMovement int

const (
	Forward CameraMovement = iota
	Backward
	Left
	Right
)

// Camera defaults and limits, in degrees where angular.
const (
	DefaultSpeed       = float32(2.5)
	DefaultSensitivity = float32(0.1)
	DefaultZoom        = float32(45.0)

	MinPitch = float32(-89.0)
	MaxPitch = float32(89.0)
	MinZoom  = float32(1.0)
	MaxZoom  = float32(45.0)
)

// Camera is a free-fly camera oriented by yaw and pitch Euler angles.
// The front/up/right basis is recomputed after every orientation change and
// is always orthonormal.
type Camera struct {
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3
	worldUp  mgl32.Vec3

	yaw   float32
	pitch float32
	zoom  float32

	MovementSpeed    float32
	MouseSensitivity float32
}

// NewCamera creates a camera at position looking along the direction given by
// yaw and pitch (degrees). A yaw of -90 (or 270) looks down -Z.
func NewCamera(position, worldUp mgl32.Vec3, yaw, pitch float32) *Camera {
	c := &Camera{
		position:         position,
		worldUp:          worldUp,
		yaw:              yaw,
		pitch:            clamp(pitch, MinPitch, MaxPitch),
		zoom:             DefaultZoom,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-camera look-at matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns a perspective projection using the current zoom as
// the vertical field of view.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, near, far)
}

func (c *Camera) Zoom() float32 { return c.zoom }
func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Up() mgl32.Vec3 { return c.up }
func (c *Camera) Right() mgl32.Vec3 { return c.right }
func (c *Camera) WorldUp() mgl32.Vec3 { return c.worldUp }
func (c *Camera) Yaw() float32 { return c.yaw }
func (c *Camera) Pitch() float32 { return c.pitch }

// ProcessKeyboard translates the camera along its front or right vector.
// deltaTime is not validated; zero or negative values move by that amount.
func (c *Camera) ProcessKeyboard(direction CameraMovement, deltaTime float32) {
	velocity := c.MovementSpeed * deltaTime
	switch direction {
	case Forward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case Right:
		c.position = c.position.Add(c.right.Mul(velocity))
	}
}

// ProcessMouseMovement applies a mouse delta to yaw and pitch. Positive
// yOffset looks up.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float32) {
	c.yaw += xOffset * c.MouseSensitivity
	c.pitch = clamp(c.pitch+yOffset*c.MouseSensitivity, MinPitch, MaxPitch)
	c.updateVectors()
}

// ProcessMouseScroll narrows the field of view for positive offsets and
// widens it for negative ones, within [MinZoom, MaxZoom].
func (c *Camera) ProcessMouseScroll(yOffset float32) {
	c.zoom = clamp(c.zoom-yOffset, MinZoom, MaxZoom)
}

// SetPose moves and re-orients the camera in one step.
func (c *Camera) SetPose(position mgl32.Vec3, yaw, pitch float32) {
	c.position = position
	c.yaw = yaw
	c.pitch = clamp(pitch, MinPitch, MaxPitch)
	c.updateVectors()
}

// SetZoom sets the field of view in degrees, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.zoom = clamp(zoom, MinZoom, MaxZoom)
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	c.front = mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}.Normalize()

	// front parallel to worldUp leaves the cross product degenerate; keep the
	// previous right vector rather than producing NaNs.
	if right := c.front.Cross(c.worldUp); right.Len() > 1e-6 {
		c.right = right.Normalize()
	} else {
		if c.right.Len() == 0 {
			c.right = mgl32.Vec3{1, 0, 0}
		}
		c.right = c.right.Sub(c.front.Mul(c.right.Dot(c.front))).Normalize()
	}
	c.up = c.right.Cross(c.front).Normalize()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
