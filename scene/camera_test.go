package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tolerance
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func newTestCamera(yaw, pitch float32) *Camera {
	return NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, yaw, pitch)
}

func TestCameraFrontAtYaw270(t *testing.T) {
	c := newTestCamera(270, 0)

	expected := mgl32.Vec3{0, 0, -1}
	if !approxVec(c.Front(), expected) {
		t.Errorf("Front: expected %v, got %v", expected, c.Front())
	}
	if !approxVec(c.Right(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Right: expected (1,0,0), got %v", c.Right())
	}
	if !approxVec(c.Up(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Up: expected (0,1,0), got %v", c.Up())
	}
}

func TestCameraBasisOrthonormal(t *testing.T) {
	for yaw := float32(0); yaw < 360; yaw += 7.5 {
		for pitch := MinPitch; pitch <= MaxPitch; pitch += 4.45 {
			c := newTestCamera(yaw, pitch)
			f, u, r := c.Front(), c.Up(), c.Right()

			for name, v := range map[string]mgl32.Vec3{"front": f, "up": u, "right": r} {
				if !approx(v.Len(), 1) {
					t.Fatalf("yaw=%v pitch=%v: %s length %v", yaw, pitch, name, v.Len())
				}
			}
			if !approx(f.Dot(u), 0) || !approx(f.Dot(r), 0) || !approx(u.Dot(r), 0) {
				t.Fatalf("yaw=%v pitch=%v: basis not orthogonal f.u=%v f.r=%v u.r=%v",
					yaw, pitch, f.Dot(u), f.Dot(r), u.Dot(r))
			}
		}
	}
}

func TestCameraPitchClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := newTestCamera(-90, 0)

	for i := 0; i < 2000; i++ {
		c.ProcessMouseMovement(rng.Float32()*400-200, rng.Float32()*400-200)
		if c.Pitch() < MinPitch || c.Pitch() > MaxPitch {
			t.Fatalf("step %d: pitch %v outside [%v, %v]", i, c.Pitch(), MinPitch, MaxPitch)
		}
	}

	c.ProcessMouseMovement(0, 1e6)
	if c.Pitch() != MaxPitch {
		t.Errorf("expected pitch clamped to %v, got %v", MaxPitch, c.Pitch())
	}
	c.ProcessMouseMovement(0, -1e6)
	if c.Pitch() != MinPitch {
		t.Errorf("expected pitch clamped to %v, got %v", MinPitch, c.Pitch())
	}
}

func TestCameraConstructorClampsPitch(t *testing.T) {
	c := newTestCamera(0, 120)
	if c.Pitch() != MaxPitch {
		t.Errorf("expected %v, got %v", MaxPitch, c.Pitch())
	}
}

func TestCameraZoomClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := newTestCamera(-90, 0)

	if c.Zoom() != DefaultZoom {
		t.Fatalf("expected default zoom %v, got %v", DefaultZoom, c.Zoom())
	}
	for i := 0; i < 2000; i++ {
		c.ProcessMouseScroll(rng.Float32()*20 - 10)
		if c.Zoom() < MinZoom || c.Zoom() > MaxZoom {
			t.Fatalf("step %d: zoom %v outside [%v, %v]", i, c.Zoom(), MinZoom, MaxZoom)
		}
	}
}

func TestCameraScrollDecrementsZoom(t *testing.T) {
	c := newTestCamera(-90, 0)
	c.ProcessMouseScroll(5)
	if c.Zoom() != 40 {
		t.Errorf("expected zoom 40, got %v", c.Zoom())
	}
	c.ProcessMouseScroll(-100)
	if c.Zoom() != MaxZoom {
		t.Errorf("expected zoom %v, got %v", MaxZoom, c.Zoom())
	}
}

func TestCameraKeyboardRoundTrip(t *testing.T) {
	for _, dt := range []float32{0, 0.016, 0.5, 3, -0.25} {
		c := newTestCamera(33, 12)
		start := c.Position()

		c.ProcessKeyboard(Forward, dt)
		c.ProcessKeyboard(Backward, dt)
		if !approxVec(c.Position(), start) {
			t.Errorf("dt=%v forward/backward: expected %v, got %v", dt, start, c.Position())
		}

		c.ProcessKeyboard(Left, dt)
		c.ProcessKeyboard(Right, dt)
		if !approxVec(c.Position(), start) {
			t.Errorf("dt=%v left/right: expected %v, got %v", dt, start, c.Position())
		}
	}
}

func TestCameraKeyboardMovesAlongFront(t *testing.T) {
	c := newTestCamera(-90, 0)
	c.ProcessKeyboard(Forward, 1)

	expected := mgl32.Vec3{0, 0, 3 - DefaultSpeed}
	if !approxVec(c.Position(), expected) {
		t.Errorf("expected %v, got %v", expected, c.Position())
	}
}

func TestCameraViewMatrixMovesEyeToOrigin(t *testing.T) {
	c := newTestCamera(-90, 0)
	eye := c.Position()

	result := c.ViewMatrix().Mul4x1(eye.Vec4(1))
	if !approxVec(result.Vec3(), mgl32.Vec3{}) {
		t.Errorf("expected eye at origin, got %v", result.Vec3())
	}

	// A point straight ahead lands on the -Z axis of camera space.
	ahead := c.ViewMatrix().Mul4x1(eye.Add(c.Front().Mul(2)).Vec4(1))
	if !approxVec(ahead.Vec3(), mgl32.Vec3{0, 0, -2}) {
		t.Errorf("expected (0,0,-2), got %v", ahead.Vec3())
	}
}

func TestCameraSetPose(t *testing.T) {
	c := newTestCamera(-90, 0)
	c.SetPose(mgl32.Vec3{1, 2, 3}, 0, 200)

	if c.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected position (1,2,3), got %v", c.Position())
	}
	if c.Pitch() != MaxPitch {
		t.Errorf("expected pitch %v, got %v", MaxPitch, c.Pitch())
	}
}

func TestCameraDegenerateWorldUp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 0, 0)
	// worldUp along the look direction makes front x worldUp vanish.
	c.worldUp = c.Front()
	c.ProcessMouseMovement(0, 0)

	for _, v := range []mgl32.Vec3{c.Front(), c.Up(), c.Right()} {
		if math.IsNaN(float64(v[0])) || math.IsNaN(float64(v[1])) || math.IsNaN(float64(v[2])) {
			t.Fatalf("basis contains NaN: %v", v)
		}
	}
	if !approx(c.Up().Len(), 1) {
		t.Errorf("expected unit up, got length %v", c.Up().Len())
	}
}

func BenchmarkCameraMouseMovement(b *testing.B) {
	c := newTestCamera(-90, 0)
	for i := 0; i < b.N; i++ {
		c.ProcessMouseMovement(0.5, 0.25)
	}
}
