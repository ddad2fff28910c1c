package scene

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

func TestNewOrbitCameraDefaults(t *testing.T) {
	c := NewOrbitCamera()
	if c.Target.X() != 0 || c.Target.Y() != 0 || c.Target.Z() != 0 {
		t.Errorf("Target = %v, want origin", c.Target)
	}
	if c.Radius != initialRadius {
		t.Errorf("Radius = %f, want %f", c.Radius, float32(initialRadius))
	}
	eye := c.Eye()
	if !approx(eye.Sub(c.Target).Len(), c.Radius, 1e-4) {
		t.Errorf("|Eye - Target| = %f, want radius %f", eye.Sub(c.Target).Len(), c.Radius)
	}
	if eye.Y() <= 0 {
		t.Errorf("Eye.Y = %f, want above the ground", eye.Y())
	}
}

func TestOrbitKeepsRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.Orbit(1.3, -0.4)
	eye := c.Eye()
	if !approx(eye.Sub(c.Target).Len(), c.Radius, 1e-4) {
		t.Errorf("|Eye - Target| after orbit = %f, want %f", eye.Sub(c.Target).Len(), c.Radius)
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewOrbitCamera()
	c.Orbit(0, 100)
	if c.Pitch > orbitPitchMax {
		t.Errorf("Pitch = %f, want <= %f", c.Pitch, float32(orbitPitchMax))
	}
	c.Orbit(0, -200)
	if c.Pitch < orbitPitchMin {
		t.Errorf("Pitch = %f, want >= %f", c.Pitch, float32(orbitPitchMin))
	}
}

func TestZoomClampsRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.Zoom(1000)
	if c.Radius != orbitRadiusMin {
		t.Errorf("Radius after max zoom in = %f, want %f", c.Radius, float32(orbitRadiusMin))
	}
	c.Zoom(-1000)
	if c.Radius != orbitRadiusMax {
		t.Errorf("Radius after max zoom out = %f, want %f", c.Radius, float32(orbitRadiusMax))
	}
}

func TestPanMovesTargetHorizontally(t *testing.T) {
	c := NewOrbitCamera()
	c.Pan(2, 3)
	if c.Target.Y() != 0 {
		t.Errorf("Target.Y after pan = %f, want 0", c.Target.Y())
	}
	if c.Target.X() == 0 && c.Target.Z() == 0 {
		t.Error("pan did not move the target")
	}
	// Eye follows the target at the same offset.
	if !approx(c.Eye().Sub(c.Target).Len(), c.Radius, 1e-4) {
		t.Errorf("|Eye - Target| after pan = %f, want %f", c.Eye().Sub(c.Target).Len(), c.Radius)
	}
}
