package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Orbit camera limits. Pitch is kept off the poles so the up vector stays
// valid; radius is kept off the target so the eye never degenerates.
const (
	orbitPitchMin  = 0.05
	orbitPitchMax  = math32.Pi - 0.05
	orbitRadiusMin = 2
	orbitRadiusMax = 60
)

// Initial camera placement: behind and above the shape row, looking at the
// origin.
const (
	initialYaw    = -math32.Pi / 2
	initialPitch  = 0.35 * math32.Pi
	initialRadius = 18
)

// OrbitCamera orbits a fixed target on a sphere: yaw around Y, pitch from
// the +Y axis, radius out from the target. The user drives it with mouse
// drag (orbit), wheel (zoom), and middle-drag (pan); the view translates
// input deltas into Orbit/Zoom/Pan calls.
type OrbitCamera struct {
	Target mgl32.Vec3
	Yaw    float32
	Pitch  float32
	Radius float32
}

// NewOrbitCamera returns the camera at its fixed initial angles, aimed at
// the world origin.
func NewOrbitCamera() OrbitCamera {
	return OrbitCamera{
		Yaw:    initialYaw,
		Pitch:  initialPitch,
		Radius: initialRadius,
	}
}

// Eye returns the camera position derived from target, angles, and radius.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	sp := math32.Sin(c.Pitch)
	return c.Target.Add(mgl32.Vec3{
		c.Radius * sp * math32.Cos(c.Yaw),
		c.Radius * math32.Cos(c.Pitch),
		c.Radius * sp * math32.Sin(c.Yaw),
	})
}

// Orbit rotates by the given yaw/pitch deltas (radians), clamping pitch away
// from the poles.
func (c *OrbitCamera) Orbit(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch = clamp(c.Pitch+dPitch, orbitPitchMin, orbitPitchMax)
}

// Zoom moves the eye along the view ray; positive delta zooms in.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Radius = clamp(c.Radius-delta, orbitRadiusMin, orbitRadiusMax)
}

// Pan shifts the target (and with it the eye) in the camera's horizontal
// plane.
func (c *OrbitCamera) Pan(dx, dz float32) {
	right := mgl32.Vec3{-math32.Sin(c.Yaw), 0, math32.Cos(c.Yaw)}
	forward := mgl32.Vec3{-math32.Cos(c.Yaw), 0, -math32.Sin(c.Yaw)}
	c.Target = c.Target.Add(right.Mul(dx)).Add(forward.Mul(dz))
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
