// Package lighting defines the scene's light set and the shadow generator.
// The light structs are plain data (no GPU state) so the owning session can
// be built and inspected headless; shader wiring lives in the scene view.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// Hemispheric is the sky-dome fill light: fragments facing Direction get the
// diffuse color, fragments facing away get the ground tint, blended by the
// surface normal. Created once at bootstrap and never mutated.
type Hemispheric struct {
	Direction mgl32.Vec3
	Diffuse   mgl32.Vec3
	Ground    mgl32.Vec3
	Intensity float32
}

// NewHemispheric returns the sandbox fill light: straight up, white on
// white, intensity 0.9.
func NewHemispheric() Hemispheric {
	return Hemispheric{
		Direction: mgl32.Vec3{0, 1, 0},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Ground:    mgl32.Vec3{1, 1, 1},
		Intensity: 0.9,
	}
}

// Directional is the shadow-casting key light. Direction points from the
// light into the scene; Position anchors the shadow frustum.
type Directional struct {
	Direction mgl32.Vec3
	Position  mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Intensity float32
}

// NewDirectional returns the sandbox key light: from high on the +X/+Z side
// aiming down-left, intensity 0.3, white diffuse and specular.
func NewDirectional() Directional {
	return Directional{
		Direction: mgl32.Vec3{-1, -2, -1}.Normalize(),
		Position:  mgl32.Vec3{20, 40, 20},
		Diffuse:   mgl32.Vec3{1, 1, 1},
		Specular:  mgl32.Vec3{1, 1, 1},
		Intensity: 0.3,
	}
}
