// Package scene owns the sandbox scene: the Session is the single owning
// context for every entity (shapes, bodies, lights, shadow casters, ground,
// camera) and the View renders it. The Session has no GPU state, so the
// whole scene can be built, stepped, and inspected in tests without a
// window.
package scene

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"shape-sandbox/internal/defs"
	"shape-sandbox/internal/lighting"
	"shape-sandbox/internal/logger"
	"shape-sandbox/internal/palette"
	"shape-sandbox/internal/physics"
	"shape-sandbox/internal/shapes"
)

// maxTilt bounds the random initial rotation per Euler axis (radians).
const maxTilt = 0.5

// GroundPlane is one of the two coplanar ground entities: the solid shadow
// receiver and the semi-transparent grid overlay. Both are static visuals
// sharing the session's single plane body.
type GroundPlane struct {
	Name    string
	Size    float32
	Overlay bool
}

// Session is the scene's owning context. It is built once per process by
// NewSession and mutated only by Spawn and Step; everything it owns dies
// with it. Not safe for concurrent use: all callers run on the main loop.
type Session struct {
	Shapes  []*shapes.Shape
	World   *physics.World
	Hemi    lighting.Hemispheric
	Sun     lighting.Directional
	Shadows *lighting.Generator
	Grounds []GroundPlane
	Camera  OrbitCamera

	defs defs.Defs
	log  *logger.Logger
	rng  *rand.Rand
}

// NewSession builds the fully wired scene: camera, physics world, one shape
// per kind in a row along X, the two lights, the shadow generator with every
// initial shape registered, and the two ground planes over one static plane
// body.
func NewSession(d defs.Defs, log *logger.Logger, rng *rand.Rand) *Session {
	s := &Session{
		World:  physics.NewWorld(),
		Hemi:   lighting.NewHemispheric(),
		Camera: NewOrbitCamera(),
		defs:   d,
		log:    log,
		rng:    rng,
	}
	s.Sun = lighting.NewDirectional()
	s.Shadows = lighting.NewGenerator(&s.Sun)

	// Ground first so the plane body exists before anything falls.
	s.World.AddBody(physics.NewStaticPlane(d.GroundRestitution))
	s.Grounds = []GroundPlane{
		{Name: "ground", Size: d.GroundSize},
		{Name: "grid", Size: d.GroundSize, Overlay: true},
	}

	// One shape per kind, centered row along X at drop height.
	offset := float32(len(shapes.Kinds)-1) / 2
	for i, kind := range shapes.Kinds {
		x := (float32(i) - offset) * d.Spacing
		s.addShape(kind, mgl32.Vec3{x, d.DropHeight, 0})
	}
	s.logf("scene ready: %d shapes, 2 lights, %d casters", len(s.Shapes), s.Shadows.CasterCount())
	return s
}

// Spawn drops a new shape of the given kind at a random position within the
// spawn square. Called by the UI panel; the kind decides the mesh, the
// palette decides the color.
func (s *Session) Spawn(kind shapes.Kind) {
	pos := mgl32.Vec3{
		s.randRange(-s.defs.SpawnExtent, s.defs.SpawnExtent),
		s.defs.DropHeight,
		s.randRange(-s.defs.SpawnExtent, s.defs.SpawnExtent),
	}
	sh := s.addShape(kind, pos)
	s.logf("spawned %s at (%.2f, %.2f, %.2f) color %s", kind, pos.X(), pos.Y(), pos.Z(), sh.ColorHex)
}

// addShape creates the shape, its body, and its shadow registration — always
// together, so every body-carrying shape is a caster.
func (s *Session) addShape(kind shapes.Kind, pos mgl32.Vec3) *shapes.Shape {
	size := s.defs.SizeFor(kind)
	body := physics.NewBody(pos, size, s.defs.Mass, s.defs.Restitution)
	s.World.AddBody(body)

	sh := &shapes.Shape{
		Kind:     kind,
		Position: pos,
		Tilt: mgl32.Vec3{
			s.randRange(-maxTilt, maxTilt),
			s.randRange(-maxTilt, maxTilt),
			s.randRange(-maxTilt, maxTilt),
		},
		Body: body,
	}
	entry, color, ok := palette.PickColor(s.paletteEntries(), s.rng)
	if ok {
		sh.ColorHex = entry
		sh.Color = color
	} else {
		sh.Color = mgl32.Vec3{0.5, 0.5, 0.5}
	}
	s.Shapes = append(s.Shapes, sh)
	s.Shadows.AddCaster(sh)
	return sh
}

// Step advances physics by dt and syncs shape positions from their bodies.
func (s *Session) Step(dt float32) {
	s.World.Step(dt)
	for _, sh := range s.Shapes {
		sh.SyncFromBody()
	}
}

// Run steps the session a bounded number of frames at a fixed dt. The
// production loop renders every frame instead; Run exists so tests can drive
// the same per-frame path deterministically.
func (s *Session) Run(frames int, dt float32) {
	for i := 0; i < frames; i++ {
		s.Step(dt)
	}
}

// Palette returns the active palette (defs override or the built-in one).
func (s *Session) Palette() []string {
	return s.paletteEntries()
}

func (s *Session) paletteEntries() []string {
	if len(s.defs.Palette) > 0 {
		return s.defs.Palette
	}
	return palette.Default
}

func (s *Session) randRange(lo, hi float32) float32 {
	return lo + s.rng.Float32()*(hi-lo)
}

func (s *Session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.Log(fmt.Sprintf(format, args...))
}
