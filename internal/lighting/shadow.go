package lighting

import (
	"shape-sandbox/internal/shapes"
)

// ShadowMapResolution is the width and height in texels of the shadow depth
// texture.
const ShadowMapResolution = 1024

// ShadowFrustumSize is the side length in world units of the directional
// light's orthographic shadow frustum.
const ShadowFrustumSize float32 = 50

// ShadowNear and ShadowFar bound the shadow projection along the light
// direction.
const (
	ShadowNear float32 = 0.1
	ShadowFar  float32 = 100
)

// ShadowBias is the depth offset applied to shadow comparisons to suppress
// acne on lit surfaces.
const ShadowBias float32 = 0.002

// ShadowBlurScale widens the percentage-closer filter taps, in texels, to
// soften shadow edges.
const ShadowBlurScale float32 = 2

// Generator owns the shadow caster registry for one directional light.
// Casters are append-only and kept in registration order; every shape with a
// physics body is registered here at creation, so the registry and the scene
// shape list grow in lockstep. GPU resources (depth render target, shaders)
// belong to the scene view, which reads Casters each depth pass.
type Generator struct {
	Light   *Directional
	casters []*shapes.Shape
}

// NewGenerator returns a shadow generator bound to light with no casters.
func NewGenerator(light *Directional) *Generator {
	return &Generator{Light: light}
}

// AddCaster registers a shape's geometry for the shadow depth pass.
func (g *Generator) AddCaster(s *shapes.Shape) {
	g.casters = append(g.casters, s)
}

// Casters returns the registered casters in registration order. The caller
// must not mutate the slice.
func (g *Generator) Casters() []*shapes.Shape {
	return g.casters
}

// CasterCount returns how many shapes are registered.
func (g *Generator) CasterCount() int {
	return len(g.casters)
}
