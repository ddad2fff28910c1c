package shapes

import (
	"github.com/go-gl/mathgl/mgl32"

	"shape-sandbox/internal/physics"
)

// Shape is one visual+physical object in the scene: a primitive mesh with a
// material color and (for everything except the ground visuals) a rigid body.
// Shapes are created at bootstrap or by a spawn button and live until the
// process exits; the owning Session holds them in creation order.
type Shape struct {
	Kind     Kind
	Position mgl32.Vec3
	// Tilt is a random initial rotation (Euler radians, XYZ order). It is
	// render-only: the physics volume is an axis-aligned box regardless.
	Tilt mgl32.Vec3
	// Color is the material diffuse color with channels normalized to 0-1.
	Color mgl32.Vec3
	// ColorHex is the palette entry Color was decoded from.
	ColorHex string
	// Body is the rigid body driving Position, nil for static visuals that
	// share a body (the ground planes).
	Body *physics.Body
}

// SyncFromBody copies the body position back onto the shape after a physics
// step. No-op for shapes without a body.
func (s *Shape) SyncFromBody() {
	if s.Body == nil {
		return
	}
	s.Position = s.Body.Position
}
