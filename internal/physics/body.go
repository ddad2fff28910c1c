package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is a rigid body with a box collision volume. Every shape kind uses a
// box volume sized to its visual extents, spheres and tori included; the
// volume has no kind field on purpose (see the world doc).
// Static bodies ignore gravity and never move.
type Body struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Size is the full extent of the box volume on each axis. A zero
	// component is treated as 1.
	Size mgl32.Vec3
	Mass float32
	// Restitution scales the velocity kept after a bounce (0 = dead stop,
	// 1 = elastic). Contacts combine restitution multiplicatively.
	Restitution float32
	Static      bool
	// Plane marks a static body as the infinite ground plane at Y=0; Size is
	// ignored and the body participates only in plane contacts.
	Plane bool
}

// NewBody returns a dynamic body at position with the given box extents.
// A non-positive mass is clamped to 1.
func NewBody(position, size mgl32.Vec3, mass, restitution float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Position:    position,
		Size:        size,
		Mass:        mass,
		Restitution: restitution,
	}
}

// NewStaticPlane returns the static infinite ground plane at Y=0.
// Mass is zero: the plane never moves whatever lands on it.
func NewStaticPlane(restitution float32) *Body {
	return &Body{
		Restitution: restitution,
		Static:      true,
		Plane:       true,
	}
}

// halfExtents returns the box half extents, substituting 1 for zero sizes.
func (b *Body) halfExtents() mgl32.Vec3 {
	s := b.Size
	for i := 0; i < 3; i++ {
		if s[i] == 0 {
			s[i] = 1
		}
	}
	return s.Mul(0.5)
}
