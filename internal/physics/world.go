// Package physics is the small impostor-style rigid body world behind the
// sandbox: gravity, sub-stepped integration, box volumes, restitution.
// It approximates every shape as an axis-aligned box regardless of what the
// mesh looks like — the visual/collision mismatch is kept from the original
// demo rather than corrected, so a rolling "sphere" still settles like a box.
package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Gravity magnitude along -Y.
const gravityY = 9.81

// subSteps divides each Step into fixed sub-integrations for stability at
// display-rate dt values.
const subSteps = 10

// World holds the bodies and advances them: gravity, integration, plane
// contact, then pairwise box resolution. Body order is creation order and is
// preserved so shapes stay in sync with their bodies.
type World struct {
	Gravity mgl32.Vec3
	Bodies  []*Body

	plane *Body
}

// NewWorld returns a world with downward gravity of magnitude 9.81.
func NewWorld() *World {
	return &World{Gravity: mgl32.Vec3{0, -gravityY, 0}}
}

// SetGravity replaces the gravity vector.
func (w *World) SetGravity(g mgl32.Vec3) {
	w.Gravity = g
}

// AddBody appends a body. The first plane body added becomes the world's
// ground plane.
func (w *World) AddBody(b *Body) {
	w.Bodies = append(w.Bodies, b)
	if b.Plane && w.plane == nil {
		w.plane = b
	}
}

// Step advances the simulation by dt seconds, split into subSteps equal
// sub-integrations.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	h := dt / subSteps
	for i := 0; i < subSteps; i++ {
		w.substep(h)
	}
}

func (w *World) substep(h float32) {
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(h))
		b.Position = b.Position.Add(b.Velocity.Mul(h))
	}
	w.collidePlane()
	w.collidePairs()
}

// collidePlane keeps dynamic bodies above the ground plane at Y=0, bouncing
// them with the combined restitution of body and plane.
func (w *World) collidePlane() {
	if w.plane == nil {
		return
	}
	for _, b := range w.Bodies {
		if b.Static {
			continue
		}
		half := b.halfExtents()
		if b.Position.Y()-half.Y() >= 0 {
			continue
		}
		b.Position[1] = half.Y()
		if b.Velocity.Y() < 0 {
			e := b.Restitution * w.plane.Restitution
			b.Velocity[1] = -b.Velocity.Y() * e
			// Kill residual micro-bounces so stacks come to rest.
			if math32.Abs(b.Velocity[1]) < 0.05 {
				b.Velocity[1] = 0
			}
		}
	}
}

// aabb is a box in world space.
type aabb struct {
	min, max mgl32.Vec3
}

func (b *Body) bounds() aabb {
	half := b.halfExtents()
	return aabb{min: b.Position.Sub(half), max: b.Position.Add(half)}
}

// penetration returns the overlap depth and axis (0=X, 1=Y, 2=Z) of minimum
// penetration between two boxes, or axis -1 when they do not overlap.
func penetration(a, b aabb) (depth float32, axis int) {
	axis = -1
	for i := 0; i < 3; i++ {
		overlap := math32.Min(a.max[i], b.max[i]) - math32.Max(a.min[i], b.min[i])
		if overlap <= 0 {
			return 0, -1
		}
		if axis == -1 || overlap < depth {
			depth = overlap
			axis = i
		}
	}
	return depth, axis
}

// collidePairs resolves overlapping body pairs: push apart along the minimum
// penetration axis (mass-weighted; static bodies never move), then reflect
// the approach velocity scaled by the combined restitution.
func (w *World) collidePairs() {
	for i := 0; i < len(w.Bodies); i++ {
		bi := w.Bodies[i]
		if bi.Plane {
			continue
		}
		boxI := bi.bounds()
		for j := i + 1; j < len(w.Bodies); j++ {
			bj := w.Bodies[j]
			if bj.Plane || (bi.Static && bj.Static) {
				continue
			}
			depth, axis := penetration(boxI, bj.bounds())
			if axis < 0 {
				continue
			}
			w.resolve(bi, bj, depth, axis)
			boxI = bi.bounds()
		}
	}
}

func (w *World) resolve(bi, bj *Body, depth float32, axis int) {
	// dir is the direction bi separates along: away from bj.
	dir := float32(-1)
	if bi.Position[axis] > bj.Position[axis] {
		dir = 1
	}
	switch {
	case bi.Static:
		bj.Position[axis] += depth * -dir
	case bj.Static:
		bi.Position[axis] += depth * dir
	default:
		total := bi.Mass + bj.Mass
		bi.Position[axis] += depth * dir * (bj.Mass / total)
		bj.Position[axis] += depth * -dir * (bi.Mass / total)
	}

	// Bounce only when the pair is closing along the contact axis.
	rel := bj.Velocity[axis] - bi.Velocity[axis]
	if rel*dir <= 0 {
		return
	}
	e := bi.Restitution * bj.Restitution
	if !bi.Static {
		bi.Velocity[axis] = -bi.Velocity[axis] * e
	}
	if !bj.Static {
		bj.Velocity[axis] = -bj.Velocity[axis] * e
	}
}
