// Package primitives caches one GPU mesh per shape kind and draws instances
// of them. Meshes are generated on first use so GPU resources are allocated
// after the window/OpenGL context exists.
package primitives

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-sandbox/internal/shapes"
)

// Mesh resolution constants. Each primitive is generated to fit a 1×1×1
// volume so the physics box extents match the visual extents at unit size.
const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
	coneSlices     = 16
	torusSegments  = 16
	torusSides     = 16
	// torusRingRadius is the tube radius; ring diameter + tube fits in 1.
	torusRingRadius = 0.3
)

// cached holds the mesh for one kind plus the model-space offset that moves
// the mesh origin to its center (raylib cylinders and cones have their base
// at Y=0).
type cached struct {
	mesh   rl.Mesh
	offset mgl32.Vec3
}

// Registry maps shape kinds to meshes and draws them with a shared material.
// The scene view supplies the materials: a lit one for the main pass and a
// bare depth one for the shadow pass.
type Registry struct {
	cache    map[shapes.Kind]cached
	mtl      rl.Material
	depthMtl rl.Material
	ready    bool
}

// NewRegistry returns an empty registry. Materials and meshes are created on
// first draw.
func NewRegistry() *Registry {
	return &Registry{cache: make(map[shapes.Kind]cached)}
}

// InitMaterials creates the shared materials with the given shaders. Called
// once by the view after the window exists; later calls are no-ops.
func (r *Registry) InitMaterials(lit, depth rl.Shader) {
	if r.ready {
		return
	}
	r.mtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(lit) {
		r.mtl.Shader = lit
	}
	r.depthMtl = rl.LoadMaterialDefault()
	if rl.IsShaderValid(depth) {
		r.depthMtl.Shader = depth
	}
	r.ready = true
}

// ensure generates and caches the mesh for kind. The switch is exhaustive
// over the closed kind set.
func (r *Registry) ensure(kind shapes.Kind) cached {
	if c, ok := r.cache[kind]; ok {
		return c
	}
	var c cached
	switch kind {
	case shapes.Box:
		c.mesh = rl.GenMeshCube(1, 1, 1)
	case shapes.Sphere:
		// Radius 0.5 so the diameter matches the cube side.
		c.mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case shapes.Cylinder:
		// Base at Y=0, top at Y=1; shift down half to center on the origin.
		c.mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		c.offset = mgl32.Vec3{0, -0.5, 0}
	case shapes.Cone:
		c.mesh = rl.GenMeshCone(0.5, 1, coneSlices)
		c.offset = mgl32.Vec3{0, -0.5, 0}
	case shapes.Torus:
		c.mesh = rl.GenMeshTorus(torusRingRadius, 1, torusSegments, torusSides)
	}
	r.cache[kind] = c
	return c
}

// transform builds the model matrix: center offset, then scale, then tilt
// rotation, then translation.
func transform(c cached, position, tilt, size mgl32.Vec3) rl.Matrix {
	for i := 0; i < 3; i++ {
		if size[i] == 0 {
			size[i] = 1
		}
	}
	m := rl.MatrixScale(size.X(), size.Y(), size.Z())
	if c.offset != (mgl32.Vec3{}) {
		m = rl.MatrixMultiply(rl.MatrixTranslate(c.offset.X(), c.offset.Y(), c.offset.Z()), m)
	}
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(tilt.X(), tilt.Y(), tilt.Z())))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(position.X(), position.Y(), position.Z()))
}

// Draw renders one instance with the lit material in the given color.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(kind shapes.Kind, position, tilt, size mgl32.Vec3, color rl.Color) {
	if !r.ready {
		return
	}
	c := r.ensure(kind)
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	rl.DrawMesh(c.mesh, r.mtl, transform(c, position, tilt, size))
}

// DrawDepth renders one instance with the depth material (shadow pass).
func (r *Registry) DrawDepth(kind shapes.Kind, position, tilt, size mgl32.Vec3) {
	if !r.ready {
		return
	}
	c := r.ensure(kind)
	rl.DrawMesh(c.mesh, r.depthMtl, transform(c, position, tilt, size))
}

// LitMaterial exposes the lit material so the view can bind the shadow map
// texture to it.
func (r *Registry) LitMaterial() *rl.Material {
	return &r.mtl
}
