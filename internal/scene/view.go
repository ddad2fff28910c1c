package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shape-sandbox/internal/lighting"
	"shape-sandbox/internal/primitives"
)

// Camera input tuning.
const (
	orbitSpeed = 0.005 // radians per pixel of drag
	zoomSpeed  = 1.2   // radius units per wheel notch
	panSpeed   = 0.02  // world units per pixel of middle-drag
	cameraFovy = 45
)

var groundColor = rl.NewColor(210, 210, 214, 255)

// View renders a Session with raylib and feeds user input back into it.
// GPU resources (shaders, shadow render target, meshes) are created on the
// first Draw so they exist only after the window/OpenGL context does.
type View struct {
	session     *Session
	reg         *primitives.Registry
	GridVisible bool

	ready      bool
	lit        rl.Shader
	depth      rl.Shader
	shadowRT   rl.RenderTexture2D
	groundMesh rl.Mesh
	groundMtl  rl.Material
	lightVP    rl.Matrix
	lightCam   rl.Camera3D

	locViewPos   int32
	locShadowMap int32
}

// NewView wraps the session for rendering. The grid overlay is visible by
// default.
func NewView(s *Session) *View {
	return &View{
		session:     s,
		reg:         primitives.NewRegistry(),
		GridVisible: true,
	}
}

// SetGridVisible sets whether the grid overlay plane is drawn.
func (v *View) SetGridVisible(visible bool) {
	v.GridVisible = visible
}

// Update runs once per frame: mouse input drives the orbit camera
// (left-drag orbit, wheel zoom, middle-drag pan), then the session advances
// by the frame time.
func (v *View) Update() {
	cam := &v.session.Camera
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		cam.Orbit(d.X*orbitSpeed, -d.Y*orbitSpeed)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		d := rl.GetMouseDelta()
		cam.Pan(-d.X*panSpeed, d.Y*panSpeed)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.Zoom(wheel * zoomSpeed)
	}
	v.session.Step(rl.GetFrameTime())
}

// Draw renders one frame: shadow depth pass over the caster registry, then
// the main pass (ground, shapes, grid overlay) with shadow sampling.
func (v *View) Draw() {
	v.ensureReady()

	// Depth pass: casters only, from the light's orthographic frustum.
	rl.BeginTextureMode(v.shadowRT)
	rl.ClearBackground(rl.White)
	rl.BeginMode3D(v.lightCam)
	for _, sh := range v.session.Shadows.Casters() {
		v.reg.DrawDepth(sh.Kind, sh.Position, sh.Tilt, v.session.defs.SizeFor(sh.Kind))
	}
	rl.EndMode3D()
	rl.EndTextureMode()

	// Main pass.
	eye := v.session.Camera.Eye()
	cam := rl.Camera3D{
		Position:   rl.NewVector3(eye.X(), eye.Y(), eye.Z()),
		Target:     vec3(v.session.Camera.Target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       cameraFovy,
		Projection: rl.CameraPerspective,
	}
	viewPos := []float32{eye.X(), eye.Y(), eye.Z()}
	rl.SetShaderValueV(v.lit, v.locViewPos, viewPos, rl.ShaderUniformVec3, 1)
	rl.SetShaderValueTexture(v.lit, v.locShadowMap, v.shadowRT.Texture)

	rl.BeginMode3D(cam)
	rl.DrawMesh(v.groundMesh, v.groundMtl, rl.MatrixIdentity())
	for _, sh := range v.session.Shapes {
		c := sh.Color
		col := rl.NewColor(uint8(c.X()*255), uint8(c.Y()*255), uint8(c.Z()*255), 255)
		v.reg.Draw(sh.Kind, sh.Position, sh.Tilt, v.session.defs.SizeFor(sh.Kind), col)
	}
	if v.GridVisible {
		drawGridOverlay(v.session.defs.GroundSize)
	}
	rl.EndMode3D()
}

// ensureReady creates shaders, the shadow render target, the ground mesh,
// and the light-space matrices on first use.
func (v *View) ensureReady() {
	if v.ready {
		return
	}
	v.lit = rl.LoadShaderFromMemory(litVS, litFS)
	v.depth = rl.LoadShaderFromMemory(depthVS, depthFS)
	v.reg.InitMaterials(v.lit, v.depth)

	res := int32(lighting.ShadowMapResolution)
	v.shadowRT = rl.LoadRenderTexture(res, res)

	size := v.session.defs.GroundSize
	v.groundMesh = rl.GenMeshPlane(size, size, 1, 1)
	v.groundMtl = rl.LoadMaterialDefault()
	if albedo := v.groundMtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = groundColor
	}
	v.groundMtl.Shader = v.lit

	v.initLightSpace()
	v.initStaticUniforms()
	v.ready = true
}

// initLightSpace computes the directional light's view-projection matrix and
// the camera used for the depth pass. The light never moves, so this runs
// once.
func (v *View) initLightSpace() {
	sun := &v.session.Sun
	target := sun.Position.Add(sun.Direction)
	lightView := rl.MatrixLookAt(vec3(sun.Position), vec3(target), rl.NewVector3(0, 1, 0))
	half := lighting.ShadowFrustumSize / 2
	lightProj := rl.MatrixOrtho(-half, half, -half, half, lighting.ShadowNear, lighting.ShadowFar)
	v.lightVP = rl.MatrixMultiply(lightView, lightProj)

	v.lightCam = rl.Camera3D{
		Position:   vec3(sun.Position),
		Target:     vec3(target),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       lighting.ShadowFrustumSize,
		Projection: rl.CameraOrthographic,
	}
}

// initStaticUniforms uploads the uniforms that never change: light set,
// hemisphere colors, shadow parameters, and the light matrix for both
// shaders.
func (v *View) initStaticUniforms() {
	s := v.session
	v.locViewPos = rl.GetShaderLocation(v.lit, "viewPos")
	v.locShadowMap = rl.GetShaderLocation(v.lit, "shadowMap")

	// Shader wants the direction TO the light.
	toLight := s.Sun.Direction.Mul(-1)
	setVec3(v.lit, "lightDir", toLight)
	setVec3(v.lit, "lightColor", s.Sun.Diffuse)
	setFloat(v.lit, "lightIntensity", s.Sun.Intensity)
	setVec3(v.lit, "hemiSky", s.Hemi.Diffuse)
	setVec3(v.lit, "hemiGround", s.Hemi.Ground)
	setFloat(v.lit, "hemiIntensity", s.Hemi.Intensity)
	setFloat(v.lit, "shadowBias", lighting.ShadowBias)
	setFloat(v.lit, "texelSize", lighting.ShadowBlurScale/lighting.ShadowMapResolution)
	if loc := rl.GetShaderLocation(v.lit, "matLightVP"); loc >= 0 {
		rl.SetShaderValueMatrix(v.lit, loc, v.lightVP)
	}
	if loc := rl.GetShaderLocation(v.depth, "matLightVP"); loc >= 0 {
		rl.SetShaderValueMatrix(v.depth, loc, v.lightVP)
	}
}

func setVec3(shader rl.Shader, name string, val mgl32.Vec3) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValueV(shader, loc, []float32{val.X(), val.Y(), val.Z()}, rl.ShaderUniformVec3, 1)
	}
}

func setFloat(shader rl.Shader, name string, val float32) {
	if loc := rl.GetShaderLocation(shader, name); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{val}, rl.ShaderUniformFloat)
	}
}

func vec3(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
