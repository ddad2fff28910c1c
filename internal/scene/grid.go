package scene

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridMinorStep = 1
	gridMajorStep = 10
	// gridLift keeps the overlay lines just above the solid ground plane so
	// they don't z-fight with it.
	gridLift = 0.01

	gridMinorAlpha = 60
	gridMajorAlpha = 140
)

// drawGridOverlay draws the semi-transparent grid plane over the ground:
// minor lines every unit, brighter major lines every ten. Must be called
// between BeginMode3D and EndMode3D, after the solid ground.
func drawGridOverlay(size float32) {
	extent := int(size / 2)
	minor := rl.NewColor(150, 150, 155, gridMinorAlpha)
	major := rl.NewColor(190, 190, 196, gridMajorAlpha)

	var start, end rl.Vector3
	start.Y, end.Y = gridLift, gridLift
	for x := -extent; x <= extent; x += gridMinorStep {
		c := minor
		if x%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Z = float32(x), float32(-extent)
		end.X, end.Z = float32(x), float32(extent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -extent; z <= extent; z += gridMinorStep {
		c := minor
		if z%gridMajorStep == 0 {
			c = major
		}
		start.X, start.Z = float32(-extent), float32(z)
		end.X, end.Z = float32(extent), float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
