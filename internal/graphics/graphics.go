// Package graphics owns the window and the main loop, keeping raylib's
// frame plumbing out of the scene and UI code.
package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "shape sandbox"
	targetFPS    = 60
)

var background = rl.NewColor(36, 40, 46, 255)

// Run opens a resizable window and loops until the user closes it: update
// (input, physics) then clear and draw. The window is resizable; raylib
// resizes the framebuffer itself, and update callbacks can poll
// rl.IsWindowResized for layout work.
func Run(update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, windowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(targetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
