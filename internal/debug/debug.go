package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: refresh the overlay text every N frames to limit
	// per-frame allocations.
	updateInterval = 30
)

// Debug draws runtime overlays (FPS, heap). All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool

	frameCount uint32
	fpsText    string
	memText    string
	memStats   runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether heap usage is drawn under the FPS counter.
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// Draw renders the enabled overlays. Call last in the draw loop so they sit
// on top of the scene and UI.
func (d *Debug) Draw() {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.fpsText == "") ||
		(d.ShowMemAlloc && d.memText == "")

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.fpsText, screenW, y, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		drawRight(d.memText, screenW, y, rl.Green)
	}
}

func drawRight(text string, screenW, y int32, color rl.Color) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, color)
}
